package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/66gu1/filmoradmin/config"
	_ "github.com/66gu1/filmoradmin/docs"
	"github.com/66gu1/filmoradmin/internal/app/auth"
	authredis "github.com/66gu1/filmoradmin/internal/app/auth/repo/redis"
	authhttp "github.com/66gu1/filmoradmin/internal/app/auth/transport/http"
	authusecase "github.com/66gu1/filmoradmin/internal/app/auth/usecase"
	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/66gu1/filmoradmin/internal/app/gate"
	"github.com/66gu1/filmoradmin/internal/app/menu"
	menuhttp "github.com/66gu1/filmoradmin/internal/app/menu/transport/http"
	"github.com/66gu1/filmoradmin/internal/app/resource"
	resourceredis "github.com/66gu1/filmoradmin/internal/app/resource/repo/redis"
	resourcehttp "github.com/66gu1/filmoradmin/internal/app/resource/transport/http"
	"github.com/66gu1/filmoradmin/internal/app/session"
	sessiongorm "github.com/66gu1/filmoradmin/internal/app/session/repo/gorm"
	sessionredis "github.com/66gu1/filmoradmin/internal/app/session/repo/redis"
	"github.com/66gu1/filmoradmin/internal/infrastructure/db"
	"github.com/66gu1/filmoradmin/internal/infrastructure/httpx"
	"github.com/66gu1/filmoradmin/internal/infrastructure/logger"
	"github.com/66gu1/filmoradmin/internal/infrastructure/metrics"
	"github.com/66gu1/filmoradmin/internal/infrastructure/secure"
	"github.com/66gu1/filmoradmin/internal/infrastructure/system"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, loadConfig())
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	secret, err := config.SessionSecret()
	if err != nil {
		return err
	}
	signKey, sealKey := secure.DeriveKeys(secret)
	secure.ZeroBytes(secret)

	codec := secure.NewTokenCodec(signKey)
	sealer, err := secure.NewSealer(sealKey)
	if err != nil {
		return fmt.Errorf("session sealer: %w", err)
	}

	timeGen := &system.TimeGenerator{}
	rndGen := &system.RNDGenerator{}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	obs := metrics.New(registry)

	// --- redis is optional; it backs sessions, the login limiter and the resource cache
	var redisClient *goredis.Client
	if redisCfg := config.GetRedisConfig(); redisCfg.Addr != "" {
		redisClient, err = db.NewRedisClient(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer func() { _ = redisClient.Close() }()
	}

	sessionCfg := config.GetSessionConfig()
	store, cleanup, err := newSessionStore(ctx, cfg, sessionCfg, redisClient, timeGen)
	if err != nil {
		return err
	}
	defer cleanup()
	sessions := session.NewManager(codec, sealer, store, rndGen, timeGen, sessionCfg)

	client, err := backend.NewClient(config.GetBackendConfig(), obs)
	if err != nil {
		return err
	}

	authCfg, limiterCfg := config.GetAuthConfigs()
	authCore := auth.NewCore(client, timeGen, authCfg)
	var limiter authusecase.Limiter
	if redisClient != nil {
		limiter = authredis.NewLoginLimiter(redisClient, limiterCfg)
	}
	authService := authusecase.NewService(authCore, limiter, obs)
	authHandler := authhttp.NewHandler(authService, sessions)

	dashboardMenu, err := menu.Default()
	if err != nil {
		return err
	}
	menuHandler := menuhttp.NewHandler(dashboardMenu)
	authGate := gate.New(dashboardMenu.Routes(), config.GetGateConfig())

	resources := resource.DefaultRegistry()
	var cache resource.Cache
	if resourceCfg := config.GetResourceConfig(); resourceCfg.CacheEnabled && redisClient != nil {
		cache = resourceredis.NewCache(redisClient, time.Duration(resourceCfg.CacheTTLSeconds)*time.Second)
	}
	resourceService := resource.NewService(client, resources.Policy(), cache, resources)
	resourceHandler := resourcehttp.NewHandler(resourceService)

	// --- set up chi router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(logger.Logger)
	r.Use(httpx.MaxBodyBytes(cfg.MaxBodySize))
	r.Use(authhttp.SessionMiddleware(authService, sessions))
	r.Use(authGate.Middleware(obs))

	// operational
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// --- auth routes
	authHandler.Routes(r) // /login, /logout, /api/auth/{login,session}

	// --- dashboard api
	r.Get("/api/menu", menuHandler.GetMenu)           // GET /api/menu
	r.Route("/api/resources", resourceHandler.Routes) // /api/resources/{resource}[/{id}]

	// every other page is rendered by the dashboard shell
	index := filepath.Join(cfg.StaticDir, "index.html")
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, index)
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msg(fmt.Sprintf("starting server on :%s", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// newSessionStore returns nil for the cookie backend. The returned cleanup is always safe to call.
func newSessionStore(ctx context.Context, cfg config.Config, sessionCfg session.Config, redisClient *goredis.Client, timeGen *system.TimeGenerator) (session.Store, func(), error) {
	noop := func() {}

	switch sessionCfg.Backend {
	case "", session.BackendCookie:
		return nil, noop, nil
	case session.BackendMemory:
		return session.NewMemoryStore(timeGen), noop, nil
	case session.BackendRedis:
		if redisClient == nil {
			return nil, noop, fmt.Errorf("session backend %q needs redis.addr", sessionCfg.Backend)
		}
		return sessionredis.NewStore(redisClient, timeGen), noop, nil
	case session.BackendPostgres:
		gdb, err := db.Open(cfg.DSN())
		if err != nil {
			return nil, noop, err
		}
		store, err := sessiongorm.NewStore(gdb, timeGen)
		if err != nil {
			return nil, noop, err
		}
		stopCleanup := startCleanup(ctx, store.DeleteExpired, time.Duration(cfg.CleanupIntervalMinutes)*time.Minute)
		return store, func() {
			stopCleanup()
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	}

	return nil, noop, fmt.Errorf("unknown session backend %q", sessionCfg.Backend)
}

// startCleanup prunes expired postgres sessions until the returned stop func is called.
func startCleanup(ctx context.Context, deleteExpired func(context.Context) (int64, error), interval time.Duration) func() {
	if interval <= 0 {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := deleteExpired(ctx)
				if err != nil {
					log.Error().Err(err).Msg("session cleanup failed")
					continue
				}
				log.Debug().Int64("deleted", n).Msg("expired sessions pruned")
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
