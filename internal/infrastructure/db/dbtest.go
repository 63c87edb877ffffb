//go:build testutil

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func init() {
	if err := goose.SetDialect("postgres"); err != nil {
		panic(err)
	}
}

const (
	pgUser     = "postgres"
	pgPassword = "postgres"
	pgDB       = "postgres"
	pgPort     = nat.Port("5432/tcp")
	redisPort  = nat.Port("6379/tcp")
)

type TestDB struct {
	Container tc.Container
	Host      string
	Port      string
}

// StartPostgres boots one container per test binary; tests get isolated databases from CreateIsolatedDB.
func StartPostgres() (td *TestDB, cleanup func()) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDB,
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return dsn(host, port.Port(), pgDB)
			}).WithStartupTimeout(60 * time.Second).
				WithPollInterval(200 * time.Millisecond).
				WithQuery("SELECT 1"),
		},
		Started: true,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to start postgres container: %v", err))
	}

	host, port := endpoint(ctx, container, pgPort)
	td = &TestDB{Container: container, Host: host, Port: port}

	return td, terminate(container)
}

// StartRedis boots a throwaway redis and returns its address.
func StartRedis() (addr string, cleanup func()) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{string(redisPort)},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to start redis container: %v", err))
	}

	host, port := endpoint(ctx, container, redisPort)
	return fmt.Sprintf("%s:%s", host, port), terminate(container)
}

func (td *TestDB) CreateIsolatedDB(t *testing.T) (*gorm.DB, *sql.DB, func()) {
	t.Helper()

	admin, err := sql.Open("pgx", dsn(td.Host, td.Port, pgDB))
	if err != nil {
		t.Fatalf("sql open (admin): %v", err)
	}
	defer admin.Close()

	dbName := fmt.Sprintf("test_%s", uuid.New().String())
	if _, err = admin.Exec(fmt.Sprintf(`CREATE DATABASE "%s"`, dbName)); err != nil {
		t.Fatalf("fail to create database %s: %v", dbName, err)
	}

	sqlDB, err := sql.Open("pgx", dsn(td.Host, td.Port, dbName))
	if err != nil {
		t.Fatalf("sql open (test db): %v", err)
	}
	if err = goose.Up(sqlDB, migrationsDir()); err != nil {
		t.Fatalf("goose.Up: %v", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	once := &sync.Once{}
	cleanup := func() {
		once.Do(func() {
			_ = sqlDB.Close()
			reopened, err := sql.Open("pgx", dsn(td.Host, td.Port, pgDB))
			if err != nil {
				return
			}
			defer reopened.Close()
			_, _ = reopened.Exec(fmt.Sprintf(`DROP DATABASE IF EXISTS "%s"`, dbName)) //nolint:errcheck
		})
	}
	return gdb, sqlDB, cleanup
}

func dsn(host, port, dbname string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable timezone=UTC",
		host, port, pgUser, pgPassword, dbname)
}

func endpoint(ctx context.Context, container tc.Container, port nat.Port) (string, string) {
	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(context.Background()) //nolint:errcheck
		panic(fmt.Sprintf("get container host: %v", err))
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		_ = container.Terminate(context.Background()) //nolint:errcheck
		panic(fmt.Sprintf("get mapped port: %v", err))
	}
	return host, mapped.Port()
}

func terminate(container tc.Container) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = container.Terminate(ctx) //nolint:errcheck
	}
}

// migrationsDir walks up to the module root; MIGRATIONS_DIR overrides.
func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	d, err := os.Getwd()
	if err != nil {
		return "migrations"
	}
	for {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return filepath.Join(d, "migrations")
		}
		p := filepath.Dir(d)
		if p == d {
			return "migrations"
		}
		d = p
	}
}
