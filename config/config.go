package config

import (
	"fmt"
	"os"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	authredis "github.com/66gu1/filmoradmin/internal/app/auth/repo/redis"
	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/66gu1/filmoradmin/internal/app/gate"
	"github.com/66gu1/filmoradmin/internal/app/session"
	"github.com/66gu1/filmoradmin/internal/infrastructure/db"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Environment variables that override or complete the yaml file.
const (
	EnvSessionSecret = "SESSION_SECRET"
	EnvBackendDomain = "FILMORA_DOMAIN"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvDBPassword    = "DB_PASSWORD"
)

type Config struct {
	Port                   string   `mapstructure:"port" json:"port"`
	DatabaseDSN            string   `mapstructure:"database_dsn" json:"database_dsn"`
	LogLevel               LogLevel `mapstructure:"log_level" json:"log_level"`
	MaxBodySize            int64    `mapstructure:"max_body_size" json:"max_body_size"`
	ReadTimeoutSeconds     int      `mapstructure:"read_timeout_seconds" json:"read_timeout_seconds"`
	WriteTimeoutSeconds    int      `mapstructure:"write_timeout_seconds" json:"write_timeout_seconds"`
	CleanupIntervalMinutes int      `mapstructure:"cleanup_interval_minutes" json:"cleanup_interval_minutes"`
	StaticDir              string   `mapstructure:"static_dir" json:"static_dir"`
}

type ResourceConfig struct {
	CacheEnabled    bool `mapstructure:"cache_enabled" json:"cache_enabled"`
	CacheTTLSeconds int  `mapstructure:"cache_ttl_seconds" json:"cache_ttl_seconds"`
}

func LoadConfig() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	var Cfg Config
	if err := viper.Unmarshal(&Cfg); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	return Cfg
}

// DSN appends DB_PASSWORD to the configured connection string.
func (c Config) DSN() string {
	password := os.Getenv(EnvDBPassword)
	if password == "" {
		return c.DatabaseDSN
	}
	return fmt.Sprintf("%s password=%s", c.DatabaseDSN, password)
}

func GetAuthConfigs() (auth.Config, authredis.LimiterConfig) {
	var authCfg auth.Config
	if err := viper.Sub("auth").Unmarshal(&authCfg); err != nil {
		panic(fmt.Errorf("fatal error auth config: %w", err))
	}

	var limiterCfg authredis.LimiterConfig
	if err := viper.Sub("auth").Unmarshal(&limiterCfg); err != nil {
		panic(fmt.Errorf("fatal error auth limiter config: %w", err))
	}

	return authCfg, limiterCfg
}

// GetBackendConfig prefers FILMORA_DOMAIN over backend.base_url.
func GetBackendConfig() backend.Config {
	var cfg backend.Config
	if err := viper.Sub("backend").Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("fatal error backend config: %w", err))
	}
	if domain := os.Getenv(EnvBackendDomain); domain != "" {
		cfg.BaseURL = domain
	}
	return cfg
}

func GetSessionConfig() session.Config {
	var cfg session.Config
	if err := viper.Sub("session").Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("fatal error session config: %w", err))
	}
	return cfg
}

func GetRedisConfig() db.RedisConfig {
	var cfg db.RedisConfig
	sub := viper.Sub("redis")
	if sub == nil {
		return cfg
	}
	if err := sub.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("fatal error redis config: %w", err))
	}
	if password := os.Getenv(EnvRedisPassword); password != "" {
		cfg.Password = password
	}
	return cfg
}

func GetGateConfig() gate.Config {
	var cfg gate.Config
	sub := viper.Sub("gate")
	if sub == nil {
		return cfg
	}
	if err := sub.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("fatal error gate config: %w", err))
	}
	return cfg
}

func GetResourceConfig() ResourceConfig {
	var cfg ResourceConfig
	sub := viper.Sub("resource")
	if sub == nil {
		return cfg
	}
	if err := sub.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("fatal error resource config: %w", err))
	}
	return cfg
}

// SessionSecret returns SESSION_SECRET; the server refuses to start without it.
func SessionSecret() ([]byte, error) {
	secret := os.Getenv(EnvSessionSecret)
	if len(secret) < 32 {
		return nil, fmt.Errorf("%s must be set and at least 32 bytes long", EnvSessionSecret)
	}
	return []byte(secret), nil
}

type LogLevel string

const (
	logLevelDebug LogLevel = "debug"
	logLevelInfo  LogLevel = "info"
	logLevelWarn  LogLevel = "warn"
	logLevelError LogLevel = "error"
)

func (l LogLevel) ZeroLog() zerolog.Level {
	switch l {
	case logLevelDebug:
		return zerolog.DebugLevel
	case logLevelInfo:
		return zerolog.InfoLevel
	case logLevelWarn:
		return zerolog.WarnLevel
	case logLevelError:
		return zerolog.ErrorLevel

	default:
		return zerolog.InfoLevel
	}
}
