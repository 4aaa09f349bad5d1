// Package config loads service settings from the environment and an
// optional .env file.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-rules/internal/errors"
)

// Storage selects the character store backend
type Storage string

// Storage backends
const (
	StorageMemory Storage = "memory"
	StorageRedis  Storage = "redis"
	StorageSQLite Storage = "sqlite"
)

// Config is the service configuration. Every field is read from an
// RPG_RULES_ prefixed variable.
type Config struct {
	GRPCPort     int           `env:"RPG_RULES_GRPC_PORT"     envDefault:"50051"`
	Storage      Storage       `env:"RPG_RULES_STORAGE"       envDefault:"memory"`
	RedisAddr    string        `env:"RPG_RULES_REDIS_ADDR"`
	SQLitePath   string        `env:"RPG_RULES_SQLITE_PATH"`
	RulesFile    string        `env:"RPG_RULES_RULES_FILE"`
	SRDBaseURL   string        `env:"RPG_RULES_SRD_BASE_URL"  envDefault:"https://www.dnd5eapi.co/api/2014/"`
	SRDCacheTTL  time.Duration `env:"RPG_RULES_SRD_CACHE_TTL" envDefault:"24h"`
	OTelEndpoint string        `env:"RPG_RULES_OTEL_ENDPOINT"`
	LogLevel     string        `env:"RPG_RULES_LOG_LEVEL"     envDefault:"info"`
}

// Load reads the given env files (".env" when none are named), then parses
// and validates the environment. Missing env files are not an error;
// variables already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load env file")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// Validate checks backend-specific requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("Storage", string(c.Storage),
		[]string{string(StorageMemory), string(StorageRedis), string(StorageSQLite)}, vb)

	switch c.Storage {
	case StorageRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	case StorageSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	if c.SRDCacheTTL < 0 {
		vb.Field("SRDCacheTTL", "must not be negative")
	}
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)

	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level, info when unrecognized
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
