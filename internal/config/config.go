// Package config loads service configuration from the environment
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// envPrefix is prepended to every variable name
const envPrefix = "RPG_SHEET_"

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the runtime settings of the sheet service
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// RulesPath overrides the embedded rule tables when set
	RulesPath string `env:"RULES_PATH"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"24h"`
}

// LoadOptions control where Load reads from
type LoadOptions struct {
	// EnvFiles are loaded before parsing; missing files are skipped.
	// Variables already set in the environment win.
	EnvFiles []string
	// Environment replaces the process environment when non-nil
	Environment map[string]string
}

// Load reads the configuration and validates it
func Load(opts LoadOptions) (*Config, error) {
	for _, file := range opts.EnvFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load env file "+file)
		}
		slog.Debug("loaded env file", "path", file)
	}

	envOpts := env.Options{Prefix: envPrefix}
	if opts.Environment != nil {
		envOpts.Environment = opts.Environment
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, envOpts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations, reporting every problem at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	if c.RedisDB < 0 {
		vb.InvalidField("REDIS_DB", "must not be negative")
	}
	if _, valid := parseLevel(c.LogLevel); !valid {
		vb.InvalidField("LOG_LEVEL", "must be one of debug, info, warn, error")
	}
	errors.ValidateEnum("LOG_FORMAT", strings.ToLower(c.LogFormat), []string{LogFormatText, LogFormatJSON}, vb)
	if c.DraftTTL <= 0 {
		vb.InvalidField("DRAFT_TTL", "must be positive")
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
