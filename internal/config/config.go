package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/AlenaMolokova/nationalcode/internal/constants"
	"github.com/caarlos0/env/v11"
)

var ErrDatabaseURIRequired = errors.New("DATABASE_URI is required")

type Config struct {
	RunAddr        string        `env:"RUN_ADDRESS"`
	DatabaseURI    string        `env:"DATABASE_URI"`
	JWTSecret      string        `env:"JWT_SECRET"`
	MigrationsPath string        `env:"MIGRATIONS_PATH"`
	LogLevel       string        `env:"LOG_LEVEL"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"`
}

func NewConfig() (*Config, error) {
	return Parse(os.Args[1:])
}

// Parse reads flags from args and then lets environment variables override them.
func Parse(args []string) (*Config, error) {
	cfg := &Config{
		RunAddr:        constants.DefaultRunAddr,
		JWTSecret:      constants.DefaultJWTSecret,
		MigrationsPath: constants.DefaultMigrationsPath,
		LogLevel:       constants.DefaultLogLevel,
		TokenTTL:       constants.DefaultTokenTTL,
	}

	fs := flag.NewFlagSet("nationalcoded", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	fs.StringVar(&cfg.JWTSecret, "j", cfg.JWTSecret, "JWT secret")
	fs.StringVar(&cfg.MigrationsPath, "m", cfg.MigrationsPath, "migrations directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info)")
	fs.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "access token lifetime")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DatabaseURI == "" {
		return nil, ErrDatabaseURIRequired
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token TTL must be positive, got %s", cfg.TokenTTL)
	}
	return cfg, nil
}
