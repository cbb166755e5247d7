// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (store, server) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Store Drivers

const (
	// DriverPostgres stores the directory in PostgreSQL through pgxpool.
	DriverPostgres = "postgres"

	// DriverSQLite stores the directory in a local SQLite file.
	DriverSQLite = "sqlite"
)

// # Configuration Schema

// Config holds all runtime configuration for the Fyyur API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StoreDriver selects the system of record: "postgres" or "sqlite".
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// Relational Database (PostgreSQL), required for the postgres driver.
	DatabaseURL string `env:"DATABASE_URL"`

	// Pool sizing for the postgres driver.
	DBMaxConns int32 `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns int32 `env:"DB_MIN_CONNS" envDefault:"2"`

	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./data/fyyur.db"`

	// Per-IP token bucket.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`

	// Cross-Origin Resource Sharing
	CORSOriginSuffix string `env:"CORS_ORIGIN_SUFFIX" envDefault:"fyyur.app"`
}

// # Configuration Loading

// EnvFileVar names the variable pointing at an optional dotenv file.
const EnvFileVar = "ENV_FILE"

// defaultEnvFile is read when ENV_FILE is unset; a missing file is ignored.
const defaultEnvFile = ".env"

// Load parses environment variables into a [Config] struct.
//
// Values from the dotenv file fill only variables the process environment
// leaves unset or empty. The process environment itself is never modified.
func Load() (*Config, error) {
	environment, err := environ(os.Getenv(EnvFileVar))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// environ merges the process environment over the dotenv file at path.
func environ(path string) (map[string]string, error) {
	variables := env.ToMap(os.Environ())

	if path == "" {
		path = defaultEnvFile
	}

	fileVariables, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return variables, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for key, value := range fileVariables {
		if current, ok := variables[key]; !ok || current == "" {
			variables[key] = value
		}
	}

	return variables, nil
}

// validate enforces the cross-field rules env tags cannot express.
func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
		if c.DBMinConns < 0 || c.DBMaxConns < 1 || c.DBMinConns > c.DBMaxConns {
			return fmt.Errorf("invalid pool sizing: DB_MIN_CONNS=%d DB_MAX_CONNS=%d", c.DBMinConns, c.DBMaxConns)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want %q or %q)", c.StoreDriver, DriverPostgres, DriverSQLite)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("invalid rate limit: RATE_LIMIT_RPS=%v RATE_LIMIT_BURST=%d", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOriginSuffix returns the host suffix accepted by CORS outside development.
func (c *Config) AllowedOriginSuffix() string {
	return c.CORSOriginSuffix
}
