// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first (via 'joho/godotenv') when present, so development setups do not need
exported variables.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, token issuer) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MinSecretLength is the minimum byte length accepted for the HS256 signing secret.
const MinSecretLength = 32

// # Configuration Schema

// Config holds all runtime configuration for the Blog API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Optional: the blog cache is disabled when empty.
	RedisURL string `env:"REDIS_URL"`

	// Session token signing
	JWTSecret        string        `env:"JWT_SECRET,required,notEmpty"`
	JWTValidIssuer   string        `env:"JWT_VALID_ISSUER,required,notEmpty"`
	JWTValidAudience string        `env:"JWT_VALID_AUDIENCE,required,notEmpty"`
	JWTTTL           time.Duration `env:"JWT_TTL" envDefault:"1h"`

	// BlacklistSweepInterval controls how often expired revocations are dropped.
	// Zero disables the sweeper.
	BlacklistSweepInterval time.Duration `env:"BLACKLIST_SWEEP_INTERVAL" envDefault:"15m"`

	// BootstrapOwner is granted every role when it registers.
	BootstrapOwner string `env:"BOOTSTRAP_OWNER"`

	// Cross-Origin Resource Sharing
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// CORSAllowAnyOrigin answers every origin with "*". Credentials are never
	// allowed in that mode.
	CORSAllowAnyOrigin bool `env:"CORS_ALLOW_ANY_ORIGIN" envDefault:"false"`

	// TrustProxyHeaders takes the client address from X-Real-IP or
	// X-Forwarded-For. Enable it only behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Load .env only when it exists; real deployments export variables directly.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("config: failed to load .env: %w", err)
		}
	}

	return Parse()
}

// Parse maps the current process environment into a [Config] without touching
// the filesystem. It fails if any field marked 'required' is missing.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces invariants that struct tags cannot express.
func (c *Config) validate() error {
	var errs []error

	if len(c.JWTSecret) < MinSecretLength {
		errs = append(errs, fmt.Errorf("config: JWT_SECRET must be at least %d bytes", MinSecretLength))
	}

	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("config: JWT_TTL must be positive"))
	}

	if c.BlacklistSweepInterval < 0 {
		errs = append(errs, errors.New("config: BLACKLIST_SWEEP_INTERVAL must not be negative"))
	}

	c.BootstrapOwner = strings.TrimSpace(c.BootstrapOwner)

	return errors.Join(errs...)
}

// AllowedOrigins returns the configured CORS origins.
func (c *Config) AllowedOrigins() []string {
	return c.CORSOrigins
}

// AllowAnyOrigin reports whether CORS was opened to every origin.
func (c *Config) AllowAnyOrigin() bool {
	return c.CORSAllowAnyOrigin
}

// CacheEnabled reports whether a Redis URL was supplied.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}
