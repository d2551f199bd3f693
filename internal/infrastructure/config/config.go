package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Seed    SeedConfig
}

type SessionConfig struct {
	// JWTSecret signs session tokens. Required in production; development
	// falls back to an insecure default so the stack runs out of the box.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"SESSION_TOKEN_TTL, default=24h"`
	// TrustMode is "revalidate-each-request" (default) or "token-only".
	TrustMode string `env:"SESSION_TRUST_MODE, default=revalidate-each-request"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`

	// InquiryDedupTTL is how long a contact submission suppresses repeats.
	InquiryDedupTTL time.Duration `env:"INQUIRY_DEDUP_TTL, default=1h"`
}

// SeedConfig is only read by the seed command.
type SeedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@burningbushdesign.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin123"`
	AdminName     string `env:"SEED_ADMIN_NAME,     default=Store Admin"`
}

// devJWTSecret keeps local development working without env setup. Load
// refuses to fall back to it outside development.
const devJWTSecret = "dev-only-insecure-secret"

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Session.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("config: JWT_SECRET is required in production")
		}
		cfg.Session.JWTSecret = devJWTSecret
	}

	return &cfg, nil
}

// IsProduction reports whether the service runs with production hardening
// (secure cookies, mandatory secret).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsingDevSecret reports whether the insecure development fallback secret is
// in effect, so startup can warn loudly.
func (c *Config) UsingDevSecret() bool {
	return c.Session.JWTSecret == devJWTSecret
}
