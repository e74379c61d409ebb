package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Auth    AuthConfig
	Billing BillingConfig
	Seed    SeedConfig
	Audit   AuditConfig

	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET, required"`
	Issuer    string        `env:"JWT_ISSUER, default=devicehub"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=12h"`
}

type BillingConfig struct {
	RawRate  string `env:"RENTAL_RATE, default=29.99"`
	Currency string `env:"CURRENCY,    default=USD"`

	// Rate is RawRate parsed by Load.
	Rate decimal.Decimal `env:"-"`
}

type SeedConfig struct {
	Enabled  bool   `env:"SEED_DATA,     default=true"`
	Password string `env:"SEED_PASSWORD, default=devicehub-demo"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// MongoConfig: an empty URI keeps the audit ledger in memory.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=devicehub"`
}

// RedisConfig: an empty Addr keeps the token denylist in memory.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l; tests pass envconfig.MapLookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	rate, err := decimal.NewFromString(c.Billing.RawRate)
	if err != nil {
		return fmt.Errorf("RENTAL_RATE %q is not a decimal", c.Billing.RawRate)
	}
	if !rate.IsPositive() {
		return errors.New("RENTAL_RATE must be positive")
	}
	c.Billing.Rate = rate

	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.Audit.Workers <= 0 {
		return errors.New("AUDIT_WORKERS must be positive")
	}
	return nil
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
