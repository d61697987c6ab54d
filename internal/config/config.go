package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
// Paytable and wager limits are compiled in and deliberately absent here.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs" validate:"required"`
	LogSource   bool   `env:"LOG_ADD_SOURCE" envDefault:"false"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"required"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"owo-slots" validate:"required"`
	Version     string `env:"VERSION" envDefault:"dev"`

	APIKey         string   `env:"API_KEY"` // empty disables authentication
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:"," validate:"min=1,dive,required"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:"," validate:"dive,ip"`

	// RNGSeed makes the engine deterministic when set
	RNGSeed *uint64 `env:"RNG_SEED"`

	RevealDelayReel1 time.Duration `env:"REVEAL_DELAY_REEL1" envDefault:"1s" validate:"gte=0"`
	RevealDelayReel3 time.Duration `env:"REVEAL_DELAY_REEL3" envDefault:"700ms" validate:"gte=0"`
	RevealDelayReel2 time.Duration `env:"REVEAL_DELAY_REEL2" envDefault:"1s" validate:"gte=0"`

	IdempotencyCacheSize int           `env:"IDEMPOTENCY_CACHE_SIZE" envDefault:"1024" validate:"min=1"`
	IdempotencyTTL       time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"10m" validate:"gt=0"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// Load reads .env (or the given files) into the environment, then parses and validates it.
// A missing file is not an error since real environment variables may be used instead.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadDotenv, err)
	}
	return Parse()
}

// Parse builds a Config from the current environment without touching .env
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
	for i, origin := range c.AllowedOrigins {
		c.AllowedOrigins[i] = strings.TrimSpace(origin)
	}
	for i, proxy := range c.TrustedProxies {
		c.TrustedProxies[i] = strings.TrimSpace(proxy)
	}
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}
