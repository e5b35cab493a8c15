package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// placeholderSecret is the development fallback. Running any other
// environment with it is a deployment error.
const placeholderSecret = "change-me-in-production"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret       string `env:"JWT_SECRET,        default=change-me-in-production"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=30"`

	NotifyWorkers int `env:"NOTIFY_WORKERS, default=4"`

	AdminName     string `env:"ADMIN_NAME,  default=Administrator"`
	AdminEmail    string `env:"ADMIN_EMAIL, default=admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=helpdesk"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Env != "development" && (c.JWTSecret == "" || c.JWTSecret == placeholderSecret) {
		return errors.New("config: JWT_SECRET must be set outside development")
	}
	return nil
}

// TokenTTL converts the configured minutes into a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}
