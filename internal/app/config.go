package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	TokenSecret string        `envconfig:"TOKEN_SECRET" required:"true"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"15m"`

	FeedAPIKey  string        `envconfig:"FEED_API_KEY" required:"true"`
	FeedBaseURL string        `envconfig:"FEED_BASE_URL" default:"https://newsapi.org/v2"`
	FeedRegion  string        `envconfig:"FEED_REGION" default:"us"`
	FeedTimeout time.Duration `envconfig:"FEED_TIMEOUT" default:"5s"`

	RedisAddr string        `envconfig:"REDIS_ADDR" default:""`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

// LoadConfig reads configuration from environment variables. The token
// secret and feed API key have no defaults: a deployment must provide them.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.TokenSecret == "" {
		return nil, errors.New("token secret must be provided")
	}
	if cfg.FeedAPIKey == "" {
		return nil, errors.New("feed api key must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
