package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIBaseURL is the single fixed origin every API call goes to.
	APIBaseURL string `env:"API_BASE_URL, default=https://davidwaga.pythonanywhere.com/api/v1"`

	// SessionSecret authenticates the session cookie. The default exists
	// for local development only.
	SessionSecret string `env:"SESSION_SECRET, default=bloggie-dev-session-secret"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Development reports whether the app runs with developer conveniences
// (pretty logs, non-Secure cookies).
func (c *Config) Development() bool {
	return c.Env == "development"
}
