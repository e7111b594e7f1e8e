package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"supercharge/internal/storage"
)

// Config is read from the environment once at startup.
type Config struct {
	// DBPath overrides the default database location (~/.supercharge.db).
	DBPath string `env:"SUPERCHARGE_DB_PATH"`

	// OpenAIAPIKey authenticates the generator calls. Only the commands that
	// actually generate content need it.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	// OpenAIBaseURL points the client at an alternative OpenAI-compatible
	// endpoint (local models, proxies).
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// Model selects the chat model used for routine and motivation requests.
	Model string `env:"SUPERCHARGE_MODEL" envDefault:"gpt-4o-mini"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ResolveDBPath returns the configured path or the default location.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	return storage.DefaultDBPath()
}
