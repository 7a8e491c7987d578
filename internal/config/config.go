package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"qa-backend/internal/inference"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        int    `env:"PORT" envDefault:"8000"`
	DataDir     string `env:"DATA_DIR" envDefault:"./qa-backend"`
	DatabaseURL string `env:"DATABASE_URL"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	InferenceProvider string        `env:"INFERENCE_PROVIDER" envDefault:"ollama"`
	ModelName         string        `env:"MODEL_NAME,required,notEmpty"`
	OllamaURL         string        `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL"`
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	InferenceTimeout  time.Duration `env:"INFERENCE_TIMEOUT,required"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5m"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.InferenceProvider {
	case inference.ProviderOllama:
	case inference.ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set when INFERENCE_PROVIDER is %s", inference.ProviderOpenAI)
		}
	default:
		return fmt.Errorf("invalid INFERENCE_PROVIDER '%s': must be either '%s' or '%s'", c.InferenceProvider, inference.ProviderOllama, inference.ProviderOpenAI)
	}

	if c.InferenceTimeout <= 0 {
		return fmt.Errorf("INFERENCE_TIMEOUT must be positive, got %v", c.InferenceTimeout)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", c.RequestTimeout)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

func (c Config) Inference() inference.Config {
	return inference.Config{
		Provider:      c.InferenceProvider,
		ModelName:     c.ModelName,
		OllamaURL:     c.OllamaURL,
		OpenAIBaseURL: c.OpenAIBaseURL,
		OpenAIAPIKey:  c.OpenAIAPIKey,
		Timeout:       c.InferenceTimeout,
	}
}

func (c Config) SqlitePath() string {
	return filepath.Join(c.DataDir, "conversations.db")
}

func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "interactions.log")
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return level, fmt.Errorf("invalid LOG_LEVEL '%s': %w", c.LogLevel, err)
	}
	return level, nil
}
