package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/prompts"
)

// Model turns a user question into a completion from an external backend.
type Model interface {
	Complete(ctx context.Context, question string) (string, error)
}

const questionTemplate = "Question: {{.question}}\n\nAnswer: Let's think step by step."

var ErrEmptyCompletion = errors.New("inference backend returned an empty completion")

func FormatPrompt(question string) (string, error) {
	prompt := prompts.NewPromptTemplate(questionTemplate, []string{"question"})
	text, err := prompt.Format(map[string]any{"question": question})
	if err != nil {
		return "", fmt.Errorf("error formatting prompt: %w", err)
	}
	return text, nil
}

func checkCompletion(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

type Config struct {
	Provider      string
	ModelName     string
	OllamaURL     string
	OpenAIBaseURL string
	OpenAIAPIKey  string
	Timeout       time.Duration
}

func NewModel(cfg Config) (Model, error) {
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("inference timeout must be positive, got %v", cfg.Timeout)
	}

	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaModel(cfg.OllamaURL, cfg.ModelName, cfg.Timeout)
	case ProviderOpenAI:
		return NewOpenAIModel(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ModelName, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported inference provider '%s'", cfg.Provider)
	}
}
