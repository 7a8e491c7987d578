package inference

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

type OllamaModel struct {
	llm     *ollama.LLM
	timeout time.Duration
}

func NewOllamaModel(serverURL, model string, timeout time.Duration) (*OllamaModel, error) {
	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create ollama client: %w", err)
	}

	return &OllamaModel{llm: llm, timeout: timeout}, nil
}

func (m *OllamaModel) Complete(ctx context.Context, question string) (string, error) {
	prompt, err := FormatPrompt(question)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	answer, err := llms.GenerateFromSinglePrompt(ctx, m.llm, prompt)
	if err != nil {
		slog.Error("ollama error: generation failed", "error", err)
		return "", fmt.Errorf("ollama generation failed: %w", err)
	}

	return checkCompletion(answer)
}
