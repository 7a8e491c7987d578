package inference

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIModel struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIModel(apiKey, baseURL, model string, timeout time.Duration) *OpenAIModel {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIModel{
		client:  openai.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}
}

func (m *OpenAIModel) Complete(ctx context.Context, question string) (string, error) {
	prompt, err := FormatPrompt(question)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	res, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Model:    m.model,
	})
	if err != nil {
		slog.Error("openai error: chat completions failed", "error", err)
		return "", fmt.Errorf("openai generation failed: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", fmt.Errorf("openai generation failed: response contained no choices")
	}

	return checkCompletion(res.Choices[0].Message.Content)
}
