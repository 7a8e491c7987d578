package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("MODEL_NAME", "llama3")
	t.Setenv("INFERENCE_TIMEOUT", "30s")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "ollama", cfg.InferenceProvider)
	assert.Equal(t, "llama3", cfg.ModelName)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaURL)
	assert.Equal(t, 30*time.Second, cfg.InferenceTimeout)
	assert.Equal(t, 5*time.Minute, cfg.RequestTimeout)
	assert.Equal(t, filepath.Join("qa-backend", "conversations.db"), cfg.SqlitePath())
	assert.Equal(t, filepath.Join("qa-backend", "interactions.log"), cfg.LogPath())

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	inf := cfg.Inference()
	assert.Equal(t, "ollama", inf.Provider)
	assert.Equal(t, 30*time.Second, inf.Timeout)
}

func TestLoadRequiresTimeout(t *testing.T) {
	t.Setenv("MODEL_NAME", "llama3")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresModelName(t *testing.T) {
	t.Setenv("INFERENCE_TIMEOUT", "30s")
	t.Setenv("MODEL_NAME", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		InferenceProvider: "ollama",
		ModelName:         "llama3",
		InferenceTimeout:  time.Second,
		RequestTimeout:    time.Minute,
		LogLevel:          "debug",
	}
	require.NoError(t, valid.Validate())

	openai := valid
	openai.InferenceProvider = "openai"
	assert.Error(t, openai.Validate())
	openai.OpenAIAPIKey = "key"
	assert.NoError(t, openai.Validate())

	badProvider := valid
	badProvider.InferenceProvider = "bedrock"
	assert.Error(t, badProvider.Validate())

	zeroTimeout := valid
	zeroTimeout.InferenceTimeout = 0
	assert.Error(t, zeroTimeout.Validate())

	badLevel := valid
	badLevel.LogLevel = "loud"
	assert.Error(t, badLevel.Validate())
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}
