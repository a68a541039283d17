package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 60, cfg.Mockup.TTLMinutes)
	assert.False(t, cfg.Otel.Enabled)
	assert.Equal(t, "localhost:4318", cfg.Otel.Endpoint)
}

func TestLoadReadsOtelKeys(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	cfg := Load()

	assert.True(t, cfg.Otel.Enabled)
	assert.Equal(t, "collector:4318", cfg.Otel.Endpoint)
}

func TestLoadProviderKeys(t *testing.T) {
	t.Setenv("TOGETHER_API_KEY", "tk")
	t.Setenv("HUGGINGFACE_API_KEY", "hk")
	t.Setenv("TOGETHER_BASE_URL", "http://localhost:9999")

	cfg := Load()

	assert.Equal(t, "tk", cfg.Keys.Together)
	assert.Equal(t, "hk", cfg.Keys.HuggingFace)
	assert.Equal(t, "http://localhost:9999", cfg.Providers.TogetherBaseURL)
	assert.Empty(t, cfg.Providers.HuggingFaceBaseURL)
}
