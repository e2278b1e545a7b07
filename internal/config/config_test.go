package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "RENDER_CACHE_TTL_SECONDS", "RENDER_EVENT_TOPIC", "OTEL_ENABLED", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "", cfg.App.Port)
	assert.Equal(t, 600, cfg.Render.CacheTTLSeconds)
	assert.False(t, cfg.Otel.Enabled)
	assert.Equal(t, 10*1024*1024, cfg.Render.BodyLimitBytes)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("MEDIA_BASE_URL", "https://cdn.example.com")
	t.Setenv("RENDER_CACHE_TTL_SECONDS", "30")
	t.Setenv("RENDER_EVENT_TOPIC", "rendered")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://cdn.example.com", cfg.Render.MediaBaseURL)
	assert.Equal(t, 30, cfg.Render.CacheTTLSeconds)
	assert.Equal(t, "rendered", cfg.Render.EventTopic)
	assert.True(t, cfg.Otel.Enabled)
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("RENDER_BODY_LIMIT_BYTES", "lots")
	assert.Equal(t, 10*1024*1024, FromEnv().Render.BodyLimitBytes)
}
