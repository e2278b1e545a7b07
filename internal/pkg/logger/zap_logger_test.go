package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewWithCore(core)

	l.Info("RENDER", "document rendered", map[string]interface{}{"nodes": 3})
	l.Warn("RENDER", "cache miss", nil)
	l.Error("RENDER", "publish failed", map[string]interface{}{"error": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "RENDER", first["module"])
	assert.Equal(t, map[string]interface{}{"nodes": 3}, first["details"])

	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])
	assert.Contains(t, entries[2].ContextMap(), "error_ref")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Debug("X", "ignored", nil)
		_ = l.Sync()
	})
}
