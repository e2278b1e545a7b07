package tracer

import (
	"context"
	"testing"

	"richtext-render-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown := InitTracer(config.OtelConfig{Enabled: false})
	assert.NoError(t, shutdown(context.Background()))
}
