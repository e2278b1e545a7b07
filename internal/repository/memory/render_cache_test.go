package memory

import (
	"context"
	"testing"
	"time"

	"richtext-render-be/internal/entity"
	"richtext-render-be/pkg/lexical"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCache(t *testing.T) {
	ctx := context.Background()
	c := NewRenderCache(time.Minute)

	got, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	result := &entity.RenderResult{
		Fingerprint: "fp",
		Mode:        entity.RenderModeTree,
		Tree:        &lexical.Element{Key: 1, Kind: lexical.KindStack},
		Elements:    1,
	}
	require.NoError(t, c.Set(ctx, result))

	got, err = c.Get(ctx, "fp")
	require.NoError(t, err)
	assert.Same(t, result, got)
	assert.Equal(t, 1, c.Len())
}

func TestRenderCacheExpires(t *testing.T) {
	ctx := context.Background()
	c := NewRenderCache(10 * time.Millisecond)
	require.NoError(t, c.Set(ctx, &entity.RenderResult{Fingerprint: "fp"}))

	assert.Eventually(t, func() bool {
		got, _ := c.Get(ctx, "fp")
		return got == nil
	}, time.Second, 5*time.Millisecond)
}
