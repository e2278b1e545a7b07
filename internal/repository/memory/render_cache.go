package memory

import (
	"context"
	"time"

	"richtext-render-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// RenderCache keeps results in process. Cached trees are shared between
// callers and must not be mutated.
type RenderCache struct {
	cache *cache.Cache
}

func NewRenderCache(ttl time.Duration) *RenderCache {
	return &RenderCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *RenderCache) Get(_ context.Context, fingerprint string) (*entity.RenderResult, error) {
	if x, found := r.cache.Get(fingerprint); found {
		return x.(*entity.RenderResult), nil
	}
	return nil, nil
}

func (r *RenderCache) Set(_ context.Context, result *entity.RenderResult) error {
	r.cache.Set(result.Fingerprint, result, cache.DefaultExpiration)
	return nil
}

func (r *RenderCache) Len() int {
	return r.cache.ItemCount()
}
