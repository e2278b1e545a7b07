package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"richtext-render-be/internal/entity"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "render:"

// RenderCache shares results between instances. A nil client turns every
// call into a miss.
type RenderCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewRenderCache(rdb *goredis.Client, ttl time.Duration) *RenderCache {
	return &RenderCache{rdb: rdb, ttl: ttl}
}

func Key(fingerprint string) string {
	return keyPrefix + fingerprint
}

func (r *RenderCache) Get(ctx context.Context, fingerprint string) (*entity.RenderResult, error) {
	if r.rdb == nil {
		return nil, nil
	}

	data, err := r.rdb.Get(ctx, Key(fingerprint)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read render cache: %w", err)
	}

	var result entity.RenderResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode render cache entry: %w", err)
	}
	return &result, nil
}

func (r *RenderCache) Set(ctx context.Context, result *entity.RenderResult) error {
	if r.rdb == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode render cache entry: %w", err)
	}
	if err := r.rdb.Set(ctx, Key(result.Fingerprint), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write render cache: %w", err)
	}
	return nil
}
