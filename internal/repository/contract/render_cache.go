package contract

import (
	"context"

	"richtext-render-be/internal/entity"
)

// RenderCache stores render results by fingerprint. A miss is (nil, nil).
type RenderCache interface {
	Get(ctx context.Context, fingerprint string) (*entity.RenderResult, error)
	Set(ctx context.Context, result *entity.RenderResult) error
}
