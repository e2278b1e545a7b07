package events

import (
	"time"

	"github.com/google/uuid"
)

const TypeDocumentRendered = "DOCUMENT_RENDERED"

// DocumentRendered is published once per render request, cache hits included.
type DocumentRendered struct {
	RenderId    uuid.UUID `json:"render_id"`
	Fingerprint string    `json:"fingerprint"`
	Mode        string    `json:"mode"`
	Elements    int       `json:"elements"`
	Empty       bool      `json:"empty"`
	Cached      bool      `json:"cached"`
	RenderedAt  time.Time `json:"rendered_at"`
}

func (d DocumentRendered) ToEvent() BaseEvent {
	return BaseEvent{
		Type: TypeDocumentRendered,
		Data: map[string]interface{}{
			"render_id":   d.RenderId.String(),
			"fingerprint": d.Fingerprint,
			"mode":        d.Mode,
			"elements":    d.Elements,
			"empty":       d.Empty,
			"cached":      d.Cached,
		},
		OccurredAt: d.RenderedAt,
	}
}
