package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDocumentRenderedToEvent(t *testing.T) {
	id := uuid.New()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	evt := DocumentRendered{
		RenderId:    id,
		Fingerprint: "abc",
		Mode:        "html",
		Elements:    7,
		Cached:      true,
		RenderedAt:  at,
	}.ToEvent()

	assert.Equal(t, TypeDocumentRendered, evt.EventType())
	assert.Equal(t, at, evt.Timestamp())
	assert.Equal(t, map[string]interface{}{
		"render_id":   id.String(),
		"fingerprint": "abc",
		"mode":        "html",
		"elements":    7,
		"empty":       false,
		"cached":      true,
	}, evt.Payload())

	var _ Event = evt
}
