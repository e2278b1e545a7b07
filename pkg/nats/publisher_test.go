package nats

import (
	"testing"

	"richtext-render-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.DOCUMENT_RENDERED", Subject(events.TypeDocumentRendered))
}

func TestPublisherImplementsEventsPublisher(t *testing.T) {
	var _ events.Publisher = (*Publisher)(nil)
}
