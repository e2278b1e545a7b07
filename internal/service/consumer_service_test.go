package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"richtext-render-be/internal/pkg/logger"
	"richtext-render-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingEventPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingEventPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingEventPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func newBus(t *testing.T) *gochannel.GoChannel {
	t.Helper()
	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestConsumerForwardsRenderEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := newBus(t)
	nats := &recordingEventPublisher{}
	core, logs := observer.New(zap.InfoLevel)

	consumer := NewConsumerService(bus, "document_rendered", nats, logger.NewWithCore(core))
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("document_rendered", bus)
	id := uuid.New()
	payload, err := json.Marshal(events.DocumentRendered{RenderId: id, Mode: "html", Elements: 4})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	assert.Eventually(t, func() bool { return nats.count() == 1 }, time.Second, 10*time.Millisecond)

	nats.mu.Lock()
	evt := nats.events[0]
	nats.mu.Unlock()
	assert.Equal(t, events.TypeDocumentRendered, evt.EventType())
	assert.Equal(t, id.String(), evt.Payload()["render_id"])
	assert.Equal(t, 1, logs.FilterMessage("Document rendered").Len())
}

func TestConsumerSurvivesBadPayloadAndBrokenBus(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := newBus(t)
	nats := &recordingEventPublisher{err: errors.New("nats down")}
	core, logs := observer.New(zap.InfoLevel)

	consumer := NewConsumerService(bus, "document_rendered", nats, logger.NewWithCore(core))
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("document_rendered", bus)
	require.NoError(t, publisher.Publish(ctx, []byte("not json")))
	payload, _ := json.Marshal(events.DocumentRendered{RenderId: uuid.New()})
	require.NoError(t, publisher.Publish(ctx, payload))

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("Failed to forward render event").Len() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, logs.FilterMessage("Failed to unmarshal render event").Len())
	assert.Equal(t, 1, nats.count())
}
