package service

import (
	"context"
	"encoding/json"

	"richtext-render-be/internal/pkg/logger"
	"richtext-render-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

const consumerModule = "RENDER_EVENTS"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber     message.Subscriber
	topicName      string
	eventPublisher events.Publisher
	logger         logger.ILogger
}

// NewConsumerService drains render events from the in-process bus, writes
// them to the audit log and forwards them to eventPublisher when set.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	eventPublisher events.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:     subscriber,
		topicName:      topicName,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload events.DocumentRendered
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error(consumerModule, "Failed to unmarshal render event", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info(consumerModule, "Document rendered", map[string]interface{}{
		"render_id":   payload.RenderId.String(),
		"fingerprint": payload.Fingerprint,
		"mode":        payload.Mode,
		"elements":    payload.Elements,
		"empty":       payload.Empty,
		"cached":      payload.Cached,
	})

	// Best effort: gochannel redelivers a Nack at once, which would spin while NATS is down.
	if cs.eventPublisher != nil {
		if err := cs.eventPublisher.Publish(ctx, payload.ToEvent()); err != nil {
			cs.logger.Warn(consumerModule, "Failed to forward render event", map[string]interface{}{
				"error":     err.Error(),
				"render_id": payload.RenderId.String(),
			})
		}
	}

	msg.Ack()
}
