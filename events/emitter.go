package events

import (
	"context"

	"go.uber.org/zap"
)

// Emitter publishes events to a fixed channel and only logs failures,
// so a broker outage never changes the outcome of a request.
type Emitter struct {
	publisher Publisher
	channel   string
	log       *zap.Logger
}

// NewEmitter creates an emitter for channel; a nil publisher discards events
func NewEmitter(publisher Publisher, channel string, log *zap.Logger) *Emitter {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Emitter{publisher: publisher, channel: channel, log: log}
}

// Emit publishes an event of eventType carrying payload. A nil emitter is a no-op.
func (e *Emitter) Emit(ctx context.Context, eventType string, payload any) {
	if e == nil {
		return
	}
	err := e.publisher.Publish(ctx, e.channel, Event{Type: eventType, Payload: payload})
	if err != nil {
		e.log.Warn("failed to publish event",
			zap.String("type", eventType),
			zap.String("channel", e.channel),
			zap.Error(err),
		)
	}
}
