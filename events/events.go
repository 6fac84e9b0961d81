package events

import "context"

// Event types
const (
	EventHitRecorded   = "hit_recorded"
	EventAuditRecorded = "audit_recorded"
)

// Event is the message published for every stored hit and audit entry
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Publisher sends events to a named channel
type Publisher interface {
	Publish(ctx context.Context, channel string, event Event) error
}

// NopPublisher discards events; used when no broker is configured
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(context.Context, string, Event) error {
	return nil
}
