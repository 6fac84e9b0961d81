package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingPublisher struct {
	channels []string
	events   []Event
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, channel string, event Event) error {
	p.channels = append(p.channels, channel)
	p.events = append(p.events, event)
	return p.err
}

func TestEmitterPublishesToChannel(t *testing.T) {
	pub := &recordingPublisher{}
	emitter := NewEmitter(pub, "api_hits", zap.NewNop())

	emitter.Emit(context.Background(), EventHitRecorded, map[string]any{"id": 1})

	require.Len(t, pub.events, 1)
	assert.Equal(t, "api_hits", pub.channels[0])
	assert.Equal(t, EventHitRecorded, pub.events[0].Type)
	assert.Equal(t, map[string]any{"id": 1}, pub.events[0].Payload)
}

func TestEmitterLogsPublishFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	pub := &recordingPublisher{err: errors.New("connection refused")}
	emitter := NewEmitter(pub, "api_hits", zap.New(core))

	emitter.Emit(context.Background(), EventAuditRecorded, nil)

	entries := logs.FilterMessage("failed to publish event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, EventAuditRecorded, entries[0].ContextMap()["type"])
}

func TestEmitterDefaults(t *testing.T) {
	// nil publisher falls back to a no-op
	emitter := NewEmitter(nil, "api_hits", zap.NewNop())
	assert.NotPanics(t, func() {
		emitter.Emit(context.Background(), EventHitRecorded, nil)
	})

	// nil emitter is safe to call
	var none *Emitter
	assert.NotPanics(t, func() {
		none.Emit(context.Background(), EventHitRecorded, nil)
	})

	assert.NoError(t, NopPublisher{}.Publish(context.Background(), "c", Event{}))
}
