package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/blogem/api-hits/config"
	"github.com/blogem/api-hits/events"
)

// tail subscribes to the events channel and logs every hit and audit event
// published by running servers until ctx is cancelled.
func tail(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.RedisURL == "" {
		return fmt.Errorf("tail requires REDIS_URL or --redis-url")
	}

	rdb, err := events.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer rdb.Close()

	subscriber := events.NewRedisSubscriber(rdb, log)
	err = subscriber.Subscribe(ctx, cfg.EventsChannel, func(event events.Event) {
		log.Info("event", zap.String("type", event.Type), zap.Any("payload", event.Payload))
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", cfg.EventsChannel, err)
	}

	log.Info("tailing events", zap.String("channel", cfg.EventsChannel))
	<-ctx.Done()
	return nil
}
