package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/atelierworks/atelier"
)

type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) Publish(ctx context.Context, channel string, event atelier.Event) error {

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, channel, jsonstr).Err()
	if err != nil {
		return err

	}

	return nil
}

// Realtime relays published events to output for as long as ctx lives.
// Each value received on input replaces the active channel subscription.
func (s *SignalService) Realtime(ctx context.Context, input chan []string, output chan atelier.Event) {

	pubsub := s.rdb.Subscribe(ctx)
	defer pubsub.Close()

	messages := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case channels, ok := <-input:
			if !ok {
				return
			}
			err := pubsub.Unsubscribe(ctx)
			if err != nil {
				slog.ErrorContext(
					ctx, "Failed to unsubscribe",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}
			err = pubsub.Subscribe(ctx, channels...)
			if err != nil {
				slog.ErrorContext(
					ctx, "Failed to subscribe",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
			}
		case message, ok := <-messages:
			if !ok {
				return
			}
			var event atelier.Event
			err := json.Unmarshal([]byte(message.Payload), &event)
			if err != nil {
				slog.ErrorContext(
					ctx, "Failed to decode event",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}
			select {
			case output <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
