// Package eventbus provides event bus adapters: a Redis pub/sub publisher for
// deployments with a broker and a log-only fallback for everything else.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// namedEvent is implemented by events that carry their own bus label.
type namedEvent interface {
	EventName() string
}

// envelope is the wire format published to the Redis channel.
type envelope struct {
	Event   string    `json:"event"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

// RedisBus publishes events as JSON envelopes on a single Redis channel.
// Publishing is synchronous; subscribers that are not listening at publish
// time miss the event, which matches the fire-and-forget contract.
type RedisBus struct {
	client  *redis.Client
	channel string
}

// NewRedisBus creates a bus publishing on the given channel.
func NewRedisBus(client *redis.Client, channel string) *RedisBus {
	return &RedisBus{client: client, channel: channel}
}

// Publish serializes the event and sends it to the channel.
func (b *RedisBus) Publish(ctx context.Context, event any) error {
	env := envelope{
		Event:   eventName(event),
		At:      time.Now().UTC(),
		Payload: event,
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", env.Event, err)
	}

	if err := b.client.Publish(ctx, b.channel, body).Err(); err != nil {
		return fmt.Errorf("publish event %s: %w", env.Event, err)
	}

	return nil
}

func eventName(event any) string {
	if named, ok := event.(namedEvent); ok {
		return named.EventName()
	}
	return fmt.Sprintf("%T", event)
}
