package eventbus

import (
	"context"
	"log/slog"
)

// LogBus records published events instead of delivering them anywhere. It is
// the default bus when no broker is configured.
type LogBus struct {
	log *slog.Logger
}

// NewLogBus creates a bus that logs every event at info level.
func NewLogBus(log *slog.Logger) *LogBus {
	return &LogBus{log: log.With(slog.String("component", "eventbus"))}
}

// Publish logs the event and always succeeds.
func (b *LogBus) Publish(ctx context.Context, event any) error {
	b.log.InfoContext(ctx, "event published",
		slog.String("event", eventName(event)),
		slog.Any("payload", event),
	)
	return nil
}
