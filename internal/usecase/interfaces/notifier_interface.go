package interfaces

import (
	"context"
	"time"
)

// INotifier publishes billing notifications (confirmations, operator alerts).
// Callers treat it as fire-and-forget.
type INotifier interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

// IEventCache remembers which provider deliveries were already handled.
// It only short-circuits redeliveries; the store stays the source of truth.
type IEventCache interface {
	Seen(ctx context.Context, key string) (bool, error)
	Remember(ctx context.Context, key string, ttl time.Duration) error
}
