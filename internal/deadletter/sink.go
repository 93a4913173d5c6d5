// Package deadletter stores webhook deliveries the receiver could not decode
// or chose to park, so they can be inspected and replayed later.
package deadletter

import (
	"context"
	"fmt"
	"time"

	"github.com/gyaneshwarpardhi/payhook/internal/config"
)

// Reasons recorded on entries.
const (
	ReasonMalformed       = "malformed"
	ReasonInvalidEnvelope = "invalid_envelope"
	ReasonSchemaMismatch  = "schema_mismatch"
	ReasonUnknownType     = "unknown_type"
	ReasonRouted          = "routed"
)

// Entry is one parked delivery.
type Entry struct {
	DeliveryID string    `json:"delivery_id"`
	EventID    string    `json:"event_id,omitempty"`
	EventType  string    `json:"event_type,omitempty"`
	Reason     string    `json:"reason"`
	Detail     string    `json:"detail,omitempty"`
	Body       string    `json:"body"`
	ReceivedAt time.Time `json:"received_at"`
}

// Sink persists entries. Implementations are safe for concurrent use.
type Sink interface {
	Put(ctx context.Context, e Entry) error
	// List returns up to limit entries, newest first.
	List(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

// Open returns the sink selected by conf.
func Open(ctx context.Context, conf config.DeadLetterConf) (Sink, error) {
	switch conf.Driver {
	case "", "memory":
		return NewMemorySink(int(conf.MaxLen)), nil
	case "redis":
		client, err := Connect(ctx, conf.RedisURL)
		if err != nil {
			return nil, err
		}
		return NewRedisSink(client, conf.Key, conf.MaxLen), nil
	default:
		return nil, fmt.Errorf("dead letter: unknown driver %q", conf.Driver)
	}
}
