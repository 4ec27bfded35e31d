package core

import (
	"context"
	"time"
)

// Backend defines the contract for the durable persistence layer.
// Adhering to this interface keeps the store independent of the
// underlying storage mechanism (JSON file, SQLite, memory).
type Backend interface {
	// Load returns the raw persisted collection. It is called once,
	// when the store hydrates. Missing storage yields an empty slice.
	Load(ctx context.Context) ([]RawRecord, error)

	// Save persists the entire current collection, not a delta.
	// It is called after every successful mutation.
	Save(ctx context.Context, records []Record) error
}

// IDGenerator produces fresh opaque unique ids. It is consulted only
// while normalizing loaded records that are missing a valid id.
type IDGenerator interface {
	NewID() string
}

// EventSink accepts domain events. Delivery is fire-and-forget: the
// store neither awaits nor inspects subscriber results.
type EventSink interface {
	Publish(Event)
}

// ErrorReporter receives the human-facing message for each validation
// failure. The CLI surfaces it on stderr; embedders may route it to a UI.
type ErrorReporter interface {
	Report(message string)
}

// MessageCatalog resolves a failure kind to a localized message.
type MessageCatalog interface {
	Message(Failure) string
}

// Clock supplies timestamps in Unix milliseconds. Injecting it keeps
// CreatedAt/UpdatedAt deterministic in tests.
type Clock interface {
	Now() int64
}

// SystemClock is the production Clock backed by wall time.
type SystemClock struct{}

func (SystemClock) Now() int64 { return time.Now().UnixMilli() }

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Publish(Event) {}

// NopReporter discards all failure messages.
type NopReporter struct{}

func (NopReporter) Report(string) {}
