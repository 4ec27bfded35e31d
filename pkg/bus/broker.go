// Package bus provides an in-process event broker satisfying
// core.EventSink. Publishing is fire-and-forget: a subscriber that
// cannot keep up loses events rather than blocking the store.
package bus

import (
	"log/slog"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/berroteran/promptstash/pkg/core"
)

// DefaultBuffer is the per-subscription channel buffer size.
const DefaultBuffer = 16

// Broker fans events out to pattern-matched subscriptions.
type Broker struct {
	mu     sync.Mutex
	subs   map[int]*subscription
	nextID int
	logger *slog.Logger
}

type subscription struct {
	pattern string
	ch      chan core.Event
}

// New creates a Broker.
func New(logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Broker{
		subs:   make(map[int]*subscription),
		logger: logger,
	}
}

// Publish implements core.EventSink. Events are delivered to every
// subscription whose pattern matches the event type ("record.created",
// "record.*", "**"). Full subscriber buffers drop the event.
func (b *Broker) Publish(evt core.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		match, err := doublestar.Match(sub.pattern, string(evt.Type))
		if err != nil || !match {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			b.logger.Warn("subscriber buffer full, dropping event",
				"pattern", sub.pattern, "event", evt.String())
		}
	}
}

// Subscribe registers interest in events whose type matches pattern.
// The returned cancel function removes the subscription and closes the
// channel; it is safe to call more than once.
func (b *Broker) Subscribe(pattern string) (<-chan core.Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !doublestar.ValidatePattern(pattern) {
		b.logger.Warn("invalid subscription pattern", "pattern", pattern)
	}

	id := b.nextID
	b.nextID++
	sub := &subscription{pattern: pattern, ch: make(chan core.Event, DefaultBuffer)}
	b.subs[id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

var _ core.EventSink = (*Broker)(nil)
