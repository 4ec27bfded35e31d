// Package memory implements an ephemeral persistence backend. It is
// useful for tests and for embedders that want a throwaway store.
package memory

import (
	"context"
	"sync"

	"github.com/berroteran/promptstash/pkg/core"
)

// Backend implements core.Backend entirely in memory.
type Backend struct {
	mu   sync.Mutex
	seed []core.RawRecord
	last []core.Record
}

// New creates an empty in-memory backend.
func New() *Backend { return &Backend{} }

// Seed sets the raw records the next Load will return.
func (b *Backend) Seed(raws []core.RawRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seed = raws
}

func (b *Backend) Load(ctx context.Context) ([]core.RawRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seed, nil
}

func (b *Backend) Save(ctx context.Context, records []core.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = records
	return nil
}

// Snapshot returns the most recently saved collection.
func (b *Backend) Snapshot() []core.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "memory-backend"
}
