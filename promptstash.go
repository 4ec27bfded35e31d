package promptstash

import (
	"context"
	"fmt"
	"io"

	"github.com/berroteran/promptstash/pkg/adapters/fs"
	"github.com/berroteran/promptstash/pkg/adapters/sqlite"
	"github.com/berroteran/promptstash/pkg/bus"
	"github.com/berroteran/promptstash/pkg/catalog"
	"github.com/berroteran/promptstash/pkg/core"
)

// Stash is a hydrated prompt store wired to its collaborators.
//
// Events is the in-process broker receiving the store's domain events;
// it is nil when a custom sink was injected via WithEventSink.
type Stash struct {
	*core.Store

	Events *bus.Broker

	backend core.Backend
	closer  io.Closer
}

// Open builds the persistence backend, wires the collaborators, and
// hydrates the store from disk.
//
//	stash, err := promptstash.Open(ctx, "~/.promptstash/prompts.json",
//		promptstash.WithLocale("es"),
//	)
func Open(ctx context.Context, path string, opts ...Option) (*Stash, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	backend := o.backend
	var closer io.Closer
	if backend == nil {
		switch o.adapter {
		case "fs":
			b := fs.NewBackend(fs.Config{Path: path, Logger: o.logger})
			if err := b.Initialize(ctx); err != nil {
				return nil, err
			}
			backend = b
		case "sqlite":
			b, err := sqlite.Open(path, o.logger)
			if err != nil {
				return nil, err
			}
			backend = b
			closer = b
		default:
			return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
		}
	}

	messages := o.catalog
	if messages == nil {
		c, err := catalog.Load(o.locale)
		if err != nil {
			return nil, err
		}
		messages = c
	}

	sink := o.sink
	var broker *bus.Broker
	if sink == nil {
		broker = bus.New(o.logger)
		sink = broker
	}

	store := core.NewStore(core.Collaborators{
		Backend:  backend,
		IDs:      o.ids,
		Events:   sink,
		Reporter: o.reporter,
		Catalog:  messages,
		Clock:    o.clock,
		Logger:   o.logger,
	})
	if err := store.Init(ctx); err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	return &Stash{
		Store:   store,
		Events:  broker,
		backend: backend,
		closer:  closer,
	}, nil
}

// Backend exposes the persistence adapter, e.g. to reach the filesystem
// backend's Watch.
func (s *Stash) Backend() core.Backend { return s.backend }

// Close releases backend resources. Safe on backends with nothing to release.
func (s *Stash) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
