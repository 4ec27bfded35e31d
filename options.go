package promptstash

import (
	"log/slog"

	"github.com/berroteran/promptstash/pkg/core"
)

// options holds the internal configuration for the facade.
type options struct {
	adapter  string
	backend  core.Backend
	sink     core.EventSink
	reporter core.ErrorReporter
	catalog  core.MessageCatalog
	ids      core.IDGenerator
	clock    core.Clock
	locale   string
	logger   *slog.Logger
}

// Option defines a functional option for configuring a Stash.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
		locale:  "en",
	}
}

// WithAdapter selects the persistence adapter by name ("fs" or "sqlite").
func WithAdapter(name string) Option {
	return func(o *options) {
		if name != "" {
			o.adapter = name
		}
	}
}

// WithBackend injects a custom persistence backend (e.g. memory, mock).
// If provided, the named adapter is skipped.
func WithBackend(backend core.Backend) Option {
	return func(o *options) {
		o.backend = backend
	}
}

// WithEventSink replaces the default in-process broker with a custom sink.
func WithEventSink(sink core.EventSink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithReporter routes validation failure messages somewhere visible
// (stderr, a UI toast). The default discards them.
func WithReporter(reporter core.ErrorReporter) Option {
	return func(o *options) {
		o.reporter = reporter
	}
}

// WithLocale selects the language for failure messages.
func WithLocale(locale string) Option {
	return func(o *options) {
		if locale != "" {
			o.locale = locale
		}
	}
}

// WithCatalog injects a custom message catalog, overriding WithLocale.
func WithCatalog(catalog core.MessageCatalog) Option {
	return func(o *options) {
		o.catalog = catalog
	}
}

// WithIDGenerator replaces the UUID generator used during normalization.
func WithIDGenerator(ids core.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithClock replaces the wall clock (useful for deterministic tests).
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLogger sets the logger for the store and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
