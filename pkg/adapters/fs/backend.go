// Package fs implements the persistence backend on a single JSON file.
//
// The whole collection lives in one file, rewritten atomically on every
// save. Loading is tolerant by design: a missing or empty file is an
// empty collection, and per-record field repair is left to the core's
// normalization pass.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/berroteran/promptstash/pkg/core"
)

// Backend implements core.Backend using a JSON file on disk.
type Backend struct {
	path   string
	logger *slog.Logger
}

// Config holds the configuration for the filesystem backend.
type Config struct {
	Path   string
	Logger *slog.Logger
}

// NewBackend creates a filesystem-backed persistence adapter.
func NewBackend(config Config) *Backend {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Backend{path: config.Path, logger: logger}
}

// Path returns the store file location.
func (b *Backend) Path() string { return b.path }

// Initialize ensures the parent directory of the store file exists.
func (b *Backend) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Load reads the raw persisted collection. A missing or blank file is an
// empty collection; a file that exists but cannot be decoded is an error,
// because silently discarding it would lose data on the next save.
func (b *Backend) Load(ctx context.Context) ([]core.RawRecord, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		b.logger.Debug("store file missing, starting empty", "path", b.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var raws []core.RawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("corrupt store file %s: %w", b.path, err)
	}
	return raws, nil
}

// Save writes the full collection to disk atomically.
func (b *Backend) Save(ctx context.Context, records []core.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize records: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := writeFileAtomic(b.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	b.logger.Debug("store persisted", "path", b.path, "records", len(records))
	return nil
}
