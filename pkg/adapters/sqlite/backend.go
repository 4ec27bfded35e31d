// Package sqlite implements the persistence backend on a local SQLite
// database. It mirrors the full-collection save contract of the core:
// every save replaces the whole table inside one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/berroteran/promptstash/pkg/core"
)

// Backend implements core.Backend using a SQLite database file.
type Backend struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates (or opens) the database at path and ensures the schema.
func Open(path string, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	backend := &Backend{db: db, logger: logger}
	if err := backend.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return backend, nil
}

func (b *Backend) initSchema() error {
	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS prompts (
			position    INTEGER PRIMARY KEY,
			id          TEXT NOT NULL,
			text        TEXT NOT NULL,
			tags        TEXT NOT NULL DEFAULT '[]',
			favorite    INTEGER NOT NULL DEFAULT 0,
			folder_id   TEXT,
			created_at  INTEGER NOT NULL,
			updated_at  INTEGER NOT NULL,
			usage_count INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_prompts_id ON prompts(id);
	`)
	return err
}

// Close releases the underlying database handle.
func (b *Backend) Close() error {
	return b.db.Close()
}

// Load reads the raw persisted collection in insertion order. Values are
// handed back loosely typed; field repair belongs to the core's
// normalization pass.
func (b *Backend) Load(ctx context.Context) ([]core.RawRecord, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, text, tags, favorite, folder_id, created_at, updated_at, usage_count
		FROM prompts
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query prompts: %w", err)
	}
	defer rows.Close()

	var raws []core.RawRecord
	for rows.Next() {
		var (
			id, text, tagsJSON             string
			favorite                       bool
			folderID                       sql.NullString
			createdAt, updatedAt, usageCnt int64
		)
		if err := rows.Scan(&id, &text, &tagsJSON, &favorite, &folderID, &createdAt, &updatedAt, &usageCnt); err != nil {
			return nil, fmt.Errorf("failed to scan prompt row: %w", err)
		}

		raw := core.RawRecord{
			"id":         id,
			"text":       text,
			"favorite":   favorite,
			"createdAt":  createdAt,
			"updatedAt":  updatedAt,
			"usageCount": usageCnt,
		}
		if folderID.Valid {
			raw["folderId"] = folderID.String
		}

		var tags []string
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
			b.logger.Warn("unreadable tags column, defaulting", "id", id, "error", err)
		} else {
			raw["tags"] = tags
		}

		raws = append(raws, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate prompt rows: %w", err)
	}
	return raws, nil
}

// Save replaces the stored collection with the given one atomically.
func (b *Backend) Save(ctx context.Context, records []core.Record) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM prompts`); err != nil {
		return fmt.Errorf("failed to clear prompts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO prompts (position, id, text, tags, favorite, folder_id, created_at, updated_at, usage_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		tags := rec.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("failed to serialize tags for %s: %w", rec.ID, err)
		}

		var folderID sql.NullString
		if rec.FolderID != "" {
			folderID = sql.NullString{String: rec.FolderID, Valid: true}
		}

		if _, err := stmt.ExecContext(ctx, i, rec.ID, rec.Text, string(tagsJSON),
			rec.Favorite, folderID, rec.CreatedAt, rec.UpdatedAt, rec.UsageCount); err != nil {
			return fmt.Errorf("failed to insert prompt %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	b.logger.Debug("store persisted", "records", len(records))
	return nil
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "sqlite-backend"
}
