package core

import (
	"context"
	"log/slog"
	"slices"
	"strings"
)

// Store owns the canonical in-memory collection of records and is the
// single mutation authority over it. Every successful mutation persists
// the full collection through the Backend and publishes exactly one
// event describing the change.
//
// Store is not safe for concurrent use: the execution model is a single
// logical thread of control. Callers introducing goroutines must add
// their own mutual exclusion around the mutating methods.
type Store struct {
	backend  Backend
	ids      IDGenerator
	events   EventSink
	reporter ErrorReporter
	catalog  MessageCatalog
	clock    Clock
	logger   *slog.Logger

	records []Record
}

// Collaborators bundles the external dependencies a Store is built from.
// Backend is required; every other field has a safe default.
type Collaborators struct {
	Backend  Backend
	IDs      IDGenerator
	Events   EventSink
	Reporter ErrorReporter
	Catalog  MessageCatalog
	Clock    Clock
	Logger   *slog.Logger
}

// NewStore creates a Store wired to the given collaborators.
func NewStore(c Collaborators) *Store {
	if c.IDs == nil {
		c.IDs = UUIDGenerator{}
	}
	if c.Events == nil {
		c.Events = NopSink{}
	}
	if c.Reporter == nil {
		c.Reporter = NopReporter{}
	}
	if c.Catalog == nil {
		c.Catalog = fallbackCatalog{}
	}
	if c.Clock == nil {
		c.Clock = SystemClock{}
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		backend:  c.Backend,
		ids:      c.IDs,
		events:   c.Events,
		reporter: c.Reporter,
		catalog:  c.Catalog,
		clock:    c.Clock,
		logger:   c.Logger,
	}
}

// Init hydrates the store from the backend, normalizing each raw value
// independently. It replaces the whole collection and emits no events:
// hydration is not a logical mutation.
func (s *Store) Init(ctx context.Context) error {
	raws, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}

	records := make([]Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, Normalize(raw, s.ids, s.clock))
	}
	s.records = records

	s.logger.Debug("store hydrated", "records", len(records))
	return nil
}

// Create validates and appends a new record.
//
// Preconditions, checked in order: non-blank text, a concrete folder,
// and an id not already present. Each failure pushes a localized message
// through the ErrorReporter and returns the matching sentinel error,
// leaving the store unchanged.
func (s *Store) Create(ctx context.Context, rec Record) error {
	if strings.TrimSpace(rec.Text) == "" {
		return s.fail(FailureInvalidRecord, ErrInvalidRecord)
	}
	if rec.FolderID == "" {
		return s.fail(FailureFolderRequired, ErrFolderRequired)
	}
	if s.indexOf(rec.ID) >= 0 {
		return s.fail(FailureDuplicateID, ErrDuplicateID)
	}

	rec = rec.Clone()
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	now := s.clock.Now()
	if rec.CreatedAt == 0 {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt == 0 {
		rec.UpdatedAt = now
	}

	s.records = append(s.records, rec)
	s.persist(ctx)
	s.emit(Event{Type: EventCreated, ID: rec.ID, Record: rec.Clone()})
	return nil
}

// Update merges a patch into an existing record. Patch fields overwrite,
// unspecified fields persist, and UpdatedAt is always refreshed. The
// patch must carry a concrete folder id.
func (s *Store) Update(ctx context.Context, id string, patch Patch) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return s.fail(FailureNotFound, ErrNotFound)
	}
	if patch.Text != nil && strings.TrimSpace(*patch.Text) == "" {
		return s.fail(FailureInvalidRecord, ErrInvalidRecord)
	}
	if patch.FolderID == nil || *patch.FolderID == "" {
		return s.fail(FailureFolderRequiredEdit, ErrFolderRequired)
	}

	rec := s.records[idx]
	if patch.Text != nil {
		rec.Text = *patch.Text
	}
	if patch.Tags != nil {
		rec.Tags = append([]string{}, patch.Tags...)
	}
	if patch.Favorite != nil {
		rec.Favorite = *patch.Favorite
	}
	rec.FolderID = *patch.FolderID
	rec.UpdatedAt = s.clock.Now()
	s.records[idx] = rec

	s.persist(ctx)
	s.emit(Event{Type: EventUpdated, ID: id, Record: rec.Clone(), Patch: &patch})
	return nil
}

// Delete removes a record by id. A missing id is a silent no-op: the
// collection is untouched and no event is emitted. The boolean result
// distinguishes applied from skipped-not-found.
func (s *Store) Delete(ctx context.Context, id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	prior := s.records[idx]
	s.records = slices.Delete(s.records, idx, idx+1)

	s.persist(ctx)
	s.emit(Event{Type: EventRemoved, ID: id, Record: prior})
	return true
}

// ToggleFavorite flips the favorite flag. Missing id is a silent no-op.
func (s *Store) ToggleFavorite(ctx context.Context, id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.records[idx].Favorite = !s.records[idx].Favorite
	rec := s.records[idx]

	s.persist(ctx)
	s.emit(Event{Type: EventFavorited, ID: id, Record: rec.Clone(), Favorite: rec.Favorite})
	return true
}

// IncrementUsage bumps the usage counter. Missing id is a silent no-op.
func (s *Store) IncrementUsage(ctx context.Context, id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.records[idx].UsageCount++
	rec := s.records[idx]

	s.persist(ctx)
	s.emit(Event{Type: EventCopied, ID: id, Record: rec.Clone(), UsageCount: rec.UsageCount})
	return true
}

// Records returns a point-in-time copy of the collection, safe to hand
// to FilterAndSort or to callers without exposing internal state.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id string) (Record, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Record{}, false
	}
	return s.records[idx].Clone(), true
}

// Len reports the number of records currently held.
func (s *Store) Len() int { return len(s.records) }

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.records, func(r Record) bool { return r.ID == id })
}

// persist writes the full collection through the backend. In-memory
// state is authoritative: a failed save is logged and not rolled back.
func (s *Store) persist(ctx context.Context) {
	if err := s.backend.Save(ctx, s.Records()); err != nil {
		s.logger.Error("persist failed, in-memory state retained", "error", err)
	}
}

func (s *Store) emit(e Event) {
	e.Timestamp = s.clock.Now()
	s.events.Publish(e)
}

func (s *Store) fail(f Failure, err error) error {
	s.reporter.Report(s.catalog.Message(f))
	return err
}

// fallbackCatalog is the default MessageCatalog: it echoes the failure
// kind so a store without a catalog still produces usable messages.
type fallbackCatalog struct{}

func (fallbackCatalog) Message(f Failure) string { return string(f) }
