package core

import "errors"

// Validation failures reported by Create and Update. All are recoverable,
// caller-visible conditions; none is process-fatal.
var (
	ErrInvalidRecord  = errors.New("record text is missing or blank")
	ErrFolderRequired = errors.New("record is not assigned to a folder")
	ErrDuplicateID    = errors.New("record id already exists")
	ErrNotFound       = errors.New("record not found")
)

// Failure identifies a validation failure kind for message lookup.
// Create and Update report the resolved message through the
// ErrorReporter alongside the returned error.
type Failure string

const (
	FailureInvalidRecord      Failure = "invalid_record"
	FailureFolderRequired     Failure = "folder_required"
	FailureFolderRequiredEdit Failure = "folder_required_edit"
	FailureDuplicateID        Failure = "duplicate_id"
	FailureNotFound           Failure = "not_found"
)
