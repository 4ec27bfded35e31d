package core

// RawRecord is the loosely-typed shape a Backend loads from storage.
// Values carry whatever types the storage format produced (JSON decoding
// yields float64 for numbers, []any for arrays, nil for null). Normalize
// turns a RawRecord into a well-formed Record without ever failing.
type RawRecord map[string]any

// Record is the central entity of the domain: a single user-authored
// prompt with its organizational metadata and usage statistics.
// An empty FolderID means the record is not assigned to any folder.
type Record struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Tags       []string `json:"tags"`
	Favorite   bool     `json:"favorite"`
	FolderID   string   `json:"folderId"`
	CreatedAt  int64    `json:"createdAt"` // Unix milliseconds
	UpdatedAt  int64    `json:"updatedAt"` // Unix milliseconds
	UsageCount int      `json:"usageCount"`
}

// Clone returns a copy of the record with its own tag slice.
func (r Record) Clone() Record {
	out := r
	if r.Tags != nil {
		out.Tags = append([]string(nil), r.Tags...)
	}
	return out
}

// Patch describes a partial update to a record. Nil fields are left
// untouched by Update; non-nil fields overwrite the stored value.
// ID, CreatedAt and UsageCount are deliberately not patchable.
type Patch struct {
	Text     *string
	Tags     []string
	Favorite *bool
	FolderID *string
}
