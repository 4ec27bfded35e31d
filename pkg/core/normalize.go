package core

// Normalize repairs a raw loaded value into a well-formed Record.
// Every field is validated independently: a malformed field is replaced
// with its default instead of rejecting the whole record, so corrupt
// stored data degrades gracefully rather than blocking startup.
func Normalize(raw RawRecord, ids IDGenerator, clock Clock) Record {
	now := clock.Now()

	rec := Record{
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if s, ok := raw["id"].(string); ok {
		rec.ID = s
	} else {
		rec.ID = ids.NewID()
	}

	if s, ok := raw["text"].(string); ok {
		rec.Text = s
	}

	if tags, ok := stringSlice(raw["tags"]); ok {
		rec.Tags = tags
	}

	rec.Favorite = truthy(raw["favorite"])

	if s, ok := raw["folderId"].(string); ok {
		rec.FolderID = s
	}

	if n, ok := integer(raw["createdAt"]); ok {
		rec.CreatedAt = n
	}
	if n, ok := integer(raw["updatedAt"]); ok {
		rec.UpdatedAt = n
	}

	if n, ok := integer(raw["usageCount"]); ok {
		rec.UsageCount = int(n)
	}

	return rec
}

// stringSlice coerces a raw value into a tag list. JSON decoding produces
// []any; string elements are kept, anything else is dropped.
func stringSlice(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...), true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// integer accepts the numeric types a storage decoder may produce.
func integer(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// truthy mirrors loose boolean coercion over decoded storage values:
// false, nil, zero numbers and empty strings are false, everything
// else is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case nil:
		return false
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
