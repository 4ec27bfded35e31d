package core

import (
	"slices"
	"sort"
	"strings"
)

// Order selects the sort applied after filtering. Anything other than
// OrderUsage and OrderUpdated, including the zero value, falls back to
// creation time.
type Order string

const (
	OrderCreated Order = "createdAt"
	OrderUpdated Order = "updatedAt"
	OrderUsage   Order = "usage"
)

// Criteria holds the optional, independently combinable filters and the
// sort order for FilterAndSort. Zero-valued filters are skipped.
type Criteria struct {
	Folder   string
	Text     string
	Favorite bool
	Tag      string
	Order    Order
}

// FilterAndSort applies the criteria's filters (logical AND, in a fixed
// order) and then sorts by the chosen order, most recent or most used
// first. It is pure: the input slice and its elements are never mutated,
// and ties keep their input order.
func FilterAndSort(records []Record, c Criteria) []Record {
	filtered := make([]Record, 0, len(records))
	lowered := strings.ToLower(c.Text)

	for _, r := range records {
		if c.Folder != "" && r.FolderID != c.Folder {
			continue
		}
		if c.Text != "" && !strings.Contains(strings.ToLower(r.Text), lowered) {
			continue
		}
		if c.Favorite && !r.Favorite {
			continue
		}
		if c.Tag != "" && !slices.Contains(r.Tags, c.Tag) {
			continue
		}
		filtered = append(filtered, r)
	}

	switch c.Order {
	case OrderUsage:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].UsageCount > filtered[j].UsageCount
		})
	case OrderUpdated:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].UpdatedAt > filtered[j].UpdatedAt
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt > filtered[j].CreatedAt
		})
	}

	return filtered
}
