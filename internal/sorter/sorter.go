// Package sorter orders filtered file records deterministically.
package sorter

import (
	"sort"
	"strings"

	"github.com/harrison/inventory/internal/models"
)

// Config selects the sort key and direction.
type Config struct {
	// Key is the record attribute to order by; SortNone preserves the
	// walker's traversal order.
	Key models.SortKey

	// Order is ascending or descending.
	Order models.SortOrder
}

// Sort returns a new slice holding the records in the configured order.
// The input slice is not modified. Ties are broken by base name and then
// full path, so the ordering is a deterministic total order; the sort is
// stable, so sorting twice yields identical output.
func Sort(records []models.FileRecord, cfg Config) []models.FileRecord {
	out := make([]models.FileRecord, len(records))
	copy(out, records)

	if cfg.Key == models.SortNone || len(out) < 2 {
		return out
	}

	less := lessFunc(cfg.Key)
	if cfg.Order == models.OrderDesc {
		asc := less
		less = func(a, b models.FileRecord) bool { return asc(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// lessFunc builds the ascending comparator for the given key.
func lessFunc(key models.SortKey) func(a, b models.FileRecord) bool {
	switch key {
	case models.SortSize:
		return func(a, b models.FileRecord) bool {
			if a.Size != b.Size {
				return a.Size < b.Size
			}
			return nameLess(a, b)
		}
	case models.SortDate:
		return func(a, b models.FileRecord) bool {
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.Before(b.ModTime)
			}
			return nameLess(a, b)
		}
	default: // models.SortName
		return nameLess
	}
}

// nameLess compares by case-folded base name, then raw base name, then
// full path.
func nameLess(a, b models.FileRecord) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Path < b.Path
}
