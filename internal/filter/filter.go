// Package filter applies name-based predicates to walked file records.
package filter

import (
	"path/filepath"
	"strings"

	"github.com/harrison/inventory/internal/models"
)

// Config describes the active predicates. The zero value passes every
// record.
type Config struct {
	// Extensions is an allow-list of file extensions. Entries may be
	// given with or without the leading dot and in any case; an empty
	// list disables the extension predicate.
	Extensions []string

	// Contains lists substring terms matched against the base file name.
	// An empty list disables the substring predicate.
	Contains []string

	// CaseSensitive controls substring matching. When false, terms and
	// names are lowercased before comparison.
	CaseSensitive bool

	// Mode selects how multiple Contains terms combine: MatchAll
	// requires every term, MatchAny requires at least one.
	Mode models.MatchMode
}

// Apply returns the subsequence of records whose names satisfy both the
// extension and the substring predicates. The input slice is not modified.
func Apply(records []models.FileRecord, cfg Config) []models.FileRecord {
	exts := extensionSet(cfg.Extensions)

	out := make([]models.FileRecord, 0, len(records))
	for _, rec := range records {
		if !matchExtension(rec.Name, exts) {
			continue
		}
		if !matchContains(rec.Name, cfg) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// extensionSet normalizes the allow-list into a lookup map keyed by
// lowercase dot-prefixed extensions.
func extensionSet(extensions []string) map[string]bool {
	if len(extensions) == 0 {
		return nil
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

// matchExtension reports whether the file name's extension is in the
// allow-list. A nil set passes everything; comparison is case-insensitive.
func matchExtension(name string, exts map[string]bool) bool {
	if len(exts) == 0 {
		return true
	}
	return exts[strings.ToLower(filepath.Ext(name))]
}

// matchContains reports whether the base name satisfies the substring
// terms under the configured combination mode.
func matchContains(name string, cfg Config) bool {
	if len(cfg.Contains) == 0 {
		return true
	}

	if !cfg.CaseSensitive {
		name = strings.ToLower(name)
	}

	for _, term := range cfg.Contains {
		if !cfg.CaseSensitive {
			term = strings.ToLower(term)
		}
		matched := strings.Contains(name, term)

		if cfg.Mode == models.MatchAny {
			if matched {
				return true
			}
		} else if !matched {
			return false
		}
	}

	// MatchAll: every term matched. MatchAny: none did.
	return cfg.Mode != models.MatchAny
}
