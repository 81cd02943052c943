package models

import (
	"fmt"
	"strings"
	"time"
)

// SortKey selects the attribute used to order the final file list.
type SortKey string

// Valid sort keys. SortNone preserves traversal order.
const (
	SortNone SortKey = "none"
	SortName SortKey = "name"
	SortSize SortKey = "size"
	SortDate SortKey = "date"
)

// ParseSortKey converts a user-supplied string into a SortKey.
// Matching is case-insensitive; an empty string means SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "name":
		return SortName, nil
	case "size":
		return SortSize, nil
	case "date":
		return SortDate, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (expected none, name, size, or date)", s)
	}
}

// SortOrder selects ascending or descending ordering.
type SortOrder string

// Valid sort orders.
const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortOrder converts a user-supplied string into a SortOrder.
// Matching is case-insensitive; an empty string means OrderAsc.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return OrderAsc, nil
	case "desc":
		return OrderDesc, nil
	default:
		return "", fmt.Errorf("unknown sort order %q (expected asc or desc)", s)
	}
}

// Format selects the report output format.
type Format string

// Supported report formats.
const (
	FormatText     Format = "txt"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
)

// ParseFormat converts a user-supplied string into a Format.
// Matching is case-insensitive; an empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "txt", "text":
		return FormatText, nil
	case "html":
		return FormatHTML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected txt, html, or md)", s)
	}
}

// Extension returns the conventional file extension for the format,
// including the leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// MatchMode controls how multiple --contains terms are combined.
type MatchMode string

// Valid match modes.
const (
	MatchAll MatchMode = "and"
	MatchAny MatchMode = "or"
)

// ParseMatchMode converts a user-supplied string into a MatchMode.
// Matching is case-insensitive; an empty string means MatchAll.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "and":
		return MatchAll, nil
	case "or":
		return MatchAny, nil
	default:
		return "", fmt.Errorf("unknown contains mode %q (expected and or or)", s)
	}
}

// Summary describes the outcome of a completed scan for the exit report.
type Summary struct {
	// RunID uniquely identifies this scan run
	RunID string

	// OutputPath is the path of the written report file
	OutputPath string

	// Walked is the number of records produced by the walker
	Walked int

	// Written is the number of records that survived filtering and were
	// written to the report
	Written int

	// SkippedRoots lists roots that did not exist or were not directories
	SkippedRoots []string

	// EntryErrors is the number of non-fatal per-entry errors encountered
	EntryErrors int

	// Duration is the total pipeline wall time
	Duration time.Duration
}
