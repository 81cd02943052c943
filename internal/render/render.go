// Package render serializes an ordered file record list into a report file.
//
// Three formats are supported: plain text (one absolute path per line),
// Markdown (a list of file:// links), and HTML (the Markdown list converted
// through goldmark and wrapped in a minimal document). The report is written
// atomically under an advisory lock so concurrent runs targeting the same
// output path cannot interleave.
package render

import (
	"fmt"

	"github.com/harrison/inventory/internal/filelock"
	"github.com/harrison/inventory/internal/models"
)

// Config describes the report target.
type Config struct {
	// Format selects the serialization format.
	Format models.Format

	// OutputPath is the file to create or overwrite.
	OutputPath string

	// RunID, if set, is embedded in HTML reports as a generator comment.
	RunID string
}

// Write serializes the records in their given order to cfg.OutputPath and
// returns the number of records written. The output file is created or
// overwritten; a path that cannot be written is a fatal error.
func Write(records []models.FileRecord, cfg Config) (int, error) {
	var data []byte
	var err error

	switch cfg.Format {
	case models.FormatText:
		data = renderText(records)
	case models.FormatMarkdown:
		data = renderMarkdown(records)
	case models.FormatHTML:
		data, err = renderHTML(records, cfg.RunID)
	default:
		return 0, fmt.Errorf("unknown report format %q", cfg.Format)
	}
	if err != nil {
		return 0, err
	}

	if err := filelock.LockAndWrite(cfg.OutputPath, data); err != nil {
		return 0, fmt.Errorf("failed to write report to %s: %w", cfg.OutputPath, err)
	}

	return len(records), nil
}
