package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/harrison/inventory/internal/models"
)

// renderHTML produces a minimal valid HTML document with one clickable
// anchor per record. The body is the markdown link list converted through
// goldmark, which yields a <ul> with one <li><a href="file://..."> entry
// per file in the given order.
func renderHTML(records []models.FileRecord, runID string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString("<html>\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\">\n")
	buf.WriteString("<title>File inventory</title>\n")
	buf.WriteString("</head>\n<body>\n")
	if runID != "" {
		fmt.Fprintf(&buf, "<!-- inventory run %s -->\n", runID)
	}

	if err := goldmark.Convert(renderMarkdown(records), &buf); err != nil {
		return nil, fmt.Errorf("failed to render HTML body: %w", err)
	}

	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
