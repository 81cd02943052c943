package render

import (
	"strings"

	"github.com/harrison/inventory/internal/models"
)

// renderText produces one absolute path per line, newline-terminated, with
// no header or footer.
func renderText(records []models.FileRecord) []byte {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(rec.Path)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
