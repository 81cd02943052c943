package render

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/harrison/inventory/internal/models"
)

// markdownEscaper neutralizes characters that would alter link syntax when
// a file name appears as markdown link text.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	// Angle brackets would otherwise be parsed as raw inline HTML
	`<`, `\<`,
	`>`, `\>`,
)

// renderMarkdown produces a bullet list with one file:// link per record,
// link text being the base file name.
func renderMarkdown(records []models.FileRecord) []byte {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString("- [")
		b.WriteString(markdownEscaper.Replace(rec.Name))
		b.WriteString("](")
		b.WriteString(fileURI(rec.Path))
		b.WriteString(")\n")
	}
	return []byte(b.String())
}

// fileURI converts an absolute path into a percent-escaped file:// URI.
func fileURI(path string) string {
	p := filepath.ToSlash(path)
	// Windows drive paths need a leading slash in the URI
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	s := u.String()
	// Parentheses are legal in URIs but terminate a markdown link target
	s = strings.ReplaceAll(s, "(", "%28")
	s = strings.ReplaceAll(s, ")", "%29")
	return s
}
