package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Paths      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	if !color.NoColor {
		b.WriteString("\x1b[33m")
	}
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if len(w.Paths) > 0 {
		b.WriteString("    ")
		if len(w.Paths) == 1 {
			b.WriteString("Affected path:\n")
		} else {
			b.WriteString("Affected paths:\n")
		}
		for i, path := range w.Paths {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, path))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !color.NoColor {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprint(out, b.String())
}

// WarnSkippedRoots creates a warning for roots that were missing or not
// directories.
func WarnSkippedRoots(roots []string) Warning {
	return Warning{
		Title:      "Some directories could not be scanned",
		Paths:      roots,
		Suggestion: "Check that the paths exist and are directories.",
	}
}
