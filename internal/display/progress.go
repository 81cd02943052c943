// Package display provides terminal output helpers for scan progress and
// user-facing warnings. Colors follow color.NoColor, which covers the
// NO_COLOR environment variable and the --no-color flag.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ProgressIndicator shows per-root scan progress with ANSI colors.
type ProgressIndicator struct {
	writer     io.Writer
	totalRoots int
	current    int
}

// NewProgressIndicator creates a progress indicator for the given number
// of roots.
func NewProgressIndicator(w io.Writer, totalRoots int) *ProgressIndicator {
	return &ProgressIndicator{
		writer:     w,
		totalRoots: totalRoots,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Scanning directories:\n")
}

// Step displays progress for the current root: [N/Total] root (cyan)
func (p *ProgressIndicator) Step(root string) {
	p.current++
	if color.NoColor {
		fmt.Fprintf(p.writer, "  [%d/%d] %s\n", p.current, p.totalRoots, root)
		return
	}
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.totalRoots, root)
}

// Complete displays a success message with a green checkmark
func (p *ProgressIndicator) Complete(fileCount int) {
	if color.NoColor {
		fmt.Fprintf(p.writer, "✓ Found %d files\n", fileCount)
		return
	}
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Found %d files\n", fileCount)
}

// IsTerminal reports whether the writer is an interactive terminal.
// Progress output is suppressed for pipes and files.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
