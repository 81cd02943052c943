package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for inventory
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory <directory>...",
		Short: "List files under directories and write a report",
		Long: `Inventory enumerates every file under one or more directories, applies
optional filters, sorts the result, and writes a report file.

Reports are plain text (one absolute path per line), Markdown, or HTML
with one clickable file:// link per file.

Configuration defaults are loaded from .inventory.yaml if present.
Command-line flags override configuration file settings.

Examples:
  # List everything under a project, one path per line
  inventory ~/projects

  # Only Go and Markdown files, biggest first
  inventory -e .go -e .md --sort size --order desc ~/projects

  # Clickable HTML report of PDFs across two trees
  inventory -f html -o papers.html -e .pdf ~/papers ~/archive

  # Shallow scan, skipping dotfiles
  inventory --depth 1 --skip-hidden /var/log

  # Names that contain both terms (case-insensitive)
  inventory --contains report --contains 2024 ~/documents`,
		Version:      Version,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runScan,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (default: file_list_<timestamp> plus format extension)")
	cmd.Flags().StringP("format", "f", "", "Report format: txt, html, or md (default txt)")
	cmd.Flags().StringSliceP("extensions", "e", nil, "Only include files with these extensions (repeatable)")
	cmd.Flags().String("sort", "", "Sort key: none, name, size, or date (default none)")
	cmd.Flags().String("order", "", "Sort order: asc or desc (default asc)")
	cmd.Flags().Int("depth", -1, "Maximum traversal depth (-1 = unlimited)")
	cmd.Flags().Bool("skip-hidden", false, "Exclude files and directories whose name starts with a dot")
	cmd.Flags().StringSlice("contains", nil, "Only include files whose name contains these terms (repeatable)")
	cmd.Flags().Bool("case-sensitive", false, "Match --contains terms case-sensitively")
	cmd.Flags().String("contains-mode", "", "Combine --contains terms with 'and' or 'or' (default and)")
	cmd.Flags().String("config", "", "Path to config file (default: .inventory.yaml)")
	cmd.Flags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().BoolP("verbose", "v", false, "Show detailed scan information")

	return cmd
}
