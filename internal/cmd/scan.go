package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrison/inventory/internal/config"
	"github.com/harrison/inventory/internal/display"
	"github.com/harrison/inventory/internal/filter"
	"github.com/harrison/inventory/internal/logger"
	"github.com/harrison/inventory/internal/models"
	"github.com/harrison/inventory/internal/render"
	"github.com/harrison/inventory/internal/sorter"
	"github.com/harrison/inventory/internal/walker"
)

// scanSettings is the validated, merged view of config file and flags.
// It is built once at the boundary; the pipeline stages receive their own
// immutable slices of it.
type scanSettings struct {
	roots         []string
	output        string
	format        models.Format
	extensions    []string
	sortKey       models.SortKey
	sortOrder     models.SortOrder
	depth         int
	skipHidden    bool
	contains      []string
	caseSensitive bool
	containsMode  models.MatchMode
	logLevel      string
	noColor       bool
	verbose       bool
}

// runScan implements the root command: walk, filter, sort, render, report.
func runScan(cmd *cobra.Command, args []string) error {
	start := time.Now()

	settings, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}

	// Both the logger and the display package key off this switch
	if settings.noColor {
		color.NoColor = true
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(stderr, settings.logLevel)

	runID := uuid.New().String()
	log.LogDebug(fmt.Sprintf("starting run %s with %d root(s)", runID, len(settings.roots)))

	// Progress display only on an interactive terminal
	var progress *display.ProgressIndicator
	if display.IsTerminal(stderr) {
		progress = display.NewProgressIndicator(stderr, len(settings.roots))
		progress.Start()
	}

	walkOpts := walker.Options{
		MaxDepth:   settings.depth,
		SkipHidden: settings.skipHidden,
		OnRoot: func(root string) {
			if progress != nil {
				progress.Step(root)
			}
			log.LogDebug("scanning " + root)
		},
	}

	result, err := walker.Walk(settings.roots, walkOpts)
	if err != nil {
		return err
	}

	if progress != nil {
		progress.Complete(len(result.Records))
	}

	if len(result.SkippedRoots) > 0 {
		display.WarnSkippedRoots(result.SkippedRoots).Display(stderr)
	}
	if len(result.Errors) > 0 {
		log.LogWarn(fmt.Sprintf("%d entries could not be read", len(result.Errors)))
		for _, entryErr := range result.Errors {
			log.LogDebug(entryErr.Error())
		}
	}

	filtered := filter.Apply(result.Records, filter.Config{
		Extensions:    settings.extensions,
		Contains:      settings.contains,
		CaseSensitive: settings.caseSensitive,
		Mode:          settings.containsMode,
	})

	ordered := sorter.Sort(filtered, sorter.Config{
		Key:   settings.sortKey,
		Order: settings.sortOrder,
	})

	count, err := render.Write(ordered, render.Config{
		Format:     settings.format,
		OutputPath: settings.output,
		RunID:      runID,
	})
	if err != nil {
		return err
	}

	summary := models.Summary{
		RunID:        runID,
		OutputPath:   settings.output,
		Walked:       len(result.Records),
		Written:      count,
		SkippedRoots: result.SkippedRoots,
		EntryErrors:  len(result.Errors),
		Duration:     time.Since(start),
	}
	printSummary(stdout, summary, settings.verbose)

	return nil
}

// resolveSettings merges the config file and command-line flags into a
// validated scanSettings. Flags override the config file, which overrides
// built-in defaults.
func resolveSettings(cmd *cobra.Command, args []string) (*scanSettings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	stringSetting := func(flag, fromConfig string) string {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			return value
		}
		return fromConfig
	}
	boolSetting := func(flag string, fromConfig bool) bool {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetBool(flag)
			return value
		}
		return fromConfig
	}

	format, err := models.ParseFormat(stringSetting("format", cfg.Format))
	if err != nil {
		return nil, err
	}
	sortKey, err := models.ParseSortKey(stringSetting("sort", cfg.Sort))
	if err != nil {
		return nil, err
	}
	sortOrder, err := models.ParseSortOrder(stringSetting("order", cfg.Order))
	if err != nil {
		return nil, err
	}
	containsMode, err := models.ParseMatchMode(stringSetting("contains-mode", cfg.ContainsMode))
	if err != nil {
		return nil, err
	}

	depth := cfg.Depth
	if cmd.Flags().Changed("depth") {
		depth, _ = cmd.Flags().GetInt("depth")
	}
	if depth < -1 {
		return nil, fmt.Errorf("invalid depth %d: must be >= -1", depth)
	}

	extensions := cfg.Extensions
	if cmd.Flags().Changed("extensions") {
		extensions, _ = cmd.Flags().GetStringSlice("extensions")
	}

	contains := cfg.Contains
	if cmd.Flags().Changed("contains") {
		contains, _ = cmd.Flags().GetStringSlice("contains")
	}

	output, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return &scanSettings{
		roots:         args,
		output:        resolveOutputPath(output, format),
		format:        format,
		extensions:    extensions,
		sortKey:       sortKey,
		sortOrder:     sortOrder,
		depth:         depth,
		skipHidden:    boolSetting("skip-hidden", cfg.SkipHidden),
		contains:      contains,
		caseSensitive: boolSetting("case-sensitive", cfg.CaseSensitive),
		containsMode:  containsMode,
		logLevel:      stringSetting("log-level", cfg.LogLevel),
		noColor:       noColor,
		verbose:       verbose,
	}, nil
}

// resolveOutputPath returns the report path for the run. An empty name
// produces a timestamp-based default; a provided name gets the format's
// conventional extension appended when missing.
func resolveOutputPath(provided string, format models.Format) string {
	ext := format.Extension()
	if provided == "" {
		return fmt.Sprintf("file_list_%d%s", time.Now().Unix(), ext)
	}
	if !strings.EqualFold(filepath.Ext(provided), ext) {
		provided += ext
	}
	return provided
}

// printSummary writes the success report to stdout.
func printSummary(out io.Writer, summary models.Summary, verbose bool) {
	fmt.Fprintf(out, "File list written to %s\n", summary.OutputPath)
	fmt.Fprintf(out, "Total files: %d\n", summary.Written)

	if !verbose {
		return
	}
	fmt.Fprintf(out, "\nRun %s\n", summary.RunID)
	fmt.Fprintf(out, "  Walked: %d files\n", summary.Walked)
	fmt.Fprintf(out, "  Filtered out: %d files\n", summary.Walked-summary.Written)
	if len(summary.SkippedRoots) > 0 {
		fmt.Fprintf(out, "  Skipped roots: %d\n", len(summary.SkippedRoots))
	}
	if summary.EntryErrors > 0 {
		fmt.Fprintf(out, "  Unreadable entries: %d\n", summary.EntryErrors)
	}
	fmt.Fprintf(out, "  Duration: %s\n", summary.Duration.Round(time.Millisecond))
}
