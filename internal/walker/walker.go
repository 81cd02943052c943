// Package walker provides error-tolerant directory traversal for the
// inventory pipeline.
//
// The walker enumerates every regular file reachable from a set of root
// directories, honoring a depth limit and an optional hidden-entry policy.
// Per-entry failures (permission denied, races with concurrent deletes) are
// collected and traversal continues; only a configuration error or the
// absence of any valid root is fatal.
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/inventory/internal/models"
)

// ErrNoValidRoots is returned when none of the requested roots exists or is
// a directory. Nothing is written in that case.
var ErrNoValidRoots = errors.New("no valid input directories")

// Options configures directory traversal behavior
type Options struct {
	// MaxDepth limits traversal depth (-1 = unlimited).
	// A root's immediate files are depth 0; each subdirectory level adds 1.
	MaxDepth int

	// SkipHidden excludes files and directories whose base name starts
	// with ".". Hidden directories are not descended into.
	SkipHidden bool

	// OnRoot, if set, is invoked once per valid root before that root is
	// traversed. Used for progress display.
	OnRoot func(root string)
}

// Validate checks that the options are well formed.
func (o Options) Validate() error {
	if o.MaxDepth < -1 {
		return fmt.Errorf("invalid depth %d: must be >= -1", o.MaxDepth)
	}
	return nil
}

// Result contains the outcome of a traversal
type Result struct {
	// Records contains one entry per regular file, in depth-first
	// root-by-root order. Files reachable from overlapping roots appear
	// once per root; the walker does not deduplicate.
	Records []models.FileRecord

	// SkippedRoots lists requested roots that were missing or not
	// directories
	SkippedRoots []string

	// Errors contains non-fatal per-entry errors encountered during the
	// walk
	Errors []error
}

// Walk enumerates regular files under each root, in the given order.
// Roots that do not exist or are not directories are recorded in
// Result.SkippedRoots and skipped; if every root is skipped, Walk returns
// ErrNoValidRoots.
func Walk(roots []string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Records: make([]models.FileRecord, 0),
	}

	valid := 0
	for _, root := range roots {
		// os.Stat follows symlinks, so a symlinked root is accepted
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			result.SkippedRoots = append(result.SkippedRoots, root)
			continue
		}
		valid++
		if opts.OnRoot != nil {
			opts.OnRoot(root)
		}
		walkRoot(root, opts, result)
	}

	if valid == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoValidRoots, strings.Join(roots, ", "))
	}

	return result, nil
}

// walkRoot walks a single validated root, appending records and non-fatal
// errors to result.
func walkRoot(root string, opts Options, result *Result) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("failed to resolve root %s: %w", root, err))
		return
	}

	// WalkDir lstats its argument, so a symlinked root must be resolved
	// first. Two roots that resolve to the same directory then yield the
	// same absolute paths, once per root.
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}

	// WalkDir does not follow symlinks into directories, matching the
	// no-follow traversal contract.
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // Continue walking
		}

		// Skip the root directory itself
		if path == absRoot {
			return nil
		}

		depth := entryDepth(absRoot, path)

		if d.IsDir() {
			if opts.SkipHidden && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			// A directory's entries sit one level below it; prune
			// when they would exceed the depth limit
			if opts.MaxDepth != -1 && depth+1 > opts.MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if opts.SkipHidden && strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		// Only regular files become records; symlinks, sockets and
		// devices are ignored
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to stat %s: %w", path, err))
			return nil
		}

		result.Records = append(result.Records, models.FileRecord{
			Path:    path,
			Name:    d.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Depth:   depth,
		})
		return nil
	})

	if walkErr != nil {
		result.Errors = append(result.Errors, fmt.Errorf("failed to walk %s: %w", root, walkErr))
	}
}

// entryDepth returns the number of directory levels between the root and
// the entry. Direct children of the root are depth 0.
func entryDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator))
}
