package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/inventory/internal/models"
)

// execute runs the root command with the given args and returns stdout,
// stderr, and the execution error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanWritesTextReport(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one.txt"), "1")
	writeFile(t, filepath.Join(root, "sub", "two.txt"), "22")

	outPath := filepath.Join(t.TempDir(), "report.txt")
	stdout, _, err := execute(t, root, "-o", outPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "File list written to "+outPath)
	assert.Contains(t, stdout, "Total files: 2")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, filepath.IsAbs(line), "expected absolute path, got %q", line)
	}
}

func TestScanSizeDescendingScenario(t *testing.T) {
	// a.txt (10 bytes), B.TXT (20 bytes), .hidden.txt (5 bytes);
	// skip hidden, .txt extension filter, sort by size descending
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), strings.Repeat("x", 10))
	writeFile(t, filepath.Join(root, "B.TXT"), strings.Repeat("x", 20))
	writeFile(t, filepath.Join(root, ".hidden.txt"), strings.Repeat("x", 5))

	outPath := filepath.Join(t.TempDir(), "report.txt")
	_, _, err := execute(t, root,
		"-o", outPath,
		"-e", ".txt",
		"--skip-hidden",
		"--sort", "size",
		"--order", "desc")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "B.TXT", filepath.Base(lines[0]))
	assert.Equal(t, "a.txt", filepath.Base(lines[1]))
}

func TestScanContainsModes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Report_Summary_2024.txt"), "x")
	writeFile(t, filepath.Join(root, "report_only.txt"), "x")
	writeFile(t, filepath.Join(root, "unrelated.txt"), "x")

	outDir := t.TempDir()

	// AND mode: only the file containing both terms survives
	andPath := filepath.Join(outDir, "and.txt")
	_, _, err := execute(t, root,
		"-o", andPath,
		"--contains", "report",
		"--contains", "summary")
	require.NoError(t, err)

	data, err := os.ReadFile(andPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Report_Summary_2024.txt")
	assert.NotContains(t, string(data), "report_only.txt")

	// OR mode: either term is enough
	orPath := filepath.Join(outDir, "or.txt")
	_, _, err = execute(t, root,
		"-o", orPath,
		"--contains", "report",
		"--contains", "summary",
		"--contains-mode", "or")
	require.NoError(t, err)

	data, err = os.ReadFile(orPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Report_Summary_2024.txt")
	assert.Contains(t, string(data), "report_only.txt")
	assert.NotContains(t, string(data), "unrelated.txt")
}

func TestScanHTMLReport(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "page.txt"), "x")

	outPath := filepath.Join(t.TempDir(), "report.html")
	_, _, err := execute(t, root, "-f", "html", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "<!DOCTYPE html>")
	assert.Contains(t, content, `<a href="file://`)
	assert.Contains(t, content, ">page.txt</a>")
}

func TestScanAllRootsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "report.txt")

	_, _, err := execute(t,
		filepath.Join(tmpDir, "missing-a"),
		filepath.Join(tmpDir, "missing-b"),
		"-o", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid input directories")

	// Nothing must be written on total failure
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestScanSkippedRootIsNonFatal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.txt"), "x")
	missing := filepath.Join(root, "missing")

	outPath := filepath.Join(t.TempDir(), "report.txt")
	_, stderr, err := execute(t, missing, root, "-o", outPath)
	require.NoError(t, err)

	assert.Contains(t, stderr, "could not be scanned")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "keep.txt")
}

func TestScanInvalidArguments(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad sort key", args: []string{root, "--sort", "mtime"}},
		{name: "bad order", args: []string{root, "--order", "upward"}},
		{name: "bad format", args: []string{root, "-f", "pdf"}},
		{name: "bad contains mode", args: []string{root, "--contains-mode", "xor"}},
		{name: "depth below -1", args: []string{root, "--depth=-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestScanConfigFileDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "bb.txt"), "x")
	writeFile(t, filepath.Join(root, "aa.txt"), "x")

	configPath := filepath.Join(t.TempDir(), "inventory.yaml")
	writeFile(t, configPath, "sort: name\norder: desc\n")

	outPath := filepath.Join(t.TempDir(), "report.txt")
	_, _, err := execute(t, root, "--config", configPath, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "bb.txt", filepath.Base(lines[0]))
	assert.Equal(t, "aa.txt", filepath.Base(lines[1]))

	// A flag overrides the config file
	outPath2 := filepath.Join(t.TempDir(), "report2.txt")
	_, _, err = execute(t, root, "--config", configPath, "--order", "asc", "-o", outPath2)
	require.NoError(t, err)

	data, err = os.ReadFile(outPath2)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "aa.txt", filepath.Base(lines[0]))
}

func TestScanNoColorDisablesAnsiOutput(t *testing.T) {
	previous := color.NoColor
	t.Cleanup(func() { color.NoColor = previous })
	color.NoColor = false

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.txt"), "x")
	missing := filepath.Join(root, "missing")

	outPath := filepath.Join(t.TempDir(), "report.txt")
	_, stderr, err := execute(t, missing, root, "-o", outPath, "--no-color")
	require.NoError(t, err)

	assert.True(t, color.NoColor, "--no-color must disable colors globally")
	assert.Contains(t, stderr, "could not be scanned")
	assert.NotContains(t, stderr, "\x1b[", "warnings must be plain with --no-color")
}

func TestScanConfigContainsTerms(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "report_2024.txt"), "x")
	writeFile(t, filepath.Join(root, "notes.txt"), "x")

	configPath := filepath.Join(t.TempDir(), "inventory.yaml")
	writeFile(t, configPath, "contains:\n  - report\n")

	outPath := filepath.Join(t.TempDir(), "report.txt")
	_, _, err := execute(t, root, "--config", configPath, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "report_2024.txt")
	assert.NotContains(t, string(data), "notes.txt")

	// A --contains flag replaces the config terms entirely
	outPath2 := filepath.Join(t.TempDir(), "report2.txt")
	_, _, err = execute(t, root, "--config", configPath, "--contains", "notes", "-o", outPath2)
	require.NoError(t, err)

	data, err = os.ReadFile(outPath2)
	require.NoError(t, err)
	assert.Contains(t, string(data), "notes.txt")
	assert.NotContains(t, string(data), "report_2024.txt")
}

func TestScanVerboseSummary(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "x")
	writeFile(t, filepath.Join(root, "b.go"), "x")

	outPath := filepath.Join(t.TempDir(), "report.txt")
	stdout, _, err := execute(t, root, "-o", outPath, "-e", ".txt", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Walked: 2 files")
	assert.Contains(t, stdout, "Filtered out: 1 files")
	assert.Contains(t, stdout, "Duration:")
}

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		format   models.Format
		want     string
	}{
		{name: "extension appended for text", provided: "report", format: models.FormatText, want: "report.txt"},
		{name: "extension appended for html", provided: "report", format: models.FormatHTML, want: "report.html"},
		{name: "existing extension kept", provided: "report.txt", format: models.FormatText, want: "report.txt"},
		{name: "uppercase extension accepted", provided: "report.TXT", format: models.FormatText, want: "report.TXT"},
		{name: "mismatched extension appended", provided: "report.txt", format: models.FormatHTML, want: "report.txt.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveOutputPath(tt.provided, tt.format))
		})
	}
}

func TestResolveOutputPathDefaultName(t *testing.T) {
	got := resolveOutputPath("", models.FormatHTML)
	assert.True(t, strings.HasPrefix(got, "file_list_"), "got %q", got)
	assert.True(t, strings.HasSuffix(got, ".html"), "got %q", got)
}
