package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/harrison/extmap/internal/scanner"
)

// executeStatsCommand runs the stats command and returns stdout and stderr.
func executeStatsCommand(t *testing.T, args []string) (string, string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "extmap"}
	rootCmd.AddCommand(NewStatsCommand())

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestStatsCommand_Table(t *testing.T) {
	root := createScanTree(t)

	stdout, _, err := executeStatsCommand(t, []string{"stats", root})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	wantFragments := []string{
		"=== EXTENSION STATISTICS ===",
		"Root:          " + root,
		"Files matched: 5",
		"Total size:    145 B",
		"Extensions:    4",
		".log",
		".txt",
		".pdf",
		"(no extension)",
	}
	for _, want := range wantFragments {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, stdout)
		}
	}

	// Rows are ordered by total size descending: e.log alone is 100 bytes
	// and must come first.
	logIdx := strings.Index(stdout, ".log")
	txtIdx := strings.Index(stdout, ".txt")
	pdfIdx := strings.Index(stdout, ".pdf")
	if logIdx == -1 || txtIdx == -1 || pdfIdx == -1 {
		t.Fatalf("Expected all extension rows, got:\n%s", stdout)
	}
	if !(logIdx < txtIdx && txtIdx < pdfIdx) {
		t.Errorf("Expected rows ordered .log, .txt, .pdf by size, got:\n%s", stdout)
	}
}

func TestStatsCommand_Limit(t *testing.T) {
	root := createScanTree(t)

	stdout, _, err := executeStatsCommand(t, []string{"stats", "--limit", "2", root})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(stdout, "Showing 2 of 4 extensions") {
		t.Errorf("Expected truncation note, got:\n%s", stdout)
	}
	if strings.Contains(stdout, ".pdf") {
		t.Errorf("Expected .pdf row to be cut by the limit, got:\n%s", stdout)
	}
}

func TestStatsCommand_FiltersApply(t *testing.T) {
	root := createScanTree(t)

	stdout, _, err := executeStatsCommand(t, []string{"stats", "--pass-ext", "txt", root})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(stdout, "Files matched: 2") {
		t.Errorf("Expected only the .txt files to be counted, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Total size:    29 B") {
		t.Errorf("Expected .txt sizes summed (4+25), got:\n%s", stdout)
	}
	if strings.Contains(stdout, ".pdf") || strings.Contains(stdout, ".log") {
		t.Errorf("Expected filtered extensions to be absent, got:\n%s", stdout)
	}
}

func TestStatsCommand_EmptyTree(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := executeStatsCommand(t, []string{"stats", root})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(stdout, "No files matched.") {
		t.Errorf("Expected empty-tree message, got:\n%s", stdout)
	}
}

func TestStatsCommand_InvalidRoot(t *testing.T) {
	_, _, err := executeStatsCommand(t, []string{"stats", "/nonexistent/extmap-root"})
	if err == nil {
		t.Fatal("Expected error for nonexistent root")
	}
	if !strings.Contains(err.Error(), "invalid scan root") {
		t.Errorf("Expected invalid root error, got: %v", err)
	}
}

func TestStatsCollector(t *testing.T) {
	c := newStatsCollector()

	c.LogFileMatch(scanner.FileEntry{Path: "a.txt", Ext: ".txt", Size: 10})
	c.LogFileMatch(scanner.FileEntry{Path: "b.txt", Ext: ".txt", Size: 30})
	c.LogFileMatch(scanner.FileEntry{Path: "c", Ext: "", Size: 5})

	rows := c.rows()
	if len(rows) != 2 {
		t.Fatalf("rows() returned %d entries, want 2: %v", len(rows), rows)
	}

	// Sorted by bytes descending
	if rows[0].Ext != ".txt" || rows[0].Files != 2 || rows[0].Bytes != 40 {
		t.Errorf("rows[0] = %+v, want .txt with 2 files and 40 bytes", rows[0])
	}
	if rows[1].Ext != "" || rows[1].Files != 1 || rows[1].Bytes != 5 {
		t.Errorf("rows[1] = %+v, want extensionless with 1 file and 5 bytes", rows[1])
	}
}

func TestNewStatsCommand(t *testing.T) {
	cmd := NewStatsCommand()

	if cmd.Use != "stats <directory>" {
		t.Errorf("Expected Use to be 'stats <directory>', got: %s", cmd.Use)
	}

	// The stats command shares the scan filter flags and adds --limit
	flags := []string{
		"skip-ext", "pass-ext", "min-size", "max-size", "modified-before",
		"workers", "limit", "log-level", "log-dir", "verbose", "quiet",
	}
	for _, flagName := range flags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("Expected flag %q to exist", flagName)
		}
	}
}
