package cmd

import (
	"fmt"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harrison/extmap/internal/display"
	"github.com/harrison/extmap/internal/logger"
	"github.com/harrison/extmap/internal/scanner"
)

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <directory>",
		Short: "Show per-extension file counts and sizes",
		Long: `Stats scans the directory tree like the scan command, but instead of
listing paths it prints a per-extension table: file count, total size,
and each extension's share of the scanned bytes.

The same filter flags as scan apply, so the table can be narrowed to a
size range, a modification cutoff, or specific extensions.

Examples:
  # Size breakdown of the current tree
  extmap stats .

  # Which image formats dominate a photo library
  extmap stats --pass-ext jpg,png,heic ~/photos

  # The five largest extensions only
  extmap stats --limit 5 /data`,
		Args: cobra.ExactArgs(1),
		RunE: runStatsCommand,
	}

	addFilterFlags(cmd)
	addLoggingFlags(cmd)

	cmd.Flags().Int("limit", 0, "Show only the N largest extensions (0 = all)")

	return cmd
}

// runStatsCommand implements the stats command logic
func runStatsCommand(cmd *cobra.Command, args []string) error {
	root := args[0]

	logLevel, err := resolveLogLevel(cmd)
	if err != nil {
		return err
	}

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	limit, _ := cmd.Flags().GetInt("limit")
	logDir, _ := cmd.Flags().GetString("log-dir")

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The collector rides along as one more diagnostic sink and gathers the
	// per-extension totals the table needs
	consoleLog := logger.NewConsoleLogger(cmd.ErrOrStderr(), logLevel)
	collector := newStatsCollector()

	sinks := []scanner.Logger{consoleLog, collector}
	if logDir != "" {
		fileLog, err := logger.NewFileLoggerWithLevel(logDir, logLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLog.Close()
		sinks = append(sinks, fileLog)
	}

	s := scanner.New(
		scanner.WithLogger(logger.NewMultiLogger(sinks...)),
		scanner.WithWorkers(workers),
	)

	if _, err := s.Scan(ctx, root, filter); err != nil {
		return err
	}

	warnUnreadable(cmd, s.Errors())

	fmt.Fprint(cmd.OutOrStdout(), formatExtensionTable(root, collector.rows(), limit))

	return nil
}

// extStat holds the accumulated totals for one extension.
type extStat struct {
	Ext   string
	Files int
	Bytes int64
}

// statsCollector implements scanner.Logger to gather per-extension counts
// and sizes as the scan progresses. It is safe for concurrent use so it can
// sit behind a parallel scan.
type statsCollector struct {
	mu    sync.Mutex
	stats map[string]*extStat
}

func newStatsCollector() *statsCollector {
	return &statsCollector{stats: make(map[string]*extStat)}
}

// LogFileMatch records the matched file's size under its extension.
func (c *statsCollector) LogFileMatch(entry scanner.FileEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.stats[entry.Ext]
	if !ok {
		st = &extStat{Ext: entry.Ext}
		c.stats[entry.Ext] = st
	}
	st.Files++
	st.Bytes += entry.Size
}

// The remaining events carry nothing the table needs.

func (c *statsCollector) LogScanStart(scanID string, root string, filter scanner.Filter) {}

func (c *statsCollector) LogDirectoryEnter(path string) {}

func (c *statsCollector) LogFileSkipped(entry scanner.FileEntry, reason scanner.SkipReason) {}

func (c *statsCollector) LogEntryError(path string, err error) {}

func (c *statsCollector) LogScanComplete(summary scanner.Summary) {}

// rows returns the collected totals sorted by size descending, ties broken
// by extension.
func (c *statsCollector) rows() []extStat {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]extStat, 0, len(c.stats))
	for _, st := range c.stats {
		rows = append(rows, *st)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Bytes != rows[j].Bytes {
			return rows[i].Bytes > rows[j].Bytes
		}
		return rows[i].Ext < rows[j].Ext
	})
	return rows
}

// formatExtensionTable formats the per-extension totals as a readable table
func formatExtensionTable(root string, rows []extStat, limit int) string {
	var sb strings.Builder

	sb.WriteString("\n=== EXTENSION STATISTICS ===\n\n")
	sb.WriteString(fmt.Sprintf("Root:          %s\n", root))

	if len(rows) == 0 {
		sb.WriteString("\nNo files matched.\n")
		return sb.String()
	}

	var totalFiles int
	var totalBytes int64
	for _, row := range rows {
		totalFiles += row.Files
		totalBytes += row.Bytes
	}

	sb.WriteString(fmt.Sprintf("Files matched: %d\n", totalFiles))
	sb.WriteString(fmt.Sprintf("Total size:    %s\n", display.FormatBytes(totalBytes)))
	sb.WriteString(fmt.Sprintf("Extensions:    %d\n", len(rows)))

	displayLimit := limit
	if limit <= 0 || displayLimit > len(rows) {
		displayLimit = len(rows)
	}

	// Header
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-18s %-8s %-12s %s\n", "Extension", "Files", "Total Size", "Share"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	for i := 0; i < displayLimit; i++ {
		row := rows[i]
		share := 0
		if totalBytes > 0 {
			share = int(row.Bytes * 100 / totalBytes)
		}

		sb.WriteString(fmt.Sprintf("%-18s %-8d %-12s %s %d%%\n",
			display.ExtLabel(row.Ext),
			row.Files,
			display.FormatBytes(row.Bytes),
			display.ShareBar(share, 100, 20),
			share))
	}

	if limit > 0 && len(rows) > displayLimit {
		sb.WriteString(fmt.Sprintf("\n(Showing %d of %d extensions. Use --limit 0 to see all)\n", displayLimit, len(rows)))
	}

	return sb.String()
}
