package cmd

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/extmap/internal/display"
	"github.com/harrison/extmap/internal/export"
	"github.com/harrison/extmap/internal/logger"
	"github.com/harrison/extmap/internal/scanner"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan a directory tree and group files by extension",
		Long: `Scan walks the directory tree rooted at <directory> and groups every
regular file it finds by its lower-cased extension.

Files can be filtered by size, modification time, and extension lists
before grouping. Symlinks, devices, sockets, and pipes are never
followed. Unreadable entries are reported and skipped without aborting
the scan.

Results go to stdout and diagnostics go to stderr, so output can be
piped or redirected cleanly.

Examples:
  # Group everything under the current directory
  extmap scan .

  # Only source files, as JSON
  extmap scan --pass-ext go,md --format json ./src

  # Large media files last modified in or before 2025
  extmap scan --min-size 10485760 --modified-before 2025-12-31 ~/media

  # Everything except build artifacts, written to a file
  extmap scan --skip-ext o,a,so --format json --output results.json .

  # Parallel scan of a wide tree with a detailed log file
  extmap scan --workers 8 --log-dir ./logs /data`,
		Args: cobra.ExactArgs(1),
		RunE: runScanCommand,
	}

	addFilterFlags(cmd)
	addLoggingFlags(cmd)

	cmd.Flags().String("format", "text", "Output format: text, json, yaml, or csv")
	cmd.Flags().String("output", "", "Write results to this file instead of stdout")

	return cmd
}

// runScanCommand implements the scan command logic
func runScanCommand(cmd *cobra.Command, args []string) error {
	root := args[0]

	// Reject an unknown format before doing any work
	format, _ := cmd.Flags().GetString("format")
	if err := export.ValidateFormat(format); err != nil {
		return err
	}

	logLevel, err := resolveLogLevel(cmd)
	if err != nil {
		return err
	}

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	outputPath, _ := cmd.Flags().GetString("output")
	logDir, _ := cmd.Flags().GetString("log-dir")

	// Set up context with signal handling so an interrupted scan still
	// returns cleanly
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Diagnostics go to stderr; stdout carries only the results
	consoleLog := logger.NewConsoleLogger(cmd.ErrOrStderr(), logLevel)

	var sink scanner.Logger = consoleLog
	if logDir != "" {
		fileLog, err := logger.NewFileLoggerWithLevel(logDir, logLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLog.Close()
		sink = logger.NewMultiLogger(consoleLog, fileLog)
	}

	s := scanner.New(scanner.WithLogger(sink), scanner.WithWorkers(workers))

	groups, err := s.Scan(ctx, root, filter)
	if err != nil {
		return err
	}

	warnUnreadable(cmd, s.Errors())

	if outputPath != "" {
		if err := export.ExportToFile(groups, outputPath, format); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", outputPath)
		return nil
	}

	content, err := export.ExportToString(groups, format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), content)

	return nil
}

// addFilterFlags registers the filter flags shared by scan and stats.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("skip-ext", nil, "Extensions to exclude, comma-separated or repeated (\"\" matches extensionless files)")
	cmd.Flags().StringArray("pass-ext", nil, "Only include these extensions, comma-separated or repeated")
	cmd.Flags().Int64("min-size", 0, "Minimum file size in bytes, inclusive")
	cmd.Flags().Int64("max-size", 0, "Maximum file size in bytes, inclusive")
	cmd.Flags().String("modified-before", "", "Only files modified at or before this time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().Int("workers", 1, "Number of concurrent scan workers (1 = sequential)")
}

// addLoggingFlags registers the diagnostic flags shared by scan and stats.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-level", "info", "Diagnostic level: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Also write a detailed scan log to this directory")
	cmd.Flags().Bool("verbose", false, "Show per-file diagnostics (same as --log-level debug)")
	cmd.Flags().Bool("quiet", false, "Only show errors (same as --log-level error)")
}

// resolveLogLevel maps the logging flags to a single level. The --verbose
// and --quiet shorthands override --log-level.
func resolveLogLevel(cmd *cobra.Command) (string, error) {
	// Validate conflicting flags
	if cmd.Flags().Changed("verbose") && cmd.Flags().Changed("quiet") {
		return "", fmt.Errorf("cannot use both --verbose and --quiet")
	}

	logLevel, _ := cmd.Flags().GetString("log-level")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logLevel = "debug"
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		logLevel = "error"
	}

	return logLevel, nil
}

// filterFromFlags builds the scan filter from the flags registered by
// addFilterFlags. Size bounds apply only when their flag was set, so the
// zero defaults never exclude anything.
func filterFromFlags(cmd *cobra.Command) (scanner.Filter, error) {
	var filter scanner.Filter

	skipExts, _ := cmd.Flags().GetStringArray("skip-ext")
	passExts, _ := cmd.Flags().GetStringArray("pass-ext")
	filter.SkipExtensions = splitExtList(skipExts)
	filter.PassExtensions = splitExtList(passExts)

	if cmd.Flags().Changed("min-size") {
		minSize, _ := cmd.Flags().GetInt64("min-size")
		if minSize < 0 {
			return scanner.Filter{}, fmt.Errorf("--min-size cannot be negative")
		}
		filter.MinSize = &minSize
	}

	if cmd.Flags().Changed("max-size") {
		maxSize, _ := cmd.Flags().GetInt64("max-size")
		if maxSize < 0 {
			return scanner.Filter{}, fmt.Errorf("--max-size cannot be negative")
		}
		filter.MaxSize = &maxSize
	}

	if filter.MinSize != nil && filter.MaxSize != nil && *filter.MinSize > *filter.MaxSize {
		return scanner.Filter{}, fmt.Errorf("--min-size (%d) cannot exceed --max-size (%d)", *filter.MinSize, *filter.MaxSize)
	}

	if cmd.Flags().Changed("modified-before") {
		value, _ := cmd.Flags().GetString("modified-before")
		cutoff, err := parseModifiedBefore(value)
		if err != nil {
			return scanner.Filter{}, err
		}
		filter.ModifiedBefore = &cutoff
	}

	return filter, nil
}

// splitExtList flattens comma-separated flag values into one entry per
// extension. An occurrence that is itself empty stays as a single empty
// entry, which addresses files without an extension.
func splitExtList(values []string) []string {
	var out []string
	for _, v := range values {
		if v == "" {
			out = append(out, "")
			continue
		}
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}

// parseModifiedBefore parses the cutoff flag. A full RFC3339 timestamp is
// tried first. A bare date means the end of that day in local time, so
// --modified-before 2026-01-15 keeps files modified any time on the 15th.
func parseModifiedBefore(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --modified-before value %q: use RFC3339 (2026-01-15T10:30:00Z) or a date (2026-01-15)", value)
	}
	return t.Add(24*time.Hour - time.Nanosecond), nil
}

// warnUnreadable summarizes the paths a scan could not access on stderr.
func warnUnreadable(cmd *cobra.Command, errs []error) {
	if len(errs) == 0 {
		return
	}

	paths := make([]string, 0, len(errs))
	for _, err := range errs {
		var accessErr *scanner.EntryAccessError
		if errors.As(err, &accessErr) {
			paths = append(paths, accessErr.Path)
		}
	}

	warning := display.WarnUnreadablePaths(paths)
	warning.Display(cmd.ErrOrStderr())
}
