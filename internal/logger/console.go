// Package logger provides diagnostic sinks for scan execution.
//
// The logger package offers structured logging of scan progress at the
// directory and file levels. Implementations are thread-safe and support
// various output destinations (console, file, or both at once).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/extmap/internal/display"
	"github.com/harrison/extmap/internal/scanner"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs scan progress to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps for tracking scan flow.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// logLevel determines the minimum log level for messages to be output.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
// Color output is automatically enabled when writing to os.Stdout or os.Stderr with TTY support.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	// Normalize and validate log level
	normalizedLevel := normalizeLogLevel(logLevel)

	// Detect if we should use color output
	useColor := isTerminal(writer)

	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizedLevel,
		mutex:       sync.Mutex{},
		colorOutput: useColor,
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// Returns true only when the writer is a real TTY (or Cygwin terminal).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	// The color library honours NO_COLOR; respect the same switch here
	return !color.NoColor
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if validLevels[normalized] {
		return normalized
	}

	return "info" // Default level
}

// shouldLog checks if a message at the given level should be logged.
// Returns true if messageLevel >= configured logLevel.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	configuredLevel := logLevelToInt(cl.logLevel)
	msgLevel := logLevelToInt(messageLevel)
	return msgLevel >= configuredLevel
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo // Default to info if unknown
	}
}

// LogTrace logs a trace-level message (most verbose).
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
// Format: "[HH:MM:SS] [DEBUG] <message>"
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
// Format: "[HH:MM:SS] [ERROR] <message>"
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	// Check if this level should be logged
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string

	if cl.colorOutput {
		// Format with colors
		formatted = cl.formatWithColor(ts, level, message)
	} else {
		// Plain text format
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// formatWithColor formats a log message with ANSI color codes.
func (cl *ConsoleLogger) formatWithColor(ts, level, message string) string {
	var coloredLevel string

	switch strings.ToUpper(level) {
	case "TRACE":
		coloredLevel = color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		coloredLevel = color.New(color.FgCyan).Sprint(level)
	case "INFO":
		coloredLevel = color.New(color.FgBlue).Sprint(level)
	case "WARN":
		coloredLevel = color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		coloredLevel = color.New(color.FgRed).Sprint(level)
	default:
		coloredLevel = level
	}

	return fmt.Sprintf("[%s] [%s] %s\n", ts, coloredLevel, message)
}

// LogScanStart logs the start of a scan at INFO level.
// Format: "[HH:MM:SS] Starting scan of <root> (<filter>)"
// The scan ID is omitted on the console; the file logger records it in full.
func (cl *ConsoleLogger) LogScanStart(scanID string, root string, filter scanner.Filter) {
	if cl.writer == nil {
		return
	}

	// Scan lifecycle logging is at INFO level
	if !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()

	var message string
	if cl.colorOutput {
		// Bold/bright for the scan root
		rootName := color.New(color.Bold).Sprint(root)
		message = fmt.Sprintf("[%s] Starting scan of %s (%s)\n", ts, rootName, filter)
	} else {
		message = fmt.Sprintf("[%s] Starting scan of %s (%s)\n", ts, root, filter)
	}

	cl.writer.Write([]byte(message))
}

// LogDirectoryEnter logs a directory being entered at DEBUG level.
// Format: "[HH:MM:SS] Entering <path>"
func (cl *ConsoleLogger) LogDirectoryEnter(path string) {
	if cl.writer == nil {
		return
	}

	// Per-directory logging is at DEBUG level
	if !cl.shouldLog("debug") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	cl.writer.Write([]byte(fmt.Sprintf("[%s] Entering %s\n", ts, path)))
}

// LogFileMatch logs a file that passed the filter at DEBUG level.
// Format: "[HH:MM:SS] Matched <path> (<extension>, <size>)"
func (cl *ConsoleLogger) LogFileMatch(entry scanner.FileEntry) {
	if cl.writer == nil {
		return
	}

	// Per-file logging is at DEBUG level
	if !cl.shouldLog("debug") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()

	var message string
	if cl.colorOutput {
		scheme := newColorScheme()
		details := formatColorizedFileDetails(entry, scheme)
		message = fmt.Sprintf("[%s] Matched %s (%s)\n", ts, entry.Path, details)
	} else {
		message = fmt.Sprintf("[%s] Matched %s (%s, %s)\n",
			ts, entry.Path, display.ExtLabel(entry.Ext), display.FormatBytes(entry.Size))
	}

	cl.writer.Write([]byte(message))
}

// LogFileSkipped logs a file rejected by the filter at DEBUG level.
// Format: "[HH:MM:SS] Skipped <path>: <reason>"
func (cl *ConsoleLogger) LogFileSkipped(entry scanner.FileEntry, reason scanner.SkipReason) {
	if cl.writer == nil {
		return
	}

	// Per-file logging is at DEBUG level
	if !cl.shouldLog("debug") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()

	var message string
	if cl.colorOutput {
		// Yellow for skip reasons
		reasonText := color.New(color.FgYellow).Sprint(reason)
		message = fmt.Sprintf("[%s] Skipped %s: %s\n", ts, entry.Path, reasonText)
	} else {
		message = fmt.Sprintf("[%s] Skipped %s: %s\n", ts, entry.Path, reason)
	}

	cl.writer.Write([]byte(message))
}

// LogEntryError logs a non-fatal access error at WARN level.
// Format: "[HH:MM:SS] Access error: <error>"
func (cl *ConsoleLogger) LogEntryError(path string, err error) {
	if cl.writer == nil {
		return
	}

	// Access errors are at WARN level
	if !cl.shouldLog("warn") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()

	var message string
	if cl.colorOutput {
		errText := color.New(color.FgRed).Sprintf("%v", err)
		message = fmt.Sprintf("[%s] Access error: %s\n", ts, errText)
	} else {
		message = fmt.Sprintf("[%s] Access error: %v\n", ts, err)
	}

	cl.writer.Write([]byte(message))
}

// LogScanComplete logs the scan summary with final statistics at INFO level.
// Format: "[HH:MM:SS] === Scan Summary ===\n[HH:MM:SS] Root: <path>\n[HH:MM:SS] Matched: <n>\n..."
func (cl *ConsoleLogger) LogScanComplete(summary scanner.Summary) {
	if cl.writer == nil {
		return
	}

	// Summary logging is at INFO level
	if !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	durationStr := formatDuration(summary.Duration)

	var output string

	if cl.colorOutput {
		scheme := newColorScheme()

		// Colorized summary
		header := color.New(color.Bold).Sprint("=== Scan Summary ===")
		output = fmt.Sprintf("[%s] %s\n", ts, header)
		output += fmt.Sprintf("[%s] %s\n", ts, formatColorizedMetric("Root", summary.Root, scheme))

		// Green for matched files
		matchedText := color.New(color.FgGreen).Sprintf("Matched: %d", summary.Matched)
		output += fmt.Sprintf("[%s] %s\n", ts, matchedText)

		output += fmt.Sprintf("[%s] %s\n", ts, formatColorizedMetric("Skipped", summary.Skipped, scheme))
		output += fmt.Sprintf("[%s] %s\n", ts, formatColorizedMetric("Extensions", summary.Extensions, scheme))

		// Red for errors if any, otherwise show in default color
		if summary.Errors > 0 {
			errorsText := color.New(color.FgRed).Sprintf("Errors: %d", summary.Errors)
			output += fmt.Sprintf("[%s] %s\n", ts, errorsText)
		} else {
			output += fmt.Sprintf("[%s] Errors: %d\n", ts, summary.Errors)
		}

		output += fmt.Sprintf("[%s] %s\n", ts, formatColorizedMetric("Directories", summary.Directories, scheme))
		output += fmt.Sprintf("[%s] %s\n", ts, formatColorizedMetric("Duration", durationStr, scheme))
	} else {
		// Plain text summary
		output = fmt.Sprintf("[%s] === Scan Summary ===\n", ts)
		output += fmt.Sprintf("[%s] Root: %s\n", ts, summary.Root)
		output += fmt.Sprintf("[%s] Matched: %d\n", ts, summary.Matched)
		output += fmt.Sprintf("[%s] Skipped: %d\n", ts, summary.Skipped)
		output += fmt.Sprintf("[%s] Extensions: %d\n", ts, summary.Extensions)
		output += fmt.Sprintf("[%s] Errors: %d\n", ts, summary.Errors)
		output += fmt.Sprintf("[%s] Directories: %d\n", ts, summary.Directories)
		output += fmt.Sprintf("[%s] Duration: %s\n", ts, durationStr)
	}

	cl.writer.Write([]byte(output))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "250ms", "2.5s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		remainder := d % time.Hour
		if remainder == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		minutes := remainder / time.Minute
		remainder = remainder % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case d >= time.Minute:
		minutes := d / time.Minute
		remainder := d % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}
