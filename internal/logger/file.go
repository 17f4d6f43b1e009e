package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/extmap/internal/display"
	"github.com/harrison/extmap/internal/scanner"
)

// FileLogger logs scan events to timestamped files in a log directory.
// It creates one log file per scan run and maintains a latest.log symlink
// pointing to the most recent run.
// It is thread-safe and implements the scanner.Logger interface.
// It supports log level filtering to control message verbosity.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger that writes to the given directory.
// It creates the directory if it doesn't exist, opens a timestamped
// run log file, and creates/updates the latest.log symlink.
// Uses default log level "info".
func NewFileLogger(logDir string) (*FileLogger, error) {
	return NewFileLoggerWithLevel(logDir, "info")
}

// NewFileLoggerWithLevel creates a FileLogger with a custom log level.
func NewFileLoggerWithLevel(logDir string, logLevel string) (*FileLogger, error) {
	// Create log directory if it doesn't exist
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Generate timestamped filename: scan-YYYYMMDD-HHMMSS.log
	timestamp := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("scan-%s.log", timestamp))

	// Open run log file for writing
	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan log file: %w", err)
	}

	// Create/update latest.log symlink
	symlinkPath := filepath.Join(logDir, "latest.log")

	// Remove existing symlink if it exists
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}

	// Create new symlink pointing to current scan log
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	// Normalize and validate log level
	normalizedLevel := normalizeLogLevel(logLevel)

	logger := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizedLevel,
		mu:       sync.Mutex{},
	}

	// Write header to scan log
	logger.writeRunLog("=== extmap scan log ===\n")
	logger.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return logger, nil
}

// shouldLog checks if a message at the given level should be logged.
// Returns true if messageLevel >= configured logLevel.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	configuredLevel := logLevelToInt(fl.logLevel)
	msgLevel := logLevelToInt(messageLevel)
	return msgLevel >= configuredLevel
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (fl *FileLogger) logWithLevel(level string, message string) {
	// Check if this level should be logged
	levelLower := strings.ToLower(level)
	if !fl.shouldLog(levelLower) {
		return
	}

	formatted := fmt.Sprintf("[%s] [%s] %s\n", time.Now().Format("15:04:05"), level, message)
	fl.writeRunLog(formatted)
}

// LogScanStart logs the start of a scan at INFO level.
// Unlike the console logger, the full scan ID is recorded so runs can be
// correlated with exported results.
func (fl *FileLogger) LogScanStart(scanID string, root string, filter scanner.Filter) {
	// Scan lifecycle logging is at INFO level
	if !fl.shouldLog("info") {
		return
	}

	message := fmt.Sprintf(
		"[%s] Starting scan %s: root %s (%s)\n",
		time.Now().Format("15:04:05"),
		scanID,
		root,
		filter,
	)

	fl.writeRunLog(message)
}

// LogDirectoryEnter logs a directory being entered at DEBUG level.
func (fl *FileLogger) LogDirectoryEnter(path string) {
	if !fl.shouldLog("debug") {
		return
	}

	message := fmt.Sprintf("[%s] Entering %s\n", time.Now().Format("15:04:05"), path)
	fl.writeRunLog(message)
}

// LogFileMatch logs a file that passed the filter at DEBUG level.
func (fl *FileLogger) LogFileMatch(entry scanner.FileEntry) {
	if !fl.shouldLog("debug") {
		return
	}

	message := fmt.Sprintf(
		"[%s] Matched %s (%s, %s)\n",
		time.Now().Format("15:04:05"),
		entry.Path,
		display.ExtLabel(entry.Ext),
		display.FormatBytes(entry.Size),
	)

	fl.writeRunLog(message)
}

// LogFileSkipped logs a file rejected by the filter at DEBUG level.
func (fl *FileLogger) LogFileSkipped(entry scanner.FileEntry, reason scanner.SkipReason) {
	if !fl.shouldLog("debug") {
		return
	}

	message := fmt.Sprintf(
		"[%s] Skipped %s: %s\n",
		time.Now().Format("15:04:05"),
		entry.Path,
		reason,
	)

	fl.writeRunLog(message)
}

// LogEntryError logs a non-fatal access error at WARN level.
func (fl *FileLogger) LogEntryError(path string, err error) {
	if !fl.shouldLog("warn") {
		return
	}

	message := fmt.Sprintf("[%s] WARN: Access error: %v\n", time.Now().Format("15:04:05"), err)
	fl.writeRunLog(message)
}

// LogScanComplete logs the scan summary with final statistics at INFO level.
// It records the scan ID, per-category counts, duration, and overall status.
func (fl *FileLogger) LogScanComplete(summary scanner.Summary) {
	// Summary logging is at INFO level
	if !fl.shouldLog("info") {
		return
	}

	timestamp := time.Now().Format("15:04:05")

	// Determine status
	status := "COMPLETE"
	if summary.Errors > 0 {
		status = "PARTIAL"
	}

	// Build summary output
	message := fmt.Sprintf(
		"\n[%s] === SCAN SUMMARY ===\n"+
			"[%s] Scan ID:      %s\n"+
			"[%s] Root:         %s\n"+
			"[%s] Matched:      %d\n"+
			"[%s] Skipped:      %d\n"+
			"[%s] Extensions:   %d\n"+
			"[%s] Errors:       %d\n"+
			"[%s] Directories:  %d\n"+
			"[%s] Duration:     %.1fs\n"+
			"[%s] Status:       %s\n"+
			"[%s] Completed at: %s\n",
		timestamp,
		timestamp,
		summary.ScanID,
		timestamp,
		summary.Root,
		timestamp,
		summary.Matched,
		timestamp,
		summary.Skipped,
		timestamp,
		summary.Extensions,
		timestamp,
		summary.Errors,
		timestamp,
		summary.Directories,
		timestamp,
		summary.Duration.Seconds(),
		timestamp,
		status,
		timestamp,
		time.Now().Format(time.RFC3339),
	)

	fl.writeRunLog(message)
}

// RunFile returns the path of the current run's log file.
func (fl *FileLogger) RunFile() string {
	return fl.runFile
}

// Close flushes and closes the scan log file.
// It should be called when the logger is no longer needed.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync scan log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close scan log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the scan log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
		// Flush after each write for real-time logging
		fl.runLog.Sync()
	}
}
