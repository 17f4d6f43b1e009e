package logger

import "github.com/harrison/extmap/internal/scanner"

// MultiLogger implements scanner.Logger by delegating to multiple loggers,
// letting console and file logging run side by side.
type MultiLogger struct {
	loggers []scanner.Logger
}

// NewMultiLogger creates a MultiLogger that forwards every event to each
// of the given loggers in order.
func NewMultiLogger(loggers ...scanner.Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// LogScanStart forwards to all loggers
func (ml *MultiLogger) LogScanStart(scanID string, root string, filter scanner.Filter) {
	for _, logger := range ml.loggers {
		logger.LogScanStart(scanID, root, filter)
	}
}

// LogDirectoryEnter forwards to all loggers
func (ml *MultiLogger) LogDirectoryEnter(path string) {
	for _, logger := range ml.loggers {
		logger.LogDirectoryEnter(path)
	}
}

// LogFileMatch forwards to all loggers
func (ml *MultiLogger) LogFileMatch(entry scanner.FileEntry) {
	for _, logger := range ml.loggers {
		logger.LogFileMatch(entry)
	}
}

// LogFileSkipped forwards to all loggers
func (ml *MultiLogger) LogFileSkipped(entry scanner.FileEntry, reason scanner.SkipReason) {
	for _, logger := range ml.loggers {
		logger.LogFileSkipped(entry, reason)
	}
}

// LogEntryError forwards to all loggers
func (ml *MultiLogger) LogEntryError(path string, err error) {
	for _, logger := range ml.loggers {
		logger.LogEntryError(path, err)
	}
}

// LogScanComplete forwards to all loggers
func (ml *MultiLogger) LogScanComplete(summary scanner.Summary) {
	for _, logger := range ml.loggers {
		logger.LogScanComplete(summary)
	}
}
