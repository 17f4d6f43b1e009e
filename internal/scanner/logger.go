package scanner

// Logger receives diagnostic events emitted during a scan. The scan result
// never depends on the Logger; implementations may discard everything.
//
// When the Scanner runs with more than one worker, events are emitted from
// multiple goroutines and implementations must be safe for concurrent use.
type Logger interface {
	// LogScanStart is emitted once, after root validation, before traversal.
	LogScanStart(scanID string, root string, filter Filter)
	// LogDirectoryEnter is emitted for every directory entered.
	LogDirectoryEnter(path string)
	// LogFileMatch is emitted for every file that passed the filter.
	LogFileMatch(entry FileEntry)
	// LogFileSkipped is emitted for every file the filter rejected, and for
	// irregular entries that are never considered.
	LogFileSkipped(entry FileEntry, reason SkipReason)
	// LogEntryError is emitted for every non-fatal access failure.
	LogEntryError(path string, err error)
	// LogScanComplete is emitted once, after traversal ends.
	LogScanComplete(summary Summary)
}

// NoOpLogger is a Logger implementation that discards all events. It is the
// default diagnostic sink of a Scanner.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// LogScanStart is a no-op implementation.
func (n *NoOpLogger) LogScanStart(scanID string, root string, filter Filter) {
}

// LogDirectoryEnter is a no-op implementation.
func (n *NoOpLogger) LogDirectoryEnter(path string) {
}

// LogFileMatch is a no-op implementation.
func (n *NoOpLogger) LogFileMatch(entry FileEntry) {
}

// LogFileSkipped is a no-op implementation.
func (n *NoOpLogger) LogFileSkipped(entry FileEntry, reason SkipReason) {
}

// LogEntryError is a no-op implementation.
func (n *NoOpLogger) LogEntryError(path string, err error) {
}

// LogScanComplete is a no-op implementation.
func (n *NoOpLogger) LogScanComplete(summary Summary) {
}
