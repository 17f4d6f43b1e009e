package scanner

import (
	"errors"
	"fmt"
)

// ErrNotDirectory indicates that a scan root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// InvalidRootError is returned when the scan root cannot be used: it does
// not exist, cannot be accessed, or is not a directory. It is always
// returned before any traversal happens.
type InvalidRootError struct {
	Root string // The root path that failed validation
	Err  error  // Underlying cause (os error or ErrNotDirectory)
}

// Error implements the error interface for InvalidRootError.
func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid scan root %s: %v", e.Root, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *InvalidRootError) Unwrap() error {
	return e.Err
}

// EntryAccessError records a non-fatal failure on a single path during a
// scan: a directory that could not be read or an entry that could not be
// stat'd. The scan continues past these.
type EntryAccessError struct {
	Path string // Path of the entry that failed
	Op   string // Operation that failed ("read" or "stat")
	Err  error  // Underlying os error
}

// Error implements the error interface for EntryAccessError.
func (e *EntryAccessError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *EntryAccessError) Unwrap() error {
	return e.Err
}

// IsInvalidRoot checks if the error is or wraps an InvalidRootError.
func IsInvalidRoot(err error) bool {
	if err == nil {
		return false
	}
	var ire *InvalidRootError
	return errors.As(err, &ire)
}

// IsEntryAccess checks if the error is or wraps an EntryAccessError.
func IsEntryAccess(err error) bool {
	if err == nil {
		return false
	}
	var eae *EntryAccessError
	return errors.As(err, &eae)
}
