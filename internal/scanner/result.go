package scanner

import (
	"sort"
	"time"
)

// Result maps normalized extensions to the paths of the files that matched,
// in traversal order. Files without an extension are grouped under "".
type Result map[string][]string

// Extensions returns the extension keys in sorted order.
func (r Result) Extensions() []string {
	exts := make([]string, 0, len(r))
	for ext := range r {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Total returns the total number of matched files across all extensions.
func (r Result) Total() int {
	n := 0
	for _, paths := range r {
		n += len(paths)
	}
	return n
}

// Count returns the number of matched files for one extension. The
// extension is normalized first, so Count("txt") and Count(".TXT") both
// address the ".txt" group.
func (r Result) Count(ext string) int {
	return len(r[normalizeFilterExt(ext)])
}

// Merge appends the path groups of other onto r, preserving order within
// each extension.
func (r Result) Merge(other Result) {
	for ext, paths := range other {
		r[ext] = append(r[ext], paths...)
	}
}

// Summary is the accounting of one completed scan, delivered with the
// completion event and used for reporting.
type Summary struct {
	ScanID      string        // Unique identifier of this scan
	Root        string        // Root directory that was scanned
	Matched     int           // Files that passed the filter
	Skipped     int           // Files rejected by the filter or irregular
	Errors      int           // Non-fatal access errors recorded
	Directories int           // Directories entered
	Extensions  int           // Distinct extension groups in the result
	Duration    time.Duration // Wall-clock scan time
}
