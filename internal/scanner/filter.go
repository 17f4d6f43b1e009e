package scanner

import (
	"fmt"
	"strings"
	"time"
)

// Filter holds the optional criteria a file must satisfy to be included in
// a scan result. The zero value matches every regular file.
//
// All fields combine conjunctively. Size bounds and the modification cutoff
// are inclusive. Extension list entries are normalized before matching
// (lower-cased, leading dot added when missing); the empty string entry is
// preserved and addresses files without an extension.
type Filter struct {
	// MinSize is the inclusive lower bound on file size in bytes.
	MinSize *int64
	// MaxSize is the inclusive upper bound on file size in bytes.
	MaxSize *int64
	// ModifiedBefore excludes files modified strictly after this time.
	ModifiedBefore *time.Time
	// SkipExtensions lists extensions to exclude. A skipped extension is
	// excluded even when it also appears in PassExtensions.
	SkipExtensions []string
	// PassExtensions, when non-empty, lists the only extensions eligible
	// for inclusion.
	PassExtensions []string
}

// IsZero reports whether no criteria are set.
func (f Filter) IsZero() bool {
	return f.MinSize == nil && f.MaxSize == nil && f.ModifiedBefore == nil &&
		len(f.SkipExtensions) == 0 && len(f.PassExtensions) == 0
}

// String returns a compact description of the active criteria, for logging.
func (f Filter) String() string {
	if f.IsZero() {
		return "unfiltered"
	}

	var parts []string
	if len(f.SkipExtensions) > 0 {
		parts = append(parts, fmt.Sprintf("skip=%v", f.SkipExtensions))
	}
	if len(f.PassExtensions) > 0 {
		parts = append(parts, fmt.Sprintf("pass=%v", f.PassExtensions))
	}
	if f.MinSize != nil {
		parts = append(parts, fmt.Sprintf("min-size=%d", *f.MinSize))
	}
	if f.MaxSize != nil {
		parts = append(parts, fmt.Sprintf("max-size=%d", *f.MaxSize))
	}
	if f.ModifiedBefore != nil {
		parts = append(parts, fmt.Sprintf("modified-before=%s", f.ModifiedBefore.Format(time.RFC3339)))
	}
	return strings.Join(parts, " ")
}

// SkipReason identifies which filter stage rejected a file.
type SkipReason int

const (
	// SkipNone means the file was not rejected.
	SkipNone SkipReason = iota
	// SkipExtensionListed means the extension is in the skip list.
	SkipExtensionListed
	// SkipExtensionNotPassed means a pass list is set and the extension is
	// not in it.
	SkipExtensionNotPassed
	// SkipBelowMinSize means the file is smaller than the minimum size.
	SkipBelowMinSize
	// SkipAboveMaxSize means the file is larger than the maximum size.
	SkipAboveMaxSize
	// SkipModifiedAfter means the file was modified after the cutoff.
	SkipModifiedAfter
	// SkipIrregular means the entry is not a regular file (symlink, device,
	// socket, pipe).
	SkipIrregular
)

// String returns the string representation of SkipReason.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipExtensionListed:
		return "extension in skip list"
	case SkipExtensionNotPassed:
		return "extension not in pass list"
	case SkipBelowMinSize:
		return "below minimum size"
	case SkipAboveMaxSize:
		return "above maximum size"
	case SkipModifiedAfter:
		return "modified after cutoff"
	case SkipIrregular:
		return "not a regular file"
	default:
		return "unknown"
	}
}

// normalizeFilterExt normalizes one extension list entry: lower-cased, with
// a leading dot added when missing. The empty string is preserved so that
// extensionless files stay addressable.
func normalizeFilterExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// matcher is a Filter compiled for matching: list entries normalized and
// loaded into sets for O(1) lookup.
type matcher struct {
	filter  Filter
	skipSet map[string]bool
	passSet map[string]bool
}

func newMatcher(f Filter) *matcher {
	m := &matcher{
		filter:  f,
		skipSet: make(map[string]bool, len(f.SkipExtensions)),
		passSet: make(map[string]bool, len(f.PassExtensions)),
	}
	for _, ext := range f.SkipExtensions {
		m.skipSet[normalizeFilterExt(ext)] = true
	}
	for _, ext := range f.PassExtensions {
		m.passSet[normalizeFilterExt(ext)] = true
	}
	return m
}

// matchStage pairs a rejection reason with its predicate. Predicates are
// pure functions of the entry and the compiled filter.
type matchStage struct {
	reason SkipReason
	pass   func(e FileEntry, m *matcher) bool
}

// pipeline is the fixed evaluation order: skip list, pass list, minimum
// size, maximum size, modification cutoff. Each stage treats its unset
// criterion as a pass.
var pipeline = []matchStage{
	{SkipExtensionListed, func(e FileEntry, m *matcher) bool {
		return !m.skipSet[e.Ext]
	}},
	{SkipExtensionNotPassed, func(e FileEntry, m *matcher) bool {
		return len(m.passSet) == 0 || m.passSet[e.Ext]
	}},
	{SkipBelowMinSize, func(e FileEntry, m *matcher) bool {
		return m.filter.MinSize == nil || e.Size >= *m.filter.MinSize
	}},
	{SkipAboveMaxSize, func(e FileEntry, m *matcher) bool {
		return m.filter.MaxSize == nil || e.Size <= *m.filter.MaxSize
	}},
	{SkipModifiedAfter, func(e FileEntry, m *matcher) bool {
		return m.filter.ModifiedBefore == nil || !e.ModTime.After(*m.filter.ModifiedBefore)
	}},
}

// match runs the entry through the pipeline. It returns true when every
// stage passes, or false with the reason of the first failing stage.
func (m *matcher) match(e FileEntry) (bool, SkipReason) {
	for _, stage := range pipeline {
		if !stage.pass(e, m) {
			return false, stage.reason
		}
	}
	return true, SkipNone
}
