package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Scanner walks directory trees and groups matching files by extension.
// A Scanner is safe to reuse for sequential scans; the errors recorded by
// Errors always belong to the most recent Scan call.
type Scanner struct {
	logger  Logger
	workers int
	mu      sync.Mutex
	errs    []error
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the diagnostic sink. A nil logger is ignored and the
// default NoOpLogger stays in place.
func WithLogger(l Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkers sets the number of concurrent workers. Values below 2 keep
// the scan fully sequential. With workers, each immediate subdirectory of
// the root is scanned by its own goroutine and the configured Logger must
// be safe for concurrent use.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New creates a Scanner. Without options it scans sequentially and
// discards diagnostics.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		logger:  NewNoOpLogger(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks the tree rooted at root and returns the matching files grouped
// by extension.
//
// The root is validated before traversal: if it does not exist or is not a
// directory, Scan returns a nil Result and an *InvalidRootError. Per-entry
// failures during traversal never abort the scan; they are recorded,
// reported through the Logger, and available from Errors afterwards.
//
// Traversal is depth-first and deterministic: within each directory, files
// are considered in lexical order before subdirectories are descended in
// lexical order. Filters never prune recursion.
//
// When ctx is cancelled the walk stops and Scan returns the partial Result
// together with an error wrapping the context's error. An empty tree
// yields an empty, non-nil Result.
func (s *Scanner) Scan(ctx context.Context, root string, filter Filter) (Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &InvalidRootError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &InvalidRootError{Root: root, Err: ErrNotDirectory}
	}

	scanID := uuid.New().String()
	st := newScanState(newMatcher(filter))

	s.logger.LogScanStart(scanID, root, filter)
	start := time.Now()

	if s.workers > 1 {
		err = s.walkParallel(ctx, root, st)
	} else {
		err = s.walk(ctx, root, st)
	}

	s.mu.Lock()
	s.errs = st.errs
	s.mu.Unlock()

	s.logger.LogScanComplete(Summary{
		ScanID:      scanID,
		Root:        root,
		Matched:     st.matched,
		Skipped:     st.skipped,
		Errors:      len(st.errs),
		Directories: st.dirs,
		Extensions:  len(st.result),
		Duration:    time.Since(start),
	})

	if err != nil {
		return st.result, fmt.Errorf("scan interrupted: %w", err)
	}
	return st.result, nil
}

// Errors returns the non-fatal access errors recorded by the most recent
// scan. Every element is an *EntryAccessError.
func (s *Scanner) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errs...)
}

// scanState accumulates the result of one scan (or one subtree of a
// parallel scan).
type scanState struct {
	matcher *matcher
	result  Result
	errs    []error
	matched int
	skipped int
	dirs    int
}

func newScanState(m *matcher) *scanState {
	return &scanState{
		matcher: m,
		result:  make(Result),
	}
}

// merge folds a subtree state into st, preserving per-extension path order.
func (st *scanState) merge(other *scanState) {
	st.result.Merge(other.result)
	st.errs = append(st.errs, other.errs...)
	st.matched += other.matched
	st.skipped += other.skipped
	st.dirs += other.dirs
}

// walk traverses the tree under root depth-first using an explicit stack,
// so arbitrarily deep trees cannot overflow the call stack. Cancellation
// is checked once per directory.
func (s *Scanner) walk(ctx context.Context, root string, st *scanState) error {
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		subdirs := s.scanDir(dir, st)

		// Push in reverse so the lexically first subdirectory pops next.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return nil
}

// walkParallel scans the root directory sequentially, then hands each
// immediate subdirectory to its own worker goroutine. Subtree results are
// merged in lexical subdirectory order, so the output is identical to a
// sequential scan of the same tree.
func (s *Scanner) walkParallel(ctx context.Context, root string, st *scanState) error {
	subdirs := s.scanDir(root, st)

	states := make([]*scanState, len(subdirs))
	var eg errgroup.Group
	eg.SetLimit(s.workers)

	for i, sub := range subdirs {
		i, sub := i, sub
		states[i] = newScanState(st.matcher)
		eg.Go(func() error {
			return s.walk(ctx, sub, states[i])
		})
	}

	err := eg.Wait()

	// Merge whatever the workers produced, complete or partial.
	for _, sub := range states {
		st.merge(sub)
	}
	return err
}

// scanDir reads one directory, filters its regular files into st, and
// returns the subdirectory paths in lexical order. Access failures are
// recorded and the rest of the directory is still processed.
func (s *Scanner) scanDir(dir string, st *scanState) []string {
	st.dirs++
	s.logger.LogDirectoryEnter(dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		accessErr := &EntryAccessError{Path: dir, Op: "read", Err: err}
		st.errs = append(st.errs, accessErr)
		s.logger.LogEntryError(dir, accessErr)
		// ReadDir returns the entries it managed to read before failing;
		// fall through and process them.
	}

	var subdirs []string
	for _, d := range entries {
		path := filepath.Join(dir, d.Name())

		if d.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}

		if !d.Type().IsRegular() {
			// Symlinks, devices, sockets and pipes are never followed.
			st.skipped++
			s.logger.LogFileSkipped(FileEntry{Path: path, Name: d.Name()}, SkipIrregular)
			continue
		}

		info, err := d.Info()
		if err != nil {
			accessErr := &EntryAccessError{Path: path, Op: "stat", Err: err}
			st.errs = append(st.errs, accessErr)
			s.logger.LogEntryError(path, accessErr)
			continue
		}

		entry := FileEntry{
			Path:    path,
			Name:    d.Name(),
			Ext:     fileExt(d.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}

		matched, reason := st.matcher.match(entry)
		if !matched {
			st.skipped++
			s.logger.LogFileSkipped(entry, reason)
			continue
		}

		st.result[entry.Ext] = append(st.result[entry.Ext], entry.Path)
		st.matched++
		s.logger.LogFileMatch(entry)
	}

	return subdirs
}
