// Package scanner provides recursive directory scanning that groups regular
// files by their extension, with optional filtering by size, modification
// time, and extension lists.
//
// # Purpose
//
// The scanner package is the single source of truth for tree traversal and
// file classification in extmap. It offers:
//   - Recursive, deterministic traversal of a directory tree
//   - Grouping of regular files by lower-cased extension
//   - Optional filters: size bounds, modification cutoff, skip/pass lists
//   - Error-tolerant scanning that records non-fatal errors and continues
//   - Pluggable diagnostics via the Logger interface (no-op by default)
//   - Optional bounded parallelism with output identical to a sequential scan
//
// # Extension Semantics
//
// The extension of a file is the suffix starting at the final dot of its
// name, lower-cased. Leading dots belong to the name, not the extension, so
// dotfiles such as ".gitignore" have no extension. Files without an
// extension are grouped under the empty string key, which is also
// addressable in skip and pass lists.
//
//	"photo.JPG"      -> ".jpg"
//	"archive.tar.gz" -> ".gz"
//	"README"         -> ""
//	".gitignore"     -> ""
//	"notes."         -> "."
//
// # Filtering
//
// Filters are evaluated per file in a fixed order with short-circuit on the
// first rejection: skip list, pass list, minimum size, maximum size,
// modification cutoff. Size bounds and the modification cutoff are
// inclusive. When an extension appears in both lists the skip list wins.
// Filters never prune traversal: a directory is always descended even when
// every file inside it is rejected.
//
// # Usage
//
// Basic scan:
//
//	s := scanner.New()
//	groups, err := s.Scan(ctx, "/path/to/tree", scanner.Filter{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ext := range groups.Extensions() {
//	    fmt.Println(ext, groups[ext])
//	}
//
// Filtered scan with diagnostics:
//
//	min := int64(1024)
//	s := scanner.New(scanner.WithLogger(diag), scanner.WithWorkers(4))
//	groups, err := s.Scan(ctx, dir, scanner.Filter{
//	    MinSize:        &min,
//	    SkipExtensions: []string{".log", ".tmp"},
//	})
//
// # Error Tolerance
//
// An invalid root (missing, or not a directory) fails fast with an
// *InvalidRootError before any traversal. Everything else is non-fatal: an
// unreadable directory or an entry that cannot be stat'd is recorded as an
// *EntryAccessError, reported through the Logger, and the scan continues
// with whatever remains reachable. Recorded errors are available from
// Scanner.Errors after the scan returns.
//
// Symbolic links, devices, sockets and pipes are never followed or matched;
// they are skipped without error.
package scanner
