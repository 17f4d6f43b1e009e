package scanner

import (
	"strings"
	"time"
)

// FileEntry is a snapshot of one regular file considered by a scan.
type FileEntry struct {
	// Path is the file path as traversed, rooted at the scan root.
	Path string
	// Name is the base name of the file.
	Name string
	// Ext is the normalized extension: lower-cased, with the leading dot.
	// Empty for files without an extension.
	Ext string
	// Size is the file size in bytes.
	Size int64
	// ModTime is the last modification time.
	ModTime time.Time
}

// fileExt returns the normalized extension of a file name: the suffix from
// the final dot, lower-cased. Leading dots are part of the name, so
// ".gitignore" and "..gitignore" have no extension, while "notes." keeps a
// bare ".".
func fileExt(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return ""
	}
	for i := 0; i < dot; i++ {
		if name[i] != '.' {
			return strings.ToLower(name[dot:])
		}
	}
	// Only dots before the last one: the whole name is dots plus suffix.
	return ""
}
