package display

import "fmt"

// FormatBytes renders a byte count in human-readable binary units.
// Values below 1 KiB stay exact; larger values get one decimal place.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div := int64(unit)
	exp := 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// ExtLabel renders an extension key for humans. Files without an extension
// are grouped under the empty key, which reads badly in tables and logs.
func ExtLabel(ext string) string {
	if ext == "" {
		return "(no extension)"
	}
	return ext
}
