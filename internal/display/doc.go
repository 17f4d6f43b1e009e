// Package display provides terminal formatting helpers shared by the CLI
// commands: human-readable byte sizes, extension labels, share bars for the
// stats table, and warning blocks for partially failed scans.
//
// # Byte Sizes
//
// FormatBytes renders a byte count with binary units:
//
//	display.FormatBytes(1536) // "1.5 KiB"
//
// # Extension Labels
//
// Result maps key files without an extension under the empty string.
// ExtLabel turns that key into something readable:
//
//	display.ExtLabel("")     // "(no extension)"
//	display.ExtLabel(".txt") // ".txt"
//
// # Share Bars
//
// ShareBar renders a fixed-width ASCII bar showing one group's share of a
// total, used by the stats table:
//
//	display.ShareBar(42, 100, 20) // "[========            ]"
//
// # Warning Messages
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "Some paths could not be read",
//	    Files:      paths,
//	    Suggestion: "Re-run with --log-level debug to see each error",
//	}
//	warning.Display(os.Stderr)
//
// # ANSI Colors
//
// The package uses ANSI escape codes for terminal colors:
//   - Yellow (\x1b[33m) for warnings
//   - Reset (\x1b[0m) after each colored section
//
// All functions accept io.Writer interfaces for testability and flexibility.
package display
