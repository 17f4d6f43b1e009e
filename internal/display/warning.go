package display

import (
	"fmt"
	"io"
	"strings"
)

// maxWarningFiles caps how many paths a warning lists before truncating.
// A scan of a large tree can fail on hundreds of entries and the warning
// should stay readable.
const maxWarningFiles = 10

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("\x1b[33m")
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected path:\n")
		} else {
			b.WriteString("Affected paths:\n")
		}

		shown := w.Files
		if len(shown) > maxWarningFiles {
			shown = shown[:maxWarningFiles]
		}
		for i, file := range shown {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
		if rest := len(w.Files) - len(shown); rest > 0 {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("... and %d more\n", rest))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	b.WriteString("\x1b[0m")

	fmt.Fprint(out, b.String())
}

// WarnUnreadablePaths creates a warning for paths a scan could not read.
func WarnUnreadablePaths(paths []string) Warning {
	return Warning{
		Title:      "Some paths could not be read",
		Files:      paths,
		Suggestion: "Re-run with --log-level debug to see each error",
	}
}
