package logger

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harrison/extmap/internal/display"
	"github.com/harrison/extmap/internal/scanner"
)

// colorScheme defines consistent colors for different metric types.
// Green: matched/positive metrics
// Red: error metrics
// Yellow: skip reasons and warnings
// Cyan: labels and identifiers
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

// newColorScheme creates the standard color scheme for metrics.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single metric with colorized label and value.
// Label is colored cyan, value is colored white.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	labelColored := scheme.label.Sprint(label)
	valueColored := scheme.value.Sprintf("%v", value)
	return fmt.Sprintf("%s: %s", labelColored, valueColored)
}

// formatColorizedFileDetails renders the parenthetical detail of a match line.
// The extension label is colored cyan and the size white.
// Colors are automatically disabled when output is not a TTY via fatih/color's built-in detection.
func formatColorizedFileDetails(entry scanner.FileEntry, scheme *colorScheme) string {
	extColored := scheme.label.Sprint(display.ExtLabel(entry.Ext))
	sizeColored := scheme.value.Sprint(display.FormatBytes(entry.Size))
	return fmt.Sprintf("%s, %s", extColored, sizeColored)
}
