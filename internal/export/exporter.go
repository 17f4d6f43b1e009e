// Package export renders scan results as text, JSON, YAML, or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/extmap/internal/display"
	"github.com/harrison/extmap/internal/filelock"
	"github.com/harrison/extmap/internal/scanner"
)

// Exporter defines the interface for exporting scan results
type Exporter interface {
	Export(groups scanner.Result) (string, error)
}

// TextExporter exports scan results as human-readable per-extension sections
type TextExporter struct{}

// Export converts a Result to a text report with one section per extension
func (te *TextExporter) Export(groups scanner.Result) (string, error) {
	if groups == nil {
		return "", fmt.Errorf("result cannot be nil")
	}

	if groups.Total() == 0 {
		return "No files matched.\n", nil
	}

	var sb strings.Builder

	for _, ext := range groups.Extensions() {
		paths := groups[ext]

		fileLabel := "file"
		if len(paths) != 1 {
			fileLabel = "files"
		}
		sb.WriteString(fmt.Sprintf("%s (%d %s)\n", display.ExtLabel(ext), len(paths), fileLabel))

		for _, path := range paths {
			sb.WriteString("  ")
			sb.WriteString(path)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	extLabel := "extension"
	if len(groups) != 1 {
		extLabel = "extensions"
	}
	sb.WriteString(fmt.Sprintf("Total: %d files in %d %s\n", groups.Total(), len(groups), extLabel))

	return sb.String(), nil
}

// JSONExporter exports scan results in JSON format
type JSONExporter struct {
	Pretty bool // Enable pretty printing with indentation
}

// Export converts a Result to a JSON string.
// Keys are emitted in sorted order by encoding/json, so output is deterministic.
func (je *JSONExporter) Export(groups scanner.Result) (string, error) {
	if groups == nil {
		return "", fmt.Errorf("result cannot be nil")
	}

	var data []byte
	var err error

	if je.Pretty {
		data, err = json.MarshalIndent(groups, "", "  ")
	} else {
		data, err = json.Marshal(groups)
	}

	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return string(data), nil
}

// YAMLExporter exports scan results in YAML format
type YAMLExporter struct{}

// Export converts a Result to a YAML string
func (ye *YAMLExporter) Export(groups scanner.Result) (string, error) {
	if groups == nil {
		return "", fmt.Errorf("result cannot be nil")
	}

	data, err := yaml.Marshal(groups)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return string(data), nil
}

// CSVExporter exports scan results as extension,path rows
type CSVExporter struct{}

// Export converts a Result to a CSV string with a header row.
// Extensions appear in sorted order, paths in traversal order.
func (ce *CSVExporter) Export(groups scanner.Result) (string, error) {
	if groups == nil {
		return "", fmt.Errorf("result cannot be nil")
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"extension", "path"}); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, ext := range groups.Extensions() {
		for _, path := range groups[ext] {
			if err := w.Write([]string{ext, path}); err != nil {
				return "", fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to encode CSV: %w", err)
	}

	return sb.String(), nil
}

// normalizeFormat lowercases a format name and folds aliases.
func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "yml" {
		format = "yaml"
	}
	return format
}

// exporterFor selects the exporter for a normalized format name.
func exporterFor(format string) (Exporter, error) {
	switch normalizeFormat(format) {
	case "text":
		return &TextExporter{}, nil
	case "json":
		return &JSONExporter{Pretty: true}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json, yaml, csv)", format)
	}
}

// ValidateFormat checks that format names a supported exporter.
// Lets callers fail fast before starting a long scan.
func ValidateFormat(format string) error {
	_, err := exporterFor(format)
	return err
}

// ExportToString exports scan results to a string in the specified format.
// Supports format values: "text", "json", "yaml", "yml", "csv"
func ExportToString(groups scanner.Result, format string) (string, error) {
	if groups == nil {
		return "", fmt.Errorf("result cannot be nil")
	}

	exporter, err := exporterFor(format)
	if err != nil {
		return "", err
	}

	return exporter.Export(groups)
}

// ExportToFile exports scan results to a file in the specified format.
// The write goes through an advisory lock and an atomic temp-file rename,
// so concurrent runs targeting the same path never interleave.
func ExportToFile(groups scanner.Result, path string, format string) error {
	if groups == nil {
		return fmt.Errorf("result cannot be nil")
	}

	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	content, err := ExportToString(groups, format)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if err := filelock.LockAndWrite(path, []byte(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
