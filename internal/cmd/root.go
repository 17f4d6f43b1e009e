package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for extmap
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extmap",
		Short: "Group files by extension across a directory tree",
		Long: `Extmap recursively scans a directory tree and groups the regular files
it finds by their lower-cased extension.

Results can be narrowed by size bounds, a modification cutoff, and
extension skip or pass lists, then rendered as text, JSON, YAML, or
CSV, or aggregated into per-extension statistics.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewScanCommand())
	cmd.AddCommand(NewStatsCommand())

	return cmd
}
