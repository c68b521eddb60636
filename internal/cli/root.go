// Package cli provides the Cobra command structure for mdreflow.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrm007/opencode-responsive-tables/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdreflow command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdreflow",
		Short: "Reflow markdown tables that overflow the terminal",
		Long: `mdreflow rewrites markdown so pipe tables stay readable in a terminal.

A table that fits the available width is left untouched; a wider table is
rewritten into stacked "**column**: value" cards, one per row, separated by
horizontal rules. Fenced code blocks are never altered, and width is
measured the way a renderer displays the text, not by counting raw
markdown characters.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
