// Package cli provides the Cobra command structure for moondown.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/moondown/moondown/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags holds the global flags shared by subcommands.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root moondown command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "moondown",
		Short: "Live Markdown editing core and list renumbering tool",
		Long: `moondown is the editing core behind the moondown Markdown editor:
depth-styled bullet decorations, ordered-list renumbering, and transient
reference highlights, embeddable into any host text-editing surface.

The CLI applies the same renumbering engine to Markdown files in batch,
printing a diff of the corrections or rewriting files in place.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenumberCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
