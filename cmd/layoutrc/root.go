package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/layoutrc/cmd/layoutrc/commands"
)

// newRootCmd builds the root command and binds the shared flags.
func newRootCmd(opts *commands.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layoutrc",
		Short: "A tool for migrating legacy two-panel layouts to TwoColumnLayout",
		Long: `layoutrc scans a tree of component source files, detects the legacy
two-panel layout pattern, and rewrites it into a unified TwoColumnLayout
wrapper. It is safe to re-run: files that already carry the wrapper are
skipped, and the cleanup pass leaves a .bak copy next to every file it
touches.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "config file path (.yaml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&opts.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.Root, "root", "r", ".", "directory to scan for component files")
	cmd.PersistentFlags().StringVarP(&opts.Extension, "ext", "e", ".tsx", "file extension filter")
	cmd.PersistentFlags().StringSliceVarP(&opts.Ignore, "ignore", "i", nil, "glob patterns to exclude from discovery")

	return cmd
}
