package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/layoutrc/pkg/fixup"
	"github.com/walteh/layoutrc/pkg/report"
)

// NewCleanupCmd creates the cleanup command
func NewCleanupCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Replace leftover half-width panel wrappers in migrated files",
		Long: `Cleanup sweeps already-migrated files for half-width panel wrappers the
migration left behind inside content blocks and replaces them with
fragments. Every file it touches is first copied to a sibling .bak file;
the backup is the recovery path and is never deleted automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "cleanup").Logger().WithContext(ctx)

			cfg, err := opts.ResolveConfig(ctx, cmd)
			if err != nil {
				return err
			}

			results, err := fixup.NewCleaner(cfg).Run(ctx)
			report.NewPrinter(cmd.OutOrStdout()).Print(results)
			if err != nil {
				return errors.Errorf("cleaning up: %w", err)
			}
			return nil
		},
	}

	return cmd
}
