package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/layoutrc/pkg/migrate"
	"github.com/walteh/layoutrc/pkg/report"
)

// NewMigrateCmd creates the migrate command
func NewMigrateCmd(opts *Options) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite legacy two-panel layouts into the TwoColumnLayout wrapper",
		Long: `Migrate locates the two half-width panel regions in each target file,
injects the TwoColumnLayout import, and rewraps both regions under the
unified wrapper. Files already carrying the wrapper, and files without
the expected two-panel structure, are skipped and left untouched.

Targets come either from --files (missing paths are reported as skips)
or from recursive discovery under --root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "migrate").Logger().WithContext(ctx)

			cfg, err := opts.ResolveConfig(ctx, cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("files") {
				cfg.Files = files
			}

			results, err := migrate.New(cfg).Run(ctx)
			report.NewPrinter(cmd.OutOrStdout()).Print(results)
			if err != nil {
				return errors.Errorf("migrating: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "files", "f", nil, "explicit list of target files (skips discovery)")

	return cmd
}
