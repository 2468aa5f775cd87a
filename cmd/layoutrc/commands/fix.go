package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/layoutrc/pkg/fixup"
	"github.com/walteh/layoutrc/pkg/report"
)

// NewFixCmd creates the fix command
func NewFixCmd(opts *Options) *cobra.Command {
	var advanced bool

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Apply post-fix substitution rules to migrated files",
		Long: `Fix corrects known malformed output shapes in already-migrated files:
broken iteration-block openings and dangling wrapper tails. Every rule is
idempotent, so re-running fix on corrected files changes nothing.

With --advanced, the truncated class-attribute repair is also applied and
corrected content is written to "<name>_fixed<ext>" siblings instead of
overwriting the originals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "fix").Logger().WithContext(ctx)

			cfg, err := opts.ResolveConfig(ctx, cmd)
			if err != nil {
				return err
			}

			results, err := fixup.NewFixer(cfg, advanced).Run(ctx)
			report.NewPrinter(cmd.OutOrStdout()).Print(results)
			if err != nil {
				return errors.Errorf("fixing: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&advanced, "advanced", "a", false, "apply advanced repairs and write _fixed siblings")

	return cmd
}
