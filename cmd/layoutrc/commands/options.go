package commands

import (
	"context"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/layoutrc/pkg/config"
)

// Options carries the shared flag values into subcommands.
type Options struct {
	ConfigFile string
	Debug      bool
	Root       string
	Extension  string
	Ignore     []string
}

// ResolveConfig builds the run configuration: the config file (when given)
// provides the base, and any flag the user set on the command line wins.
func (o *Options) ResolveConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if o.ConfigFile != "" {
		loaded, err := config.Load(ctx, o.ConfigFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("root") || cfg.Root == "" {
		cfg.Root = o.Root
	}
	if flags.Changed("ext") || cfg.Extension == "" {
		cfg.Extension = o.Extension
	}
	if flags.Changed("ignore") {
		cfg.Ignore = o.Ignore
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
