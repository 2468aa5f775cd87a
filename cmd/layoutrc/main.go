package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/walteh/layoutrc/cmd/layoutrc/commands"
)

func main() {
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	opts := &commands.Options{}

	rootCmd := newRootCmd(opts)
	rootCmd.AddCommand(
		commands.NewMigrateCmd(opts),
		commands.NewCleanupCmd(opts),
		commands.NewFixCmd(opts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
