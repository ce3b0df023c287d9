package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
)

// NewRootCmd builds the nitroping command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nitroping",
		Short:         "NitroPing announces server boosts and manages booster roles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "optional YAML config file")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional .env file loaded before reading the environment")

	run := newRunCmd()
	root.AddCommand(run)
	root.AddCommand(newGuildCmd())

	// Running without a subcommand starts the bot
	root.RunE = run.RunE

	return root
}

// Execute runs the command tree until ctx is cancelled
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
