package cmd

import (
	"encoding/json"
	"fmt"

	"nitroping/config"
	"nitroping/repository"
	"nitroping/storage"

	"github.com/spf13/cobra"
)

func newGuildCmd() *cobra.Command {
	guild := &cobra.Command{
		Use:   "guild",
		Short: "Inspect stored guild configuration",
	}

	guild.AddCommand(&cobra.Command{
		Use:   "show <guildID>",
		Short: "Print a guild's stored config as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openGuildRepository(cmd)
			if err != nil {
				return err
			}
			if !storage.ValidID(args[0]) {
				return fmt.Errorf("%w: guild %q", storage.ErrInvalidID, args[0])
			}

			data, err := json.MarshalIndent(repo.Get(cmd.Context(), args[0]), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	guild.AddCommand(&cobra.Command{
		Use:   "init <guildID>",
		Short: "Create a guild's default config if it does not exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openGuildRepository(cmd)
			if err != nil {
				return err
			}

			path, err := repo.Ensure(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return guild
}

func openGuildRepository(cmd *cobra.Command) (*repository.GuildConfigRepository, error) {
	cfg, err := config.Init(config.Options{ConfigFile: cfgFile, EnvFile: envFile, Offline: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	root, err := storage.Open(cmd.Context(), cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return repository.NewGuildConfigRepository(root), nil
}
