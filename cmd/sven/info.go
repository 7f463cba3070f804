package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/sven/internal/cli"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show metadata of the lexicon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engine, direction, closeFunc, err := openEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeFunc()
			}()

			return cli.NewEntryWriter(cmd.OutOrStdout()).WriteInfo(direction, engine.Dictionary())
		},
	}
}
