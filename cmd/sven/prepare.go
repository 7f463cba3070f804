package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrepareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare",
		Short: "Download and convert the lexicons of both directions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, err := newLexiconService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = service.Close()
			}()

			if err := service.fetcher.EnsureAll(cmd.Context()); err != nil {
				return fmt.Errorf("fetcher.EnsureAll > %w", err)
			}
			return nil
		},
	}
}
