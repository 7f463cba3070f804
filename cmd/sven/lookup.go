package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/sven/internal/cli"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "lookup <word>",
		Aliases: []string{"look"},
		Short:   "Look up a word or one of its inflections",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engine, _, closeFunc, err := openEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeFunc()
			}()

			word, err := engine.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("engine.Lookup > %w", err)
			}
			return cli.NewEntryWriter(cmd.OutOrStdout()).WriteEntry(word)
		},
	}
}

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <substring>",
		Short: "List every word containing the substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engine, _, closeFunc, err := openEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeFunc()
			}()

			words, err := engine.Search(args[0])
			if err != nil {
				return fmt.Errorf("engine.Search > %w", err)
			}
			return cli.NewEntryWriter(cmd.OutOrStdout()).WriteSearchResults(words)
		},
	}
}
