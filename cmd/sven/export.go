package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/sven/internal/assets"
	"github.com/at-ishikawa/sven/internal/cli"
	"github.com/at-ishikawa/sven/internal/export"
)

func newExportCommand() *cobra.Command {
	var outputPath string
	var withPDF bool

	cmd := &cobra.Command{
		Use:   "export <word>",
		Short: "Write an entry to a Markdown file, optionally converted to PDF",
		Args:  cobra.ExactArgs(1),
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

			word, err := engine.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("engine.Lookup > %w", err)
			}

			var markdown bytes.Buffer
			if err := assets.WriteEntry(&markdown, cfg.Templates.EntryTemplate, cli.NewEntryTemplate(direction, word)); err != nil {
				return fmt.Errorf("assets.WriteEntry > %w", err)
			}

			path := outputPath
			if path == "" {
				path = word.Value + ".md"
			}
			result, err := export.WriteEntry(path, markdown.String(), withPDF)
			if err != nil {
				return fmt.Errorf("export.WriteEntry > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Markdown written to %s\n", result.MarkdownPath)
			if result.PDFPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", result.PDFPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Markdown output path. Defaults to <word>.md")
	cmd.Flags().BoolVar(&withPDF, "pdf", false, "Also convert the Markdown file to PDF")
	return cmd
}
