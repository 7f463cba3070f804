package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/sven/internal/lexicon"
)

// EntryWriter prints lexicon entries for the terminal.
type EntryWriter struct {
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

func NewEntryWriter(stdoutWriter io.Writer) *EntryWriter {
	return &EntryWriter{
		stdoutWriter: stdoutWriter,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// WriteEntry prints the word with its class, comment, inflections, translations, synonyms and examples.
func (w *EntryWriter) WriteEntry(word *lexicon.Word) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", w.bold.Sprint("Word:"), word.Value)
	if class, ok := word.Class.Get(); ok {
		fmt.Fprintf(&b, "%s %s\n", w.bold.Sprint("Class:"), class)
	}
	if comment, ok := word.Comment.Get(); ok {
		fmt.Fprintf(&b, "%s %s\n", w.bold.Sprint("Comment:"), comment)
	}
	if len(word.Inflections) > 0 {
		fmt.Fprintf(&b, "%s %s\n", w.bold.Sprint("Inflections:"), strings.Join(word.InflectionValues(), ", "))
	}

	if len(word.Translations) > 0 {
		fmt.Fprintln(&b, w.bold.Sprint("Translations:"))
		for _, translation := range word.Translations {
			fmt.Fprintf(&b, "- %s\n", translation.Value.OrEmpty())
			if comment := translation.Comment.OrEmpty(); comment != "" {
				fmt.Fprintf(&b, "%s %s\n", w.italic.Sprint("Comment:"), comment)
			}
		}
	}

	if len(word.Synonyms) > 0 {
		fmt.Fprintln(&b, w.bold.Sprint("Synonyms:"))
		for _, synonym := range word.Synonyms {
			fmt.Fprintf(&b, "- %s\n", synonym.Value)
		}
	}

	if len(word.Examples) > 0 {
		fmt.Fprintln(&b, w.bold.Sprint("Examples:"))
		for _, example := range word.Examples {
			if example.Translation != nil {
				fmt.Fprintf(&b, "- %s (%s)\n", example.Value.OrEmpty(), example.Translation.Value.OrEmpty())
			} else {
				fmt.Fprintf(&b, "- %s\n", example.Value.OrEmpty())
			}
		}
	}

	if _, err := io.WriteString(w.stdoutWriter, b.String()); err != nil {
		return fmt.Errorf("io.WriteString > %w", err)
	}
	return nil
}

// WriteSearchResults prints one value per line in the order given.
func (w *EntryWriter) WriteSearchResults(words []*lexicon.Word) error {
	var b strings.Builder
	for _, word := range words {
		b.WriteString(word.Value)
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w.stdoutWriter, b.String()); err != nil {
		return fmt.Errorf("io.WriteString > %w", err)
	}
	return nil
}

// WriteInfo prints the metadata of a dictionary. Absent attributes are skipped.
func (w *EntryWriter) WriteInfo(direction lexicon.Direction, dictionary *lexicon.Dictionary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", w.bold.Sprint("Lexicon:"), direction)

	fields := []struct {
		label string
		value lexicon.Optional
	}{
		{"Name", dictionary.Name},
		{"Version", dictionary.Version},
		{"Source language", dictionary.SourceLanguage},
		{"Target language", dictionary.TargetLanguage},
		{"Created", dictionary.Created},
		{"Last changed", dictionary.LastChanged},
		{"Comment", dictionary.Comment},
		{"License", dictionary.License},
		{"License comment", dictionary.LicenseComment},
		{"Origin", dictionary.OriginURL},
	}
	for _, field := range fields {
		if value, ok := field.value.Get(); ok && value != "" {
			fmt.Fprintf(&b, "%s %s\n", w.bold.Sprint(field.label+":"), value)
		}
	}
	fmt.Fprintf(&b, "%s %d\n", w.bold.Sprint("Words:"), len(dictionary.Words))

	if _, err := io.WriteString(w.stdoutWriter, b.String()); err != nil {
		return fmt.Errorf("io.WriteString > %w", err)
	}
	return nil
}
