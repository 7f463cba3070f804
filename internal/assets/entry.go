// Package assets renders exported documents from embedded templates.
package assets

import (
	_ "embed"
	"fmt"
	"io"
)

const entryTemplateName = "entry.md.go.tmpl"

//go:embed templates/entry.md.go.tmpl
var fallbackEntryTemplate string

// EntryTemplate is the data of one exported lexicon entry. Empty fields are omitted.
type EntryTemplate struct {
	Word      string
	Direction string
	Class     string
	Language  string
	Comment   string

	Inflections  []string
	Translations []string
	Synonyms     []string
	Phonetics    []string
	Examples     []string
	Definitions  []string
	RelatedWords []string
	SeeAlso      []string
}

// WriteEntry renders the entry with the template at templatePath,
// or with the embedded template when the path is empty or unusable.
func WriteEntry(output io.Writer, templatePath string, templateData EntryTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, entryTemplateName, fallbackEntryTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
