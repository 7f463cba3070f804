package cli

import (
	"fmt"

	"github.com/at-ishikawa/sven/internal/assets"
	"github.com/at-ishikawa/sven/internal/lexicon"
)

// NewEntryTemplate flattens every field of a word into template data for export.
func NewEntryTemplate(direction lexicon.Direction, word *lexicon.Word) assets.EntryTemplate {
	return assets.EntryTemplate{
		Word:        word.Value,
		Direction:   direction.String(),
		Class:       word.Class.OrEmpty(),
		Language:    word.Lang.OrEmpty(),
		Comment:     word.Comment.OrEmpty(),
		Inflections: word.InflectionValues(),
		Translations: mapLines(word.Translations, func(t lexicon.Translation) string {
			return withComment(t.Value.OrEmpty(), t.Comment)
		}),
		Synonyms: mapLines(word.Synonyms, func(s lexicon.Synonym) string {
			if level, ok := s.Level.Get(); ok {
				return fmt.Sprintf("%s (level %s)", s.Value, level)
			}
			return s.Value
		}),
		Phonetics: mapLines(word.Phonetics, func(p lexicon.Phonetic) string {
			return p.Value.OrEmpty()
		}),
		Examples: mapLines(word.Examples, func(e lexicon.Example) string {
			return withTranslation(e.Value.OrEmpty(), e.Translation)
		}),
		Definitions: mapLines(word.Definitions, func(d lexicon.Definition) string {
			return withTranslation(d.Value.OrEmpty(), d.Translation)
		}),
		RelatedWords: mapLines(word.RelatedWords, func(r lexicon.RelatedWord) string {
			return fmt.Sprintf("%s (%s)", r.Value, r.Type)
		}),
		SeeAlso: mapLines(word.Sees, func(s lexicon.See) string {
			return withComment(s.Value.OrEmpty(), s.Type)
		}),
	}
}

func mapLines[T any](items []T, f func(T) string) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if line := f(item); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func withComment(value string, comment lexicon.Optional) string {
	if c := comment.OrEmpty(); c != "" {
		return fmt.Sprintf("%s (%s)", value, c)
	}
	return value
}

func withTranslation(value string, translation *lexicon.Translation) string {
	if translation == nil || translation.Value.OrEmpty() == "" {
		return value
	}
	return fmt.Sprintf("%s: %s", value, translation.Value.OrEmpty())
}
