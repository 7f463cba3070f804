package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// CacheReader is the part of a cache store the engine needs.
type CacheReader interface {
	Read(ctx context.Context, key string) ([]byte, error)
}

// Engine answers queries against one loaded dictionary.
type Engine struct {
	dictionary *Dictionary
}

func NewEngine(dictionary *Dictionary) *Engine {
	return &Engine{dictionary: dictionary}
}

// Load reads the decoded cache of a lexicon and builds an engine over it.
func Load(ctx context.Context, store CacheReader, lexicon Lexicon) (*Engine, error) {
	contents, err := store.Read(ctx, lexicon.DecodedCachePath)
	if err != nil {
		return nil, fmt.Errorf("store.Read(%s) > %w", lexicon.DecodedCachePath, err)
	}
	dictionary, err := Deserialize(contents, lexicon.Format)
	if err != nil {
		return nil, fmt.Errorf("Deserialize(%s) > %w", lexicon.DecodedCachePath, err)
	}
	slog.Default().Debug("loaded lexicon cache",
		"lexicon", lexicon.ID,
		"words", len(dictionary.Words))
	return NewEngine(dictionary), nil
}

func (e *Engine) Dictionary() *Dictionary {
	return e.dictionary
}

// Lookup returns the first word, in document order, whose value or one of whose inflections equals the query.
func (e *Engine) Lookup(query string) (*Word, error) {
	if !utf8.ValidString(query) {
		return nil, ErrEncoding
	}
	for i := range e.dictionary.Words {
		if e.dictionary.Words[i].Matches(query) {
			return &e.dictionary.Words[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, query)
}

// Search returns every word whose value contains the substring, in document order.
func (e *Engine) Search(substring string) ([]*Word, error) {
	if !utf8.ValidString(substring) {
		return nil, ErrEncoding
	}
	words := make([]*Word, 0)
	for i := range e.dictionary.Words {
		if strings.Contains(e.dictionary.Words[i].Value, substring) {
			words = append(words, &e.dictionary.Words[i])
		}
	}
	return words, nil
}
