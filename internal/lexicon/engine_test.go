package lexicon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioDictionary() *Dictionary {
	return &Dictionary{
		Words: []Word{
			{Value: "hund", Class: Some("noun"), Inflections: []Inflection{{Value: "hundar"}}},
			{Value: "katt", Class: Some("noun"), Synonyms: []Synonym{{Value: "kisse"}}},
		},
	}
}

func TestEngine_Lookup(t *testing.T) {
	tests := []struct {
		name       string
		dictionary *Dictionary
		query      string
		wantIndex  int
		wantErr    error
	}{
		{
			name:       "canonical value",
			dictionary: scenarioDictionary(),
			query:      "hund",
			wantIndex:  0,
		},
		{
			name:       "inflection",
			dictionary: scenarioDictionary(),
			query:      "hundar",
			wantIndex:  0,
		},
		{
			name:       "synonyms are not looked up",
			dictionary: scenarioDictionary(),
			query:      "kisse",
			wantErr:    ErrNotFound,
		},
		{
			name:       "miss",
			dictionary: scenarioDictionary(),
			query:      "mus",
			wantErr:    ErrNotFound,
		},
		{
			name:       "case sensitive",
			dictionary: scenarioDictionary(),
			query:      "Hund",
			wantErr:    ErrNotFound,
		},
		{
			name: "duplicates resolve to the first word",
			dictionary: &Dictionary{Words: []Word{
				{Value: "bok", Translations: []Translation{{Value: Some("book")}}},
				{Value: "bok", Translations: []Translation{{Value: Some("beech")}}},
			}},
			query:     "bok",
			wantIndex: 0,
		},
		{
			name: "inflection of an earlier word wins over a later canonical value",
			dictionary: &Dictionary{Words: []Word{
				{Value: "vara", Inflections: []Inflection{{Value: "är"}}},
				{Value: "är"},
			}},
			query:     "är",
			wantIndex: 0,
		},
		{
			name:       "invalid utf-8",
			dictionary: scenarioDictionary(),
			query:      "hu\xffnd",
			wantErr:    ErrEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(tt.dictionary)
			got, err := engine.Lookup(tt.query)
			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Same(t, &tt.dictionary.Words[tt.wantIndex], got)
		})
	}
}

func TestEngine_Search(t *testing.T) {
	engine := NewEngine(decodeSample(t))

	tests := []struct {
		name      string
		substring string
		want      []string
	}{
		{
			name:      "prefix match keeps document order",
			substring: "hund",
			want:      []string{"hund", "hundra"},
		},
		{
			name:      "inner substring",
			substring: "at",
			want:      []string{"katt"},
		},
		{
			name:      "duplicates are all returned",
			substring: "bok",
			want:      []string{"bok", "bok"},
		},
		{
			name:      "empty substring matches every word",
			substring: "",
			want:      []string{"hund", "katt", "bok", "bok", "hundra"},
		},
		{
			name:      "no case folding",
			substring: "Hund",
			want:      []string{},
		},
		{
			name:      "inflections are not searched",
			substring: "hundar",
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Search(tt.substring)
			require.NoError(t, err)
			values := make([]string, 0, len(got))
			for _, word := range got {
				values = append(values, word.Value)
			}
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestEngine_SearchContainsExactLookup(t *testing.T) {
	engine := NewEngine(decodeSample(t))

	for _, query := range []string{"hund", "katt", "bok", "hundra"} {
		word, err := engine.Lookup(query)
		require.NoError(t, err)

		results, err := engine.Search(query)
		require.NoError(t, err)
		assert.Contains(t, results, word)
	}
}

func TestEngine_Scenario(t *testing.T) {
	engine := NewEngine(scenarioDictionary())

	word, err := engine.Lookup("hundar")
	require.NoError(t, err)
	assert.Equal(t, "hund", word.Value)

	results, err := engine.Search("a")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "katt", results[0].Value)

	_, err = engine.Lookup("mus")
	assert.ErrorIs(t, err, ErrNotFound)
}

type stubReader map[string][]byte

func (s stubReader) Read(_ context.Context, key string) ([]byte, error) {
	contents, ok := s[key]
	if !ok {
		return nil, ErrFileSystem
	}
	return contents, nil
}

func TestLoad(t *testing.T) {
	selector, err := NewSelector("", FormatJSON)
	require.NoError(t, err)
	lexicon := selector.Resolve(SwedishToEnglish)

	contents, err := Serialize(scenarioDictionary(), FormatJSON)
	require.NoError(t, err)

	t.Run("cache present", func(t *testing.T) {
		engine, err := Load(context.Background(), stubReader{lexicon.DecodedCachePath: contents}, lexicon)
		require.NoError(t, err)
		assert.Equal(t, scenarioDictionary(), engine.Dictionary())
	})

	t.Run("cache missing", func(t *testing.T) {
		_, err := Load(context.Background(), stubReader{}, lexicon)
		assert.ErrorIs(t, err, ErrFileSystem)
	})

	t.Run("cache corrupt", func(t *testing.T) {
		_, err := Load(context.Background(), stubReader{lexicon.DecodedCachePath: contents[:len(contents)/2]}, lexicon)
		assert.ErrorIs(t, err, ErrParseCache)
	})
}
