package lexicon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CacheFormat is the encoding of the decoded cache.
type CacheFormat string

const (
	FormatJSON CacheFormat = "json"
	FormatYAML CacheFormat = "yaml"
)

func (f CacheFormat) Valid() bool {
	return f == FormatJSON || f == FormatYAML
}

func (f CacheFormat) Extension() string {
	if f == FormatYAML {
		return "yml"
	}
	return "json"
}

// Serialize encodes a dictionary for the decoded cache.
func Serialize(dictionary *Dictionary, format CacheFormat) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		contents, err := json.Marshal(dictionary)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal > %w", err)
		}
		return contents, nil
	case FormatYAML:
		contents, err := yaml.Marshal(dictionary)
		if err != nil {
			return nil, fmt.Errorf("yaml.Marshal > %w", err)
		}
		return contents, nil
	default:
		return nil, fmt.Errorf("unsupported cache format: %s", format)
	}
}

// Deserialize decodes a dictionary written by Serialize.
// Any failure, including a truncated file, is reported as a ParseError from the cache.
func Deserialize(contents []byte, format CacheFormat) (*Dictionary, error) {
	if len(bytes.TrimSpace(contents)) == 0 {
		return nil, &ParseError{Source: SourceCache, Err: errors.New("cache is empty")}
	}

	var dictionary Dictionary
	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(contents, &dictionary); err != nil {
			return nil, &ParseError{Source: SourceCache, Err: fmt.Errorf("json.Unmarshal > %w", err)}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(contents, &dictionary); err != nil {
			return nil, &ParseError{Source: SourceCache, Err: fmt.Errorf("yaml.Unmarshal > %w", err)}
		}
	default:
		return nil, &ParseError{Source: SourceCache, Err: fmt.Errorf("unsupported cache format: %s", format)}
	}
	if err := dictionary.validate(); err != nil {
		return nil, &ParseError{Source: SourceCache, Err: err}
	}
	return &dictionary, nil
}
