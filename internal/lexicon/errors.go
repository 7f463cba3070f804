package lexicon

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Lookup when no word matches the query.
	ErrNotFound = errors.New("no such word in lexicon")
	// ErrNetwork is returned when the remote document could not be downloaded.
	ErrNetwork = errors.New("network error")
	// ErrFileSystem is returned when a cache artifact could not be created, read or written.
	ErrFileSystem = errors.New("file system error")
	// ErrEncoding is returned when a query is not valid UTF-8.
	ErrEncoding = errors.New("invalid unicode string supplied")

	// ErrParseDocument matches a ParseError raised while decoding the remote document.
	ErrParseDocument = errors.New("malformed lexicon document")
	// ErrParseCache matches a ParseError raised while reading the decoded cache.
	ErrParseCache = errors.New("corrupt lexicon cache")
)

type ParseSource string

const (
	SourceDocument ParseSource = "document"
	SourceCache    ParseSource = "cache"
)

// ParseError is returned when a lexicon document or cache cannot be turned into a Dictionary.
type ParseError struct {
	Source ParseSource
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse lexicon %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a ParseError against ErrParseDocument or ErrParseCache.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrParseDocument:
		return e.Source == SourceDocument
	case ErrParseCache:
		return e.Source == SourceCache
	}
	return false
}

// MissingFieldError reports a required attribute that is absent or empty.
type MissingFieldError struct {
	Element   string
	Attribute string
	Word      string
}

func (e *MissingFieldError) Error() string {
	if e.Word == "" {
		return fmt.Sprintf("<%s> is missing required attribute %q", e.Element, e.Attribute)
	}
	return fmt.Sprintf("<%s> in word %q is missing required attribute %q", e.Element, e.Word, e.Attribute)
}
