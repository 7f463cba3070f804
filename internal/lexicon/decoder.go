package lexicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/net/html/charset"
)

const rootElement = "dictionary"

// Decode parses a Folkets Lexikon XML document.
// Unknown elements and attributes are ignored, and missing required attributes fail the whole document.
func Decode(r io.Reader) (*Dictionary, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	start, err := findRoot(decoder)
	if err != nil {
		return nil, &ParseError{Source: SourceDocument, Err: err}
	}

	var dictionary Dictionary
	if err := decoder.DecodeElement(&dictionary, &start); err != nil {
		return nil, &ParseError{Source: SourceDocument, Err: fmt.Errorf("decoder.DecodeElement > %w", err)}
	}
	if err := dictionary.validate(); err != nil {
		return nil, &ParseError{Source: SourceDocument, Err: err}
	}

	slog.Default().Debug("decoded lexicon document",
		"name", dictionary.Name.OrEmpty(),
		"words", len(dictionary.Words))
	return &dictionary, nil
}

func findRoot(decoder *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, fmt.Errorf("no <%s> element found", rootElement)
		}
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("decoder.Token > %w", err)
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != rootElement {
			return xml.StartElement{}, fmt.Errorf("unexpected root element <%s>, want <%s>", start.Name.Local, rootElement)
		}
		return start, nil
	}
}
