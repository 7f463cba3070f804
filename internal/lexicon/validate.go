package lexicon

// validate checks the required attributes that encoding/xml and the cache codecs cannot enforce.
func (d *Dictionary) validate() error {
	for _, word := range d.Words {
		if word.Value == "" {
			return &MissingFieldError{Element: "word", Attribute: "value"}
		}
		for _, synonym := range word.Synonyms {
			if synonym.Value == "" {
				return &MissingFieldError{Element: "synonym", Attribute: "value", Word: word.Value}
			}
		}
		for _, inflection := range word.Inflections {
			if inflection.Value == "" {
				return &MissingFieldError{Element: "inflection", Attribute: "value", Word: word.Value}
			}
		}
		for _, related := range word.RelatedWords {
			if related.Type == "" {
				return &MissingFieldError{Element: "related", Attribute: "type", Word: word.Value}
			}
			if related.Value == "" {
				return &MissingFieldError{Element: "related", Attribute: "value", Word: word.Value}
			}
		}
	}
	return nil
}
