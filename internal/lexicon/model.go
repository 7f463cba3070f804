package lexicon

// Dictionary is one direction of the lexicon, as published by Folkets Lexikon.
// Words keep document order, which decides lookup ties.
type Dictionary struct {
	Comment        Optional `xml:"comment,attr" json:"comment,omitzero" yaml:"comment,omitempty"`
	Created        Optional `xml:"created,attr" json:"created,omitzero" yaml:"created,omitempty"`
	LastChanged    Optional `xml:"last-changed,attr" json:"last_changed,omitzero" yaml:"last_changed,omitempty"`
	Name           Optional `xml:"name,attr" json:"name,omitzero" yaml:"name,omitempty"`
	SourceLanguage Optional `xml:"source-language,attr" json:"source_language,omitzero" yaml:"source_language,omitempty"`
	TargetLanguage Optional `xml:"target-language,attr" json:"target_language,omitzero" yaml:"target_language,omitempty"`
	Version        Optional `xml:"version,attr" json:"version,omitzero" yaml:"version,omitempty"`
	License        Optional `xml:"license,attr" json:"license,omitzero" yaml:"license,omitempty"`
	LicenseComment Optional `xml:"licenseComment,attr" json:"license_comment,omitzero" yaml:"license_comment,omitempty"`
	OriginURL      Optional `xml:"originURL,attr" json:"origin_url,omitzero" yaml:"origin_url,omitempty"`

	Words []Word `xml:"word" json:"words" yaml:"words"`
}

// Word is a single entry of the lexicon.
type Word struct {
	Value   string   `xml:"value,attr" json:"value" yaml:"value"`
	Class   Optional `xml:"class,attr" json:"class,omitzero" yaml:"class,omitempty"`
	Comment Optional `xml:"comment,attr" json:"comment,omitzero" yaml:"comment,omitempty"`
	Lang    Optional `xml:"lang,attr" json:"lang,omitzero" yaml:"lang,omitempty"`

	Translations []Translation `xml:"translation" json:"translations,omitempty" yaml:"translations,omitempty"`
	Synonyms     []Synonym     `xml:"synonym" json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Phonetics    []Phonetic    `xml:"phonetic" json:"phonetics,omitempty" yaml:"phonetics,omitempty"`
	Inflections  []Inflection  `xml:"inflection" json:"inflections,omitempty" yaml:"inflections,omitempty"`
	Sees         []See         `xml:"see" json:"sees,omitempty" yaml:"sees,omitempty"`
	Examples     []Example     `xml:"example" json:"examples,omitempty" yaml:"examples,omitempty"`
	RelatedWords []RelatedWord `xml:"related" json:"related_words,omitempty" yaml:"related_words,omitempty"`
	Definitions  []Definition  `xml:"definition" json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

type Translation struct {
	Value   Optional `xml:"value,attr" json:"value,omitzero" yaml:"value,omitempty"`
	Comment Optional `xml:"comment,attr" json:"comment,omitzero" yaml:"comment,omitempty"`
}

type Synonym struct {
	Value string   `xml:"value,attr" json:"value" yaml:"value"`
	Level Optional `xml:"level,attr" json:"level,omitzero" yaml:"level,omitempty"`
}

type Phonetic struct {
	Value     Optional `xml:"value,attr" json:"value,omitzero" yaml:"value,omitempty"`
	SoundFile Optional `xml:"soundFile,attr" json:"sound_file,omitzero" yaml:"sound_file,omitempty"`
}

// Inflection is an alternate surface form that resolves to its Word on lookup.
type Inflection struct {
	Value string `xml:"value,attr" json:"value" yaml:"value"`
}

// See is a cross reference to another entry.
type See struct {
	Type  Optional `xml:"type,attr" json:"type,omitzero" yaml:"type,omitempty"`
	Value Optional `xml:"value,attr" json:"value,omitzero" yaml:"value,omitempty"`
}

type Example struct {
	Value       Optional     `xml:"value,attr" json:"value,omitzero" yaml:"value,omitempty"`
	Translation *Translation `xml:"translation" json:"translation,omitempty" yaml:"translation,omitempty"`
}

type RelatedWord struct {
	Type  string `xml:"type,attr" json:"type" yaml:"type"`
	Value string `xml:"value,attr" json:"value" yaml:"value"`
}

type Definition struct {
	Value       Optional     `xml:"value,attr" json:"value,omitzero" yaml:"value,omitempty"`
	Translation *Translation `xml:"translation" json:"translation,omitempty" yaml:"translation,omitempty"`
}

// InflectionValues returns the surface forms of the word's inflections in order.
func (w Word) InflectionValues() []string {
	values := make([]string, 0, len(w.Inflections))
	for _, inflection := range w.Inflections {
		values = append(values, inflection.Value)
	}
	return values
}

// Matches reports whether the query is the word itself or one of its inflections.
func (w Word) Matches(query string) bool {
	if w.Value == query {
		return true
	}
	for _, inflection := range w.Inflections {
		if inflection.Value == query {
			return true
		}
	}
	return false
}
