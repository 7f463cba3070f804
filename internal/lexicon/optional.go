package lexicon

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Optional is a string attribute that may be absent from the document.
// An absent value and a present empty string are different values.
type Optional struct {
	value   string
	present bool
}

var (
	_ xml.UnmarshalerAttr = (*Optional)(nil)
	_ json.Marshaler      = Optional{}
	_ json.Unmarshaler    = (*Optional)(nil)
	_ yaml.Marshaler      = Optional{}
	_ yaml.Unmarshaler    = (*Optional)(nil)
	_ yaml.IsZeroer       = Optional{}
)

// Some returns a present value.
func Some(value string) Optional {
	return Optional{value: value, present: true}
}

// None returns an absent value.
func None() Optional {
	return Optional{}
}

// Get returns the value and whether it is present.
func (o Optional) Get() (string, bool) {
	return o.value, o.present
}

// IsPresent reports whether the attribute was set.
func (o Optional) IsPresent() bool {
	return o.present
}

// OrEmpty returns the value, or "" when absent.
func (o Optional) OrEmpty() string {
	return o.value
}

// Equal reports whether both values have the same presence and content.
func (o Optional) Equal(other Optional) bool {
	return o.present == other.present && o.value == other.value
}

// IsZero is used by encoding/json (omitzero) and yaml.v3 (omitempty) to drop absent values.
func (o Optional) IsZero() bool {
	return !o.present
}

func (o Optional) String() string {
	if !o.present {
		return "<none>"
	}
	return o.value
}

func (o *Optional) UnmarshalXMLAttr(attr xml.Attr) error {
	*o = Some(attr.Value)
	return nil
}

func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None()
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	*o = Some(value)
	return nil
}

func (o Optional) MarshalYAML() (interface{}, error) {
	if !o.present {
		return nil, nil
	}
	return o.value, nil
}

func (o *Optional) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*o = None()
		return nil
	}
	var value string
	if err := node.Decode(&value); err != nil {
		return fmt.Errorf("node.Decode > %w", err)
	}
	*o = Some(value)
	return nil
}
