// Package attr implements the attribute type model and the value codec
// shared by every HTML5 and SVG attribute.
//
// A Type is a set of grammar flags. Parse decodes a markup value into a
// normalized Value according to those flags, and Serialize encodes a Value
// back into its markup form.
package attr

import "strings"

// Type is a bit set describing which value grammars an attribute accepts.
// Flags combine freely; always test them with Any or IsBool, never by
// comparing whole sets.
type Type uint32

const (
	// Bool is a boolean attribute: false if omitted, true if present without a value.
	Bool Type = 0x1
	// True accepts the explicit value "true".
	True Type = 0x2
	// False accepts the explicit value "false".
	False Type = 0x4
	// String accepts any string.
	String Type = 0x8
	// EmptyString accepts the empty string.
	EmptyString Type = 0x10
	// Number accepts any number. Numbers are kept as text.
	Number Type = 0x20

	// CommaSep splits values on commas.
	CommaSep Type = 0x100
	// SpaceSep splits values on single spaces.
	SpaceSep Type = 0x200
	// CommaOrSpaceSep splits values on commas or spaces.
	CommaOrSpaceSep Type = 0x400
)

var typeNames = []struct {
	flag Type
	name string
}{
	{Bool, "BOOL"},
	{True, "TRUE"},
	{False, "FALSE"},
	{String, "STRING"},
	{EmptyString, "EMPTY_STRING"},
	{Number, "NUMBER"},
	{CommaSep, "COMMA_SEP"},
	{SpaceSep, "SPACE_SEP"},
	{CommaOrSpaceSep, "COMMA_OR_SPACE_SEP"},
}

// IsBool reports whether the Bool flag is set.
func (t Type) IsBool() bool {
	return t&Bool != 0
}

// Any reports whether t shares at least one flag with mask.
func (t Type) Any(mask Type) bool {
	return t&mask != 0
}

// String renders the set flags joined by "|", in bit order.
func (t Type) String() string {
	if t == 0 {
		return "0"
	}
	var parts []string
	for _, tn := range typeNames {
		if t&tn.flag != 0 {
			parts = append(parts, tn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseType parses flag names joined by "|" or ",", as produced by
// Type.String. Names are matched case-insensitively.
func ParseType(s string) (Type, error) {
	var t Type
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		field = strings.TrimSpace(field)
		if field == "" || field == "0" {
			continue
		}
		flag, ok := flagByName(field)
		if !ok {
			return 0, &UnknownFlagError{Name: field}
		}
		t |= flag
	}
	return t, nil
}

func flagByName(name string) (Type, bool) {
	for _, tn := range typeNames {
		if strings.EqualFold(tn.name, name) {
			return tn.flag, true
		}
	}
	return 0, false
}

// Flags returns every individual flag in bit order.
func Flags() []Type {
	out := make([]Type, len(typeNames))
	for i, tn := range typeNames {
		out[i] = tn.flag
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
