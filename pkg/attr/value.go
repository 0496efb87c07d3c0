package attr

import (
	"fmt"
	"slices"
	"strings"
)

// ValueKind discriminates the variants of a Value.
type ValueKind uint8

const (
	KindTrue ValueKind = iota
	KindFalse
	KindString
	KindMulti
)

func (k ValueKind) String() string {
	switch k {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindString:
		return "string"
	case KindMulti:
		return "multi"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Value is a normalized attribute value: true, false, a single string, or
// an ordered list of non-empty strings. The zero Value is TrueValue().
type Value struct {
	kind  ValueKind
	text  string
	parts []string
}

// TrueValue returns the boolean true value.
func TrueValue() Value { return Value{kind: KindTrue} }

// FalseValue returns the boolean false value.
func FalseValue() Value { return Value{kind: KindFalse} }

// StringValue returns a single string value.
func StringValue(s string) Value { return Value{kind: KindString, text: s} }

// MultiValue returns a list value. The parts are copied.
func MultiValue(parts ...string) Value {
	return Value{kind: KindMulti, parts: slices.Clone(parts)}
}

// Kind returns the variant of v.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the text of a string value, or "" for other kinds.
func (v Value) Text() string { return v.text }

// Parts returns a copy of the parts of a list value, or nil for other kinds.
func (v Value) Parts() []string { return slices.Clone(v.parts) }

// Equal reports structural equality.
func (v Value) Equal(other Value) bool {
	return v.Compare(other) == 0
}

// Compare orders values by kind, then by text, then element-wise by parts.
func (v Value) Compare(other Value) int {
	if v.kind != other.kind {
		if v.kind < other.kind {
			return -1
		}
		return 1
	}
	switch v.kind {
	case KindString:
		return strings.Compare(v.text, other.text)
	case KindMulti:
		return slices.Compare(v.parts, other.parts)
	default:
		return 0
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("String(%q)", v.text)
	case KindMulti:
		return fmt.Sprintf("Multi(%q)", v.parts)
	case KindFalse:
		return "False"
	default:
		return "True"
	}
}

// SerializedKind discriminates the variants of a Serialized value.
type SerializedKind uint8

const (
	// Omitted means the attribute should not appear in markup at all.
	Omitted SerializedKind = iota
	// Empty means the attribute appears without a value, as in <x foo>.
	Empty
	// Text means the attribute appears with a string value.
	Text
)

// Serialized is a value re-encoded for markup. The zero Serialized is
// OmittedValue().
type Serialized struct {
	kind SerializedKind
	text string
}

// OmittedValue returns the serialization of an attribute that must not be written.
func OmittedValue() Serialized { return Serialized{kind: Omitted} }

// EmptyValue returns the serialization of a valueless attribute.
func EmptyValue() Serialized { return Serialized{kind: Empty} }

// TextValue returns the serialization of an attribute written with value s.
func TextValue(s string) Serialized { return Serialized{kind: Text, text: s} }

// Kind returns the variant of s.
func (s Serialized) Kind() SerializedKind { return s.kind }

// Text returns the markup text, or "" unless the kind is Text.
func (s Serialized) Text() string { return s.text }

func (s Serialized) String() string {
	switch s.kind {
	case Empty:
		return "Empty"
	case Text:
		return fmt.Sprintf("String(%q)", s.text)
	default:
		return "Omitted"
	}
}
