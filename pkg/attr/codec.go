package attr

import (
	"fmt"
	"strings"
)

// Parse decodes a markup attribute value according to t.
//
// present is false for an attribute written without a value (<foo bar>),
// in which case raw is ignored. The rules apply in order and the first
// match wins:
//
//   - absent: true for Bool, otherwise invalid
//   - "": true for Bool, "" for EmptyString or String, otherwise invalid
//   - "true" / "false": true / false for Bool, True, String or Number
//   - any other text: split by SpaceSep, CommaSep or CommaOrSpaceSep (in
//     that order of precedence), kept verbatim for String or Number,
//     otherwise invalid
//
// Split results drop empty segments; a single remaining segment is returned
// as a string value, none as "".
func Parse(raw string, present bool, t Type) (Value, error) {
	if !present {
		if t.IsBool() {
			return TrueValue(), nil
		}
		return Value{}, fmt.Errorf("%w: missing value for %s", ErrInvalidAttributeValue, t)
	}

	switch raw {
	case "":
		if t.IsBool() {
			return TrueValue(), nil
		}
		if t.Any(EmptyString | String) {
			return StringValue(""), nil
		}
	case "true":
		if t.Any(Bool | True | String | Number) {
			return TrueValue(), nil
		}
	case "false":
		if t.Any(Bool | True | String | Number) {
			return FalseValue(), nil
		}
	default:
		switch {
		case t.Any(SpaceSep):
			return collapse(strings.Split(raw, " "), false), nil
		case t.Any(CommaSep):
			return collapse(strings.Split(raw, ","), true), nil
		case t.Any(CommaOrSpaceSep):
			return collapse(strings.FieldsFunc(raw, isCommaOrSpace), true), nil
		case t.Any(String | Number):
			return StringValue(raw), nil
		}
	}
	return Value{}, fmt.Errorf("%w: %q for %s", ErrInvalidAttributeValue, raw, t)
}

// ParseString is Parse for a value that is present in markup.
func ParseString(raw string, t Type) (Value, error) {
	return Parse(raw, true, t)
}

func isCommaOrSpace(r rune) bool {
	return r == ' ' || r == ','
}

// collapse filters empty segments and folds the result into a Value.
func collapse(segments []string, trim bool) Value {
	kept := segments[:0]
	for _, s := range segments {
		if trim {
			s = strings.TrimSpace(s)
		}
		if s != "" {
			kept = append(kept, s)
		}
	}
	switch len(kept) {
	case 0:
		return StringValue("")
	case 1:
		return StringValue(kept[0])
	default:
		return Value{kind: KindMulti, parts: kept}
	}
}

// Serialize encodes v for markup according to t. It never fails: boolean
// attributes collapse to Omitted or Empty, and lists are joined with ", "
// for CommaSep and with a single space otherwise.
func Serialize(v Value, t Type) Serialized {
	switch v.kind {
	case KindFalse:
		if t.IsBool() {
			return OmittedValue()
		}
		return TextValue("false")
	case KindTrue:
		if t.IsBool() {
			return EmptyValue()
		}
		return TextValue("true")
	case KindString:
		if t.IsBool() {
			return EmptyValue()
		}
		return TextValue(v.text)
	default:
		if t.IsBool() {
			return EmptyValue()
		}
		if t.Any(CommaSep) {
			return TextValue(strings.Join(v.parts, ", "))
		}
		// CommaOrSpaceSep accepts commas on input but is written with spaces.
		return TextValue(strings.Join(v.parts, " "))
	}
}
