package attr

import (
	"errors"
	"slices"
	"testing"
)

func TestTypeFlags(t *testing.T) {
	typ := True | False
	if typ.IsBool() {
		t.Error("TRUE|FALSE reported as bool")
	}
	if !typ.Any(True | String) {
		t.Error("TRUE|FALSE should intersect TRUE|STRING")
	}
	if typ.Any(String | Number) {
		t.Error("TRUE|FALSE should not intersect STRING|NUMBER")
	}
	if !(Bool | String).IsBool() {
		t.Error("BOOL|STRING should be bool")
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{0, "0"},
		{Bool, "BOOL"},
		{String | SpaceSep, "STRING|SPACE_SEP"},
		{True | EmptyString | False, "TRUE|FALSE|EMPTY_STRING"},
		{CommaOrSpaceSep | Number, "NUMBER|COMMA_OR_SPACE_SEP"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%#x).String() = %q, want %q", uint32(tt.typ), got, tt.want)
		}
		back, err := ParseType(tt.want)
		if err != nil {
			t.Errorf("ParseType(%q): %v", tt.want, err)
			continue
		}
		if back != tt.typ {
			t.Errorf("ParseType(%q) = %s, want %s", tt.want, back, tt.typ)
		}
	}
}

func TestParseTypeLenient(t *testing.T) {
	got, err := ParseType("string, space_sep")
	if err != nil {
		t.Fatal(err)
	}
	if got != String|SpaceSep {
		t.Errorf("ParseType = %s, want STRING|SPACE_SEP", got)
	}

	_, err = ParseType("STRING|NOPE")
	var ufe *UnknownFlagError
	if !errors.As(err, &ufe) || ufe.Name != "NOPE" {
		t.Errorf("ParseType(STRING|NOPE) error = %v, want UnknownFlagError{NOPE}", err)
	}
}

func TestFlags(t *testing.T) {
	flags := Flags()
	if len(flags) != 9 {
		t.Fatalf("Flags() returned %d flags, want 9", len(flags))
	}
	if !slices.IsSorted(flags) {
		t.Errorf("Flags() not in bit order: %v", flags)
	}
}

func TestValueCompare(t *testing.T) {
	ordered := []Value{
		TrueValue(),
		FalseValue(),
		StringValue(""),
		StringValue("a"),
		StringValue("b"),
		MultiValue("a", "b"),
		MultiValue("a", "b", "c"),
		MultiValue("b"),
	}
	for i := range ordered {
		for j := range ordered {
			got := ordered[i].Compare(ordered[j])
			var want int
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got != want {
				t.Errorf("%v.Compare(%v) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestValueZero(t *testing.T) {
	var v Value
	if !v.Equal(TrueValue()) {
		t.Errorf("zero Value = %v, want True", v)
	}
	var s Serialized
	if s != OmittedValue() {
		t.Errorf("zero Serialized = %v, want Omitted", s)
	}
}

func TestErrInvalidTagMatchesAttribute(t *testing.T) {
	if !errors.Is(ErrInvalidTag, ErrInvalidAttribute) {
		t.Error("ErrInvalidTag should match ErrInvalidAttribute")
	}
	if errors.Is(ErrInvalidAttribute, ErrInvalidTag) {
		t.Error("ErrInvalidAttribute should not match ErrInvalidTag")
	}
}
