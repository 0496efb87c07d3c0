package dataattr

import (
	"errors"
	"testing"

	"github.com/adammathes/webattr/pkg/attr"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		name      string
		wantLocal string
		wantProp  string
	}{
		{"data-foo", "data-foo", "dataFoo"},
		{"data-f", "data-f", "dataF"},
		{"data-1", "data-1", "data1"},
		{"Data-1", "data-1", "data1"},
		{"DATA-foo", "data-foo", "dataFoo"},
		{"data-foo-1", "data-foo-1", "dataFoo-1"},
		{"data-foo-bar", "data-foo-bar", "dataFoo-bar"},
		{"data-fooBar-1", "data-fooBar-1", "dataFooBar-1"},
		{"data-é", "data-é", "dataé"},
	}
	for _, tt := range tests {
		a, err := FromName(tt.name)
		if err != nil {
			t.Errorf("FromName(%q): %v", tt.name, err)
			continue
		}
		if a.LocalName() != tt.wantLocal || a.Property() != tt.wantProp {
			t.Errorf("FromName(%q) = (%q, %q), want (%q, %q)",
				tt.name, a.LocalName(), a.Property(), tt.wantLocal, tt.wantProp)
		}
		if a.Type() != attr.String {
			t.Errorf("FromName(%q).Type() = %s, want STRING", tt.name, a.Type())
		}
	}
}

func TestFromNameInvalid(t *testing.T) {
	for _, name := range []string{"", "data", "data-", "dat-x", "datax", "foobar", "xdata-foo"} {
		_, err := FromName(name)
		if !errors.Is(err, attr.ErrInvalidAttribute) {
			t.Errorf("FromName(%q) error = %v, want ErrInvalidAttribute", name, err)
		}
	}
}

func TestFromProperty(t *testing.T) {
	tests := []struct {
		prop      string
		wantLocal string
	}{
		{"dataFoo", "data-foo"},
		{"dataF", "data-f"},
		{"data1", "data-1"},
		{"dataFoo-1", "data-foo-1"},
		{"dataFooBar-1", "data-fooBar-1"},
		{"datafoo", "data-foo"},
	}
	for _, tt := range tests {
		a, err := FromProperty(tt.prop)
		if err != nil {
			t.Errorf("FromProperty(%q): %v", tt.prop, err)
			continue
		}
		if a.LocalName() != tt.wantLocal || a.Property() != tt.prop {
			t.Errorf("FromProperty(%q) = (%q, %q), want (%q, %q)",
				tt.prop, a.LocalName(), a.Property(), tt.wantLocal, tt.prop)
		}
	}
}

func TestFromPropertyInvalid(t *testing.T) {
	for _, name := range []string{"", "data", "Data1", "DATAFoo", "foo"} {
		_, err := FromProperty(name)
		if !errors.Is(err, attr.ErrInvalidAttribute) {
			t.Errorf("FromProperty(%q) error = %v, want ErrInvalidAttribute", name, err)
		}
	}
}

func TestInverse(t *testing.T) {
	names := []string{
		"data-foo", "data-f", "data-1", "data-foo-1", "data-foo-bar",
		"data-fooBar-1", "data--x", "data-_", "data-é", "data-a:b",
	}
	for _, n := range names {
		fwd, err := FromName(n)
		if err != nil {
			t.Fatalf("FromName(%q): %v", n, err)
		}
		back, err := FromProperty(fwd.Property())
		if err != nil {
			t.Fatalf("FromProperty(%q): %v", fwd.Property(), err)
		}
		if back.LocalName() != n {
			t.Errorf("FromProperty(FromName(%q).Property()).LocalName() = %q", n, back.LocalName())
		}
		if back != fwd {
			t.Errorf("round trip of %q is not == to the original", n)
		}
	}
}

func TestEqualityIsByLocalName(t *testing.T) {
	a, _ := FromName("DATA-foo")
	b, _ := FromProperty("dataFoo")
	if !a.Equal(b) || a != b {
		t.Errorf("%v and %v should be equal", a, b)
	}
	c, _ := FromName("data-Foo")
	if a.Equal(c) {
		t.Errorf("%v and %v should differ", a, c)
	}
}

func TestZero(t *testing.T) {
	var a Attribute
	if !a.IsZero() {
		t.Error("zero Attribute not IsZero")
	}
	b, _ := FromName("data-x")
	if b.IsZero() {
		t.Error("derived Attribute reported IsZero")
	}
}

func TestFromNameAllocatesOnce(t *testing.T) {
	name := "data-foo-bar"
	allocs := testing.AllocsPerRun(100, func() {
		if _, err := FromName(name); err != nil {
			t.Fatal(err)
		}
	})
	if allocs != 1 {
		t.Errorf("FromName allocated %v times per run, want 1", allocs)
	}
}

func BenchmarkFromName(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		FromName("data-foo-bar")
	}
}
