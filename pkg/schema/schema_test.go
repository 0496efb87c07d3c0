package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adammathes/webattr/pkg/attr"
)

var testRecords = []Record{
	{LocalName: "accept", Property: "accept", Type: attr.CommaSep | attr.String},
	{LocalName: "accept-charset", Property: "acceptCharset", Type: attr.SpaceSep | attr.String},
	{LocalName: "class", Property: "className", Type: attr.SpaceSep | attr.String},
	{LocalName: "viewBox", Property: "viewBox", Type: attr.String},
}

func TestTableByLocalName(t *testing.T) {
	tbl := MustTable(testRecords)
	tests := []struct {
		name     string
		wantProp string
	}{
		{"class", "className"},
		{"CLASS", "className"},
		{"Accept-Charset", "acceptCharset"},
		{"viewbox", "viewBox"},
	}
	for _, tt := range tests {
		r, ok := tbl.ByLocalName(tt.name)
		if !ok {
			t.Errorf("ByLocalName(%q) missed", tt.name)
			continue
		}
		if r.Property != tt.wantProp {
			t.Errorf("ByLocalName(%q).Property = %q, want %q", tt.name, r.Property, tt.wantProp)
		}
	}
	if _, ok := tbl.ByLocalName("className"); ok {
		t.Error("ByLocalName(className) should miss")
	}
}

func TestTableByProperty(t *testing.T) {
	tbl := MustTable(testRecords)
	r, ok := tbl.ByProperty("className")
	if !ok || r.LocalName != "class" {
		t.Errorf("ByProperty(className) = %v, %v", r, ok)
	}
	for _, name := range []string{"ClassName", "class", "classname"} {
		if _, ok := tbl.ByProperty(name); ok {
			t.Errorf("ByProperty(%q) should miss", name)
		}
	}
}

func TestTableSharesRecords(t *testing.T) {
	tbl := MustTable(testRecords)
	a, _ := tbl.ByLocalName("CLASS")
	b, _ := tbl.ByProperty("className")
	if a != b {
		t.Error("local name and property indices returned different records")
	}
}

func TestTableWithPrefix(t *testing.T) {
	tbl := MustTable(testRecords)
	var got []string
	for _, r := range tbl.WithPrefix("ACC") {
		got = append(got, r.LocalName)
	}
	want := []string{"accept", "accept-charset"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WithPrefix(ACC) mismatch (-want +got):\n%s", diff)
	}
	if n := len(tbl.WithPrefix("")); n != len(testRecords) {
		t.Errorf("WithPrefix(\"\") returned %d records, want %d", n, len(testRecords))
	}
	if got := tbl.WithPrefix("zz"); len(got) != 0 {
		t.Errorf("WithPrefix(zz) = %v, want none", got)
	}
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
	}{
		{"folded local name", []Record{
			{LocalName: "class", Property: "className", Type: attr.String},
			{LocalName: "CLASS", Property: "other", Type: attr.String},
		}},
		{"property", []Record{
			{LocalName: "a", Property: "same", Type: attr.String},
			{LocalName: "b", Property: "same", Type: attr.String},
		}},
		{"empty name", []Record{
			{LocalName: "", Property: "x", Type: attr.String},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.records); err == nil {
				t.Error("NewTable succeeded, want error")
			}
		})
	}
}

func TestTableCopiesInput(t *testing.T) {
	recs := []Record{{LocalName: "id", Property: "id", Type: attr.String}}
	tbl := MustTable(recs)
	recs[0].Property = "changed"
	if r, _ := tbl.ByLocalName("id"); r.Property != "id" {
		t.Errorf("table aliases caller slice: Property = %q", r.Property)
	}
}

func TestTagTable(t *testing.T) {
	tags := MustTagTable([]TagRecord{
		{LocalName: "br", Void: true},
		{LocalName: "div"},
		{LocalName: "foreignObject"},
	})
	if tags.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tags.Len())
	}
	if r, ok := tags.ByLocalName("BR"); !ok || !r.Void {
		t.Errorf("ByLocalName(BR) = %v, %v", r, ok)
	}
	if r, ok := tags.ByLocalName("foreignobject"); !ok || r.LocalName != "foreignObject" {
		t.Errorf("ByLocalName(foreignobject) = %v, %v", r, ok)
	}
	if _, ok := tags.ByLocalName("span"); ok {
		t.Error("ByLocalName(span) should miss")
	}
	if _, err := NewTagTable([]TagRecord{{LocalName: "p"}, {LocalName: "P"}}); err == nil {
		t.Error("NewTagTable accepted duplicate")
	}
}

func TestRecordString(t *testing.T) {
	r := Record{LocalName: "class", Property: "className", Type: attr.SpaceSep | attr.String}
	if got, want := r.String(), "class (className) STRING|SPACE_SEP"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestByLocalNameDoesNotAllocate(t *testing.T) {
	tbl := MustTable(testRecords)
	allocs := testing.AllocsPerRun(100, func() {
		tbl.ByLocalName("ACCEPT-CHARSET")
	})
	if allocs != 0 {
		t.Errorf("ByLocalName allocated %v times per run, want 0", allocs)
	}
}
