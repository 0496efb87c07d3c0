package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/adammathes/webattr/pkg/webns"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		raw   string
		name  string
		attrs []Attr
	}{
		{`<div>`, "div", nil},
		{`<DIV Class="a  b" hidden>`, "DIV", []Attr{
			{Name: "Class", Value: "a  b", HasValue: true, Raw: `Class="a  b"`},
			{Name: "hidden", Raw: "hidden"},
		}},
		{`<input value='x &amp; y' disabled=>`, "input", []Attr{
			{Name: "value", Value: "x & y", HasValue: true, Raw: `value='x &amp; y'`},
			{Name: "disabled", HasValue: true, Raw: "disabled="},
		}},
		{`<a href=foo.html title = "t">`, "a", []Attr{
			{Name: "href", Value: "foo.html", HasValue: true, Raw: "href=foo.html"},
			{Name: "title", Value: "t", HasValue: true, Raw: `title = "t"`},
		}},
		{`<svg viewBox="0 0 1 1"/>`, "svg", []Attr{
			{Name: "viewBox", Value: "0 0 1 1", HasValue: true, Raw: `viewBox="0 0 1 1"`},
		}},
		{`<p id="">`, "p", []Attr{
			{Name: "id", HasValue: true, Raw: `id=""`},
		}},
		{`</Svg>`, "Svg", nil},
	}
	for _, tt := range tests {
		name, attrs := parseTag([]byte(tt.raw))
		if name != tt.name {
			t.Errorf("parseTag(%q) name = %q, want %q", tt.raw, name, tt.name)
		}
		if diff := cmp.Diff(tt.attrs, attrs); diff != "" {
			t.Errorf("parseTag(%q) attrs mismatch (-want +got):\n%s", tt.raw, diff)
		}
	}
}

func TestScannerNamespaces(t *testing.T) {
	src := "<p class=x>\n<svg viewBox=\"0 0 1 1\"><circle r=1></circle></svg>\n<img src=a>"
	s := NewScanner(strings.NewReader(src), 0)

	type seen struct {
		Name   string
		Schema webns.Schema
		Line   int
	}
	var got []seen
	for s.Next() {
		tok := s.Token()
		if tok.IsTag() {
			got = append(got, seen{tok.Name, tok.Schema, tok.Line})
		}
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	want := []seen{
		{"p", webns.HTML5, 1},
		{"svg", webns.SVG, 2},
		{"circle", webns.SVG, 2},
		{"circle", webns.SVG, 2},
		{"svg", webns.SVG, 2},
		{"img", webns.HTML5, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScannerSelfClosingSVG(t *testing.T) {
	s := NewScanner(strings.NewReader(`<svg/><p>`), webns.HTML5)
	var schemas []webns.Schema
	for s.Next() {
		if s.Token().Type == html.SelfClosingTagToken || s.Token().Type == html.StartTagToken {
			schemas = append(schemas, s.Token().Schema)
		}
	}
	if diff := cmp.Diff([]webns.Schema{webns.SVG, webns.HTML5}, schemas); diff != "" {
		t.Errorf("schemas mismatch (-want +got):\n%s", diff)
	}
}

func TestScannerColumns(t *testing.T) {
	s := NewScanner(strings.NewReader("ab\ncd<i>"), 0)
	var loc string
	for s.Next() {
		if s.Token().Type == html.StartTagToken {
			loc = s.Token().Location()
		}
	}
	if loc != "2:3" {
		t.Errorf("Location() = %q, want 2:3", loc)
	}
}

func TestScannerColumnsCountRunes(t *testing.T) {
	s := NewScanner(strings.NewReader("<p>héllo wörld<i>"), 0)
	var loc string
	for s.Next() {
		if s.Token().Type == html.StartTagToken && s.Token().Name == "i" {
			loc = s.Token().Location()
		}
	}
	if loc != "1:15" {
		t.Errorf("Location() = %q, want 1:15", loc)
	}
}

func TestScannerOffset(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"<p>a</p>", 8},
		{"<p>a</p> tail", 13},
		{"<p>a</p><div class=\"a\"", 8},
		{"ab<img", 2},
	}
	for _, tt := range tests {
		s := NewScanner(strings.NewReader(tt.src), 0)
		for s.Next() {
		}
		if err := s.Err(); err != nil {
			t.Fatalf("%q: %v", tt.src, err)
		}
		if got := s.Offset(); got != tt.want {
			t.Errorf("Offset() after %q = %d, want %d", tt.src, got, tt.want)
		}
	}
}

func TestNewReader(t *testing.T) {
	r, err := NewReader(strings.NewReader("<p title=\"caf\xe9\">"), "latin1")
	if err != nil {
		t.Fatal(err)
	}
	s := NewScanner(r, 0)
	if !s.Next() {
		t.Fatal(s.Err())
	}
	if got := s.Token().Attrs[0].Value; got != "café" {
		t.Errorf("decoded value = %q, want café", got)
	}

	if _, err := NewReader(strings.NewReader(""), "no-such-charset"); err == nil {
		t.Error("NewReader accepted an unknown label")
	}
}
