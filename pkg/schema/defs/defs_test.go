package defs

import (
	"strings"
	"testing"

	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/schema"
)

func TestTablesBuild(t *testing.T) {
	for name, recs := range map[string][]schema.Record{
		"html5": HTML5Attributes,
		"svg":   SVGAttributes,
	} {
		if _, err := schema.NewTable(recs); err != nil {
			t.Errorf("%s attributes: %v", name, err)
		}
	}
	for name, recs := range map[string][]schema.TagRecord{
		"html5": HTML5Tags,
		"svg":   SVGTags,
	} {
		if _, err := schema.NewTagTable(recs); err != nil {
			t.Errorf("%s tags: %v", name, err)
		}
	}
}

func TestAttributeTypes(t *testing.T) {
	for _, recs := range [][]schema.Record{HTML5Attributes, SVGAttributes} {
		for _, r := range recs {
			if r.Type == 0 {
				t.Errorf("%s has no type flags", r.LocalName)
			}
			seps := 0
			for _, f := range []attr.Type{attr.CommaSep, attr.SpaceSep, attr.CommaOrSpaceSep} {
				if r.Type.Any(f) {
					seps++
				}
			}
			if seps > 1 {
				t.Errorf("%s sets %d separator flags", r.LocalName, seps)
			}
			if strings.HasPrefix(strings.ToLower(r.LocalName), "data-") {
				t.Errorf("%s shadows the data attribute rule", r.LocalName)
			}
		}
	}
}

func TestHTML5LocalNamesAreLowerCase(t *testing.T) {
	for _, r := range HTML5Attributes {
		if r.LocalName != strings.ToLower(r.LocalName) {
			t.Errorf("%q is not lower case", r.LocalName)
		}
	}
}

func TestKnownEntries(t *testing.T) {
	html := schema.MustTable(HTML5Attributes)
	tests := []struct {
		local, prop string
		typ         attr.Type
	}{
		{"accept-charset", "acceptCharset", attr.SpaceSep | attr.String},
		{"class", "className", attr.SpaceSep | attr.String},
		{"for", "htmlFor", attr.SpaceSep | attr.String},
		{"contenteditable", "contentEditable", attr.True | attr.EmptyString | attr.False},
		{"download", "download", attr.Bool | attr.String},
		{"hidden", "hidden", attr.Bool},
		{"data", "data", attr.String},
	}
	for _, tt := range tests {
		r, ok := html.ByLocalName(tt.local)
		if !ok {
			t.Errorf("%s missing", tt.local)
			continue
		}
		if r.Property != tt.prop || r.Type != tt.typ {
			t.Errorf("%s = %v, want %s %s", tt.local, r, tt.prop, tt.typ)
		}
	}

	svg := schema.MustTable(SVGAttributes)
	if r, ok := svg.ByProperty("xLinkHref"); !ok || r.LocalName != "xlink:href" {
		t.Errorf("svg ByProperty(xLinkHref) = %v, %v", r, ok)
	}
}

func TestVoidTags(t *testing.T) {
	tags := schema.MustTagTable(HTML5Tags)
	for _, name := range []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "source", "track", "wbr"} {
		if r, ok := tags.ByLocalName(name); !ok || !r.Void {
			t.Errorf("%s should be void", name)
		}
	}
	for _, name := range []string{"div", "p", "script", "template"} {
		if r, ok := tags.ByLocalName(name); !ok || r.Void {
			t.Errorf("%s should be a known non-void tag", name)
		}
	}
	for _, r := range SVGTags {
		if r.Void {
			t.Errorf("svg %s marked void", r.LocalName)
		}
	}
}
