// Package webns resolves HTML5 and SVG tag and attribute names.
//
// Every namespace owns one static attribute table, one static tag table and
// the data-* derivation rule. Resolution tries the static table first and
// falls back to a derived data attribute:
//
//	a, err := webns.ResolveByLocalName(webns.HTML5, "ACCEPT-CHARSET")
//	// a.LocalName() == "accept-charset", a.Property() == "acceptCharset"
//
// Static hits do not allocate. A data attribute allocates one string per call
// and is never cached.
package webns

import (
	"fmt"

	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/dataattr"
	"github.com/adammathes/webattr/pkg/schema"
	"github.com/adammathes/webattr/pkg/schema/defs"
	"github.com/adammathes/webattr/pkg/unicase"
)

// Schema identifies a namespace.
type Schema uint8

const (
	HTML5 Schema = iota + 1
	SVG
)

// Namespace URIs as used in xmlns declarations.
const (
	HTMLNamespaceURI = "http://www.w3.org/1999/xhtml"
	SVGNamespaceURI  = "http://www.w3.org/2000/svg"
)

func (s Schema) String() string {
	switch s {
	case HTML5:
		return "html5"
	case SVG:
		return "svg"
	default:
		return fmt.Sprintf("Schema(%d)", uint8(s))
	}
}

// Namespace returns the namespace of s, or nil for an unknown Schema.
func (s Schema) Namespace() *Namespace {
	switch s {
	case HTML5:
		return html5NS
	case SVG:
		return svgNS
	default:
		return nil
	}
}

// ParseSchema maps a namespace name or URI to a Schema. Names are matched
// ASCII case-insensitively: "html", "html5", "svg".
func ParseSchema(name string) (Schema, error) {
	switch {
	case unicase.Equal(name, "html"), unicase.Equal(name, "html5"), name == HTMLNamespaceURI:
		return HTML5, nil
	case unicase.Equal(name, "svg"), name == SVGNamespaceURI:
		return SVG, nil
	}
	return 0, fmt.Errorf("unknown namespace %q", name)
}

// Schemas returns every known Schema.
func Schemas() []Schema {
	return []Schema{HTML5, SVG}
}

// Namespace is one markup vocabulary. Namespaces are built at package
// initialization and are immutable.
type Namespace struct {
	schema Schema
	attrs  *schema.Table
	tags   *schema.TagTable
}

var (
	html5NS = newNamespace(HTML5, defs.HTML5Attributes, defs.HTML5Tags)
	svgNS   = newNamespace(SVG, defs.SVGAttributes, defs.SVGTags)
)

func newNamespace(s Schema, attrs []schema.Record, tags []schema.TagRecord) *Namespace {
	return &Namespace{
		schema: s,
		attrs:  schema.MustTable(attrs),
		tags:   schema.MustTagTable(tags),
	}
}

// Name returns the namespace name, e.g. "html5".
func (ns *Namespace) Name() string {
	return ns.schema.String()
}

// Schema returns the namespace identifier.
func (ns *Namespace) Schema() Schema {
	return ns.schema
}

// ResolveByLocalName resolves a markup attribute name, folding ASCII case.
// Unknown names that start with "data-" resolve to a derived data attribute.
func (ns *Namespace) ResolveByLocalName(name string) (Attribute, error) {
	if r, ok := ns.attrs.ByLocalName(name); ok {
		return Attribute{ns: ns.schema, rec: r}, nil
	}
	d, err := dataattr.FromName(name)
	if err != nil {
		return Attribute{}, fmt.Errorf("%w: %q in %s", attr.ErrInvalidAttribute, name, ns.Name())
	}
	return Attribute{ns: ns.schema, data: d}, nil
}

// ResolveByPropertyName resolves a DOM property name. Property names are
// case-sensitive. Unknown names that start with "data" resolve to a derived
// data attribute.
func (ns *Namespace) ResolveByPropertyName(name string) (Attribute, error) {
	if r, ok := ns.attrs.ByProperty(name); ok {
		return Attribute{ns: ns.schema, rec: r}, nil
	}
	d, err := dataattr.FromProperty(name)
	if err != nil {
		return Attribute{}, fmt.Errorf("%w: property %q in %s", attr.ErrInvalidAttribute, name, ns.Name())
	}
	return Attribute{ns: ns.schema, data: d}, nil
}

// TagByLocalName resolves an element name, folding ASCII case.
func (ns *Namespace) TagByLocalName(name string) (Tag, error) {
	r, ok := ns.tags.ByLocalName(name)
	if !ok {
		return Tag{}, fmt.Errorf("%w: %q in %s", attr.ErrInvalidTag, name, ns.Name())
	}
	return Tag{ns: ns.schema, rec: r}, nil
}

// AttributesWithPrefix returns the static attributes whose local name starts
// with prefix, folding ASCII case, ordered by lower-cased local name. Data
// attributes are never listed.
func (ns *Namespace) AttributesWithPrefix(prefix string) []Attribute {
	recs := ns.attrs.WithPrefix(prefix)
	out := make([]Attribute, len(recs))
	for i, r := range recs {
		out[i] = Attribute{ns: ns.schema, rec: r}
	}
	return out
}

// Attributes returns every static attribute in table order.
func (ns *Namespace) Attributes() []Attribute {
	recs := ns.attrs.Records()
	out := make([]Attribute, len(recs))
	for i, r := range recs {
		out[i] = Attribute{ns: ns.schema, rec: r}
	}
	return out
}

// Tags returns every static tag in table order.
func (ns *Namespace) Tags() []Tag {
	recs := ns.tags.Records()
	out := make([]Tag, len(recs))
	for i, r := range recs {
		out[i] = Tag{ns: ns.schema, rec: r}
	}
	return out
}

// ResolveByLocalName resolves name in the namespace of s.
func ResolveByLocalName(s Schema, name string) (Attribute, error) {
	ns := s.Namespace()
	if ns == nil {
		return Attribute{}, fmt.Errorf("%w: %q in %s", attr.ErrInvalidAttribute, name, s)
	}
	return ns.ResolveByLocalName(name)
}

// ResolveByPropertyName resolves a property name in the namespace of s.
func ResolveByPropertyName(s Schema, name string) (Attribute, error) {
	ns := s.Namespace()
	if ns == nil {
		return Attribute{}, fmt.Errorf("%w: property %q in %s", attr.ErrInvalidAttribute, name, s)
	}
	return ns.ResolveByPropertyName(name)
}

// SchemaNames lists the names accepted by ParseSchema, for help text.
const SchemaNames = "html, html5, svg"
