package webns

import (
	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/dataattr"
	"github.com/adammathes/webattr/pkg/schema"
)

// Attribute is a resolved attribute: either a static record or a derived
// data attribute. All accessors work the same for both.
//
// Attributes are comparable with == and usable as map keys. Two static
// attributes are equal when they are the same record; two data attributes
// are equal when their local names match.
type Attribute struct {
	ns   Schema
	rec  *schema.Record
	data dataattr.Attribute
}

// LocalName returns the markup name with its canonical spelling for static
// attributes.
func (a Attribute) LocalName() string {
	if a.rec != nil {
		return a.rec.LocalName
	}
	return a.data.LocalName()
}

// Property returns the DOM property name.
func (a Attribute) Property() string {
	if a.rec != nil {
		return a.rec.Property
	}
	return a.data.Property()
}

// Type returns the value grammar flags.
func (a Attribute) Type() attr.Type {
	if a.rec != nil {
		return a.rec.Type
	}
	return a.data.Type()
}

// IsStatic reports whether a comes from the static table.
func (a Attribute) IsStatic() bool {
	return a.rec != nil
}

// IsZero reports whether a is the zero Attribute.
func (a Attribute) IsZero() bool {
	return a.rec == nil && a.data.IsZero()
}

// Namespace returns the Schema a was resolved in.
func (a Attribute) Namespace() Schema {
	return a.ns
}

// Record returns the static record backing a, if any.
func (a Attribute) Record() (*schema.Record, bool) {
	return a.rec, a.rec != nil
}

// Equal is equivalent to ==.
func (a Attribute) Equal(other Attribute) bool {
	return a == other
}

// Parse decodes a markup value with a's type. present is false for a bare
// attribute written without a value.
func (a Attribute) Parse(raw string, present bool) (attr.Value, error) {
	return attr.Parse(raw, present, a.Type())
}

// Serialize encodes v with a's type.
func (a Attribute) Serialize(v attr.Value) attr.Serialized {
	return attr.Serialize(v, a.Type())
}

func (a Attribute) String() string {
	return a.LocalName()
}

// Tag is a resolved element.
type Tag struct {
	ns  Schema
	rec *schema.TagRecord
}

// LocalName returns the canonical element name.
func (t Tag) LocalName() string {
	if t.rec == nil {
		return ""
	}
	return t.rec.LocalName
}

// IsVoid reports whether the element takes no end tag.
func (t Tag) IsVoid() bool {
	return t.rec != nil && t.rec.Void
}

// Namespace returns the Schema t was resolved in.
func (t Tag) Namespace() Schema {
	return t.ns
}

func (t Tag) String() string {
	return t.LocalName()
}
