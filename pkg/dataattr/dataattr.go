// Package dataattr derives data-* attributes that are not in a static table.
//
// The DOM property of data-foo-bar is dataFoo-bar: only the first character
// after the dash is upper-cased. Case mapping is ASCII-only.
package dataattr

import (
	"fmt"
	"strings"

	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/unicase"
)

const (
	namePrefix     = "data-"
	propertyPrefix = "data"
)

// Attribute is a data-* attribute. The local name and the property name
// share one string; split marks where the property begins.
//
// Attributes are comparable with ==, which agrees with Equal because the
// property is a function of the local name.
type Attribute struct {
	buf   string
	split int
}

// FromName derives an attribute from its markup name. The name must be
// longer than five bytes and start with "data-" in any ASCII case. The
// prefix is lower-cased; the rest keeps the caller's spelling.
func FromName(name string) (Attribute, error) {
	if len(name) <= len(namePrefix) || !unicase.HasPrefix(name, namePrefix) {
		return Attribute{}, fmt.Errorf("%w: %q", attr.ErrInvalidAttribute, name)
	}
	rest := name[len(namePrefix):]

	var b strings.Builder
	b.Grow(2*len(name) - 1)
	b.WriteString(namePrefix)
	b.WriteString(rest)
	b.WriteString(propertyPrefix)
	b.WriteByte(upper(rest[0]))
	b.WriteString(rest[1:])
	return Attribute{buf: b.String(), split: len(name)}, nil
}

// FromProperty derives an attribute from its DOM property name. The name
// must be longer than four bytes and start with the exact text "data".
func FromProperty(name string) (Attribute, error) {
	if len(name) <= len(propertyPrefix) || !strings.HasPrefix(name, propertyPrefix) {
		return Attribute{}, fmt.Errorf("%w: %q", attr.ErrInvalidAttribute, name)
	}
	rest := name[len(propertyPrefix):]

	var b strings.Builder
	b.Grow(2*len(name) + 1)
	b.WriteString(namePrefix)
	b.WriteByte(lower(rest[0]))
	b.WriteString(rest[1:])
	b.WriteString(name)
	return Attribute{buf: b.String(), split: len(name) + 1}, nil
}

// LocalName returns the markup name, e.g. data-foo.
func (a Attribute) LocalName() string {
	return a.buf[:a.split]
}

// Property returns the DOM property name, e.g. dataFoo.
func (a Attribute) Property() string {
	return a.buf[a.split:]
}

// Type is always attr.String.
func (a Attribute) Type() attr.Type {
	return attr.String
}

// Equal compares local names only.
func (a Attribute) Equal(other Attribute) bool {
	return a.LocalName() == other.LocalName()
}

// IsZero reports whether a was never derived.
func (a Attribute) IsZero() bool {
	return a.buf == ""
}

func (a Attribute) String() string {
	return a.LocalName()
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
