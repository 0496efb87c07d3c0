// Package catalog is a queryable in-memory index over the static
// attributes of every namespace.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/unicase"
	"github.com/adammathes/webattr/pkg/webns"
)

const tableAttributes = "attributes"

// Entry is one static attribute of one namespace.
type Entry struct {
	Namespace string    `json:"namespace" yaml:"namespace"`
	LocalName string    `json:"local_name" yaml:"local_name"`
	Property  string    `json:"property" yaml:"property"`
	Type      attr.Type `json:"type" yaml:"type"`

	Attribute webns.Attribute `json:"-" yaml:"-"`
}

// Query selects entries. Zero fields match everything.
type Query struct {
	// Namespace restricts results to one namespace.
	Namespace webns.Schema
	// Prefix matches the start of the local name, folding ASCII case.
	Prefix string
	// AllFlags requires every flag in the mask.
	AllFlags attr.Type
	// AnyFlags requires at least one flag in the mask.
	AnyFlags attr.Type
}

// Catalog is read-only after New returns and safe for concurrent use.
type Catalog struct {
	db *memdb.MemDB
}

func flagIndexName(f attr.Type) string {
	return "flag_" + f.String()
}

func dbSchema() *memdb.DBSchema {
	indexes := map[string]*memdb.IndexSchema{
		"id": {
			Name:   "id",
			Unique: true,
			Indexer: &memdb.CompoundIndex{
				Indexes: []memdb.Indexer{
					&memdb.StringFieldIndex{Field: "Namespace"},
					&memdb.StringFieldIndex{Field: "LocalName", Lowercase: true},
				},
			},
		},
		"property": {
			Name:   "property",
			Unique: true,
			Indexer: &memdb.CompoundIndex{
				Indexes: []memdb.Indexer{
					&memdb.StringFieldIndex{Field: "Namespace"},
					&memdb.StringFieldIndex{Field: "Property"},
				},
			},
		},
		"namespace": {
			Name:    "namespace",
			Indexer: &memdb.StringFieldIndex{Field: "Namespace"},
		},
		"local": {
			Name:    "local",
			Indexer: &memdb.StringFieldIndex{Field: "LocalName", Lowercase: true},
		},
	}
	for _, f := range attr.Flags() {
		name := flagIndexName(f)
		indexes[name] = &memdb.IndexSchema{
			Name: name,
			Indexer: &memdb.ConditionalIndex{
				Conditional: func(obj interface{}) (bool, error) {
					e, ok := obj.(*Entry)
					if !ok {
						return false, fmt.Errorf("unexpected object %T", obj)
					}
					return e.Type.Any(f), nil
				},
			},
		}
	}
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableAttributes: {
				Name:    tableAttributes,
				Indexes: indexes,
			},
		},
	}
}

// New indexes the static attributes of the given namespaces, or of every
// namespace when none are given.
func New(schemas ...webns.Schema) (*Catalog, error) {
	if len(schemas) == 0 {
		schemas = webns.Schemas()
	}
	db, err := memdb.NewMemDB(dbSchema())
	if err != nil {
		return nil, fmt.Errorf("creating catalog: %w", err)
	}

	txn := db.Txn(true)
	defer txn.Abort()
	for _, s := range schemas {
		ns := s.Namespace()
		if ns == nil {
			return nil, fmt.Errorf("unknown namespace %s", s)
		}
		for _, a := range ns.Attributes() {
			e := &Entry{
				Namespace: ns.Name(),
				LocalName: a.LocalName(),
				Property:  a.Property(),
				Type:      a.Type(),
				Attribute: a,
			}
			if err := txn.Insert(tableAttributes, e); err != nil {
				return nil, fmt.Errorf("indexing %s %s: %w", ns.Name(), e.LocalName, err)
			}
		}
	}
	txn.Commit()
	return &Catalog{db: db}, nil
}

// Lookup returns the entry for a local name, folding ASCII case.
func (c *Catalog) Lookup(s webns.Schema, name string) (*Entry, error) {
	return c.first("id", s, name)
}

// LookupProperty returns the entry for an exact property name.
func (c *Catalog) LookupProperty(s webns.Schema, property string) (*Entry, error) {
	return c.first("property", s, property)
}

func (c *Catalog) first(index string, s webns.Schema, name string) (*Entry, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()
	obj, err := txn.First(tableAttributes, index, s.String(), name)
	if err != nil {
		return nil, fmt.Errorf("catalog %s lookup: %w", index, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: %q in %s", attr.ErrInvalidAttribute, name, s)
	}
	return obj.(*Entry), nil
}

// Query returns matching entries ordered by namespace, then by lower-cased
// local name.
func (c *Catalog) Query(q Query) ([]*Entry, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	var (
		it  memdb.ResultIterator
		err error
	)
	switch {
	case q.Prefix != "":
		it, err = txn.Get(tableAttributes, "local_prefix", q.Prefix)
	case q.AllFlags != 0:
		// Any single required flag narrows the scan; the rest are filtered below.
		it, err = txn.Get(tableAttributes, flagIndexName(lowestFlag(q.AllFlags)), true)
	case q.Namespace != 0:
		it, err = txn.Get(tableAttributes, "namespace", q.Namespace.String())
	default:
		it, err = txn.Get(tableAttributes, "id")
	}
	if err != nil {
		return nil, fmt.Errorf("catalog query: %w", err)
	}

	var out []*Entry
	for obj := it.Next(); obj != nil; obj = it.Next() {
		e := obj.(*Entry)
		if q.matches(e) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b *Entry) int {
		if c := strings.Compare(a.Namespace, b.Namespace); c != 0 {
			return c
		}
		return strings.Compare(unicase.ToLower(a.LocalName), unicase.ToLower(b.LocalName))
	})
	return out, nil
}

func (q Query) matches(e *Entry) bool {
	if q.Namespace != 0 && e.Namespace != q.Namespace.String() {
		return false
	}
	if q.Prefix != "" && !unicase.HasPrefix(e.LocalName, q.Prefix) {
		return false
	}
	if q.AllFlags != 0 && e.Type&q.AllFlags != q.AllFlags {
		return false
	}
	if q.AnyFlags != 0 && !e.Type.Any(q.AnyFlags) {
		return false
	}
	return true
}

func lowestFlag(t attr.Type) attr.Type {
	return t & -t
}

// Count returns the number of entries per namespace name.
func (c *Catalog) Count() (map[string]int, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(tableAttributes, "id")
	if err != nil {
		return nil, fmt.Errorf("catalog count: %w", err)
	}
	counts := make(map[string]int)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		counts[obj.(*Entry).Namespace]++
	}
	return counts, nil
}
