// Package schema holds the static name tables of a markup namespace.
//
// A Table indexes attribute records by local name (ASCII case-insensitive),
// by DOM property name (exact) and by lower-cased local-name prefix. A
// TagTable indexes element records by local name. Both are immutable after
// construction and safe for concurrent use.
package schema

import (
	"fmt"

	iradix "github.com/hashicorp/go-immutable-radix/v2"

	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/unicase"
)

// Record is the static metadata of one known attribute.
type Record struct {
	LocalName string    `json:"local_name" yaml:"local_name"`
	Property  string    `json:"property" yaml:"property"`
	Type      attr.Type `json:"type" yaml:"type"`
}

// TagRecord is the static metadata of one known element.
type TagRecord struct {
	LocalName string `json:"local_name" yaml:"local_name"`
	Void      bool   `json:"void" yaml:"void"`
}

// Table is the attribute table of one namespace.
type Table struct {
	records    []Record
	byLocal    *unicase.Map[*Record]
	byProperty map[string]*Record
	prefix     *iradix.Tree[*Record]
}

// NewTable builds a Table. It fails if two records share a local name under
// ASCII case folding or share a property name.
func NewTable(records []Record) (*Table, error) {
	t := &Table{
		records:    make([]Record, len(records)),
		byProperty: make(map[string]*Record, len(records)),
	}
	copy(t.records, records)

	entries := make([]unicase.Entry[*Record], len(t.records))
	txn := iradix.New[*Record]().Txn()
	for i := range t.records {
		r := &t.records[i]
		if r.LocalName == "" || r.Property == "" {
			return nil, fmt.Errorf("record %d: empty name", i)
		}
		if prev, ok := t.byProperty[r.Property]; ok {
			return nil, fmt.Errorf("duplicate property %q on %q and %q", r.Property, prev.LocalName, r.LocalName)
		}
		t.byProperty[r.Property] = r
		entries[i] = unicase.Entry[*Record]{Key: r.LocalName, Value: r}
		txn.Insert([]byte(unicase.ToLower(r.LocalName)), r)
	}

	byLocal, err := unicase.NewMap(entries)
	if err != nil {
		return nil, fmt.Errorf("building local name index: %w", err)
	}
	t.byLocal = byLocal
	t.prefix = txn.Commit()
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(records []Record) *Table {
	t, err := NewTable(records)
	if err != nil {
		panic(err)
	}
	return t
}

// ByLocalName returns the record whose local name equals name under ASCII
// case folding. It does not allocate.
func (t *Table) ByLocalName(name string) (*Record, bool) {
	return t.byLocal.GetKey(unicase.New(name))
}

// ByProperty returns the record with exactly the given property name.
func (t *Table) ByProperty(name string) (*Record, bool) {
	r, ok := t.byProperty[name]
	return r, ok
}

// WithPrefix returns the records whose local name starts with prefix under
// ASCII case folding, ordered by lower-cased local name.
func (t *Table) WithPrefix(prefix string) []*Record {
	var out []*Record
	t.prefix.Root().WalkPrefix([]byte(unicase.ToLower(prefix)), func(_ []byte, r *Record) bool {
		out = append(out, r)
		return false
	})
	return out
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the records in table order. The pointers are shared and
// must not be modified.
func (t *Table) Records() []*Record {
	out := make([]*Record, len(t.records))
	for i := range t.records {
		out[i] = &t.records[i]
	}
	return out
}

// TagTable is the element table of one namespace.
type TagTable struct {
	records []TagRecord
	byLocal *unicase.Map[*TagRecord]
}

// NewTagTable builds a TagTable. It fails on a duplicate local name.
func NewTagTable(records []TagRecord) (*TagTable, error) {
	t := &TagTable{records: make([]TagRecord, len(records))}
	copy(t.records, records)

	entries := make([]unicase.Entry[*TagRecord], len(t.records))
	for i := range t.records {
		if t.records[i].LocalName == "" {
			return nil, fmt.Errorf("tag %d: empty name", i)
		}
		entries[i] = unicase.Entry[*TagRecord]{Key: t.records[i].LocalName, Value: &t.records[i]}
	}
	byLocal, err := unicase.NewMap(entries)
	if err != nil {
		return nil, fmt.Errorf("building tag index: %w", err)
	}
	t.byLocal = byLocal
	return t, nil
}

// MustTagTable is like NewTagTable but panics on error.
func MustTagTable(records []TagRecord) *TagTable {
	t, err := NewTagTable(records)
	if err != nil {
		panic(err)
	}
	return t
}

// ByLocalName returns the element record for name, folding ASCII case.
func (t *TagTable) ByLocalName(name string) (*TagRecord, bool) {
	return t.byLocal.GetKey(unicase.New(name))
}

// Len returns the number of records.
func (t *TagTable) Len() int {
	return len(t.records)
}

// Records returns the records in table order.
func (t *TagTable) Records() []*TagRecord {
	out := make([]*TagRecord, len(t.records))
	for i := range t.records {
		out[i] = &t.records[i]
	}
	return out
}

// String implements fmt.Stringer for debugging output.
func (r Record) String() string {
	return fmt.Sprintf("%s (%s) %s", r.LocalName, r.Property, r.Type)
}
