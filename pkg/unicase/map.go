package unicase

import (
	"fmt"
	"math/bits"
)

// Entry is one key/value pair used to build a Map.
type Entry[V any] struct {
	Key   string
	Value V
}

// DuplicateKeyError is returned by NewMap when two keys fold to the same string.
type DuplicateKeyError struct {
	First, Second string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate case-insensitive key %q (already have %q)", e.Second, e.First)
}

// Map is an immutable open-addressing hash map with ASCII case-insensitive
// string keys. It is built once by NewMap and is safe for concurrent reads.
// Get performs no heap allocation.
type Map[V any] struct {
	// slots hold index+1 into entries; 0 marks an empty slot.
	slots   []uint32
	hashes  []uint64
	entries []Entry[V]
	mask    uint64
}

// NewMap builds a Map from entries. The load factor is kept at or below one half.
func NewMap[V any](entries []Entry[V]) (*Map[V], error) {
	size := 1
	if n := len(entries) * 2; n > 1 {
		size = 1 << bits.Len(uint(n-1))
	}
	m := &Map[V]{
		slots:   make([]uint32, size),
		hashes:  make([]uint64, len(entries)),
		entries: make([]Entry[V], len(entries)),
		mask:    uint64(size - 1),
	}
	copy(m.entries, entries)

	for i, e := range m.entries {
		k := New(e.Key)
		h := k.Hash()
		m.hashes[i] = h
		for pos := h & m.mask; ; pos = (pos + 1) & m.mask {
			slot := m.slots[pos]
			if slot == 0 {
				m.slots[pos] = uint32(i + 1)
				break
			}
			if prev := m.entries[slot-1]; m.hashes[slot-1] == h && k.Equal(New(prev.Key)) {
				return nil, &DuplicateKeyError{First: prev.Key, Second: e.Key}
			}
		}
	}
	return m, nil
}

// MustMap is like NewMap but panics on error. It is meant for package-level
// tables built from compiled-in data.
func MustMap[V any](entries []Entry[V]) *Map[V] {
	m, err := NewMap(entries)
	if err != nil {
		panic(err)
	}
	return m
}

// Get returns the value stored under a key equal to name under ASCII case folding.
func (m *Map[V]) Get(name string) (V, bool) {
	return m.GetKey(New(name))
}

// GetKey returns the value stored under a key equal to k.
func (m *Map[V]) GetKey(k Key) (V, bool) {
	if len(m.entries) == 0 {
		var zero V
		return zero, false
	}
	h := k.Hash()
	for pos := h & m.mask; ; pos = (pos + 1) & m.mask {
		slot := m.slots[pos]
		if slot == 0 {
			var zero V
			return zero, false
		}
		if m.hashes[slot-1] == h {
			if e := m.entries[slot-1]; k.Equal(New(e.Key)) {
				return e.Value, true
			}
		}
	}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// Range calls fn for every entry in insertion order until fn returns false.
func (m *Map[V]) Range(fn func(key string, value V) bool) {
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}
