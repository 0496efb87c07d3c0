// Package unicase provides ASCII case-insensitive string keys and a static,
// read-only hash map over them.
//
// Only the ASCII letters A-Z and a-z are folded. Every other byte, including
// all non-ASCII UTF-8 sequences, compares by exact byte equality.
package unicase

// Key wraps a string with ASCII case-insensitive equality and hashing.
type Key struct {
	s string
}

// New wraps s. It does not copy or allocate.
func New(s string) Key {
	return Key{s: s}
}

// String returns the wrapped string with its original spelling.
func (k Key) String() string {
	return k.s
}

// Equal reports whether k and other are equal under ASCII case folding.
func (k Key) Equal(other Key) bool {
	return Equal(k.s, other.s)
}

// Hash returns the case-folded hash of k.
func (k Key) Hash() uint64 {
	return Hash(k.s)
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Equal reports whether a and b are equal under ASCII case folding.
func Equal(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] && lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether s begins with prefix under ASCII case folding.
func HasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && Equal(s[:len(prefix)], prefix)
}

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash returns the 64-bit FNV-1a hash of s with ASCII letters folded to
// lower case. Strings that are Equal hash identically.
func Hash(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(lower(s[i]))
		h *= fnvPrime64
	}
	return h
}

// ToLower returns s with ASCII letters lower-cased. s is returned as is
// when it has no upper-case ASCII letters.
func ToLower(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		b[i] = lower(b[i])
	}
	return string(b)
}
