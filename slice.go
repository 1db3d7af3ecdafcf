package ldbcore

// slice.go implements the non-owning byte-view primitive other components
// (comparator, internal-key layer, filter adapter) are specified against.

import "bytes"

// Slice is a non-owning, immutable view over a byte sequence: a (pointer,
// length) pair with no lifetime of its own. Go's []byte already behaves
// this way at the runtime level, so Slice is a thin value type over one,
// giving the prefix and ordering predicates a named home instead of
// scattering bytes.HasPrefix/bytes.Compare call sites. The caller is
// responsible for ensuring the backing array outlives every Slice derived
// from it; Slice never copies.
type Slice []byte

// Size returns the number of bytes in the view.
func (s Slice) Size() int { return len(s) }

// Empty reports whether the view has zero length.
func (s Slice) Empty() bool { return len(s) == 0 }

// At returns the byte at index i.
// REQUIRES: 0 <= i < s.Size()
func (s Slice) At(i int) byte { return s[i] }

// StartsWith reports whether s begins with prefix.
func (s Slice) StartsWith(prefix Slice) bool {
	return bytes.HasPrefix(s, prefix)
}

// RemovePrefix returns s with its first n bytes dropped.
// REQUIRES: n <= s.Size()
func (s Slice) RemovePrefix(n int) Slice { return s[n:] }

// Compare returns <0, 0, or >0 as s is less than, equal to, or greater
// than other, under unsigned lexicographic order with shorter-is-less on
// equal prefixes.
func (s Slice) Compare(other Slice) int {
	return bytes.Compare(s, other)
}

// Equal reports whether s and other have identical length and content.
func (s Slice) Equal(other Slice) bool {
	return bytes.Equal(s, other)
}

// String returns a copy of the view's bytes as a string.
func (s Slice) String() string {
	return string(s)
}
