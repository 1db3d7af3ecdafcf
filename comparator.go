package ldbcore

import "bytes"

// Comparator supplies the total ordering the rest of this module's key
// machinery (the internal-key comparator, the skiplist, the filter-policy
// adapter) is built against. A store is free to install its own ordering,
// but whichever one it picks must be used consistently for the lifetime of
// the data it orders — changing comparators over an existing data set
// silently reinterprets every key's sort position.
type Comparator interface {
	// Compare reports whether a sorts before (negative), equal to (zero),
	// or after (positive) b.
	Compare(a, b []byte) int

	// Name identifies the comparator. It is part of the on-disk contract:
	// two comparators with different Name values must never be used
	// interchangeably against the same stored keys, since it tells a
	// reader which total order the keys were sorted under.
	Name() string

	// FindShortestSeparator returns some k with a <= k < b and k no longer
	// than a, preferring a shorter k; when it finds none it returns a
	// unchanged. Index blocks use this to store a separator shorter than
	// either neighboring key.
	FindShortestSeparator(a, b []byte) []byte

	// FindShortSuccessor returns some k >= a and no longer than a,
	// preferring a shorter k; when it finds none it returns a unchanged.
	// Index blocks use this to shorten the last key of a block.
	FindShortSuccessor(a []byte) []byte
}

// BytewiseComparator orders keys by unsigned byte-by-byte comparison — the
// engine's default ordering, and the one every other component assumes
// unless a caller installs something else.
type BytewiseComparator struct{}

// DefaultComparator returns the engine's default ordering.
func DefaultComparator() Comparator {
	return BytewiseComparator{}
}

func (BytewiseComparator) Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

func (BytewiseComparator) Name() string {
	return "leveldb.BytewiseComparator"
}

// FindShortestSeparator walks the shared prefix of a and b and, at the
// first differing byte, tries to round a up by one there. Rounding only
// succeeds when the result still sorts below b (i.e. a's differing byte is
// not already one less than b's, and is not 0xFF); otherwise a is returned
// as-is rather than risk overshooting b.
func (BytewiseComparator) FindShortestSeparator(a, b []byte) []byte {
	shared := len(a)
	if len(b) < shared {
		shared = len(b)
	}

	i := 0
	for i < shared && a[i] == b[i] {
		i++
	}
	if i >= shared {
		// a is a prefix of b (or vice versa, or they're equal) — there's
		// no byte position left to round up without overshooting.
		return a
	}

	if a[i] < 0xFF && a[i]+1 < b[i] {
		rounded := append([]byte(nil), a[:i+1]...)
		rounded[i]++
		return rounded
	}
	return a
}

// FindShortSuccessor rounds a up at its first non-0xFF byte, dropping
// everything after it. A key made of nothing but 0xFF bytes has no shorter
// successor, so it is returned unchanged.
func (BytewiseComparator) FindShortSuccessor(a []byte) []byte {
	for i, b := range a {
		if b != 0xFF {
			successor := append([]byte(nil), a[:i+1]...)
			successor[i]++
			return successor
		}
	}
	return a
}
