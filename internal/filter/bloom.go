// Package filter implements a bloom filter for probabilistic key-membership
// tests, the kind of filter the internal-key filter-policy adapter wraps
// before handing it user-key-only slices.
//
// The bit-probing scheme is LevelDB's classic double-hashing bloom filter:
// a single 32-bit hash seeds a second "delta" via bit rotation, and each of
// the k probes walks the bit array by repeatedly adding delta. This keeps
// the filter free of any second independent hash function while still
// spreading probes across the full bit array (unlike the cache-line-local
// schemes newer engines use, which trade a larger false-positive rate at
// small sizes for probe locality).
package filter

import (
	"github.com/kvdb-project/ldbcore/internal/hash"
)

const bitsPerByte = 8

// BloomFilterBuilder builds a bloom filter from a set of keys.
type BloomFilterBuilder struct {
	bitsPerKey int
	keys       [][]byte
}

// NewBloomFilterBuilder creates a new bloom filter builder.
// bitsPerKey controls filter accuracy (10 bits/key gives ~1% false positives).
func NewBloomFilterBuilder(bitsPerKey int) *BloomFilterBuilder {
	if bitsPerKey < 1 {
		bitsPerKey = 1
	}
	return &BloomFilterBuilder{bitsPerKey: bitsPerKey}
}

// AddKey adds a key to the filter.
func (b *BloomFilterBuilder) AddKey(key []byte) {
	k := make([]byte, len(key))
	copy(k, key)
	b.keys = append(b.keys, k)
}

// NumKeys returns the number of keys added.
func (b *BloomFilterBuilder) NumKeys() int {
	return len(b.keys)
}

// Reset clears the builder for reuse.
func (b *BloomFilterBuilder) Reset() {
	b.keys = b.keys[:0]
}

// numProbes returns k, the number of hash probes per key, derived from
// bits-per-key the way LevelDB's bloom filter policy does: k = bits_per_key
// * ln(2), clamped to [1, 30].
func numProbes(bitsPerKey int) int {
	k := int(float64(bitsPerKey) * 0.69)
	if k < 1 {
		k = 1
	}
	if k > 30 {
		k = 30
	}
	return k
}

// Finish builds the filter and returns the filter bytes. The last byte
// stores k (the number of probes), so a reader that was built with a
// different bitsPerKey can still query it correctly.
func (b *BloomFilterBuilder) Finish() []byte {
	n := len(b.keys)
	k := numProbes(b.bitsPerKey)

	nBits := max(n*b.bitsPerKey, 64)
	nBytes := (nBits + bitsPerByte - 1) / bitsPerByte
	nBits = nBytes * bitsPerByte

	data := make([]byte, nBytes+1)
	data[nBytes] = byte(k)

	for _, key := range b.keys {
		h := hash.Hash(key, hash.BloomSeed)
		delta := (h >> 17) | (h << 15) // rotate right 17 bits
		for i := 0; i < k; i++ {
			bitpos := h % uint32(nBits)
			data[bitpos/bitsPerByte] |= 1 << (bitpos % bitsPerByte)
			h += delta
		}
	}

	b.keys = b.keys[:0]
	return data
}

// EstimatedSize returns the estimated filter size in bytes (including the
// trailing probe-count byte).
func (b *BloomFilterBuilder) EstimatedSize() int {
	n := len(b.keys)
	if n == 0 {
		return 0
	}
	nBits := max(n*b.bitsPerKey, 64)
	return (nBits+bitsPerByte-1)/bitsPerByte + 1
}

// BloomFilterReader reads a bloom filter built by BloomFilterBuilder.
type BloomFilterReader struct {
	data          []byte
	nBits         uint32
	k             int
	isAlwaysMatch bool
}

// NewBloomFilterReader creates a reader from filter data. Returns nil if the
// filter bytes are too short to be valid.
func NewBloomFilterReader(data []byte) *BloomFilterReader {
	if len(data) < 1 {
		return nil
	}
	k := int(data[len(data)-1])
	if k > 30 {
		// Reserved for future encodings this reader doesn't understand;
		// treat the filter as always matching so it never causes a false
		// negative.
		return &BloomFilterReader{isAlwaysMatch: true}
	}
	bits := data[:len(data)-1]
	return &BloomFilterReader{
		data:  bits,
		nBits: uint32(len(bits) * bitsPerByte),
		k:     k,
	}
}

// MayContain returns true if the key may be in the set. A false return
// means the key is definitely not present.
func (r *BloomFilterReader) MayContain(key []byte) bool {
	if r == nil {
		return false
	}
	if r.isAlwaysMatch {
		return true
	}
	if r.nBits == 0 || r.k == 0 {
		return false
	}

	h := hash.Hash(key, hash.BloomSeed)
	delta := (h >> 17) | (h << 15)
	for i := 0; i < r.k; i++ {
		bitpos := h % r.nBits
		if r.data[bitpos/bitsPerByte]&(1<<(bitpos%bitsPerByte)) == 0 {
			return false
		}
		h += delta
	}
	return true
}
