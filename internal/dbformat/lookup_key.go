package dbformat

import "github.com/kvdb-project/ldbcore/internal/encoding"

// inlineBufferSize is the size of LookupKey's small-buffer optimization.
// User keys that fit within this many bytes (plus the varint length prefix
// and 8-byte trailer) never touch the heap.
const inlineBufferSize = 200

// LookupKeySeekType is the type tag embedded in a lookup key's trailer.
// Per the documented lookup-key layout, a seek always uses the Value tag so
// that positioning at this key lands on the newest visible entry with
// sequence <= the requested sequence, regardless of whether that entry is
// itself a value or a deletion.
const LookupKeySeekType = TypeValue

// LookupKey is the search key built for a point read of (userKey, seq). It
// exposes three overlapping views into one buffer:
//
//	memtable key = [varint32 len][user_key][fixed64 trailer]
//	internal key = [user_key][fixed64 trailer]
//	user key     = [user_key]
//
// The buffer is built once and is immutable thereafter; there is nothing to
// release explicitly (the inline-vs-heap distinction from the arena-free
// original only mattered for manual memory management — here the buffer is
// just a []byte and the GC reclaims it like any other allocation).
type LookupKey struct {
	buf      [inlineBufferSize]byte
	data     []byte // the memtable-key view; aliases buf[:] or a heap slice
	keyStart int    // offset of the user key within data
}

// NewLookupKey builds a lookup key for (userKey, seq).
func NewLookupKey(userKey []byte, seq SequenceNumber) *LookupKey {
	lk := &LookupKey{}

	usize := len(userKey)
	needed := encoding.VarintLength(uint64(usize+NumInternalBytes)) + usize + NumInternalBytes

	var dst []byte
	if needed <= inlineBufferSize {
		dst = lk.buf[:0]
	} else {
		dst = make([]byte, 0, needed)
	}

	dst = encoding.AppendVarint32(dst, uint32(usize+NumInternalBytes))
	lk.keyStart = len(dst)
	dst = append(dst, userKey...)
	packed := PackSequenceAndType(seq, LookupKeySeekType)
	dst = encoding.AppendFixed64(dst, packed)

	lk.data = dst
	return lk
}

// MemtableKey returns the full buffer: length prefix + user key + trailer.
func (lk *LookupKey) MemtableKey() []byte {
	return lk.data
}

// InternalKey returns the user key plus the 8-byte trailer, omitting the
// length prefix.
func (lk *LookupKey) InternalKey() []byte {
	return lk.data[lk.keyStart:]
}

// UserKey returns just the user key bytes.
func (lk *LookupKey) UserKey() []byte {
	return lk.data[lk.keyStart : len(lk.data)-NumInternalBytes]
}
