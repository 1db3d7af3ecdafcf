// Package dbformat implements the internal-key layer: the trailer that
// turns a user key into a sequenced, typed entry the rest of the engine
// orders and looks up by, plus the comparator, lookup-key, and
// filter-policy machinery built on top of it.
//
// An internal key is a user key followed by an 8-byte trailer packing a
// 56-bit sequence number and an 8-bit value type:
//
//	internal_key = user_key || fixed64_le(sequence<<8 | type)
//
// This layout — and every ValueType byte value below — is part of the
// on-disk format and must not change.
package dbformat

import (
	"errors"
	"fmt"

	"github.com/kvdb-project/ldbcore/internal/encoding"
)

// SequenceNumber orders writes: later writes get larger numbers. Only the
// low 56 bits are ever meaningful, since the trailer packs it alongside an
// 8-bit ValueType into a single fixed64.
type SequenceNumber uint64

// MaxSequenceNumber is the largest sequence number the 56-bit trailer
// field can hold (2^56 - 1). It also serves as the sequence half of the
// "match anything visible" seek trailer, since no real write ever reaches it.
const MaxSequenceNumber SequenceNumber = 1<<56 - 1

// DisableGlobalSequenceNumber marks an SST file as not using a single
// global sequence number override for all its entries.
const DisableGlobalSequenceNumber SequenceNumber = ^SequenceNumber(0)

// NumInternalBytes is the width of the sequence+type trailer appended to
// every user key.
const NumInternalBytes = 8

// ValueType tags what an internal-key entry means: a live value, a
// tombstone, or one of the WAL/merge/wide-column variants layered on top.
// These byte values are on-disk constants, not an enumeration Go is free
// to renumber.
type ValueType uint8

const (
	TypeDeletion ValueType = 0x00
	TypeValue    ValueType = 0x01
	TypeMerge    ValueType = 0x02

	// The following tags, apart from TypeSingleDeletion, only ever appear
	// in the WAL, never in an SST data block or the skiplist.
	TypeLogData                    ValueType = 0x03
	TypeColumnFamilyDeletion       ValueType = 0x04
	TypeColumnFamilyValue          ValueType = 0x05
	TypeColumnFamilyMerge          ValueType = 0x06
	TypeSingleDeletion             ValueType = 0x07
	TypeColumnFamilySingleDeletion ValueType = 0x08
	TypeBeginPrepareXID            ValueType = 0x09
	TypeEndPrepareXID              ValueType = 0x0A
	TypeCommitXID                  ValueType = 0x0B
	TypeRollbackXID                ValueType = 0x0C
	TypeNoop                       ValueType = 0x0D
	TypeColumnFamilyRangeDeletion  ValueType = 0x0E

	TypeRangeDeletion ValueType = 0x0F // meta block only

	TypeColumnFamilyBlobIndex ValueType = 0x10 // blob DB only
	TypeBlobIndex             ValueType = 0x11 // blob DB only

	TypeBeginPersistedPrepareXID ValueType = 0x12 // WAL only
	TypeBeginUnprepareXID        ValueType = 0x13 // WAL only

	TypeDeletionWithTimestamp ValueType = 0x14
	TypeCommitXIDAndTimestamp ValueType = 0x15 // WAL only

	TypeWideColumnEntity             ValueType = 0x16
	TypeColumnFamilyWideColumnEntity ValueType = 0x17 // WAL only

	TypeValuePreferredSeqno             ValueType = 0x18
	TypeColumnFamilyValuePreferredSeqno ValueType = 0x19 // WAL only

	TypeMaxValid ValueType = 0x1A // one past the last assigned tag
	TypeMax      ValueType = 0x7F // sentinel; never written to storage
)

// ValueTypeForSeek is the type tag a seek-to-user-key lookup packs into
// its trailer. It must be the largest tag any stored entry for that user
// key could carry, so that (MaxSequenceNumber, ValueTypeForSeek) sorts
// before every real entry under the internal-key comparator's descending
// trailer order.
const ValueTypeForSeek = TypeValuePreferredSeqno

// ValueTypeForSeekForPrev is the analogous tag for a reverse (seek-for-prev)
// lookup: the smallest possible tag, so the synthetic key sorts after
// every real entry for that user key.
const ValueTypeForSeekForPrev = TypeDeletion

var (
	ErrCorruptedKey     = errors.New("dbformat: corrupted internal key")
	ErrKeyTooSmall      = errors.New("dbformat: internal key shorter than the trailer")
	ErrInvalidValueType = errors.New("dbformat: value type not recognized")
)

// IsValueType reports whether t is one of the tags that may legally
// appear inline in a memtable or an SST data block (as opposed to a
// WAL-only control record).
func IsValueType(t ValueType) bool {
	switch {
	case t <= TypeMerge:
		return true
	case t == TypeSingleDeletion, t == TypeBlobIndex, t == TypeDeletionWithTimestamp,
		t == TypeWideColumnEntity, t == TypeValuePreferredSeqno:
		return true
	default:
		return false
	}
}

// IsExtendedValueType widens IsValueType to also accept the tags a
// corruption check must still tolerate once range deletions exist:
// TypeRangeDeletion (stored in a meta block, not a data block) and the
// TypeMaxValid sentinel.
func IsExtendedValueType(t ValueType) bool {
	return IsValueType(t) || t == TypeRangeDeletion || t == TypeMaxValid
}

// PackSequenceAndType packs seq into the upper 56 bits of a fixed64 and t
// into the low 8 bits — the exact trailer layout AppendInternalKey writes.
func PackSequenceAndType(seq SequenceNumber, t ValueType) uint64 {
	return uint64(seq)<<8 | uint64(t)
}

// UnpackSequenceAndType reverses PackSequenceAndType.
func UnpackSequenceAndType(packed uint64) (SequenceNumber, ValueType) {
	return SequenceNumber(packed >> 8), ValueType(packed)
}

// ParsedInternalKey is an internal key split back into its three logical
// fields, for code that wants to inspect or rebuild an entry rather than
// treat it as an opaque byte string.
type ParsedInternalKey struct {
	UserKey  []byte
	Sequence SequenceNumber
	Type     ValueType
}

func (p *ParsedInternalKey) String() string {
	return fmt.Sprintf("{UserKey: %q, Seq: %d, Type: %d}", p.UserKey, p.Sequence, p.Type)
}

// DebugString is String without the struct-literal braces, for log lines
// that want the key inline rather than as a labeled record.
func (p *ParsedInternalKey) DebugString() string {
	return fmt.Sprintf("'%s' @ %d : %d", p.UserKey, p.Sequence, p.Type)
}

// EncodedLength returns how many bytes AppendInternalKey(nil, p) would produce.
func (p *ParsedInternalKey) EncodedLength() int {
	return len(p.UserKey) + NumInternalBytes
}

// AppendInternalKey appends key's wire encoding to dst.
func AppendInternalKey(dst []byte, key *ParsedInternalKey) []byte {
	dst = append(dst, key.UserKey...)
	return encoding.AppendFixed64(dst, PackSequenceAndType(key.Sequence, key.Type))
}

// ParseInternalKey splits data into user key, sequence, and type. It
// returns ErrKeyTooSmall if data can't even hold a trailer, and
// ErrInvalidValueType (alongside the otherwise-valid split) if the
// trailer's type byte isn't one IsExtendedValueType recognizes.
func ParseInternalKey(data []byte) (*ParsedInternalKey, error) {
	if len(data) < NumInternalBytes {
		return nil, ErrKeyTooSmall
	}

	trailerStart := len(data) - NumInternalBytes
	seq, t := UnpackSequenceAndType(encoding.DecodeFixed64(data[trailerStart:]))

	parsed := &ParsedInternalKey{
		UserKey:  data[:trailerStart],
		Sequence: seq,
		Type:     t,
	}
	if !IsExtendedValueType(t) {
		return parsed, ErrInvalidValueType
	}
	return parsed, nil
}

// ExtractUserKey returns internalKey's user-key prefix, or nil if
// internalKey is too short to even hold a trailer.
func ExtractUserKey(internalKey []byte) []byte {
	if len(internalKey) < NumInternalBytes {
		return nil
	}
	return internalKey[:len(internalKey)-NumInternalBytes]
}

// ExtractValueType returns internalKey's trailer type byte, or TypeMax if
// internalKey is too short to hold one.
func ExtractValueType(internalKey []byte) ValueType {
	if len(internalKey) < NumInternalBytes {
		return TypeMax
	}
	_, t := UnpackSequenceAndType(encoding.DecodeFixed64(internalKey[len(internalKey)-NumInternalBytes:]))
	return t
}

// ExtractSequenceNumber returns internalKey's trailer sequence number, or
// 0 if internalKey is too short to hold one.
func ExtractSequenceNumber(internalKey []byte) SequenceNumber {
	if len(internalKey) < NumInternalBytes {
		return 0
	}
	seq, _ := UnpackSequenceAndType(encoding.DecodeFixed64(internalKey[len(internalKey)-NumInternalBytes:]))
	return seq
}

// InternalKey is the wire-encoded form of ParsedInternalKey: a plain byte
// slice that happens to end in a trailer, so it can be passed anywhere a
// []byte is expected (comparators, the skiplist, the filter adapter)
// without a conversion step.
type InternalKey []byte

// NewInternalKey encodes (userKey, seq, t) into a fresh InternalKey.
func NewInternalKey(userKey []byte, seq SequenceNumber, t ValueType) InternalKey {
	return AppendInternalKey(nil, &ParsedInternalKey{UserKey: userKey, Sequence: seq, Type: t})
}

func (k InternalKey) UserKey() []byte          { return ExtractUserKey(k) }
func (k InternalKey) Sequence() SequenceNumber { return ExtractSequenceNumber(k) }
func (k InternalKey) Type() ValueType          { return ExtractValueType(k) }

// Valid reports whether k is at least trailer-sized and carries a
// recognized value type.
func (k InternalKey) Valid() bool {
	_, err := ParseInternalKey(k)
	return err == nil
}

func (k InternalKey) Parse() (*ParsedInternalKey, error) {
	return ParseInternalKey(k)
}

// UpdateInternalKey rewrites key's trailer in place, leaving the user key
// and overall length untouched. It is a no-op if key is too short to hold
// a trailer.
func UpdateInternalKey(key *InternalKey, seq SequenceNumber, t ValueType) {
	if len(*key) < NumInternalBytes {
		return
	}
	trailerStart := len(*key) - NumInternalBytes
	encoding.EncodeFixed64((*key)[trailerStart:], PackSequenceAndType(seq, t))
}

// UserKeyComparer orders raw user keys the same way Comparator.Compare
// does for the root package's Comparator interface, but scoped to this
// package so InternalKeyComparator doesn't need to import it.
type UserKeyComparer func(a, b []byte) int

// BytewiseCompare is the default UserKeyComparer: unsigned lexicographic
// order, shorter-is-smaller on a shared prefix.
func BytewiseCompare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// InternalKeyComparator orders internal keys: ascending by user key under
// the wrapped UserKeyComparer, and for equal user keys, descending by the
// raw trailer (which orders by sequence number first and value type
// second, since the trailer packs sequence into the high bits). Descending
// order puts the newest, most-preferred entry for a given user key first.
type InternalKeyComparator struct {
	userCompare UserKeyComparer
}

// NewInternalKeyComparator wraps userCompare (or BytewiseCompare, if nil)
// as an internal-key comparator.
func NewInternalKeyComparator(userCompare UserKeyComparer) *InternalKeyComparator {
	if userCompare == nil {
		userCompare = BytewiseCompare
	}
	return &InternalKeyComparator{userCompare: userCompare}
}

// DefaultInternalKeyComparator compares internal keys using bytewise user-key order.
var DefaultInternalKeyComparator = NewInternalKeyComparator(BytewiseCompare)

func (c *InternalKeyComparator) Compare(a, b []byte) int {
	userA, userB := userKeyOrFallback(a), userKeyOrFallback(b)

	if cmp := c.userCompare(userA, userB); cmp != 0 {
		return cmp
	}

	if len(a) < NumInternalBytes || len(b) < NumInternalBytes {
		return 0
	}
	trailerA := encoding.DecodeFixed64(a[len(a)-NumInternalBytes:])
	trailerB := encoding.DecodeFixed64(b[len(b)-NumInternalBytes:])
	switch {
	case trailerA > trailerB:
		return -1
	case trailerA < trailerB:
		return 1
	default:
		return 0
	}
}

// CompareUserKey compares just the user-key portion of two internal keys,
// ignoring their trailers entirely.
func (c *InternalKeyComparator) CompareUserKey(a, b []byte) int {
	return c.userCompare(userKeyOrFallback(a), userKeyOrFallback(b))
}

// UserCompare exposes the wrapped UserKeyComparer.
func (c *InternalKeyComparator) UserCompare() UserKeyComparer {
	return c.userCompare
}

// userKeyOrFallback strips internalKey's trailer, or returns internalKey
// unchanged if it's too short to have one — callers are expected to
// always pass valid internal keys, but a short input compares as itself
// rather than panicking.
func userKeyOrFallback(internalKey []byte) []byte {
	if userKey := ExtractUserKey(internalKey); userKey != nil {
		return userKey
	}
	return internalKey
}

// CompareInternalKeys compares a and b with DefaultInternalKeyComparator.
func CompareInternalKeys(a, b []byte) int {
	return DefaultInternalKeyComparator.Compare(a, b)
}
