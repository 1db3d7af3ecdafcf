// Package encoding implements the core's binary codec: little-endian
// fixed-width integers, 7-bit variable-length integers, and the
// length-prefixed byte string built on top of them. This is the wire
// format the key layers (the internal-key trailer, the lookup-key
// buffer) rest on, so every encode/decode pair here must round-trip exactly,
// including at the varint length boundaries (127/128, 16383/16384, and
// so on up through the 64-bit range).
package encoding

import (
	"encoding/binary"
	"errors"
)

// continuationByte is set on every encoded varint byte except the last.
const continuationByte = 0x80

// MaxVarint32Length and MaxVarint64Length bound how many bytes
// EncodeVarint32/EncodeVarint64 ever emit: ceil(32/7) and ceil(64/7).
const (
	MaxVarint32Length = 5
	MaxVarint64Length = 10
	// MaxVarintLen64 names the same bound for callers that think in
	// terms of the widest integer rather than the varint byte count.
	MaxVarintLen64 = MaxVarint64Length
)

var (
	// ErrVarintTermination means the input ran out before a byte with
	// its continuation bit clear was seen.
	ErrVarintTermination = errors.New("encoding: varint has no terminating byte within the supplied input")

	// ErrVarintOverflow means more continuation bytes were present than
	// the target integer width allows.
	ErrVarintOverflow = errors.New("encoding: varint wider than its target integer")

	// ErrBufferTooSmall means a length-prefixed payload claims more
	// bytes than the buffer actually holds.
	ErrBufferTooSmall = errors.New("encoding: buffer shorter than its length-prefixed payload")
)

// --- fixed-width, little-endian ---

// EncodeFixed16 writes v into dst as 2 little-endian bytes.
// REQUIRES: len(dst) >= 2.
func EncodeFixed16(dst []byte, v uint16) { binary.LittleEndian.PutUint16(dst, v) }

// DecodeFixed16 reads a 2-byte little-endian uint16 from src.
// REQUIRES: len(src) >= 2.
func DecodeFixed16(src []byte) uint16 { return binary.LittleEndian.Uint16(src) }

// EncodeFixed32 writes v into dst as 4 little-endian bytes.
// REQUIRES: len(dst) >= 4.
func EncodeFixed32(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }

// DecodeFixed32 reads a 4-byte little-endian uint32 from src.
// REQUIRES: len(src) >= 4.
func DecodeFixed32(src []byte) uint32 { return binary.LittleEndian.Uint32(src) }

// EncodeFixed64 writes v into dst as 8 little-endian bytes.
// REQUIRES: len(dst) >= 8.
func EncodeFixed64(dst []byte, v uint64) { binary.LittleEndian.PutUint64(dst, v) }

// DecodeFixed64 reads an 8-byte little-endian uint64 from src.
// REQUIRES: len(src) >= 8.
func DecodeFixed64(src []byte) uint64 { return binary.LittleEndian.Uint64(src) }

// AppendFixed16 appends v to dst as 2 little-endian bytes.
func AppendFixed16(dst []byte, v uint16) []byte { return binary.LittleEndian.AppendUint16(dst, v) }

// AppendFixed32 appends v to dst as 4 little-endian bytes.
func AppendFixed32(dst []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(dst, v) }

// AppendFixed64 appends v to dst as 8 little-endian bytes.
func AppendFixed64(dst []byte, v uint64) []byte { return binary.LittleEndian.AppendUint64(dst, v) }

// --- variable-length integers ---

// encodeVarint is the bit-shuffling loop shared by EncodeVarint32 and
// EncodeVarint64: emit v's low 7 bits per byte, least-significant group
// first, setting the continuation bit on every byte but the last.
func encodeVarint(dst []byte, v uint64) int {
	n := 0
	for v >= continuationByte {
		dst[n] = byte(v) | continuationByte
		v >>= 7
		n++
	}
	dst[n] = byte(v)
	return n + 1
}

// EncodeVarint32 writes v into dst as a varint and returns the byte
// count written. REQUIRES: len(dst) >= MaxVarint32Length.
func EncodeVarint32(dst []byte, v uint32) int { return encodeVarint(dst, uint64(v)) }

// EncodeVarint64 writes v into dst as a varint and returns the byte
// count written. REQUIRES: len(dst) >= MaxVarint64Length.
func EncodeVarint64(dst []byte, v uint64) int { return encodeVarint(dst, v) }

// PutVarint64 is EncodeVarint64, named for call sites that read more
// naturally as "put a varint into this buffer" than "encode".
func PutVarint64(dst []byte, v uint64) int { return EncodeVarint64(dst, v) }

// AppendVarint32 appends v to dst as a varint.
func AppendVarint32(dst []byte, v uint32) []byte {
	var tmp [MaxVarint32Length]byte
	return append(dst, tmp[:EncodeVarint32(tmp[:], v)]...)
}

// AppendVarint64 appends v to dst as a varint.
func AppendVarint64(dst []byte, v uint64) []byte {
	var tmp [MaxVarint64Length]byte
	return append(dst, tmp[:EncodeVarint64(tmp[:], v)]...)
}

// decodeVarint reads up to maxBytes 7-bit groups from the front of src,
// least-significant group first, and returns once it sees a byte whose
// continuation bit is clear. It never reads past len(src) and never
// emits more than maxBytes bytes' worth of shift, so a 32-bit caller
// can't have a 64-bit-sized varint silently truncate into it.
func decodeVarint(src []byte, maxBytes int) (value uint64, n int, err error) {
	for i := 0; i < maxBytes; i++ {
		if i >= len(src) {
			return 0, 0, ErrVarintTermination
		}
		b := src[i]
		if b < continuationByte {
			return value | uint64(b)<<(7*i), i + 1, nil
		}
		value |= uint64(b&0x7f) << (7 * i)
	}
	return 0, 0, ErrVarintOverflow
}

// DecodeVarint32 decodes a varint32 from the front of src, returning the
// value and the number of bytes consumed.
func DecodeVarint32(src []byte) (value uint32, bytesRead int, err error) {
	v, n, err := decodeVarint(src, MaxVarint32Length)
	return uint32(v), n, err
}

// DecodeVarint64 decodes a varint64 from the front of src, returning the
// value and the number of bytes consumed.
func DecodeVarint64(src []byte) (value uint64, bytesRead int, err error) {
	return decodeVarint(src, MaxVarint64Length)
}

// VarintLength returns the number of bytes EncodeVarint64(_, v) would
// write.
func VarintLength(v uint64) int {
	n := 1
	for v >= continuationByte {
		v >>= 7
		n++
	}
	return n
}

// --- zigzag-encoded signed varints ---

// ZigZagEncode maps a signed int64 onto an unsigned uint64 so that small
// magnitudes (positive or negative) both encode as short varints.
func ZigZagEncode(v int64) uint64 {
	return (uint64(v) << 1) ^ uint64(v>>63)
}

// ZigZagDecode reverses ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// AppendVarsignedint64 appends v to dst as a zigzag-encoded varint.
func AppendVarsignedint64(dst []byte, v int64) []byte {
	return AppendVarint64(dst, ZigZagEncode(v))
}

// DecodeVarsignedint64 decodes a zigzag-encoded varint64 from src.
func DecodeVarsignedint64(src []byte) (value int64, bytesRead int, err error) {
	u, n, err := DecodeVarint64(src)
	if err != nil {
		return 0, 0, err
	}
	return ZigZagDecode(u), n, nil
}

// --- length-prefixed byte strings ---

// AppendLengthPrefixedSlice appends value to dst as varint32(len(value))
// followed by value's bytes.
func AppendLengthPrefixedSlice(dst []byte, value []byte) []byte {
	dst = AppendVarint32(dst, uint32(len(value)))
	return append(dst, value...)
}

// DecodeLengthPrefixedSlice decodes a length-prefixed byte string from
// the front of src. The returned value aliases src; bytesRead is the
// total size of the length prefix plus the payload.
func DecodeLengthPrefixedSlice(src []byte) (value []byte, bytesRead int, err error) {
	length, prefixLen, err := DecodeVarint32(src)
	if err != nil {
		return nil, 0, err
	}
	end := prefixLen + int(length)
	if end > len(src) {
		return nil, 0, ErrBufferTooSmall
	}
	return src[prefixLen:end], end, nil
}

// --- sequential cursor over an encoded buffer ---

// Slice is a read cursor over an encoded byte buffer: each Get* call
// decodes one field and advances past it, so a record made of several
// back-to-back encoded values can be read field by field without the
// caller tracking an offset by hand.
type Slice struct {
	buf []byte
	off int
}

// NewSlice wraps buf for sequential decoding, starting at offset 0.
func NewSlice(buf []byte) *Slice {
	return &Slice{buf: buf}
}

// Remaining returns how many bytes are left unconsumed.
func (s *Slice) Remaining() int { return len(s.buf) - s.off }

// Data returns the unconsumed tail of the buffer.
func (s *Slice) Data() []byte { return s.buf[s.off:] }

// Advance skips n bytes without decoding them.
func (s *Slice) Advance(n int) { s.off += n }

// GetBytes consumes and returns exactly n bytes.
func (s *Slice) GetBytes(n int) ([]byte, bool) {
	if s.Remaining() < n {
		return nil, false
	}
	v := s.buf[s.off : s.off+n]
	s.off += n
	return v, true
}

// GetFixed16 consumes a 2-byte little-endian uint16.
func (s *Slice) GetFixed16() (uint16, bool) {
	if s.Remaining() < 2 {
		return 0, false
	}
	v := DecodeFixed16(s.buf[s.off:])
	s.off += 2
	return v, true
}

// GetFixed32 consumes a 4-byte little-endian uint32.
func (s *Slice) GetFixed32() (uint32, bool) {
	if s.Remaining() < 4 {
		return 0, false
	}
	v := DecodeFixed32(s.buf[s.off:])
	s.off += 4
	return v, true
}

// GetFixed64 consumes an 8-byte little-endian uint64.
func (s *Slice) GetFixed64() (uint64, bool) {
	if s.Remaining() < 8 {
		return 0, false
	}
	v := DecodeFixed64(s.buf[s.off:])
	s.off += 8
	return v, true
}

// GetVarint32 consumes a varint32.
func (s *Slice) GetVarint32() (uint32, bool) {
	v, n, err := DecodeVarint32(s.buf[s.off:])
	if err != nil {
		return 0, false
	}
	s.off += n
	return v, true
}

// GetVarint64 consumes a varint64.
func (s *Slice) GetVarint64() (uint64, bool) {
	v, n, err := DecodeVarint64(s.buf[s.off:])
	if err != nil {
		return 0, false
	}
	s.off += n
	return v, true
}

// GetVarsignedint64 consumes a zigzag-encoded signed varint64.
func (s *Slice) GetVarsignedint64() (int64, bool) {
	v, n, err := DecodeVarsignedint64(s.buf[s.off:])
	if err != nil {
		return 0, false
	}
	s.off += n
	return v, true
}

// GetLengthPrefixedSlice consumes a length-prefixed byte string.
func (s *Slice) GetLengthPrefixedSlice() ([]byte, bool) {
	v, n, err := DecodeLengthPrefixedSlice(s.buf[s.off:])
	if err != nil {
		return nil, false
	}
	s.off += n
	return v, true
}
