// Package compression defines the compression-type identifiers named by
// Options.Compression. The codecs themselves belong to the SSTable block
// layer, an external collaborator outside this module; what the
// configuration surface needs is the stable identifier a block writer
// records in a block trailer and a block reader dispatches on.
package compression

import "fmt"

// Type identifies a compression algorithm. The byte values are wire
// constants recorded alongside every compressed block, not an enumeration
// free to renumber; the gap between Snappy and Zstd is reserved for
// algorithms the documented configuration surface does not name.
type Type uint8

const (
	// NoCompression stores blocks uncompressed.
	NoCompression Type = 0x0

	// SnappyCompression uses Google Snappy compression, the default.
	SnappyCompression Type = 0x1

	// ZstdCompression uses Zstandard compression.
	ZstdCompression Type = 0x7
)

// String returns the human-readable name of the compression type.
func (t Type) String() string {
	switch t {
	case NoCompression:
		return "NoCompression"
	case SnappyCompression:
		return "Snappy"
	case ZstdCompression:
		return "ZSTD"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// IsSupported reports whether t is one of the types the configuration
// surface documents.
func (t Type) IsSupported() bool {
	switch t {
	case NoCompression, SnappyCompression, ZstdCompression:
		return true
	default:
		return false
	}
}
