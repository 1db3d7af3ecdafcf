package ldbcore

// options.go implements database configuration options.

import (
	"github.com/kvdb-project/ldbcore/internal/compression"
	"github.com/kvdb-project/ldbcore/internal/dbformat"
	"github.com/kvdb-project/ldbcore/internal/env"
	"github.com/kvdb-project/ldbcore/internal/logging"
)

// Logger is an alias for the logging.Logger interface.
// This allows users to pass their own logger implementation.
type Logger = logging.Logger

// CompressionType is an alias for the compression type.
type CompressionType = compression.Type

// Compression type constants, re-exported from internal/compression.
const (
	CompressionNone   = compression.NoCompression
	CompressionSnappy = compression.SnappyCompression
	CompressionZstd   = compression.ZstdCompression
)

// Cache is the block-cache collaborator type. No implementation is provided
// by this module; a nil Cache means caching is disabled.
type Cache interface {
	// Name identifies the cache implementation, for logging and diagnostics.
	Name() string
}

// FilterPolicy is a user-supplied filter over user keys, e.g. a bloom
// filter. A nil FilterPolicy means no filter is built.
type FilterPolicy = dbformat.FilterPolicy

// Snapshot is an opaque marker for a consistent point-in-time view of the
// database. Its creation and release lifecycle belongs to the database
// façade, which is outside this module's scope; it exists here only so
// ReadOptions has somewhere to hang a nullable reference.
type Snapshot struct {
	sequence dbformat.SequenceNumber
}

// Options contains all configuration options for opening a database.
type Options struct {
	// Comparator defines the order of keys in the database.
	// If nil, a default bytewise comparator is used.
	Comparator Comparator

	// CreateIfMissing causes Open to create the database if it does not exist.
	CreateIfMissing bool

	// ErrorIfExists causes Open to return an error if the database already exists.
	ErrorIfExists bool

	// ParanoidChecks enables additional checks for data integrity.
	ParanoidChecks bool

	// Env is the environment implementation to use.
	// If nil, the host OS environment is used.
	Env env.Env

	// Logger is the logger for database operations.
	// If nil, a default logger writing to stderr is used.
	Logger Logger

	// WriteBufferSize is the size of a single memtable.
	// Default: 4MiB
	WriteBufferSize int

	// MaxOpenFiles is the maximum number of SST files to keep open.
	// Default: 1000
	MaxOpenFiles int

	// BlockCache caches uncompressed data blocks across reads.
	// If nil, no block cache is used.
	BlockCache Cache

	// BlockSize is the approximate size of data blocks within SST files.
	// Default: 4KiB
	BlockSize int

	// BlockRestartInterval is how often to create restart points in blocks.
	// Default: 16
	BlockRestartInterval int

	// MaxFileSize is the maximum size of an SST file produced by compaction.
	// Default: 2MiB
	MaxFileSize int

	// Compression specifies the compression algorithm for SST blocks.
	// Default: Snappy
	Compression CompressionType

	// ZstdCompressionLevel is the compression level used when Compression
	// is CompressionZstd. Default: 1
	ZstdCompressionLevel int

	// ReuseLogs allows reusing an existing WAL on reopen instead of
	// creating a new one. Default: false
	ReuseLogs bool

	// FilterPolicy builds a per-block filter (e.g. bloom) over user keys.
	// If nil, no filter is built.
	FilterPolicy FilterPolicy
}

// DefaultOptions returns a new Options with default values.
func DefaultOptions() *Options {
	return &Options{
		Comparator:           nil, // defaults to BytewiseComparator
		CreateIfMissing:      false,
		ErrorIfExists:        false,
		ParanoidChecks:       false,
		Env:                  nil, // defaults to env.Default()
		Logger:               nil,
		WriteBufferSize:      4 * 1024 * 1024, // 4MiB
		MaxOpenFiles:         1000,
		BlockCache:           nil,
		BlockSize:            4096,
		BlockRestartInterval: 16,
		MaxFileSize:          2 * 1024 * 1024, // 2MiB
		Compression:          CompressionSnappy,
		ZstdCompressionLevel: 1,
		ReuseLogs:            false,
		FilterPolicy:         nil,
	}
}

// ReadOptions contains options for read operations.
type ReadOptions struct {
	// VerifyChecksums enables checksum verification when reading.
	VerifyChecksums bool

	// FillCache indicates whether to fill the block cache on reads.
	FillCache bool

	// Snapshot provides a consistent view of the database.
	// If nil, the most recent state is used.
	Snapshot *Snapshot
}

// DefaultReadOptions returns ReadOptions with default values.
func DefaultReadOptions() *ReadOptions {
	return &ReadOptions{
		VerifyChecksums: false,
		FillCache:       true,
		Snapshot:        nil,
	}
}

// WriteOptions contains options for write operations.
type WriteOptions struct {
	// Sync causes writes to be flushed and fsynced before returning.
	// This provides the strongest durability guarantee but reduces throughput.
	Sync bool
}

// DefaultWriteOptions returns WriteOptions with default values.
func DefaultWriteOptions() *WriteOptions {
	return &WriteOptions{
		Sync: false,
	}
}
