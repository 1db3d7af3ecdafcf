/*
Package ldbcore provides the foundation layer of a LevelDB/RocksDB-style
embedded key/value storage engine: byte-view helpers, a status type, the
varint/fixed-width codec, comparators, the internal-key layer, a
concurrent arena-backed skiplist, and the environment abstraction that the
rest of such an engine (WAL, memtables, SSTables, compaction, the DB
façade) is built on top of.

This package does not implement a full database. The write path (WAL,
memtable), the read path (SSTable readers, table cache), compaction, and
the DB façade itself are collaborators layered on top of this foundation
and are out of scope here; only the hooks they need — comparator,
internal-key format, filter-policy adapter, lookup key, skiplist,
arena, environment, options — live in this module.

# Concurrency

Comparator, codec, status, random, hash, and the arena are synchronous,
non-blocking value or near-value types with no hidden shared state. The
skiplist supports one writer concurrent with many readers; see its
package documentation for the memory-ordering contract. The environment's
file and directory operations may block on I/O.

# Layout

The root package holds the byte-view primitive (Slice), the comparator,
and the configuration surface (Options / ReadOptions / WriteOptions).
Everything else lives under
internal/: status, encoding (the codec), dbformat (internal keys, the
filter-policy adapter, lookup keys), filter (bloom filter), hash,
random, arena, memtable (the skiplist), env (the environment
abstraction), compression, logging.
*/
package ldbcore
