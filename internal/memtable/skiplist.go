// Package memtable implements the concurrent skiplist backing the
// in-memory sorted write buffer: lock-free reads, a single writer, keys
// that are arena-allocated and never individually freed.
//
// Reference: classic LevelDB/RocksDB skiplist (db/skiplist.h): one writer,
// many readers, release/acquire at the per-level link.
package memtable

import (
	"bytes"
	"sync/atomic"

	"github.com/kvdb-project/ldbcore/internal/arena"
	"github.com/kvdb-project/ldbcore/internal/random"
)

const (
	// DefaultMaxHeight is the default maximum height for skip list nodes.
	DefaultMaxHeight = 12

	// DefaultBranchingFactor is the default branching factor.
	// On average, 1/branchingFactor nodes will be promoted to next level.
	DefaultBranchingFactor = 4
)

// Comparator compares two keys and returns:
//   - negative if a < b
//   - zero if a == b
//   - positive if a > b
type Comparator func(a, b []byte) int

// BytewiseComparator is the default comparator using bytes.Compare.
func BytewiseComparator(a, b []byte) int {
	return bytes.Compare(a, b)
}

// skipNode holds a key and its per-level forward pointers. The key bytes
// live in the arena: they carry no pointers, so a raw bump-pointer arena
// can back them safely and the arena's memory_usage() tracks exactly what
// the skiplist has retained. The node struct and its forward-pointer array
// stay on the Go heap, since atomic.Pointer fields must remain visible to
// the garbage collector — a raw byte arena cannot host them the way the
// C++ original placement-constructs a node's flexible array directly into
// arena storage.
type skipNode struct {
	key  []byte
	next []atomic.Pointer[skipNode]
}

func newSkipNode(a *arena.Arena, key []byte, height int) *skipNode {
	var keyCopy []byte
	if key != nil {
		keyCopy = a.Allocate(len(key))
		copy(keyCopy, key)
	}
	return &skipNode{
		key:  keyCopy,
		next: make([]atomic.Pointer[skipNode], height),
	}
}

// getNext returns the next node at the given level. Paired with setNext as
// the acquire half of the publication protocol: a reader that observes a
// non-nil result here also observes every byte of that node written
// before setNext published it.
func (n *skipNode) getNext(level int) *skipNode {
	return n.next[level].Load()
}

// setNext is the release half of the publication protocol described on
// getNext.
func (n *skipNode) setNext(level int, next *skipNode) {
	n.next[level].Store(next)
}

// SkipList is a lock-free (for reads) skip list implementation.
// Writes require external synchronization.
type SkipList struct {
	arena     *arena.Arena
	head      *skipNode
	maxHeight atomic.Int32
	compare   Comparator
	rnd       *random.Source

	kMaxHeight  int
	kBranching  int
	kScaledInvB uint32 // (random.MaxNext+1)/kBranching: Next() < this with probability 1/kBranching

	count atomic.Int64
}

// NewSkipList creates a new skip list with the given comparator, backed by
// a fresh arena that owns all of its key storage.
func NewSkipList(cmp Comparator) *SkipList {
	return NewSkipListWithParams(cmp, DefaultMaxHeight, DefaultBranchingFactor)
}

// NewSkipListWithParams creates a new skip list with custom parameters.
func NewSkipListWithParams(cmp Comparator, maxHeight, branchingFactor int) *SkipList {
	if cmp == nil {
		cmp = BytewiseComparator
	}
	if maxHeight <= 0 {
		maxHeight = DefaultMaxHeight
	}
	if branchingFactor <= 0 {
		branchingFactor = DefaultBranchingFactor
	}

	a := arena.New()
	sl := &SkipList{
		arena:       a,
		head:        newSkipNode(a, nil, maxHeight),
		compare:     cmp,
		rnd:         random.New(0xdeadbeef),
		kMaxHeight:  maxHeight,
		kBranching:  branchingFactor,
		kScaledInvB: uint32((uint64(random.MaxNext) + 1) / uint64(branchingFactor)),
	}
	sl.maxHeight.Store(1)
	return sl
}

// MemoryUsage returns the skiplist's arena-backed memory usage, i.e. the
// bytes retained for key storage.
func (sl *SkipList) MemoryUsage() uint64 {
	return sl.arena.MemoryUsage()
}

// Insert adds a key to the skip list.
// REQUIRES: external synchronization (a single writer at a time).
// REQUIRES: nothing equal to key is currently in the list. The engine
// layered on top never legitimately double-inserts — memtable keys carry
// unique sequence numbers — so a duplicate here is a programming error
// and panics rather than returning a status.
func (sl *SkipList) Insert(key []byte) {
	prev := make([]*skipNode, sl.kMaxHeight)
	x := sl.findGreaterOrEqual(key, prev)

	if x != nil && sl.compare(key, x.key) == 0 {
		panic("memtable: duplicate key inserted into skiplist")
	}

	height := sl.randomHeight()

	maxH := int(sl.maxHeight.Load())
	if height > maxH {
		for i := maxH; i < height; i++ {
			prev[i] = sl.head
		}
		sl.maxHeight.Store(int32(height))
	}

	node := newSkipNode(sl.arena, key, height)

	for i := 0; i < height; i++ {
		node.setNext(i, prev[i].getNext(i))
		prev[i].setNext(i, node)
	}

	sl.count.Add(1)
}

// Contains returns true if the key is in the skip list.
func (sl *SkipList) Contains(key []byte) bool {
	x := sl.findGreaterOrEqual(key, nil)
	return x != nil && sl.compare(key, x.key) == 0
}

// Count returns the number of entries in the skip list.
func (sl *SkipList) Count() int64 {
	return sl.count.Load()
}

// findGreaterOrEqual finds the first node with key >= given key.
// If prev is not nil, fills in prev[level] with the predecessor at each level.
func (sl *SkipList) findGreaterOrEqual(key []byte, prev []*skipNode) *skipNode {
	x := sl.head
	level := int(sl.maxHeight.Load()) - 1

	for {
		next := x.getNext(level)
		if next != nil && sl.compare(key, next.key) > 0 {
			x = next
		} else {
			if prev != nil {
				prev[level] = x
			}
			if level == 0 {
				return next
			}
			level--
		}
	}
}

// findLessThan returns the last node with key < given key.
// Returns nil if no such node exists (key is smaller than all keys).
func (sl *SkipList) findLessThan(key []byte) *skipNode {
	x := sl.head
	level := int(sl.maxHeight.Load()) - 1

	for {
		next := x.getNext(level)
		if next != nil && sl.compare(next.key, key) < 0 {
			x = next
		} else {
			if level == 0 {
				if x == sl.head {
					return nil
				}
				return x
			}
			level--
		}
	}
}

// findLast returns the last node in the list.
// Returns nil if the list is empty.
func (sl *SkipList) findLast() *skipNode {
	x := sl.head
	level := int(sl.maxHeight.Load()) - 1

	for {
		next := x.getNext(level)
		if next != nil {
			x = next
		} else {
			if level == 0 {
				if x == sl.head {
					return nil
				}
				return x
			}
			level--
		}
	}
}

// randomHeight samples a node height from a geometric distribution with
// the configured branching factor, via the Park-Miller source so height
// sampling is reproducible across platforms.
func (sl *SkipList) randomHeight() int {
	height := 1
	for height < sl.kMaxHeight && sl.rnd.Next() < sl.kScaledInvB {
		height++
	}
	return height
}

// Iterator provides iteration over the skip list.
type Iterator struct {
	list *SkipList
	node *skipNode
}

// NewIterator creates a new iterator over the skip list.
// The iterator is not valid until a Seek method is called.
func (sl *SkipList) NewIterator() *Iterator {
	return &Iterator{list: sl}
}

// Valid returns true if the iterator is positioned at a valid node.
func (it *Iterator) Valid() bool {
	return it.node != nil
}

// Key returns the key at the current position.
// REQUIRES: Valid()
func (it *Iterator) Key() []byte {
	if it.node == nil {
		return nil
	}
	return it.node.key
}

// Next advances to the next position.
// REQUIRES: Valid()
func (it *Iterator) Next() {
	if it.node == nil {
		return
	}
	it.node = it.node.getNext(0)
}

// Prev moves to the previous position.
// REQUIRES: Valid()
func (it *Iterator) Prev() {
	if it.node == nil {
		return
	}
	it.node = it.list.findLessThan(it.node.key)
}

// Seek positions the iterator at the first entry with key >= target.
func (it *Iterator) Seek(target []byte) {
	it.node = it.list.findGreaterOrEqual(target, nil)
}

// SeekForPrev positions the iterator at the last entry with key <= target.
func (it *Iterator) SeekForPrev(target []byte) {
	it.Seek(target)
	if !it.Valid() {
		it.SeekToLast()
	} else if it.list.compare(it.node.key, target) > 0 {
		it.Prev()
	}
}

// SeekToFirst positions the iterator at the first entry.
func (it *Iterator) SeekToFirst() {
	it.node = it.list.head.getNext(0)
}

// SeekToLast positions the iterator at the last entry.
func (it *Iterator) SeekToLast() {
	it.node = it.list.findLast()
}
