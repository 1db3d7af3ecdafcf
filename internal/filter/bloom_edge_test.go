package filter

import (
	"testing"
)

// TestBloomFilterBuilderEdgeCases tests edge cases for BloomFilterBuilder.
func TestBloomFilterBuilderEdgeCases(t *testing.T) {
	b := NewBloomFilterBuilder(0)
	if b == nil {
		t.Fatal("expected non-nil builder with bitsPerKey=0")
	}
	b.AddKey([]byte("test"))
	data := b.Finish()
	if len(data) == 0 {
		t.Error("expected non-empty filter data")
	}

	b2 := NewBloomFilterBuilder(-5)
	if b2 == nil {
		t.Fatal("expected non-nil builder with negative bitsPerKey")
	}
}

// TestBloomFilterEstimatedSize tests EstimatedSize method.
func TestBloomFilterEstimatedSize(t *testing.T) {
	b := NewBloomFilterBuilder(10)

	if size := b.EstimatedSize(); size != 0 {
		t.Errorf("empty filter EstimatedSize = %d, want 0", size)
	}

	b.AddKey([]byte("key1"))
	size1 := b.EstimatedSize()
	if size1 == 0 {
		t.Error("EstimatedSize should be > 0 after adding key")
	}

	for i := 0; i < 500; i++ {
		b.AddKey([]byte{byte(i), byte(i >> 8)})
	}
	sizeMany := b.EstimatedSize()
	if sizeMany < size1 {
		t.Errorf("EstimatedSize should increase with more keys: %d < %d", sizeMany, size1)
	}
}

// TestBloomFilterReaderReservedProbeCount checks the forward-compatibility
// path for probe counts this reader version doesn't understand.
func TestBloomFilterReaderReservedProbeCount(t *testing.T) {
	r := NewBloomFilterReader([]byte{0xAB, 0xCD, 31})
	if r == nil {
		t.Fatal("expected non-nil reader for reserved probe count")
	}
	if !r.MayContain([]byte("anything")) {
		t.Error("reserved probe count should always-match, never false-negative")
	}
}

// TestBloomFilterReaderZeroProbes is the always-false filter (k == 0).
func TestBloomFilterReaderZeroProbes(t *testing.T) {
	r := NewBloomFilterReader([]byte{0x00, 0x00, 0})
	if r == nil {
		t.Fatal("expected non-nil reader for zero-probe filter")
	}
	if r.MayContain([]byte("test")) {
		t.Error("zero-probe filter should return false")
	}
}

// TestBloomFilterReaderNilReceiver tests MayContain on a nil receiver.
func TestBloomFilterReaderNilReceiver(t *testing.T) {
	var r *BloomFilterReader
	if r.MayContain([]byte("test")) {
		t.Error("nil reader should return false for MayContain")
	}
}

func TestBloomFilterReaderShortData(t *testing.T) {
	if NewBloomFilterReader(nil) != nil {
		t.Error("expected nil reader for empty data")
	}
}
