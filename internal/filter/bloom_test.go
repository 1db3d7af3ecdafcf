package filter

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestBloomFilterBasic(t *testing.T) {
	builder := NewBloomFilterBuilder(10) // 10 bits per key

	keys := [][]byte{
		[]byte("key1"),
		[]byte("key2"),
		[]byte("key3"),
		[]byte("hello"),
		[]byte("world"),
	}

	for _, key := range keys {
		builder.AddKey(key)
	}

	data := builder.Finish()
	if len(data) < 2 {
		t.Fatalf("filter data too short: %d bytes", len(data))
	}

	probes := int(data[len(data)-1])
	if probes < 1 || probes > 30 {
		t.Errorf("unexpected probe count: %d", probes)
	}
	t.Logf("Filter: %d bytes, %d probes", len(data), probes)

	reader := NewBloomFilterReader(data)
	if reader == nil {
		t.Fatal("failed to create reader")
	}

	for _, key := range keys {
		if !reader.MayContain(key) {
			t.Errorf("key %q should be in filter", key)
		}
	}

	notAddedKeys := [][]byte{
		[]byte("notkey1"),
		[]byte("notkey2"),
		[]byte("missing"),
		[]byte("absent"),
	}

	falsePositives := 0
	for _, key := range notAddedKeys {
		if reader.MayContain(key) {
			falsePositives++
		}
	}
	if falsePositives > 2 {
		t.Logf("Warning: %d false positives in %d tests", falsePositives, len(notAddedKeys))
	}
}

func TestBloomFilterEmpty(t *testing.T) {
	builder := NewBloomFilterBuilder(10)

	data := builder.Finish()
	reader := NewBloomFilterReader(data)
	if reader == nil {
		t.Fatal("failed to create reader for empty filter")
	}

	if reader.MayContain([]byte("anything")) {
		t.Error("empty filter should not match any key")
	}
}

func TestBloomFilterFalsePositiveRate(t *testing.T) {
	testCases := []struct {
		bitsPerKey int
		maxFPRate  float64
	}{
		{10, 0.02},  // ~1% expected, allow 2%
		{15, 0.005}, // ~0.1% expected, allow 0.5%
		{5, 0.2},    // ~10-18% expected, allow 20%
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("bits=%d", tc.bitsPerKey), func(t *testing.T) {
			builder := NewBloomFilterBuilder(tc.bitsPerKey)

			numKeys := 10000
			for i := 0; i < numKeys; i++ {
				key := fmt.Sprintf("key%08d", i)
				builder.AddKey([]byte(key))
			}

			data := builder.Finish()
			reader := NewBloomFilterReader(data)
			if reader == nil {
				t.Fatal("failed to create reader")
			}

			for i := 0; i < numKeys; i++ {
				key := fmt.Sprintf("key%08d", i)
				if !reader.MayContain([]byte(key)) {
					t.Fatalf("key %q should be in filter", key)
				}
			}

			numTests := 100000
			falsePositives := 0
			for i := 0; i < numTests; i++ {
				key := fmt.Sprintf("notkey%08d", i)
				if reader.MayContain([]byte(key)) {
					falsePositives++
				}
			}

			fpRate := float64(falsePositives) / float64(numTests)
			t.Logf("bits_per_key=%d: FP rate = %.4f%% (%d/%d)",
				tc.bitsPerKey, fpRate*100, falsePositives, numTests)

			if fpRate > tc.maxFPRate {
				t.Errorf("FP rate %.4f exceeds max %.4f", fpRate, tc.maxFPRate)
			}
		})
	}
}

func TestBloomFilterLargeKeys(t *testing.T) {
	builder := NewBloomFilterBuilder(10)

	sizes := []int{1, 10, 100, 1000, 10000}
	keys := make([][]byte, len(sizes))

	for i, size := range sizes {
		keys[i] = make([]byte, size)
		rand.Read(keys[i])
		builder.AddKey(keys[i])
	}

	data := builder.Finish()
	reader := NewBloomFilterReader(data)
	if reader == nil {
		t.Fatal("failed to create reader")
	}

	for i, key := range keys {
		if !reader.MayContain(key) {
			t.Errorf("large key (size %d) should be in filter", sizes[i])
		}
	}
}

func TestBloomFilterManyKeys(t *testing.T) {
	builder := NewBloomFilterBuilder(10)

	numKeys := 100000
	for i := 0; i < numKeys; i++ {
		key := fmt.Sprintf("key%08d", i)
		builder.AddKey([]byte(key))
	}

	data := builder.Finish()
	t.Logf("Filter for %d keys: %d bytes (%.2f bits/key)",
		numKeys, len(data), float64(len(data)*8)/float64(numKeys))

	reader := NewBloomFilterReader(data)
	if reader == nil {
		t.Fatal("failed to create reader")
	}

	for i := 0; i < numKeys; i += 1000 {
		key := fmt.Sprintf("key%08d", i)
		if !reader.MayContain([]byte(key)) {
			t.Errorf("key %q should be in filter", key)
		}
	}
}

func TestBloomFilterReaderInvalidData(t *testing.T) {
	if NewBloomFilterReader(nil) != nil {
		t.Error("should reject empty data")
	}

	// Probe count beyond the reserved range is treated as an unknown future
	// encoding and always matches.
	r := NewBloomFilterReader([]byte{0x00, 31})
	if r == nil || !r.MayContain([]byte("anything")) {
		t.Error("reserved probe count should always-match")
	}
}

func TestNumProbes(t *testing.T) {
	cases := []struct {
		bitsPerKey int
		want       int
	}{
		{1, 1},
		{10, 6},
		{30, 20},
		{100, 30},
	}
	for _, c := range cases {
		if got := numProbes(c.bitsPerKey); got != c.want {
			t.Errorf("numProbes(%d) = %d, want %d", c.bitsPerKey, got, c.want)
		}
	}
}

func TestBloomFilterBuilderReset(t *testing.T) {
	builder := NewBloomFilterBuilder(10)

	builder.AddKey([]byte("key1"))
	builder.AddKey([]byte("key2"))
	if builder.NumKeys() != 2 {
		t.Errorf("expected 2 keys, got %d", builder.NumKeys())
	}

	builder.Reset()
	if builder.NumKeys() != 0 {
		t.Errorf("expected 0 keys after reset, got %d", builder.NumKeys())
	}

	builder.AddKey([]byte("key3"))
	if builder.NumKeys() != 1 {
		t.Errorf("expected 1 key, got %d", builder.NumKeys())
	}
}

func BenchmarkBloomFilterAdd(b *testing.B) {
	builder := NewBloomFilterBuilder(10)
	key := []byte("benchmark-key-0123456789")

	for i := 0; i < b.N; i++ {
		builder.AddKey(key)
	}
}

func BenchmarkBloomFilterBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		builder := NewBloomFilterBuilder(10)
		for j := 0; j < 10000; j++ {
			key := fmt.Sprintf("key%08d", j)
			builder.AddKey([]byte(key))
		}
		builder.Finish()
	}
}

func BenchmarkBloomFilterQuery(b *testing.B) {
	builder := NewBloomFilterBuilder(10)
	for i := 0; i < 10000; i++ {
		key := fmt.Sprintf("key%08d", i)
		builder.AddKey([]byte(key))
	}
	data := builder.Finish()
	reader := NewBloomFilterReader(data)

	key := []byte("query-key-0123456789")

	for i := 0; i < b.N; i++ {
		reader.MayContain(key)
	}
}
