package encoding

import "testing"

func TestCursorAdvanceSkipsWithoutDecoding(t *testing.T) {
	cur := NewSlice([]byte("hello world"))
	cur.Advance(6)
	if got := string(cur.Data()); got != "world" {
		t.Errorf("Data() after Advance(6) = %q, want %q", got, "world")
	}
	if r := cur.Remaining(); r != len("world") {
		t.Errorf("Remaining() = %d, want %d", r, len("world"))
	}
}

func TestCursorGetBytes(t *testing.T) {
	cur := NewSlice([]byte("hello world"))

	head, ok := cur.GetBytes(5)
	if !ok || string(head) != "hello" {
		t.Fatalf("GetBytes(5) = %q, %v, want %q, true", head, ok, "hello")
	}
	if _, ok := cur.GetBytes(1000); ok {
		t.Error("GetBytes beyond the remaining length should fail")
	}
}

// TestCursorGetMethodsFailCleanlyOnExhaustion checks that every Get*
// method on an empty cursor reports failure rather than panicking or
// silently returning a zero value as success.
func TestCursorGetMethodsFailCleanlyOnExhaustion(t *testing.T) {
	cur := NewSlice(nil)

	checks := map[string]bool{
		"GetFixed16":             func() bool { _, ok := cur.GetFixed16(); return ok }(),
		"GetFixed32":             func() bool { _, ok := cur.GetFixed32(); return ok }(),
		"GetFixed64":             func() bool { _, ok := cur.GetFixed64(); return ok }(),
		"GetVarint32":            func() bool { _, ok := cur.GetVarint32(); return ok }(),
		"GetVarint64":            func() bool { _, ok := cur.GetVarint64(); return ok }(),
		"GetVarsignedint64":      func() bool { _, ok := cur.GetVarsignedint64(); return ok }(),
		"GetLengthPrefixedSlice": func() bool { _, ok := cur.GetLengthPrefixedSlice(); return ok }(),
	}
	for name, ok := range checks {
		if ok {
			t.Errorf("%s on an empty cursor reported success", name)
		}
	}
}

func TestPutVarint64MatchesDecodeVarint64(t *testing.T) {
	buf := make([]byte, MaxVarint64Length)
	for _, v := range []uint64{
		0, 127, 128, 16383, 16384,
		1<<21 - 1, 1 << 21, 1<<28 - 1, 1 << 28,
		1<<35 - 1, 1 << 35, 1<<63 - 1,
	} {
		n := PutVarint64(buf, v)
		if n <= 0 {
			t.Fatalf("PutVarint64(%d) returned %d, want > 0", v, n)
		}
		decoded, read, err := DecodeVarint64(buf[:n])
		if err != nil {
			t.Fatalf("DecodeVarint64 after PutVarint64(%d) failed: %v", v, err)
		}
		if decoded != v || read != n {
			t.Errorf("PutVarint64(%d): decode produced (%d, %d)", v, decoded, read)
		}
	}
}

func TestCursorReadsNegativeVarsignedint64(t *testing.T) {
	const negative = int64(-1234567)
	encoded := AppendVarsignedint64(nil, negative)
	cur := NewSlice(encoded)
	v, ok := cur.GetVarsignedint64()
	if !ok || v != negative {
		t.Fatalf("GetVarsignedint64() = %d, %v, want %d, true", v, ok, negative)
	}
	if cur.Remaining() != 0 {
		t.Errorf("Remaining() = %d after consuming the only field, want 0", cur.Remaining())
	}
}

func TestDecodeVarsignedint64OnEmptyInput(t *testing.T) {
	_, n, err := DecodeVarsignedint64(nil)
	if err == nil {
		t.Error("DecodeVarsignedint64(nil) should return an error")
	}
	if n != 0 {
		t.Errorf("DecodeVarsignedint64(nil) consumed %d bytes, want 0", n)
	}
}
