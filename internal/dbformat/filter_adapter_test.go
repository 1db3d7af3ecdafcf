package dbformat

import "testing"

type fakeFilterPolicy struct {
	added []string
}

func (f *fakeFilterPolicy) AddKey(key []byte) { f.added = append(f.added, string(key)) }
func (f *fakeFilterPolicy) Finish() []byte    { return []byte(nil) }

type fakeFilterReader struct {
	present map[string]bool
	queried []string
}

func (f *fakeFilterReader) MayContain(key []byte) bool {
	f.queried = append(f.queried, string(key))
	return f.present[string(key)]
}

func TestInternalFilterPolicyStripsTrailer(t *testing.T) {
	user := &fakeFilterPolicy{}
	adapter := NewInternalFilterPolicy(user)

	ik := NewInternalKey([]byte("hello"), 7, TypeValue)
	adapter.AddKey(ik)

	if len(user.added) != 1 || user.added[0] != "hello" {
		t.Fatalf("wrapped policy saw %v, want [hello]", user.added)
	}
}

func TestInternalFilterReaderStripsTrailer(t *testing.T) {
	user := &fakeFilterReader{present: map[string]bool{"hello": true}}
	reader := NewInternalFilterReader(user)

	ik := NewInternalKey([]byte("hello"), 7, TypeValue)
	if !reader.KeyMayMatch(ik) {
		t.Fatal("expected match for present user key")
	}
	if len(user.queried) != 1 || user.queried[0] != "hello" {
		t.Fatalf("wrapped reader queried %v, want [hello]", user.queried)
	}
}

func TestInternalFilterReaderNilUserAlwaysMatches(t *testing.T) {
	reader := NewInternalFilterReader(nil)
	ik := NewInternalKey([]byte("anything"), 1, TypeValue)
	if !reader.KeyMayMatch(ik) {
		t.Fatal("nil wrapped reader should always match")
	}
}
