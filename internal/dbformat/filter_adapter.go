package dbformat

// FilterPolicy is a user-supplied filter over user keys only — it never
// sees the sequence/type trailer. The bloom filter in internal/filter
// implements this shape.
type FilterPolicy interface {
	AddKey(key []byte)
	Finish() []byte
}

// FilterReader queries a built filter for user-key membership.
type FilterReader interface {
	MayContain(key []byte) bool
}

// InternalFilterPolicy adapts a user FilterPolicy to internal keys: it
// strips the 8-byte trailer before forwarding to the wrapped policy, so the
// wrapped filter only ever observes user keys, even though the caller (a
// block builder) has internal keys in hand.
type InternalFilterPolicy struct {
	user FilterPolicy
}

// NewInternalFilterPolicy wraps a user filter policy.
func NewInternalFilterPolicy(user FilterPolicy) *InternalFilterPolicy {
	return &InternalFilterPolicy{user: user}
}

// AddKey strips the trailer from an internal key and forwards the user key
// to the wrapped policy. The user key is a prefix of, and shares storage
// with, the internal key, so no copy is made.
func (p *InternalFilterPolicy) AddKey(internalKey []byte) {
	p.user.AddKey(ExtractUserKey(internalKey))
}

// Finish builds the filter via the wrapped policy.
func (p *InternalFilterPolicy) Finish() []byte {
	return p.user.Finish()
}

// InternalFilterReader adapts a FilterReader the same way
// InternalFilterPolicy adapts a FilterPolicy: key_may_match strips the
// trailer before delegating.
type InternalFilterReader struct {
	user FilterReader
}

// NewInternalFilterReader wraps a user filter reader.
func NewInternalFilterReader(user FilterReader) *InternalFilterReader {
	return &InternalFilterReader{user: user}
}

// KeyMayMatch strips the trailer from internalKey and delegates.
func (r *InternalFilterReader) KeyMayMatch(internalKey []byte) bool {
	if r.user == nil {
		return true
	}
	return r.user.MayContain(ExtractUserKey(internalKey))
}
