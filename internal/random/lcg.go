// Package random provides the deterministic pseudo-random source the
// skiplist uses for height sampling. It is a 31-bit Park-Miller minimal
// standard generator, chosen for reproducibility across platforms rather
// than statistical strength — the skiplist only needs a cheap, uniform
// source for its geometric height distribution.
package random

// modulus is 2^31 - 1, the Mersenne prime the generator operates modulo.
const modulus = 2147483647 // 2^31 - 1
const multiplier = 16807

// MaxNext bounds the generator's output: Next returns values in
// [1, MaxNext-1]. Callers that derive a threshold probability from the
// output range (the skiplist's scaled inverse branching factor) scale
// against MaxNext+1 rather than the full uint32 range.
const MaxNext = modulus

// Source is a Park-Miller linear congruential generator.
// Not safe for concurrent use; callers that need concurrent height sampling
// (e.g. multiple skiplist instances) should each own a Source.
type Source struct {
	seed uint32
}

// New creates a Source from a caller-supplied seed. Seed values of 0 and
// 2^31-1 are coerced to 1, since those two values are fixed points of the
// generator and would otherwise never advance.
func New(seed uint32) *Source {
	s := seed % modulus
	if s == 0 {
		s = 1
	}
	return &Source{seed: s}
}

// Next advances the generator and returns the new seed via
// (seed * 16807) mod (2^31 - 1), computed with the 46-bit product/fold
// trick so the whole operation stays within uint64 range without requiring
// a 64-bit division on the hot path.
func (s *Source) Next() uint32 {
	// product = seed * 16807 fits in 46 bits, so it cannot overflow; rather
	// than Schrage's q*multiplier + r split, fold its high and low parts.
	product := uint64(s.seed) * multiplier

	// product mod (2^31 - 1): fold the bits above bit 31 back into the
	// bottom 31, since 2^31 ≡ 1 (mod 2^31 - 1).
	lo := uint32(product & modulus)
	hi := uint32(product >> 31)
	result := lo + hi
	if result > modulus {
		result -= modulus
	}
	s.seed = result
	return result
}

// Uniform returns a pseudo-random value in [0, n).
func (s *Source) Uniform(n uint32) uint32 {
	return s.Next() % n
}

// OneIn returns true with probability 1/n.
func (s *Source) OneIn(n uint32) bool {
	return s.Next()%n == 0
}

// Seed returns the generator's current internal seed.
func (s *Source) Seed() uint32 {
	return s.seed
}
