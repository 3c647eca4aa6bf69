package prng

// LCG parameters (Numerical Recipes); the modulus 2^32 is implicit in the
// uint32 wrap-around.
const (
	multiplier = 1664525
	increment  = 1013904223
)

// floatScale converts a raw 32-bit draw into [0,1): 1/2^32.
const floatScale = 1.0 / (1 << 32)

// LCG is a 32-bit linear congruential generator. It remembers the seed it
// was constructed with so a sequence can be replayed via Reset.
// LCG is not safe for concurrent use; a generation pass owns its source.
type LCG struct {
	seed  uint32 // initial seed, reported by Seed
	state uint32
}

// New returns an LCG initialized with seed.
func New(seed uint32) *LCG {
	return &LCG{seed: seed, state: seed}
}

// Next advances the generator and returns the raw 32-bit state.
func (r *LCG) Next() uint32 {
	r.state = r.state*multiplier + increment
	return r.state
}

// Float64 returns the next draw scaled into [0,1).
func (r *LCG) Float64() float64 {
	return float64(r.Next()) * floatScale
}

// Intn returns the next draw scaled into [0,max).
// For max ≤ 1 it returns 0 without consuming a draw.
func (r *LCG) Intn(max int) int {
	if max <= 1 {
		return 0
	}

	return int(r.Float64() * float64(max))
}

// Reset rewinds the generator to its initial seed, replaying the sequence.
func (r *LCG) Reset() {
	r.state = r.seed
}

// Reseed replaces both the stored initial seed and the current state.
func (r *LCG) Reseed(seed uint32) {
	r.seed, r.state = seed, seed
}

// Seed returns the initial seed (the one Reset rewinds to).
func (r *LCG) Seed() uint32 {
	return r.seed
}
