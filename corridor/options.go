package corridor

import (
	"github.com/katalvlaran/tacmap/prng"
)

// Option customizes a Generator before construction completes.
// Option constructors validate and panic on meaningless inputs; Generator
// methods themselves never panic.
type Option func(*Generator)

// WithRand injects an explicit PRNG, typically one shared with the placement
// solver so the whole pass consumes a single draw sequence. Panics on nil.
func WithRand(r *prng.LCG) Option {
	if r == nil {
		panic("corridor: WithRand(nil)")
	}

	return func(g *Generator) {
		g.rng = r
	}
}

// WithSeed constructs a fresh seeded PRNG for this generator.
// Use it in tests and examples to lock outcomes.
func WithSeed(seed uint32) Option {
	return func(g *Generator) {
		g.rng = prng.New(seed)
	}
}
