package prng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tacmap/prng"
)

// TestLCG_KnownSequence pins the exact draw sequence for two seeds so any
// change to the recurrence is caught immediately; downstream consumers rely
// on these being stable across releases.
func TestLCG_KnownSequence(t *testing.T) {
	cases := []struct {
		name string
		seed uint32
		want []uint32
	}{
		{"Seed12345", 12345, []uint32{87628868, 71072467, 2332836374, 2726892157, 3908547000}},
		{"Seed0", 0, []uint32{1013904223, 1196435762, 3519870697}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := prng.New(tc.seed)
			for i, want := range tc.want {
				require.Equal(t, want, r.Next(), "draw %d", i)
			}
		})
	}
}

// TestLCG_Determinism verifies two independent instances with the same seed
// emit identical sequences.
func TestLCG_Determinism(t *testing.T) {
	a, b := prng.New(987654321), prng.New(987654321)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}

// TestLCG_IntnSmallMax checks the max ≤ 1 guard: always 0, state untouched.
func TestLCG_IntnSmallMax(t *testing.T) {
	r := prng.New(7)
	for _, max := range []int{1, 0, -5} {
		assert.Equal(t, 0, r.Intn(max), "Intn(%d)", max)
	}
	// The guarded calls must not have consumed draws.
	assert.Equal(t, prng.New(7).Next(), r.Next())
}

// TestLCG_IntnRange pins the first bounded draws for seed 42 and checks the
// half-open range over a longer run.
func TestLCG_IntnRange(t *testing.T) {
	r := prng.New(42)
	want := []int{2, 0, 5, 2, 3, 0}
	for i, w := range want {
		require.Equal(t, w, r.Intn(10), "draw %d", i)
	}
	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

// TestLCG_Float64Range verifies Float64 stays in [0,1).
func TestLCG_Float64Range(t *testing.T) {
	r := prng.New(2026)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

// TestLCG_ResetAndReseed covers sequence replay and seed replacement.
func TestLCG_ResetAndReseed(t *testing.T) {
	r := prng.New(12345)
	first := []uint32{r.Next(), r.Next(), r.Next()}

	r.Reset()
	for i, want := range first {
		require.Equal(t, want, r.Next(), "replayed draw %d", i)
	}

	r.Reseed(7)
	assert.Equal(t, uint32(7), r.Seed())
	fresh := prng.New(7)
	for i := 0; i < 10; i++ {
		require.Equal(t, fresh.Next(), r.Next(), "reseeded draw %d", i)
	}
}
