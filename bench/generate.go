package bench

import "math/rand"

// Positions lays one station per slot with uniform jitter:
// position_i = (i + U)/(n+1) * dest for i in 1..n. Slots are disjoint, so the
// result is strictly increasing and every gap, bounds included, stays below
// twice the mean spacing. Any capacity above 2*dest/(n+1) keeps the instance
// feasible.
func Positions(rng *rand.Rand, n int, dest float64) []float64 {
	out := make([]float64, n)
	for i := 1; i <= n; i++ {
		out[i-1] = (float64(i) + rng.Float64()) / float64(n+1) * dest
	}
	return out
}

// Shuffled returns a shuffled copy of xs.
func Shuffled(rng *rand.Rand, xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
