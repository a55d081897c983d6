package testutil

import (
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// LogSpaced returns n ratios spaced evenly on a log scale from lo to hi,
// inclusive. lo and hi must be positive.
func LogSpaced[F constraints.Float](lo, hi float64, n int) []F {
	if n <= 0 {
		return nil
	}
	out := make([]F, n)
	if n == 1 {
		out[0] = F(lo)
		return out
	}
	logLo, logHi := math.Log10(lo), math.Log10(hi)
	step := (logHi - logLo) / float64(n-1)
	for i := range out {
		out[i] = F(math.Pow(10, logLo+step*float64(i)))
	}
	out[n-1] = F(hi)
	return out
}

// DeterministicRatios returns n positive ratios drawn log-uniformly from
// [lo, hi) with a fixed seed for reproducibility.
func DeterministicRatios[F constraints.Float](seed int64, lo, hi float64, n int) []F {
	out := make([]F, n)
	rng := rand.New(rand.NewSource(seed))
	logLo, logHi := math.Log10(lo), math.Log10(hi)
	for i := range out {
		out[i] = F(math.Pow(10, logLo+rng.Float64()*(logHi-logLo)))
	}
	return out
}
