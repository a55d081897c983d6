package decibel

import "golang.org/x/exp/constraints"

// PowerRatio is a linear power ratio, such as an energy or intensity ratio.
// It converts to decibels with the 10*log10 convention.
type PowerRatio[F constraints.Float] struct {
	value F
}

type (
	Power32 = PowerRatio[float32]
	Power64 = PowerRatio[float64]
)

// Power wraps v as a power ratio.
func Power[F constraints.Float](v F) PowerRatio[F] {
	return PowerRatio[F]{value: v}
}

// PowerValue returns the wrapped power ratio.
func (p PowerRatio[F]) PowerValue() F {
	return p.value
}

// Decibels converts p to decibels as 10*log10(p).
// Zero yields -Inf and negative values yield NaN.
func (p PowerRatio[F]) Decibels() DecibelRatio[F] {
	return DecibelRatio[F]{value: powerFactor * log10(p.value)}
}

// Power converts d to a linear power ratio as 10^(d/10).
func (d DecibelRatio[F]) Power() PowerRatio[F] {
	return PowerRatio[F]{value: pow10(d.value / powerFactor)}
}
