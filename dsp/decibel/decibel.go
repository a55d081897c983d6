package decibel

import "golang.org/x/exp/constraints"

const (
	// amplitudeFactor is the dB scale for field quantities (20*log10).
	amplitudeFactor = 20
	// powerFactor is the dB scale for power quantities (10*log10).
	powerFactor = 10
)

// AmplitudeRatio is a linear amplitude ratio.
type AmplitudeRatio[F constraints.Float] struct {
	value F
}

// DecibelRatio is a logarithmic ratio in decibels.
type DecibelRatio[F constraints.Float] struct {
	value F
}

// Precision-specific names for call sites that don't need the generic form.
type (
	Amplitude32 = AmplitudeRatio[float32]
	Amplitude64 = AmplitudeRatio[float64]
	Decibel32   = DecibelRatio[float32]
	Decibel64   = DecibelRatio[float64]
)

// Amplitude wraps v as an amplitude ratio. Any value is accepted, including
// zero and negative values.
func Amplitude[F constraints.Float](v F) AmplitudeRatio[F] {
	return AmplitudeRatio[F]{value: v}
}

// Decibel wraps v as a decibel ratio.
func Decibel[F constraints.Float](v F) DecibelRatio[F] {
	return DecibelRatio[F]{value: v}
}

// AmplitudeValue returns the wrapped amplitude.
func (a AmplitudeRatio[F]) AmplitudeValue() F {
	return a.value
}

// DecibelValue returns the wrapped decibel value.
func (d DecibelRatio[F]) DecibelValue() F {
	return d.value
}

// Decibels converts a to decibels as 20*log10(a).
// For amplitudes normalized to full scale the result is in dBFS.
// Zero yields -Inf and negative amplitudes yield NaN.
func (a AmplitudeRatio[F]) Decibels() DecibelRatio[F] {
	return DecibelRatio[F]{value: amplitudeFactor * log10(a.value)}
}

// Amplitude converts d to a linear amplitude as 10^(d/20).
// -Inf yields 0 and +Inf yields +Inf.
func (d DecibelRatio[F]) Amplitude() AmplitudeRatio[F] {
	return AmplitudeRatio[F]{value: pow10(d.value / amplitudeFactor)}
}

// AmplitudeToDecibel is the function form of AmplitudeRatio.Decibels.
func AmplitudeToDecibel[F constraints.Float](a AmplitudeRatio[F]) DecibelRatio[F] {
	return a.Decibels()
}

// DecibelToAmplitude is the function form of DecibelRatio.Amplitude.
func DecibelToAmplitude[F constraints.Float](d DecibelRatio[F]) AmplitudeRatio[F] {
	return d.Amplitude()
}
