// Package decibel converts between linear ratios and decibels.
//
// Values are carried in small nominal wrapper types so that a linear
// amplitude can never be passed where a decibel value is expected, or the
// other way round:
//
//   - AmplitudeRatio: a linear amplitude ratio, e.g. a sample relative to
//     full scale or a gain multiplier
//   - PowerRatio: a linear power (energy) ratio
//   - DecibelRatio: a logarithmic ratio in dB
//
// Amplitudes use the 20*log10 convention and powers the 10*log10 convention.
// For amplitudes normalized to [0, 1], where 1 is full scale, the decibel
// value is in dBFS.
//
// Every type is generic over float32 and float64. Each precision is
// computed with its own log10 and pow, so a float64 value is never
// narrowed and a float32 value never goes through float64 math.
//
// Conversions are total. Edge cases follow IEEE-754 instead of being
// reported as errors:
//
//	Amplitude(0.0).Decibels()             // -Inf dB (silence)
//	Amplitude(-1.0).Decibels()            // NaN
//	Decibel(math.Inf(-1)).Amplitude()     // 0
//	Decibel(math.Inf(1)).Amplitude()      // +Inf
//
// # Usage
//
//	gain := decibel.Decibel(-6.0).Amplitude().AmplitudeValue() // ~0.501
//	peak := decibel.Amplitude(float32(0.5)).Decibels()          // ~-6.02 dBFS
package decibel
