package decibel

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// single reports whether F is a 32-bit float type.
func single[F constraints.Float]() bool {
	var zero F
	return unsafe.Sizeof(zero) == 4
}

// log10 returns the base-10 logarithm of x in the precision of F.
func log10[F constraints.Float](x F) F {
	if single[F]() {
		return F(math32.Log10(float32(x)))
	}

	return F(math.Log10(float64(x)))
}

// pow10 returns 10**x in the precision of F.
func pow10[F constraints.Float](x F) F {
	if single[F]() {
		return F(math32.Pow(10, float32(x)))
	}

	return F(math.Pow(10, float64(x)))
}
