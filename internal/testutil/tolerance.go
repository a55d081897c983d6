package testutil

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/constraints"
)

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute tolerance). Infinities of the same sign compare equal.
func RequireNearlyEqual[F constraints.Float](t testing.TB, got, want, eps F) {
	t.Helper()
	if err := nearlyEqual(float64(got), float64(want), float64(eps)); err != nil {
		t.Fatal(err)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[F constraints.Float](t testing.TB, got, want []F, eps F) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if err := nearlyEqual(float64(got[i]), float64(want[i]), float64(eps)); err != nil {
			t.Fatalf("index %d: %v", i, err)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[F constraints.Float](a, b []F) (F, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var maxDiff F
	for i := range a {
		d := F(math.Abs(float64(a[i] - b[i])))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

func nearlyEqual(got, want, eps float64) error {
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		if got != want {
			return fmt.Errorf("got %v, want %v", got, want)
		}
		return nil
	}
	diff := math.Abs(got - want)
	if !(diff <= eps) {
		return fmt.Errorf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
	return nil
}
