// Package testutil holds assertions and fixtures shared by package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// Float is the set of element types the helpers accept.
type Float interface {
	~float32 | ~float64
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual[F Float](t *testing.T, got, want []F, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceExact fails t unless got and want hold identical values,
// compared by bit pattern so that 0 and -0 differ and NaN matches NaN.
func RequireSliceExact(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i := range got {
		if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
			t.Fatalf("index %d: got %v, want %v\n got: %v\nwant: %v", i, got[i], want[i], got, want)
		}
	}
}

// MaxAbsDiff returns the largest absolute element difference.
func MaxAbsDiff[F Float](a, b []F) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(float64(a[i]) - float64(b[i])); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
