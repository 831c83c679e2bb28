// Package testutil holds assertions shared by the filter design tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireSymmetric fails t unless taps has odd length and
// taps[i] == taps[n-1-i] within eps, i.e. the filter is linear phase
// with a center tap.
func RequireSymmetric(t *testing.T, taps []float64, eps float64) {
	t.Helper()
	n := len(taps)
	if n%2 == 0 {
		t.Fatalf("length %d is not odd", n)
	}
	for i := range n / 2 {
		if d := math.Abs(taps[i] - taps[n-1-i]); d > eps {
			t.Fatalf("index %d: %v vs mirrored %v (diff %v > eps %v)", i, taps[i], taps[n-1-i], d, eps)
		}
	}
}

// Sum returns the sum of data, which for FIR taps is the DC gain.
func Sum(data []float64) float64 {
	s := 0.0
	for _, v := range data {
		s += v
	}
	return s
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
