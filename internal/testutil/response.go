package testutil

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// MagnitudeResponse returns |H(f)| of taps on fftSize/2+1 equally spaced
// bins from DC to half the sample rate. fftSize must be a power of two no
// smaller than len(taps).
func MagnitudeResponse(taps []float64, fftSize int) ([]float64, error) {
	if fftSize < len(taps) || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("fft size %d must be a power of two >= %d", fftSize, len(taps))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, fftSize)
	for i, v := range taps {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	mag := make([]float64, fftSize/2+1)
	for k := range mag {
		mag[k] = math.Hypot(real(out[k]), imag(out[k]))
	}

	return mag, nil
}

// PeakDB returns the largest magnitude in bins [lo, hi) relative to ref, in dB.
func PeakDB(mag []float64, lo, hi int, ref float64) float64 {
	peak := 0.0
	for _, v := range mag[lo:hi] {
		peak = math.Max(peak, v)
	}
	return 20 * math.Log10(peak/ref)
}

// Bin returns the index of the bin nearest to the normalized frequency f
// (cycles per sample) in a response of len(mag) bins from DC to 0.5.
func Bin(mag []float64, f float64) int {
	return int(math.Round(f * 2 * float64(len(mag)-1)))
}
