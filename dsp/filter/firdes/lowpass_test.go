package firdes

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/resampler-taps/dsp/window"
	"github.com/cwbudde/resampler-taps/internal/testutil"
)

func TestMaxAttenuationKaiser(t *testing.T) {
	got, err := MaxAttenuation(window.TypeKaiser, 7)
	if err != nil {
		t.Fatalf("MaxAttenuation() error = %v", err)
	}

	want := 7/0.1102 + 8.7
	if got != want {
		t.Fatalf("MaxAttenuation = %v, want %v", got, want)
	}

	if _, err := MaxAttenuation(window.Type(9), 7); !errors.Is(err, ErrUnsupportedWindow) {
		t.Fatalf("err = %v, want ErrUnsupportedWindow", err)
	}
}

func TestNumTaps(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		width      float64
		want       int
	}{
		{name: "unity rate", sampleRate: 1, width: 0.1, want: 33},
		{name: "decimate by 4", sampleRate: 1, width: 0.025, want: 131},
		{name: "fs 3", sampleRate: 3, width: 0.1, want: 99},
		{name: "odd estimate kept", sampleRate: 1, width: 0.05, want: 65},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NumTaps(tc.sampleRate, tc.width, window.TypeKaiser, 7)
			if err != nil {
				t.Fatalf("NumTaps() error = %v", err)
			}

			if got != tc.want {
				t.Fatalf("NumTaps = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNumTapsTooMany(t *testing.T) {
	_, err := NumTaps(1, 1e-9, window.TypeKaiser, 7)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestLowPassReferenceTaps(t *testing.T) {
	// Reference values from the double-precision firdes recipe.
	taps, err := LowPass(1, 1, 0.45, 0.1, window.TypeKaiser, 7)
	if err != nil {
		t.Fatalf("LowPass() error = %v", err)
	}

	if len(taps) != 33 {
		t.Fatalf("len = %d, want 33", len(taps))
	}

	checks := map[int]float64{
		0:  0.00011222406450960095,
		1:  -0.00039435249986985313,
		16: 0.8999821837006567,
		31: -0.00039435249986985313,
		32: 0.00011222406450960095,
	}
	for i, want := range checks {
		if math.Abs(taps[i]-want) > 1e-12 {
			t.Fatalf("taps[%d] = %.17g, want %.17g", i, taps[i], want)
		}
	}
}

func TestLowPassProperties(t *testing.T) {
	tests := []struct {
		name       string
		gain       float64
		sampleRate float64
		cutoff     float64
		width      float64
	}{
		{name: "unity", gain: 1, sampleRate: 1, cutoff: 0.45, width: 0.1},
		{name: "narrow", gain: 1, sampleRate: 1, cutoff: 0.1125, width: 0.025},
		{name: "gain 3", gain: 3, sampleRate: 3, cutoff: 0.45, width: 0.1},
		{name: "gain 2 decimating", gain: 2, sampleRate: 2, cutoff: 0.3, width: 1.0 / 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			taps, err := LowPass(tc.gain, tc.sampleRate, tc.cutoff, tc.width, window.TypeKaiser, 7)
			if err != nil {
				t.Fatalf("LowPass() error = %v", err)
			}

			testutil.RequireFinite(t, taps)
			testutil.RequireSymmetric(t, taps, 1e-15)

			if dc := testutil.Sum(taps); math.Abs(dc-tc.gain) > 1e-12 {
				t.Fatalf("DC gain = %v, want %v", dc, tc.gain)
			}

			want, _ := NumTaps(tc.sampleRate, tc.width, window.TypeKaiser, 7)
			if len(taps) != want {
				t.Fatalf("len = %d, want %d", len(taps), want)
			}
		})
	}
}

func TestLowPassResponse(t *testing.T) {
	// Band edges one full transition width from the cutoff.
	tests := []struct {
		name   string
		cutoff float64
		width  float64
	}{
		{name: "quarter band", cutoff: 0.25, width: 0.05},
		{name: "decimate by 4", cutoff: 0.1125, width: 0.025},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			taps, err := LowPass(1, 1, tc.cutoff, tc.width, window.TypeKaiser, 7)
			if err != nil {
				t.Fatalf("LowPass() error = %v", err)
			}

			mag, err := testutil.MagnitudeResponse(taps, 4096)
			if err != nil {
				t.Fatalf("MagnitudeResponse() error = %v", err)
			}

			passEdge := testutil.Bin(mag, tc.cutoff-tc.width)
			for k := 0; k <= passEdge; k++ {
				if db := 20 * math.Log10(mag[k]); math.Abs(db) > 0.05 {
					t.Fatalf("passband bin %d: %.4f dB", k, db)
				}
			}

			stopEdge := testutil.Bin(mag, tc.cutoff+tc.width)
			if db := testutil.PeakDB(mag, stopEdge, len(mag), 1); db > -65 {
				t.Fatalf("stopband peak %.2f dB, want <= -65 dB", db)
			}
		})
	}
}

func TestLowPassSinglePrecision(t *testing.T) {
	taps, err := LowPass(1, 1, 0.45, 0.1, window.TypeKaiser, 7, WithSinglePrecision())
	if err != nil {
		t.Fatalf("LowPass() error = %v", err)
	}

	for i, v := range taps {
		if float64(float32(v)) != v {
			t.Fatalf("taps[%d] = %v is not a float32 value", i, v)
		}
	}

	if math.Abs(taps[16]-0.899982213973999) > 1e-7 {
		t.Fatalf("center = %.17g, want ~0.899982214", taps[16])
	}

	double, _ := LowPass(1, 1, 0.45, 0.1, window.TypeKaiser, 7)
	if d, _ := testutil.MaxAbsDiff(taps, double); d > 1e-6 {
		t.Fatalf("single vs double max diff %v", d)
	}
}

func TestLowPassDeterministic(t *testing.T) {
	a, _ := LowPass(2, 2, 0.3, 0.05, window.TypeKaiser, 7)
	b, _ := LowPass(2, 2, 0.3, 0.05, window.TypeKaiser, 7)
	testutil.RequireSliceNearlyEqual(t, a, b, 0)
}

func TestLowPassInvalid(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		cutoff     float64
		width      float64
		beta       float64
		win        window.Type
		want       error
	}{
		{name: "zero sample rate", sampleRate: 0, cutoff: 0.1, width: 0.1, beta: 7, want: ErrInvalidParameter},
		{name: "zero cutoff", sampleRate: 1, cutoff: 0, width: 0.1, beta: 7, want: ErrInvalidParameter},
		{name: "cutoff above nyquist", sampleRate: 1, cutoff: 0.6, width: 0.1, beta: 7, want: ErrInvalidParameter},
		{name: "zero width", sampleRate: 1, cutoff: 0.2, width: 0, beta: 7, want: ErrInvalidParameter},
		{name: "nan width", sampleRate: 1, cutoff: 0.2, width: math.NaN(), beta: 7, want: ErrInvalidParameter},
		{name: "negative beta", sampleRate: 1, cutoff: 0.2, width: 0.1, beta: -1, want: ErrInvalidParameter},
		{name: "unknown window", sampleRate: 1, cutoff: 0.2, width: 0.1, beta: 7, win: window.Type(5), want: ErrUnsupportedWindow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LowPass(1, tc.sampleRate, tc.cutoff, tc.width, tc.win, tc.beta)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDesignerMatchesLowPass(t *testing.T) {
	got, err := Designer{}.DesignLowPass(1, 1, 0.45, 0.1, window.TypeKaiser, 7)
	if err != nil {
		t.Fatalf("DesignLowPass() error = %v", err)
	}

	want, _ := LowPass(1, 1, 0.45, 0.1, window.TypeKaiser, 7)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	single, _ := Designer{SinglePrecision: true}.DesignLowPass(1, 1, 0.45, 0.1, window.TypeKaiser, 7)
	want, _ = LowPass(1, 1, 0.45, 0.1, window.TypeKaiser, 7, WithSinglePrecision())
	testutil.RequireSliceNearlyEqual(t, single, want, 0)
}
