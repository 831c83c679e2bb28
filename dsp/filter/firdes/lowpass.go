package firdes

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/resampler-taps/dsp/window"
)

// Option configures the designer.
type Option func(*config)

type config struct {
	singlePrecision bool
}

// WithSinglePrecision stores the window and every intermediate tap as
// float32, the way float-tap designers do. The returned taps are then exactly
// representable as float32.
func WithSinglePrecision() Option {
	return func(c *config) {
		c.singlePrecision = true
	}
}

// MaxTaps bounds the length [NumTaps] will return.
const MaxTaps = 1 << 22

// MaxAttenuation returns the stopband attenuation in dB a window of type t
// reaches with shape parameter beta.
func MaxAttenuation(t window.Type, beta float64) (float64, error) {
	switch t {
	case window.TypeKaiser:
		return beta/0.1102 + 8.7, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedWindow, t)
	}
}

// NumTaps estimates the filter length for the given transition width. The
// result is always odd so the filter has a center tap.
func NumTaps(sampleRate, transitionWidth float64, t window.Type, beta float64) (int, error) {
	atten, err := MaxAttenuation(t, beta)
	if err != nil {
		return 0, err
	}

	est := atten * sampleRate / (22.0 * transitionWidth)
	if !(est < MaxTaps) {
		return 0, fmt.Errorf("%w: transition width %v needs more than %d taps", ErrInvalidParameter, transitionWidth, MaxTaps)
	}

	n := int(est)
	if n&1 == 0 {
		n++
	}

	return n, nil
}

// LowPass designs a linear-phase low-pass filter with DC gain equal to gain.
// cutoff is the middle of the transition band.
func LowPass(gain, sampleRate, cutoff, transitionWidth float64, t window.Type, beta float64, opts ...Option) ([]float64, error) {
	if err := checkLowPass(sampleRate, cutoff, transitionWidth, beta); err != nil {
		return nil, err
	}

	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n, err := NumTaps(sampleRate, transitionWidth, t, beta)
	if err != nil {
		return nil, err
	}

	var winOpts []window.Option
	if cfg.singlePrecision {
		winOpts = append(winOpts, window.WithSinglePrecision())
	}

	w, err := window.Generate(t, n, beta, winOpts...)
	if err != nil {
		return nil, err
	}

	taps := make([]float64, n)
	m := (n - 1) / 2
	fwT0 := 2 * math.Pi * cutoff / sampleRate

	for i := -m; i <= m; i++ {
		if i == 0 {
			taps[m] = fwT0 / math.Pi
			continue
		}

		fi := float64(i)
		taps[i+m] = math.Sin(fi*fwT0) / (fi * math.Pi)
	}

	vecmath.MulBlockInPlace(taps, w)
	cfg.round(taps)

	fmax := taps[m]
	for i := 1; i <= m; i++ {
		fmax += 2 * taps[i+m]
	}

	if fmax == 0 {
		return nil, fmt.Errorf("%w: designed filter has zero DC gain", ErrInvalidParameter)
	}

	out := make([]float64, n)
	vecmath.ScaleBlock(out, taps, gain/fmax)
	cfg.round(out)

	return out, nil
}

// Designer binds [LowPass] behind a method so callers can depend on an
// interface instead of the package function.
type Designer struct {
	// SinglePrecision selects [WithSinglePrecision].
	SinglePrecision bool
}

// DesignLowPass calls [LowPass].
func (d Designer) DesignLowPass(gain, sampleRate, cutoff, transitionWidth float64, t window.Type, beta float64) ([]float64, error) {
	var opts []Option
	if d.SinglePrecision {
		opts = append(opts, WithSinglePrecision())
	}

	return LowPass(gain, sampleRate, cutoff, transitionWidth, t, beta, opts...)
}

func (c config) round(buf []float64) {
	if !c.singlePrecision {
		return
	}

	for i, v := range buf {
		buf[i] = float64(float32(v))
	}
}

func checkLowPass(sampleRate, cutoff, transitionWidth, beta float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidParameter, sampleRate)
	}

	if !(cutoff > 0) || cutoff > sampleRate/2 {
		return fmt.Errorf("%w: cutoff must be in (0, %v]: %v", ErrInvalidParameter, sampleRate/2, cutoff)
	}

	if !(transitionWidth > 0) || math.IsInf(transitionWidth, 0) {
		return fmt.Errorf("%w: transition width must be > 0: %v", ErrInvalidParameter, transitionWidth)
	}

	if !(beta >= 0) {
		return fmt.Errorf("%w: beta must be >= 0: %v", ErrInvalidParameter, beta)
	}

	return nil
}
