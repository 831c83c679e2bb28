package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/resampler-taps/dsp/filter/firdes"
	"github.com/cwbudde/resampler-taps/dsp/window"
)

var (
	// ErrInvalidBandwidth indicates a fractional bandwidth outside (0, 0.5).
	ErrInvalidBandwidth = errors.New("resample: invalid fractional bandwidth, must be in (0, 0.5)")
	// ErrInvalidRate indicates an interpolation or decimation factor below 1.
	ErrInvalidRate = errors.New("resample: invalid interpolation or decimation rate, must be a positive integer")
)

const (
	// KaiserBeta is the Kaiser window shape used for every design.
	KaiserBeta = 7.0
	// halfband is the normalized half-band cutoff of the prototype.
	halfband = 0.5
)

// Designer synthesizes low-pass FIR taps. cutoff is the middle of the
// transition band; all frequencies share the unit of sampleRate.
type Designer interface {
	DesignLowPass(gain, sampleRate, cutoff, transitionWidth float64, win window.Type, beta float64) ([]float64, error)
}

// Spec describes a rational resampler.
type Spec struct {
	Interpolation int
	Decimation    int
	// FractionalBW is the fraction of the half band kept as passband.
	FractionalBW float64
}

// Validate checks the bandwidth first and then the rates.
func (s Spec) Validate() error {
	if !(s.FractionalBW > 0 && s.FractionalBW < halfband) {
		return fmt.Errorf("%w: %v", ErrInvalidBandwidth, s.FractionalBW)
	}

	if s.Interpolation < 1 || s.Decimation < 1 {
		return fmt.Errorf("%w: %d/%d", ErrInvalidRate, s.Interpolation, s.Decimation)
	}

	return nil
}

// Rate returns Interpolation/Decimation.
func (s Spec) Rate() float64 {
	return float64(s.Interpolation) / float64(s.Decimation)
}

// Geometry is the transition band of the prototype low-pass filter.
type Geometry struct {
	Width    float64
	Midpoint float64
}

// Geometry returns the transition band for s. s must be valid.
func (s Spec) Geometry() Geometry {
	rate := s.Rate()

	if rate >= 1.0 {
		width := halfband - s.FractionalBW
		return Geometry{Width: width, Midpoint: halfband - width/2}
	}

	width := rate * (halfband - s.FractionalBW)

	return Geometry{Width: width, Midpoint: rate*halfband - width/2}
}

type config struct {
	designer Designer
}

// Option configures the derivation.
type Option func(*config)

// WithDesigner replaces the default [firdes.Designer].
func WithDesigner(d Designer) Option {
	return func(cfg *config) {
		if d != nil {
			cfg.designer = d
		}
	}
}

// WithSinglePrecision rounds taps to float32 using the default designer.
func WithSinglePrecision() Option {
	return WithDesigner(firdes.Designer{SinglePrecision: true})
}

func defaultConfig() config {
	return config{designer: firdes.Designer{}}
}

// DeriveFilter designs the low-pass taps for resampling by
// interpolation/decimation. The taps have a DC gain of interpolation.
func DeriveFilter(interpolation, decimation int, fractionalBW float64, opts ...Option) ([]float64, error) {
	spec := Spec{Interpolation: interpolation, Decimation: decimation, FractionalBW: fractionalBW}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	g := spec.Geometry()
	l := float64(interpolation)

	taps, err := cfg.designer.DesignLowPass(l, l, g.Midpoint, g.Width, window.TypeKaiser, KaiserBeta)
	if err != nil {
		return nil, fmt.Errorf("resample: design %d/%d: %w", interpolation, decimation, err)
	}

	return taps, nil
}

// Design runs [DeriveFilter] for spec and wraps the taps in a [Record].
func Design(spec Spec, opts ...Option) (Record, error) {
	taps, err := DeriveFilter(spec.Interpolation, spec.Decimation, spec.FractionalBW, opts...)
	if err != nil {
		return Record{}, err
	}

	return Record{RationalResampler: Params{
		Interpolate:  spec.Interpolation,
		Decimate:     spec.Decimation,
		FractionalBW: spec.FractionalBW,
		LPFCoeffs:    taps,
	}}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
