package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	// TypeKaiser is the Kaiser (Bessel I0) window parameterized by beta.
	TypeKaiser Type = iota
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeKaiser:
		return "kaiser"
	default:
		return "unknown"
	}
}

// Option configures window generation.
type Option func(*config)

type config struct {
	singlePrecision bool
}

// WithSinglePrecision rounds every coefficient to float32.
func WithSinglePrecision() Option {
	return func(c *config) {
		c.singlePrecision = true
	}
}

// Kaiser returns symmetric Kaiser window coefficients.
func Kaiser(size int, beta float64, opts ...Option) ([]float64, error) {
	if err := validateKaiser(size, beta); err != nil {
		return nil, err
	}

	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, size)
	invI0Beta := 1 / BesselI0(beta)

	// Both endpoints are exactly 1/I0(beta); evaluating sqrt(1-t*t) there can
	// go negative by an ulp.
	out[0] = invI0Beta
	out[size-1] = invI0Beta

	inm1 := 1 / float64(size-1)
	for i := 1; i < size-1; i++ {
		t := 2*float64(i)*inm1 - 1
		out[i] = BesselI0(beta*math.Sqrt(1-t*t)) * invI0Beta
	}

	if cfg.singlePrecision {
		for i, v := range out {
			out[i] = float64(float32(v))
		}
	}

	return out, nil
}

// Apply multiplies buf in-place by a Kaiser window of the same length.
func Apply(buf []float64, beta float64, opts ...Option) error {
	if len(buf) == 0 {
		return nil
	}

	coeffs, err := Kaiser(len(buf), beta, opts...)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// Generate returns coefficients for window type t. Only [TypeKaiser] is
// supported; beta is its shape parameter.
func Generate(t Type, size int, beta float64, opts ...Option) ([]float64, error) {
	if t != TypeKaiser {
		return nil, errUnsupportedType(t)
	}

	return Kaiser(size, beta, opts...)
}

const besselEpsilon = 1e-21

// BesselI0 returns the modified Bessel function of the first kind, order
// zero, summed from its power series until the next term is below
// 1e-21 of the running sum.
func BesselI0(x float64) float64 {
	sum := 1.0
	u := 1.0
	halfx := x / 2

	for n := 1.0; ; n++ {
		temp := halfx / n
		u *= temp * temp
		sum += u

		if u < besselEpsilon*sum {
			return sum
		}
	}
}
