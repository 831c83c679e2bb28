package window

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter reports an invalid window length or shape parameter.
var ErrInvalidParameter = errors.New("window: invalid parameter")

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: window size must be > 0: %d", ErrInvalidParameter, size)
	}
	return nil
}

func validateKaiser(size int, beta float64) error {
	if err := validateLength(size); err != nil {
		return err
	}
	if beta < 0 || math.IsNaN(beta) {
		return fmt.Errorf("%w: kaiser beta must be >= 0: %f", ErrInvalidParameter, beta)
	}
	return nil
}

func errUnsupportedType(t Type) error {
	return fmt.Errorf("%w: unsupported window type %d", ErrInvalidParameter, int(t))
}
