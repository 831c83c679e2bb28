package firdes

import "errors"

var (
	// ErrInvalidParameter indicates an out-of-range design parameter.
	ErrInvalidParameter = errors.New("firdes: invalid parameter")
	// ErrUnsupportedWindow indicates a window type the designer cannot use.
	ErrUnsupportedWindow = errors.New("firdes: unsupported window")
)
