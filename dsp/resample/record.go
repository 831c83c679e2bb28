package resample

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidRecord indicates a configuration record a resampler cannot use.
var ErrInvalidRecord = errors.New("resample: invalid record")

// Record is the configuration object carrying a resampler design.
type Record struct {
	RationalResampler Params `json:"rationalResampler"`
}

// Params holds the resampler factors and its low-pass taps.
type Params struct {
	Interpolate  int       `json:"interpolate"`
	Decimate     int       `json:"decimate"`
	FractionalBW float64   `json:"fractionalBw"`
	LPFCoeffs    []float64 `json:"lpfCoeffs"`
}

// Spec returns the resampler specification the record was designed from.
func (r Record) Spec() Spec {
	p := r.RationalResampler
	return Spec{Interpolation: p.Interpolate, Decimation: p.Decimate, FractionalBW: p.FractionalBW}
}

// Validate applies the checks a resampler performs when loading the record:
// positive factors and at least one tap per interpolation phase.
func (r Record) Validate() error {
	p := r.RationalResampler
	if p.Decimate < 1 {
		return fmt.Errorf("%w: decimate must be a positive integer: %d", ErrInvalidRecord, p.Decimate)
	}

	if p.Interpolate < 1 {
		return fmt.Errorf("%w: interpolate must be a positive integer: %d", ErrInvalidRecord, p.Interpolate)
	}

	if len(p.LPFCoeffs) < p.Interpolate {
		return fmt.Errorf("%w: %d taps, need at least interpolate=%d", ErrInvalidRecord, len(p.LPFCoeffs), p.Interpolate)
	}

	for i, v := range p.LPFCoeffs {
		if !isFinite(v) {
			return fmt.Errorf("%w: lpfCoeffs[%d] is not finite", ErrInvalidRecord, i)
		}
	}

	return nil
}

// Encode writes r as one JSON object followed by a newline. An empty indent
// keeps the object on a single line.
func (r Record) Encode(w io.Writer, indent string) error {
	enc := json.NewEncoder(w)
	if indent != "" {
		enc.SetIndent("", indent)
	}

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("resample: encode record: %w", err)
	}

	return nil
}

// ParseRecord decodes and validates a record. Unknown fields are rejected.
func ParseRecord(rd io.Reader) (Record, error) {
	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()

	var r Record
	if err := dec.Decode(&r); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if err := r.Validate(); err != nil {
		return Record{}, err
	}

	return r, nil
}
