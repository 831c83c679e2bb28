// Package resample derives the anti-aliasing low-pass filter for a rational
// resampler (interpolate by L, decimate by M).
//
// [DeriveFilter] maps (L, M, fractional bandwidth) to a transition band and
// asks a [Designer] for Kaiser-windowed taps. When L/M < 1 the transition
// band is scaled by the rate so the passband stays below the post-decimation
// Nyquist frequency.
//
// The design is emitted as a [Record], the JSON object consumed by the
// resampler configuration:
//
//	{"rationalResampler": {"interpolate": 3, "decimate": 2, "fractionalBw": 0.4, "lpfCoeffs": [...]}}
//
// Common workflows:
//   - DeriveFilter(up, down, bw, opts...)
//   - Design(Spec{...}, opts...) then Record.Encode
//   - ParseRecord to read a configuration back
package resample
