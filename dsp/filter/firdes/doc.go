// Package firdes designs windowed-sinc FIR low-pass filters.
//
// [LowPass] follows the classic firdes recipe: the tap count is estimated
// from the window's attainable stopband attenuation and the requested
// transition width, the ideal sinc response centered on the cutoff is
// multiplied by the window, and the result is scaled so the DC gain equals
// the requested gain. Only the Kaiser window is supported.
//
// Frequencies are in the same unit as the sample rate; with a sample rate of
// 1 they are normalized to cycles per sample.
package firdes
