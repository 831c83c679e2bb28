// Package window generates the Kaiser window used by the low-pass tap
// designer.
//
// The window is the symmetric form
//
//	w[i] = I0(beta * sqrt(1 - t*t)) / I0(beta),  t = 2i/(n-1) - 1
//
// with I0 evaluated by its power series to full double precision, so that
// designed taps agree with the classic windowed-sinc designers that use the
// same series.
package window
