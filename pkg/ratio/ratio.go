// Package ratio converts between a slider's bound value and its
// normalized [0,1] track position, with optional step quantization.
package ratio

import "math"

// Range is the value domain of a slider. Lower must be strictly less
// than Upper; a degenerate range (Lower == Upper) leaves ratios
// undefined and is the caller's contract to avoid.
type Range struct {
	Lower float64
	Upper float64
}

// Span returns Upper - Lower.
func (r Range) Span() float64 {
	return r.Upper - r.Lower
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Lower {
		return r.Lower
	}
	if v > r.Upper {
		return r.Upper
	}
	return v
}

// Clamp01 limits v to [0,1]. Every ratio entering layout math goes
// through this so degenerate positions can never produce negative-size
// shapes downstream.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToRatio converts a bound value into a normalized track position,
// clamped to [0,1].
func ToRatio(value float64, r Range) float64 {
	return Clamp01((value - r.Lower) / r.Span())
}

// ToValue converts a normalized position back into the value domain,
// quantizing to step when step > 0. The result is clamped to the range
// so rounding at the bounds cannot escape it.
func ToValue(ratio float64, r Range, step float64) float64 {
	v := r.Lower + Clamp01(ratio)*r.Span()
	return r.Clamp(Quantize(v, step))
}

// Quantize snaps v to the nearest multiple of step. A step of zero
// means continuous: v is returned unchanged.
func Quantize(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
