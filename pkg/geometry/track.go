// Package geometry computes the pixel extents of a slider track from a
// normalized position. All lengths are measured along the drag axis in
// the track's local coordinate space, origin at the track top.
package geometry

import (
	"github.com/kalavine/vslider/pkg/ratio"
)

// Track holds the computed extents for one frame. Progress is the
// filled segment (growing from the bottom of the track), Background the
// unfilled remainder; the two overlap by the corner radius at the seam
// so the rounded caps merge without a gap.
type Track struct {
	Available  float64 // drag range: track length minus thumb length
	Progress   float64 // filled segment length, thumb included
	Background float64 // unfilled segment length, radius overlap included
}

// Compute derives the track extents for a given ratio. Out-of-domain
// ratios are clamped first; a thumb longer than the track floors the
// available length at zero.
func Compute(r, trackLength, thumbLength, radius float64) Track {
	available := trackLength - thumbLength
	if available < 0 {
		available = 0
	}
	offset := Clamp(ratio.Clamp01(r)*available, 0, available)
	return Track{
		Available:  available,
		Progress:   offset + thumbLength,
		Background: available - offset + radius,
	}
}

// EffectiveThumbLength grows the thumb by the touch halo while a drag
// is active, shrinking the available drag range correspondingly. Halo
// applies only during a drag; at rest the configured length stands.
func EffectiveThumbLength(thumbLength, halo float64, dragging bool) float64 {
	if dragging && halo > 0 {
		return thumbLength + halo
	}
	return thumbLength
}

// DragRatio converts a drag coordinate along the track axis into a
// clamped ratio. The divisor is floored at one so a zero-length drag
// range cannot divide by zero; the result in that case pins to the
// nearest bound.
func DragRatio(coord, available float64) float64 {
	div := available
	if div < 1 {
		div = 1
	}
	return ratio.Clamp01(coord / div)
}
