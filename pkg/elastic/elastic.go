// Package elastic models the rubber-band response of a slider dragged
// past its valid range. The response is a continuous damped function of
// the overdrag distance: it saturates smoothly toward a configured
// maximum instead of clamping, so the visual feedback stays
// proportional to how far past the bound the pointer has travelled.
package elastic

import (
	"math"

	"github.com/kalavine/vslider/pkg/geometry"
)

// damping controls how quickly the elastic effect saturates. Larger
// excess asymptotically approaches the configured maximum but never
// reaches it.
const damping = 100

// Properties configures the overdrag response. All zero values disable
// the corresponding effect.
type Properties struct {
	// OffsetSize is the maximum positional nudge, in pixels, applied
	// to the whole track during overdrag.
	OffsetSize float64
	// CompressionFactor shrinks the cross axis by up to this fraction
	// of the track thickness. Valid range [0,1].
	CompressionFactor float64
	// ExpansionFactor grows the drag axis by up to this fraction of
	// the track thickness.
	ExpansionFactor float64
}

// Transform is the instantaneous overdrag transform for one frame. The
// identity (zero offsets, unit scales) means no overdrag is in effect.
type Transform struct {
	Offset      float64 // drag-axis nudge of the whole track, signed
	ScaleX      float64 // cross-axis scale
	ScaleY      float64 // drag-axis scale
	// ThumbOffset is the signed drag-axis correction for a thumb drawn
	// outside the whole-track transform; a thumb drawn inside it is
	// already carried by Offset and ScaleY.
	ThumbOffset float64
}

// Identity is the at-rest transform.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Excess returns the signed distance a drag coordinate lies beyond the
// valid range [0, available]: negative below zero, positive past the
// far bound, zero inside the range or when no drag is active.
func Excess(coord, available float64, dragging bool) float64 {
	if !dragging {
		return 0
	}
	if coord < 0 {
		return coord
	}
	if coord > available {
		return coord - available
	}
	return 0
}

// Scale computes the damped elastic scale for stretching fromSize
// toward toSize under the given excess. At zero excess the result is
// exactly 1; as |excess| grows it approaches toSize/fromSize
// asymptotically. The same formula serves shrinking (toSize < fromSize)
// since the ratio is then below 1 and the result decays toward it.
func Scale(excess, fromSize, toSize float64) float64 {
	maxScale := toSize / fromSize
	return maxScale - (maxScale-1)/(math.Abs(excess)/damping+1)
}

// Compute derives the full overdrag transform for one frame. size is
// the track extent; p the configured response. Inside the valid range
// the identity transform comes back, so callers can apply the result
// unconditionally.
func Compute(loc geometry.Point, available float64, dragging bool, size geometry.Size, p Properties) Transform {
	excess := Excess(loc.Y, available, dragging)
	if excess == 0 {
		return Identity()
	}

	t := Identity()
	if p.CompressionFactor > 0 && size.Width > 0 {
		target := size.Width * (1 - p.CompressionFactor)
		t.ScaleX = Scale(excess, size.Width, target)
	}
	if p.ExpansionFactor > 0 && size.Height > 0 {
		target := size.Height + size.Width*p.ExpansionFactor
		t.ScaleY = Scale(excess, size.Height, target)
	}
	if p.OffsetSize > 0 {
		magnitude := Scale(excess, 1, p.OffsetSize+1) - 1
		t.Offset = math.Copysign(magnitude, excess)
	}

	// The thumb rides the stretched end of the track: past the far
	// bound it follows the drag-axis growth away from the near edge,
	// below zero it pulls back as the shape shrinks from the far edge.
	stretch := (t.ScaleY - 1) * size.Height
	t.ThumbOffset = t.Offset + math.Copysign(stretch, excess)
	return t
}
