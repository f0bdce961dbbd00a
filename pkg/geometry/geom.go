package geometry

// Point is a location in the track's local coordinate space. Y runs
// along the drag axis of a vertical slider, measured from the filled
// (bottom) end so the drag coordinate and the progress length grow in
// the same direction.
type Point struct {
	X float64
	Y float64
}

// Size is the track's cross-axis by drag-axis extent.
type Size struct {
	Width  float64
	Height float64
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
