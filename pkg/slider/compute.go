package slider

import (
	"github.com/kalavine/vslider/pkg/elastic"
	"github.com/kalavine/vslider/pkg/geometry"
	"github.com/kalavine/vslider/pkg/ratio"
	"github.com/kalavine/vslider/pkg/shape"
)

// Stateless entry points for callers that manage their own state and
// only need the arithmetic. All of them are pure.

// ComputeRatio converts a drag location into a clamped ratio. The
// isDragging flag gates the conversion: outside a drag session the
// location is stale, so the rest ratio comes back and the bound value
// keeps authority, mirroring how Excess treats an idle pointer.
func ComputeRatio(dragLocation geometry.Point, availableLength float64, isDragging bool) float64 {
	if !isDragging {
		return 0
	}
	return geometry.DragRatio(dragLocation.Y, availableLength)
}

// ComputeValue converts a ratio back into the value domain with step
// quantization.
func ComputeValue(r float64, rng ratio.Range, step float64) float64 {
	return ratio.ToValue(r, rng, step)
}

// ValueRatio converts a bound value into a clamped ratio.
func ValueRatio(value float64, rng ratio.Range) float64 {
	return ratio.ToRatio(value, rng)
}

// ComputeGeometry derives the track extents for a ratio.
func ComputeGeometry(r, trackLength, thumbLength, radius float64) geometry.Track {
	return geometry.Compute(r, trackLength, thumbLength, radius)
}

// ComputeElastic derives the overdrag transform for a drag location.
func ComputeElastic(dragLocation geometry.Point, availableLength float64, isDragging bool, size geometry.Size, p elastic.Properties) elastic.Transform {
	return elastic.Compute(dragLocation, availableLength, isDragging, size, p)
}

// BuildPaths constructs the four track outlines for a snapshot.
func BuildPaths(p shape.Parameters) shape.Paths {
	return shape.BuildPaths(p)
}
