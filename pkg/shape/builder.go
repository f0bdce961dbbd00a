package shape

import (
	"math"

	"github.com/kalavine/vslider/pkg/elastic"
	"github.com/kalavine/vslider/pkg/geometry"
	"github.com/kalavine/vslider/pkg/ratio"
)

// Variant selects which of the four track outlines to build.
type Variant int

const (
	// BackgroundFill is the unfilled track segment, truncated at the
	// background length from the track top, all four corners rounded.
	BackgroundFill Variant = iota
	// BackgroundStroke is the background outline with the bottom edge
	// omitted so it merges visually with the progress fill below it.
	BackgroundStroke
	// ProgressFill is the filled segment, truncated at the progress
	// length from the track bottom, all four corners rounded.
	ProgressFill
	// ProgressStroke is the progress outline with the top edge
	// omitted.
	ProgressStroke
)

func (v Variant) String() string {
	switch v {
	case BackgroundFill:
		return "background-fill"
	case BackgroundStroke:
		return "background-stroke"
	case ProgressFill:
		return "progress-fill"
	case ProgressStroke:
		return "progress-stroke"
	default:
		return "unknown"
	}
}

// Parameters is the ephemeral snapshot driving one frame of path
// construction. It is rebuilt from the current ratio and elastic output
// on every update, never mutated in place.
type Parameters struct {
	Radius      float64
	Ratio       float64
	ThumbLength float64
	Rect        Rect
	Elastic     elastic.Transform
}

// Paths holds the four outlines of one frame plus the shared elastic
// transform to apply to each of them. The transform is anchored at the
// emptier end of the track so the stretch reads as pinned to the
// filled end.
type Paths struct {
	BackgroundFill   Path
	BackgroundStroke Path
	ProgressFill     Path
	ProgressStroke   Path
	Transform        Transform
}

// BuildPaths constructs all four outlines for the given snapshot.
func BuildPaths(p Parameters) Paths {
	r := ratio.Clamp01(p.Ratio)
	geo := geometry.Compute(r, p.Rect.Height, p.ThumbLength, p.Radius)

	anchor := geometry.Point{X: p.Rect.X + p.Rect.Width/2, Y: p.Rect.Y}
	if r >= 0.5 {
		anchor.Y = p.Rect.Y + p.Rect.Height
	}

	return Paths{
		BackgroundFill:   Build(BackgroundFill, p.Radius, p.Rect, geo),
		BackgroundStroke: Build(BackgroundStroke, p.Radius, p.Rect, geo),
		ProgressFill:     Build(ProgressFill, p.Radius, p.Rect, geo),
		ProgressStroke:   Build(ProgressStroke, p.Radius, p.Rect, geo),
		Transform:        ElasticTransform(p.Elastic, anchor),
	}
}

// Build constructs one outline variant. Background variants span the
// background length from the rect top; progress variants span the
// progress length up from the rect bottom. A radius exceeding half the
// shorter region dimension degenerates at the arc primitive's
// discretion; it is not specially handled.
func Build(v Variant, radius float64, rect Rect, geo geometry.Track) Path {
	region := rect
	switch v {
	case BackgroundFill, BackgroundStroke:
		region.Height = math.Min(geo.Background, rect.Height)
	case ProgressFill, ProgressStroke:
		h := math.Min(geo.Progress, rect.Height)
		region.Y = rect.Y + rect.Height - h
		region.Height = h
	}
	switch v {
	case BackgroundFill, ProgressFill:
		return roundedRect(region, radius)
	case BackgroundStroke:
		return openOutline(region, radius, false)
	default:
		return openOutline(region, radius, true)
	}
}

// roundedRect traces a closed four-corner rounded rectangle clockwise
// from the top edge.
func roundedRect(r Rect, radius float64) Path {
	x, y, w, h := r.X, r.Y, r.Width, r.Height
	var p Path
	p.MoveTo(x+radius, y)
	p.LineTo(x+w-radius, y)
	p.ArcTo(x+w-radius, y+radius, radius, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-radius)
	p.ArcTo(x+w-radius, y+h-radius, radius, 0, math.Pi/2)
	p.LineTo(x+radius, y+h)
	p.ArcTo(x+radius, y+h-radius, radius, math.Pi/2, math.Pi)
	p.LineTo(x, y+radius)
	p.ArcTo(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2)
	p.Close()
	return p
}

// openOutline traces the rounded rectangle clockwise but leaves out one
// straight edge: the top edge when omitTop is set, the bottom edge
// otherwise. Corner arcs adjacent to the omitted edge remain so the
// stroke caps stay rounded.
func openOutline(r Rect, radius float64, omitTop bool) Path {
	x, y, w, h := r.X, r.Y, r.Width, r.Height
	var p Path
	if omitTop {
		// Start past the top edge, wrap around the bottom.
		p.MoveTo(x+w-radius, y)
		p.ArcTo(x+w-radius, y+radius, radius, -math.Pi/2, 0)
		p.LineTo(x+w, y+h-radius)
		p.ArcTo(x+w-radius, y+h-radius, radius, 0, math.Pi/2)
		p.LineTo(x+radius, y+h)
		p.ArcTo(x+radius, y+h-radius, radius, math.Pi/2, math.Pi)
		p.LineTo(x, y+radius)
		p.ArcTo(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2)
		return p
	}
	// Start past the bottom edge, wrap around the top.
	p.MoveTo(x+radius, y+h)
	p.ArcTo(x+radius, y+h-radius, radius, math.Pi/2, math.Pi)
	p.LineTo(x, y+radius)
	p.ArcTo(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2)
	p.LineTo(x+w-radius, y)
	p.ArcTo(x+w-radius, y+radius, radius, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-radius)
	p.ArcTo(x+w-radius, y+h-radius, radius, 0, math.Pi/2)
	return p
}
