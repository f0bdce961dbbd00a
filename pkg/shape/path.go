// Package shape builds the outline paths of a slider track: a rounded
// background segment, a rounded progress segment, and their partial
// strokes, with the elastic overdrag transform applied about an anchor
// at the emptier end of the track.
package shape

import (
	"math"

	"github.com/kalavine/vslider/pkg/geometry"
)

// Rect is the track's bounding box in local coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Op identifies a path segment command.
type Op int

const (
	MoveTo Op = iota
	LineTo
	ArcTo
	Close
)

// Segment is one path command. MoveTo and LineTo use To; ArcTo draws a
// circular arc around Center from Start to End (radians, measured from
// the positive x axis with y growing downward), connected to the
// current point by the consuming renderer.
type Segment struct {
	Op     Op
	To     geometry.Point
	Center geometry.Point
	Radius float64
	Start  float64
	End    float64
}

// EndPoint returns the point the segment leaves the pen at. Close
// returns the zero point; callers track subpath starts themselves.
func (s Segment) EndPoint() geometry.Point {
	if s.Op == ArcTo {
		return ArcPoint(s.Center, s.Radius, s.End)
	}
	return s.To
}

// ArcPoint returns the point on a circle at the given angle.
func ArcPoint(center geometry.Point, radius, angle float64) geometry.Point {
	return geometry.Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// Path is an ordered list of segments forming one outline.
type Path struct {
	Segments []Segment
}

func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: MoveTo, To: geometry.Point{X: x, Y: y}})
}

func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: LineTo, To: geometry.Point{X: x, Y: y}})
}

func (p *Path) ArcTo(cx, cy, radius, start, end float64) {
	p.Segments = append(p.Segments, Segment{
		Op:     ArcTo,
		Center: geometry.Point{X: cx, Y: cy},
		Radius: radius,
		Start:  start,
		End:    end,
	})
}

func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Op: Close})
}

// Closed reports whether the path ends with a Close command.
func (p Path) Closed() bool {
	n := len(p.Segments)
	return n > 0 && p.Segments[n-1].Op == Close
}
