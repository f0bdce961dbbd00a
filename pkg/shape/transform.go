package shape

import (
	"github.com/kalavine/vslider/pkg/elastic"
	"github.com/kalavine/vslider/pkg/geometry"
)

// Transform is a 2x3 affine matrix: [ A C E ; B D F ].
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Transform {
	return Transform{A: 1, D: 1, E: dx, F: dy}
}

// ScaleAbout returns an anisotropic scale about the anchor point, so
// the anchor itself stays fixed.
func ScaleAbout(sx, sy float64, anchor geometry.Point) Transform {
	return Transform{
		A: sx,
		D: sy,
		E: anchor.X * (1 - sx),
		F: anchor.Y * (1 - sy),
	}
}

// Mul composes t with u: the result applies u first, then t.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.C*u.B,
		B: t.B*u.A + t.D*u.B,
		C: t.A*u.C + t.C*u.D,
		D: t.B*u.C + t.D*u.D,
		E: t.A*u.E + t.C*u.F + t.E,
		F: t.B*u.E + t.D*u.F + t.F,
	}
}

// Apply maps a point through the transform.
func (t Transform) Apply(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// IsIdentity reports whether the transform is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// ElasticTransform builds the affine form of an elastic overdrag
// transform: scale about the anchor, then nudge along the drag axis.
// The drag axis grows from the filled end toward the top while shape
// space has Y growing downward, so the offset sign flips when crossing:
// a positive offset (pointer past the top) pulls the shape up.
func ElasticTransform(e elastic.Transform, anchor geometry.Point) Transform {
	return Translate(0, -e.Offset).Mul(ScaleAbout(e.ScaleX, e.ScaleY, anchor))
}
