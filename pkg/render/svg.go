package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/kalavine/vslider/pkg/shape"
	"github.com/kalavine/vslider/pkg/slider"
	"github.com/kalavine/vslider/pkg/theme"
)

// WriteSVG writes one frame as a standalone SVG document. The elastic
// transform goes on a group so the path data itself stays in track
// coordinates.
func WriteSVG(w io.Writer, f slider.Frame, s *slider.Slider, th theme.Theme) error {
	cfg := s.Config()
	width := int(cfg.Thickness + 2*th.Padding)
	height := int(f.TrackLength + 2*th.Padding)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Gtransform(groupTransform(th.Padding, f.Paths.Transform))

	canvas.Path(pathData(f.Paths.BackgroundFill),
		fmt.Sprintf("fill:%s", th.TrackColor))
	canvas.Path(pathData(f.Paths.ProgressFill),
		fmt.Sprintf("fill:%s", th.ProgressColor))

	strokeStyle := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", th.StrokeColor, th.StrokeWidth)
	canvas.Path(pathData(f.Paths.BackgroundStroke), strokeStyle)
	canvas.Path(pathData(f.Paths.ProgressStroke), strokeStyle)

	if th.ThumbColor != "" && f.ThumbLength > 0 {
		inset := cfg.Thickness * 0.15
		canvas.Roundrect(int(inset), int(thumbTop(f)+inset),
			int(cfg.Thickness-2*inset), int(f.ThumbLength-2*inset),
			int(inset), int(inset),
			fmt.Sprintf("fill:%s", th.ThumbColor))
	}

	canvas.Gend()
	canvas.End()
	return nil
}

// groupTransform renders the padding translation composed with the
// elastic affine as an SVG transform list. SVG applies list entries
// right to left, matching the matrix composition order.
func groupTransform(padding float64, t shape.Transform) string {
	parts := []string{fmt.Sprintf("translate(%g,%g)", padding, padding)}
	if !t.IsIdentity() {
		parts = append(parts,
			fmt.Sprintf("translate(%g,%g)", t.E, t.F),
			fmt.Sprintf("scale(%g,%g)", t.A, t.D))
	}
	return strings.Join(parts, " ")
}

// pathData serializes a path into an SVG d attribute. Arcs become A
// commands; the sweep flag is set when the angle increases, which is
// clockwise with y growing downward.
func pathData(p shape.Path) string {
	var b strings.Builder
	for _, seg := range p.Segments {
		switch seg.Op {
		case shape.MoveTo:
			fmt.Fprintf(&b, "M%g %g ", seg.To.X, seg.To.Y)
		case shape.LineTo:
			fmt.Fprintf(&b, "L%g %g ", seg.To.X, seg.To.Y)
		case shape.ArcTo:
			end := seg.EndPoint()
			large := 0
			if math.Abs(seg.End-seg.Start) > math.Pi {
				large = 1
			}
			sweep := 1
			if seg.End < seg.Start {
				sweep = 0
			}
			fmt.Fprintf(&b, "A%g %g 0 %d %d %g %g ",
				seg.Radius, seg.Radius, large, sweep, end.X, end.Y)
		case shape.Close:
			b.WriteString("Z ")
		}
	}
	return strings.TrimSpace(b.String())
}
