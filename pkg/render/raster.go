// Package render turns a slider frame's outline paths into images: a
// raster PNG backend and an SVG backend. Both consume the same segment
// representation, which is the point of keeping paths abstract in the
// core.
package render

import (
	"fmt"
	"image"
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/kalavine/vslider/pkg/shape"
	"github.com/kalavine/vslider/pkg/slider"
	"github.com/kalavine/vslider/pkg/theme"
)

// Raster draws one frame into an image. The canvas is the track rect
// plus the theme padding on every side; the elastic transform is
// applied as a canvas transform so arcs stay exact under anisotropic
// scale.
func Raster(f slider.Frame, s *slider.Slider, th theme.Theme) image.Image {
	return rasterContext(f, s, th).Image()
}

// EncodePNG renders the frame and writes it as PNG.
func EncodePNG(w io.Writer, f slider.Frame, s *slider.Slider, th theme.Theme) error {
	if err := rasterContext(f, s, th).EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

func rasterContext(f slider.Frame, s *slider.Slider, th theme.Theme) *gg.Context {
	cfg := s.Config()
	w := int(cfg.Thickness + 2*th.Padding)
	h := int(f.TrackLength + 2*th.Padding)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)

	dc.Push()
	dc.Translate(th.Padding, th.Padding)
	applyTransform(dc, f.Paths.Transform)

	dc.SetHexColor(th.TrackColor)
	tracePath(dc, f.Paths.BackgroundFill)
	dc.Fill()

	dc.SetHexColor(th.ProgressColor)
	tracePath(dc, f.Paths.ProgressFill)
	dc.Fill()

	dc.SetHexColor(th.StrokeColor)
	dc.SetLineWidth(th.StrokeWidth)
	tracePath(dc, f.Paths.BackgroundStroke)
	dc.Stroke()
	tracePath(dc, f.Paths.ProgressStroke)
	dc.Stroke()

	drawThumb(dc, f, cfg.Thickness, th)
	dc.Pop()

	if th.LabelColor != "" {
		dc.SetHexColor(th.LabelColor)
		dc.SetFontFace(basicfont.Face7x13)
		label := fmt.Sprintf("%.4g", s.Value())
		dc.DrawStringAnchored(label, float64(w)/2, float64(h)-th.Padding/2, 0.5, 0.5)
	}
	return dc
}

// applyTransform decomposes the affine matrix into the translate/scale
// pair gg expects. The elastic transform never shears, so B and C are
// always zero.
func applyTransform(dc *gg.Context, t shape.Transform) {
	if t.IsIdentity() {
		return
	}
	dc.Translate(t.E, t.F)
	dc.Scale(t.A, t.D)
}

// tracePath replays the segment list onto the context's current path.
func tracePath(dc *gg.Context, p shape.Path) {
	for _, seg := range p.Segments {
		switch seg.Op {
		case shape.MoveTo:
			dc.MoveTo(seg.To.X, seg.To.Y)
		case shape.LineTo:
			dc.LineTo(seg.To.X, seg.To.Y)
		case shape.ArcTo:
			dc.DrawArc(seg.Center.X, seg.Center.Y, seg.Radius, seg.Start, seg.End)
		case shape.Close:
			dc.ClosePath()
		}
	}
}

// drawThumb marks the seam between progress and background with a
// simple rounded thumb. Custom thumb rendering stays with the caller;
// this one is for snapshots.
func drawThumb(dc *gg.Context, f slider.Frame, thickness float64, th theme.Theme) {
	if th.ThumbColor == "" || f.ThumbLength <= 0 {
		return
	}
	inset := thickness * 0.15
	dc.SetHexColor(th.ThumbColor)
	dc.DrawRoundedRectangle(inset, thumbTop(f)+inset, thickness-2*inset, f.ThumbLength-2*inset, inset)
	dc.Fill()
}

// thumbTop is the thumb's leading edge in untransformed track
// coordinates. Both backends draw the thumb inside the elastic group,
// where the anchored scale and the offset already carry it along with
// the stretched track end, so no separate thumb correction applies.
func thumbTop(f slider.Frame) float64 {
	return f.TrackLength - f.Track.Progress
}
