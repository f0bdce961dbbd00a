package shape

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/kalavine/vslider/pkg/elastic"
	"github.com/kalavine/vslider/pkg/geometry"
)

func approxEq(a, b geometry.Point) bool {
	return scalar.EqualWithinAbs(a.X, b.X, 1e-9) && scalar.EqualWithinAbs(a.Y, b.Y, 1e-9)
}

func TestTransform_Compose(t *testing.T) {
	// Scale about a point then translate: the anchor ends up moved by
	// exactly the translation.
	anchor := geometry.Point{X: 30, Y: 0}
	tr := Translate(0, 5).Mul(ScaleAbout(0.9, 1.1, anchor))
	got := tr.Apply(anchor)
	if !approxEq(got, geometry.Point{X: 30, Y: 5}) {
		t.Errorf("anchor should only translate, got %+v", got)
	}
}

func TestScaleAbout_AnchorFixed(t *testing.T) {
	anchor := geometry.Point{X: 12, Y: 34}
	tr := ScaleAbout(2, 0.5, anchor)
	if got := tr.Apply(anchor); !approxEq(got, anchor) {
		t.Errorf("anchor moved under ScaleAbout: %+v", got)
	}
	// A point one unit right of the anchor lands two units right.
	got := tr.Apply(geometry.Point{X: 13, Y: 34})
	if !approxEq(got, geometry.Point{X: 14, Y: 34}) {
		t.Errorf("expected (14,34), got %+v", got)
	}
}

func TestRoundedRect_ClosedAndConnected(t *testing.T) {
	p := roundedRect(Rect{X: 0, Y: 0, Width: 60, Height: 300}, 20)
	if !p.Closed() {
		t.Fatal("fill outline must be closed")
	}
	// Each arc must begin where the previous segment ended.
	var pen geometry.Point
	for i, s := range p.Segments {
		switch s.Op {
		case MoveTo:
			pen = s.To
		case LineTo:
			pen = s.To
		case ArcTo:
			start := ArcPoint(s.Center, s.Radius, s.Start)
			if !approxEq(start, pen) {
				t.Fatalf("segment %d: arc starts at %+v, pen at %+v", i, start, pen)
			}
			pen = s.EndPoint()
		}
	}
	// Closed path returns to the MoveTo point.
	if !approxEq(pen, p.Segments[0].To) {
		t.Errorf("outline does not return to start: pen %+v", pen)
	}
}

func TestOpenOutline_OmitsEdge(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 60, Height: 300}

	top := openOutline(r, 20, true)
	if top.Closed() {
		t.Error("stroke outline must stay open")
	}
	for _, s := range top.Segments {
		if s.Op == LineTo && s.To.Y == 0 {
			t.Error("top edge present in top-omitted outline")
		}
	}

	bottom := openOutline(r, 20, false)
	for _, s := range bottom.Segments {
		if s.Op == LineTo && s.To.Y == 300 {
			t.Error("bottom edge present in bottom-omitted outline")
		}
	}
}

func TestBuild_RegionExtents(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 60, Height: 300}
	geo := geometry.Compute(0, 300, 70, 30)

	// Ratio 0: progress occupies the bottom 70, background the top 260.
	prog := Build(ProgressFill, 30, rect, geo)
	lo, hi := pathBounds(prog)
	if !scalar.EqualWithinAbs(lo, 230, 1e-9) || !scalar.EqualWithinAbs(hi, 300, 1e-9) {
		t.Errorf("progress spans [%v, %v], expected [230, 300]", lo, hi)
	}

	bg := Build(BackgroundFill, 30, rect, geo)
	lo, hi = pathBounds(bg)
	if !scalar.EqualWithinAbs(lo, 0, 1e-9) || !scalar.EqualWithinAbs(hi, 260, 1e-9) {
		t.Errorf("background spans [%v, %v], expected [0, 260]", lo, hi)
	}
}

// pathBounds returns the min and max Y touched by a path.
func pathBounds(p Path) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	visit := func(pt geometry.Point) {
		lo = math.Min(lo, pt.Y)
		hi = math.Max(hi, pt.Y)
	}
	for _, s := range p.Segments {
		switch s.Op {
		case MoveTo, LineTo:
			visit(s.To)
		case ArcTo:
			visit(ArcPoint(s.Center, s.Radius, s.Start))
			visit(s.EndPoint())
			// Sample axis extremes inside the sweep.
			for _, a := range []float64{math.Pi / 2, -math.Pi / 2, 3 * math.Pi / 2} {
				if (a >= s.Start && a <= s.End) || (a >= s.End && a <= s.Start) {
					visit(ArcPoint(s.Center, s.Radius, a))
				}
			}
		}
	}
	return lo, hi
}

func TestBuildPaths_AnchorFollowsRatio(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 60, Height: 300}
	// A positive offset means the pointer sits past the top end, so the
	// track nudges up, which is down in Y terms.
	over := elastic.Transform{Offset: 4, ScaleX: 0.95, ScaleY: 1.05, ThumbOffset: 4}

	// Mostly empty track: anchor at the top, so the top edge only
	// translates while the bottom stretches away.
	low := BuildPaths(Parameters{Radius: 30, Ratio: 0.2, ThumbLength: 70, Rect: rect, Elastic: over})
	topCorner := low.Transform.Apply(geometry.Point{X: 30, Y: 0})
	if !approxEq(topCorner, geometry.Point{X: 30, Y: -4}) {
		t.Errorf("low ratio: top anchor should move by offset only, got %+v", topCorner)
	}

	// Mostly full track: anchor at the bottom.
	high := BuildPaths(Parameters{Radius: 30, Ratio: 0.8, ThumbLength: 70, Rect: rect, Elastic: over})
	bottomCorner := high.Transform.Apply(geometry.Point{X: 30, Y: 296})
	if !approxEq(bottomCorner, geometry.Point{X: 30, Y: 300 + 1.05*(296-300) - 4}) {
		t.Errorf("high ratio: point near the anchor moves up with the offset, got %+v", bottomCorner)
	}
	anchorPoint := high.Transform.Apply(geometry.Point{X: 30, Y: 300})
	if !approxEq(anchorPoint, geometry.Point{X: 30, Y: 296}) {
		t.Errorf("high ratio: bottom anchor should move by offset only, got %+v", anchorPoint)
	}
}

func TestBuildPaths_TrackFollowsPointer(t *testing.T) {
	// Dragging 40 units below an empty track: the whole outline must
	// shift down, toward the pointer, never away from it.
	rect := Rect{X: 0, Y: 0, Width: 60, Height: 300}
	over := elastic.Compute(geometry.Point{Y: -40}, 230, true,
		geometry.Size{Width: 60, Height: 300}, elastic.Properties{OffsetSize: 10})
	if over.Offset >= 0 {
		t.Fatalf("downward overdrag must produce a negative offset, got %v", over.Offset)
	}

	paths := BuildPaths(Parameters{Radius: 30, Ratio: 0, ThumbLength: 70, Rect: rect, Elastic: over})
	bottom := paths.Transform.Apply(geometry.Point{X: 30, Y: 300})
	if bottom.Y <= 300 {
		t.Errorf("bottom edge must move down toward the pointer, got Y=%v", bottom.Y)
	}
	if !scalar.EqualWithinAbs(bottom.Y, 300-over.Offset, 1e-9) {
		t.Errorf("bottom edge should shift by the offset: want %v, got %v", 300-over.Offset, bottom.Y)
	}
}

func TestBuildPaths_IdentityAtRest(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 60, Height: 300}
	got := BuildPaths(Parameters{
		Radius: 30, Ratio: 0.5, ThumbLength: 70, Rect: rect,
		Elastic: elastic.Identity(),
	})
	if !got.Transform.IsIdentity() {
		t.Errorf("rest elastic must yield identity transform, got %+v", got.Transform)
	}
	if len(got.BackgroundFill.Segments) == 0 || len(got.ProgressStroke.Segments) == 0 {
		t.Error("all four outlines must be populated")
	}
}

func TestVariantString(t *testing.T) {
	names := map[Variant]string{
		BackgroundFill:   "background-fill",
		BackgroundStroke: "background-stroke",
		ProgressFill:     "progress-fill",
		ProgressStroke:   "progress-stroke",
	}
	for v, want := range names {
		if v.String() != want {
			t.Errorf("variant %d: want %q, got %q", v, want, v.String())
		}
	}
}
