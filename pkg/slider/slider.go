// Package slider composes the ratio, geometry, elastic, shape and track
// packages into a single stateful control core. The core is pure
// arithmetic: every update recomputes the full frame from the current
// drag location and dragging flag, and the only state carried between
// events is the current ratio and drag location. Rendering, gesture
// recognition and animation belong to the caller.
package slider

import (
	"github.com/kalavine/vslider/pkg/elastic"
	"github.com/kalavine/vslider/pkg/geometry"
	"github.com/kalavine/vslider/pkg/ratio"
	"github.com/kalavine/vslider/pkg/shape"
	"github.com/kalavine/vslider/pkg/track"
)

// Config is the caller-supplied configuration for one slider instance.
// All of it is immutable for the slider's lifetime; what the source
// framework propagated through ambient view context arrives here as an
// explicit struct instead.
type Config struct {
	Range        ratio.Range
	Step         float64 // 0 means continuous
	Thickness    float64 // cross-axis extent
	ThumbLength  float64
	CornerRadius float64
	// ThumbHalo temporarily grows the thumb's effective length while
	// dragging with a custom thumb, shrinking the drag range.
	ThumbHalo float64
	Elastic   elastic.Properties
	Behavior  track.Behavior

	// Drag-session callbacks, invoked with the value at the edge.
	OnDragStart func(value float64)
	OnDragEnd   func(value float64)
}

// DefaultConfig returns a continuous 0..1 slider with a dynamic track.
func DefaultConfig() Config {
	return Config{
		Range:        ratio.Range{Lower: 0, Upper: 1},
		Thickness:    60,
		ThumbLength:  70,
		CornerRadius: 30,
		Behavior:     track.DynamicBehavior(),
	}
}

// Slider is the stateful control core.
type Slider struct {
	cfg    Config
	policy *track.Policy

	pos          float64 // current ratio
	dragLoc      geometry.Point
	dragging     bool
	layoutLength float64 // container length assigned by the caller's layout
}

// New creates a slider positioned at the range's lower bound.
func New(cfg Config) *Slider {
	return &Slider{
		cfg:    cfg,
		policy: track.NewPolicy(cfg.Behavior),
	}
}

// Config returns the slider's configuration.
func (s *Slider) Config() Config {
	return s.cfg
}

// SetLayoutLength records the container length assigned by the caller's
// layout pass; it feeds the Dynamic track behavior.
func (s *Slider) SetLayoutLength(length float64) {
	if length < 0 {
		length = 0
	}
	s.layoutLength = length
}

// Ratio returns the current normalized position.
func (s *Slider) Ratio() float64 {
	return s.pos
}

// Dragging reports whether a drag session is active.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// Value returns the bound value for the current position, quantized to
// the configured step.
func (s *Slider) Value() float64 {
	return ratio.ToValue(s.pos, s.cfg.Range, s.cfg.Step)
}

// SetValue moves the slider to an externally bound value. While a drag
// is active the call is ignored: drag input always wins over external
// changes in the same cycle, and external changes only propagate when
// the slider is idle.
func (s *Slider) SetValue(v float64) {
	if s.dragging {
		return
	}
	s.pos = ratio.ToRatio(v, s.cfg.Range)
}

// Adjust moves the value by n steps, for keyboard or accessibility
// adjustment. For a continuous slider one step is a hundredth of the
// range. Ignored mid-drag for the same reason as SetValue.
func (s *Slider) Adjust(n int) {
	if s.dragging {
		return
	}
	step := s.cfg.Step
	if step <= 0 {
		step = s.cfg.Range.Span() / 100
	}
	s.SetValue(s.Value() + float64(n)*step)
}

// StartDrag begins a drag session at the given location. An expandable
// track expands and resets to its direction's rest position before any
// coordinate is interpreted; other behaviors jump to the pressed
// location immediately.
func (s *Slider) StartDrag(loc geometry.Point) {
	s.dragging = true
	s.dragLoc = loc
	tr := s.policy.Update(true)
	if tr.Expanded {
		s.pos = tr.ResetRatio
	} else {
		s.pos = geometry.DragRatio(loc.Y, s.availableLength())
	}
	if s.cfg.OnDragStart != nil {
		s.cfg.OnDragStart(s.Value())
	}
}

// Drag moves the active drag session to a new location. Without an
// active session the event is ignored.
func (s *Slider) Drag(loc geometry.Point) {
	if !s.dragging {
		return
	}
	s.dragLoc = loc
	s.pos = geometry.DragRatio(loc.Y, s.availableLength())
}

// EndDrag closes the drag session. The drag location does not persist
// between gestures.
func (s *Slider) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.dragLoc = geometry.Point{}
	s.policy.Update(false)
	if s.cfg.OnDragEnd != nil {
		s.cfg.OnDragEnd(s.Value())
	}
}

// TrackLength resolves the current total track length from the
// configured behavior and drag state.
func (s *Slider) TrackLength() float64 {
	return s.cfg.Behavior.TrackLength(s.layoutLength, s.cfg.Thickness, s.dragging)
}

func (s *Slider) effectiveThumb() float64 {
	return geometry.EffectiveThumbLength(s.cfg.ThumbLength, s.cfg.ThumbHalo, s.dragging)
}

func (s *Slider) availableLength() float64 {
	a := s.TrackLength() - s.effectiveThumb()
	if a < 0 {
		return 0
	}
	return a
}

// Frame is the complete instantaneous output for one update cycle,
// rebuilt from scratch on every call and never cached.
type Frame struct {
	TrackLength float64
	ThumbLength float64 // effective, halo included
	Track       geometry.Track
	Elastic     elastic.Transform
	Paths       shape.Paths
}

// Frame computes the current frame. Animation over successive frames is
// the caller's concern; the values here are instantaneous targets.
func (s *Slider) Frame() Frame {
	length := s.TrackLength()
	thumb := s.effectiveThumb()
	geo := geometry.Compute(s.pos, length, thumb, s.cfg.CornerRadius)
	el := elastic.Compute(s.dragLoc, geo.Available, s.dragging,
		geometry.Size{Width: s.cfg.Thickness, Height: length}, s.cfg.Elastic)
	paths := shape.BuildPaths(shape.Parameters{
		Radius:      s.cfg.CornerRadius,
		Ratio:       s.pos,
		ThumbLength: thumb,
		Rect:        shape.Rect{Width: s.cfg.Thickness, Height: length},
		Elastic:     el,
	})
	return Frame{
		TrackLength: length,
		ThumbLength: thumb,
		Track:       geo,
		Elastic:     el,
		Paths:       paths,
	}
}
