// Package track selects how a slider's total track length is derived
// from layout and drag state, and what happens to the position when an
// expandable track opens or collapses.
package track

// Kind tags a length behavior variant.
type Kind int

const (
	// Dynamic takes the track length from the layout-assigned
	// container length.
	Dynamic Kind = iota
	// Fixed uses a configured constant length.
	Fixed
	// Expandable collapses the track to its thickness at rest and
	// expands to a configured maximum while a drag is active.
	Expandable
)

// Direction controls where an expandable track grows from, and the
// position it resets to when a drag begins.
type Direction int

const (
	Upward Direction = iota
	Downward
	Center
)

// RestRatio is the position an expandable track resets to on drag
// start: the end the track grows away from.
func (d Direction) RestRatio() float64 {
	switch d {
	case Downward:
		return 1
	case Center:
		return 0.5
	default:
		return 0
	}
}

// Behavior is the caller-supplied length policy. Set once per slider
// instance and read-only afterwards.
type Behavior struct {
	Kind      Kind
	Length    float64   // Fixed only
	Direction Direction // Expandable only
	MaxLength float64   // Expandable only
}

// DynamicBehavior derives the length from layout.
func DynamicBehavior() Behavior {
	return Behavior{Kind: Dynamic}
}

// FixedBehavior uses a constant track length.
func FixedBehavior(length float64) Behavior {
	return Behavior{Kind: Fixed, Length: length}
}

// ExpandableBehavior collapses to the track thickness at rest and
// expands toward maxLength during a drag.
func ExpandableBehavior(dir Direction, maxLength float64) Behavior {
	return Behavior{Kind: Expandable, Direction: dir, MaxLength: maxLength}
}

// TrackLength resolves the current total track length. layoutLength is
// the container length assigned by the caller's layout pass; thickness
// is the track's cross-axis extent, which doubles as the collapsed
// length of an expandable track.
func (b Behavior) TrackLength(layoutLength, thickness float64, dragging bool) float64 {
	switch b.Kind {
	case Fixed:
		return b.Length
	case Expandable:
		if dragging {
			return b.MaxLength
		}
		return thickness
	default:
		return layoutLength
	}
}

// Transition describes what a drag edge did to the track.
type Transition struct {
	Expanded   bool    // track switched from collapsed to expanded
	Collapsed  bool    // track switched from expanded to collapsed
	ResetRatio float64 // valid when Expanded is set
}

// Policy tracks the drag-session edge for a behavior. Only the
// false→true and true→false edges of the dragging flag matter; repeated
// updates in the same state are no-ops.
type Policy struct {
	behavior Behavior
	dragging bool
}

// NewPolicy creates a policy for the behavior, starting at rest.
func NewPolicy(b Behavior) *Policy {
	return &Policy{behavior: b}
}

// Behavior returns the configured behavior.
func (p *Policy) Behavior() Behavior {
	return p.behavior
}

// Dragging reports the last observed drag state.
func (p *Policy) Dragging() bool {
	return p.dragging
}

// Update observes the current dragging flag and reports the resulting
// transition. For an expandable track, the rest→drag edge expands the
// track and resets the ratio per the configured direction before any
// drag coordinate is interpreted; the drag→rest edge collapses it.
// Dynamic and Fixed behaviors never transition.
func (p *Policy) Update(dragging bool) Transition {
	was := p.dragging
	p.dragging = dragging
	if p.behavior.Kind != Expandable || was == dragging {
		return Transition{}
	}
	if dragging {
		return Transition{
			Expanded:   true,
			ResetRatio: p.behavior.Direction.RestRatio(),
		}
	}
	return Transition{Collapsed: true}
}
