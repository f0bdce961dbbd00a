package track

import "testing"

func TestTrackLength(t *testing.T) {
	tests := []struct {
		name     string
		b        Behavior
		layout   float64
		thick    float64
		dragging bool
		want     float64
	}{
		{name: "dynamic follows layout", b: DynamicBehavior(), layout: 420, thick: 60, want: 420},
		{name: "dynamic ignores drag", b: DynamicBehavior(), layout: 420, thick: 60, dragging: true, want: 420},
		{name: "fixed constant", b: FixedBehavior(300), layout: 420, thick: 60, want: 300},
		{name: "expandable at rest", b: ExpandableBehavior(Upward, 350), layout: 420, thick: 60, want: 60},
		{name: "expandable dragging", b: ExpandableBehavior(Upward, 350), layout: 420, thick: 60, dragging: true, want: 350},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.b.TrackLength(tt.layout, tt.thick, tt.dragging)
			if got != tt.want {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDirectionRestRatio(t *testing.T) {
	if Upward.RestRatio() != 0 {
		t.Errorf("Upward: want 0, got %v", Upward.RestRatio())
	}
	if Downward.RestRatio() != 1 {
		t.Errorf("Downward: want 1, got %v", Downward.RestRatio())
	}
	if Center.RestRatio() != 0.5 {
		t.Errorf("Center: want 0.5, got %v", Center.RestRatio())
	}
}

func TestPolicy_ExpandableEdges(t *testing.T) {
	p := NewPolicy(ExpandableBehavior(Center, 350))

	// Drag start: expand and reset to the direction's rest position,
	// before any drag coordinate is interpreted.
	tr := p.Update(true)
	if !tr.Expanded {
		t.Fatal("expected expansion on drag start")
	}
	if tr.ResetRatio != 0.5 {
		t.Errorf("center direction: want reset 0.5, got %v", tr.ResetRatio)
	}

	// Repeated drag updates are not edges.
	if tr := p.Update(true); tr.Expanded || tr.Collapsed {
		t.Errorf("no transition expected mid-drag, got %+v", tr)
	}

	// Drag end collapses.
	tr = p.Update(false)
	if !tr.Collapsed {
		t.Fatal("expected collapse on drag end")
	}
	if tr := p.Update(false); tr.Collapsed {
		t.Error("repeated rest updates must not collapse again")
	}
}

func TestPolicy_NonExpandableNeverTransitions(t *testing.T) {
	for _, b := range []Behavior{DynamicBehavior(), FixedBehavior(300)} {
		p := NewPolicy(b)
		if tr := p.Update(true); tr.Expanded || tr.Collapsed {
			t.Errorf("behavior %v: unexpected transition %+v", b.Kind, tr)
		}
		if tr := p.Update(false); tr.Expanded || tr.Collapsed {
			t.Errorf("behavior %v: unexpected transition %+v", b.Kind, tr)
		}
	}
}
