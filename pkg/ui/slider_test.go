package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kalavine/vslider/pkg/ratio"
	"github.com/kalavine/vslider/pkg/slider"
	"github.com/kalavine/vslider/pkg/theme"
	"github.com/kalavine/vslider/pkg/track"
)

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func testWidget(t *testing.T) SliderModel {
	t.Helper()
	m := NewSliderModel(slider.Config{
		Range:        ratio.Range{Lower: 0, Upper: 100},
		Step:         5,
		Thickness:    barWidth * cellPixels,
		ThumbLength:  2 * cellPixels,
		CornerRadius: cellPixels,
		Behavior:     track.FixedBehavior(10 * cellPixels),
	}, "test", theme.Default())
	m.SetOrigin(0, 0)
	m.Focus()
	return m
}

func TestWidget_KeyboardAdjust(t *testing.T) {
	m := testWidget(t)
	m.SetValue(50)

	m, _ = m.Update(keyMsg("up"))
	if got := m.Value(); got != 55 {
		t.Errorf("up: expected 55, got %v", got)
	}
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("down"))
	if got := m.Value(); got != 45 {
		t.Errorf("down twice: expected 45, got %v", got)
	}
	m, _ = m.Update(keyMsg("end"))
	if got := m.Value(); got != 100 {
		t.Errorf("end: expected 100, got %v", got)
	}
	m, _ = m.Update(keyMsg("home"))
	if got := m.Value(); got != 0 {
		t.Errorf("home: expected 0, got %v", got)
	}
}

func TestWidget_IgnoresKeysWhenBlurred(t *testing.T) {
	m := testWidget(t)
	m.SetValue(50)
	m.Blur()
	m, _ = m.Update(keyMsg("up"))
	if got := m.Value(); got != 50 {
		t.Errorf("blurred widget must not react to keys, got %v", got)
	}
}

func TestWidget_MouseDragSession(t *testing.T) {
	m := testWidget(t)

	press := tea.MouseMsg{X: 1, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = m.Update(press)
	if !m.Dragging() {
		t.Fatal("press inside track must start a drag")
	}

	// Drag to the top row: nearly full value.
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	high := m.Value()

	// Drag to the bottom row: nearly empty.
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	low := m.Value()
	if high <= low {
		t.Errorf("upward drag must increase value: top=%v bottom=%v", high, low)
	}

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Dragging() {
		t.Error("release must end the drag session")
	}
}

func TestWidget_DragReachesBothEnds(t *testing.T) {
	// Track 10 rows (80 units), thumb 16: the available span is 64, so
	// the thumb-center correction must let the extreme rows reach both
	// range bounds instead of leaving a dead band at each end.
	m := testWidget(t)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Value(); got != 0 {
		t.Errorf("press on the bottom row must reach 0, got %v", got)
	}

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if got := m.Value(); got != 100 {
		t.Errorf("drag to the top row must reach 100, got %v", got)
	}
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func TestWidget_PressOutsideIgnored(t *testing.T) {
	m := testWidget(t)
	m, _ = m.Update(tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Dragging() {
		t.Error("press outside the track must not start a drag")
	}
}

func TestWidget_MotionOutsideKeepsDrag(t *testing.T) {
	// Dragging past the track end is the overdrag case; the session
	// must survive and the value must clamp.
	m := testWidget(t)
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: -8, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if !m.Dragging() {
		t.Fatal("drag session must survive motion outside the track")
	}
	if got := m.Value(); got != 100 {
		t.Errorf("overdrag above the track must clamp to 100, got %v", got)
	}
}

func TestWidget_WheelAdjusts(t *testing.T) {
	m := testWidget(t)
	m.SetValue(50)
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := m.Value(); got != 55 {
		t.Errorf("wheel up: expected 55, got %v", got)
	}
}

func TestWidget_ViewShowsProgress(t *testing.T) {
	m := testWidget(t)
	m.SetValue(0)
	empty := m.View()
	m.SetValue(100)
	full := m.View()

	if strings.Count(full, "█") <= strings.Count(empty, "█") {
		t.Error("full slider must render more filled cells than empty one")
	}
	if !strings.Contains(full, "100") {
		t.Error("value label missing from view")
	}
}

func TestWidget_ViewRowCount(t *testing.T) {
	m := testWidget(t)
	// overdrag row + 10 track rows + label row
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Errorf("expected 12 lines, got %d", len(lines))
	}
}
