package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/kalavine/vslider/pkg/elastic"
	"github.com/kalavine/vslider/pkg/geometry"
	"github.com/kalavine/vslider/pkg/slider"
	"github.com/kalavine/vslider/pkg/theme"
)

// cellPixels is the core-space length of one terminal row. The core
// works in continuous units; the widget quantizes to rows only when
// rendering, so the geometry invariants hold independent of cell size.
const cellPixels = 8.0

// barWidth is the track width in characters.
const barWidth = 3

// SliderModel is a reusable vertical slider component for bubbletea
// programs. It owns a slider core and translates terminal input into
// the core's drag and adjustment operations.
type SliderModel struct {
	core   *slider.Slider
	keys   KeyMap
	styles Styles
	label  string

	// originX, originY are the screen cell of the track's top-left
	// corner, set by the embedding layout so mouse events can be
	// mapped into track-local coordinates.
	originX, originY int
	focused          bool
}

// NewSliderModel creates a widget around a fresh core.
func NewSliderModel(cfg slider.Config, label string, th theme.Theme) SliderModel {
	m := SliderModel{
		core:   slider.New(cfg),
		keys:   DefaultKeyMap(),
		styles: NewStyles(th),
		label:  label,
	}
	return m
}

// SetTheme swaps the skin, e.g. after a live theme reload.
func (m *SliderModel) SetTheme(th theme.Theme) {
	m.styles = NewStyles(th)
}

// SetOrigin records where the embedding layout placed the track.
func (m *SliderModel) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetLayoutRows feeds the layout-assigned track length (in rows) to
// the core's dynamic length behavior.
func (m *SliderModel) SetLayoutRows(rows int) {
	if rows < 1 {
		rows = 1
	}
	m.core.SetLayoutLength(float64(rows) * cellPixels)
}

// Focus directs keyboard input to this slider.
func (m *SliderModel) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *SliderModel) Blur() { m.focused = false }

// Focused reports keyboard focus.
func (m SliderModel) Focused() bool { return m.focused }

// Value returns the current bound value.
func (m SliderModel) Value() float64 { return m.core.Value() }

// SetValue forwards an external value change to the core; it loses
// against an active drag per the core's priority rule.
func (m *SliderModel) SetValue(v float64) { m.core.SetValue(v) }

// Dragging reports whether a mouse drag session is active.
func (m SliderModel) Dragging() bool { return m.core.Dragging() }

// rows returns the current track height in rows.
func (m SliderModel) rows() int {
	r := int(m.core.TrackLength()/cellPixels + 0.5)
	if r < 1 {
		r = 1
	}
	return r
}

// trackCoord maps a screen row to the core's drag axis, which grows
// from the filled (bottom) end of the track. The pointer aims at the
// thumb's center, so half the effective thumb length comes off to get
// the thumb-leading coordinate the core divides by the available
// length. Without the correction the top thumb-height band saturates
// while the bottom row can never reach the empty position.
func (m SliderModel) trackCoord(screenY int) float64 {
	cfg := m.core.Config()
	thumb := geometry.EffectiveThumbLength(cfg.ThumbLength, cfg.ThumbHalo, m.core.Dragging())
	fromTop := float64(screenY-m.originY) + 0.5
	return m.core.TrackLength() - fromTop*cellPixels - thumb/2
}

func (m SliderModel) hit(x, y int) bool {
	return x >= m.originX && x < m.originX+barWidth &&
		y >= m.originY && y < m.originY+m.rows()
}

// Update implements the bubbletea sub-model convention.
func (m SliderModel) Update(msg tea.Msg) (SliderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Increase):
			m.core.Adjust(1)
		case key.Matches(msg, m.keys.Decrease):
			m.core.Adjust(-1)
		case key.Matches(msg, m.keys.BigUp):
			m.core.Adjust(10)
		case key.Matches(msg, m.keys.BigDown):
			m.core.Adjust(-10)
		case key.Matches(msg, m.keys.Max):
			m.core.SetValue(m.core.Config().Range.Upper)
		case key.Matches(msg, m.keys.Min):
			m.core.SetValue(m.core.Config().Range.Lower)
		}
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m SliderModel) updateMouse(msg tea.MouseMsg) (SliderModel, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.hit(msg.X, msg.Y) {
				m.core.StartDrag(geometry.Point{Y: m.trackCoord(msg.Y)})
			}
		case tea.MouseButtonWheelUp:
			if m.hit(msg.X, msg.Y) {
				m.core.Adjust(1)
			}
		case tea.MouseButtonWheelDown:
			if m.hit(msg.X, msg.Y) {
				m.core.Adjust(-1)
			}
		}
	case tea.MouseActionMotion:
		// Motion outside the track bounds keeps feeding the core; that
		// is exactly the overdrag case the elastic model handles.
		if m.core.Dragging() {
			m.core.Drag(geometry.Point{Y: m.trackCoord(msg.Y)})
		}
	case tea.MouseActionRelease:
		if m.core.Dragging() {
			m.core.EndDrag()
		}
	}
	return m, nil
}

// View renders the track column plus a value label.
func (m SliderModel) View() string {
	f := m.core.Frame()
	rows := m.rows()

	progressRows := 0
	if f.TrackLength > 0 {
		progressRows = int(f.Track.Progress/f.TrackLength*float64(rows) + 0.5)
	}
	if progressRows > rows {
		progressRows = rows
	}
	thumbRow := rows - progressRows // first filled row from the top

	var b strings.Builder
	if over := overdragMark(f.Elastic); over != "" {
		b.WriteString(m.styles.Overdrag.Render(center(over, barWidth)))
	} else {
		b.WriteString(strings.Repeat(" ", barWidth))
	}
	b.WriteByte('\n')

	for i := 0; i < rows; i++ {
		switch {
		case i == thumbRow && progressRows > 0:
			b.WriteString(m.styles.Thumb.Render(strings.Repeat("█", barWidth)))
		case i >= rows-progressRows:
			b.WriteString(m.styles.Progress.Render(strings.Repeat("█", barWidth)))
		default:
			b.WriteString(m.styles.Track.Render(strings.Repeat("░", barWidth)))
		}
		b.WriteByte('\n')
	}

	label := fmt.Sprintf("%.4g", m.core.Value())
	width := barWidth + 2*SpaceSM
	label = runewidth.Truncate(label, width, "…")
	style := m.styles.Label
	if m.focused {
		style = m.styles.FocusLabel
	}
	b.WriteString(style.Render(center(label, width)))
	return b.String()
}

// overdragMark picks the stretch indicator for the current elastic
// state: blank at rest, an arrow pointing past the exceeded end
// otherwise.
func overdragMark(e elastic.Transform) string {
	switch {
	case e == elastic.Identity():
		return ""
	case e.Offset < 0:
		return "⇣"
	default:
		return "⇡"
	}
}

func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
