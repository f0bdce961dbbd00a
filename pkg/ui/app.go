package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kalavine/vslider/pkg/elastic"
	"github.com/kalavine/vslider/pkg/ratio"
	"github.com/kalavine/vslider/pkg/slider"
	"github.com/kalavine/vslider/pkg/theme"
	"github.com/kalavine/vslider/pkg/track"
)

// ThemeMsg delivers a reloaded theme to the running program.
type ThemeMsg struct {
	Theme theme.Theme
}

// panel layout constants, in cells.
const (
	panelPad   = SpaceXS // frame padding on each side
	panelGap   = SpaceSM
	topMargin  = 1
	sideMargin = SpaceSM
)

// AppModel is the demo application: one slider per track length
// behavior, with focus cycling, clipboard copy, a help overlay, and
// live theme reload.
type AppModel struct {
	sliders []SliderModel
	names   []string
	keys    KeyMap
	help    help.Model
	styles  Styles
	theme   theme.Theme

	focus    int
	width    int
	height   int
	showHelp bool
	status   string
}

// NewAppModel builds the demo with the given range, step and elastic
// response shared by all three sliders.
func NewAppModel(rng ratio.Range, step float64, props elastic.Properties, th theme.Theme) AppModel {
	base := slider.Config{
		Range:        rng,
		Step:         step,
		Thickness:    barWidth * cellPixels,
		ThumbLength:  2 * cellPixels,
		CornerRadius: cellPixels,
		ThumbHalo:    cellPixels / 2,
		Elastic:      props,
	}

	dynamic := base
	dynamic.Behavior = track.DynamicBehavior()
	fixed := base
	fixed.Behavior = track.FixedBehavior(12 * cellPixels)
	expandable := base
	expandable.Behavior = track.ExpandableBehavior(track.Center, 12*cellPixels)

	m := AppModel{
		sliders: []SliderModel{
			NewSliderModel(dynamic, "dynamic", th),
			NewSliderModel(fixed, "fixed", th),
			NewSliderModel(expandable, "expandable", th),
		},
		names:  []string{"dynamic", "fixed", "expandable"},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(th),
		theme:  th,
	}
	mid := rng.Lower + rng.Span()/2
	for i := range m.sliders {
		m.sliders[i].SetValue(mid)
	}
	m.sliders[0].Focus()
	return m
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case ThemeMsg:
		m.theme = msg.Theme
		m.styles = NewStyles(msg.Theme)
		for i := range m.sliders {
			m.sliders[i].SetTheme(msg.Theme)
		}
		m.status = fmt.Sprintf("theme %q reloaded", msg.Theme.Name)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.sliders[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.sliders)
			m.sliders[m.focus].Focus()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			v := fmt.Sprintf("%g", m.sliders[m.focus].Value())
			if err := clipboard.WriteAll(v); err != nil {
				slog.Warn("clipboard write failed", "err", err)
				m.status = "clipboard unavailable"
			} else {
				m.status = fmt.Sprintf("copied %s", v)
			}
			return m, nil
		}
		if m.showHelp {
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.sliders {
		var cmd tea.Cmd
		m.sliders[i], cmd = m.sliders[i].Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	// A drag can expand or collapse a track, which moves everything
	// after it; keep origins in sync with what View will draw.
	m.layout()
	return m, tea.Batch(cmds...)
}

// layout assigns each slider its dynamic track length and screen
// origin. The panel column for slider i starts after the previous
// panels plus gaps; inside a panel the track sits below the title row,
// within the frame border and padding.
func (m *AppModel) layout() {
	rows := m.height - 10 // title, label, overdrag row, borders, status
	if rows < 4 {
		rows = 4
	}
	x := sideMargin
	for i := range m.sliders {
		m.sliders[i].SetLayoutRows(rows)
		// border + padding + overdrag row + title row
		m.sliders[i].SetOrigin(x+1+panelPad, topMargin+1+1+1)
		x += barWidth + 2*panelPad + 2 + panelGap
	}
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.showHelp {
		return RenderHelp(m.width)
	}

	panels := make([]string, 0, len(m.sliders))
	for i := range m.sliders {
		title := m.names[i]
		style := m.styles.Label
		frame := m.styles.Frame
		if i == m.focus {
			style = m.styles.FocusLabel
			frame = m.styles.FocusFrame
		}
		frame = frame.MarginRight(panelGap)
		content := style.Render(center(title, barWidth)) + "\n" + m.sliders[i].View()
		panels = append(panels, frame.Render(content))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	status := m.status
	if status == "" {
		status = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return strings.Repeat("\n", topMargin) +
		lipgloss.NewStyle().MarginLeft(sideMargin).Render(row) +
		"\n" + m.styles.Status.Render(" "+status) + "\n"
}
