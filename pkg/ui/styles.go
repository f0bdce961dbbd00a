package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kalavine/vslider/pkg/theme"
)

// Spacing constants for layout (in characters).
const (
	SpaceXS = 1
	SpaceSM = 2
)

// Styles is the widget's lipgloss skin, derived from a theme so the
// terminal and image renderings of one slider share a palette.
type Styles struct {
	Track      lipgloss.Style
	Progress   lipgloss.Style
	Thumb      lipgloss.Style
	Label      lipgloss.Style
	FocusLabel lipgloss.Style
	Overdrag   lipgloss.Style
	Frame      lipgloss.Style
	FocusFrame lipgloss.Style
	Status     lipgloss.Style
}

// NewStyles builds the skin from a theme.
func NewStyles(th theme.Theme) Styles {
	track := lipgloss.Color(th.TrackColor)
	progress := lipgloss.Color(th.ProgressColor)
	stroke := lipgloss.Color(th.StrokeColor)
	thumb := lipgloss.Color(th.ThumbColor)
	label := lipgloss.Color(th.LabelColor)

	return Styles{
		Track:      lipgloss.NewStyle().Foreground(track),
		Progress:   lipgloss.NewStyle().Foreground(progress),
		Thumb:      lipgloss.NewStyle().Foreground(thumb).Bold(true),
		Label:      lipgloss.NewStyle().Foreground(label),
		FocusLabel: lipgloss.NewStyle().Foreground(progress).Bold(true),
		Overdrag:   lipgloss.NewStyle().Foreground(thumb),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(stroke).
			Padding(0, SpaceXS),
		FocusFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(progress).
			Padding(0, SpaceXS),
		Status: lipgloss.NewStyle().Foreground(stroke),
	}
}
