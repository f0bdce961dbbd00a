package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# vslider demo

Three vertical sliders, one per track length behavior:

- **dynamic** — track fills the assigned layout height
- **fixed** — track keeps a constant length
- **expandable** — collapsed at rest, expands while dragging and
  resets to its direction's rest position

## Controls

| Key | Action |
|-----|--------|
| ↑/k, ↓/j | adjust by one step |
| pgup, pgdn | adjust by ten steps |
| home, end | jump to bound |
| tab | focus next slider |
| y | copy value to clipboard |
| ? | toggle this help |
| q | quit |

Drag with the mouse; dragging past either end shows the elastic
overdrag response.
`

// RenderHelp renders the help text as terminal markdown, wrapped to
// the given width. A render failure falls back to the raw markdown so
// help is never unavailable.
func RenderHelp(width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}
