package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the widget's key bindings. Arrow adjustment is the
// accessibility path: every value change available by drag is also
// reachable from the keyboard.
type KeyMap struct {
	Increase key.Binding
	Decrease key.Binding
	BigUp    key.Binding
	BigDown  key.Binding
	Max      key.Binding
	Min      key.Binding
	Next     key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increase: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "decrease"),
		),
		BigUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "increase ×10"),
		),
		BigDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "decrease ×10"),
		),
		Max: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "maximum"),
		),
		Min: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "minimum"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next slider"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy value"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Next, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increase, k.Decrease, k.BigUp, k.BigDown},
		{k.Min, k.Max, k.Next},
		{k.Copy, k.Help, k.Quit},
	}
}
