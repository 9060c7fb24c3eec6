package tui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	GrowMore   key.Binding
	ShrinkMore key.Binding
	Mode       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next divider"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev divider"),
		),
		Grow: key.NewBinding(
			key.WithKeys("right", "down", "l", "j"),
			key.WithHelp("→/↓", "move"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("left", "up", "h", "k"),
			key.WithHelp("←/↑", "move back"),
		),
		GrowMore: key.NewBinding(
			key.WithKeys("shift+right", "shift+down", "L", "J"),
		),
		ShrinkMore: key.NewBinding(
			key.WithKeys("shift+left", "shift+up", "H", "K"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "drag mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Grow, k.Mode, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Grow, k.Shrink, k.GrowMore, k.ShrinkMore},
		{k.Mode, k.Quit},
	}
}
