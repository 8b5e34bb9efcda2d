package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the few keyboard bindings; the timer itself is pointer-only.
type keyMap struct {
	Quit key.Binding
	Help key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Help, k.Quit},
		{
			key.NewBinding(key.WithKeys("click"), key.WithHelp("click egg", "open")),
			key.NewBinding(key.WithKeys("drag"), key.WithHelp("drag ←/→", "wind")),
			key.NewBinding(key.WithKeys("click outside"), key.WithHelp("click outside", "close")),
		},
	}
}
