package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Tab    key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Left, k.Right, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Tab, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "nahoru")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "dolů")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "méně")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "více")),
	Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("mezera", "přepnout")),
	Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "další panel")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "nápověda")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "konec")),
}
