package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause key.Binding
	Clear key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", "P", " "),
			key.WithHelp("p", "pause/resume"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "clear buffer"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Clear},
		{k.Help, k.Quit},
	}
}
