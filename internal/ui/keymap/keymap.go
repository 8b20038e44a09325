package keymap

import "github.com/charmbracelet/bubbles/key"

// main
type KeyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	ShowPalette key.Binding
	Settings    key.Binding
}

func NewKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		ShowPalette: key.NewBinding(
			key.WithKeys("alt+k"),
			key.WithHelp("alt(opt)+k", "actions"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "custom domain"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Settings,
		k.ShowPalette,
		k.Quit,
	}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}

// prompt
type PromptKeyMap struct {
	Focus    key.Binding
	Activate key.Binding
}

func NewPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "switch button"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
	}
}

func (k PromptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Focus,
		k.Activate,
	}
}

func (k PromptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}

// dialog
type DialogKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Close    key.Binding
}

func NewDialogKeyMap() DialogKeyMap {
	return DialogKeyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save/copy/open")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k DialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Next,
		k.Activate,
		k.Close,
	}
}

func (k DialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}

// palette
type PaletteKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Pick key.Binding
	Hide key.Binding
}

func NewPaletteKeyMap() PaletteKeyMap {
	return PaletteKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down: key.NewBinding(key.WithKeys("down", "ctrl+n")),
		Pick: key.NewBinding(key.WithKeys("enter")),
		Hide: key.NewBinding(key.WithKeys("esc", "alt+k")),
	}
}
