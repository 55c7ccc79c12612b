package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Generate  key.Binding
	Copy      key.Binding
	Presets   key.Binding
	Lower     key.Binding
	Upper     key.Binding
	Digits    key.Binding
	Symbols   key.Binding
	Ambiguous key.Binding
	Mode      key.Binding
	Shorter   key.Binding
	Longer    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Generate:  key.NewBinding(key.WithKeys("enter", "g"), key.WithHelp("enter/g", "generate")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Presets:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "preset")),
		Lower:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lowercase")),
		Upper:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "uppercase")),
		Digits:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "digits")),
		Symbols:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "symbols")),
		Ambiguous: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ambiguous")),
		Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Shorter:   key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "shorter")),
		Longer:    key.NewBinding(key.WithKeys("right", "+", "="), key.WithHelp("→/+", "longer")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.Presets, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Copy, k.Presets},
		{k.Lower, k.Upper, k.Digits, k.Symbols},
		{k.Ambiguous, k.Mode, k.Shorter, k.Longer},
		{k.Help, k.Quit},
	}
}
