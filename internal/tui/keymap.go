package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines global key bindings used across the TUI.
type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Portfolio key.Binding
	About     key.Binding
	Contact   key.Binding
	Next      key.Binding
	Prev      key.Binding
	Submit    key.Binding
	Blur      key.Binding
	Copy      key.Binding
	Open      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Portfolio: key.NewBinding(
			key.WithKeys("1", "p"),
			key.WithHelp("1/p", "portfolio"),
		),
		About: key.NewBinding(
			key.WithKeys("2", "a"),
			key.WithHelp("2/a", "about"),
		),
		Contact: key.NewBinding(
			key.WithKeys("3", "c"),
			key.WithHelp("3/c", "contact"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open link"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Portfolio, k.About, k.Contact, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Portfolio, k.About, k.Contact},
		{k.Next, k.Prev, k.Submit, k.Blur},
		{k.Copy, k.Open, k.Help, k.Quit},
	}
}
