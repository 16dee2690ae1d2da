package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the keybindings of the browser. Anything not bound here is
// ignored and does not count as activity.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageBack    key.Binding
	PageForward key.Binding
	Select      key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous entry"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next entry"),
		),
		PageBack: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous page"),
		),
		PageForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next page"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h", "delete"),
			key.WithHelp("backspace", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

type action int

const (
	actNone action = iota
	actUp
	actDown
	actPageBack
	actPageForward
	actSelect
	actBack
	actQuit
)

func (k KeyMap) action(msg tea.KeyMsg) action {
	switch {
	case key.Matches(msg, k.Up):
		return actUp
	case key.Matches(msg, k.Down):
		return actDown
	case key.Matches(msg, k.PageBack):
		return actPageBack
	case key.Matches(msg, k.PageForward):
		return actPageForward
	case key.Matches(msg, k.Select):
		return actSelect
	case key.Matches(msg, k.Back):
		return actBack
	case key.Matches(msg, k.Quit):
		return actQuit
	}
	return actNone
}

// Wheel scrolls, primary click opens, secondary click goes back.
func mouseAction(msg tea.MouseMsg) action {
	if msg.Action != tea.MouseActionPress {
		return actNone
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return actUp
	case tea.MouseButtonWheelDown:
		return actDown
	case tea.MouseButtonLeft:
		return actSelect
	case tea.MouseButtonRight:
		return actBack
	}
	return actNone
}
