package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"calcpad/internal/domain"
	"calcpad/internal/services/keypad"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Press     key.Binding
	Evaluate  key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Press:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press button")),
		Evaluate:  key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter/=", "evaluate")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:     key.NewBinding(key.WithKeys("delete", "c", "C"), key.WithHelp("del/c", "clear")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Evaluate, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Evaluate, k.Backspace, k.Clear, k.Quit},
	}
}

// keyboardKey translates a terminal key event into the keypad's key names.
func keyboardKey(msg tea.KeyMsg) domain.Key {
	switch msg.Type {
	case tea.KeyEnter:
		return keypad.KeyEnter
	case tea.KeyBackspace:
		return keypad.KeyBackspace
	case tea.KeyDelete:
		return keypad.KeyDelete
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return domain.Key(string(msg.Runes))
		}
	}
	return ""
}
