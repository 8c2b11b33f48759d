package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voicerun/internal/command"
)

// KeyAction is what a key press asks the game model to do.
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyCommand
	KeyRestart
	KeyScreenshot
	KeyQuit
)

// GameKeyMap defines the keyboard fallback for voice commands.
type GameKeyMap struct {
	Jump       key.Binding
	Stop       key.Binding
	Move       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Stop, k.Move, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Stop, k.Move},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up"),
			key.WithHelp("space/up", "jump"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s", "stop"),
		),
		Move: key.NewBinding(
			key.WithKeys("w", "right"),
			key.WithHelp("w", "move"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message. The command is only meaningful for
// KeyCommand.
func (k GameKeyMap) MapKey(msg tea.KeyMsg) (KeyAction, command.Command) {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyQuit, 0
	case key.Matches(msg, k.Screenshot):
		return KeyScreenshot, 0
	case key.Matches(msg, k.Restart):
		return KeyRestart, 0
	case key.Matches(msg, k.Jump):
		return KeyCommand, command.Jump
	case key.Matches(msg, k.Stop):
		return KeyCommand, command.Stop
	case key.Matches(msg, k.Move):
		return KeyCommand, command.Move
	}
	return KeyNone, 0
}
