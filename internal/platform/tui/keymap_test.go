package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voicerun/internal/command"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := DefaultGameKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action KeyAction
		cmd    command.Command
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, KeyCommand, command.Jump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, KeyCommand, command.Jump},
		{"s stops", runes("s"), KeyCommand, command.Stop},
		{"w moves", runes("w"), KeyCommand, command.Move},
		{"r restarts", runes("r"), KeyRestart, 0},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, KeyScreenshot, 0},
		{"q quits", runes("q"), KeyQuit, 0},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit, 0},
		{"unbound", runes("x"), KeyNone, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, cmd := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey() action = %v, expected %v", action, tc.action)
			}
			if action == KeyCommand && cmd != tc.cmd {
				t.Errorf("MapKey() command = %v, expected %v", cmd, tc.cmd)
			}
		})
	}
}
