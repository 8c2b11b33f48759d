package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voicerun/internal/command"
	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
)

func testOptions() Options {
	return Options{
		Runner:  config.DefaultRunnerConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 21, TickRate: 60, Seed: 42},
	}
}

// crashOptions places the first obstacle right in front of the player.
func crashOptions() Options {
	opts := testOptions()
	opts.Runner.Obstacles.FirstMinOffset = -690
	opts.Runner.Obstacles.FirstMaxOffset = -690
	return opts
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model
}

func TestModelKeysFeedTheChannel(t *testing.T) {
	ch := command.NewChannel()
	opts := testOptions()
	opts.Commands = ch
	m := NewModel(opts)

	m = update(t, m, runes("s"))
	if ch.Len() != 1 {
		t.Fatalf("channel Len() = %d, expected 1", ch.Len())
	}

	m = update(t, m, TickMsg{})
	f := m.Frame()
	if f.Running || f.LastCommand != command.Stop || f.Tick != 1 {
		t.Errorf("frame after stop = %+v", f)
	}
	if ch.Len() != 0 {
		t.Error("tick should drain the channel")
	}
}

func TestModelVoiceAndKeysShareChannel(t *testing.T) {
	ch := command.NewChannel()
	opts := testOptions()
	opts.Commands = ch
	m := NewModel(opts)

	ch.Push(command.Jump) // as if from the recognition bridge
	m = update(t, m, TickMsg{})
	if !m.Frame().Airborne {
		t.Error("voice command should reach the session")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m := NewModel(crashOptions())

	m = update(t, m, runes("r"))
	m = update(t, m, TickMsg{})
	if !m.Frame().GameOver() {
		t.Fatal("expected a collision on the first tick")
	}
	if m.Frame().Tick != 1 {
		t.Errorf("restart requested while running should be ignored, Tick = %d", m.Frame().Tick)
	}

	m = update(t, m, runes("r"))
	m = update(t, m, TickMsg{})
	f := m.Frame()
	if f.GameOver() || f.Tick != 0 || f.Score != 0 {
		t.Errorf("frame after restart = %+v", f)
	}
}

func TestModelRestartKeepsFixedSeed(t *testing.T) {
	m := NewModel(crashOptions())
	m = update(t, m, TickMsg{})
	m = update(t, m, runes("r"))
	m = update(t, m, TickMsg{})

	if seed := m.loop.Session().Seed(); seed != 42 {
		t.Errorf("Seed() = %d, expected 42", seed)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testOptions())
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	opts := testOptions()
	opts.VoiceStatus = "voice: pt"
	m := NewModel(opts)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("View() should contain the HUD")
	}
	if !strings.Contains(view, "voice: pt") {
		t.Error("View() should contain the voice status")
	}
	if !strings.Contains(view, "jump") {
		t.Error("View() should contain key help")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(testOptions())
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if m.Frame().Tick != 0 {
		t.Error("resize should not reset or advance the run")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions()
	opts.ScreenshotDir = dir
	m := NewModel(opts)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(files) != 1 || !strings.HasPrefix(files[0].Name(), "voicerun_") {
		t.Fatalf("screenshots = %v", files)
	}
	data, err := os.ReadFile(dir + "/" + files[0].Name())
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("screenshot should contain the HUD")
	}
}
