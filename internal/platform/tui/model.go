package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voicerun/internal/command"
	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
	"github.com/vovakirdan/voicerun/internal/runner"
)

// Options configures a game model.
type Options struct {
	Runner  config.RunnerConfig
	Runtime core.RuntimeConfig

	// Commands is shared with the voice bridge. A nil channel gets a fresh
	// one, which leaves the keyboard as the only producer.
	Commands *command.Channel

	// VoiceStatus is shown next to the key help, e.g. "voice: pt".
	VoiceStatus string

	// ScreenshotDir is where ctrl+s writes text snapshots.
	ScreenshotDir string

	Logger *log.Logger
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one run. Keys and voice commands both
// go through the command channel; the model owns the simulation loop.
type Model struct {
	loop       *runner.Loop
	commands   *command.Channel
	screen     *core.Screen
	keys       GameKeyMap
	help       help.Model
	frame      runner.Frame
	fixedSeed  int64
	restarting bool
	quitting   bool
	status     string
	shotDir    string
	logger     *log.Logger
}

// NewModel creates a model with a fresh session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	fixed := cfg.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	commands := opts.Commands
	if commands == nil {
		commands = command.NewChannel()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session := runner.NewSession(opts.Runner, cfg)
	loop := runner.NewLoop(commands, session, cfg.TickDuration())

	return Model{
		loop:      loop,
		commands:  commands,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
		frame:     session.Frame(),
		fixedSeed: fixed,
		status:    opts.VoiceStatus,
		shotDir:   opts.ScreenshotDir,
		logger:    logger.WithPrefix("tui"),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The bottom row holds the key help.
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.keys.MapKey(msg)
	switch action {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit
	case KeyScreenshot:
		m.saveScreenshot()
	case KeyRestart:
		// Only offered on the game-over screen.
		if m.frame.GameOver() {
			m.restarting = true
		}
	case KeyCommand:
		m.commands.Push(cmd)
	}
	return m, nil
}

// handleTick advances the simulation by one step. A pending restart is
// handled here so that it happens on the simulation's own schedule.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.restarting {
		m.restarting = false
		m.frame = m.loop.Restart(m.nextSeed())
		m.logger.Debug("restarted", "seed", m.loop.Session().Seed())
		return m, tickCmd(m.loop.Interval())
	}

	wasOver := m.frame.GameOver()
	m.frame = m.loop.Tick()
	if m.frame.GameOver() && !wasOver {
		m.logger.Info("game over", "score", m.frame.Score, "elapsed", m.frame.Elapsed)
	}

	return m, tickCmd(m.loop.Interval())
}

// nextSeed keeps a seed given on the command line so that every run of a
// session is reproducible.
func (m Model) nextSeed() int64 {
	if m.fixedSeed != 0 {
		return m.fixedSeed
	}
	return time.Now().UnixNano()
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	runner.RenderFrame(m.screen, m.frame)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	filename := fmt.Sprintf("voicerun_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Frame returns the last simulated frame.
func (m Model) Frame() runner.Frame {
	return m.frame
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	runner.RenderFrame(m.screen, m.frame)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status+"  ") + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
