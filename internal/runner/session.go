// Package runner implements the side-scrolling runner simulation: player
// kinematics, the procedural obstacle stream, collision and the
// Running/GameOver lifecycle. Everything here is owned by the simulation loop
// and never touched from another goroutine; input arrives as drained commands.
package runner

import (
	"time"

	"github.com/vovakirdan/voicerun/internal/command"
	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session holds all state for one run: player, obstacles, score and timer.
type Session struct {
	cfg      config.RunnerConfig
	tickRate int
	seed     int64

	player  *Player
	world   *World
	state   State
	score   float64 // Accumulated while the player is running
	ticks   int     // Ticks spent in StateRunning
	cameraX int
	last    command.Command // Last command applied, for the HUD
}

// NewSession creates a session in StateRunning.
func NewSession(cfg config.RunnerConfig, runtime core.RuntimeConfig) *Session {
	s := &Session{
		cfg:      cfg,
		tickRate: runtime.TickRate,
	}
	s.Restart(runtime.Seed)
	return s
}

// Restart reinitializes player, obstacles, score and timer and returns to
// StateRunning. It may be called in any state.
func (s *Session) Restart(seed int64) {
	s.seed = seed
	s.player = NewPlayer(s.cfg)
	if s.world == nil {
		s.world = NewWorld(seed, s.cfg)
	} else {
		s.world.Reset(seed)
	}
	s.state = StateRunning
	s.score = 0
	s.ticks = 0
	s.cameraX = s.player.X - s.cfg.World.CameraLead
	s.last = 0
}

// Apply applies a single command to the player. Repeated commands are harmless:
// Stop and Move are idempotent and Jump is ignored while airborne.
func (s *Session) Apply(cmd command.Command) {
	if s.state != StateRunning {
		return
	}
	switch cmd {
	case command.Jump:
		s.player.RequestJump()
	case command.Stop:
		s.player.SetRunning(false)
	case command.Move:
		s.player.SetRunning(true)
	default:
		return
	}
	s.last = cmd
}

// Step advances the session by one tick after applying cmds in order.
// In StateGameOver commands are discarded and nothing moves.
func (s *Session) Step(cmds []command.Command) Frame {
	if s.state == StateGameOver {
		return s.Frame()
	}

	for _, cmd := range cmds {
		s.Apply(cmd)
	}

	s.player.Tick()
	s.cameraX = s.player.X - s.cfg.World.CameraLead
	if s.player.Running {
		s.score += float64(s.cfg.Physics.RunSpeed) * s.cfg.Physics.ScoreRate
	}
	s.ticks++

	s.world.Cull(s.cameraX)
	s.world.Replenish()

	if s.world.Collides(s.player.Rect()) {
		s.state = StateGameOver
	}

	return s.Frame()
}

// Frame returns the render-ready view of the current state.
func (s *Session) Frame() Frame {
	f := Frame{
		Player:         s.player.Rect(),
		CameraX:        s.cameraX,
		Elapsed:        s.Elapsed(),
		Score:          s.Score(),
		State:          s.state,
		Running:        s.player.Running,
		Airborne:       s.player.Airborne,
		LastCommand:    s.last,
		Tick:           s.ticks,
		ViewportWidth:  s.cfg.World.ViewportWidth,
		ViewportHeight: s.cfg.World.ViewportHeight,
		GroundY:        s.cfg.World.GroundY,
	}
	for o := range s.world.Visible(s.cameraX, s.cfg.World.ViewportWidth) {
		f.Obstacles = append(f.Obstacles, o.Rect())
	}
	return f
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the score as displayed (whole points).
func (s *Session) Score() int {
	return int(s.score)
}

// Elapsed returns the simulated time spent running.
func (s *Session) Elapsed() time.Duration {
	rate := s.tickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(s.ticks) * time.Second / time.Duration(rate)
}

// Seed returns the seed the current run was generated from.
func (s *Session) Seed() int64 {
	return s.seed
}

// Player returns the session's player.
func (s *Session) Player() *Player {
	return s.player
}

// World returns the session's obstacle generator.
func (s *Session) World() *World {
	return s.world
}
