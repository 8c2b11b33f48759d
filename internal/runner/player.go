package runner

import (
	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
)

// Player is the runner's kinematic state. Y is the top edge of the player box and
// never goes below the ground baseline (GroundY - Height).
type Player struct {
	X         int
	Y         int
	VelocityY int  // Negative = moving up
	Airborne  bool // Set by a jump, cleared on landing
	Running   bool // Whether X advances each tick

	width    int
	height   int
	baseline int
	physics  config.PhysicsConfig
}

// NewPlayer creates a running player standing on the ground at the start position.
func NewPlayer(cfg config.RunnerConfig) *Player {
	baseline := cfg.World.GroundY - cfg.Player.Height
	return &Player{
		X:        cfg.Player.StartX,
		Y:        baseline,
		Running:  true,
		width:    cfg.Player.Width,
		height:   cfg.Player.Height,
		baseline: baseline,
		physics:  cfg.Physics,
	}
}

// RequestJump starts a jump. It is a no-op while airborne.
func (p *Player) RequestJump() {
	if p.Airborne {
		return
	}
	p.Airborne = true
	p.VelocityY = -p.physics.JumpImpulse
}

// SetRunning toggles horizontal advance.
func (p *Player) SetRunning(running bool) {
	p.Running = running
}

// Tick advances the player by one simulation step.
func (p *Player) Tick() {
	if p.Running {
		p.X += p.physics.RunSpeed
	}

	if !p.Airborne {
		return
	}

	p.Y += p.VelocityY
	p.VelocityY += p.physics.Gravity

	// Landed
	if p.Y >= p.baseline {
		p.Y = p.baseline
		p.VelocityY = 0
		p.Airborne = false
	}
}

// Baseline returns the Y of the player's top edge when standing on the ground.
func (p *Player) Baseline() int {
	return p.baseline
}

// Rect returns the player's collision box in world coordinates.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.width, p.height)
}
