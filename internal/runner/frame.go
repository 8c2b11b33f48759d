package runner

import (
	"time"

	"github.com/vovakirdan/voicerun/internal/command"
	"github.com/vovakirdan/voicerun/internal/core"
)

// Frame is everything a presentation layer needs to draw one tick.
// Boxes are in world coordinates; subtract CameraX to get viewport coordinates.
type Frame struct {
	Player      core.Rect
	Obstacles   []core.Rect // Visible obstacles only
	CameraX     int
	Elapsed     time.Duration
	Score       int
	State       State
	Running     bool
	Airborne    bool
	LastCommand command.Command
	Tick        int

	ViewportWidth  int
	ViewportHeight int
	GroundY        int
}

// ToViewport converts a world box to viewport coordinates.
func (f Frame) ToViewport(r core.Rect) core.Rect {
	return r.Translate(-f.CameraX, 0)
}

// GameOver reports whether the run has ended.
func (f Frame) GameOver() bool {
	return f.State == StateGameOver
}
