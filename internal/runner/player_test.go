package runner

import (
	"testing"

	"github.com/vovakirdan/voicerun/internal/config"
)

func TestStoppedPlayerDoesNotAdvance(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	startX := p.X

	p.SetRunning(false)
	p.SetRunning(false)
	for i := 0; i < 20; i++ {
		p.Tick()
		if p.X != startX {
			t.Fatalf("tick %d: X = %d while stopped, expected %d", i, p.X, startX)
		}
	}

	p.SetRunning(true)
	p.Tick()
	if p.X != startX+5 {
		t.Errorf("X = %d after resuming, expected %d", p.X, startX+5)
	}
}

func TestJumpWhileAirborneIsIgnored(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())

	p.RequestJump()
	if !p.Airborne || p.VelocityY != -20 {
		t.Fatalf("after jump: airborne=%v vy=%d, expected true/-20", p.Airborne, p.VelocityY)
	}

	p.Tick()
	vy, y := p.VelocityY, p.Y

	p.RequestJump()
	if p.VelocityY != vy || !p.Airborne || p.Y != y {
		t.Errorf("air jump changed state: vy %d -> %d, y %d -> %d", vy, p.VelocityY, y, p.Y)
	}
}

func TestJumpLandsOnBaseline(t *testing.T) {
	tests := []struct {
		impulse, gravity int
		ticks            int
	}{
		{20, 1, 41},
		{10, 1, 21},
		{15, 1, 31},
		{20, 2, 21},
	}

	for _, tc := range tests {
		cfg := config.DefaultRunnerConfig()
		cfg.Physics.JumpImpulse = tc.impulse
		cfg.Physics.Gravity = tc.gravity

		p := NewPlayer(cfg)
		p.SetRunning(false)
		p.RequestJump()

		n := 0
		for p.Airborne {
			p.Tick()
			n++
			if p.Y > p.Baseline() {
				t.Fatalf("impulse %d: player sank below ground (y=%d)", tc.impulse, p.Y)
			}
			if n > 1000 {
				t.Fatalf("impulse %d: player never landed", tc.impulse)
			}
		}

		if n != tc.ticks {
			t.Errorf("impulse %d gravity %d: landed after %d ticks, expected %d", tc.impulse, tc.gravity, n, tc.ticks)
		}
		if p.Y != p.Baseline() || p.VelocityY != 0 {
			t.Errorf("impulse %d: landed at y=%d vy=%d, expected y=%d vy=0", tc.impulse, p.Y, p.VelocityY, p.Baseline())
		}
	}
}

func TestJumpPeak(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	p.RequestJump()

	top := p.Y
	for p.Airborne {
		p.Tick()
		top = min(top, p.Y)
	}

	// 20 + 19 + ... + 1
	if p.Baseline()-top != 210 {
		t.Errorf("peak height = %d, expected 210", p.Baseline()-top)
	}
}

func TestPlayerRect(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	r := p.Rect()

	if r.X != 100 || r.Y != 310 || r.W != 40 || r.H != 40 {
		t.Errorf("Rect() = %+v, expected player standing at (100, 310)", r)
	}
	if r.Bottom() != 350 {
		t.Errorf("player bottom = %d, expected ground at 350", r.Bottom())
	}
}
