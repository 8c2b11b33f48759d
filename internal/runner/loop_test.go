package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/voicerun/internal/command"
	"github.com/vovakirdan/voicerun/internal/config"
)

func newTestLoop(seed int64) (*Loop, *command.Channel) {
	ch := command.NewChannel()
	s := NewSession(config.DefaultRunnerConfig(), testRuntime(seed))
	return NewLoop(ch, s, time.Millisecond), ch
}

func TestLoopTickDrainsChannel(t *testing.T) {
	loop, ch := newTestLoop(1)

	ch.Push(command.Stop)
	ch.Push(command.Jump)
	f := loop.Tick()

	if ch.Len() != 0 {
		t.Errorf("channel not drained, Len() = %d", ch.Len())
	}
	if f.Running || !f.Airborne {
		t.Errorf("running=%v airborne=%v, expected stopped and airborne", f.Running, f.Airborne)
	}
	if f.LastCommand != command.Jump {
		t.Errorf("last command = %v, expected jump", f.LastCommand)
	}

	// Nothing queued: a plain tick.
	if f = loop.Tick(); f.Tick != 2 {
		t.Errorf("tick = %d, expected 2", f.Tick)
	}
}

func TestLoopDropsCommandsAfterGameOver(t *testing.T) {
	loop, ch := newTestLoop(1)
	s := loop.Session()
	s.world.obstacles = append([]Obstacle{s.world.newObstacle(s.player.X)}, s.world.obstacles...)

	if f := loop.Tick(); !f.GameOver() {
		t.Fatal("expected game over")
	}

	for i := 0; i < 50; i++ {
		ch.Push(command.Jump)
	}
	loop.Tick()
	if ch.Len() != 0 {
		t.Errorf("commands should still be drained after game over, Len() = %d", ch.Len())
	}
	if s.Player().Airborne {
		t.Error("jump applied after game over")
	}
}

func TestLoopRestartDiscardsPending(t *testing.T) {
	loop, ch := newTestLoop(1)
	ch.Push(command.Stop)

	f := loop.Restart(2)
	if ch.Len() != 0 {
		t.Errorf("pending commands survived restart, Len() = %d", ch.Len())
	}
	if !f.Running || f.State != StateRunning || loop.Session().Seed() != 2 {
		t.Errorf("unexpected frame after restart: %+v", f)
	}

	if f = loop.Tick(); !f.Running {
		t.Error("stop queued before restart should not apply")
	}
}

func TestLoopRunStopsWhenEmitDeclines(t *testing.T) {
	loop, _ := newTestLoop(1)

	frames := 0
	err := loop.Run(context.Background(), func(f Frame) bool {
		frames++
		return frames < 5
	})
	if err != nil {
		t.Fatalf("Run() returned %v", err)
	}
	if frames != 5 || loop.Session().Frame().Tick != 5 {
		t.Errorf("frames=%d tick=%d, expected 5", frames, loop.Session().Frame().Tick)
	}
}

func TestLoopRunHonoursContext(t *testing.T) {
	loop, _ := newTestLoop(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loop.Run(ctx, func(Frame) bool { return true })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
}

func TestNewLoopDefaultInterval(t *testing.T) {
	loop := NewLoop(command.NewChannel(), NewSession(config.DefaultRunnerConfig(), testRuntime(1)), 0)
	if loop.Interval() != time.Second/60 {
		t.Errorf("Interval() = %v, expected 60 Hz", loop.Interval())
	}
}
