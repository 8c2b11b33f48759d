package runner

import (
	"context"
	"time"

	"github.com/vovakirdan/voicerun/internal/command"
)

// Loop is the fixed-rate simulation driver. Each tick drains the command
// channel, applies the commands in order and steps the session. The channel is
// the only thing it shares with other goroutines.
type Loop struct {
	commands *command.Channel
	session  *Session
	interval time.Duration
}

// NewLoop creates a loop that ticks session every interval.
func NewLoop(commands *command.Channel, session *Session, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{
		commands: commands,
		session:  session,
		interval: interval,
	}
}

// Tick runs one simulation step. Commands queued while the run is over are
// drained and dropped.
func (l *Loop) Tick() Frame {
	return l.session.Step(l.commands.DrainAll())
}

// Restart starts a new run with the given seed. Commands queued before the
// restart are discarded.
func (l *Loop) Restart(seed int64) Frame {
	l.commands.DrainAll()
	l.session.Restart(seed)
	return l.session.Frame()
}

// Session returns the loop's session.
func (l *Loop) Session() *Session {
	return l.session
}

// Interval returns the tick interval.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run ticks at the loop's fixed rate until ctx is done or emit returns false.
// It returns ctx.Err() on cancellation and nil when emit stops it.
func (l *Loop) Run(ctx context.Context, emit func(Frame) bool) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !emit(l.Tick()) {
				return nil
			}
		}
	}
}
