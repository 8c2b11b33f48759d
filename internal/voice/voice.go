// Package voice turns a live stream of speech-recognition hypotheses into
// runner commands. The Bridge runs on its own goroutine and talks to the game
// only through a command sink.
package voice

import (
	"errors"
	"time"

	"github.com/vovakirdan/voicerun/internal/command"
)

// ErrNoModel is returned when the recognition model cannot be found.
var ErrNoModel = errors.New("voice: recognition model not found")

// Hypothesis is the recognizer's view after consuming one audio chunk.
type Hypothesis struct {
	// Final is set when the engine detected an utterance boundary.
	Final string
	// Partial is the evolving best guess for the current utterance. It may be
	// revised by later chunks.
	Partial string
}

// Recognizer consumes 16-bit little-endian mono PCM and reports its current
// hypothesis.
type Recognizer interface {
	Accept(pcm []byte) (Hypothesis, error)
	Close()
}

// Source delivers fixed-size chunks of PCM audio. ReadChunk blocks until a
// chunk is available.
type Source interface {
	ReadChunk() ([]byte, error)
	Close() error
}

// Sink receives commands. command.Channel implements it.
type Sink interface {
	Push(cmd command.Command)
}

// Event describes one command derived from a partial transcript.
type Event struct {
	Partial string
	Command command.Command
	At      time.Time
}

// Recorder persists events. Failures are logged and otherwise ignored.
type Recorder interface {
	Record(ev Event) error
}
