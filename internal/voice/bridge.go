package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a Bridge.
type Options struct {
	// OpenRecognizer loads the recognition model. It is called once, before
	// any audio device is touched.
	OpenRecognizer func() (Recognizer, error)
	// OpenSource opens the audio input.
	OpenSource func() (Source, error)
	Vocabulary Vocabulary
	Logger     *log.Logger
	// Journal is optional.
	Journal Recorder
	// Now is overridable for tests.
	Now func() time.Time
}

// Bridge reads audio, feeds it to a recognizer and pushes one command for
// every partial hypothesis that names a keyword.
type Bridge struct {
	sink Sink
	opts Options
	log  *log.Logger
	done chan struct{}
}

// NewBridge creates a bridge that delivers commands to sink.
func NewBridge(sink Sink, opts Options) *Bridge {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Bridge{
		sink: sink,
		opts: opts,
		log:  logger.WithPrefix("voice"),
		done: make(chan struct{}),
	}
}

// Start runs the bridge on its own goroutine. The game keeps running if the
// bridge stops; Done is closed when it does.
func (b *Bridge) Start(ctx context.Context) {
	go func() {
		defer close(b.done)
		if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			b.log.Warn("voice control disabled", "error", err)
		}
	}()
}

// Done is closed after a bridge started with Start returns.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

// Run blocks until ctx is cancelled or recognition fails. A model that cannot
// be loaded is reported before the audio source is opened.
func (b *Bridge) Run(ctx context.Context) error {
	if b.opts.OpenRecognizer == nil || b.opts.OpenSource == nil {
		return errors.New("voice: bridge is not configured")
	}

	rec, err := b.opts.OpenRecognizer()
	if err != nil {
		b.log.Error("failed to load recognition model", "error", err)
		return fmt.Errorf("voice: load model: %w", err)
	}
	defer rec.Close()

	src, err := b.opts.OpenSource()
	if err != nil {
		b.log.Error("failed to open audio input", "error", err)
		return fmt.Errorf("voice: open audio: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			b.log.Warn("closing audio input", "error", err)
		}
	}()

	b.log.Info("listening",
		"jump", b.opts.Vocabulary.Jump,
		"stop", b.opts.Vocabulary.Stop,
		"move", b.opts.Vocabulary.Move,
	)

	for {
		if err := ctx.Err(); err != nil {
			b.log.Info("recognition stopped")
			return err
		}

		chunk, err := src.ReadChunk()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.log.Error("audio stream failed", "error", err)
			return fmt.Errorf("voice: read audio: %w", err)
		}

		hyp, err := rec.Accept(chunk)
		if err != nil {
			b.log.Error("recognizer failed", "error", err)
			return fmt.Errorf("voice: recognize: %w", err)
		}
		b.handle(hyp)
	}
}

// handle pushes at most one command per hypothesis.
func (b *Bridge) handle(h Hypothesis) {
	if h.Final != "" {
		b.log.Debug("utterance", "text", h.Final)
	}
	if h.Partial == "" {
		return
	}

	cmd, ok := b.opts.Vocabulary.Match(h.Partial)
	if !ok {
		return
	}
	b.sink.Push(cmd)
	b.log.Debug("command", "cmd", cmd, "partial", h.Partial)

	if b.opts.Journal == nil {
		return
	}
	ev := Event{Partial: h.Partial, Command: cmd, At: b.opts.Now()}
	if err := b.opts.Journal.Record(ev); err != nil {
		b.log.Warn("journal write failed", "error", err)
	}
}
