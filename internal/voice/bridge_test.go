package voice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/voicerun/internal/command"
)

// scriptSource replays chunks, then returns err (or blocks until closed).
type scriptSource struct {
	mu     sync.Mutex
	chunks []string
	err    error
	closed chan struct{}
}

func newScriptSource(err error, chunks ...string) *scriptSource {
	return &scriptSource{chunks: chunks, err: err, closed: make(chan struct{})}
}

func (s *scriptSource) ReadChunk() ([]byte, error) {
	s.mu.Lock()
	if len(s.chunks) > 0 {
		c := s.chunks[0]
		s.chunks = s.chunks[1:]
		s.mu.Unlock()
		return []byte(c), nil
	}
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	<-s.closed
	return nil, errors.New("closed")
}

func (s *scriptSource) Close() error {
	select {
	case <-s.closed:
	default:
		close(s.closed)
	}
	return nil
}

// echoRecognizer reports each chunk verbatim as the partial transcript.
type echoRecognizer struct {
	closed bool
}

func (r *echoRecognizer) Accept(pcm []byte) (Hypothesis, error) {
	return Hypothesis{Partial: string(pcm)}, nil
}

func (r *echoRecognizer) Close() { r.closed = true }

type memoryJournal struct {
	events []Event
	err    error
}

func (j *memoryJournal) Record(ev Event) error {
	j.events = append(j.events, ev)
	return j.err
}

func TestBridgePushesMatchedCommands(t *testing.T) {
	ch := command.NewChannel()
	src := newScriptSource(errors.New("device lost"), "pula", "hmm", "", "para", "anda", "pula para")
	rec := &echoRecognizer{}
	journal := &memoryJournal{}

	b := NewBridge(ch, Options{
		OpenRecognizer: func() (Recognizer, error) { return rec, nil },
		OpenSource:     func() (Source, error) { return src, nil },
		Vocabulary:     portuguese(),
		Journal:        journal,
	})

	err := b.Run(context.Background())
	if err == nil {
		t.Fatal("Run() should report the stream error")
	}

	got := ch.DrainAll()
	expected := []command.Command{command.Jump, command.Stop, command.Move, command.Jump}
	if len(got) != len(expected) {
		t.Fatalf("DrainAll() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("command %d = %v, expected %v", i, got[i], expected[i])
		}
	}

	if len(journal.events) != 4 || journal.events[0].Partial != "pula" {
		t.Errorf("journal events = %+v", journal.events)
	}
	if !rec.closed {
		t.Error("recognizer should be closed on exit")
	}
	select {
	case <-src.closed:
	default:
		t.Error("source should be closed on exit")
	}
}

func TestBridgeModelFailureSkipsAudio(t *testing.T) {
	opened := false
	b := NewBridge(command.NewChannel(), Options{
		OpenRecognizer: func() (Recognizer, error) { return nil, ErrNoModel },
		OpenSource: func() (Source, error) {
			opened = true
			return newScriptSource(nil), nil
		},
	})

	err := b.Run(context.Background())
	if !errors.Is(err, ErrNoModel) {
		t.Fatalf("Run() error = %v, expected ErrNoModel", err)
	}
	if opened {
		t.Error("audio source should not be opened without a model")
	}
}

func TestBridgeSourceFailure(t *testing.T) {
	rec := &echoRecognizer{}
	b := NewBridge(command.NewChannel(), Options{
		OpenRecognizer: func() (Recognizer, error) { return rec, nil },
		OpenSource:     func() (Source, error) { return nil, errors.New("no device") },
	})

	if err := b.Run(context.Background()); err == nil {
		t.Fatal("Run() should fail without an audio source")
	}
	if !rec.closed {
		t.Error("recognizer should be released when the source fails")
	}
}

func TestBridgeJournalErrorsAreIgnored(t *testing.T) {
	ch := command.NewChannel()
	b := NewBridge(ch, Options{
		OpenRecognizer: func() (Recognizer, error) { return &echoRecognizer{}, nil },
		OpenSource:     func() (Source, error) { return newScriptSource(errors.New("eof"), "pula"), nil },
		Vocabulary:     portuguese(),
		Journal:        &memoryJournal{err: errors.New("disk full")},
	})

	_ = b.Run(context.Background())
	if ch.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", ch.Len())
	}
}

func TestBridgeStartStopsOnCancel(t *testing.T) {
	ch := command.NewChannel()
	src := newScriptSource(nil, "anda")
	b := NewBridge(ch, Options{
		OpenRecognizer: func() (Recognizer, error) { return &echoRecognizer{}, nil },
		OpenSource:     func() (Source, error) { return src, nil },
		Vocabulary:     portuguese(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	b.Start(ctx)

	deadline := time.After(2 * time.Second)
	for ch.Len() == 0 {
		select {
		case <-deadline:
			t.Fatal("bridge never pushed a command")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	// The source blocks in ReadChunk; closing it unblocks the bridge.
	src.Close()

	select {
	case <-b.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("bridge did not stop after cancel")
	}
}

func TestBridgeUnconfigured(t *testing.T) {
	if err := NewBridge(command.NewChannel(), Options{}).Run(context.Background()); err == nil {
		t.Error("Run() without openers should fail")
	}
}
