package command

import (
	"sync"
	"testing"
)

func TestDrainEmptyIsIdempotent(t *testing.T) {
	ch := NewChannel()

	for i := 0; i < 2; i++ {
		if got := ch.DrainAll(); len(got) != 0 {
			t.Fatalf("drain %d of empty channel returned %v", i, got)
		}
	}
}

func TestDrainPreservesOrder(t *testing.T) {
	ch := NewChannel()
	want := []Command{Jump, Stop, Stop, Move, Jump}
	for _, c := range want {
		ch.Push(c)
	}

	if ch.Len() != len(want) {
		t.Fatalf("Len() = %d, expected %d", ch.Len(), len(want))
	}

	got := ch.DrainAll()
	if len(got) != len(want) {
		t.Fatalf("DrainAll() returned %d commands, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, expected %v", i, got[i], want[i])
		}
	}

	if ch.Len() != 0 {
		t.Errorf("channel should be empty after drain, Len() = %d", ch.Len())
	}
}

func TestConcurrentProducers(t *testing.T) {
	ch := NewChannel()
	const producers = 4
	const perProducer = 500

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(cmd Command) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				ch.Push(cmd)
			}
		}(Command(p%3 + 1))
	}

	// Consumer drains while producers are running.
	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		total += len(ch.DrainAll())
	}
	total += len(ch.DrainAll())

	if total != producers*perProducer {
		t.Errorf("drained %d commands, expected %d", total, producers*perProducer)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, c := range []Command{Jump, Stop, Move} {
		got, ok := Parse(c.String())
		if !ok || got != c {
			t.Errorf("Parse(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := Parse("fly"); ok {
		t.Error("Parse should reject unknown names")
	}
	if Command(0).String() != "unknown" {
		t.Errorf("zero command String() = %q", Command(0).String())
	}
}
