// Package audio captures microphone input through PortAudio.
package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/vovakirdan/voicerun/internal/audio/pcm"
)

// Channels is fixed: recognizers want mono.
const Channels = 1

// Microphone is a blocking PCM source on the default input device.
type Microphone struct {
	mu     sync.Mutex
	stream *portaudio.Stream
	buffer []int16
	out    []byte
	closed bool
}

// Open starts capturing sampleRate Hz mono audio in chunks of chunkFrames.
func Open(sampleRate, chunkFrames int) (*Microphone, error) {
	if sampleRate <= 0 || chunkFrames <= 0 {
		return nil, fmt.Errorf("audio: invalid stream parameters %d Hz / %d frames", sampleRate, chunkFrames)
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("audio: initialize: %w", err)
	}

	m := &Microphone{
		buffer: make([]int16, chunkFrames*Channels),
		out:    make([]byte, 0, chunkFrames*Channels*2),
	}

	stream, err := portaudio.OpenDefaultStream(Channels, 0, float64(sampleRate), chunkFrames, m.buffer)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: open input: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: start input: %w", err)
	}

	m.stream = stream
	return m, nil
}

// ReadChunk blocks until one chunk is captured. The returned slice is reused
// by the next call. Input overflows drop samples but are not errors.
func (m *Microphone) ReadChunk() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, errors.New("audio: microphone closed")
	}
	if err := m.stream.Read(); err != nil && !errors.Is(err, portaudio.InputOverflowed) {
		return nil, fmt.Errorf("audio: read: %w", err)
	}
	m.out = pcm.AppendInt16(m.out[:0], m.buffer)
	return m.out, nil
}

// Close stops the stream and releases PortAudio.
func (m *Microphone) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	if err := m.stream.Stop(); err != nil {
		errs = append(errs, err)
	}
	if err := m.stream.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := portaudio.Terminate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("audio: close: %w", err)
	}
	return nil
}
