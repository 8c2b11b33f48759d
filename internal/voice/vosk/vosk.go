// Package vosk adapts the Vosk offline speech recognizer to voice.Recognizer.
package vosk

import (
	"errors"
	"fmt"
	"os"

	vosk "github.com/alphacep/vosk-api/go"

	"github.com/vovakirdan/voicerun/internal/voice"
)

func init() {
	// Kaldi is chatty on stderr, which would corrupt the TUI.
	vosk.SetLogLevel(-1)
}

// Recognizer wraps a loaded model and a streaming recognizer.
type Recognizer struct {
	model *vosk.VoskModel
	rec   *vosk.VoskRecognizer
}

// Open loads the model directory at path and creates a recognizer for audio
// sampled at sampleRate Hz.
func Open(path string, sampleRate float64) (*Recognizer, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", voice.ErrNoModel, path)
		}
		return nil, fmt.Errorf("vosk: stat model: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", voice.ErrNoModel, path)
	}

	model, err := vosk.NewModel(path)
	if err != nil {
		return nil, fmt.Errorf("vosk: load model %s: %w", path, err)
	}
	rec, err := vosk.NewRecognizer(model, sampleRate)
	if err != nil {
		model.Free()
		return nil, fmt.Errorf("vosk: create recognizer: %w", err)
	}

	return &Recognizer{model: model, rec: rec}, nil
}

// Accept feeds one chunk of 16-bit mono PCM.
func (r *Recognizer) Accept(pcm []byte) (voice.Hypothesis, error) {
	var h voice.Hypothesis

	switch r.rec.AcceptWaveform(pcm) {
	case -1:
		return h, errors.New("vosk: waveform rejected")
	case 1:
		h.Final = voice.DecodeText(r.rec.Result())
	}
	h.Partial = voice.DecodePartial(r.rec.PartialResult())
	return h, nil
}

// Close releases the recognizer and its model.
func (r *Recognizer) Close() {
	if r.rec != nil {
		r.rec.Free()
		r.rec = nil
	}
	if r.model != nil {
		r.model.Free()
		r.model = nil
	}
}

var _ voice.Recognizer = (*Recognizer)(nil)
