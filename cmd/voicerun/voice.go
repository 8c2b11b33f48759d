package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voicerun/internal/audio"
	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/storage"
	"github.com/vovakirdan/voicerun/internal/voice"
	"github.com/vovakirdan/voicerun/internal/voice/vosk"
)

// newBridge wires the Vosk recognizer and the default microphone to sink.
// journal may be nil.
func newBridge(cfg config.RunnerConfig, sink voice.Sink, logger *log.Logger, journal *storage.Journal, runID string) (*voice.Bridge, error) {
	vocab, ok := cfg.Voice.ActiveVocabulary()
	if !ok {
		return nil, fmt.Errorf("no vocabulary for language %q", cfg.Voice.Language)
	}
	modelPath, err := config.ExpandHome(cfg.Voice.ModelPath)
	if err != nil {
		return nil, err
	}

	opts := voice.Options{
		OpenRecognizer: func() (voice.Recognizer, error) {
			rec, err := vosk.Open(modelPath, float64(cfg.Voice.SampleRate))
			if err != nil {
				return nil, err
			}
			return rec, nil
		},
		OpenSource: func() (voice.Source, error) {
			mic, err := audio.Open(cfg.Voice.SampleRate, cfg.Voice.ChunkFrames)
			if err != nil {
				return nil, err
			}
			return mic, nil
		},
		Vocabulary: voice.NewVocabulary(vocab),
		Logger:     logger,
	}
	if journal != nil {
		opts.Journal = journal.Recorder(runID, cfg.Voice.Language)
	}

	return voice.NewBridge(sink, opts), nil
}

// openJournal opens the recognition journal, logging instead of failing.
func openJournal(logger *log.Logger) *storage.Journal {
	journal, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open journal, continuing without it", "error", err)
		return nil
	}
	return journal
}
