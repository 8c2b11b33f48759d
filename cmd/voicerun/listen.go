package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voicerun/internal/command"
	"github.com/vovakirdan/voicerun/internal/storage"
)

var flagListenJournal bool

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Run speech recognition only and print commands",
	Long: `Open the microphone and print every command the recognizer would send to
the game. Use it to check the model, the audio device and the vocabulary.

Run with --log-level debug to also see the transcripts.

Examples:
  voicerun listen
  VOICERUN_LANGUAGE=en voicerun listen --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runListen,
}

func init() {
	listenCmd.Flags().BoolVar(&flagListenJournal, "journal", false, "Also record commands in the journal")
}

// printSink prints commands instead of queueing them.
type printSink struct{}

func (printSink) Push(cmd command.Command) {
	fmt.Printf("-> %s\n", cmd)
}

func runListen(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	var journal *storage.Journal
	if flagListenJournal {
		journal = openJournal(logger)
		if journal != nil {
			defer journal.Close()
		}
	}

	bridge, err := newBridge(cfg, printSink{}, logger, journal, storage.NewRunID())
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Listening (%s). Press Ctrl+C to stop.\n", cfg.Voice.Language)
	if err := bridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		stop()
		fail("%v", err)
	}
}
