package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/voicerun/internal/command"
	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
	"github.com/vovakirdan/voicerun/internal/platform/tui"
	"github.com/vovakirdan/voicerun/internal/runner"
	"github.com/vovakirdan/voicerun/internal/storage"
)

var (
	flagNoVoice  bool
	flagHeadless bool
	flagMaxTicks int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run. Spoken keywords and the keyboard both control the runner.

Controls:
  Space/Up   - Jump
  S          - Stop
  W          - Move
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot to ~/.voicerun/screenshots
  Q/Ctrl+C   - Quit

If the recognition model or the microphone is unavailable the game still
starts and only the keyboard works; see the log file for details.

Examples:
  voicerun play
  voicerun play --no-voice
  voicerun play --headless --seed 42 --max-ticks 600`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoVoice, "no-voice", false, "Disable speech recognition (keyboard only)")
	playCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a TUI, logging state changes to stderr")
	playCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop a headless run after this many ticks (0 = until game over)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagNoVoice {
		cfg.Voice.Enabled = false
	}

	// The TUI owns the terminal, so logs go to a file unless headless.
	logOut := os.Stderr
	if !flagHeadless {
		f, err := openLogFile()
		if err != nil {
			fail("%v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands := command.NewChannel()
	runID := storage.NewRunID()
	logger.Info("run started", "run", runID, "voice", cfg.Voice.Enabled, "language", cfg.Voice.Language)

	status := "voice: off"
	var voiceDone <-chan struct{}
	if cfg.Voice.Enabled {
		status, voiceDone = startVoice(ctx, cfg, commands, logger, runID)
	}

	rt := runtimeConfig()
	if flagHeadless {
		err = playHeadless(ctx, cfg, rt, commands, logger)
	} else {
		err = tui.Run(tui.Options{
			Runner:        cfg,
			Runtime:       rt,
			Commands:      commands,
			VoiceStatus:   status,
			ScreenshotDir: filepath.Join(config.HomeDir(), "screenshots"),
			Logger:        logger,
		})
	}

	interrupted := ctx.Err() != nil
	stop()
	if voiceDone != nil {
		// Let the bridge release the microphone and flush the journal.
		select {
		case <-voiceDone:
		case <-time.After(2 * time.Second):
			logger.Warn("voice bridge did not stop in time")
		}
	}
	if err != nil && !interrupted {
		fail("running game: %v", err)
	}
}

// startVoice launches the recognition bridge for the lifetime of ctx. It
// returns the status line to show in the TUI and a channel closed once the
// bridge and its journal are released.
func startVoice(ctx context.Context, cfg config.RunnerConfig, commands *command.Channel, logger *log.Logger, runID string) (string, <-chan struct{}) {
	journal := openJournal(logger)
	bridge, err := newBridge(cfg, commands, logger, journal, runID)
	if err != nil {
		logger.Warn("voice control disabled", "error", err)
		if journal != nil {
			journal.Close()
		}
		return "voice: off", nil
	}

	bridge.Start(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-bridge.Done()
		if journal != nil {
			journal.Close()
		}
	}()
	return "voice: " + cfg.Voice.Language, done
}

// playHeadless drives the loop from a ticker and logs state transitions.
func playHeadless(ctx context.Context, cfg config.RunnerConfig, rt core.RuntimeConfig, commands *command.Channel, logger *log.Logger) error {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	session := runner.NewSession(cfg, rt)
	loop := runner.NewLoop(commands, session, rt.TickDuration())
	logger = logger.WithPrefix("headless")
	logger.Info("simulation started", "seed", rt.Seed, "fps", rt.TickRate)

	prev := session.Frame()
	err := loop.Run(ctx, func(f runner.Frame) bool {
		if f.LastCommand != prev.LastCommand || f.Running != prev.Running {
			logger.Info("command applied", "cmd", f.LastCommand, "running", f.Running, "x", f.Player.X)
		}
		if f.Airborne != prev.Airborne {
			logger.Debug("airborne", "value", f.Airborne, "tick", f.Tick)
		}
		prev = f

		if f.GameOver() {
			logger.Info("game over", "score", f.Score, "elapsed", f.Elapsed, "tick", f.Tick)
			return false
		}
		if flagMaxTicks > 0 && f.Tick >= flagMaxTicks {
			logger.Info("tick limit reached", "score", f.Score, "elapsed", f.Elapsed)
			return false
		}
		return true
	})
	if err != nil && ctx.Err() != nil {
		logger.Info("interrupted", "score", prev.Score)
		return nil
	}
	return err
}
