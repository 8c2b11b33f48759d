// voicerun is a side-scrolling runner controlled by spoken commands.
//
// Usage:
//
//	voicerun play            - Play with voice and keyboard control
//	voicerun listen          - Only run speech recognition and log commands
//	voicerun vocab           - Show the configured keywords
//	voicerun journal         - Browse recognized commands
//	voicerun serve           - Start SSH server for keyboard-only remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Use a custom config YAML
//	--db <path>           - Set journal path (default: ~/.voicerun/journal.db)
//	--log-file <path>     - Log destination while the TUI is active
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagEnvFile  string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "voicerun",
	Short: "Voicerun - a runner you play by talking to it",
	Long: `Voicerun is a terminal side-scroller. Say "jump", "stop" or "move"
(or the keywords of the configured language) and the runner obeys.

Available commands:
  play     - Start a run
  listen   - Test the microphone and vocabulary without playing
  vocab    - Show the configured keywords
  journal  - Browse recognized commands
  serve    - Start SSH server for keyboard-only remote play

Examples:
  voicerun play
  voicerun play --no-voice
  voicerun play --headless --seed 42
  VOICERUN_LANGUAGE=en voicerun listen
  voicerun journal --limit 50`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", ".env", "Optional .env file with VOICERUN_* overrides")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.voicerun/journal.db", "Path to recognition journal")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.voicerun/voicerun.log", "Log file used while the TUI is active")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the runner configuration from files and environment.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, flagEnvFile); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "voicerun",
		Level:           level,
	}), nil
}

// openLogFile opens the --log-file for appending. The caller closes it.
func openLogFile() (*os.File, error) {
	path, err := config.ExpandHome(flagLogFile)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
