package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the loaded configuration.
const (
	EnvModel    = "VOICERUN_MODEL"
	EnvLanguage = "VOICERUN_LANGUAGE"
	EnvVoice    = "VOICERUN_VOICE"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.voicerun/config.yaml -> ./configs/voicerun.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
func Load(customPath string) (RunnerConfig, error) {
	cfg, err := embedded()
	if err != nil {
		return cfg, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{UserConfigPath(), filepath.Join("configs", "voicerun.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	return cfg, nil
}

// embedded decodes the embedded default YAML, falling back to the hardcoded config.
func embedded() (RunnerConfig, error) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil
	}
	return cfg, nil
}

// UserConfigPath returns ~/.voicerun/config.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// HomeDir returns ~/.voicerun, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".voicerun")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// ApplyEnv loads envFile (if it exists) into the process environment and applies
// the VOICERUN_* overrides to cfg. A missing envFile is not an error.
func ApplyEnv(cfg *RunnerConfig, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: failed to load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvModel); v != "" {
		cfg.Voice.ModelPath = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		cfg.Voice.Language = strings.ToLower(v)
	}
	if v := os.Getenv(EnvVoice); v != "" {
		enabled, err := parseSwitch(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvVoice, err)
		}
		cfg.Voice.Enabled = enabled
	}
	return cfg.Validate()
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(v)
}

// Validate reports the first inconsistent setting.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.ViewportWidth <= 0 || c.World.ViewportHeight <= 0:
		return errors.New("config: viewport dimensions must be positive")
	case c.World.GroundY <= 0 || c.World.GroundY > c.World.ViewportHeight:
		return fmt.Errorf("config: ground_y %d outside viewport", c.World.GroundY)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return errors.New("config: player dimensions must be positive")
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return errors.New("config: obstacle dimensions must be positive")
	case c.Physics.Gravity <= 0:
		return errors.New("config: gravity must be positive")
	case c.Physics.JumpImpulse < 0 || c.Physics.RunSpeed < 0 || c.Physics.ScoreRate < 0:
		return errors.New("config: jump_impulse, run_speed and score_rate must not be negative")
	case c.Obstacles.MinSpacing <= 0 || c.Obstacles.MinSpacing > c.Obstacles.MaxSpacing:
		return fmt.Errorf("config: invalid obstacle spacing [%d, %d]", c.Obstacles.MinSpacing, c.Obstacles.MaxSpacing)
	case c.Obstacles.FirstMinOffset < 0 || c.Obstacles.FirstMinOffset > c.Obstacles.FirstMaxOffset:
		return fmt.Errorf("config: invalid first obstacle offset [%d, %d]", c.Obstacles.FirstMinOffset, c.Obstacles.FirstMaxOffset)
	case c.Obstacles.LowWater <= 0:
		return errors.New("config: low_water must be positive")
	}

	if c.Voice.Enabled {
		if _, ok := c.Voice.ActiveVocabulary(); !ok {
			return fmt.Errorf("config: no vocabulary for language %q", c.Voice.Language)
		}
		if c.Voice.SampleRate <= 0 || c.Voice.ChunkFrames <= 0 {
			return errors.New("config: sample_rate and chunk_frames must be positive")
		}
	}
	return nil
}
