package config

import (
	_ "embed"
)

//go:embed defaults/voicerun.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It mirrors the embedded
// YAML and is used when that cannot be decoded.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			ViewportWidth:  800,
			ViewportHeight: 400,
			GroundY:        350,
			CameraLead:     100,
			CullMargin:     100,
		},
		Physics: PhysicsConfig{
			Gravity:     1,
			JumpImpulse: 20,
			RunSpeed:    5,
			ScoreRate:   0.1,
		},
		Player: PlayerConfig{
			StartX: 100,
			Width:  40,
			Height: 40,
		},
		Obstacles: ObstacleConfig{
			Width:          30,
			Height:         60,
			MinSpacing:     300,
			MaxSpacing:     600,
			FirstMinOffset: 100,
			FirstMaxOffset: 300,
			LowWater:       5,
		},
		Voice: VoiceConfig{
			Enabled:     true,
			ModelPath:   "vosk-model-small-pt-0.3",
			Language:    "pt",
			SampleRate:  16000,
			ChunkFrames: 800,
			Vocabularies: map[string]Vocabulary{
				"pt": {
					Jump: []string{"pular", "pula"},
					Stop: []string{"parar", "para"},
					Move: []string{"andar", "anda", "continuar", "continua"},
				},
				"en": {
					Jump: []string{"jump", "hop"},
					Stop: []string{"stop", "halt", "wait"},
					Move: []string{"move", "walk", "run", "continue"},
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
