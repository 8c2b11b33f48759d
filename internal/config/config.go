// Package config provides YAML-based configuration for the runner: world
// geometry, physics constants, obstacle generation and the voice vocabulary.
package config

// RunnerConfig contains all configuration for a voicerun session.
type RunnerConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Voice     VoiceConfig    `yaml:"voice"`
}

// WorldConfig defines the viewport and camera in world units.
type WorldConfig struct {
	ViewportWidth  int `yaml:"viewport_width"`
	ViewportHeight int `yaml:"viewport_height"`
	GroundY        int `yaml:"ground_y"`    // Ground baseline (top of the ground strip)
	CameraLead     int `yaml:"camera_lead"` // Camera sits this far behind the player
	CullMargin     int `yaml:"cull_margin"` // Obstacles further behind the camera are retired
}

// PhysicsConfig defines per-tick kinematics. Values assume a 60 Hz tick.
type PhysicsConfig struct {
	Gravity     int     `yaml:"gravity"`
	JumpImpulse int     `yaml:"jump_impulse"` // Magnitude; applied upwards
	RunSpeed    int     `yaml:"run_speed"`
	ScoreRate   float64 `yaml:"score_rate"` // Score gained per unit of distance run
}

// PlayerConfig defines the player box.
type PlayerConfig struct {
	StartX int `yaml:"start_x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstacleConfig defines obstacle size and the generator's spacing.
type ObstacleConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	MinSpacing     int `yaml:"min_spacing"`
	MaxSpacing     int `yaml:"max_spacing"`
	FirstMinOffset int `yaml:"first_min_offset"` // First obstacle: viewport width + [min, max]
	FirstMaxOffset int `yaml:"first_max_offset"`
	LowWater       int `yaml:"low_water"` // Generator keeps at least this many alive
}

// VoiceConfig defines the recognition bridge.
type VoiceConfig struct {
	Enabled      bool                  `yaml:"enabled"`
	ModelPath    string                `yaml:"model_path"`
	Language     string                `yaml:"language"`
	SampleRate   int                   `yaml:"sample_rate"`
	ChunkFrames  int                   `yaml:"chunk_frames"`
	Vocabularies map[string]Vocabulary `yaml:"vocabularies"`
}

// Vocabulary lists the keywords for each command in one language.
// Matching is case-insensitive substring matching.
type Vocabulary struct {
	Jump []string `yaml:"jump"`
	Stop []string `yaml:"stop"`
	Move []string `yaml:"move"`
}

// ActiveVocabulary returns the vocabulary for the configured language.
func (v VoiceConfig) ActiveVocabulary() (Vocabulary, bool) {
	vocab, ok := v.Vocabularies[v.Language]
	return vocab, ok
}
