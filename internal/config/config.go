// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import "errors"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// RunnerConfig contains all tuning for the runner simulation.
type RunnerConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Speed     SpeedConfig    `yaml:"speed"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Coins     CoinConfig     `yaml:"coins"`
	Stars     StarConfig     `yaml:"stars"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Timing    TimingConfig   `yaml:"timing"`
	Audio     AudioConfig    `yaml:"audio"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Ground line sits this far above the bottom
	RetireMargin float64 `yaml:"retire_margin"` // Entities are dropped this far left of x=0
}

// Ground returns the y-coordinate of the ground line.
func (w WorldConfig) Ground() float64 {
	return w.Height - w.GroundOffset
}

// PlayerConfig defines the player box.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to velocity every nominal tick
	JumpPower float64 `yaml:"jump_power"` // Negative: upward
}

// SpeedConfig defines scroll speed and the difficulty ramp.
type SpeedConfig struct {
	Base       float64 `yaml:"base"`
	RampEnable bool    `yaml:"ramp_enabled"`
	RampEvery  int     `yaml:"ramp_every"` // Ticks between increments
	RampStep   float64 `yaml:"ramp_step"`  // Added to speed each increment
}

// Band is an inclusive range for uniform sampling.
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ObstacleConfig defines obstacle shape and spawn cadence.
// The spawn interval is max(MinInterval, BaseInterval - floor(IntervalPerSpeed*speed)).
type ObstacleConfig struct {
	Width            float64 `yaml:"width"`
	SpawnOffset      float64 `yaml:"spawn_offset"` // Distance beyond the right edge
	ShortChance      float64 `yaml:"short_chance"`
	Short            Band    `yaml:"short"`
	Tall             Band    `yaml:"tall"`
	BaseInterval     int     `yaml:"base_interval"`
	IntervalPerSpeed float64 `yaml:"interval_per_speed"`
	MinInterval      int     `yaml:"min_interval"`
}

// CoinConfig defines coin spawning and reward.
type CoinConfig struct {
	Every       int     `yaml:"every"`
	Radius      float64 `yaml:"radius"`
	SpawnOffset float64 `yaml:"spawn_offset"`
	Lift        float64 `yaml:"lift"`       // Minimum height above ground
	LiftRange   float64 `yaml:"lift_range"` // Additional random height
	Bonus       int     `yaml:"bonus"`
}

// StarConfig defines power-star spawning and invulnerability.
type StarConfig struct {
	Every       int     `yaml:"every"`
	Radius      float64 `yaml:"radius"`
	SpawnOffset float64 `yaml:"spawn_offset"`
	Lift        float64 `yaml:"lift"`
	LiftRange   float64 `yaml:"lift_range"`
	Duration    int     `yaml:"duration"` // Invulnerability in ticks
}

// ScoringConfig defines survival scoring.
type ScoringConfig struct {
	PerTick int `yaml:"per_tick"`
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	MaxStepMs      float64 `yaml:"max_step_ms"`
	NominalFrameMs float64 `yaml:"nominal_frame_ms"`
	PulseMs        float64 `yaml:"pulse_ms"` // Touch-style input pulse length
}

// AudioConfig defines cue volumes in [0, 1].
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Master     float64 `yaml:"master"`
	Jump       float64 `yaml:"jump"`
	DoubleJump float64 `yaml:"double_jump"`
	Coin       float64 `yaml:"coin"`
	Star       float64 `yaml:"star"`
	GameOver   float64 `yaml:"game_over"`
	Start      float64 `yaml:"start"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// BaseSpeedForPreset returns the starting scroll speed for a preset.
func BaseSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 4.0
	case DifficultyHard:
		return 6.5
	default:
		return 5.0
	}
}
