package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and backs it up if the embed is unreadable.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        800,
			Height:       360,
			GroundOffset: 80,
			RetireMargin: 50,
		},
		Player: PlayerConfig{
			X:      60,
			Width:  44,
			Height: 44,
		},
		Physics: PhysicsConfig{
			Gravity:   0.6,
			JumpPower: -13,
		},
		Speed: SpeedConfig{
			Base:       5,
			RampEnable: true,
			RampEvery:  600,
			RampStep:   0.4,
		},
		Obstacles: ObstacleConfig{
			Width:            18,
			SpawnOffset:      20,
			ShortChance:      0.6,
			Short:            Band{Min: 28, Max: 44},
			Tall:             Band{Min: 56, Max: 84},
			BaseInterval:     120,
			IntervalPerSpeed: 4,
			MinInterval:      45,
		},
		Coins: CoinConfig{
			Every:       100,
			Radius:      8,
			SpawnOffset: 10,
			Lift:        60,
			LiftRange:   80,
			Bonus:       50,
		},
		Stars: StarConfig{
			Every:       700,
			Radius:      10,
			SpawnOffset: 10,
			Lift:        80,
			LiftRange:   60,
			Duration:    300,
		},
		Scoring: ScoringConfig{
			PerTick: 1,
		},
		Timing: TimingConfig{
			MaxStepMs:      40,
			NominalFrameMs: 16.67,
			PulseMs:        100,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Master:     0.8,
			Jump:       0.4,
			DoubleJump: 0.35,
			Coin:       0.5,
			Star:       0.6,
			GameOver:   0.9,
			Start:      0.6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
