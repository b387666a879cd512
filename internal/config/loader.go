package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Only an explicit customPath reports read or parse errors; the other
// locations are optional and skipped when unusable.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultRunnerConfig()

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

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultRunnerConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, candidate.Validate()
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		candidate := DefaultRunnerConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Speed.RampEnable = false
	default:
		cfg.Speed.RampEnable = true
		cfg.Speed.Base = BaseSpeedForPreset(preset)
	}
}

// Marshal renders the config as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate rejects configurations the simulation cannot run.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world must have positive size", ErrInvalidConfig)
	case c.World.GroundOffset < 0 || c.World.GroundOffset >= c.World.Height:
		return fmt.Errorf("%w: ground_offset must be within the world height", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player must have positive size", ErrInvalidConfig)
	case c.Player.Height > c.World.Ground():
		return fmt.Errorf("%w: player is taller than the space above the ground", ErrInvalidConfig)
	case c.Player.X < 0 || c.Player.X+c.Player.Width > c.World.Width:
		return fmt.Errorf("%w: player must fit inside the world", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case c.Physics.JumpPower >= 0:
		return fmt.Errorf("%w: jump_power must be negative (upward)", ErrInvalidConfig)
	case c.Speed.Base <= 0:
		return fmt.Errorf("%w: base speed must be positive", ErrInvalidConfig)
	case c.Speed.RampEnable && c.Speed.RampEvery <= 0:
		return fmt.Errorf("%w: ramp_every must be positive", ErrInvalidConfig)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacle width must be positive", ErrInvalidConfig)
	case c.Obstacles.ShortChance < 0 || c.Obstacles.ShortChance > 1:
		return fmt.Errorf("%w: short_chance must be within [0, 1]", ErrInvalidConfig)
	case !c.Obstacles.Short.valid() || !c.Obstacles.Tall.valid():
		return fmt.Errorf("%w: obstacle height bands must satisfy 0 < min <= max", ErrInvalidConfig)
	case c.Obstacles.MinInterval <= 0 || c.Obstacles.BaseInterval < c.Obstacles.MinInterval:
		return fmt.Errorf("%w: obstacle intervals must satisfy 0 < min_interval <= base_interval", ErrInvalidConfig)
	case c.Coins.Every <= 0 || c.Stars.Every <= 0:
		return fmt.Errorf("%w: coin and star cadence must be positive", ErrInvalidConfig)
	case c.Coins.Radius <= 0 || c.Stars.Radius <= 0:
		return fmt.Errorf("%w: pickup radius must be positive", ErrInvalidConfig)
	case c.Stars.Duration <= 0:
		return fmt.Errorf("%w: star duration must be positive", ErrInvalidConfig)
	case c.Coins.Bonus < 0 || c.Scoring.PerTick < 0:
		return fmt.Errorf("%w: score increments must not be negative", ErrInvalidConfig)
	case c.Timing.NominalFrameMs <= 0 || c.Timing.MaxStepMs <= 0:
		return fmt.Errorf("%w: timing values must be positive", ErrInvalidConfig)
	}
	return nil
}

func (b Band) valid() bool {
	return b.Min > 0 && b.Min <= b.Max
}
