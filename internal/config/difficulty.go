package config

import "math"

// DifficultyManager derives scroll speed and obstacle cadence from the
// tick counter. Speed only ever grows during a run.
type DifficultyManager struct {
	speed     SpeedConfig
	obstacles ObstacleConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(speed SpeedConfig, obstacles ObstacleConfig) *DifficultyManager {
	return &DifficultyManager{
		speed:     speed,
		obstacles: obstacles,
	}
}

// IsEnabled returns whether the speed ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.speed.RampEnable && d.speed.RampEvery > 0
}

// BaseSpeed returns the speed a run starts at.
func (d *DifficultyManager) BaseSpeed() float64 {
	return d.speed.Base
}

// Ramp returns the speed after tick frame: every RampEvery ticks the speed
// grows by RampStep. The increase is additive and unbounded.
func (d *DifficultyManager) Ramp(speed float64, frame int) float64 {
	if !d.IsEnabled() || frame <= 0 {
		return speed
	}
	if frame%d.speed.RampEvery == 0 {
		return speed + d.speed.RampStep
	}
	return speed
}

// ObstacleInterval returns the tick spacing between obstacles at the given speed.
func (d *DifficultyManager) ObstacleInterval(speed float64) int {
	o := d.obstacles
	interval := o.BaseInterval - int(math.Floor(o.IntervalPerSpeed*speed))
	return max(o.MinInterval, interval)
}
