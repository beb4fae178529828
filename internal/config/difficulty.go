package config

// DifficultyManager derives the obstacle speed from the score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the speed ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.RampScale > 0
}

// BaseSpeed returns the speed at score 0.
func (d *DifficultyManager) BaseSpeed() float64 {
	return d.cfg.BaseSpeed
}

// Speed returns base_speed + score/ramp_scale, capped by max_speed when set.
func (d *DifficultyManager) Speed(score int) float64 {
	speed := d.cfg.BaseSpeed
	if d.IsEnabled() {
		speed += float64(score) / d.cfg.RampScale
	}
	if d.cfg.MaxSpeed > 0 && speed > d.cfg.MaxSpeed {
		speed = d.cfg.MaxSpeed
	}
	return speed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampScale *= 2
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampScale /= 2
		cfg.Difficulty.BaseSpeed *= 1.25
	}
}
