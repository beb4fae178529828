package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: Physics{
			Gravity:   0.015,
			JumpForce: 0.5,
			GroundY:   0,
		},
		Player: Player{
			Size: Dimensions{Width: 1, Height: 2, Depth: 1},
		},
		Obstacles: Obstacles{
			SpawnX:      30,
			CullX:       -30,
			SpawnChance: 0.025,
			Rock:        Dimensions{Width: 1.4, Height: 1.4, Depth: 1.4},
			Log:         Dimensions{Width: 2.0, Height: 0.8, Depth: 0.8},
			Fence:       Dimensions{Width: 1.8, Height: 1.3, Depth: 0.2},
		},
		Collision: Collision{
			Padding:      0.3,
			VerticalGate: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			BaseSpeed: 0.2,
			RampScale: 5000,
		},
		Camera: Camera{
			FOV:        75,
			Near:       0.1,
			Far:        1000,
			Position:   [3]float64{0, 3, 10},
			LookAt:     [3]float64{0, 2, 0},
			CellAspect: 0.5,
		},
		Scenery: Scenery{
			Clouds: 20,
			Trees:  30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
