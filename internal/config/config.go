// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunables for the runner.
type RunnerConfig struct {
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Collision  Collision        `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Camera     Camera           `yaml:"camera"`
	Scenery    Scenery          `yaml:"scenery"`
}

// Physics defines the discrete jump integration. Values are per tick,
// so the feel of the game depends on the tick rate.
type Physics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"`
	GroundY   float64 `yaml:"ground_y"`
}

// Player defines where the player stands and the size of its collision box.
type Player struct {
	X    float64    `yaml:"x"`
	Z    float64    `yaml:"z"`
	Size Dimensions `yaml:"size"`
}

// HalfHeight returns half the player's height; the rest Y is GroundY plus this.
func (p Player) HalfHeight() float64 {
	return p.Size.Height / 2
}

// Dimensions is a width/height/depth triple in world units.
type Dimensions struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
}

// Obstacles defines spawning and culling of obstacles.
type Obstacles struct {
	SpawnX      float64    `yaml:"spawn_x"`
	CullX       float64    `yaml:"cull_x"`
	SpawnChance float64    `yaml:"spawn_chance"` // Probability of one spawn per tick
	Rock        Dimensions `yaml:"rock"`
	Log         Dimensions `yaml:"log"`
	Fence       Dimensions `yaml:"fence"`
}

// Collision holds the hand-tuned collision constants.
type Collision struct {
	// Padding is removed from both sides of every box on x and z.
	Padding float64 `yaml:"padding"`
	// VerticalGate: a hit only counts while player Y < obstacle Y + VerticalGate.
	VerticalGate float64 `yaml:"vertical_gate"`
}

// DifficultyConfig defines the speed ramp.
type DifficultyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	BaseSpeed float64 `yaml:"base_speed"` // World units per tick at score 0
	RampScale float64 `yaml:"ramp_scale"` // Score needed to add 1.0 to speed
	MaxSpeed  float64 `yaml:"max_speed"`  // 0 = unbounded
}

// Camera positions the perspective camera looking down the lane.
type Camera struct {
	FOV        float64    `yaml:"fov"` // Vertical field of view in degrees
	Near       float64    `yaml:"near"`
	Far        float64    `yaml:"far"`
	Position   [3]float64 `yaml:"position"`
	LookAt     [3]float64 `yaml:"look_at"`
	CellAspect float64    `yaml:"cell_aspect"` // Terminal cell width / height
}

// Scenery controls the decorative clouds and trees.
type Scenery struct {
	Clouds int `yaml:"clouds"`
	Trees  int `yaml:"trees"`
}

// Validate reports the first setting that would make the simulation meaningless.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpForce <= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_force must be positive, got %v", c.Physics.JumpForce))
	}
	if c.Player.Size.Height <= 0 {
		errs = append(errs, fmt.Errorf("player.size.height must be positive, got %v", c.Player.Size.Height))
	}
	if c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_chance must be within [0, 1], got %v", c.Obstacles.SpawnChance))
	}
	if c.Obstacles.CullX >= c.Obstacles.SpawnX {
		errs = append(errs, fmt.Errorf("obstacles.cull_x (%v) must be left of spawn_x (%v)", c.Obstacles.CullX, c.Obstacles.SpawnX))
	}
	if c.Difficulty.Enabled && c.Difficulty.RampScale <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.ramp_scale must be positive, got %v", c.Difficulty.RampScale))
	}
	if c.Difficulty.BaseSpeed < 0 {
		errs = append(errs, fmt.Errorf("difficulty.base_speed must not be negative, got %v", c.Difficulty.BaseSpeed))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid runner config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty input means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
