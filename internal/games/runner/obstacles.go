package runner

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Archetype is one of the fixed obstacle shapes.
type Archetype int

const (
	Rock Archetype = iota
	Log
	Fence
)

// Archetypes lists every archetype in spawn-table order.
var Archetypes = [...]Archetype{Rock, Log, Fence}

// String returns the archetype's config/CLI name.
func (a Archetype) String() string {
	switch a {
	case Rock:
		return "rock"
	case Log:
		return "log"
	case Fence:
		return "fence"
	default:
		return fmt.Sprintf("archetype(%d)", int(a))
	}
}

// ParseArchetype maps a name back to its archetype.
func ParseArchetype(name string) (Archetype, error) {
	for _, a := range Archetypes {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("runner: unknown obstacle archetype %q", name)
}

// Dimensions returns the collision size configured for the archetype.
func (a Archetype) Dimensions(cfg config.Obstacles) config.Dimensions {
	switch a {
	case Rock:
		return cfg.Rock
	case Log:
		return cfg.Log
	case Fence:
		return cfg.Fence
	default:
		panic(fmt.Sprintf("runner: no dimensions for %v", a))
	}
}

// Obstacle is a single obstacle travelling toward the player.
type Obstacle struct {
	Archetype Archetype
	Position  mgl64.Vec3 // Center of the collision box
	Size      config.Dimensions
}

// Box returns the obstacle's unpadded collision box.
func (o Obstacle) Box() core.Box3 {
	return core.BoxFromCenter(o.Position, mgl64.Vec3{o.Size.Width, o.Size.Height, o.Size.Depth})
}

// ArchetypePicker chooses the archetype of the next spawned obstacle.
type ArchetypePicker func(rng *rand.Rand) Archetype

// RandomArchetype picks uniformly from Archetypes.
func RandomArchetype(rng *rand.Rand) Archetype {
	return Archetypes[rng.Intn(len(Archetypes))]
}

// FixedArchetype always picks a. Used for deterministic runs.
func FixedArchetype(a Archetype) ArchetypePicker {
	return func(*rand.Rand) Archetype { return a }
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Obstacles are kept in spawn order.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       *config.RunnerConfig
	pick      ArchetypePicker
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg *config.RunnerConfig, pick ArchetypePicker) *ObstacleManager {
	if pick == nil {
		pick = RandomArchetype
	}
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 16),
		cfg:       cfg,
		pick:      pick,
	}
	om.Reset(seed)
	return om
}

// Reset clears all obstacles and reseeds the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.obstacles = om.obstacles[:0]
	om.rng = rand.New(rand.NewSource(seed))
}

// Advance moves every obstacle left by speed, then drops the ones past
// cull_x. Returns how many were removed.
func (om *ObstacleManager) Advance(speed float64) int {
	for i := range om.obstacles {
		om.obstacles[i].Position[0] -= speed
	}

	// Retain in place; survivors keep their order.
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.Position.X() >= om.cfg.Obstacles.CullX {
			kept = append(kept, o)
		}
	}
	culled := len(om.obstacles) - len(kept)
	om.obstacles = kept
	return culled
}

// MaybeSpawn rolls the per-tick spawn chance and spawns at most one obstacle.
func (om *ObstacleManager) MaybeSpawn() (Obstacle, bool) {
	if om.rng.Float64() >= om.cfg.Obstacles.SpawnChance {
		return Obstacle{}, false
	}
	return om.Spawn(om.pick(om.rng)), true
}

// Spawn places an obstacle of the given archetype at the spawn point,
// resting on the ground.
func (om *ObstacleManager) Spawn(a Archetype) Obstacle {
	size := a.Dimensions(om.cfg.Obstacles)
	o := Obstacle{
		Archetype: a,
		Position: mgl64.Vec3{
			om.cfg.Obstacles.SpawnX,
			om.cfg.Physics.GroundY + size.Height/2,
			0,
		},
		Size: size,
	}
	om.obstacles = append(om.obstacles, o)
	return o
}

// Obstacles returns the live obstacles in spawn order.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}
