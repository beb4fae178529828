package scene

import (
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Cloud is a cluster of three puffs.
type Cloud struct {
	Position mgl64.Vec3
	Puffs    [3]core.Box3 // World-space bounds of each puff
}

// Tree is a trunk with a cone of leaves on top.
type Tree struct {
	Position mgl64.Vec3 // Base of the trunk
}

// Trunk returns the trunk bounds.
func (t Tree) Trunk() core.Box3 {
	return core.BoxFromCenter(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0.4, 2, 0.4}).Translate(t.Position)
}

// Leaves returns the bounds of the leaf cone.
func (t Tree) Leaves() core.Box3 {
	return core.BoxFromCenter(mgl64.Vec3{0, 2.5, 0}, mgl64.Vec3{2, 2, 2}).Translate(t.Position)
}

// Scenery is the static decoration around the lane. It never moves and
// never takes part in collisions.
type Scenery struct {
	Clouds []Cloud
	Trees  []Tree
}

// NewScenery scatters clouds and trees around the lane.
// Clouds float 10-15 units up; trees stand on the ground. Both are
// spread over x in [-50, 50) and z in [-20, 20).
func NewScenery(seed int64, cfg config.Scenery, groundY float64) Scenery {
	rng := rand.New(rand.NewSource(seed))
	s := Scenery{
		Clouds: make([]Cloud, 0, cfg.Clouds),
		Trees:  make([]Tree, 0, cfg.Trees),
	}

	for i := 0; i < cfg.Clouds; i++ {
		pos := mgl64.Vec3{
			rng.Float64()*100 - 50,
			10 + rng.Float64()*5,
			rng.Float64()*40 - 20,
		}
		cloud := Cloud{Position: pos}
		for p := range cloud.Puffs {
			center := pos.Add(mgl64.Vec3{float64(p) * 0.8, rng.Float64() * 0.2, 0})
			sx := 1 + rng.Float64()*0.2
			sy := 1 + rng.Float64()*0.2
			cloud.Puffs[p] = core.BoxFromCenter(center, mgl64.Vec3{2 * sx, 2 * sy, 2})
		}
		s.Clouds = append(s.Clouds, cloud)
	}

	for i := 0; i < cfg.Trees; i++ {
		s.Trees = append(s.Trees, Tree{
			Position: mgl64.Vec3{
				rng.Float64()*100 - 50,
				groundY,
				rng.Float64()*40 - 20,
			},
		})
	}

	// Far to near, so drawing in order paints nearer objects on top.
	sort.Slice(s.Clouds, func(i, j int) bool { return s.Clouds[i].Position.Z() < s.Clouds[j].Position.Z() })
	sort.Slice(s.Trees, func(i, j int) bool { return s.Trees[i].Position.Z() < s.Trees[j].Position.Z() })

	return s
}
