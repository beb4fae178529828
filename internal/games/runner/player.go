package runner

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner's single controllable entity.
// X and Z never change; Y moves only while Jumping.
type Player struct {
	Position mgl64.Vec3
	Velocity float64 // Vertical velocity, positive = up
	Jumping  bool
}

// restY is the Y of a player standing on the ground.
func restY(cfg config.RunnerConfig) float64 {
	return cfg.Physics.GroundY + cfg.Player.HalfHeight()
}

// newPlayer returns a player standing at its rest position.
func newPlayer(cfg config.RunnerConfig) Player {
	return Player{
		Position: mgl64.Vec3{cfg.Player.X, restY(cfg), cfg.Player.Z},
	}
}

// TryJump starts a jump with the given upward velocity.
// It is ignored while a jump is already in progress.
func (p *Player) TryJump(force float64) bool {
	if p.Jumping {
		return false
	}
	p.Jumping = true
	p.Velocity = force
	return true
}

// Update advances an active jump by one tick and reports whether the player
// landed on this tick. Integration is a fixed per-tick Euler step:
// position first, then velocity.
func (p *Player) Update(gravity, rest float64) bool {
	if !p.Jumping {
		return false
	}

	p.Position[1] += p.Velocity
	p.Velocity -= gravity

	if p.Position[1] <= rest {
		p.Position[1] = rest
		p.Jumping = false
		p.Velocity = 0
		return true
	}
	return false
}

// Box returns the player's unpadded collision box.
func (p Player) Box(size config.Dimensions) core.Box3 {
	return core.BoxFromCenter(p.Position, mgl64.Vec3{size.Width, size.Height, size.Depth})
}
