package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// Collides reports whether the player hits the obstacle.
//
// Both boxes are shrunk on x and z by the padding before the AABB test.
// An overlap only counts while the player is below the obstacle's center
// plus the vertical gate, so a high enough jump clears an obstacle even
// when the padded boxes still touch.
func Collides(p Player, playerSize config.Dimensions, o Obstacle, c config.Collision) bool {
	playerBox := p.Box(playerSize).Shrink(c.Padding, c.Padding)
	obstacleBox := o.Box().Shrink(c.Padding, c.Padding)

	if !playerBox.Intersects(obstacleBox) {
		return false
	}
	return p.Position.Y() < o.Position.Y()+c.VerticalGate
}

// firstCollision returns the index of the first obstacle, in spawn order,
// that the player hits.
func firstCollision(p Player, playerSize config.Dimensions, obstacles []Obstacle, c config.Collision) (int, bool) {
	for i, o := range obstacles {
		if Collides(p, playerSize, o, c) {
			return i, true
		}
	}
	return -1, false
}
