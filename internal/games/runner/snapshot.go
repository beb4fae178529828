package runner

// Snapshot contains the complete simulation state of a run.
// Uses primitive types only for stable comparison and serialization.
type Snapshot struct {
	Tick      int                `yaml:"tick"`
	Score     int                `yaml:"score"`
	Speed     float64            `yaml:"speed"`
	GameOver  bool               `yaml:"game_over"`
	Paused    bool               `yaml:"paused"`
	HitBy     string             `yaml:"hit_by,omitempty"`
	PlayerY   float64            `yaml:"player_y"`
	Velocity  float64            `yaml:"velocity"`
	Jumping   bool               `yaml:"jumping"`
	Obstacles []ObstacleSnapshot `yaml:"obstacles"`
}

// ObstacleSnapshot is the primitive form of an Obstacle.
type ObstacleSnapshot struct {
	Archetype string  `yaml:"archetype"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	obstacles := g.obstacles.Obstacles()
	s := Snapshot{
		Tick:      g.tickCount,
		Score:     g.score,
		Speed:     g.speed,
		GameOver:  g.gameOver,
		Paused:    g.paused,
		PlayerY:   g.player.Position.Y(),
		Velocity:  g.player.Velocity,
		Jumping:   g.player.Jumping,
		Obstacles: make([]ObstacleSnapshot, 0, len(obstacles)),
	}
	if a, ok := g.HitBy(); ok {
		s.HitBy = a.String()
	}
	for _, o := range obstacles {
		s.Obstacles = append(s.Obstacles, ObstacleSnapshot{
			Archetype: o.Archetype.String(),
			X:         o.Position.X(),
			Y:         o.Position.Y(),
		})
	}
	return s
}
