// Package runner implements a single-lane 3D runner.
// The player jumps over rocks, logs and fences that slide in from the right
// while the score counts up once per tick.
package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/scene"
)

// Game owns the whole state of a run. It is driven by one goroutine:
// the platform calls Jump, Step and Render from its event loop.
type Game struct {
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	pick       ArchetypePicker
	logger     *log.Logger

	player    Player
	obstacles *ObstacleManager
	score     int
	speed     float64
	gameOver  bool
	paused    bool
	tickCount int
	hitBy     *Archetype // Archetype that ended the run

	// Presentation only; never read by the simulation.
	camera  *scene.Camera
	scenery scene.Scenery
	model   *assets.Handle
	visual  *assets.Model // nil while the placeholder is shown
}

// Option customizes a Game.
type Option func(*Game)

// WithArchetypePicker replaces the uniform archetype choice.
func WithArchetypePicker(pick ArchetypePicker) Option {
	return func(g *Game) {
		g.pick = pick
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithModel attaches a model that replaces the placeholder once it loads.
func WithModel(h *assets.Handle) Option {
	return func(g *Game) {
		g.model = h
	}
}

// New creates a runner with the given configuration.
// Call Reset before the first Step.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		pick:   RandomArchetype,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	return g
}

// ID returns the identifier used for run history.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lane Runner"
}

// Reset initializes the game for the given screen and seed and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(runtime.Seed, &g.cfg, g.pick)
	}
	if g.camera == nil {
		g.camera = scene.NewCamera(g.cfg.Camera, runtime.ScreenW, runtime.ScreenH)
	} else {
		g.camera.SetViewport(runtime.ScreenW, runtime.ScreenH)
	}
	g.scenery = scene.NewScenery(runtime.Seed, g.cfg.Scenery, g.cfg.Physics.GroundY)

	g.startRun()
}

// SetSeed changes the seed used by the next Restart.
func (g *Game) SetSeed(seed int64) {
	g.runtime.Seed = seed
}

// Resize reconfigures the viewport. Game state is untouched.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.camera != nil {
		g.camera.SetViewport(width, height)
	}
}

// startRun puts every piece of run state back to its initial value.
func (g *Game) startRun() {
	g.player = newPlayer(g.cfg)
	g.obstacles.Reset(g.runtime.Seed)
	g.score = 0
	g.speed = g.difficulty.Speed(0)
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.hitBy = nil
}

// Restart begins a new run. It only has an effect after game over.
func (g *Game) Restart() bool {
	if !g.gameOver {
		return false
	}
	g.startRun()
	g.logger.Debug("run restarted", "seed", g.runtime.Seed)
	return true
}

// Jump starts a jump if the player is grounded and the run is live.
// Safe to call between ticks; the jump is integrated on the next Step.
func (g *Game) Jump() bool {
	if g.gameOver || g.paused {
		return false
	}
	return g.player.TryJump(g.cfg.Physics.JumpForce)
}

// Step advances the game by one tick.
//
// While running, a tick updates the jump, moves and culls obstacles,
// tests collisions, maybe spawns one obstacle and finally bumps the score
// and speed. A collision ends the tick early.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.Jump()
	}

	var res core.StepResult
	g.tickCount++

	res.Landed = g.player.Update(g.cfg.Physics.Gravity, restY(g.cfg))
	res.Culled = g.obstacles.Advance(g.speed)

	if i, hit := firstCollision(g.player, g.cfg.Player.Size, g.obstacles.Obstacles(), g.cfg.Collision); hit {
		a := g.obstacles.Obstacles()[i].Archetype
		g.hitBy = &a
		g.gameOver = true
		res.Collided = true
		res.State = g.State()
		g.logger.Info("game over", "score", g.score, "hit", a, "speed", g.speed)
		return res
	}

	if _, ok := g.obstacles.MaybeSpawn(); ok {
		res.Spawned = 1
	}

	g.score++
	g.speed = g.difficulty.Speed(g.score)

	res.State = g.State()
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Speed:    g.speed,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Airborne: g.player.Jumping,
	}
}

// HitBy returns the archetype that ended the run, if the run has ended.
func (g *Game) HitBy() (Archetype, bool) {
	if g.hitBy == nil {
		return 0, false
	}
	return *g.hitBy, true
}

// Ticks returns the number of simulated ticks in the current run.
func (g *Game) Ticks() int {
	return g.tickCount
}
