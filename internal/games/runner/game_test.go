package runner

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const eps = 1e-9

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newQuietGame returns a game that never spawns on its own.
func newQuietGame(t *testing.T, mutate func(*config.RunnerConfig), opts ...Option) *Game {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	g := New(cfg, opts...)
	g.Reset(testRuntime(1))
	return g
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func TestFirstTickAtRest(t *testing.T) {
	g := newQuietGame(t, nil)

	res := g.Step(noInput())

	if res.State.Score != 1 {
		t.Errorf("score after one tick = %d, expected 1", res.State.Score)
	}
	if g.player.Position.Y() != 1 || g.player.Velocity != 0 || g.player.Jumping {
		t.Errorf("player moved while at rest: %+v", g.player)
	}
	if res.State.GameOver || res.Collided {
		t.Error("no obstacles, no game over")
	}
	if g.obstacles.Len() != 0 {
		t.Errorf("quiet game spawned %d obstacles", g.obstacles.Len())
	}
}

func TestJumpFirstTick(t *testing.T) {
	g := newQuietGame(t, nil)

	if !g.Jump() {
		t.Fatal("jump from rest should start")
	}
	g.Step(noInput())

	if math.Abs(g.player.Position.Y()-1.5) > eps {
		t.Errorf("y after first airborne tick = %v, expected 1.5", g.player.Position.Y())
	}
	if math.Abs(g.player.Velocity-0.485) > eps {
		t.Errorf("velocity after first airborne tick = %v, expected 0.485", g.player.Velocity)
	}
}

func TestJumpArcAndLanding(t *testing.T) {
	g := newQuietGame(t, nil)

	in := noInput()
	in.Set(core.ActionJump)
	res := g.Step(in)
	prevVel := g.player.Velocity

	for tick := 2; tick < 1000; tick++ {
		res = g.Step(noInput())
		if res.Landed {
			if g.player.Position.Y() != 1 {
				t.Errorf("landing should snap y to 1, got %v", g.player.Position.Y())
			}
			if g.player.Velocity != 0 || g.player.Jumping {
				t.Errorf("landing should clear velocity and jumping on the same tick: %+v", g.player)
			}
			if res.State.Airborne {
				t.Error("state should report grounded on the landing tick")
			}
			return
		}
		if math.Abs(prevVel-g.player.Velocity-0.015) > eps {
			t.Fatalf("tick %d: velocity went %v -> %v, expected a drop of 0.015", tick, prevVel, g.player.Velocity)
		}
		if g.player.Position.Y() <= 1 {
			t.Fatalf("tick %d: airborne player at or below rest height", tick)
		}
		prevVel = g.player.Velocity
	}
	t.Fatal("player never landed")
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	g := newQuietGame(t, nil)

	g.Jump()
	g.Step(noInput())
	vel := g.player.Velocity

	if g.Jump() {
		t.Error("second jump while airborne should be ignored")
	}
	if g.player.Velocity != vel {
		t.Errorf("ignored jump changed velocity: %v -> %v", vel, g.player.Velocity)
	}
}

func TestObstacleMovesAtSpeedAndIsCulled(t *testing.T) {
	g := newQuietGame(t, func(c *config.RunnerConfig) {
		c.Difficulty.Enabled = false // speed stays 0.2
		c.Collision.VerticalGate = -100
	})
	g.obstacles.Spawn(Rock)

	x := 30.0
	for n := 1; n <= 400; n++ {
		res := g.Step(noInput())
		expected := 30 - 0.2*float64(n)
		x -= 0.2

		if x < g.cfg.Obstacles.CullX {
			if g.obstacles.Len() != 0 || res.Culled != 1 {
				t.Fatalf("tick %d: obstacle at %v should be culled on this tick", n, x)
			}
			return
		}
		if g.obstacles.Len() != 1 {
			t.Fatalf("tick %d: obstacle at %v culled too early", n, x)
		}
		if got := g.obstacles.Obstacles()[0].Position.X(); math.Abs(got-expected) > 1e-6 {
			t.Fatalf("tick %d: x = %v, expected %v", n, got, expected)
		}
	}
	t.Fatal("obstacle was never culled")
}

func TestCullKeepsOrder(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	om := NewObstacleManager(1, &cfg, nil)

	xs := []float64{-29.95, 0, -29.99, 10, -29.5}
	for i, x := range xs {
		om.Spawn(Archetypes[i%len(Archetypes)])
		om.obstacles[i].Position[0] = x
	}

	culled := om.Advance(0.1)
	if culled != 2 {
		t.Errorf("culled = %d, expected 2", culled)
	}
	want := []float64{-0.1, 9.9, -29.6}
	got := om.Obstacles()
	if len(got) != len(want) {
		t.Fatalf("kept %d obstacles, expected %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i].Position.X()-want[i]) > eps {
			t.Errorf("obstacle %d at %v, expected %v", i, got[i].Position.X(), want[i])
		}
	}
}

func TestSpawnPlacement(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	om := NewObstacleManager(1, &cfg, nil)

	tests := []struct {
		archetype Archetype
		y         float64
	}{
		{Rock, 0.7},
		{Log, 0.4},
		{Fence, 0.65},
	}
	for _, tc := range tests {
		t.Run(tc.archetype.String(), func(t *testing.T) {
			o := om.Spawn(tc.archetype)
			if o.Position.X() != 30 || o.Position.Z() != 0 {
				t.Errorf("spawned at %v, expected x=30 z=0", o.Position)
			}
			if math.Abs(o.Position.Y()-tc.y) > eps {
				t.Errorf("y = %v, expected %v", o.Position.Y(), tc.y)
			}
			if o.Box().Min.Y() > eps {
				t.Errorf("obstacle should rest on the ground, bottom = %v", o.Box().Min.Y())
			}
		})
	}
}

func TestFixedArchetypeInjection(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 1
	om := NewObstacleManager(99, &cfg, FixedArchetype(Log))

	for i := 0; i < 20; i++ {
		if _, ok := om.MaybeSpawn(); !ok {
			t.Fatal("spawn chance 1 should always spawn")
		}
	}
	for i, o := range om.Obstacles() {
		if o.Archetype != Log {
			t.Errorf("obstacle %d is %v, expected log", i, o.Archetype)
		}
	}
}

func TestRandomArchetypeCoversAll(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 1
	om := NewObstacleManager(5, &cfg, nil)

	seen := map[Archetype]int{}
	for i := 0; i < 300; i++ {
		o, _ := om.MaybeSpawn()
		seen[o.Archetype]++
	}
	for _, a := range Archetypes {
		if seen[a] == 0 {
			t.Errorf("archetype %v never spawned in 300 tries", a)
		}
	}
}

func TestSpawnChanceZeroNeverSpawns(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 0
	om := NewObstacleManager(5, &cfg, nil)

	for i := 0; i < 1000; i++ {
		if _, ok := om.MaybeSpawn(); ok {
			t.Fatal("spawn chance 0 spawned an obstacle")
		}
	}
}

// placeRock puts a rock directly on the player, ready to be tested on the next tick.
func placeRock(g *Game) {
	g.obstacles.Spawn(Rock)
	last := len(g.obstacles.obstacles) - 1
	g.obstacles.obstacles[last].Position[0] = g.player.Position.X() + g.speed
}

func TestVerticalGateClearsObstacle(t *testing.T) {
	g := newQuietGame(t, nil)
	placeRock(g)

	// Hovering exactly at rock center + gate; zero velocity keeps y this tick.
	rock := g.obstacles.Obstacles()[0]
	g.player.Jumping = true
	g.player.Position[1] = rock.Position.Y() + g.cfg.Collision.VerticalGate
	g.player.Velocity = 0

	res := g.Step(noInput())
	if res.Collided || res.State.GameOver {
		t.Error("player at obstacle.y + gate should clear the obstacle")
	}
}

func TestCollisionEndsRunOnce(t *testing.T) {
	g := newQuietGame(t, nil)
	placeRock(g)

	g.player.Jumping = true
	g.player.Position[1] = 2.0
	g.player.Velocity = 0

	res := g.Step(noInput())
	if !res.Collided || !res.State.GameOver {
		t.Fatal("player below the gate should collide")
	}
	score := res.State.Score
	if score != 0 {
		t.Errorf("collision tick should not score, got %d", score)
	}
	if a, ok := g.HitBy(); !ok || a != Rock {
		t.Errorf("HitBy() = %v, %v; expected rock", a, ok)
	}

	for i := 0; i < 10; i++ {
		in := noInput()
		in.Set(core.ActionJump)
		res = g.Step(in)
		if res.Collided {
			t.Fatal("game over should fire exactly once")
		}
		if !res.State.GameOver || res.State.Score != score {
			t.Fatalf("game over state should be frozen: %+v", res.State)
		}
	}
	if g.player.Jumping && g.player.Position.Y() != 2.0 {
		t.Error("no physics should run after game over")
	}
}

func TestCollides(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	rock := Obstacle{Archetype: Rock, Size: cfg.Obstacles.Rock}
	rock.Position[1] = 0.7

	at := func(x, y float64) Player {
		p := newPlayer(cfg)
		p.Position[0] = x
		p.Position[1] = y
		return p
	}

	tests := []struct {
		name   string
		player Player
		rockX  float64
		hit    bool
	}{
		{"head on", at(0, 1), 0, true},
		{"boxes apart", at(0, 1), 3, false},
		{"touching before padding", at(0, 1), 1.2, false},
		{"overlapping after padding", at(0, 1), 0.5, true},
		{"above gate", at(0, 2.2), 0, false},
		{"just below gate", at(0, 2.19), 0, true},
		{"boxes apart vertically", at(0, 5), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := rock
			o.Position[0] = tc.rockX
			for i := 0; i < 3; i++ {
				if got := Collides(tc.player, cfg.Player.Size, o, cfg.Collision); got != tc.hit {
					t.Fatalf("Collides() = %v, expected %v", got, tc.hit)
				}
			}
		})
	}
}

func TestRestartIsIdempotent(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 0.2

	fresh := New(cfg)
	fresh.Reset(testRuntime(3))
	initial := fresh.Snapshot()

	for _, ticks := range []int{0, 1, 57, 400} {
		g := New(cfg)
		g.Reset(testRuntime(3))
		for i := 0; i < ticks && !g.gameOver; i++ {
			in := noInput()
			if i%40 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in)
		}
		if !g.gameOver {
			placeRock(g)
			g.player = newPlayer(cfg)
			g.Step(noInput())
		}
		if !g.gameOver {
			t.Fatalf("ticks=%d: could not force game over", ticks)
		}

		if !g.Restart() {
			t.Fatal("Restart after game over should succeed")
		}
		if got := g.Snapshot(); !reflect.DeepEqual(got, initial) {
			t.Errorf("ticks=%d: restart snapshot\n got  %+v\n want %+v", ticks, got, initial)
		}
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := newQuietGame(t, nil)
	g.Step(noInput())

	if g.Restart() {
		t.Error("Restart while running should be ignored")
	}
	in := noInput()
	in.Set(core.ActionRestart)
	res := g.Step(in)
	if res.State.Score != 2 {
		t.Errorf("restart input while running should not reset, score = %d", res.State.Score)
	}
}

func TestRestartThroughInput(t *testing.T) {
	g := newQuietGame(t, nil)
	placeRock(g)
	g.Step(noInput())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	in := noInput()
	in.Set(core.ActionRestart)
	res := g.Step(in)
	if res.State.GameOver || res.State.Score != 0 || g.obstacles.Len() != 0 {
		t.Errorf("restart input should start a new run: %+v", res.State)
	}
	if res.State.Speed != 0.2 {
		t.Errorf("speed after restart = %v, expected base 0.2", res.State.Speed)
	}
}

func TestSpeedRamp(t *testing.T) {
	g := newQuietGame(t, nil)

	for i := 0; i < 2500; i++ {
		g.Step(noInput())
	}
	if got, want := g.State().Speed, 0.2+2500.0/5000; math.Abs(got-want) > eps {
		t.Errorf("speed at score 2500 = %v, expected %v", got, want)
	}
}

func TestPause(t *testing.T) {
	g := newQuietGame(t, nil)
	g.Step(noInput())

	pause := noInput()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused || res.State.Score != 1 {
		t.Fatalf("pause tick should freeze: %+v", res.State)
	}
	if g.Jump() {
		t.Error("jump while paused should be ignored")
	}

	g.Step(noInput())
	if g.State().Score != 1 {
		t.Error("paused game should not advance")
	}

	res = g.Step(pause)
	if res.State.Paused || res.State.Score != 2 {
		t.Errorf("unpause tick should advance: %+v", res.State)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = noInput()
		if i%35 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := New(cfg)
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs diverged:\n %+v\n %+v", a, b)
	}
}

func TestResizeKeepsState(t *testing.T) {
	g := newQuietGame(t, nil)
	g.obstacles.Spawn(Fence)
	for i := 0; i < 10; i++ {
		g.Step(noInput())
	}
	before := g.Snapshot()

	g.Resize(120, 40)
	g.Resize(120, 40)

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("resize should not touch game state")
	}
	if w, h := g.camera.Viewport(); w != 120 || h != 40 {
		t.Errorf("camera viewport = %dx%d, expected 120x40", w, h)
	}
}

func TestParseArchetype(t *testing.T) {
	for _, a := range Archetypes {
		got, err := ParseArchetype(a.String())
		if err != nil || got != a {
			t.Errorf("ParseArchetype(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseArchetype("cactus"); err == nil {
		t.Error("unknown archetype should fail")
	}
}
