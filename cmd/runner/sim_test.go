package main

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	opts := simOptions{Ticks: 800, JumpEvery: 30, Seed: 42}

	a := simulate(cfg, opts, quietLogger())
	b := simulate(cfg, opts, quietLogger())

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same options diverged:\n %+v\n %+v", a, b)
	}
}

func TestSimulateStopsAtTickLimit(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 0

	snap := simulate(cfg, simOptions{Ticks: 250}, quietLogger())

	if snap.Tick != 250 || snap.Score != 250 || snap.GameOver {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestSimulateFixedArchetype(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 1
	fence := runner.Fence

	snap := simulate(cfg, simOptions{Ticks: 400, Archetype: &fence}, quietLogger())

	if !snap.GameOver || snap.HitBy != "fence" {
		t.Errorf("grounded player should hit a fence: %+v", snap)
	}
	for _, o := range snap.Obstacles {
		if o.Archetype != "fence" {
			t.Errorf("unexpected archetype %q", o.Archetype)
		}
	}
}

func TestSimWritesYAML(t *testing.T) {
	flagTicks, flagJumpEvery, flagSeed = 10, 0, 3
	flagConfig, flagDifficulty, flagArchetype = "", "fixed", ""
	flagLogFile, flagLogLevel = "", "error"
	t.Cleanup(func() {
		flagTicks, flagSeed, flagDifficulty, flagLogLevel = 1000, 0, "", "info"
	})

	var buf bytes.Buffer
	if err := sim(&buf); err != nil {
		t.Fatalf("sim() error: %v", err)
	}

	var snap runner.Snapshot
	if err := yaml.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if snap.Tick == 0 || snap.Speed != 0.2 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if !strings.Contains(buf.String(), "player_y:") {
		t.Errorf("missing player_y key:\n%s", buf.String())
	}
}

func TestSimRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		archetype  string
	}{
		{"difficulty", "brutal", ""},
		{"archetype", "", "cactus"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagDifficulty, flagArchetype = tc.difficulty, tc.archetype
			flagLogLevel = "error"
			t.Cleanup(func() { flagDifficulty, flagArchetype, flagLogLevel = "", "", "info" })

			if err := sim(io.Discard); err == nil {
				t.Error("expected error")
			}
		})
	}
}
