package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var flagModel string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run in the terminal.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  ?          - More keys
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Speed ramps up half as fast
  normal - Speed ramp from the config
  hard   - Faster start, ramp twice as fast
  fixed  - No ramp, speed stays at base_speed

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --model ./assets/dino.glb`,
	Args: cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, _ []string) {
		envDefault(cmd, "model", envModel, &flagModel)
	},
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagModel, "model", "", "Path to a glTF/GLB player model")
}

func runPlay(_ *cobra.Command, _ []string) {
	exitOnError(play())
}

func play() error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []runner.Option{runner.WithLogger(logger)}
	if flagModel != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		opts = append(opts, runner.WithModel(assets.Load(ctx, flagModel, logger)))
	}
	game := runner.New(gameCfg, opts...)

	// Run history lives only as long as this process.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
