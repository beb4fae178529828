// runner is a single-lane 3D runner played in the terminal.
//
// Usage:
//
//	runner play              - Play the game
//	runner sim               - Run a headless simulation and print the final state
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a rotating file
//	--log-level <level>  - debug, info, warn or error
//
// Values in a .env file in the working directory provide defaults for
// RUNNER_CONFIG, RUNNER_MODEL and RUNNER_LOG_FILE.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	// Shared by play and sim
	flagConfig     string
	flagDifficulty string
)

// Environment variables consulted when the matching flag is not set.
const (
	envConfig  = "RUNNER_CONFIG"
	envModel   = "RUNNER_MODEL"
	envLogFile = "RUNNER_LOG_FILE"
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - jump over obstacles in your terminal",
	Long: `Lane Runner is a single-lane 3D runner rendered in the terminal.
Rocks, logs and fences slide toward you; jump over them for as long as you can.

Available commands:
  play     - Play the game
  sim      - Headless deterministic run
  config   - Print the default configuration

Examples:
  runner play
  runner play --difficulty hard --model ./dino.glb
  runner sim --seed 42 --ticks 2000 --jump-every 40
  runner config > ~/.runner/configs/runner.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		envDefault(cmd, "log-file", envLogFile, &flagLogFile)
		envDefault(cmd, "config", envConfig, &flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// envDefault copies an environment value into target unless the flag was given.
func envDefault(cmd *cobra.Command, flag, env string, target *string) {
	f := cmd.Flags().Lookup(flag)
	if f == nil || f.Changed {
		return
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*target = v
	}
}

// loadConfig resolves the game configuration and applies the difficulty preset.
func loadConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger for a command. Interactive commands must not
// log to the terminal, so they fall back to a file.
func newLogger(interactive bool) (*log.Logger, io.Closer, error) {
	opts := logging.Options{
		File:   flagLogFile,
		Level:  flagLogLevel,
		Prefix: "runner",
	}
	if opts.File == "" && interactive {
		opts.File = logging.DefaultFile()
	}
	return logging.New(opts)
}

// exitOnError prints err and exits with status 1.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
