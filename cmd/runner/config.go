package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.runner/configs/runner.yaml or ./configs/runner.yaml and edit
it to change physics, spawn rates, obstacle sizes or the camera.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		_, err := os.Stdout.Write(config.DefaultYAML())
		exitOnError(err)
	},
}
