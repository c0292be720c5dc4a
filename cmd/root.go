package cmd

import (
	"fmt"
	"os"

	"fluttersweep/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fluttersweep",
	Short: "Reclaim disk space held by Flutter build artifacts",
	Long: `fluttersweep finds Flutter projects under a directory, measures their
build output, and runs "flutter clean" in each of them:

  - Walk a directory tree for pubspec.yaml files declaring Flutter
  - Measure each project's build directory
  - Confirm, then clean all projects in parallel
  - Report how much space was freed

Example:
  fluttersweep clean ~/src --verbose`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.fluttersweep.yaml)")
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath
	}

	loaded, err := config.Load(path)
	if err != nil {
		// The config file is optional; built-in defaults cover everything.
		loaded = config.Default()
	}
	cfg = loaded
}

// GetConfig returns the loaded configuration, falling back to defaults
// when initialization has not run
func GetConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}
