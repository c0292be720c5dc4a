package cmd

import (
	"fmt"
	"os"
	"strings"

	"fluttersweep/infrastructure/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates .fluttersweep.yaml.

The config file is optional. It can override the clean command, add
directory names to skip during scanning, and change flag defaults.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath
	}
	return RunSetupWithPrompter(DefaultPrompter, path)
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm(configPath+" already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	cfg := config.Default()

	command, err := prompter.Input("Clean command", cfg.Clean.Command)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Clean.Command = command

	cmdArgs, err := prompter.Input("Clean command arguments (space separated)", strings.Join(cfg.Clean.Args, " "))
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Clean.Args = strings.Fields(cmdArgs)

	excludes, err := prompter.Input("Directory names to skip (comma separated)", strings.Join(cfg.Scan.ExcludeDirs, ","))
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Scan.ExcludeDirs = splitExcludes(excludes)

	recursive, err := prompter.Confirm("Scan subdirectories by default?", cfg.RecursiveDefault())
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Scan.Recursive = &recursive

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}

func splitExcludes(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
