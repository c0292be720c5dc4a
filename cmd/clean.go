package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	appclean "fluttersweep/application/clean"
	appscan "fluttersweep/application/scan"
	"fluttersweep/domain/project"
	"fluttersweep/infrastructure/flutter"
	"fluttersweep/infrastructure/fs"
	"fluttersweep/infrastructure/pubspec"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	cleanRecursive bool
	cleanVerbose   bool
	cleanDryRun    bool
	cleanYes       bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Find Flutter projects and run flutter clean in each of them",
	Long: `Find Flutter projects under the given path (default: current directory),
report their build directory sizes, and run "flutter clean" in every
confirmed project concurrently.

The scan descends into subdirectories unless --recursive=false, skipping
hidden directories and dependency caches. Projects whose build directory
is absent or empty are not listed.

A failing clean in one project is reported and does not abort the others.
The command waits for every launched clean process; there is no timeout.

Example:
  fluttersweep clean ~/src
  fluttersweep clean --dry-run
  fluttersweep clean --yes --verbose ~/work`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVarP(&cleanRecursive, "recursive", "r", true, "Descend into subdirectories")
	cleanCmd.Flags().BoolVarP(&cleanVerbose, "verbose", "v", false, "Print per-directory detail during scan and clean")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Report projects and sizes without cleaning")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Skip the confirmation prompt")
}

// cleanOptions carries the resolved flag values for one run
type cleanOptions struct {
	Root      string
	Recursive bool
	Verbose   bool
	DryRun    bool
	Yes       bool
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	opts := cleanOptions{
		Root:      ".",
		Recursive: cleanRecursive,
		Verbose:   cleanVerbose || cfg.Scan.Verbose,
		DryRun:    cleanDryRun,
		Yes:       cleanYes,
	}
	if len(args) == 1 {
		opts.Root = args[0]
	}
	if !cmd.Flags().Changed("recursive") {
		opts.Recursive = cfg.RecursiveDefault()
	}

	scanner := appscan.NewService(
		fs.NewWalker(cfg.Scan.ExcludeDirs),
		pubspec.NewDetector(),
		fs.DirSize,
		appscan.WithVerbose(opts.Verbose),
		appscan.WithOutput(os.Stdout),
		appscan.WithProgress(newScanProgress(opts.Verbose)),
	)
	cleaner := appclean.NewService(
		flutter.NewCleaner(flutter.WithCommand(cfg.Clean.Command, cfg.Clean.Args...)),
		appclean.WithVerbose(opts.Verbose),
		appclean.WithOutput(os.Stdout),
	)

	return runCleanWithDeps(cmd.Context(), opts, scanner, cleaner, DefaultPrompter, os.Stdout)
}

// runCleanWithDeps runs the clean workflow with injected collaborators
// (for testing)
func runCleanWithDeps(
	ctx context.Context,
	opts cleanOptions,
	scanner *appscan.Service,
	cleaner *appclean.Service,
	prompter Prompter,
	out io.Writer,
) error {
	projects, err := scanner.Scan(opts.Root, opts.Recursive)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(out, "No Flutter projects with build output found.")
		return nil
	}

	printReport(out, projects)

	if opts.DryRun {
		fmt.Fprintln(out, "Dry run: no changes made.")
		return nil
	}

	if !opts.Yes {
		proceed, err := prompter.Confirm(fmt.Sprintf("Clean %d project(s)?", len(projects)), false)
		if err != nil || !proceed {
			// EOF and prompt errors count as a decline, not a failure.
			fmt.Fprintln(out, "Aborted: no changes made.")
			return nil
		}
	}

	result := cleaner.CleanAll(ctx, projects)
	printSummary(out, result)
	return nil
}

func printReport(out io.Writer, projects []project.Project) {
	fmt.Fprintf(out, "Found %d Flutter project(s):\n", len(projects))
	for _, p := range projects {
		fmt.Fprintf(out, "  %s  (%s)\n", p.Path, project.FormatSize(p.BuildSize))
	}
	fmt.Fprintf(out, "Total reclaimable space: %s\n", project.FormatSize(project.TotalSize(projects)))
}

func printSummary(out io.Writer, result project.CleanResult) {
	fmt.Fprintf(out, "\nProjects found:   %d\n", result.ProjectsFound)
	fmt.Fprintf(out, "Projects cleaned: %d\n", result.ProjectsCleaned)
	fmt.Fprintf(out, "Space freed:      %s\n", project.FormatSize(result.SpaceFreed))
}

// spinnerProgress shows a terminal spinner while the scan runs
type spinnerProgress struct {
	s *spinner.Spinner
}

func (p *spinnerProgress) Start() { p.s.Start() }
func (p *spinnerProgress) Stop()  { p.s.Stop() }

// newScanProgress returns a spinner when stdout is a terminal and verbose
// lines are off; otherwise scanning stays silent.
func newScanProgress(verbose bool) appscan.Progress {
	if verbose || !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Scanning for Flutter projects..."
	return &spinnerProgress{s: s}
}
