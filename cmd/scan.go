package cmd

import (
	"fmt"
	"io"
	"os"

	appscan "fluttersweep/application/scan"
	"fluttersweep/infrastructure/fs"
	"fluttersweep/infrastructure/pubspec"

	"github.com/spf13/cobra"
)

var (
	scanRecursive bool
	scanVerbose   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Report Flutter projects and reclaimable space without cleaning",
	Long: `Report every Flutter project under the given path whose build directory
holds reclaimable artifacts, along with the total. Nothing is cleaned;
this is the same report "clean --dry-run" prints.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", true, "Descend into subdirectories")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print per-directory detail during scan")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	recursive := scanRecursive
	if !cmd.Flags().Changed("recursive") {
		recursive = cfg.RecursiveDefault()
	}
	verbose := scanVerbose || cfg.Scan.Verbose

	scanner := appscan.NewService(
		fs.NewWalker(cfg.Scan.ExcludeDirs),
		pubspec.NewDetector(),
		fs.DirSize,
		appscan.WithVerbose(verbose),
		appscan.WithOutput(os.Stdout),
		appscan.WithProgress(newScanProgress(verbose)),
	)
	return runScanWithService(root, recursive, scanner, os.Stdout)
}

// runScanWithService runs the report-only workflow with an injected
// scanner (for testing)
func runScanWithService(root string, recursive bool, scanner *appscan.Service, out io.Writer) error {
	projects, err := scanner.Scan(root, recursive)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Fprintln(out, "No Flutter projects with build output found.")
		return nil
	}
	printReport(out, projects)
	return nil
}
