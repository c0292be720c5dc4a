package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration the next run will use, merging the optional
config file with built-in defaults.

Example:
  fluttersweep config`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	return writeConfig(os.Stdout)
}

func writeConfig(out io.Writer) error {
	cfg := GetConfig()

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "clean command:\t%s\n", strings.TrimSpace(cfg.Clean.Command+" "+strings.Join(cfg.Clean.Args, " ")))
	fmt.Fprintf(w, "excluded directories:\t%s\n", strings.Join(cfg.Scan.ExcludeDirs, ", "))
	fmt.Fprintf(w, "recursive by default:\t%t\n", cfg.RecursiveDefault())
	fmt.Fprintf(w, "verbose by default:\t%t\n", cfg.Scan.Verbose)
	return w.Flush()
}
