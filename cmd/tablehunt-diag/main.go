// Command tablehunt-diag runs the table-hunting engine over a
// JSON-encoded block-tree fixture and prints, for each table found, its
// row count, each row's cell count, and each cell's text (spec.md §6).
// It exists for manual inspection of the
// engine's output, not as a production entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "tablehunt-diag",
	Short:   "tablehunt-diag - inspect the table-hunting engine's output on a fixture",
	Version: version,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
