package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antflydb/tablehunt/block"
	"github.com/antflydb/tablehunt/hunt"
	applog "github.com/antflydb/tablehunt/log"
	"github.com/spf13/cobra"
)

var (
	fixturePath string
	logStyle    string
	logLevel    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the hunting engine over a fixture and print the resulting tree",
	Long: `Run the table-hunting engine over a JSON block-tree fixture.

Examples:
  # Run against a fixture, default noop logging
  tablehunt-diag run --fixture testdata/grid.json

  # Run with terminal-level debug tracing
  tablehunt-diag run --fixture testdata/grid.json --log-style terminal --log-level debug
`,
	RunE: runDiag,
}

func init() {
	runCmd.Flags().StringVarP(&fixturePath, "fixture", "f", "", "Path to JSON block-tree fixture (required)")
	runCmd.Flags().StringVar(&logStyle, "log-style", "noop", "Log style: noop, terminal, json")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runDiag(cmd *cobra.Command, args []string) error {
	if fixturePath == "" {
		return fmt.Errorf("tablehunt-diag: --fixture is required")
	}

	f, err := os.Open(fixturePath)
	if err != nil {
		return fmt.Errorf("tablehunt-diag: opening fixture: %w", err)
	}
	defer f.Close()

	root, err := hunt.LoadFixture(f)
	if err != nil {
		return fmt.Errorf("tablehunt-diag: %w", err)
	}

	style, err := parseLogStyle(logStyle)
	if err != nil {
		return err
	}
	logger, err := applog.New(&applog.Config{Style: style, Level: logLevel})
	if err != nil {
		return fmt.Errorf("tablehunt-diag: building logger: %w", err)
	}
	defer logger.Sync()

	if err := hunt.Hunt(root, hunt.Config{Logger: logger}); err != nil {
		return fmt.Errorf("tablehunt-diag: hunt failed: %w", err)
	}

	if err := block.VerifyInvariants(root); err != nil {
		return fmt.Errorf("tablehunt-diag: output tree failed invariant check: %w", err)
	}

	n := printTables(root, os.Stdout)
	if n == 0 {
		fmt.Fprintln(os.Stdout, "no tables found")
	}
	return nil
}

func parseLogStyle(s string) (applog.Style, error) {
	switch strings.ToLower(s) {
	case "noop", "":
		return applog.StyleNoop, nil
	case "terminal":
		return applog.StyleTerminal, nil
	case "json":
		return applog.StyleJSON, nil
	default:
		return applog.StyleNoop, fmt.Errorf("tablehunt-diag: unknown log style %q", s)
	}
}

// printTables walks the tree for every emitted table, printing a summary
// of its row/column shape and per-cell text content. It returns the
// number of tables found.
func printTables(b *block.Block, w io.Writer) int {
	found := 0
	if b.Tag == block.TagTable {
		found++
		fmt.Fprintf(w, "table %d: %d rows\n", found, b.NumChildren())
		for ri, row := 0, b.FirstChild; row != nil; ri, row = ri+1, row.Next {
			fmt.Fprintf(w, "  row %d: %d cells\n", ri, row.NumChildren())
			for ci, cell := 0, row.FirstChild; cell != nil; ci, cell = ci+1, cell.Next {
				fmt.Fprintf(w, "    cell %d: %q\n", ci, cellText(cell))
			}
		}
	}
	for c := b.FirstChild; c != nil; c = c.Next {
		found += printTables(c, w)
	}
	return found
}

func cellText(cell *block.Block) string {
	var sb strings.Builder
	for leaf := cell.FirstChild; leaf != nil; leaf = leaf.Next {
		if leaf.Kind != block.KindText {
			continue
		}
		for _, ln := range leaf.Lines {
			for _, c := range ln.Chars {
				sb.WriteRune(c.Rune)
			}
		}
	}
	return sb.String()
}
