package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OliveIsAWord/picross/internal/board"
	"github.com/OliveIsAWord/picross/internal/hint"
	"github.com/OliveIsAWord/picross/internal/solver"
)

var (
	solveAll     bool
	maxSolutions int
	solveTimeout time.Duration
	useColor     bool
	workers      int
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a nonogram puzzle",
		Long: `Solve a nonogram puzzle from a file.

The file holds two lines: the row hints, then the column hints. Each
line is a comma-separated list of hints, and each hint is the block
lengths of its line separated by spaces. Blank lines and lines starting
with '#' are ignored.

Examples:
  picross solve puzzle.txt
  picross solve --all puzzle.txt
  picross solve --workers 4 --timeout 30s puzzle.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVarP(&solveAll, "all", "a", false, "Enumerate every solution")
	solveCmd.Flags().IntVarP(&maxSolutions, "max", "m", 0, "Stop after this many solutions (implies --all)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Abort solving after this long (0 = no limit)")
	solveCmd.Flags().BoolVar(&useColor, "color", false, "Render boards in color")
	solveCmd.Flags().IntVarP(&workers, "workers", "w", 1, "Goroutines per propagation pass")

	rootCmd.AddCommand(solveCmd)
}

// readPuzzle loads a puzzle file: the first non-comment line holds the
// row hints, the second the column hints.
func readPuzzle(path string) (rows, cols []hint.Hint, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 hint lines, found %d", path, len(lines))
	}

	rows, err = hint.ParseLists(lines[0])
	if err != nil {
		return nil, nil, fmt.Errorf("row hints: %w", err)
	}
	cols, err = hint.ParseLists(lines[1])
	if err != nil {
		return nil, nil, fmt.Errorf("column hints: %w", err)
	}
	return rows, cols, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	rows, cols, err := readPuzzle(args[0])
	if err != nil {
		return err
	}

	limit := 1
	if solveAll {
		limit = 0
	}
	if maxSolutions > 0 {
		limit = maxSolutions
	}

	s := solver.New(rows, cols, &solver.Options{
		Timeout: solveTimeout,
		Workers: workers,
	})

	found := 0
	for {
		start := time.Now()
		solution, err := s.NextSolution()
		elapsed := time.Since(start)

		switch {
		case err == nil:
			fmt.Println("Found solution:")
			fmt.Println(renderSolution(solution))
			printBranches(s.Branches())
			found++
		case errors.Is(err, solver.ErrNoSolution):
			if found > 0 {
				fmt.Println("No more solutions found.")
			} else {
				fmt.Println("Failed - found partial solution:")
				fmt.Println(renderCells(s.Partial()))
			}
			printBranches(s.Branches())
		case errors.Is(err, solver.ErrTimeout):
			fmt.Println("Timed out - found partial solution:")
			fmt.Println(renderCells(s.Partial()))
			return err
		default:
			return err
		}
		fmt.Printf("Time taken: %dµs\n", elapsed.Microseconds())

		if err != nil {
			return nil
		}
		if limit > 0 && found >= limit {
			return nil
		}
	}
}

func printBranches(n int) {
	if n > 0 {
		fmt.Printf("Required %d backtracks.\n", n)
	} else {
		fmt.Println("No backtracking required.")
	}
}

// renderSolution formats a solved board, highlighting filled cells when
// color output is enabled.
func renderSolution(g *board.Grid[bool]) string {
	if !useColor {
		return board.FormatSolution(g)
	}

	filled := color.New(color.FgGreen, color.Bold)
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range g.Row(y) {
			if cell {
				sb.WriteString(filled.Sprint("X"))
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// renderCells formats a partially solved board.
func renderCells(g *board.Grid[board.Cell]) string {
	if !useColor {
		return board.FormatCells(g)
	}

	filled := color.New(color.FgGreen, color.Bold)
	unknown := color.New(color.FgYellow)
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.Row(y) {
			switch c {
			case board.Filled:
				sb.WriteString(filled.Sprint("X"))
			case board.Unknown:
				sb.WriteString(unknown.Sprint("?"))
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
