package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/OliveIsAWord/picross/internal/board"
	"github.com/OliveIsAWord/picross/internal/generator"
	"github.com/OliveIsAWord/picross/internal/solver"
)

var (
	numPuzzles   int
	genWidth     int
	genHeight    int
	genDensity   float64
	genSeed      int64
	genUnique    bool
	genTimeout   time.Duration
	outputFile   string
	showSolution bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate nonogram puzzles",
		Long: `Generate one or more random nonogram puzzles.

Examples:
  picross gen
  picross gen -W 20 -H 15
  picross gen -n 5 --density 0.6 -o puzzles.txt
  picross gen --seed 42 --show-solution`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().IntVarP(&genWidth, "width", "W", 10, "Puzzle width in cells")
	genCmd.Flags().IntVarP(&genHeight, "height", "H", 10, "Puzzle height in cells")
	genCmd.Flags().Float64Var(&genDensity, "density", generator.DefaultDensity, "Fraction of filled cells, 0-1")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 = time-based)")
	genCmd.Flags().BoolVarP(&genUnique, "unique", "u", true, "Regenerate until the hints admit a single solution")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write puzzles to files instead of stdout")
	genCmd.Flags().BoolVar(&showSolution, "show-solution", false, "Include each puzzle's solution")

	rootCmd.AddCommand(genCmd)
}

// outputPath numbers the output files when generating several puzzles:
// puzzles.txt becomes puzzles-1.txt, puzzles-2.txt, and so on.
func outputPath(base string, index, total int) string {
	if total == 1 {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s-%d%s", stem, index+1, ext)
}

// puzzleFile renders one puzzle in the format readPuzzle accepts, with
// its vitals (and optionally its solution) in comment lines.
func puzzleFile(puzzle *generator.Puzzle, solution *board.Grid[bool], rating string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %dx%d %s\n", puzzle.Width(), puzzle.Height(), rating)
	sb.WriteString(puzzle.String())
	sb.WriteByte('\n')
	if showSolution {
		sb.WriteString("# solution:\n")
		for y := 0; y < solution.Height(); y++ {
			sb.WriteString("# ")
			for _, cell := range solution.Row(y) {
				sb.WriteRune(board.SolutionRune(cell))
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func runGen(cmd *cobra.Command, args []string) error {
	for i := 0; i < numPuzzles; i++ {
		opts := generator.DefaultOptions(genWidth, genHeight)
		opts.Density = genDensity
		opts.Timeout = genTimeout
		opts.EnsureUnique = genUnique
		if genSeed != 0 {
			opts.Seed = genSeed + int64(i)
		}
		gen := generator.New(opts)

		puzzle, solution, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		difficulty, err := solver.Difficulty(puzzle.Rows, puzzle.Cols)
		if err != nil {
			return fmt.Errorf("rating generated puzzle: %w", err)
		}
		rating := solver.Rating(difficulty)

		if outputFile != "" {
			path := outputPath(outputFile, i, numPuzzles)
			if err := os.WriteFile(path, []byte(puzzleFile(puzzle, solution, rating)), 0o644); err != nil {
				return fmt.Errorf("failed to write puzzle file: %w", err)
			}
			fmt.Printf("Wrote %s\n", path)
			continue
		}

		fmt.Printf("Puzzle #%d (%dx%d, %s):\n", i+1, genWidth, genHeight, rating)
		fmt.Println(puzzle)
		if showSolution {
			fmt.Println("\nSolution:")
			fmt.Println(board.FormatSolution(solution))
		}
		fmt.Println()
	}

	return nil
}
