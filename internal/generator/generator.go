// Package generator creates nonogram puzzles by drawing a random board
// and reading its hints back off. Unlike puzzles built by hand, a
// random board's hints often admit several solutions, so generation
// can resample until the solver confirms uniqueness.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/OliveIsAWord/picross/internal/board"
	"github.com/OliveIsAWord/picross/internal/hint"
	"github.com/OliveIsAWord/picross/internal/solver"
)

const (
	MinValidDimension = 1
	MaxValidDimension = 100
	DefaultDensity    = 0.5
)

var (
	ErrGenerationFailed = errors.New("failed to generate valid puzzle")
	ErrInvalidDimension = errors.New("dimensions must be between 1 and 100")
	ErrInvalidDensity   = errors.New("density must be between 0 and 1")
)

// Puzzle is a nonogram: one hint per row and one per column.
type Puzzle struct {
	Rows []hint.Hint
	Cols []hint.Hint
}

// Width returns the number of columns in the puzzle.
func (p *Puzzle) Width() int { return len(p.Cols) }

// Height returns the number of rows in the puzzle.
func (p *Puzzle) Height() int { return len(p.Rows) }

// String renders the puzzle in its file format: the row hints on one
// line and the column hints on the next, each a comma-separated list.
func (p *Puzzle) String() string {
	return hint.FormatLists(p.Rows) + "\n" + hint.FormatLists(p.Cols)
}

// FromSolution derives the puzzle whose hints describe the given board.
func FromSolution(solution *board.Grid[bool]) *Puzzle {
	p := &Puzzle{
		Rows: make([]hint.Hint, solution.Height()),
		Cols: make([]hint.Hint, solution.Width()),
	}
	for y := range p.Rows {
		p.Rows[y] = hint.Runs(solution.Row(y))
	}
	for x := range p.Cols {
		p.Cols[x] = hint.Runs(solution.Col(x))
	}
	return p
}

// Generator creates nonogram puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(MaxValidDimension/10, MaxValidDimension/10)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new puzzle.
// Returns the puzzle and the board it was drawn from, or an error if
// generation fails. The board always satisfies the puzzle's hints; when
// EnsureUnique is set it is the only board that does.
func (g *Generator) Generate() (puzzle *Puzzle, solution *board.Grid[bool], err error) {
	if g.options.Width < MinValidDimension || g.options.Width > MaxValidDimension ||
		g.options.Height < MinValidDimension || g.options.Height > MaxValidDimension {
		return nil, nil, ErrInvalidDimension
	}
	if g.options.Density < 0 || g.options.Density > 1 {
		return nil, nil, ErrInvalidDensity
	}

	start := time.Now()
	timeout := g.options.Timeout

	for {
		if time.Since(start) >= timeout {
			return nil, nil, ErrGenerationFailed
		}

		solution = g.randomBoard()
		puzzle = FromSolution(solution)

		if g.options.EnsureUnique {
			if !g.hasUniqueSolution(puzzle) {
				continue
			}
		}

		return puzzle, solution, nil
	}
}

// randomBoard fills a board cell by cell with the configured density.
func (g *Generator) randomBoard() *board.Grid[bool] {
	b := board.New[bool](g.options.Width, g.options.Height)
	for i := 0; i < b.Len(); i++ {
		b.SetIndex(i, g.rng.Float64() < g.options.Density)
	}
	return b
}

// hasUniqueSolution checks if the puzzle has exactly one solution.
func (g *Generator) hasUniqueSolution(puzzle *Puzzle) bool {
	s := solver.New(puzzle.Rows, puzzle.Cols, &solver.Options{
		MaxSolutions: 2,
		Timeout:      g.options.Timeout,
	})

	solutions, err := s.Solutions()
	return err == nil && len(solutions) == 1
}

// GenerateWithSize is a convenience function to generate a puzzle of a
// specific size with default options.
func GenerateWithSize(width, height int) (*Puzzle, *board.Grid[bool], error) {
	gen := New(DefaultOptions(width, height))
	return gen.Generate()
}
