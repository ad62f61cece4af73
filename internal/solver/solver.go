// Package solver finds the solutions of a nonogram puzzle from its row
// and column hints. It alternates row and column propagation passes
// until the board stops changing, then guesses a single cell and
// backtracks from contradictions, enumerating every solution the hints
// admit.
package solver

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/OliveIsAWord/picross/internal/board"
	"github.com/OliveIsAWord/picross/internal/hint"
)

var (
	ErrNoSolution = errors.New("puzzle has no more solutions")
	ErrTimeout    = errors.New("solver timeout exceeded")
)

var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// SetLogLevel adjusts the verbosity of solver event logging.
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// searchState is one in-progress solve: the working board plus the
// branch-local candidate caches for every row and column.
type searchState struct {
	grid *board.Grid[board.Cell]
	rows []*lineSolver
	cols []*lineSolver
}

func newSearchState(rowHints, colHints []hint.Hint) *searchState {
	st := &searchState{
		grid: board.New[board.Cell](len(colHints), len(rowHints)),
		rows: make([]*lineSolver, len(rowHints)),
		cols: make([]*lineSolver, len(colHints)),
	}
	for i, h := range rowHints {
		st.rows[i] = &lineSolver{hint: h}
	}
	for i, h := range colHints {
		st.cols[i] = &lineSolver{hint: h}
	}
	return st
}

func (st *searchState) clone() *searchState {
	c := &searchState{
		grid: st.grid.Clone(),
		rows: make([]*lineSolver, len(st.rows)),
		cols: make([]*lineSolver, len(st.cols)),
	}
	for i, ls := range st.rows {
		c.rows[i] = ls.clone()
	}
	for i, ls := range st.cols {
		c.cols[i] = ls.clone()
	}
	return c
}

// Solver enumerates the solutions of one puzzle. It is not safe for
// concurrent use; each call to NextSolution resumes the search where
// the previous call left off.
type Solver struct {
	rowHints []hint.Hint
	colHints []hint.Hint
	state    *searchState
	stack    []*searchState
	branches int
	options  *Options
}

// New creates a solver for the puzzle described by the given hints.
// The board is len(colHints) cells wide and len(rowHints) cells tall.
// A hint too long for its line is not an error here; it surfaces as an
// immediate contradiction when solving starts.
func New(rowHints, colHints []hint.Hint, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	return &Solver{
		rowHints: slices.Clone(rowHints),
		colHints: slices.Clone(colHints),
		state:    newSearchState(rowHints, colHints),
		options:  options,
	}
}

// Width returns the number of columns in the puzzle.
func (s *Solver) Width() int { return len(s.colHints) }

// Height returns the number of rows in the puzzle.
func (s *Solver) Height() int { return len(s.rowHints) }

// Branches returns the number of guesses taken so far, accumulated
// across NextSolution calls. A first solution found with zero branches
// was reached by line propagation alone.
func (s *Solver) Branches() int { return s.branches }

// Partial returns a copy of the working board, useful for showing how
// far a failed or timed-out solve got.
func (s *Solver) Partial() *board.Grid[board.Cell] {
	return s.state.grid.Clone()
}

// NextSolution runs the search until it completes another board.
// Successive calls yield successive solutions; once the search space is
// exhausted it returns ErrNoSolution, including for puzzles with no
// solution at all.
func (s *Solver) NextSolution() (*board.Grid[bool], error) {
	ctx, cancel := s.makeContext()
	defer cancel()
	return s.search(ctx)
}

// Solutions collects solutions until the search space is exhausted or
// the MaxSolutions option is reached. On timeout it returns the
// solutions found so far along with ErrTimeout.
func (s *Solver) Solutions() ([]*board.Grid[bool], error) {
	var solutions []*board.Grid[bool]
	for s.options.MaxSolutions <= 0 || len(solutions) < s.options.MaxSolutions {
		solution, err := s.NextSolution()
		if errors.Is(err, ErrNoSolution) {
			break
		}
		if err != nil {
			return solutions, err
		}
		solutions = append(solutions, solution)
	}
	return solutions, nil
}

// search alternates row and column passes until the board is complete.
// A contradiction pops the most recent snapshot; a stall guesses the
// first unknown cell in row-major order. After a solution is returned
// the live state remains fully determined, so the next call stalls with
// no unknown cell and falls through to the snapshot stack, resuming the
// enumeration.
func (s *Solver) search(ctx context.Context) (*board.Grid[bool], error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ErrTimeout
		default:
		}

		progressed, err := s.rowPass()
		if err == nil {
			var p bool
			p, err = s.colPass()
			progressed = progressed || p
		}
		if err != nil {
			if !s.pop() {
				return nil, ErrNoSolution
			}
			continue
		}

		if progressed {
			if solution := s.finished(); solution != nil {
				log.WithFields(logrus.Fields{
					"branches": s.branches,
					"depth":    len(s.stack),
				}).Debug("board fully determined")
				return solution, nil
			}
			continue
		}

		if i := s.firstUnknown(); i >= 0 {
			s.branch(i)
			continue
		}
		if !s.pop() {
			return nil, ErrNoSolution
		}
	}
}

func (s *Solver) rowPass() (bool, error) {
	g := s.state.grid
	return s.linePass(s.state.rows, g.Row, g.SetRow)
}

func (s *Solver) colPass() (bool, error) {
	g := s.state.grid
	return s.linePass(s.state.cols, g.Col, g.SetCol)
}

// linePass advances every line of one axis. Write-backs are applied in
// line order, and a contradiction aborts the pass immediately; the
// caller is expected to backtrack.
func (s *Solver) linePass(lines []*lineSolver, get func(int) []board.Cell, set func(int, []board.Cell)) (bool, error) {
	if s.options.Workers > 1 {
		return s.linePassParallel(lines, get, set)
	}

	progressed := false
	for i, ls := range lines {
		known := get(i)
		merged, changed, err := ls.progress(known)
		if err != nil {
			return progressed, err
		}
		if changed && !slices.Equal(known, merged) {
			set(i, merged)
			progressed = true
		}
	}
	return progressed, nil
}

// linePassParallel fans the per-line work of one pass out to
// options.Workers goroutines. Lines of a single axis are disjoint and
// write-backs wait for the join, so the outcome matches the serial
// pass; results are then applied in line order, stopping at the first
// contradiction exactly as the serial loop would.
func (s *Solver) linePassParallel(lines []*lineSolver, get func(int) []board.Cell, set func(int, []board.Cell)) (bool, error) {
	type lineResult struct {
		merged []board.Cell
		write  bool
		err    error
	}

	results := make([]lineResult, len(lines))
	sem := make(chan struct{}, s.options.Workers)
	var wg sync.WaitGroup
	for i, ls := range lines {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, ls *lineSolver) {
			defer func() {
				<-sem
				wg.Done()
			}()
			known := get(i)
			merged, changed, err := ls.progress(known)
			results[i] = lineResult{
				merged: merged,
				write:  changed && !slices.Equal(known, merged),
				err:    err,
			}
		}(i, ls)
	}
	wg.Wait()

	progressed := false
	for i := range results {
		r := &results[i]
		if r.err != nil {
			return progressed, r.err
		}
		if r.write {
			set(i, r.merged)
			progressed = true
		}
	}
	return progressed, nil
}

// branch guesses that cell i is filled, pushing a snapshot with the
// cell blank for later exploration. Every solution extending either
// assignment is eventually found.
func (s *Solver) branch(i int) {
	alternative := s.state.clone()
	alternative.grid.SetIndex(i, board.Blank)
	s.stack = append(s.stack, alternative)
	s.state.grid.SetIndex(i, board.Filled)
	s.branches++

	log.WithFields(logrus.Fields{
		"cell":     i,
		"branches": s.branches,
		"depth":    len(s.stack),
	}).Debug("propagation stalled, branching on first unknown cell")
}

// pop restores the most recent snapshot, reporting false when the
// stack is exhausted.
func (s *Solver) pop() bool {
	if len(s.stack) == 0 {
		log.Debug("backtrack stack exhausted")
		return false
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]

	log.WithFields(logrus.Fields{
		"depth": len(s.stack),
	}).Debug("restored snapshot from backtrack stack")
	return true
}

// finished materializes the board as a solution, or returns nil if any
// cell is still unknown.
func (s *Solver) finished() *board.Grid[bool] {
	g := s.state.grid
	for i := 0; i < g.Len(); i++ {
		if !g.AtIndex(i).Determined() {
			return nil
		}
	}

	solution := board.New[bool](g.Width(), g.Height())
	for i := 0; i < g.Len(); i++ {
		solution.SetIndex(i, g.AtIndex(i) == board.Filled)
	}
	return solution
}

// firstUnknown returns the row-major index of the first unknown cell,
// or -1 when the board is fully determined.
func (s *Solver) firstUnknown() int {
	g := s.state.grid
	for i := 0; i < g.Len(); i++ {
		if g.AtIndex(i) == board.Unknown {
			return i
		}
	}
	return -1
}

// Verify reports whether a completed board satisfies every row and
// column hint exactly.
func Verify(g *board.Grid[bool], rowHints, colHints []hint.Hint) bool {
	if g.Height() != len(rowHints) || g.Width() != len(colHints) {
		return false
	}
	for y, h := range rowHints {
		if !hint.Runs(g.Row(y)).Equal(h) {
			return false
		}
	}
	for x, h := range colHints {
		if !hint.Runs(g.Col(x)).Equal(h) {
			return false
		}
	}
	return true
}
