package solver

import (
	"github.com/OliveIsAWord/picross/internal/board"
	"github.com/OliveIsAWord/picross/internal/hint"
)

// lineSolver tracks the surviving candidate patterns for a single row
// or column, so repeated passes never regenerate the full permutation
// list. Candidates only ever shrink; once a pattern is ruled out by a
// determined cell it can never match again.
type lineSolver struct {
	hint       hint.Hint
	candidates [][]bool
	started    bool
}

// progress filters the cached candidates against the line's current
// cells and reports the merged result. changed is false when the
// candidate set did not shrink, in which case merging would reproduce
// the line as it already stands and is skipped. Returns
// hint.ErrContradiction when no candidate survives.
func (ls *lineSolver) progress(known []board.Cell) (merged []board.Cell, changed bool, err error) {
	first := !ls.started
	if first {
		ls.candidates = ls.hint.Permutations(len(known))
		ls.started = true
	}

	kept := ls.candidates[:0]
	for _, pattern := range ls.candidates {
		if hint.Matches(pattern, known) {
			kept = append(kept, pattern)
		}
	}
	shrank := len(kept) < len(ls.candidates)
	ls.candidates = kept

	if len(ls.candidates) == 0 {
		return nil, false, hint.ErrContradiction
	}
	if !first && !shrank {
		return nil, false, nil
	}
	return hint.Merge(ls.candidates), true, nil
}

// clone copies the candidate set for a branch snapshot. The outer slice
// is copied so that later in-place filtering of one branch cannot
// disturb the other; the patterns themselves are immutable once
// generated and are shared.
func (ls *lineSolver) clone() *lineSolver {
	c := &lineSolver{hint: ls.hint, started: ls.started}
	if ls.candidates != nil {
		c.candidates = make([][]bool, len(ls.candidates))
		copy(c.candidates, ls.candidates)
	}
	return c
}
