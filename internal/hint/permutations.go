package hint

import (
	"errors"
	"fmt"

	"github.com/OliveIsAWord/picross/internal/board"
)

// ErrContradiction reports that no fill pattern of a line is compatible
// with what is already known about it. It is an expected outcome during
// solving, recovered by backtracking.
var ErrContradiction = errors.New("no pattern satisfies the line")

// Permutations generates every fill pattern of exactly length cells that
// satisfies the hint: its blocks appear in order as runs of filled cells,
// separated by at least one blank, with any amount of leading and
// trailing blank padding. Patterns are returned in a fixed, reproducible
// order with no duplicates. An infeasible hint (MinLength > length)
// yields no patterns.
func (h Hint) Permutations(length int) [][]bool {
	switch len(h) {
	case 0:
		// No blocks: the only satisfying line is entirely blank.
		return [][]bool{make([]bool, length)}

	case 1:
		size := h[0]
		if size > length {
			return nil
		}
		perms := make([][]bool, 0, length-size+1)
		for offset := 0; offset <= length-size; offset++ {
			p := make([]bool, length)
			for i := offset; i < offset+size; i++ {
				p[i] = true
			}
			perms = append(perms, p)
		}
		return perms
	}

	// Split off the rightmost block and recurse on the prefix: for every
	// split point i, the prefix blocks occupy the first i cells, one
	// mandatory blank separates, and the last block occupies the rest.
	// The same total pattern can be reached through more than one split
	// point because prefix permutations already carry trailing blanks, so
	// results are deduplicated preserving first-seen order.
	prefix := h[:len(h)-1]
	last := h[len(h)-1:]
	size := h[len(h)-1]

	var perms [][]bool
	seen := make(map[string]struct{})
	for i := 1; i < length-size; i++ {
		prefixPerms := prefix.Permutations(i)
		if len(prefixPerms) == 0 {
			continue
		}
		lastPerms := last.Permutations(length - i - 1)
		for _, pp := range prefixPerms {
			for _, lp := range lastPerms {
				p := make([]bool, 0, length)
				p = append(p, pp...)
				p = append(p, false)
				p = append(p, lp...)
				key := patternKey(p)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				perms = append(perms, p)
			}
		}
	}
	return perms
}

// patternKey encodes a pattern as a compact string for dedup map keys.
func patternKey(p []bool) string {
	b := make([]byte, len(p))
	for i, filled := range p {
		if filled {
			b[i] = 'X'
		} else {
			b[i] = '.'
		}
	}
	return string(b)
}

// Matches reports whether a fill pattern is compatible with the known
// cells of a line: it is false iff some cell is determined and the
// pattern disagrees there. Unknown cells never disagree. The pattern and
// the line must have equal length.
func Matches(pattern []bool, known []board.Cell) bool {
	if len(pattern) != len(known) {
		panic(fmt.Sprintf("hint: pattern length %d against line length %d", len(pattern), len(known)))
	}
	for i, filled := range pattern {
		if k := known[i]; k != board.Unknown && k != board.MakeCell(filled) {
			return false
		}
	}
	return true
}

// Merge folds fill patterns into one three-valued line: a cell is Filled
// or Blank iff every pattern agrees on that value, Unknown otherwise.
// Merging is an intersection, so the fold order cannot matter. Zero
// patterns have no merge; Merge returns nil and the caller treats that as
// a contradiction. All patterns must have equal length.
func Merge(patterns [][]bool) []board.Cell {
	if len(patterns) == 0 {
		return nil
	}
	merged := make([]board.Cell, len(patterns[0]))
	for i, filled := range patterns[0] {
		merged[i] = board.MakeCell(filled)
	}
	for _, p := range patterns[1:] {
		if len(p) != len(merged) {
			panic(fmt.Sprintf("hint: merging patterns of length %d and %d", len(merged), len(p)))
		}
		for i, filled := range p {
			if merged[i] != board.Unknown && merged[i] != board.MakeCell(filled) {
				merged[i] = board.Unknown
			}
		}
	}
	return merged
}

// SolveLine derives everything the hint determines about a line given its
// currently known cells: it enumerates the hint's patterns, keeps those
// compatible with the line, and merges the survivors. Returns
// ErrContradiction if no pattern survives.
func (h Hint) SolveLine(known []board.Cell) ([]board.Cell, error) {
	var survivors [][]bool
	for _, p := range h.Permutations(len(known)) {
		if Matches(p, known) {
			survivors = append(survivors, p)
		}
	}
	merged := Merge(survivors)
	if merged == nil {
		return nil, ErrContradiction
	}
	return merged, nil
}
