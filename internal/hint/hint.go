// Package hint implements nonogram line constraints: hint sequences, the
// enumeration of fill patterns satisfying them, and the overlay that
// derives the cells every compatible pattern agrees on.
package hint

import (
	"strconv"
	"strings"
)

// A Hint is the ordered sequence of filled-run lengths for one line of a
// puzzle, left to right for rows and top to bottom for columns. Every
// block length is positive (enforced by Parse); an empty Hint describes a
// fully blank line. A Hint owns its blocks, so callers may retain one
// without copying.
type Hint []int

// Equal reports whether two hints describe the same block sequence.
// A nil hint and an empty hint are equal.
func (h Hint) Equal(o Hint) bool {
	if len(h) != len(o) {
		return false
	}
	for i, b := range h {
		if o[i] != b {
			return false
		}
	}
	return true
}

// MinLength returns the shortest line the hint fits on: the sum of its
// blocks plus one separating blank between each consecutive pair.
func (h Hint) MinLength() int {
	if len(h) == 0 {
		return 0
	}
	n := len(h) - 1
	for _, b := range h {
		n += b
	}
	return n
}

// String renders the hint as its space-separated block lengths, the same
// form Parse accepts. The empty hint renders as "".
func (h Hint) String() string {
	var sb strings.Builder
	for i, b := range h {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(b))
	}
	return sb.String()
}

// Runs extracts the hint a concrete line satisfies: the ordered lengths
// of its maximal filled runs. An all-blank line yields the empty hint.
func Runs(line []bool) Hint {
	var h Hint
	run := 0
	for _, filled := range line {
		if filled {
			run++
			continue
		}
		if run > 0 {
			h = append(h, run)
			run = 0
		}
	}
	if run > 0 {
		h = append(h, run)
	}
	return h
}

// FormatLists renders a hint sequence in the comma-separated form
// ParseLists accepts, e.g. "1 2, , 3" for [[1,2], [], [3]].
func FormatLists(hints []Hint) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = h.String()
	}
	return strings.Join(parts, ", ")
}
