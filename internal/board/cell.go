package board

// A Cell is the solver's three-valued view of one grid square: a square is
// Unknown until propagation or search determines it Filled or Blank.
// Finished solutions carry plain bool cells (true = filled); Cell exists
// only for in-progress boards.
type Cell int8

// Cell states. The zero value is Unknown so a fresh Grid[Cell] starts
// fully undetermined.
const (
	Unknown Cell = iota
	Blank
	Filled
)

// MakeCell converts a concrete fill value into its determined Cell.
func MakeCell(filled bool) Cell {
	if filled {
		return Filled
	}
	return Blank
}

// Determined reports whether the cell has been resolved to Filled or Blank.
func (c Cell) Determined() bool {
	return c != Unknown
}

// Rune returns the display glyph for the cell:
// 'X' filled, '.' blank, '?' unknown.
func (c Cell) Rune() rune {
	switch c {
	case Filled:
		return 'X'
	case Blank:
		return '.'
	default:
		return '?'
	}
}

// String returns the single-glyph representation of the cell.
func (c Cell) String() string {
	return string(c.Rune())
}

// SolutionRune returns the display glyph for a solved cell:
// 'X' filled, '.' blank.
func SolutionRune(filled bool) rune {
	if filled {
		return 'X'
	}
	return '.'
}
