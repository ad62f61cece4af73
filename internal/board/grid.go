package board

import (
	"fmt"
	"strings"
)

// Grid is a dense width×height matrix of T in row-major order: row y
// occupies the element range [y*width, (y+1)*width).
//
// A Grid is exclusively owned by whichever structure holds it (the live
// board, or one snapshot on a backtrack stack); Clone produces a fully
// independent copy with no shared storage.
type Grid[T any] struct {
	cells  []T
	width  int
	height int
}

// New creates a width×height grid with every cell set to the zero value
// of T. It panics if either dimension is negative.
func New[T any](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("board: invalid dimensions %d×%d", width, height))
	}
	return &Grid[T]{
		cells:  make([]T, width*height),
		width:  width,
		height: height,
	}
}

// NewWith creates a width×height grid with every cell set to v.
func NewWith[T any](width, height int, v T) *Grid[T] {
	g := New[T](width, height)
	for i := range g.cells {
		g.cells[i] = v
	}
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// Len returns the total cell count, width*height.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Clone returns an independent deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	clone := &Grid[T]{
		cells:  make([]T, len(g.cells)),
		width:  g.width,
		height: g.height,
	}
	copy(clone.cells, g.cells)
	return clone
}

// Index transforms x,y coordinates into a row-major linear position.
// Returns -1 if the coordinates are out of bounds.
func (g *Grid[T]) Index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1
	}
	return y*g.width + x
}

// At returns the cell at (x, y). The second result is false when the
// coordinates are out of bounds.
func (g *Grid[T]) At(x, y int) (T, bool) {
	i := g.Index(x, y)
	if i < 0 {
		var zero T
		return zero, false
	}
	return g.cells[i], true
}

// Set replaces the cell at (x, y) and reports whether the coordinates
// were in bounds.
func (g *Grid[T]) Set(x, y int, v T) bool {
	i := g.Index(x, y)
	if i < 0 {
		return false
	}
	g.cells[i] = v
	return true
}

// AtIndex returns the cell at a linear position. It performs no explicit
// validation; callers use it only after the index has been checked
// against Len, and an out-of-range index panics.
func (g *Grid[T]) AtIndex(i int) T {
	return g.cells[i]
}

// SetIndex replaces the cell at a linear position. Same contract as
// AtIndex: the caller has already validated i.
func (g *Grid[T]) SetIndex(i int, v T) {
	g.cells[i] = v
}

// Row returns the cells of row y as a direct view into the grid's
// storage: mutating the returned slice mutates the grid. It panics if y
// is out of range.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.height {
		panic(fmt.Sprintf("board: row %d out of range [0, %d)", y, g.height))
	}
	return g.cells[y*g.width : (y+1)*g.width]
}

// Col returns a copy of the cells of column x, top to bottom. Storage is
// row-major, so a column view must be materialized. It panics if x is
// out of range.
func (g *Grid[T]) Col(x int) []T {
	if x < 0 || x >= g.width {
		panic(fmt.Sprintf("board: column %d out of range [0, %d)", x, g.width))
	}
	col := make([]T, g.height)
	for y := 0; y < g.height; y++ {
		col[y] = g.cells[y*g.width+x]
	}
	return col
}

// SetRow replaces row y with vs. It panics if y is out of range or
// len(vs) differs from the grid width.
func (g *Grid[T]) SetRow(y int, vs []T) {
	row := g.Row(y)
	if len(vs) != len(row) {
		panic(fmt.Sprintf("board: SetRow(%d) with %d values, want %d", y, len(vs), len(row)))
	}
	copy(row, vs)
}

// SetCol replaces column x with vs. It panics if x is out of range or
// len(vs) differs from the grid height.
func (g *Grid[T]) SetCol(x int, vs []T) {
	if x < 0 || x >= g.width {
		panic(fmt.Sprintf("board: column %d out of range [0, %d)", x, g.width))
	}
	if len(vs) != g.height {
		panic(fmt.Sprintf("board: SetCol(%d) with %d values, want %d", x, len(vs), g.height))
	}
	for y, v := range vs {
		g.cells[y*g.width+x] = v
	}
}

// Format renders the grid as height lines of width glyphs, rows separated
// by newlines with no trailing newline. The render function maps one cell
// to its glyph.
func (g *Grid[T]) Format(render func(T) rune) string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height)

	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range g.Row(y) {
			sb.WriteRune(render(v))
		}
	}
	return sb.String()
}

// Equal reports whether two grids have the same dimensions and identical
// cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i, v := range a.cells {
		if b.cells[i] != v {
			return false
		}
	}
	return true
}

// FormatCells renders an in-progress board with '?', '.' and 'X' glyphs.
func FormatCells(g *Grid[Cell]) string {
	return g.Format(Cell.Rune)
}

// FormatSolution renders a solved board with '.' and 'X' glyphs.
func FormatSolution(g *Grid[bool]) string {
	return g.Format(SolutionRune)
}
