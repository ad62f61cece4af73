package hint

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/OliveIsAWord/picross/internal/board"
)

// pat converts "XX.XXX" shorthand into a fill pattern.
func pat(s string) []bool {
	p := make([]bool, len(s))
	for i, c := range s {
		p[i] = c == 'X'
	}
	return p
}

// cells converts "X.?" shorthand into a three-valued line.
func cells(s string) []board.Cell {
	line := make([]board.Cell, len(s))
	for i, c := range s {
		switch c {
		case 'X':
			line[i] = board.Filled
		case '.':
			line[i] = board.Blank
		default:
			line[i] = board.Unknown
		}
	}
	return line
}

func patsEqual(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestPermutationsEmptyHint(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		perms := Hint{}.Permutations(n)
		if len(perms) != 1 {
			t.Fatalf("empty hint over %d cells: %d patterns, want 1", n, len(perms))
		}
		if len(perms[0]) != n {
			t.Fatalf("pattern length %d, want %d", len(perms[0]), n)
		}
		for _, filled := range perms[0] {
			if filled {
				t.Fatal("empty hint produced a filled cell")
			}
		}
	}
}

func TestPermutationsSingleBlock(t *testing.T) {
	h := Hint{3}
	for _, n := range []int{0, 1, 2} {
		if perms := h.Permutations(n); len(perms) != 0 {
			t.Fatalf("[3] over %d cells: %d patterns, want 0", n, len(perms))
		}
	}

	tests := []struct {
		length int
		want   [][]bool
	}{
		{3, [][]bool{pat("XXX")}},
		{4, [][]bool{pat("XXX."), pat(".XXX")}},
		{5, [][]bool{pat("XXX.."), pat(".XXX."), pat("..XXX")}},
		{6, [][]bool{pat("XXX..."), pat(".XXX.."), pat("..XXX."), pat("...XXX")}},
	}
	for _, tt := range tests {
		got := h.Permutations(tt.length)
		if !patsEqual(got, tt.want) {
			t.Errorf("[3] over %d cells = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestPermutationsTwoBlocks(t *testing.T) {
	h := Hint{2, 3}
	if perms := h.Permutations(5); len(perms) != 0 {
		t.Fatalf("[2 3] over 5 cells: %d patterns, want 0", len(perms))
	}

	tests := []struct {
		length int
		want   [][]bool
	}{
		{6, [][]bool{pat("XX.XXX")}},
		{7, [][]bool{
			pat("XX.XXX."),
			pat("XX..XXX"),
			pat(".XX.XXX"),
		}},
		{8, [][]bool{
			pat("XX.XXX.."),
			pat("XX..XXX."),
			pat("XX...XXX"),
			pat(".XX.XXX."),
			pat(".XX..XXX"),
			pat("..XX.XXX"),
		}},
	}
	for _, tt := range tests {
		got := h.Permutations(tt.length)
		if !patsEqual(got, tt.want) {
			t.Errorf("[2 3] over %d cells = %v, want %v", tt.length, got, tt.want)
		}
	}
}

// Randomized check of the permutation contract: every pattern has the
// requested length and reads back to the generating hint, and no
// pattern appears twice.
func TestPermutationsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		h := make(Hint, rng.Intn(4))
		for i := range h {
			h[i] = 1 + rng.Intn(3)
		}
		length := rng.Intn(13)

		perms := h.Permutations(length)
		if h.MinLength() > length && len(perms) != 0 {
			t.Fatalf("%v over %d cells: infeasible hint produced %d patterns", h, length, len(perms))
		}

		seen := make(map[string]struct{}, len(perms))
		for _, p := range perms {
			if len(p) != length {
				t.Fatalf("%v over %d cells: pattern of length %d", h, length, len(p))
			}
			if !Runs(p).Equal(h) {
				t.Fatalf("%v over %d cells: pattern %v has runs %v", h, length, p, Runs(p))
			}
			key := patternKey(p)
			if _, dup := seen[key]; dup {
				t.Fatalf("%v over %d cells: duplicate pattern %v", h, length, p)
			}
			seen[key] = struct{}{}
		}
	}
}

func TestPermutationsSingleBlockCount(t *testing.T) {
	for size := 1; size <= 5; size++ {
		for length := size; length <= 10; length++ {
			got := len(Hint{size}.Permutations(length))
			if want := length - size + 1; got != want {
				t.Errorf("[%d] over %d cells: %d patterns, want %d", size, length, got, want)
			}
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		pattern string
		known   string
		want    bool
	}{
		{"XXX", "???", true},
		{"XXX", "X??", true},
		{"XXX", ".??", false},
		{"X.X", "?.?", true},
		{"X.X", "?X?", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := Matches(pat(tt.pattern), cells(tt.known)); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.known, got, tt.want)
		}
	}
}

func TestMatchesLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Matches with mismatched lengths did not panic")
		}
	}()
	Matches(pat("XX"), cells("???"))
}

func TestMerge(t *testing.T) {
	got := Merge([][]bool{pat("XXX.."), pat(".XXX."), pat("..XXX")})
	want := cells("??X??")
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Merge = %v, want %v", got, want)
		}
	}

	if got := Merge([][]bool{pat("X.X")}); got[0] != board.Filled || got[1] != board.Blank {
		t.Fatal("single-pattern merge did not reproduce the pattern")
	}

	if Merge(nil) != nil {
		t.Fatal("Merge of zero patterns returned a line")
	}
}

// Merging is an intersection, so the result cannot depend on the order
// the patterns are folded in.
func TestMergeOrderIndependent(t *testing.T) {
	perms := Hint{2, 3}.Permutations(8)
	forward := Merge(perms)

	reversed := make([][]bool, len(perms))
	for i, p := range perms {
		reversed[len(perms)-1-i] = p
	}
	backward := Merge(reversed)

	for i := range forward {
		if forward[i] != backward[i] {
			t.Fatalf("merge order changed the result: %v vs %v", forward, backward)
		}
	}
}

func TestSolveLineUnconstrained(t *testing.T) {
	h := Hint{3}
	tests := []struct {
		length int
		want   string
	}{
		{3, "XXX"},
		{4, "?XX?"},
		{5, "??X??"},
		{6, "??????"},
	}
	for _, tt := range tests {
		got, err := h.SolveLine(make([]board.Cell, tt.length))
		if err != nil {
			t.Fatalf("[3] over %d cells: %v", tt.length, err)
		}
		want := cells(tt.want)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("[3] over %d cells = %v, want %v", tt.length, got, want)
			}
		}
	}
}

func TestSolveLinePartiallyKnown(t *testing.T) {
	got, err := Hint{3}.SolveLine(cells("X????"))
	if err != nil {
		t.Fatalf("SolveLine: %v", err)
	}
	want := cells("XXX..")
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SolveLine = %v, want %v", got, want)
		}
	}
}

func TestSolveLineContradiction(t *testing.T) {
	_, err := Hint{3}.SolveLine(cells("X.?"))
	if !errors.Is(err, ErrContradiction) {
		t.Fatalf("SolveLine on an impossible line: %v, want ErrContradiction", err)
	}

	_, err = Hint{4}.SolveLine(cells("???"))
	if !errors.Is(err, ErrContradiction) {
		t.Fatalf("SolveLine with an oversized hint: %v, want ErrContradiction", err)
	}
}

// A fully determined line that satisfies its hint is a fixed point.
func TestSolveLineIdempotent(t *testing.T) {
	line := cells("XX.XXX")
	got, err := Hint{2, 3}.SolveLine(line)
	if err != nil {
		t.Fatalf("SolveLine: %v", err)
	}
	for i := range line {
		if got[i] != line[i] {
			t.Fatalf("SolveLine changed a solved line: %v -> %v", line, got)
		}
	}
}

func BenchmarkPermutations(b *testing.B) {
	h := Hint{3, 2, 3}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h.Permutations(20)
	}
}
