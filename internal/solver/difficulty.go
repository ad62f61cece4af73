package solver

import (
	"github.com/OliveIsAWord/picross/internal/hint"
)

// Difficulty returns an integer measure of a puzzle's difficulty: the
// number of guesses the solver makes before reaching the first
// solution. Zero means line propagation alone solves the puzzle.
func Difficulty(rowHints, colHints []hint.Hint) (int, error) {
	s := New(rowHints, colHints, nil)
	if _, err := s.NextSolution(); err != nil {
		return 0, err
	}
	return s.Branches(), nil
}

// Rating buckets a difficulty score into a human-readable label.
func Rating(difficulty int) string {
	switch {
	case difficulty == 0:
		return "easy"
	case difficulty <= 4:
		return "medium"
	case difficulty <= 16:
		return "hard"
	default:
		return "expert"
	}
}
