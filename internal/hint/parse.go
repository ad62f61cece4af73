package hint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBlock reports a block length that is not a positive integer.
var ErrInvalidBlock = errors.New("block length must be a positive integer")

// Parse converts one whitespace-separated list of block lengths into a
// Hint. An empty or all-whitespace string parses to the empty hint (a
// fully blank line).
func Parse(s string) (Hint, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Hint{}, nil
	}
	h := make(Hint, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBlock, f)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidBlock, n)
		}
		h = append(h, n)
	}
	return h, nil
}

// ParseLists converts a comma-separated sequence of hints into one Hint
// per segment, e.g. "1 2, , 3" parses to [[1,2], [], [3]]. An empty
// segment is the empty hint.
func ParseLists(s string) ([]Hint, error) {
	parts := strings.Split(s, ",")
	hints := make([]Hint, 0, len(parts))
	for i, part := range parts {
		h, err := Parse(part)
		if err != nil {
			return nil, fmt.Errorf("hint %d: %w", i+1, err)
		}
		hints = append(hints, h)
	}
	return hints, nil
}
