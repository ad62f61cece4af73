package generator

import (
	"time"
)

// Options configures puzzle generation behavior.
type Options struct {
	Width        int           // Board width in cells
	Height       int           // Board height in cells
	Density      float64       // Fraction of cells filled, in [0, 1]
	Timeout      time.Duration // Timeout limits generation time
	Seed         int64         // Seed for reproducible puzzles (0 = random)
	EnsureUnique bool          // EnsureUnique retries until the hints admit one solution
}

// DefaultOptions returns standard generator options for the given size.
func DefaultOptions(width, height int) *Options {
	width = min(max(width, MinValidDimension), MaxValidDimension)
	height = min(max(height, MinValidDimension), MaxValidDimension)
	return &Options{
		Width:        width,
		Height:       height,
		Density:      DefaultDensity,
		Timeout:      10 * time.Second,
		Seed:         0,
		EnsureUnique: true,
	}
}
