package solver

import (
	"context"
	"time"
)

// Options configures solving behavior.
type Options struct {
	// MaxSolutions caps how many solutions Solutions collects.
	// Zero or negative means enumerate every solution.
	MaxSolutions int

	// Timeout bounds a single NextSolution call. Zero means no limit.
	// Elapsed time is checked between propagation iterations, so a
	// timed-out solver is abandoned at a consistent state.
	Timeout time.Duration

	// Workers is the number of goroutines used within one row pass or
	// one column pass. Values below 2 solve serially. Lines never share
	// cells with other lines of the same axis, so parallel passes
	// produce results identical to serial solving.
	Workers int
}

// DefaultOptions returns standard solver options: enumerate everything,
// no timeout, serial solving.
func DefaultOptions() *Options {
	return &Options{
		MaxSolutions: 0,
		Timeout:      0,
		Workers:      1,
	}
}

// makeContext builds the context governing one solve call.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.options.Timeout)
	}
	return context.WithCancel(context.Background())
}
