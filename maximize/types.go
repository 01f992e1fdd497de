// Package maximize defines options and errors for the entry-point search.
package maximize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/beamgrid/beam"
)

// Sentinel errors for the entry-point search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("maximize: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maximize: invalid option supplied")
)

// Option configures Max via functional arguments.
type Option func(*Options)

// Options holds parameters for the entry-point search.
type Options struct {
	// Ctx cancels outstanding candidates.
	Ctx context.Context

	// Workers bounds the number of candidates simulated concurrently.
	Workers int

	// Logger receives one debug record per candidate.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns a background context, GOMAXPROCS workers and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds concurrency; n must be at least 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger used for per-candidate debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Best is the winning entry of a search.
//   - Entry: the boundary beam with the highest count; the earliest in
//     Entries order wins ties.
//   - Count: its energized-cell count.
//   - Candidates: number of entries simulated, 2×Height + 2×Width.
type Best struct {
	Entry      beam.Beam
	Count      int
	Candidates int
}
