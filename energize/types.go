// Package energize provides tunable options, error definitions and the result
// type for beam propagation over a grid.Grid.
package energize

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/beamgrid/beam"
)

// Sentinel errors for propagation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("energize: grid is nil")

	// ErrStartOutOfBounds is returned when the start beam is not on the grid.
	ErrStartOutOfBounds = errors.New("energize: start beam out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("energize: invalid option supplied")

	// ErrNoFixedPoint is returned when propagation is still discovering new
	// states after the round limit. With the default limit this is a bug.
	ErrNoFixedPoint = errors.New("energize: no fixed point within round limit")
)

// DefaultStart is the top-left cell heading Right.
var DefaultStart = beam.New(0, 0, beam.Right)

// Option configures propagation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Energize is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a propagation run.
type Options struct {
	// Ctx is checked once per round.
	Ctx context.Context

	// OnRound is called after every round with the 1-based round number,
	// the size of the new frontier and the size of the visited set.
	OnRound func(round, frontier, visited int)

	// MaxRounds, if > 0, caps the number of rounds. 0 means the natural
	// bound Height×Width×4, the size of the whole state space.
	MaxRounds int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, a no-op
// OnRound hook and the natural round bound.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnRound:   func(int, int, int) {},
		MaxRounds: 0,
		err:       nil,
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

// WithOnRound registers a callback run after each round.
func WithOnRound(fn func(round, frontier, visited int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithMaxRounds caps the number of rounds.
//
//	n > 0:  stop with ErrNoFixedPoint if round n still finds new states
//	n == 0: natural bound Height×Width×4
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// Result holds the outcome of one propagation run.
//   - Start: the entry beam.
//   - States: number of distinct beam states visited, start included.
//   - Rounds: rounds executed, the final empty one included.
type Result struct {
	Start  beam.Beam
	States int
	Rounds int

	energized mapset.Set[beam.Position]
}

// Count returns the number of distinct energized cells.
func (r *Result) Count() int { return r.energized.Size() }

// Contains reports whether the cell at p was touched by any beam.
func (r *Result) Contains(p beam.Position) bool { return r.energized.Has(p) }

// Energized returns the energized cells sorted in row-major order.
func (r *Result) Energized() []beam.Position {
	out := make([]beam.Position, 0, r.energized.Size())
	r.energized.Each(func(p beam.Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
