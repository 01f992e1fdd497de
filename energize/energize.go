// Package energize runs the beam propagation engine: starting from one entry
// beam it expands a frontier of live beams round by round until no new beam
// state appears, then reports which cells were touched.
package energize

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/grid"
)

// walker encapsulates the mutable state of a single run.
// Nothing in it is shared with other runs.
type walker struct {
	grid      *grid.Grid
	opts      Options
	ctx       context.Context
	maxRounds int
	visited   mapset.Set[beam.Beam]
	frontier  []beam.Beam
	next      []beam.Beam
	succ      []beam.Beam
	rounds    int
}

// Energize propagates start through g until the set of visited beam states
// reaches its fixed point, applying any number of functional Options.
// Returns ErrGridNil, ErrStartOutOfBounds or beam.ErrInvalidDirection for
// invalid input, ErrOptionViolation for bad options, ErrNoFixedPoint if the
// round limit is hit, the context error on cancellation, or a wrapped
// transition error.
func Energize(g *grid.Grid, start beam.Beam, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start.Pos.Row, start.Pos.Col) {
		return nil, fmt.Errorf("%w: %v on %dx%d grid", ErrStartOutOfBounds, start, g.Height, g.Width)
	}
	if !start.Dir.Valid() {
		return nil, fmt.Errorf("energize: start %v: %w", start, beam.ErrInvalidDirection)
	}

	w := &walker{
		grid:      g,
		opts:      o,
		ctx:       o.Ctx,
		maxRounds: o.MaxRounds,
		visited:   mapset.New[beam.Beam](),
		frontier:  make([]beam.Beam, 0, 16),
		next:      make([]beam.Beam, 0, 16),
		succ:      make([]beam.Beam, 0, 2),
	}
	if w.maxRounds == 0 {
		w.maxRounds = g.Cells() * len(beam.Directions)
	}

	w.visited.Put(start)
	w.frontier = append(w.frontier, start)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.result(start), nil
}

// Count is Energize reduced to the number of energized cells.
func Count(g *grid.Grid, start beam.Beam, opts ...Option) (int, error) {
	res, err := Energize(g, start, opts...)
	if err != nil {
		return 0, err
	}
	return res.Count(), nil
}

// loop runs rounds until a round discovers nothing, an error occurs or the
// context is cancelled. Every round but the last adds at least one state, so
// the natural bound on rounds is the size of the state space.
func (w *walker) loop() error {
	for len(w.frontier) > 0 {
		// cancellation check (once per round)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.rounds >= w.maxRounds {
			return fmt.Errorf("%w: %d rounds, %d states, frontier %d",
				ErrNoFixedPoint, w.rounds, w.visited.Size(), len(w.frontier))
		}
		if err := w.expand(); err != nil {
			return err
		}
		w.rounds++
		w.opts.OnRound(w.rounds, len(w.frontier), w.visited.Size())
	}
	return nil
}

// expand applies the transition rules to every frontier beam and keeps the
// successors not seen before as the next frontier.
func (w *walker) expand() error {
	w.next = w.next[:0]
	for _, b := range w.frontier {
		var err error
		w.succ, err = beam.AppendStep(w.succ[:0], b, w.grid)
		if err != nil {
			return fmt.Errorf("energize: expand %v: %w", b, err)
		}
		for _, s := range w.succ {
			if w.visited.Has(s) {
				continue
			}
			w.visited.Put(s)
			w.next = append(w.next, s)
		}
	}
	w.frontier, w.next = w.next, w.frontier
	return nil
}

// result collapses visited states to distinct positions; direction is ignored.
func (w *walker) result(start beam.Beam) *Result {
	cells := mapset.New[beam.Position]()
	w.visited.Each(func(b beam.Beam) {
		cells.Put(b.Pos)
	})
	return &Result{
		Start:     start,
		States:    w.visited.Size(),
		Rounds:    w.rounds,
		energized: cells,
	}
}
