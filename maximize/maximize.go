// Package maximize searches every boundary entry of a grid for the one that
// energizes the most cells.
package maximize

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/energize"
	"github.com/katalvlaran/beamgrid/grid"
)

// Entries lists every inward-facing boundary beam of g: the top edge heading
// Down, the bottom edge heading Up, the left edge heading Right and the right
// edge heading Left, in that order. Corner cells appear once per edge they
// belong to, so there are exactly 2×Height + 2×Width entries.
func Entries(g *grid.Grid) []beam.Beam {
	out := make([]beam.Beam, 0, 2*g.Height+2*g.Width)
	for c := 0; c < g.Width; c++ {
		out = append(out, beam.New(0, c, beam.Down))
	}
	for c := 0; c < g.Width; c++ {
		out = append(out, beam.New(g.Height-1, c, beam.Up))
	}
	for r := 0; r < g.Height; r++ {
		out = append(out, beam.New(r, 0, beam.Right))
	}
	for r := 0; r < g.Height; r++ {
		out = append(out, beam.New(r, g.Width-1, beam.Left))
	}
	return out
}

// Max runs an independent propagation for every entry in Entries(g) on a
// bounded worker pool and returns the best one. Each run owns its own
// visited set; only the read-only grid is shared. The first failing run
// cancels the rest and its error is returned.
func Max(g *grid.Grid, opts ...Option) (Best, error) {
	if g == nil {
		return Best{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Best{}, o.err
	}

	entries := Entries(g)
	counts := make([]int, len(entries))

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, entry := range entries {
		eg.Go(func() error {
			res, err := energize.Energize(g, entry, energize.WithContext(ctx))
			if err != nil {
				return fmt.Errorf("maximize: entry %v: %w", entry, err)
			}
			counts[i] = res.Count()
			o.Logger.Debug("candidate done", "entry", entry.String(), "energized", counts[i], "rounds", res.Rounds)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Best{}, err
	}

	best := Best{Entry: entries[0], Count: counts[0], Candidates: len(entries)}
	for i := 1; i < len(entries); i++ {
		if counts[i] > best.Count {
			best.Entry, best.Count = entries[i], counts[i]
		}
	}
	return best, nil
}
