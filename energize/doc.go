// Package energize computes which cells of a grid.Grid are energized by a
// beam entering at a given cell and direction.
//
// What
//
//   - A beam state is a beam.Beam: position plus travel direction.
//   - Energize keeps a visited set of states and a frontier of states found in
//     the previous round. Each round applies beam.Step to every frontier beam;
//     successors not yet visited form the next frontier.
//   - When a round discovers nothing the run has reached its fixed point. The
//     cells appearing in the visited set, regardless of direction, are the
//     energized cells.
//
// Termination
//
//	The state space has Height×Width×4 elements and every round but the last
//	adds at least one, so a run needs at most that many rounds. The loop is
//	iterative and the bound is enforced; exceeding it yields ErrNoFixedPoint.
//
// Determinism
//
//	The energized set depends only on the grid and the start beam. Frontier
//	order may vary between implementations of the set but never the result.
//	Runs share nothing except the read-only grid, so any number of them may
//	execute concurrently.
//
// Complexity (S = Height×Width×4)
//
//   - Time:   O(S)  (each state is expanded at most once)
//   - Memory: O(S)  (visited set and frontiers)
//
// Usage
//
//	res, err := energize.Energize(g, energize.DefaultStart)
//	if err != nil {
//		// ErrGridNil, ErrStartOutOfBounds, ErrOptionViolation, ErrNoFixedPoint,
//		// beam.ErrInvalidDirection, grid.ErrInvalidTile or a context error
//	}
//	fmt.Println(res.Count())
//
//	// With options:
//	res, err = energize.Energize(g, start,
//		energize.WithContext(ctx),
//		energize.WithMaxRounds(1000),
//		energize.WithOnRound(func(round, frontier, visited int) { /* ... */ }),
//	)
package energize
