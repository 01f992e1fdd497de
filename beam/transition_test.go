package beam_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/grid"
)

var allTiles = []grid.Tile{grid.Empty, grid.MirrorForward, grid.MirrorBackward, grid.SplitterVertical, grid.SplitterHorizontal}

// mustGrid parses src or fails the test.
func mustGrid(t testing.TB, src string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(src)
	require.NoError(t, err)
	return g
}

// TestTransition_Table pins the outgoing beams for every tile and direction at
// the centre of a 3×3 grid, where no neighbour is out of bounds.
func TestTransition_Table(t *testing.T) {
	g := mustGrid(t, "...\n...\n...")
	at := func(d beam.Direction) beam.Beam { return beam.New(1, 1, d) }
	up, right, down, left := beam.New(0, 1, beam.Up), beam.New(1, 2, beam.Right), beam.New(2, 1, beam.Down), beam.New(1, 0, beam.Left)

	cases := []struct {
		tile grid.Tile
		in   beam.Direction
		want []beam.Beam
	}{
		{grid.Empty, beam.Up, []beam.Beam{up}},
		{grid.Empty, beam.Right, []beam.Beam{right}},
		{grid.Empty, beam.Down, []beam.Beam{down}},
		{grid.Empty, beam.Left, []beam.Beam{left}},

		{grid.MirrorForward, beam.Right, []beam.Beam{up}},
		{grid.MirrorForward, beam.Down, []beam.Beam{left}},
		{grid.MirrorForward, beam.Up, []beam.Beam{right}},
		{grid.MirrorForward, beam.Left, []beam.Beam{down}},

		{grid.MirrorBackward, beam.Right, []beam.Beam{down}},
		{grid.MirrorBackward, beam.Down, []beam.Beam{right}},
		{grid.MirrorBackward, beam.Up, []beam.Beam{left}},
		{grid.MirrorBackward, beam.Left, []beam.Beam{up}},

		{grid.SplitterVertical, beam.Up, []beam.Beam{up}},
		{grid.SplitterVertical, beam.Down, []beam.Beam{down}},
		{grid.SplitterVertical, beam.Left, []beam.Beam{down, up}},
		{grid.SplitterVertical, beam.Right, []beam.Beam{down, up}},

		{grid.SplitterHorizontal, beam.Left, []beam.Beam{left}},
		{grid.SplitterHorizontal, beam.Right, []beam.Beam{right}},
		{grid.SplitterHorizontal, beam.Up, []beam.Beam{right, left}},
		{grid.SplitterHorizontal, beam.Down, []beam.Beam{right, left}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v/%v", tc.tile, tc.in), func(t *testing.T) {
			got, err := beam.Transition(tc.tile, at(tc.in), g)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Transition mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestTransition_DirectionClosure checks, for every cell of a 3×3 grid, every
// tile and every direction, that outputs use canonical directions, stay in
// bounds and land on an orthogonal neighbour.
func TestTransition_DirectionClosure(t *testing.T) {
	g := mustGrid(t, "...\n...\n...")
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			for _, tile := range allTiles {
				for _, d := range beam.Directions {
					in := beam.New(r, c, d)
					out, err := beam.Transition(tile, in, g)
					require.NoError(t, err)
					assert.LessOrEqual(t, len(out), 2)
					for _, b := range out {
						assert.True(t, b.Dir.Valid(), "%v on %v gave %v", in, tile, b)
						assert.True(t, g.InBounds(b.Pos.Row, b.Pos.Col), "%v on %v gave %v", in, tile, b)
						assert.Equal(t, b.Pos, in.Pos.Step(b.Dir), "%v on %v gave %v", in, tile, b)
					}
				}
			}
		}
	}
}

// TestTransition_ExitDiscarded drops beams leaving the grid instead of wrapping.
func TestTransition_ExitDiscarded(t *testing.T) {
	g := mustGrid(t, "..\n..")

	out, err := beam.Transition(grid.Empty, beam.New(0, 1, beam.Right), g)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = beam.Transition(grid.MirrorForward, beam.New(0, 0, beam.Right), g)
	require.NoError(t, err)
	assert.Empty(t, out, "reflected upward off the top edge")

	out, err = beam.Transition(grid.MirrorBackward, beam.New(1, 1, beam.Right), g)
	require.NoError(t, err)
	assert.Empty(t, out, "reflected downward off the bottom edge")
}

// TestTransition_SplitterFanOut counts outputs of splitters in the interior and on edges.
func TestTransition_SplitterFanOut(t *testing.T) {
	g := mustGrid(t, "...\n...\n...")

	for _, d := range []beam.Direction{beam.Left, beam.Right} {
		out, err := beam.Transition(grid.SplitterVertical, beam.New(1, 1, d), g)
		require.NoError(t, err)
		assert.Len(t, out, 2, "interior | hit %v", d)
	}
	for _, d := range []beam.Direction{beam.Up, beam.Down} {
		out, err := beam.Transition(grid.SplitterVertical, beam.New(1, 1, d), g)
		require.NoError(t, err)
		assert.Len(t, out, 1, "interior | hit %v", d)

		out, err = beam.Transition(grid.SplitterHorizontal, beam.New(1, 1, d), g)
		require.NoError(t, err)
		assert.Len(t, out, 2, "interior - hit %v", d)
	}

	// each half of a split is bounds-checked on its own
	out, err := beam.Transition(grid.SplitterVertical, beam.New(0, 1, beam.Right), g)
	require.NoError(t, err)
	if diff := cmp.Diff([]beam.Beam{beam.New(1, 1, beam.Down)}, out); diff != "" {
		t.Errorf("top-edge split (-want +got):\n%s", diff)
	}
	out, err = beam.Transition(grid.SplitterHorizontal, beam.New(2, 2, beam.Up), g)
	require.NoError(t, err)
	if diff := cmp.Diff([]beam.Beam{beam.New(2, 1, beam.Left)}, out); diff != "" {
		t.Errorf("corner split (-want +got):\n%s", diff)
	}
}

// TestTransition_MirrorReversal verifies optical reversal: sending a beam back
// along the reflected ray through the same mirror returns it along the
// reverse of its incoming direction.
func TestTransition_MirrorReversal(t *testing.T) {
	g := mustGrid(t, "...\n...\n...")
	for _, m := range []grid.Tile{grid.MirrorForward, grid.MirrorBackward} {
		for _, d := range beam.Directions {
			out, err := beam.Transition(m, beam.New(1, 1, d), g)
			require.NoError(t, err)
			require.Len(t, out, 1)

			back, err := beam.Transition(m, beam.New(1, 1, out[0].Dir.Reverse()), g)
			require.NoError(t, err)
			require.Len(t, back, 1)
			assert.Equal(t, d.Reverse(), back[0].Dir, "%v hit %v", m, d)
		}
	}
}

// TestTransition_MirrorPair runs a beam through '/' then '\' on a small grid:
//
//	./
//	.\
//
// Entering (0,1) heading Right, '/' sends it Up and out. Entering (0,1)
// heading Left, '/' sends it Down onto '\', which turns it Right and out.
func TestTransition_MirrorPair(t *testing.T) {
	g := mustGrid(t, "./\n.\\")

	out, err := beam.Step(beam.New(0, 1, beam.Right), g)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = beam.Step(beam.New(0, 1, beam.Left), g)
	require.NoError(t, err)
	require.Equal(t, []beam.Beam{beam.New(1, 1, beam.Down)}, out)

	out, err = beam.Step(out[0], g)
	require.NoError(t, err)
	assert.Empty(t, out, "'\\' turns Down into Right, off the edge")

	// the reverse path: Up into '\' turns Left, the mirror image of Right into '/'.
	out, err = beam.Step(beam.New(1, 1, beam.Up), g)
	require.NoError(t, err)
	assert.Equal(t, []beam.Beam{beam.New(1, 0, beam.Left)}, out)
}

// TestTransition_Errors covers invalid directions, tiles and positions.
func TestTransition_Errors(t *testing.T) {
	g := mustGrid(t, "...")

	_, err := beam.Transition(grid.Empty, beam.New(0, 0, beam.Direction(7)), g)
	assert.ErrorIs(t, err, beam.ErrInvalidDirection)

	_, err = beam.Transition(grid.Tile(9), beam.New(0, 0, beam.Right), g)
	assert.ErrorIs(t, err, grid.ErrInvalidTile)

	_, err = beam.Step(beam.New(1, 0, beam.Right), g)
	assert.ErrorIs(t, err, beam.ErrOutOfBounds)
}

// TestTransition_Pure leaves the input beam untouched and reuses dst.
func TestTransition_Pure(t *testing.T) {
	g := mustGrid(t, "...\n.|.\n...")
	in := beam.New(1, 1, beam.Right)
	buf := make([]beam.Beam, 0, 4)

	out, err := beam.AppendStep(buf, in, g)
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, beam.New(1, 1, beam.Right), in)
	assert.Equal(t, "|", string(g.At(1, 1).Rune()))
}
