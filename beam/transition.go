package beam

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/beamgrid/grid"
)

// ErrOutOfBounds is returned by Step when the beam does not sit on the grid.
var ErrOutOfBounds = errors.New("beam: position out of bounds")

// Outgoing directions after reflecting off a mirror, indexed by incoming direction.
var (
	reflectForward  = [numDirections]Direction{Up: Right, Right: Up, Down: Left, Left: Down}
	reflectBackward = [numDirections]Direction{Up: Left, Right: Down, Down: Right, Left: Up}
)

// Transition applies tile t to beam b and returns the zero, one or two beams
// that leave the cell. Each outgoing beam is placed on the neighbouring cell
// and is dropped if that cell lies outside g; beams never wrap or re-enter.
//
// Rules by tile:
//
//	'.'  pass straight through
//	'/'  Right→Up, Down→Left, Up→Right, Left→Down
//	'\'  Right→Down, Down→Right, Up→Left, Left→Up
//	'|'  Up/Down pass; Left/Right split into Down and Up
//	'-'  Left/Right pass; Up/Down split into Right and Left
//
// Transition is pure: neither g nor b is modified.
func Transition(t grid.Tile, b Beam, g *grid.Grid) ([]Beam, error) {
	return AppendTransition(nil, t, b, g)
}

// AppendTransition is Transition appending its result to dst, so a caller
// driving many transitions can reuse one buffer.
func AppendTransition(dst []Beam, t grid.Tile, b Beam, g *grid.Grid) ([]Beam, error) {
	if !b.Dir.Valid() {
		return dst, fmt.Errorf("%w: %v at %v", ErrInvalidDirection, b.Dir, b.Pos)
	}
	switch t {
	case grid.Empty:
		return emit(dst, g, b.Pos, b.Dir), nil
	case grid.MirrorForward:
		return emit(dst, g, b.Pos, reflectForward[b.Dir]), nil
	case grid.MirrorBackward:
		return emit(dst, g, b.Pos, reflectBackward[b.Dir]), nil
	case grid.SplitterVertical:
		if b.Dir.Vertical() {
			return emit(dst, g, b.Pos, b.Dir), nil
		}
		return emit(emit(dst, g, b.Pos, Down), g, b.Pos, Up), nil
	case grid.SplitterHorizontal:
		if !b.Dir.Vertical() {
			return emit(dst, g, b.Pos, b.Dir), nil
		}
		return emit(emit(dst, g, b.Pos, Right), g, b.Pos, Left), nil
	default:
		return dst, fmt.Errorf("%w: %v at %v", grid.ErrInvalidTile, t, b.Pos)
	}
}

// Step looks up the tile under b and applies Transition.
func Step(b Beam, g *grid.Grid) ([]Beam, error) {
	return AppendStep(nil, b, g)
}

// AppendStep is Step appending to dst.
func AppendStep(dst []Beam, b Beam, g *grid.Grid) ([]Beam, error) {
	if !g.InBounds(b.Pos.Row, b.Pos.Col) {
		return dst, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, b.Pos, g.Height, g.Width)
	}
	return AppendTransition(dst, g.At(b.Pos.Row, b.Pos.Col), b, g)
}

// emit appends the beam leaving from in direction d, if it stays on the grid.
func emit(dst []Beam, g *grid.Grid, from Position, d Direction) []Beam {
	next := from.Step(d)
	if !g.InBounds(next.Row, next.Col) {
		return dst
	}
	return append(dst, Beam{Pos: next, Dir: d})
}
