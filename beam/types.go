// Package beam defines the atomic simulation state (a position plus a travel
// direction) and the transition rules applied when a beam meets a tile.
package beam

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned when a Beam carries a direction outside the
// four canonical ones. Beams are only built by this module, so it signals a bug.
var ErrInvalidDirection = errors.New("beam: invalid direction")

// Direction is one of the four unit travel vectors.
type Direction uint8

const (
	// Up is (-1,0).
	Up Direction = iota
	// Right is (0,1).
	Right
	// Down is (1,0).
	Down
	// Left is (0,-1).
	Left

	numDirections
)

// Directions lists the canonical set in clockwise order starting at Up.
var Directions = [...]Direction{Up, Right, Down, Left}

var deltas = [numDirections][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

var dirNames = [numDirections]string{"Up", "Right", "Down", "Left"}

// Valid reports whether d is one of the four canonical directions.
func (d Direction) Valid() bool { return d < numDirections }

// Delta returns the (row, col) unit vector for d. Invalid directions yield (0,0).
func (d Direction) Delta() (dr, dc int) {
	if !d.Valid() {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 2) % numDirections
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool { return d == Up || d == Down }

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return dirNames[d]
}

// ParseDirection accepts a direction name, case-sensitive, or its initial
// letter (U, R, D, L).
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if s == d.String() || s == d.String()[:1] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Position is a 0-indexed grid cell.
type Position struct {
	Row, Col int
}

// Step returns the neighbouring position one unit along d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Beam is a position plus a travel direction. It is a comparable value type
// and serves directly as the deduplication key of a simulation run.
type Beam struct {
	Pos Position
	Dir Direction
}

// New builds a Beam at (row,col) heading d.
func New(row, col int, d Direction) Beam {
	return Beam{Pos: Position{Row: row, Col: col}, Dir: d}
}

func (b Beam) String() string { return fmt.Sprintf("%v→%v", b.Pos, b.Dir) }
