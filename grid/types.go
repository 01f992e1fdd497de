// Package grid defines tile kinds, the Grid type and sentinel errors.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidTile indicates a cell outside the five known tile kinds.
	ErrInvalidTile = errors.New("grid: invalid tile")
)

// Tile is the optical element occupying one grid cell.
type Tile uint8

const (
	// Empty lets a beam pass straight through.
	Empty Tile = iota
	// MirrorForward is '/': Right→Up, Down→Left, Up→Right, Left→Down.
	MirrorForward
	// MirrorBackward is '\': Right→Down, Down→Right, Up→Left, Left→Up.
	MirrorBackward
	// SplitterVertical is '|': splits horizontal beams into Up and Down.
	SplitterVertical
	// SplitterHorizontal is '-': splits vertical beams into Left and Right.
	SplitterHorizontal

	numTiles
)

var tileRunes = [numTiles]rune{'.', '/', '\\', '|', '-'}

var tileNames = [numTiles]string{"Empty", "MirrorForward", "MirrorBackward", "SplitterVertical", "SplitterHorizontal"}

// ParseTile maps a text character to its Tile.
func ParseTile(r rune) (Tile, error) {
	for t, tr := range tileRunes {
		if tr == r {
			return Tile(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTile, r)
}

// Valid reports whether t is one of the five known kinds.
func (t Tile) Valid() bool { return t < numTiles }

// Rune returns the text character for t, or '?' if t is invalid.
func (t Tile) Rune() rune {
	if !t.Valid() {
		return '?'
	}
	return tileRunes[t]
}

func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
	return tileNames[t]
}

// TileError reports an unknown tile character found while parsing.
type TileError struct {
	Row, Col int
	Char     rune
}

func (e *TileError) Error() string {
	return fmt.Sprintf("grid: invalid tile %q at row %d, col %d", e.Char, e.Row, e.Col)
}

// Unwrap lets errors.Is match ErrInvalidTile.
func (e *TileError) Unwrap() error { return ErrInvalidTile }

// Grid is an immutable rectangular array of tiles.
// Height and Width are fixed at construction; tiles are stored row-major.
type Grid struct {
	Height, Width int
	tiles         []Tile
}
