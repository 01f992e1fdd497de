// Package grid holds the static contraption a beam travels through: a
// rectangular, read-only 2D array of optical tiles.
//
// What:
//
//   - Tile enumerates the five tile kinds: Empty '.', MirrorForward '/',
//     MirrorBackward '\', SplitterVertical '|' and SplitterHorizontal '-'.
//   - Grid wraps a rectangular [][]Tile, deep-copied on construction and never
//     mutated afterwards, so one Grid may be shared by any number of goroutines.
//   - Parse reads the plain-text form: one line per row, one character per tile.
//
// Validation is eager. A grid that reaches the simulation is always rectangular
// and contains only known tiles.
//
// Complexity:
//
//   - New, Parse: O(H×W) time and memory.
//   - InBounds, At: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidTile: a cell holds an unknown tile; Parse reports it as a
//     *TileError carrying the row, column and offending rune.
package grid
