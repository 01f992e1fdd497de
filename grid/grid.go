package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of tiles.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrInvalidTile
// if any cell is outside the known kinds.
// Complexity: O(H×W) time and memory.
func New(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	tiles := make([]Tile, 0, h*w)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, t := range row {
			if !t.Valid() {
				return nil, fmt.Errorf("%w: %v at row %d, col %d", ErrInvalidTile, t, r, c)
			}
		}
		tiles = append(tiles, row...)
	}

	return &Grid{Height: h, Width: w, tiles: tiles}, nil
}

// Parse reads a grid in its text form: one line per row, each character one
// of ". / \ | -". Trailing carriage returns and trailing blank lines are
// ignored. An unknown character yields a *TileError.
// Complexity: O(H×W).
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Tile
	blank := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			blank++
			continue
		}
		// an interior blank line is a zero-length row; leading ones are dropped
		for ; blank > 0 && len(rows) > 0; blank-- {
			rows = append(rows, nil)
		}
		blank = 0
		row := make([]Tile, 0, len(line))
		for c, ch := range []rune(line) {
			t, err := ParseTile(ch)
			if err != nil {
				return nil, &TileError{Row: len(rows), Col: c, Char: ch}
			}
			row = append(row, t)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}

	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// At returns the tile at (row,col). It panics if the cell is out of bounds,
// the same way indexing a slice would.
func (g *Grid) At(row, col int) Tile {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: At(%d,%d) out of bounds %dx%d", row, col, g.Height, g.Width))
	}
	return g.tiles[g.index(row, col)]
}

// Cells returns Height×Width.
func (g *Grid) Cells() int { return len(g.tiles) }

// Rows returns a deep copy of the tiles as a 2D slice.
func (g *Grid) Rows() [][]Tile {
	out := make([][]Tile, g.Height)
	for r := range out {
		out[r] = make([]Tile, g.Width)
		copy(out[r], g.tiles[r*g.Width:(r+1)*g.Width])
	}
	return out
}

// String renders the grid back to its text form, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for i, t := range g.tiles {
		sb.WriteRune(t.Rune())
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// index maps (row,col) to a row-major index: row*Width + col.
func (g *Grid) index(row, col int) int {
	return row*g.Width + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Width, idx % g.Width
}
