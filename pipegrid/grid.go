package pipegrid

import "strings"

// Grid is a rectangular field of tiles. Rows are trimmed to Width, the
// shortest row observed while parsing. A Grid is immutable after Parse except
// for Patch, which the pipeline uses once to replace the start marker.
type Grid struct {
	Width, Height int
	// Start is the coordinate of the 'S' marker.
	Start Coordinate
	rows  [][]Tile
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at c, or Ground when c lies outside the grid.
func (g *Grid) At(c Coordinate) Tile {
	if !g.InBounds(c.X, c.Y) {
		return Ground
	}
	return g.rows[c.Y][c.X]
}

// Neighbor returns the coordinate one step from c toward d.
// The boolean is false when that step would leave the grid.
// Complexity: O(1).
func (g *Grid) Neighbor(c Coordinate, d Direction) (Coordinate, bool) {
	dx, dy := d.Delta()
	x, y := c.X+dx, c.Y+dy
	if !g.InBounds(x, y) {
		return Coordinate{}, false
	}
	return Coordinate{X: x, Y: y}, true
}

// Step moves a mover standing on c, which arrived from side from, one tile
// further along the pipe. It returns the next coordinate and the side of that
// tile the mover arrives from. The result is false when the tile at c has no
// continuation for from, the exit leaves the grid, or the next tile has no
// connector facing back. Step never reports an error: a false result is a
// dead end for the caller to interpret.
func (g *Grid) Step(c Coordinate, from Direction) (Coordinate, Direction, bool) {
	out, ok := Exit(g.At(c), from)
	if !ok {
		return Coordinate{}, 0, false
	}
	next, ok := g.Neighbor(c, out)
	if !ok || !Enterable(g.At(next), out) {
		return Coordinate{}, 0, false
	}
	return next, out.Opposite(), true
}

// Patch replaces the tile at c and reports whether c was inside the grid.
func (g *Grid) Patch(c Coordinate, t Tile) bool {
	if !g.InBounds(c.X, c.Y) {
		return false
	}
	g.rows[c.Y][c.X] = t
	return true
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	rows := make([][]Tile, len(g.rows))
	for y, row := range g.rows {
		rows[y] = append([]Tile(nil), row...)
	}
	return &Grid{Width: g.Width, Height: g.Height, Start: g.Start, rows: rows}
}

// Cells returns Width*Height.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}

// Index maps c to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return c.Y*g.Width + c.X
}

// CoordinateOf converts a row-major index back to a Coordinate.
func (g *Grid) CoordinateOf(idx int) Coordinate {
	return Coordinate{X: idx % g.Width, Y: idx / g.Width}
}

// Row returns row y as a string, or "" when y is out of range.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.Height {
		return ""
	}
	return string(tileBytes(g.rows[y]))
}

// String renders the grid one row per line, without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for y, row := range g.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(tileBytes(row))
	}
	return sb.String()
}

func tileBytes(row []Tile) []byte {
	b := make([]byte, len(row))
	for i, t := range row {
		b[i] = byte(t)
	}
	return b
}
