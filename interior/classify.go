package interior

import (
	"strings"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Class is the role of a single cell relative to the loop.
type Class uint8

const (
	// Exterior cells are not on the loop and not enclosed by it.
	Exterior Class = iota
	// Loop cells belong to the loop itself.
	Loop
	// Interior cells are enclosed by the loop.
	Interior
)

func (c Class) String() string {
	switch c {
	case Exterior:
		return "exterior"
	case Loop:
		return "loop"
	case Interior:
		return "interior"
	}
	return "unknown"
}

// Classification assigns every cell of a grid exactly one Class.
type Classification struct {
	grid  *pipegrid.Grid
	cells []Class
}

// Classify scans g and records the class of every cell.
func Classify(g *pipegrid.Grid, loop Membership) *Classification {
	cl := &Classification{grid: g, cells: make([]Class, g.Cells())}
	scan(g, loop, func(c pipegrid.Coordinate, k Class) {
		cl.cells[g.Index(c)] = k
	})
	return cl
}

// At returns the class of c; cells outside the grid are Exterior.
func (cl *Classification) At(c pipegrid.Coordinate) Class {
	if !cl.grid.InBounds(c.X, c.Y) {
		return Exterior
	}
	return cl.cells[cl.grid.Index(c)]
}

// Counts returns the number of loop, interior and exterior cells.
// They always sum to Width*Height.
func (cl *Classification) Counts() (loop, interior, exterior int) {
	for _, k := range cl.cells {
		switch k {
		case Loop:
			loop++
		case Interior:
			interior++
		default:
			exterior++
		}
	}
	return loop, interior, exterior
}

// Render draws the grid with loop cells as their tiles, enclosed cells as
// 'I' and the remaining cells as 'O', one row per line.
func (cl *Classification) Render() string {
	g := cl.grid
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			c := pipegrid.Coordinate{X: x, Y: y}
			switch cl.At(c) {
			case Loop:
				sb.WriteByte(byte(g.At(c)))
			case Interior:
				sb.WriteByte('I')
			default:
				sb.WriteByte('O')
			}
		}
	}
	return sb.String()
}
