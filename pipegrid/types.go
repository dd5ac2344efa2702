package pipegrid

import "fmt"

// Direction is one of the four compass sides of a tile.
// It is used both as a direction of travel and as the side a mover
// arrived from; the two are opposites of each other.
type Direction uint8

const (
	// North points to the row above (y-1).
	North Direction = iota
	// East points to the column on the right (x+1).
	East
	// South points to the row below (y+1).
	South
	// West points to the column on the left (x-1).
	West
)

// Directions lists all four sides in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the side facing d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the (dx, dy) step of moving one cell toward d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Tile is a single grid symbol.
type Tile byte

// Tile symbols as they appear in the input.
const (
	Vertical   Tile = '|'
	Horizontal Tile = '-'
	NorthEast  Tile = 'L'
	NorthWest  Tile = 'J'
	SouthWest  Tile = '7'
	SouthEast  Tile = 'F'
	Ground     Tile = '.'
	Start      Tile = 'S'
)

// Pipes lists the six pipe shapes in a fixed order.
var Pipes = [6]Tile{Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast}

// IsPipe reports whether t is one of the six pipe shapes.
func (t Tile) IsPipe() bool {
	_, ok := connectors[t]
	return ok
}

func (t Tile) String() string {
	return string(rune(t))
}

// Coordinate identifies a cell by column X and row Y. Both are never negative;
// moving off the grid is reported by Grid.Neighbor as "no such coordinate".
type Coordinate struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
