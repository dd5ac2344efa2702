package looptrace

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// StartDirections returns, in North, East, South, West order, the sides of
// the start tile whose in-bounds neighbor has a pipe pointing back at it.
// A well-formed grid yields exactly two.
func StartDirections(g *pipegrid.Grid) []pipegrid.Direction {
	dirs := make([]pipegrid.Direction, 0, 4)
	for _, d := range pipegrid.Directions {
		n, ok := g.Neighbor(g.Start, d)
		if !ok {
			continue
		}
		if pipegrid.Connects(g.At(n), d.Opposite()) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// ResolveStart returns the pipe whose two connectors are exactly dirs.
// The order of dirs does not matter. Anything other than two distinct
// directions yields ErrAmbiguousStartShape.
func ResolveStart(dirs []pipegrid.Direction) (pipegrid.Tile, error) {
	if len(dirs) != 2 {
		return 0, fmt.Errorf("%w: %d connected neighbors, want 2", ErrAmbiguousStartShape, len(dirs))
	}
	t, ok := pipegrid.ShapeOf(dirs[0], dirs[1])
	if !ok {
		return 0, fmt.Errorf("%w: no pipe joins %s and %s", ErrAmbiguousStartShape, dirs[0], dirs[1])
	}
	return t, nil
}
