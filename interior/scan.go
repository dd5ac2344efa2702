package interior

import "github.com/katalvlaran/pipeloop/pipegrid"

// Membership answers whether a coordinate belongs to the loop.
// *looptrace.Loop satisfies it.
type Membership interface {
	Contains(c pipegrid.Coordinate) bool
}

// state is the scanline position relative to the loop boundary.
type state uint8

const (
	outside state = iota
	inside
	// The four run states wait for the corner that closes a horizontal run.
	// They remember the side the run started on and which way it left.
	outsideRunUp
	outsideRunDown
	insideRunUp
	insideRunDown
)

// symbol classes driving transitions.
type class uint8

const (
	other class = iota
	vertical
	horizontal
	openUp    // L
	openDown  // F
	closeUp   // J
	closeDown // 7
)

func classOf(t pipegrid.Tile) class {
	switch t {
	case pipegrid.Vertical:
		return vertical
	case pipegrid.Horizontal:
		return horizontal
	case pipegrid.NorthEast:
		return openUp
	case pipegrid.SouthEast:
		return openDown
	case pipegrid.NorthWest:
		return closeUp
	case pipegrid.SouthWest:
		return closeDown
	}
	return other
}

// transitions[s][c] is the state after a loop cell of class c in state s.
// Combinations a valid loop never produces (e.g. '|' inside a run) keep s.
var transitions = [6][7]state{
	outside: {
		other: outside, vertical: inside, horizontal: outside,
		openUp: outsideRunUp, openDown: outsideRunDown,
		closeUp: outside, closeDown: outside,
	},
	inside: {
		other: inside, vertical: outside, horizontal: inside,
		openUp: insideRunUp, openDown: insideRunDown,
		closeUp: inside, closeDown: inside,
	},
	outsideRunUp: {
		other: outsideRunUp, vertical: outsideRunUp, horizontal: outsideRunUp,
		openUp: outsideRunUp, openDown: outsideRunUp,
		closeUp: outside, closeDown: inside,
	},
	outsideRunDown: {
		other: outsideRunDown, vertical: outsideRunDown, horizontal: outsideRunDown,
		openUp: outsideRunDown, openDown: outsideRunDown,
		closeUp: inside, closeDown: outside,
	},
	insideRunUp: {
		other: insideRunUp, vertical: insideRunUp, horizontal: insideRunUp,
		openUp: insideRunUp, openDown: insideRunUp,
		closeUp: inside, closeDown: outside,
	},
	insideRunDown: {
		other: insideRunDown, vertical: insideRunDown, horizontal: insideRunDown,
		openUp: insideRunDown, openDown: insideRunDown,
		closeUp: outside, closeDown: inside,
	},
}

// scan runs the state machine over every row of g and calls visit for each
// cell with the cell's classification.
func scan(g *pipegrid.Grid, loop Membership, visit func(c pipegrid.Coordinate, cl Class)) {
	for y := 0; y < g.Height; y++ {
		s := outside
		for x := 0; x < g.Width; x++ {
			c := pipegrid.Coordinate{X: x, Y: y}
			if loop.Contains(c) {
				s = transitions[s][classOf(g.At(c))]
				visit(c, Loop)
				continue
			}
			if s == inside {
				visit(c, Interior)
			} else {
				visit(c, Exterior)
			}
		}
	}
}

// Count returns the number of non-loop cells of g enclosed by loop.
func Count(g *pipegrid.Grid, loop Membership) int {
	n := 0
	scan(g, loop, func(_ pipegrid.Coordinate, cl Class) {
		if cl == Interior {
			n++
		}
	})
	return n
}
