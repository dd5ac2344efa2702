package pipegrid

// connectors is the single source of truth for pipe shapes: each pipe tile
// joins exactly two sides. Every other rule in this file is derived from it.
var connectors = map[Tile][2]Direction{
	Vertical:   {North, South},
	Horizontal: {West, East},
	NorthEast:  {North, East},
	NorthWest:  {North, West},
	SouthWest:  {South, West},
	SouthEast:  {South, East},
}

// Connectors returns the two sides joined by pipe tile t.
// The boolean is false for Ground, Start and unknown symbols.
// Complexity: O(1).
func Connectors(t Tile) ([2]Direction, bool) {
	c, ok := connectors[t]
	return c, ok
}

// Connects reports whether tile t has a connector on side d.
func Connects(t Tile, d Direction) bool {
	c, ok := connectors[t]
	return ok && (c[0] == d || c[1] == d)
}

// Exit returns the direction of travel out of tile t for a mover that arrived
// from side from. The result is false when t is not a pipe or when from is not
// one of its connectors.
//
// Example: 'L' joins North and East, so arriving from North exits East, and
// arriving from East exits North.
// Complexity: O(1).
func Exit(t Tile, from Direction) (Direction, bool) {
	c, ok := connectors[t]
	if !ok {
		return 0, false
	}
	switch from {
	case c[0]:
		return c[1], true
	case c[1]:
		return c[0], true
	}
	return 0, false
}

// Enterable reports whether a mover travelling toward moving may step into
// tile t. That needs a connector facing back at the mover, i.e. on side
// moving.Opposite(). The start tile is always enterable so that a walk can
// close the loop.
func Enterable(t Tile, moving Direction) bool {
	if t == Start {
		return true
	}
	return Connects(t, moving.Opposite())
}

// EnterableSet lists every symbol that may be entered while moving toward d,
// Start first followed by the pipes in Pipes order.
// For North this is {S, |, 7, F}.
func EnterableSet(d Direction) []Tile {
	set := []Tile{Start}
	for _, t := range Pipes {
		if Enterable(t, d) {
			set = append(set, t)
		}
	}
	return set
}

// ShapeOf returns the pipe joining sides a and b. The pair is unordered.
// It is false when a == b, since no pipe joins a side to itself.
func ShapeOf(a, b Direction) (Tile, bool) {
	if a == b {
		return 0, false
	}
	for _, t := range Pipes {
		c := connectors[t]
		if (c[0] == a && c[1] == b) || (c[0] == b && c[1] == a) {
			return t, true
		}
	}
	return 0, false
}
