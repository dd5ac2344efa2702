// Package pipegrid models a rectangular field of pipe tiles and the rules
// that decide how a mover travels through them.
//
// What:
//
//   - Grid holds the parsed rows, their common Width, Height and the
//     coordinate of the start marker 'S'.
//   - Tile, Direction and Coordinate are small comparable value types.
//   - A single connector table (Tile -> two Directions) drives every
//     derived rule: Exit, Connects, Enterable, ShapeOf and Grid.Step.
//
// Tiles:
//
//	| connects North and South      - connects West and East
//	L connects North and East       J connects North and West
//	7 connects South and West       F connects South and East
//	. ground, no connectors         S start, shape resolved later
//
// Complexity:
//
//   - Parse:               O(len(buf)) time and memory.
//   - At, Neighbor, Step:  O(1).
//
// Errors:
//
//   - ErrMalformedInput: empty buffer or no rows.
//   - ErrMissingStart:   no 'S' marker (wraps ErrMalformedInput).
package pipegrid
