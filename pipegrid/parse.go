package pipegrid

import "bytes"

// Option configures Parse.
type Option func(*ParseOptions)

// ParseOptions holds the tunable parsing behavior.
type ParseOptions struct {
	// LenientStart makes a grid without an 'S' marker parse successfully
	// with Start at (0,0) instead of failing with ErrMissingStart.
	LenientStart bool
}

// DefaultParseOptions returns strict options: a missing start marker is an error.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{LenientStart: false}
}

// WithLenientStart restores the (0,0) fallback for grids without a start
// marker. Results computed from such a grid are rarely meaningful.
func WithLenientStart() Option {
	return func(o *ParseOptions) {
		o.LenientStart = true
	}
}

// Parse builds a Grid from rows of ASCII tiles separated by '\n'.
// A trailing newline does not add a row and a final unterminated line is
// kept. Width is the length of the shortest row; longer rows are trimmed.
// The buffer is copied, so later changes to buf do not affect the Grid.
//
// Returns ErrMalformedInput for an empty buffer or a grid without columns,
// and ErrMissingStart when no 'S' is present (unless WithLenientStart).
// Complexity: O(len(buf)) time and memory.
func Parse(buf []byte, opts ...Option) (*Grid, error) {
	o := DefaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(buf) == 0 {
		return nil, ErrMalformedInput
	}

	lines := bytes.Split(buf, []byte{'\n'})
	if len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	width := len(lines[0])
	for _, line := range lines[1:] {
		if len(line) < width {
			width = len(line)
		}
	}
	if width == 0 {
		return nil, ErrMalformedInput
	}

	g := &Grid{Width: width, Height: len(lines), rows: make([][]Tile, len(lines))}
	found := false
	for y, line := range lines {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = Tile(line[x])
			if row[x] == Start && !found {
				g.Start = Coordinate{X: x, Y: y}
				found = true
			}
		}
		g.rows[y] = row
	}
	if !found && !o.LenientStart {
		return nil, ErrMissingStart
	}

	return g, nil
}
