package pipegrid

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates the buffer holds no grid rows at all.
	ErrMalformedInput = errors.New("pipegrid: malformed input")
	// ErrMissingStart indicates no start marker 'S' was found in the grid.
	ErrMissingStart = fmt.Errorf("%w: start marker not found", ErrMalformedInput)
)
