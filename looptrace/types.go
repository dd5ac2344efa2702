package looptrace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for loop tracing.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("looptrace: grid is nil")

	// ErrAmbiguousStartShape is returned when the start tile does not have
	// exactly two pipe-connected neighbors.
	ErrAmbiguousStartShape = errors.New("looptrace: ambiguous start shape")

	// ErrBrokenLoop is returned when a walk cannot get back to the start.
	ErrBrokenLoop = errors.New("looptrace: broken loop")

	// ErrDirectionMismatch is returned by a verified trace when the two
	// directions around the loop visit different cells.
	ErrDirectionMismatch = errors.New("looptrace: traversal directions disagree")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("looptrace: invalid option supplied")
)

// Option configures Trace via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for Trace.
type Options struct {
	// Verify also walks the loop in the opposite direction and requires both
	// walks to agree on length and membership.
	Verify bool

	// OnStep is called for every cell of the loop in walk order, the start
	// first with step 0. A returned error aborts tracing and is propagated.
	OnStep func(c pipegrid.Coordinate, step int) error

	// MaxSteps caps the number of cells a walk may visit.
	// Zero means Width*Height, which no simple cycle can exceed.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no verification, no hook and the
// Width*Height step cap.
func DefaultOptions() Options {
	return Options{
		Verify:   false,
		OnStep:   nil,
		MaxSteps: 0,
		err:      nil,
	}
}

// WithVerify enables the two-direction self-check.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// WithOnStep installs fn as the per-cell hook.
func WithOnStep(fn func(c pipegrid.Coordinate, step int) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxSteps overrides the step cap. A negative limit is recorded and
// surfaced as ErrOptionViolation when Trace runs.
func WithMaxSteps(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: negative MaxSteps %d", ErrOptionViolation, limit)
			return
		}
		o.MaxSteps = limit
	}
}

// Loop is the closed cycle through the start tile.
type Loop struct {
	// Start is the start coordinate; it is also Path[0].
	Start pipegrid.Coordinate

	// Path lists the loop cells in walk order, starting at Start.
	// The closing return to Start is not repeated.
	Path []pipegrid.Coordinate

	// Directions holds the two sides of the start tile the loop leaves by,
	// in North, East, South, West order.
	Directions [2]pipegrid.Direction

	// StartShape is the pipe symbol the start tile stands for.
	StartShape pipegrid.Tile

	width   int
	members []bool
}

// Len returns the number of cells in the loop, the start counted once.
func (l *Loop) Len() int {
	return len(l.Path)
}

// Farthest returns the number of steps along the loop to the cell farthest
// from the start, which is half the loop length rounded down.
func (l *Loop) Farthest() int {
	return len(l.Path) / 2
}

// Contains reports whether c is a loop cell.
// Complexity: O(1).
func (l *Loop) Contains(c pipegrid.Coordinate) bool {
	if c.X < 0 || c.Y < 0 || c.X >= l.width {
		return false
	}
	i := c.Y*l.width + c.X
	return i < len(l.members) && l.members[i]
}
