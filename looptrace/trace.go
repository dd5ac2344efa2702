package looptrace

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// walker encapsulates the state of one walk around the loop.
type walker struct {
	grid  *pipegrid.Grid
	opts  Options
	limit int
	path  []pipegrid.Coordinate
}

// Trace finds the loop through g.Start, applying any number of Options.
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// ErrAmbiguousStartShape when the start is not joined to exactly two
// neighbors, ErrBrokenLoop when the walk dead-ends, ErrDirectionMismatch
// from a failed WithVerify check, or any error returned by the OnStep hook.
// The grid is not modified.
func Trace(g *pipegrid.Grid, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 1) Identify the two sides of the start the loop leaves by.
	dirs := StartDirections(g)
	shape, err := ResolveStart(dirs)
	if err != nil {
		return nil, fmt.Errorf("looptrace: start %v: %w", g.Start, err)
	}

	// 2) Walk out of the first side until the loop closes via the second.
	w := newWalker(g, o)
	if err = w.walk(dirs[0], dirs[1]); err != nil {
		return nil, err
	}

	loop := &Loop{
		Start:      g.Start,
		Path:       w.path,
		Directions: [2]pipegrid.Direction{dirs[0], dirs[1]},
		StartShape: shape,
		width:      g.Width,
		members:    make([]bool, g.Cells()),
	}
	for _, c := range loop.Path {
		loop.members[g.Index(c)] = true
	}

	// 3) Optionally walk the other way round and compare.
	if o.Verify {
		back := newWalker(g, Options{MaxSteps: o.MaxSteps})
		if err = back.walk(dirs[1], dirs[0]); err != nil {
			return nil, fmt.Errorf("%w: reverse walk: %v", ErrDirectionMismatch, err)
		}
		if len(back.path) != loop.Len() {
			return nil, fmt.Errorf("%w: lengths %d and %d", ErrDirectionMismatch, loop.Len(), len(back.path))
		}
		for _, c := range back.path {
			if !loop.Contains(c) {
				return nil, fmt.Errorf("%w: %v only on reverse walk", ErrDirectionMismatch, c)
			}
		}
	}

	return loop, nil
}

func newWalker(g *pipegrid.Grid, o Options) *walker {
	limit := o.MaxSteps
	if limit == 0 {
		limit = g.Cells()
	}
	return &walker{grid: g, opts: o, limit: limit}
}

// walk leaves the start toward out and follows the pipes until it steps back
// onto the start. The loop must close by entering the start from side in.
func (w *walker) walk(out, in pipegrid.Direction) error {
	start := w.grid.Start
	if err := w.visit(start, 0); err != nil {
		return err
	}

	cur, ok := w.grid.Neighbor(start, out)
	if !ok {
		return fmt.Errorf("%w: no neighbor %s of start", ErrBrokenLoop, out)
	}
	from := out.Opposite()

	for step := 1; ; step++ {
		if cur == start {
			if from != in {
				return fmt.Errorf("%w: closed from %s, want %s", ErrBrokenLoop, from, in)
			}
			return nil
		}
		if step >= w.limit {
			return fmt.Errorf("%w: exceeded %d steps", ErrBrokenLoop, w.limit)
		}
		if err := w.visit(cur, step); err != nil {
			return err
		}

		next, nextFrom, ok := w.grid.Step(cur, from)
		if !ok {
			return fmt.Errorf("%w: dead end at %v (%s)", ErrBrokenLoop, cur, w.grid.At(cur))
		}
		cur, from = next, nextFrom
	}
}

func (w *walker) visit(c pipegrid.Coordinate, step int) error {
	w.path = append(w.path, c)
	if w.opts.OnStep != nil {
		return w.opts.OnStep(c, step)
	}
	return nil
}
