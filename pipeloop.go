package pipeloop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/interior"
	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Report gathers everything Analyze learns about a grid.
type Report struct {
	Width      int                 `json:"width" yaml:"width"`
	Height     int                 `json:"height" yaml:"height"`
	Start      pipegrid.Coordinate `json:"start" yaml:"start"`
	StartShape string              `json:"start_shape" yaml:"start_shape"`
	LoopLength int                 `json:"loop_length" yaml:"loop_length"`
	Farthest   uint64              `json:"farthest" yaml:"farthest"`
	Enclosed   uint64              `json:"enclosed" yaml:"enclosed"`
	Exterior   int                 `json:"exterior" yaml:"exterior"`

	// Classification holds the per-cell classes for rendering.
	Classification *interior.Classification `json:"-" yaml:"-"`
}

// Farthest returns the number of steps along the loop from the start to the
// farthest loop cell. Errors from parsing and tracing are returned wrapped;
// there is no zero fallback for a missing loop.
func Farthest(buf []byte, opts ...looptrace.Option) (uint64, error) {
	_, loop, err := trace(buf, opts)
	if err != nil {
		return 0, err
	}
	return uint64(loop.Farthest()), nil
}

// Enclosed returns the number of grid cells enclosed by the loop.
func Enclosed(buf []byte, opts ...looptrace.Option) (uint64, error) {
	g, loop, err := trace(buf, opts)
	if err != nil {
		return 0, err
	}
	g.Patch(loop.Start, loop.StartShape)
	return uint64(interior.Count(g, loop)), nil
}

// Analyze runs the full pipeline and reports both answers together with the
// grid dimensions, the resolved start shape and the per-cell classification.
func Analyze(buf []byte, opts ...looptrace.Option) (*Report, error) {
	g, loop, err := trace(buf, opts)
	if err != nil {
		return nil, err
	}
	g.Patch(loop.Start, loop.StartShape)

	cl := interior.Classify(g, loop)
	_, enclosed, exterior := cl.Counts()

	return &Report{
		Width:          g.Width,
		Height:         g.Height,
		Start:          loop.Start,
		StartShape:     loop.StartShape.String(),
		LoopLength:     loop.Len(),
		Farthest:       uint64(loop.Farthest()),
		Enclosed:       uint64(enclosed),
		Exterior:       exterior,
		Classification: cl,
	}, nil
}

// trace is the front end shared by every entry point.
func trace(buf []byte, opts []looptrace.Option) (*pipegrid.Grid, *looptrace.Loop, error) {
	g, err := pipegrid.Parse(buf)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeloop: parse: %w", err)
	}
	loop, err := looptrace.Trace(g, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeloop: trace: %w", err)
	}
	return g, loop, nil
}
