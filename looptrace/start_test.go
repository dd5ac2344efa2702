package looptrace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// TestResolveStart_AllPairs maps each of the six direction pairs, in both
// orders, to one pipe and checks the pipe's connectors give the pair back.
func TestResolveStart_AllPairs(t *testing.T) {
	want := map[[2]pipegrid.Direction]pipegrid.Tile{
		{pipegrid.North, pipegrid.South}: '|',
		{pipegrid.East, pipegrid.West}:   '-',
		{pipegrid.North, pipegrid.East}:  'L',
		{pipegrid.North, pipegrid.West}:  'J',
		{pipegrid.South, pipegrid.West}:  '7',
		{pipegrid.East, pipegrid.South}:  'F',
	}
	seen := make(map[pipegrid.Tile]bool)
	for pair, tile := range want {
		for _, dirs := range [][]pipegrid.Direction{{pair[0], pair[1]}, {pair[1], pair[0]}} {
			got, err := looptrace.ResolveStart(dirs)
			require.NoError(t, err)
			assert.Equal(t, tile, got, "%v", dirs)
		}
		seen[tile] = true

		c, ok := pipegrid.Connectors(tile)
		require.True(t, ok)
		assert.ElementsMatch(t, pair[:], c[:])
	}
	assert.Len(t, seen, 6)
}

// TestResolveStart_Ambiguous rejects anything but two distinct sides.
func TestResolveStart_Ambiguous(t *testing.T) {
	cases := map[string][]pipegrid.Direction{
		"none":     nil,
		"one":      {pipegrid.North},
		"three":    {pipegrid.North, pipegrid.East, pipegrid.South},
		"four":     {pipegrid.North, pipegrid.East, pipegrid.South, pipegrid.West},
		"repeated": {pipegrid.West, pipegrid.West},
	}
	for name, dirs := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := looptrace.ResolveStart(dirs)
			require.ErrorIs(t, err, looptrace.ErrAmbiguousStartShape)
		})
	}
}

// TestStartDirections ignores edges and pipes facing away.
func TestStartDirections(t *testing.T) {
	g, err := pipegrid.Parse([]byte("S.\n-."))
	require.NoError(t, err)
	assert.Empty(t, looptrace.StartDirections(g))

	g, err = pipegrid.Parse([]byte("-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF\n"))
	require.NoError(t, err)
	assert.Equal(t, []pipegrid.Direction{pipegrid.East, pipegrid.South}, looptrace.StartDirections(g))
}
