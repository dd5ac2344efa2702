package pipegrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// TestExit_AllPipes checks every (tile, arrived-from) pair against the
// connector table: the exit is the other connector, and sides without a
// connector have no continuation.
func TestExit_AllPipes(t *testing.T) {
	cases := []struct {
		tile pipegrid.Tile
		from pipegrid.Direction
		want pipegrid.Direction
		ok   bool
	}{
		{'|', pipegrid.North, pipegrid.South, true},
		{'|', pipegrid.South, pipegrid.North, true},
		{'|', pipegrid.East, 0, false},
		{'-', pipegrid.West, pipegrid.East, true},
		{'-', pipegrid.East, pipegrid.West, true},
		{'-', pipegrid.North, 0, false},
		{'L', pipegrid.North, pipegrid.East, true},
		{'L', pipegrid.East, pipegrid.North, true},
		{'L', pipegrid.South, 0, false},
		{'J', pipegrid.North, pipegrid.West, true},
		{'J', pipegrid.West, pipegrid.North, true},
		{'J', pipegrid.East, 0, false},
		{'7', pipegrid.South, pipegrid.West, true},
		{'7', pipegrid.West, pipegrid.South, true},
		{'7', pipegrid.North, 0, false},
		{'F', pipegrid.South, pipegrid.East, true},
		{'F', pipegrid.East, pipegrid.South, true},
		{'F', pipegrid.West, 0, false},
		{'.', pipegrid.North, 0, false},
		{'S', pipegrid.North, 0, false},
		{'x', pipegrid.North, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.tile.String()+"/"+tc.from.String(), func(t *testing.T) {
			got, ok := pipegrid.Exit(tc.tile, tc.from)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// TestEnterableSet verifies the per-direction companion table.
func TestEnterableSet(t *testing.T) {
	want := map[pipegrid.Direction][]pipegrid.Tile{
		pipegrid.North: {'S', '|', '7', 'F'},
		pipegrid.South: {'S', '|', 'L', 'J'},
		pipegrid.West:  {'S', '-', 'L', 'F'},
		pipegrid.East:  {'S', '-', 'J', '7'},
	}
	for d, tiles := range want {
		assert.Equal(t, tiles, pipegrid.EnterableSet(d), "moving %s", d)
	}
	assert.False(t, pipegrid.Enterable('.', pipegrid.North))
}

// TestShapeOf_Inverse ensures ShapeOf inverts Connectors for every pipe,
// regardless of pair order, and rejects degenerate pairs.
func TestShapeOf_Inverse(t *testing.T) {
	for _, p := range pipegrid.Pipes {
		c, ok := pipegrid.Connectors(p)
		require.True(t, ok)

		got, ok := pipegrid.ShapeOf(c[0], c[1])
		require.True(t, ok)
		assert.Equal(t, p, got)

		got, ok = pipegrid.ShapeOf(c[1], c[0])
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
	for _, d := range pipegrid.Directions {
		_, ok := pipegrid.ShapeOf(d, d)
		assert.False(t, ok, "ShapeOf(%s,%s)", d, d)
	}
}

// TestDirection_Opposite checks the involution and deltas.
func TestDirection_Opposite(t *testing.T) {
	for _, d := range pipegrid.Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
	}
	assert.Equal(t, "north", pipegrid.North.String())
	assert.Equal(t, "Direction(9)", pipegrid.Direction(9).String())
}

func TestTile_IsPipe(t *testing.T) {
	for _, p := range pipegrid.Pipes {
		assert.True(t, p.IsPipe(), "%s", p)
	}
	for _, p := range []pipegrid.Tile{'.', 'S', ' ', '#'} {
		assert.False(t, p.IsPipe(), "%q", p)
	}
}
