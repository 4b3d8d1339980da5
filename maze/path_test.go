package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openGrid returns a grid with every interior wall open.
func openGrid(t *testing.T, width, height int, exit Coord) *Grid {
	t.Helper()
	grid, err := New(Options{Width: width, Height: height, Exit: exit, Seed: 1, Logger: quietLogger()})
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			for _, dir := range []Direction{East, South} {
				if next, ok := grid.Neighbor(c, dir); ok {
					grid.openWall(c, next)
				}
			}
		}
	}
	return grid
}

func TestBreadthFirst(t *testing.T) {
	t.Run("open field takes a manhattan route", func(t *testing.T) {
		grid := openGrid(t, 6, 4, Coord{X: 5, Y: 3})
		path, err := BreadthFirst{}.FindPath(grid)
		require.NoError(t, err)
		assert.Len(t, path, 8)

		coords, err := grid.Walk(grid.Entry(), path)
		require.NoError(t, err)
		assert.Equal(t, grid.Exit(), coords[len(coords)-1])
	})

	t.Run("prefers the shortcut of a loop", func(t *testing.T) {
		// A U-shaped corridor (0,0) -> (0,1) -> (1,1) -> (1,0) plus a direct
		// opening between (0,0) and (1,0)
		grid, err := New(Options{Width: 2, Height: 2, Exit: Coord{X: 1, Y: 0}, Seed: 1, Logger: quietLogger()})
		require.NoError(t, err)
		grid.openWall(Coord{X: 0, Y: 0}, Coord{X: 0, Y: 1})
		grid.openWall(Coord{X: 0, Y: 1}, Coord{X: 1, Y: 1})
		grid.openWall(Coord{X: 1, Y: 1}, Coord{X: 1, Y: 0})
		grid.openWall(Coord{X: 0, Y: 0}, Coord{X: 1, Y: 0})

		path, err := BreadthFirst{}.FindPath(grid)
		require.NoError(t, err)
		assert.Equal(t, []Direction{East}, path)
	})

	t.Run("walled exit has no path", func(t *testing.T) {
		grid, err := New(Options{Width: 3, Height: 3, Exit: Coord{X: 2, Y: 2}, Seed: 1, Logger: quietLogger()})
		require.NoError(t, err)
		grid.openWall(Coord{X: 0, Y: 0}, Coord{X: 1, Y: 0})

		_, err = BreadthFirst{}.FindPath(grid)
		assert.True(t, errors.Is(err, ErrNoPath))
	})
}

func TestWalk(t *testing.T) {
	grid, err := New(Options{Width: 3, Height: 1, Exit: Coord{X: 2, Y: 0}, Seed: 1, Logger: quietLogger()})
	require.NoError(t, err)
	grid.openWall(Coord{X: 0, Y: 0}, Coord{X: 1, Y: 0})

	coords, err := grid.Walk(grid.Entry(), []Direction{East})
	require.NoError(t, err)
	assert.Equal(t, []Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}, coords)

	_, err = grid.Walk(grid.Entry(), []Direction{East, East})
	assert.True(t, errors.Is(err, ErrClosedWall))

	_, err = grid.Walk(grid.Entry(), []Direction{North})
	assert.True(t, errors.Is(err, ErrClosedWall))

	_, err = grid.Walk(Coord{X: 7, Y: 0}, nil)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestReachable(t *testing.T) {
	grid, err := New(Options{Width: 3, Height: 2, Exit: Coord{X: 2, Y: 1}, Seed: 1, Logger: quietLogger()})
	require.NoError(t, err)
	grid.openWall(Coord{X: 0, Y: 0}, Coord{X: 0, Y: 1})
	grid.openWall(Coord{X: 0, Y: 1}, Coord{X: 1, Y: 1})

	reachable := grid.Reachable(Coord{X: 0, Y: 0})
	assert.Equal(t, 3, reachable.Len())
	assert.True(t, reachable.Contains(Coord{X: 1, Y: 1}))
	assert.False(t, reachable.Contains(Coord{X: 1, Y: 0}))

	assert.Equal(t, 1, grid.Reachable(Coord{X: 2, Y: 0}).Len())
	assert.Zero(t, grid.Reachable(Coord{X: -1, Y: 0}).Len())
}

func TestPathCachedAfterGeneration(t *testing.T) {
	grid := generate(t, Options{Width: 6, Height: 6, Exit: Coord{X: 5, Y: 0}, Perfect: false, Seed: 77})

	coords := grid.PathCoords()
	require.Len(t, coords, len(grid.Path())+1)
	for _, c := range coords {
		assert.True(t, grid.InShortestPath(c))
	}

	// Returned slices are copies
	path := grid.Path()
	path[0] = path[0].Opposite()
	assert.NotEqual(t, path, grid.Path())
}
