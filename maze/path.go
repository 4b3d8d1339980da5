package maze

import (
	"fmt"
	"strings"

	"github.com/gammazero/deque"
	"github.com/they4kman/amazeing/util/collections"
)

// BreadthFirst finds a shortest path with a queue of cell indexes and parent
// links back to the entry.
type BreadthFirst struct{}

func (BreadthFirst) FindPath(grid *Grid) ([]Direction, error) {
	const unseen = -1

	parents := make([]int, grid.NumCells())
	steps := make([]Direction, grid.NumCells())
	for i := range parents {
		parents[i] = unseen
	}

	start, goal := grid.index(grid.entry), grid.index(grid.exit)
	parents[start] = start

	var queue deque.Deque
	queue.PushBack(start)

	for queue.Len() > 0 {
		idx := queue.PopFront().(int)
		if idx == goal {
			return tracePath(parents, steps, start, goal), nil
		}

		c := grid.coord(idx)
		for _, dir := range grid.OpenDirections(c) {
			next, ok := grid.Neighbor(c, dir)
			if !ok {
				continue
			}
			nextIdx := grid.index(next)
			if parents[nextIdx] != unseen {
				continue
			}
			parents[nextIdx] = idx
			steps[nextIdx] = dir
			queue.PushBack(nextIdx)
		}
	}

	return nil, ErrNoPath
}

func tracePath(parents []int, steps []Direction, start, goal int) []Direction {
	path := make([]Direction, 0)
	for idx := goal; idx != start; idx = parents[idx] {
		path = append(path, steps[idx])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Walk replays dirs from start and returns every coordinate visited,
// start included. It fails on the first step through a closed wall.
func (grid *Grid) Walk(start Coord, dirs []Direction) ([]Coord, error) {
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("walk from (%s): %w", start, ErrOutOfBounds)
	}

	coords := make([]Coord, 0, len(dirs)+1)
	coords = append(coords, start)
	current := start
	for i, dir := range dirs {
		next, ok := grid.Neighbor(current, dir)
		if !ok || grid.cell(current).Wall(dir) {
			return nil, fmt.Errorf("step %d (%s) from (%s): %w", i, dir, current, ErrClosedWall)
		}
		current = next
		coords = append(coords, current)
	}
	return coords, nil
}

// solve runs the path finder and caches its answer after checking that it
// really leads from entry to exit.
func (grid *Grid) solve() error {
	path, err := grid.pathFinder.FindPath(grid)
	if err != nil {
		return err
	}

	coords, err := grid.Walk(grid.entry, path)
	if err != nil {
		return err
	}
	if coords[len(coords)-1] != grid.exit {
		return fmt.Errorf("path ends at (%s): %w", coords[len(coords)-1], ErrNoPath)
	}

	grid.path = path
	grid.pathCoords = coords
	grid.onPath = collections.NewSet(coords...)
	return nil
}

// Path returns the cached directions from entry to exit.
func (grid *Grid) Path() []Direction {
	return append([]Direction(nil), grid.path...)
}

// PathCoords returns the cells of the cached path, entry and exit included.
func (grid *Grid) PathCoords() []Coord {
	return append([]Coord(nil), grid.pathCoords...)
}

func (grid *Grid) InShortestPath(c Coord) bool {
	return grid.onPath.Contains(c)
}

// PathString encodes the path as one letter per step.
func PathString(dirs []Direction) string {
	var sb strings.Builder
	for _, dir := range dirs {
		sb.WriteByte(dir.Letter())
	}
	return sb.String()
}
