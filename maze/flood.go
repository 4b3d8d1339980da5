package maze

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/amazeing/util/collections"
)

type NeighborGetter func(Coord) []Coord
type Visitor func(Coord)

// flood visits every coordinate reachable from start, each exactly once, in
// breadth-first order.
func flood(start Coord, visit Visitor, getNeighbors NeighborGetter) {
	enqueued := collections.NewSet(start)
	var queue deque.Deque
	queue.PushBack(start)

	for queue.Len() > 0 {
		c := queue.PopFront().(Coord)
		visit(c)

		for _, neighbor := range getNeighbors(c) {
			if enqueued.TryAdd(neighbor) {
				queue.PushBack(neighbor)
			}
		}
	}
}

// Reachable returns the coordinates connected to start through open walls.
func (grid *Grid) Reachable(start Coord) collections.Set[Coord] {
	reachable := collections.NewSet[Coord]()
	if !grid.InBounds(start) {
		return reachable
	}

	flood(
		start,
		func(c Coord) {
			reachable.Add(c)
		},
		grid.openNeighbors,
	)
	return reachable
}

func (grid *Grid) openNeighbors(c Coord) []Coord {
	neighbors := make([]Coord, 0, 4)
	for _, dir := range grid.OpenDirections(c) {
		if next, ok := grid.Neighbor(c, dir); ok {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}
