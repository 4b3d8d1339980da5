package candidate

import (
	"github.com/they4kman/amazeing/maze"
	"github.com/they4kman/amazeing/util/collections"
)

// Finder explores the maze with a set of live path candidates, each
// remembering the directions it took. Every round each candidate advances one
// step, so the first one standing on the exit carries a shortest path.
type Finder struct{}

type pathCandidate struct {
	dirs []maze.Direction
	at   maze.Coord
}

func (cand *pathCandidate) lastDirection() (maze.Direction, bool) {
	if len(cand.dirs) == 0 {
		return 0, false
	}
	return cand.dirs[len(cand.dirs)-1], true
}

func (cand *pathCandidate) advance(dir maze.Direction, to maze.Coord) {
	cand.dirs = append(cand.dirs, dir)
	cand.at = to
}

// branch returns a copy of the candidate taking dir instead.
func (cand *pathCandidate) branch(dir maze.Direction, to maze.Coord) *pathCandidate {
	dirs := make([]maze.Direction, len(cand.dirs), len(cand.dirs)+1)
	copy(dirs, cand.dirs)
	clone := &pathCandidate{dirs: dirs}
	clone.advance(dir, to)
	return clone
}

func (Finder) FindPath(grid *maze.Grid) ([]maze.Direction, error) {
	claimed := collections.NewSet(grid.Entry())
	live := []*pathCandidate{{at: grid.Entry()}}

	for len(live) > 0 {
		for _, cand := range live {
			if cand.at == grid.Exit() {
				return cand.dirs, nil
			}
		}

		next := make([]*pathCandidate, 0, len(live))
		for _, cand := range live {
			dirs, targets := productiveMoves(grid, cand, claimed)
			if len(dirs) == 0 {
				continue
			}

			// Junction: the extra ways out each get their own candidate
			for i := 1; i < len(dirs); i++ {
				next = append(next, cand.branch(dirs[i], targets[i]))
			}
			// Corridor: keep walking in place
			cand.advance(dirs[0], targets[0])
			next = append(next, cand)
		}
		live = next
	}

	return nil, maze.ErrNoPath
}

// productiveMoves lists the open directions out of the candidate's cell,
// skipping the way it came and any cell another candidate already holds.
// Returned targets are claimed.
func productiveMoves(grid *maze.Grid, cand *pathCandidate, claimed collections.Set[maze.Coord]) ([]maze.Direction, []maze.Coord) {
	back, hasBack := cand.lastDirection()

	dirs := make([]maze.Direction, 0, 3)
	targets := make([]maze.Coord, 0, 3)
	for _, dir := range grid.OpenDirections(cand.at) {
		if hasBack && dir == back.Opposite() {
			continue
		}
		to, ok := grid.Neighbor(cand.at, dir)
		if !ok || !claimed.TryAdd(to) {
			continue
		}
		dirs = append(dirs, dir)
		targets = append(targets, to)
	}
	return dirs, targets
}
