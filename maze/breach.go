package maze

import "github.com/they4kman/amazeing/util/collections"

const (
	minBreaches = 1
	maxBreaches = 3 // exclusive
)

// wallRef names the wall between a cell and its southern or eastern
// neighbour.
type wallRef struct {
	a, b Coord
}

// breachCandidates lists the closed interior walls separating the cells
// carved before the exit from those carved after it. Walls touching the exit
// or the icon never qualify.
func (grid *Grid) breachCandidates() []wallRef {
	candidates := make([]wallRef, 0)
	for idx, cell := range grid.cells {
		c := grid.coord(idx)
		for _, dir := range []Direction{South, East} {
			if !cell.Wall(dir) {
				continue
			}
			next, ok := grid.Neighbor(c, dir)
			if !ok {
				continue
			}
			other := grid.cell(next)
			if cell.IsExit() || other.IsExit() || cell.IsIcon() || other.IsIcon() {
				continue
			}
			if cell.IsAfterExit() == other.IsAfterExit() {
				continue
			}
			candidates = append(candidates, wallRef{a: c, b: next})
		}
	}
	return candidates
}

// breach opens between one and two candidate walls, turning the perfect maze
// into one with loops. Candidates are drawn with replacement; drawing the
// same wall twice opens it once. Returns the number of walls opened.
func (grid *Grid) breach() int {
	count := grid.rand.NextInt(minBreaches, maxBreaches)
	candidates := grid.breachCandidates()
	if len(candidates) == 0 {
		grid.log.Debug("No wall separates the regions around the exit; maze stays perfect")
		return 0
	}

	opened := collections.NewSet[wallRef]()
	for i := 0; i < count; i++ {
		wall := candidates[grid.rand.NextInt(0, len(candidates))]
		grid.openWall(wall.a, wall.b)
		opened.Add(wall)
	}
	return opened.Len()
}
