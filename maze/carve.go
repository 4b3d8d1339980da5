package maze

import "github.com/sirupsen/logrus"

// CreateFullMaze carves the corridors, breaches walls when the maze is not
// perfect, checks the result and caches the path from entry to exit. A grid
// is generated once; build a new one to regenerate.
func (grid *Grid) CreateFullMaze() error {
	if grid.generated {
		return ErrAlreadyGenerated
	}
	grid.generated = true

	log := grid.log.WithFields(logrus.Fields{
		"seed":    grid.Seed(),
		"width":   grid.width,
		"height":  grid.height,
		"perfect": grid.perfect,
	})

	grid.carve()
	if !grid.perfect {
		grid.breaches = grid.breach()
	}
	log.WithField("breaches", grid.breaches).Debug("Carved maze")

	if err := grid.validate(); err != nil {
		log.WithError(err).Error("Generated maze is inconsistent")
		return err
	}

	if err := grid.solve(); err != nil {
		return err
	}
	log.WithField("path_length", len(grid.path)).Debug("Solved maze")

	return nil
}

// carve runs the randomized depth-first backtracker from the entry. The stack
// holds the current branch; its top is where carving continues.
func (grid *Grid) carve() {
	stack := make([]Coord, 0, grid.NumCells())
	stack = append(stack, grid.entry)
	region := grid.visit(grid.entry, BeforeExit)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		next, ok := grid.nextCell(current)
		if !ok {
			// Dead end: retire the cell and resume from the open, live
			// neighbour that led here.
			grid.cell(current).markDead()
			stack = stack[:len(stack)-1]
			continue
		}

		grid.openWall(current, next)
		region = grid.visit(next, region)
		stack = append(stack, next)
	}
}

// nextCell picks a random unvisited neighbour to carve into. In a perfect
// maze the exit never leads anywhere, so exactly one corridor reaches it.
func (grid *Grid) nextCell(c Coord) (Coord, bool) {
	if grid.perfect && c == grid.exit {
		return Coord{}, false
	}

	candidates := grid.unvisitedNeighbors(c)
	if len(candidates) == 0 {
		return Coord{}, false
	}
	return candidates[grid.rand.NextInt(0, len(candidates))], true
}

// visit marks c as carved in the given region and returns the region for the
// rest of the traversal. The exit is entered once, so reaching it is the only
// transition.
func (grid *Grid) visit(c Coord, region Region) Region {
	cell := grid.cell(c)
	cell.markVisited()
	if region == AfterExit {
		cell.markAfterExit()
	}
	if cell.IsExit() {
		return AfterExit
	}
	return region
}

func (grid *Grid) unvisitedNeighbors(c Coord) []Coord {
	neighbors := make([]Coord, 0, 4)
	for _, dir := range Directions {
		next, ok := grid.Neighbor(c, dir)
		if ok && !grid.cell(next).IsVisited() {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// validate fails on any non-icon cell that is walled in or cut off from the
// entry.
func (grid *Grid) validate() error {
	for idx, cell := range grid.cells {
		if !cell.IsIcon() && cell.IsIsolated() {
			return &GenerationError{Err: ErrIsolatedCell, Coord: grid.coord(idx)}
		}
	}

	reachable := grid.Reachable(grid.entry)
	for idx, cell := range grid.cells {
		c := grid.coord(idx)
		if !cell.IsIcon() && !reachable.Contains(c) {
			return &GenerationError{Err: ErrUnreachableCell, Coord: c}
		}
	}
	return nil
}
