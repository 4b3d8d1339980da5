package maze

import "fmt"

// Cell holds the four walls of a grid square plus the flags used while
// carving. Cells are only mutated by the Grid that owns them.
type Cell struct {
	walls [4]bool

	visited, dead bool
	exit          bool
	afterExit     bool
	icon          bool
}

func newCell() Cell {
	return Cell{walls: [4]bool{true, true, true, true}}
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%s)", string(cell.Hex()))
}

// Wall reports whether the wall facing dir is closed.
func (cell Cell) Wall(dir Direction) bool {
	return cell.walls[dir]
}

func (cell *Cell) setWall(dir Direction, closed bool) {
	cell.walls[dir] = closed
}

// WallsMatching returns, in canonical order, the directions whose wall is in
// the given state.
func (cell Cell) WallsMatching(closed bool) []Direction {
	dirs := make([]Direction, 0, 4)
	for _, dir := range Directions {
		if cell.walls[dir] == closed {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// IsIsolated reports whether all four walls are closed.
func (cell Cell) IsIsolated() bool {
	return cell.walls == [4]bool{true, true, true, true}
}

// Bitmask encodes the closed walls as N=1, E=2, S=4, W=8.
func (cell Cell) Bitmask() uint8 {
	var mask uint8
	for _, dir := range Directions {
		if cell.walls[dir] {
			mask |= 1 << uint(dir)
		}
	}
	return mask
}

// Hex is the bitmask as a single upper case hex digit.
func (cell Cell) Hex() byte {
	return hexDigits[cell.Bitmask()]
}

func (cell Cell) IsVisited() bool {
	return cell.visited
}

func (cell Cell) IsDead() bool {
	return cell.dead
}

func (cell Cell) IsExit() bool {
	return cell.exit
}

func (cell Cell) IsAfterExit() bool {
	return cell.afterExit
}

func (cell Cell) IsIcon() bool {
	return cell.icon
}

func (cell *Cell) markVisited() {
	cell.visited = true
}

// markDead also marks the cell visited.
func (cell *Cell) markDead() {
	cell.markVisited()
	cell.dead = true
}

// markIcon also marks the cell dead.
func (cell *Cell) markIcon() {
	cell.markDead()
	cell.icon = true
}

func (cell *Cell) markExit() {
	cell.exit = true
}

func (cell *Cell) markAfterExit() {
	cell.afterExit = true
}
