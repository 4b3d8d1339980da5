package maze

import "fmt"

type Direction int

// Canonical direction order. It is also the bit order of the wall mask.
const (
	North Direction = iota
	East
	South
	West
)

var Directions = []Direction{North, East, South, West}

var directionNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

func (dir Direction) String() string {
	if dir < North || dir > West {
		return fmt.Sprintf("Direction(%d)", int(dir))
	}
	return directionNames[dir]
}

// Letter is the single-letter form used in the serialized path.
func (dir Direction) Letter() byte {
	return dir.String()[0]
}

func (dir Direction) Opposite() Direction {
	return (dir + 2) % 4
}

// Delta returns the column and row offsets of a step in this direction.
func (dir Direction) Delta() (dx, dy int) {
	switch dir {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Region tells whether carving has already passed through the exit cell.
type Region int

const (
	BeforeExit Region = iota
	AfterExit
)

func (region Region) String() string {
	if region == AfterExit {
		return "after-exit"
	}
	return "before-exit"
}

// Coord addresses a cell: X is the column, Y the row.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

func (c Coord) Step(dir Direction) Coord {
	dx, dy := dir.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// offMarkers are the icon glyphs treated as background.
const offMarkers = "0 "

const hexDigits = "0123456789ABCDEF"
