package maze

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/amazeing/rng"
	"github.com/they4kman/amazeing/util/collections"
)

// Options holds the structural parameters of one maze.
type Options struct {
	Width, Height int
	Entry, Exit   Coord

	// Perfect mazes have exactly one path between any two cells
	Perfect bool

	// Zero picks a random seed
	Seed int64

	// Optional obstacle stamped at the centre of the grid
	Icon *Icon

	// Defaults to BreadthFirst
	PathFinder PathFinder

	// Defaults to the logrus standard logger
	Logger logrus.FieldLogger
}

// PathFinder computes the route from entry to exit of a finished grid.
type PathFinder interface {
	FindPath(grid *Grid) ([]Direction, error)
}

// Grid owns the cells of a maze. Cells are stored in one slice indexed by
// y*width+x and are never handed out by pointer.
type Grid struct {
	width, height int
	cells         []Cell

	entry, exit Coord
	perfect     bool

	rand       *rng.Source
	pathFinder PathFinder
	log        logrus.FieldLogger

	generated  bool
	breaches   int
	path       []Direction
	pathCoords []Coord
	onPath     collections.Set[Coord]
}

// New validates opts and returns a grid with every wall closed, the exit
// marked and the icon placed. Invalid parameters yield a *ConstructionError.
func New(opts Options) (*Grid, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, constructionError(ErrInvalidSize, "got %dx%d", opts.Width, opts.Height)
	}

	grid := &Grid{
		width:      opts.Width,
		height:     opts.Height,
		cells:      make([]Cell, opts.Width*opts.Height),
		entry:      opts.Entry,
		exit:       opts.Exit,
		perfect:    opts.Perfect,
		pathFinder: opts.PathFinder,
		log:        opts.Logger,
	}

	if !grid.InBounds(grid.entry) {
		return nil, constructionError(ErrOutOfBounds, "entry (%s)", grid.entry)
	}
	if !grid.InBounds(grid.exit) {
		return nil, constructionError(ErrOutOfBounds, "exit (%s)", grid.exit)
	}
	if grid.entry == grid.exit {
		return nil, constructionError(ErrEntryIsExit, "both at (%s)", grid.entry)
	}

	for i := range grid.cells {
		grid.cells[i] = newCell()
	}
	grid.cell(grid.exit).markExit()

	if err := grid.placeIcon(opts.Icon); err != nil {
		return nil, err
	}

	if grid.pathFinder == nil {
		grid.pathFinder = BreadthFirst{}
	}
	if grid.log == nil {
		grid.log = logrus.StandardLogger()
	}
	grid.rand = rng.New(opts.Seed)

	return grid, nil
}

// placeIcon centres the icon, rounding the offsets to the nearest cell.
func (grid *Grid) placeIcon(icon *Icon) error {
	if icon.Empty() {
		return nil
	}
	if icon.Width() > grid.width || icon.Height() > grid.height {
		return constructionError(ErrIconTooLarge, "icon is %dx%d, grid is %dx%d",
			icon.Width(), icon.Height(), grid.width, grid.height)
	}

	originX := int(math.Round(float64(grid.width-icon.Width()) / 2))
	originY := int(math.Round(float64(grid.height-icon.Height()) / 2))

	for y := 0; y < icon.Height(); y++ {
		for x := 0; x < icon.Width(); x++ {
			if !icon.On(x, y) {
				continue
			}
			c := Coord{X: originX + x, Y: originY + y}
			if c == grid.entry || c == grid.exit {
				return constructionError(ErrIconOverlap, "at (%s)", c)
			}
			grid.cell(c).markIcon()
		}
	}
	return nil
}

func (grid *Grid) Width() int {
	return grid.width
}

func (grid *Grid) Height() int {
	return grid.height
}

func (grid *Grid) NumCells() int {
	return grid.width * grid.height
}

func (grid *Grid) Entry() Coord {
	return grid.entry
}

func (grid *Grid) Exit() Coord {
	return grid.exit
}

func (grid *Grid) Perfect() bool {
	return grid.perfect
}

// Seed returns the seed actually used, including one drawn at random.
func (grid *Grid) Seed() int64 {
	return grid.rand.Seed()
}

// Breaches returns how many distinct walls the imperfect pass opened.
func (grid *Grid) Breaches() int {
	return grid.breaches
}

func (grid *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < grid.width && c.Y < grid.height
}

func (grid *Grid) index(c Coord) int {
	return c.Y*grid.width + c.X
}

func (grid *Grid) coord(idx int) Coord {
	return Coord{X: idx % grid.width, Y: idx / grid.width}
}

func (grid *Grid) cell(c Coord) *Cell {
	return &grid.cells[grid.index(c)]
}

// Cell returns a copy of the cell at c.
func (grid *Grid) Cell(c Coord) (Cell, bool) {
	if !grid.InBounds(c) {
		return Cell{}, false
	}
	return grid.cells[grid.index(c)], true
}

// CellAt is Cell without the bounds report; out of range yields a zero Cell.
func (grid *Grid) CellAt(x, y int) Cell {
	cell, _ := grid.Cell(Coord{X: x, Y: y})
	return cell
}

// Neighbor returns the coordinate one step from c, if it lies in the grid.
func (grid *Grid) Neighbor(c Coord, dir Direction) (Coord, bool) {
	next := c.Step(dir)
	return next, grid.InBounds(next)
}

// OpenDirections lists, in canonical order, the directions from c through an
// open wall.
func (grid *Grid) OpenDirections(c Coord) []Direction {
	cell, ok := grid.Cell(c)
	if !ok {
		return nil
	}
	return cell.WallsMatching(false)
}

// directionTo resolves the direction from a to an orthogonal neighbour b.
func directionTo(a, b Coord) (Direction, bool) {
	for _, dir := range Directions {
		if a.Step(dir) == b {
			return dir, true
		}
	}
	return 0, false
}

// openWall opens the wall shared by two adjacent cells. It is the only place
// walls are changed, so both sides always agree.
func (grid *Grid) openWall(a, b Coord) {
	dir, ok := directionTo(a, b)
	if !ok || !grid.InBounds(a) || !grid.InBounds(b) {
		panic("maze: openWall on cells that are not neighbours")
	}
	grid.cell(a).setWall(dir, false)
	grid.cell(b).setWall(dir.Opposite(), false)
}
