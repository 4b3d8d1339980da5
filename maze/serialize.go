package maze

import (
	"io"
	"strings"
)

// String renders the grid in its text dump format: one row of hex wall masks
// per grid row, a blank line, the entry, the exit and the path letters.
func (grid *Grid) String() string {
	var sb strings.Builder
	sb.Grow((grid.width + 1) * (grid.height + 4))

	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			sb.WriteByte(grid.cells[y*grid.width+x].Hex())
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	sb.WriteString(grid.entry.String())
	sb.WriteByte('\n')
	sb.WriteString(grid.exit.String())
	sb.WriteByte('\n')
	sb.WriteString(PathString(grid.path))
	sb.WriteByte('\n')

	return sb.String()
}

func (grid *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, grid.String())
	return int64(n), err
}
