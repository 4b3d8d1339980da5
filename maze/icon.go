package maze

import (
	"io"
	"io/ioutil"
	"strings"
)

// Icon is a rectangular bitmap stamped at the centre of the maze. Its
// foreground pixels become impassable cells.
type Icon struct {
	width, height int
	pixels        []bool
}

// DefaultIcon is the "42" logo.
var DefaultIcon = MustParseIcon(`
1000111
1000001
1110111
0010100
0010111
`)

// ParseIcon reads an icon drawn with one glyph per pixel. Blank lines are
// ignored; '0' and ' ' are background, anything else is foreground.
func ParseIcon(text string) (*Icon, error) {
	rows := make([]string, 0)
	for _, row := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if row != "" {
			rows = append(rows, row)
		}
	}

	icon := &Icon{height: len(rows)}
	if icon.height == 0 {
		return icon, nil
	}

	icon.width = len([]rune(rows[0]))
	icon.pixels = make([]bool, 0, icon.width*icon.height)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != icon.width {
			return nil, constructionError(ErrIconMalformed, "row %d has %d pixels, expected %d", y, len(runes), icon.width)
		}
		for _, r := range runes {
			icon.pixels = append(icon.pixels, !strings.ContainsRune(offMarkers, r))
		}
	}
	return icon, nil
}

func ReadIcon(r io.Reader) (*Icon, error) {
	text, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseIcon(string(text))
}

func MustParseIcon(text string) *Icon {
	icon, err := ParseIcon(text)
	if err != nil {
		panic(err)
	}
	return icon
}

func (icon *Icon) Width() int {
	return icon.width
}

func (icon *Icon) Height() int {
	return icon.height
}

func (icon *Icon) Empty() bool {
	return icon == nil || icon.width == 0 || icon.height == 0
}

// On reports whether the pixel at (x, y) is foreground.
func (icon *Icon) On(x, y int) bool {
	return icon.pixels[y*icon.width+x]
}
