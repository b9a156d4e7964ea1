// Package color defines the six cell colors of the drench board.
package color

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

// Color is one of the six cell colors, identified by a tag in [0, Num).
// It is a plain value type.
type Color uint8

const (
	Red Color = iota
	Green
	Yellow
	Blue
	Magenta
	Cyan
)

// Num is the number of distinct colors.
const Num = 6

// All lists every color in tag order.
var All = [Num]Color{Red, Green, Yellow, Blue, Magenta, Cyan}

var letters = [Num]byte{'R', 'G', 'Y', 'B', 'M', 'C'}

var backgrounds = [Num]func(interface{}) aurora.Value{
	aurora.BgRed,
	aurora.BgGreen,
	aurora.BgYellow,
	aurora.BgBlue,
	aurora.BgMagenta,
	aurora.BgCyan,
}

// FromLetter parses the single-letter form (as produced by Letter).
func FromLetter(b byte) (Color, error) {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	for i, l := range letters {
		if l == b {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("no color with letter %q", string(b))
}

// Valid reports whether the tag is in range.
func (c Color) Valid() bool {
	return c < Num
}

// Letter returns the single-letter form used in logs and compact board
// dumps.
func (c Color) Letter() byte {
	if !c.Valid() {
		panic(fmt.Sprintf("color tag %d out of range", c))
	}
	return letters[c]
}

// Name returns the lowercase color name.
func (c Color) Name() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	}
	return "invalid"
}

// String renders the color as two background-colored blank cells, the
// same way a board cell is displayed.
func (c Color) String() string {
	if !c.Valid() {
		return "??"
	}
	return backgrounds[c]("  ").String()
}
