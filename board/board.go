// Package board holds the canonical grid state of a drench game and its
// local mutation: flood-filling the region anchored at the top-left cell.
package board

import (
	"fmt"
	"strings"

	"github.com/drencher/drench/color"
)

// Coord addresses a single cell. Row and Col are zero-based from the
// top-left anchor cell (0, 0).
type Coord struct {
	Row, Col int
}

// Board is a square grid of colored cells, stored row-major. A board is
// exclusively owned by its caller; a solver that needs to try moves must
// work on a Copy.
type Board struct {
	size  int
	cells []color.Color
}

// New returns a uniform board of the given side length, every cell Red.
func New(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]color.Color, size*size),
	}
}

// FromRows builds a board from single-letter rows, e.g. {"RG", "GR"}.
// Every row must be exactly size letters long.
func FromRows(rows []string) (*Board, error) {
	size := len(rows)
	b := New(size)
	for row, r := range rows {
		if len(r) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", row, len(r), size)
		}
		for col := 0; col < size; col++ {
			c, err := color.FromLetter(r[col])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
			b.cells[row*size+col] = c
		}
	}
	return b, nil
}

// Size is the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Copy returns an independent clone of the board.
func (b *Board) Copy() *Board {
	cells := make([]color.Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

func (b *Board) checkBounds(row, col int) {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		panic(fmt.Sprintf("cell (%d, %d) out of range for size %d", row, col, b.size))
	}
}

// Get returns the color of the given cell. Out-of-range coordinates are
// a caller bug and panic.
func (b *Board) Get(row, col int) color.Color {
	b.checkBounds(row, col)
	return b.cells[row*b.size+col]
}

// Set overwrites the color of the given cell. Out-of-range coordinates
// are a caller bug and panic.
func (b *Board) Set(row, col int, c color.Color) {
	b.checkBounds(row, col)
	b.cells[row*b.size+col] = c
}

// Drench recolors the whole region containing the anchor cell to c. The
// connectivity is computed under the current colors first, so the region
// may newly merge with bordering regions that already have color c. A
// drench with the current anchor color is a no-op.
func (b *Board) Drench(c color.Color) {
	if c == b.cells[0] {
		return
	}
	field, _ := b.FieldCoords()
	for _, pos := range field {
		b.cells[pos.Row*b.size+pos.Col] = c
	}
}

// FieldCoords returns the cells of the region containing the anchor cell
// and, separately, the differently-colored cells directly bordering it.
// The two slices are disjoint. Visit order is unspecified.
func (b *Board) FieldCoords() (field, border []Coord) {
	start := b.cells[0]
	visited := make([]bool, len(b.cells))
	stack := []Coord{{0, 0}}
	visited[0] = true

	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.cells[pos.Row*b.size+pos.Col] != start {
			// Pushed by a field cell, so it borders the field directly.
			border = append(border, pos)
			continue
		}
		field = append(field, pos)
		for _, n := range [4]Coord{
			{pos.Row - 1, pos.Col},
			{pos.Row + 1, pos.Col},
			{pos.Row, pos.Col - 1},
			{pos.Row, pos.Col + 1},
		} {
			if n.Row < 0 || n.Row >= b.size || n.Col < 0 || n.Col >= b.size {
				continue
			}
			idx := n.Row*b.size + n.Col
			if !visited[idx] {
				visited[idx] = true
				stack = append(stack, n)
			}
		}
	}
	return field, border
}

// IsDrenched reports whether every cell has the same color.
func (b *Board) IsDrenched() bool {
	for _, c := range b.cells {
		if c != b.cells[0] {
			return false
		}
	}
	return true
}

// AdjacentColors counts, per color, how many border cells of the anchor
// region carry that color.
func (b *Board) AdjacentColors() [color.Num]int {
	var counts [color.Num]int
	_, border := b.FieldCoords()
	for _, pos := range border {
		counts[b.cells[pos.Row*b.size+pos.Col]]++
	}
	return counts
}

// String renders the board with ANSI background colors, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			sb.WriteString(b.cells[row*b.size+col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compact renders the board as letter rows, the inverse of FromRows.
func (b *Board) Compact() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			sb.WriteByte(b.cells[row*b.size+col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
