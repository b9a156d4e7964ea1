package islands

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/drencher/drench/board"
	"github.com/drencher/drench/color"
)

func TestUniformBoardIsOneNode(t *testing.T) {
	is := is.New(t)
	for _, size := range []int{1, 2, 7, 16} {
		g, err := FromBoard(board.New(size))
		is.NoErr(err)
		is.Equal(len(g.Nodes), 1)
		is.True(g.Nodes[0].Adjacent.Empty())
	}
}

func TestFourDistinctColorsFormFourCycle(t *testing.T) {
	is := is.New(t)
	b, err := board.FromRows([]string{"RG", "BY"})
	is.NoErr(err)

	g, err := FromBoard(b)
	is.NoErr(err)
	is.Equal(len(g.Nodes), 4)

	for id, n := range g.Nodes {
		is.Equal(n.Adjacent.Len(), 2)            // each node touches exactly two others
		is.True(!n.Adjacent.Contains(uint8(id))) // and never itself
	}

	// R and Y never touch, neither do G and B
	var rID, yID, gID, bID uint8
	for id, n := range g.Nodes {
		switch n.Color {
		case color.Red:
			rID = uint8(id)
		case color.Yellow:
			yID = uint8(id)
		case color.Green:
			gID = uint8(id)
		case color.Blue:
			bID = uint8(id)
		}
	}
	is.True(!g.Nodes[rID].Adjacent.Contains(yID))
	is.True(!g.Nodes[gID].Adjacent.Contains(bID))
}

func TestNodeZeroIsAnchorRegion(t *testing.T) {
	is := is.New(t)
	b, err := board.FromRows([]string{
		"GGY",
		"GYY",
		"YYR",
	})
	is.NoErr(err)

	g, err := FromBoard(b)
	is.NoErr(err)
	is.Equal(len(g.Nodes), 3)
	is.Equal(g.Nodes[0].Color, color.Green)

	// G-Y and Y-R edges, no G-R edge
	is.True(g.Nodes[0].Adjacent.Contains(1))
	is.True(g.Nodes[1].Adjacent.Contains(0))
	is.True(g.Nodes[1].Adjacent.Contains(2))
	is.True(!g.Nodes[0].Adjacent.Contains(2))
}

func TestAdjacencyIsSymmetric(t *testing.T) {
	is := is.New(t)
	b := board.Deterministic(12, 99)
	g, err := FromBoard(b)
	is.NoErr(err)

	for id, n := range g.Nodes {
		it := n.Adjacent.Iter()
		for other, ok := it.Next(); ok; other, ok = it.Next() {
			is.True(g.Nodes[other].Adjacent.Contains(uint8(id)))
		}
	}
}

func checkerboard(size int) *board.Board {
	rows := make([]string, size)
	for r := 0; r < size; r++ {
		var sb strings.Builder
		for c := 0; c < size; c++ {
			if (r+c)%2 == 0 {
				sb.WriteByte('R')
			} else {
				sb.WriteByte('G')
			}
		}
		rows[r] = sb.String()
	}
	b, err := board.FromRows(rows)
	if err != nil {
		panic(err)
	}
	return b
}

func TestCheckerboardAtCapacity(t *testing.T) {
	is := is.New(t)
	// 16x16 checkerboard reduces to exactly 256 singleton islands,
	// right at the capacity limit.
	g, err := FromBoard(checkerboard(16))
	is.NoErr(err)
	is.Equal(len(g.Nodes), 256)
}

func TestTooManyIslands(t *testing.T) {
	is := is.New(t)
	_, err := FromBoard(checkerboard(17))
	is.True(errors.Is(err, ErrTooManyIslands))
}

func TestNodesWithColor(t *testing.T) {
	is := is.New(t)
	b, err := board.FromRows([]string{"RG", "GR"})
	is.NoErr(err)
	g, err := FromBoard(b)
	is.NoErr(err)

	byColor := g.NodesWithColor()
	is.Equal(byColor[color.Red].Len(), 2)
	is.Equal(byColor[color.Green].Len(), 2)
	is.Equal(byColor[color.Blue].Len(), 0)

	total := 0
	for _, s := range byColor {
		total += s.Len()
	}
	is.Equal(total, len(g.Nodes))
}
