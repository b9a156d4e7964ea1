// Package islands compresses a board into its island graph: one node
// per maximal same-colored region, one undirected edge per pair of
// adjacent regions. The graph keeps only color and adjacency, which is
// everything the search engine needs.
package islands

import (
	"errors"
	"fmt"

	"github.com/drencher/drench/bitset"
	"github.com/drencher/drench/board"
	"github.com/drencher/drench/color"
)

// MaxIslands is the hard capacity of the graph. Node ids are single
// bytes so that they fit the bitset domain; any board of size 16 or
// less stays within it.
const MaxIslands = bitset.Capacity

// ErrTooManyIslands reports a board whose reduced graph would not fit
// byte-sized node ids. It is detected before any bitset write happens.
var ErrTooManyIslands = errors.New("board reduces to more than 256 islands")

// Node is one maximal same-colored region.
type Node struct {
	Color    color.Color
	Adjacent bitset.Set
}

// Graph is the island graph of one board snapshot. It is built fresh
// per solve call and read-only afterwards. Node 0 is always the region
// containing the anchor cell (0, 0).
type Graph struct {
	Nodes []Node
}

// NodesWithColor returns, per color, the set of node ids carrying it.
func (g *Graph) NodesWithColor() [color.Num]bitset.Set {
	var out [color.Num]bitset.Set
	for id, n := range g.Nodes {
		out[n.Color].Insert(uint8(id))
	}
	return out
}

// FromBoard builds the island graph of b.
//
// Cells are scanned in row-major order; each unvisited cell is flood
// filled to find its whole island plus the directly bordering cells.
// Edges are only added towards islands that already have a node: every
// later island adds its own edge back, so each adjacent pair ends up
// connected exactly once regardless of discovery order.
func FromBoard(b *board.Board) (*Graph, error) {
	size := b.Size()
	cellNode := make([]int16, size*size)
	for i := range cellNode {
		cellNode[i] = -1
	}

	g := &Graph{}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if cellNode[row*size+col] >= 0 {
				continue
			}

			island, adjacent := islandAt(b, row, col)

			newID := len(g.Nodes)
			if newID >= MaxIslands {
				return nil, fmt.Errorf("%w (size %d)", ErrTooManyIslands, size)
			}
			g.Nodes = append(g.Nodes, Node{Color: b.Get(row, col)})

			for _, pos := range island {
				cellNode[pos.Row*size+pos.Col] = int16(newID)
			}
			for _, pos := range adjacent {
				if id := cellNode[pos.Row*size+pos.Col]; id >= 0 {
					g.Nodes[id].Adjacent.Insert(uint8(newID))
					g.Nodes[newID].Adjacent.Insert(uint8(id))
				}
			}
		}
	}
	return g, nil
}

// islandAt flood-fills the island containing (row, col) and also
// collects the directly bordering cells. Only cells touching this
// island are reported for bigger neighboring islands, which is all the
// edge insertion needs.
func islandAt(b *board.Board, row, col int) (island, adjacent []board.Coord) {
	size := b.Size()
	start := b.Get(row, col)

	visited := make([]bool, size*size)
	visited[row*size+col] = true
	stack := []board.Coord{{Row: row, Col: col}}

	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.Get(pos.Row, pos.Col) != start {
			adjacent = append(adjacent, pos)
			continue
		}
		island = append(island, pos)
		for _, n := range [4]board.Coord{
			{Row: pos.Row - 1, Col: pos.Col},
			{Row: pos.Row + 1, Col: pos.Col},
			{Row: pos.Row, Col: pos.Col - 1},
			{Row: pos.Row, Col: pos.Col + 1},
		} {
			if n.Row < 0 || n.Row >= size || n.Col < 0 || n.Col >= size {
				continue
			}
			idx := n.Row*size + n.Col
			if !visited[idx] {
				visited[idx] = true
				stack = append(stack, n)
			}
		}
	}
	return island, adjacent
}
