package solver

import (
	"github.com/samber/lo"

	"github.com/drencher/drench/board"
	"github.com/drencher/drench/color"
)

// Heuristic greedily drenches with whichever color covers the most
// border cells of the owned region. Fast and usually close to optimal,
// but carries no guarantee.
type Heuristic struct{}

// PrintsOutput implements Solver.
func (Heuristic) PrintsOutput() bool { return false }

// Solve implements Solver.
func (Heuristic) Solve(b *board.Board) (Solution, error) {
	b = b.Copy()
	var sol Solution
	for !b.IsDrenched() && len(sol) < MaxMoves {
		counts := b.AdjacentColors()
		best := lo.MaxBy(color.All[:], func(a, b color.Color) bool {
			return counts[a] > counts[b]
		})
		sol = append(sol, best)
		b.Drench(best)
	}
	if !b.IsDrenched() {
		return sol, ErrOutOfMoves
	}
	return sol, nil
}
