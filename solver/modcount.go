package solver

import (
	"github.com/drencher/drench/board"
	"github.com/drencher/drench/color"
)

// ModCount cycles through the colors in tag order until the board is
// uniform. Every full cycle strictly grows the owned region, so it
// always finishes well inside the budget; the budget is only a
// termination guard.
type ModCount struct{}

// PrintsOutput implements Solver.
func (ModCount) PrintsOutput() bool { return false }

// Solve implements Solver.
func (ModCount) Solve(b *board.Board) (Solution, error) {
	b = b.Copy()
	var sol Solution
	for i := 0; !b.IsDrenched() && i < MaxMoves; i++ {
		c := color.Color(i % color.Num)
		sol = append(sol, c)
		b.Drench(c)
	}
	if !b.IsDrenched() {
		return sol, ErrOutOfMoves
	}
	return sol, nil
}
