package solver

import (
	"lukechampine.com/frand"

	"github.com/drencher/drench/board"
	"github.com/drencher/drench/color"
)

// Random plays uniformly random colors until the board is uniform or
// the move budget runs out.
type Random struct{}

// PrintsOutput implements Solver.
func (Random) PrintsOutput() bool { return false }

// Solve implements Solver.
func (Random) Solve(b *board.Board) (Solution, error) {
	b = b.Copy()
	var sol Solution
	for !b.IsDrenched() && len(sol) < MaxMoves {
		c := color.Color(frand.Intn(color.Num))
		sol = append(sol, c)
		b.Drench(c)
	}
	if !b.IsDrenched() {
		return sol, ErrOutOfMoves
	}
	return sol, nil
}
