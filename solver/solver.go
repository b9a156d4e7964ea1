// Package solver contains the strategies that play the drench game: the
// optimal Exact engine and the baseline players it is measured against.
// The strategy set is closed; FromName is the single dispatch point.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/drencher/drench/board"
	"github.com/drencher/drench/color"
)

// Solution is an ordered list of drench moves; applying them in order
// to the originating board leaves it uniform. An empty Solution means
// the board already was.
type Solution []color.Color

// String formats the moves as their color letters, e.g. "RGB".
func (s Solution) String() string {
	var sb strings.Builder
	for _, c := range s {
		sb.WriteByte(c.Letter())
	}
	return sb.String()
}

// MaxMoves is the move budget of the baseline strategies. Exceeding it
// is the expected, recoverable failure mode for them; Exact never hits
// a budget.
const MaxMoves = 1000

// ErrOutOfMoves reports that a strategy exhausted its move budget
// before the board became uniform. The Solution returned alongside it
// is the best-effort partial trace.
var ErrOutOfMoves = errors.New("move budget exhausted before the board was uniform")

// ErrAbandoned reports that an interactive player quit before the board
// became uniform.
var ErrAbandoned = errors.New("game abandoned")

// Solver is the contract every strategy implements.
type Solver interface {
	// Solve computes a move list for the board. The board itself is
	// never mutated. On failure the returned Solution is the partial
	// trace played so far and err wraps ErrOutOfMoves or ErrAbandoned;
	// any other error is a configuration problem such as a board that
	// exceeds the island capacity.
	Solve(b *board.Board) (Solution, error)

	// PrintsOutput reports whether the solver already rendered every
	// game step itself, so the caller should skip the replay display.
	PrintsOutput() bool
}

// FromName resolves a strategy by name. The set is fixed: exact,
// random, heuristic, modcount, human. Unknown names are an error for
// the caller to report.
func FromName(name string) (Solver, error) {
	switch name {
	case "exact":
		return Exact{}, nil
	case "random":
		return Random{}, nil
	case "heuristic":
		return Heuristic{}, nil
	case "modcount":
		return ModCount{}, nil
	case "human":
		return Human{}, nil
	default:
		return nil, fmt.Errorf("unknown solver %q", name)
	}
}
