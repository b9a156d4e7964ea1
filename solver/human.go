package solver

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/drencher/drench/board"
	"github.com/drencher/drench/color"
)

// Human asks the player for every move on the terminal and re-renders
// the board after each one. Quitting before the board is uniform is the
// recoverable ErrAbandoned failure, with the moves so far as the
// partial solution.
type Human struct{}

// PrintsOutput implements Solver. The interactive player renders every
// step itself.
func (Human) PrintsOutput() bool { return true }

// Solve implements Solver.
func (Human) Solve(b *board.Board) (Solution, error) {
	b = b.Copy()

	rl, err := readline.New("drench> ")
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	defer rl.Close()

	fmt.Print(b)
	printLegend()

	var sol Solution
	for !b.IsDrenched() {
		line, err := rl.Readline()
		if err != nil {
			// Ctrl-C / Ctrl-D
			return sol, ErrAbandoned
		}
		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case "q", "quit", "exit":
			return sol, ErrAbandoned
		}

		c, err := parseMove(input)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if c == b.Get(0, 0) {
			fmt.Println("already that color")
			continue
		}

		sol = append(sol, c)
		b.Drench(c)
		fmt.Print(b)
	}
	fmt.Printf("Drenched in %d moves!\n", len(sol))
	return sol, nil
}

func printLegend() {
	fmt.Print("pick a color:")
	for i, c := range color.All {
		fmt.Printf(" %d/%c=%s", i+1, c.Letter(), c)
	}
	fmt.Println(" (q to give up)")
}

func parseMove(input string) (color.Color, error) {
	if len(input) == 1 {
		if input[0] >= '1' && input[0] <= '6' {
			return color.Color(input[0] - '1'), nil
		}
		return color.FromLetter(input[0])
	}
	return 0, fmt.Errorf("can't read move %q", input)
}
