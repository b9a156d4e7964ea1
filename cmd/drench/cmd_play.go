package main

import (
	"errors"
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/drencher/drench/board"
	"github.com/drencher/drench/solver"
)

var (
	flagSize   int
	flagBoard  string
	flagPlayer string
)

var playCommand = &cobra.Command{
	Use:   "play",
	Short: "play one game, showing the board after every move",
	RunE:  runPlay,
}

func init() {
	playCommand.Flags().IntVar(&flagSize, "size", 0, "side length of the board")
	playCommand.Flags().StringVar(&flagBoard, "board", "", "initial board: uniform, random, seeded:<id>, perm:<n>")
	playCommand.Flags().StringVar(&flagPlayer, "player", "", "player: exact, random, heuristic, modcount, human")
	mainCommand.AddCommand(playCommand)
}

func runPlay(cmd *cobra.Command, args []string) error {
	size := flagSize
	if size == 0 {
		size = cfg.Size
	}
	boardName := flagBoard
	if boardName == "" {
		boardName = cfg.Board
	}
	playerName := flagPlayer
	if playerName == "" {
		playerName = cfg.Player
	}

	b, err := board.ByName(boardName, size, 0)
	if err != nil {
		return err
	}
	s, err := solver.FromName(playerName)
	if err != nil {
		return err
	}

	sol, serr := s.Solve(b)
	if serr != nil && !errors.Is(serr, solver.ErrOutOfMoves) && !errors.Is(serr, solver.ErrAbandoned) {
		return serr
	}

	if !s.PrintsOutput() {
		replay := b.Copy()
		fmt.Print(replay)
		for _, c := range sol {
			fmt.Printf("Drenching: %s (%c)\n", c, c.Letter())
			replay.Drench(c)
			fmt.Print(replay)
		}
		fmt.Println()
	}

	if serr == nil {
		fmt.Printf("%s in %d moves\n", aurora.Green("Game was solved!"), len(sol))
	} else {
		fmt.Printf("%s (%d moves played)\n", aurora.Red("Game was NOT solved!"), len(sol))
	}
	return nil
}
