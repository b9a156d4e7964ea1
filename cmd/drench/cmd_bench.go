package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/profile"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/drencher/drench/bench"
)

// bench binds its own flag variables; sharing them with play would let
// whichever init ran last clobber the other command's defaults.
var (
	benchSize    int
	benchBoard   string
	benchPlayer  string
	benchGames   int
	benchThreads int
	benchProfile bool
)

var benchCommand = &cobra.Command{
	Use:   "bench",
	Short: "benchmark a player over many deterministic boards",
	Long: `Plays the given player over a series of boards and measures move
counts and solve times. The default "seeded" board generator derives
board i from seed i, so runs are reproducible regardless of the thread
count.`,
	RunE: runBench,
}

func init() {
	benchCommand.Flags().IntVar(&benchSize, "size", 0, "side length of the boards")
	benchCommand.Flags().StringVar(&benchBoard, "board", "seeded", "board generator")
	benchCommand.Flags().StringVar(&benchPlayer, "player", "exact", "player to benchmark")
	benchCommand.Flags().IntVar(&benchGames, "count", 100, "number of games to play")
	benchCommand.Flags().IntVar(&benchThreads, "threads", 0, "worker count, 0 = one per CPU")
	benchCommand.Flags().BoolVar(&benchProfile, "profile", false, "write a CPU profile of the run")
	mainCommand.AddCommand(benchCommand)
}

func runBench(cmd *cobra.Command, args []string) error {
	size := benchSize
	if size == 0 {
		size = cfg.Size
	}
	threads := benchThreads
	if threads == 0 {
		threads = cfg.Threads
	}

	if benchProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	res, err := bench.Run(cmd.Context(), bench.Config{
		Generator: benchBoard,
		Size:      size,
		Player:    benchPlayer,
		Games:     benchGames,
		Threads:   threads,
	})
	if err != nil {
		return err
	}
	printBenchSummary(res)
	return nil
}

func printBenchSummary(res *bench.Result) {
	fmt.Printf("\n%s\n", aurora.Bold("----- Benchmark done ------------"))
	fmt.Printf("+++ Time elapsed: %s (avg: %s, min: %s, max: %s)\n",
		aurora.Yellow(fmtSeconds(res.SolveTime.Sum())),
		aurora.Blue(fmtSeconds(res.SolveTime.Mean())),
		aurora.Blue(res.FastestTime().Round(time.Microsecond)),
		aurora.Blue(res.SlowestTime().Round(time.Microsecond)),
	)
	fmt.Printf("+++ Number of moves: %v (%.2f on average)\n",
		aurora.Yellow(int(lo.Sum(res.MoveCounts))),
		aurora.Blue(res.Moves.Mean()),
	)
	if res.Failures > 0 {
		fmt.Printf("+++ Unsolved games: %v of %v\n",
			aurora.Red(res.Failures), res.Games)
	}

	fmt.Println("\nMove count distribution:")
	hist := histogram.Hist(9, res.MoveCounts)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		fmt.Println(err)
	}

	if res.SlowestBoard != nil {
		fmt.Printf("\nSlowest board (%v, solved with %v moves):\n%s",
			aurora.Blue(res.SlowestTime().Round(time.Microsecond)),
			aurora.Blue(res.SlowestMoves), res.SlowestBoard)
		fmt.Printf("\nFastest board (%v, solved with %v moves):\n%s",
			aurora.Blue(res.FastestTime().Round(time.Microsecond)),
			aurora.Blue(res.FastestMoves), res.FastestBoard)
	}
}

func fmtSeconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond).String()
}
