// Package bench plays many solver runs across a worker pool and
// aggregates the outcomes. Each solve call owns its private board and
// graph, so games are embarrassingly parallel; the only shared state is
// the Result, behind one mutex.
package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/drencher/drench/board"
	"github.com/drencher/drench/solver"
	"github.com/drencher/drench/stats"
)

// Config describes one benchmark run.
type Config struct {
	Generator string // board generator name, see board.ByName
	Size      int    // board side length
	Player    string // solver name, see solver.FromName
	Games     int
	Threads   int // <= 0 means one per CPU
}

// Result aggregates a run. Workers append through record; once Run
// returns, the struct is quiescent and safe to read directly.
type Result struct {
	mu sync.Mutex

	Games    int
	Failures int

	Moves     stats.Statistic
	SolveTime stats.Statistic // seconds

	// MoveCounts holds one entry per game, for histogram display.
	MoveCounts []float64

	SlowestBoard *board.Board
	SlowestMoves int
	FastestBoard *board.Board
	FastestMoves int
	slowest      time.Duration
	fastest      time.Duration
}

func (r *Result) record(b *board.Board, moves int, took time.Duration, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Games++
	if failed {
		r.Failures++
	}
	r.Moves.Push(float64(moves))
	r.SolveTime.Push(took.Seconds())
	r.MoveCounts = append(r.MoveCounts, float64(moves))

	if r.SlowestBoard == nil || took > r.slowest {
		r.slowest = took
		r.SlowestBoard = b
		r.SlowestMoves = moves
	}
	if r.FastestBoard == nil || took < r.fastest {
		r.fastest = took
		r.FastestBoard = b
		r.FastestMoves = moves
	}

	if r.Games%1000 == 0 {
		log.Info().Int("games", r.Games).Msg("bench progress")
	}
}

// SlowestTime is the wall time of the slowest solve.
func (r *Result) SlowestTime() time.Duration { return r.slowest }

// FastestTime is the wall time of the fastest solve.
func (r *Result) FastestTime() time.Duration { return r.fastest }

// Run plays cfg.Games games across a worker pool and returns the
// aggregate. Game i uses i as the board generator id, so a
// deterministic generator gives a reproducible run regardless of thread
// count. Budget exhaustion of a baseline player is tallied as a
// failure; any other solver error aborts the run.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("bench needs a positive game count, got %d", cfg.Games)
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if cfg.Player == "human" {
		log.Warn().Msg("benchmarking with a human player...")
	}
	log.Info().Int("games", cfg.Games).Int("threads", threads).
		Str("player", cfg.Player).Str("board", cfg.Generator).
		Msg("starting benchmark")

	res := &Result{}
	jobs := make(chan uint32, threads)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < cfg.Games; i++ {
			select {
			case jobs <- uint32(i):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for t := 0; t < threads; t++ {
		g.Go(func() error {
			s, err := solver.FromName(cfg.Player)
			if err != nil {
				return err
			}
			for id := range jobs {
				b, err := board.ByName(cfg.Generator, cfg.Size, id)
				if err != nil {
					return err
				}
				start := time.Now()
				sol, serr := s.Solve(b)
				took := time.Since(start)

				if serr != nil && !errors.Is(serr, solver.ErrOutOfMoves) {
					return fmt.Errorf("game %d: %w", id, serr)
				}
				res.record(b, len(sol), took, serr != nil)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info().Int("games", res.Games).Int("failures", res.Failures).
		Msg("benchmark done")
	return res, nil
}
