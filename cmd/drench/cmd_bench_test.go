package main

import (
	"testing"

	"github.com/matryer/is"
)

// Flag registration writes the default into the bound variable, and the
// per-file init functions all run before tests do. The bench defaults
// must survive play registering its own flags afterwards.
func TestBenchDefaultsSurvivePlayRegistration(t *testing.T) {
	is := is.New(t)
	is.Equal(benchBoard, "seeded")
	is.Equal(benchPlayer, "exact")
	is.Equal(benchGames, 100)

	// play's flags default to empty so runPlay falls back to config
	is.Equal(flagBoard, "")
	is.Equal(flagPlayer, "")

	is.Equal(benchCommand.Flags().Lookup("board").DefValue, "seeded")
	is.Equal(benchCommand.Flags().Lookup("player").DefValue, "exact")
}

func TestBenchFlagsAreIndependentOfPlayFlags(t *testing.T) {
	is := is.New(t)
	is.NoErr(playCommand.Flags().Set("board", "uniform"))
	defer playCommand.Flags().Set("board", "")

	is.Equal(flagBoard, "uniform")
	is.Equal(benchBoard, "seeded")
}
