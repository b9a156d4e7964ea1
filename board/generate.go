package board

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/frand"

	"github.com/drencher/drench/color"
)

// Random returns a board filled from the shared process RNG.
func Random(size int) *Board {
	return withRNG(size, frand.New())
}

// Permutation returns the nth of the 6^(size²) possible boards: cell i
// (row-major) gets the ith base-6 digit of n. There are far more
// permutations than uint64 can index from size 5 on; the low digits
// still enumerate deterministically, which is what the exhaustive tests
// rely on.
func Permutation(size int, n uint64) *Board {
	b := New(size)
	for i := range b.cells {
		b.cells[i] = color.Color(n % color.Num)
		n /= color.Num
	}
	return b
}

// Deterministic returns a reproducible pseudo-random board for a 32-bit
// id. Equal ids always yield equal boards, across processes.
func Deterministic(size int, id uint32) *Board {
	var seed [32]byte
	binary.LittleEndian.PutUint32(seed[0:], id)
	binary.LittleEndian.PutUint32(seed[4:], id+42)
	binary.LittleEndian.PutUint32(seed[8:], id+27)
	binary.LittleEndian.PutUint32(seed[12:], id+1337)
	return withRNG(size, frand.NewCustom(seed[:], 1024, 12))
}

func withRNG(size int, rng *frand.RNG) *Board {
	b := New(size)
	for i := range b.cells {
		b.cells[i] = color.Color(rng.Intn(color.Num))
	}
	return b
}

// ByName returns a board built by the named generation strategy:
// "uniform", "random", "seeded" (uses the id argument), "seeded:<id>",
// or "perm:<n>". Unknown names are an error for the caller to report.
func ByName(name string, size int, id uint32) (*Board, error) {
	switch {
	case name == "uniform":
		return New(size), nil
	case name == "random":
		return Random(size), nil
	case name == "seeded":
		return Deterministic(size, id), nil
	case strings.HasPrefix(name, "seeded:"):
		n, err := strconv.ParseUint(strings.TrimPrefix(name, "seeded:"), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad seeded board id: %w", err)
		}
		return Deterministic(size, uint32(n)), nil
	case strings.HasPrefix(name, "perm:"):
		n, err := strconv.ParseUint(strings.TrimPrefix(name, "perm:"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad permutation index: %w", err)
		}
		return Permutation(size, n), nil
	default:
		return nil, fmt.Errorf("unknown board generator %q", name)
	}
}
