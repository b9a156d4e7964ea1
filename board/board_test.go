package board

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/drencher/drench/color"
)

func TestNewIsUniform(t *testing.T) {
	is := is.New(t)
	b := New(5)
	is.Equal(b.Size(), 5)
	is.True(b.IsDrenched())
}

func TestFromRowsCompactRoundTrip(t *testing.T) {
	is := is.New(t)
	b, err := FromRows([]string{"RGB", "YMC", "RRR"})
	is.NoErr(err)
	is.Equal(b.Compact(), "RGB\nYMC\nRRR\n")
	is.Equal(b.Get(1, 2), color.Cyan)
}

func TestFromRowsBadInput(t *testing.T) {
	is := is.New(t)
	_, err := FromRows([]string{"RG", "R"})
	is.True(err != nil)
	_, err = FromRows([]string{"RX"})
	is.True(err != nil)
}

func TestOutOfRangePanics(t *testing.T) {
	b := New(3)
	assert.Panics(t, func() { b.Get(3, 0) })
	assert.Panics(t, func() { b.Get(0, -1) })
	assert.Panics(t, func() { b.Set(0, 3, color.Red) })
}

func TestDrenchMergesNewNeighbors(t *testing.T) {
	is := is.New(t)
	b, err := FromRows([]string{
		"RGB",
		"GGB",
		"BBB",
	})
	is.NoErr(err)

	// The anchor region is just the R cell. Drenching green must merge
	// it with the bordering green region, but not the blues.
	b.Drench(color.Green)
	is.Equal(b.Compact(), "GGB\nGGB\nBBB\n")

	b.Drench(color.Blue)
	is.True(b.IsDrenched())
}

func TestDrenchSameColorIsNoop(t *testing.T) {
	is := is.New(t)
	b, err := FromRows([]string{"RG", "GR"})
	is.NoErr(err)
	b.Drench(color.Red)
	is.Equal(b.Compact(), "RG\nGR\n")
}

func TestFieldCoords(t *testing.T) {
	is := is.New(t)
	b, err := FromRows([]string{
		"RRG",
		"RGG",
		"GGY",
	})
	is.NoErr(err)

	field, border := b.FieldCoords()
	is.Equal(len(field), 3) // the three R cells

	inField := map[Coord]bool{}
	for _, pos := range field {
		inField[pos] = true
		is.Equal(b.Get(pos.Row, pos.Col), color.Red)
	}
	is.True(inField[Coord{0, 0}])
	is.True(inField[Coord{0, 1}])
	is.True(inField[Coord{1, 0}])

	// the border is all green here, and disjoint from the field
	is.Equal(len(border), 3)
	for _, pos := range border {
		is.True(!inField[pos])
		is.Equal(b.Get(pos.Row, pos.Col), color.Green)
	}
}

func TestAdjacentColors(t *testing.T) {
	is := is.New(t)
	b, err := FromRows([]string{
		"RGY",
		"GYY",
		"BBB",
	})
	is.NoErr(err)

	counts := b.AdjacentColors()
	is.Equal(counts[color.Green], 2)
	is.Equal(counts[color.Yellow], 0)
	is.Equal(counts[color.Blue], 0)
}

func TestIsDrenched(t *testing.T) {
	is := is.New(t)
	b, err := FromRows([]string{"GG", "GG"})
	is.NoErr(err)
	is.True(b.IsDrenched())

	b.Set(1, 1, color.Red)
	is.True(!b.IsDrenched())
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	b, err := FromRows([]string{"RG", "GR"})
	is.NoErr(err)
	c := b.Copy()
	c.Drench(color.Green)
	is.Equal(b.Compact(), "RG\nGR\n")
	is.True(c.Get(0, 0) == color.Green)
}
