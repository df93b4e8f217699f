package gridloc_test

import (
	"testing"

	"github.com/cassaundra/gridloc"
	"github.com/cassaundra/gridloc/internal/gridmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceTape_NextPrev(t *testing.T) {
	tape := gridloc.NewSourceTape([]byte("ab"))

	b, ok := tape.Next()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)

	b, ok = tape.Next()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)

	_, ok = tape.Next()
	assert.False(t, ok, "must exhaust past the end")

	b, ok = tape.Prev()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)

	b, ok = tape.Prev()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)

	_, ok = tape.Prev()
	assert.False(t, ok, "prev must report false at index 0 without moving")
}

func TestGridTape_NextExhaustsOnZero(t *testing.T) {
	var grid gridmem.Grid
	_, err := grid.Set(0, 0, 'h')
	require.NoError(t, err)
	_, err = grid.Set(1, 0, 'i')
	require.NoError(t, err)

	pointer := gridloc.NewPointer()
	tape := gridloc.NewGridTape(pointer, &grid)

	b, ok := tape.Next()
	require.True(t, ok)
	assert.Equal(t, byte('h'), b)

	b, ok = tape.Next()
	require.True(t, ok)
	assert.Equal(t, byte('i'), b)

	_, ok = tape.Next()
	assert.False(t, ok, "a zero cell must signal exhaustion")
	assert.Equal(t, gridloc.Position{X: 2, Y: 0}, pointer.Position, "pointer rests on the zero cell")
}

func TestGridTape_PrevNeverExhausts(t *testing.T) {
	var grid gridmem.Grid
	pointer := gridloc.NewPointer()
	tape := gridloc.NewGridTape(pointer, &grid)

	_, ok := tape.Prev()
	assert.True(t, ok, "Prev never signals exhaustion, even walking over zero cells")
	assert.Equal(t, gridloc.Position{X: -1, Y: 0}, pointer.Position)
}
