package gridmem_test

import (
	"testing"

	"github.com/cassaundra/gridloc/internal/gridmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_GetSetSparsity(t *testing.T) {
	var g gridmem.Grid

	assert.Equal(t, byte(0), g.Get(0, 0), "unstored cell must read 0")
	assert.Equal(t, 0, g.ChunkCount(), "empty grid allocates no chunks")

	old, err := g.Set(0, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, byte(0), old, "prior value was 0")
	assert.Equal(t, byte(7), g.Get(0, 0))
	assert.True(t, g.HasChunk(0, 0))
	assert.Equal(t, 1, g.ChunkCount())

	old, err = g.Set(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(7), old, "prior value was 7")
	assert.Equal(t, byte(0), g.Get(0, 0))
	assert.False(t, g.HasChunk(0, 0), "writing 0 must evict the now-empty chunk")
	assert.Equal(t, 0, g.ChunkCount())
}

func TestGrid_EuclideanChunking(t *testing.T) {
	var g gridmem.Grid

	_, err := g.Set(-1, -1, 42)
	require.NoError(t, err)

	assert.Equal(t, byte(42), g.Get(-1, -1), "must round-trip negative coordinates")
	assert.True(t, g.HasChunk(-1, -1))
	// chunk (-1,-1) covers cells x,y in [-8,-1]; (0,0) is a different chunk
	assert.False(t, g.HasChunk(0, 0))
}

func TestGrid_NonZeroCellsMatchStoredCells(t *testing.T) {
	var g gridmem.Grid

	cells := []struct{ x, y int }{
		{0, 0}, {1, 0}, {7, 7}, {8, 8}, {-1, -1}, {-8, 0}, {100, -100},
	}
	for i, c := range cells {
		_, err := g.Set(c.x, c.y, byte(i+1))
		require.NoError(t, err)
	}

	nonZero := 0
	for _, c := range cells {
		if g.Get(c.x, c.y) != 0 {
			nonZero++
		}
	}
	assert.Equal(t, len(cells), nonZero)

	// zeroing every cell must leave no chunks behind
	for _, c := range cells {
		_, err := g.Set(c.x, c.y, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, g.ChunkCount(), "sparse grid invariant: no non-zero cells, no chunks")
}

func TestGrid_ChunkLimit(t *testing.T) {
	g := gridmem.Grid{Limit: 1}

	_, err := g.Set(0, 0, 1)
	require.NoError(t, err)

	_, err = g.Set(100, 100, 1)
	var limErr gridmem.LimitError
	require.ErrorAs(t, err, &limErr)
}
