package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightforge/voxelchunk/chunk"
	"github.com/brightforge/voxelchunk/point"
	"github.com/brightforge/voxelchunk/span"
)

func TestEmptyChunkHasNoQuads(t *testing.T) {
	c := chunk.New()
	require.Empty(t, c.GenerateQuads())
}

func TestWholeChunkFillProducesSixQuads(t *testing.T) {
	c := chunk.New()
	c.SetBlockSpan(point.New(0, 0, 0), point.New(15, 15, 15), 1)
	quads := c.GenerateQuads()
	require.Len(t, quads, 6)

	seen := map[span.Face]bool{}
	for _, q := range quads {
		seen[q.Face] = true
	}
	require.Len(t, seen, 6)
}

func TestCarvingInteriorCellExposesTwentyFourQuads(t *testing.T) {
	c := chunk.New()
	c.SetBlockSpan(point.New(0, 0, 0), point.New(15, 15, 15), 1)
	c.RemoveBlock(point.New(7, 7, 7))
	require.Len(t, c.GenerateQuads(), 24)
}

func TestTwoAdjacentDifferentIDSpansShareAHiddenSeam(t *testing.T) {
	c := chunk.New()
	c.SetBlockSpan(point.New(0, 0, 0), point.New(7, 15, 15), 1)
	c.SetBlockSpan(point.New(8, 0, 0), point.New(15, 15, 15), 2)

	eastFacesOnLeft := 0
	westFacesOnRight := 0
	for _, q := range c.GenerateQuads() {
		if q.ID == 1 && q.Face == span.East {
			eastFacesOnLeft++
		}
		if q.ID == 2 && q.Face == span.West {
			westFacesOnRight++
		}
	}
	require.Zero(t, eastFacesOnLeft)
	require.Zero(t, westFacesOnRight)
}

func TestIsolatedSingleCellHasSixVisibleFaces(t *testing.T) {
	c := chunk.New()
	c.SetBlock(point.New(8, 8, 8), 5)
	require.Len(t, c.GenerateQuads(), 6)
}
