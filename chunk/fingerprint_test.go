package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightforge/voxelchunk/chunk"
	"github.com/brightforge/voxelchunk/point"
)

func TestChecksumStableAcrossEquivalentSpanOrder(t *testing.T) {
	a := chunk.New()
	a.SetBlockSpan(point.New(0, 0, 0), point.New(3, 3, 3), 1)
	a.SetBlockSpan(point.New(10, 10, 10), point.New(12, 12, 12), 2)

	b := chunk.New()
	b.SetBlockSpan(point.New(10, 10, 10), point.New(12, 12, 12), 2)
	b.SetBlockSpan(point.New(0, 0, 0), point.New(3, 3, 3), 1)

	require.Equal(t, a.Checksum(), b.Checksum())
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestChecksumDiffersOnDifferentContent(t *testing.T) {
	a := chunk.New()
	a.SetBlockSpan(point.New(0, 0, 0), point.New(3, 3, 3), 1)

	b := chunk.New()
	b.SetBlockSpan(point.New(0, 0, 0), point.New(3, 3, 3), 2)

	require.NotEqual(t, a.Checksum(), b.Checksum())
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintOfEmptyChunkIsZero(t *testing.T) {
	c := chunk.New()
	require.Equal(t, uint64(0), c.Fingerprint())
}
