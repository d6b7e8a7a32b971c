package chunktest

import (
	"github.com/pkg/errors"

	"github.com/brightforge/voxelchunk/chunk"
	"github.com/brightforge/voxelchunk/point"
)

// Diff compares a and b cell by cell over the full lattice and returns a
// descriptive error naming the first point at which they disagree, or nil
// if every cell matches. Two chunks can differ in span count and shape and
// still Diff equal to nil; Diff is what chunk.Checksum deliberately is not.
func Diff(a, b *chunk.Chunk) error {
	for x := 0; x <= point.Max; x++ {
		for y := 0; y <= point.Max; y++ {
			for z := 0; z <= point.Max; z++ {
				p := point.New(x, y, z)
				av, bv := a.GetBlock(p), b.GetBlock(p)
				if av != bv {
					return errors.Errorf("chunktest: mismatch at %v: a has block %d, b has block %d", p, av, bv)
				}
			}
		}
	}
	return nil
}
