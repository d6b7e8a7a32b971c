package chunk

import (
	"github.com/grailbio/base/log"

	"github.com/brightforge/voxelchunk/point"
	"github.com/brightforge/voxelchunk/span"
)

// Chunk is an unordered collection of non-overlapping, non-air spans
// covering a 16x16x16 lattice. The zero value is an empty chunk; New
// returns a pointer to one.
type Chunk struct {
	spans []span.Span
}

// New returns an empty chunk: zero spans, every cell reads air (0).
func New() *Chunk {
	return &Chunk{}
}

// GetBlock returns the id of the span containing p, or 0 (air) if no span
// contains it. Correctness relies on the non-overlap invariant: at most
// one stored span can contain any given cell.
func (c *Chunk) GetBlock(p point.Point) uint16 {
	for _, s := range c.spans {
		if s.Contains(p) {
			return s.ID()
		}
	}
	return 0
}

// SetBlock writes id to the single cell p.
func (c *Chunk) SetBlock(p point.Point, id uint16) {
	c.SetBlockSpan(p, p, id)
}

// RemoveBlock writes air (0) to the single cell p.
func (c *Chunk) RemoveBlock(p point.Point) {
	c.SetBlockSpan(p, p, 0)
}

// RemoveBlockSpan writes air (0) over [start, end] inclusive.
func (c *Chunk) RemoveBlockSpan(start, end point.Point) {
	c.SetBlockSpan(start, end, 0)
}

// RemoveAllBlocks empties the chunk; every cell reads air afterward.
func (c *Chunk) RemoveAllBlocks() {
	c.spans = nil
}

// DebugTotalSpans returns the number of spans currently stored. It exists
// for testing and diagnostics only; the span set is not guaranteed to be
// the minimal decomposition of the chunk's contents.
func (c *Chunk) DebugTotalSpans() int {
	return len(c.spans)
}

// Clone returns an independent chunk with the same logical contents.
// Spans are re-inserted through the normal write path, so the clone's span
// set may differ in structure (count, shape) from the original even though
// every cell reads the same value.
func (c *Chunk) Clone() *Chunk {
	clone := New()
	for _, s := range c.spans {
		clone.SetBlockSpan(s.Start(), s.End(), s.ID())
	}
	return clone
}

func checkRange(start, end point.Point) {
	if start.X > end.X || start.Y > end.Y || start.Z > end.Z {
		log.Panicf("chunk: inverted write range start=%+v end=%+v", start, end)
	}
}
