package chunk

import (
	"github.com/brightforge/voxelchunk/point"
	"github.com/brightforge/voxelchunk/span"
)

// SetBlockSpan is the chunk's canonical write:
//
//  1. Build the writer W = span(id, start, end).
//  2. Split pass: snapshot the current spans; any span intersecting W is
//     removed and replaced with the cuboids from its Split(W). Freshly
//     appended remainders cannot intersect W by construction, so this pass
//     never needs to revisit them.
//  3. If id == 0, the write is a pure erase: return without inserting W.
//  4. Insert W.
//  5. Merge pass: repeatedly find any span N != W with W.CanMerge(N),
//     merge N into W, remove N, and rescan, until no candidate remains.
func (c *Chunk) SetBlockSpan(start, end point.Point, id uint16) {
	checkRange(start, end)
	w := span.New(id, start, end)

	next := make([]span.Span, 0, len(c.spans))
	for _, s := range c.spans {
		if s.Intersects(w) {
			next = append(next, s.Split(w)...)
		} else {
			next = append(next, s)
		}
	}
	c.spans = next

	if id == 0 {
		return
	}

	for {
		idx := -1
		for i, n := range c.spans {
			if w.CanMerge(n) {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		w.Merge(c.spans[idx])
		c.spans = append(c.spans[:idx], c.spans[idx+1:]...)
	}

	c.spans = append(c.spans, w)
}
