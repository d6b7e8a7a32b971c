package chunk

import (
	"github.com/brightforge/voxelchunk/point"
	"github.com/brightforge/voxelchunk/quad"
	"github.com/brightforge/voxelchunk/span"
)

// GenerateQuads returns one quad per visible face of every stored span.
// Visibility is recomputed on demand rather than read from the spans'
// stored visibility bits, so it always reflects the chunk's current
// contents even though split and merge never touch those bits. A face is
// visible if the unit-thick slab immediately beyond it — the face shifted
// one cell along its axis, with the same extent as the face on the other
// two axes — lies entirely outside the chunk, or contains at least one air
// cell; it is hidden only when that whole slab is occupied by solid
// neighbors.
func (c *Chunk) GenerateQuads() []quad.Quad {
	var quads []quad.Quad
	for _, s := range c.spans {
		for _, f := range span.Faces {
			if c.faceVisible(s, f) {
				quads = append(quads, quad.Quad{
					ID:      s.ID(),
					Face:    f,
					Corners: faceCorners(s, f),
				})
			}
		}
	}
	return quads
}

func (c *Chunk) faceVisible(s span.Span, f span.Face) bool {
	start, end := s.Start(), s.End()
	switch f {
	case span.Up:
		return c.slabClearOrOutOfBounds(int(end.Y)+1,
			int(start.X), int(end.X), int(start.Z), int(end.Z),
			func(shift, a, b int) point.Point { return point.New(a, shift, b) })
	case span.Down:
		return c.slabClearOrOutOfBounds(int(start.Y)-1,
			int(start.X), int(end.X), int(start.Z), int(end.Z),
			func(shift, a, b int) point.Point { return point.New(a, shift, b) })
	case span.North:
		return c.slabClearOrOutOfBounds(int(end.Z)+1,
			int(start.X), int(end.X), int(start.Y), int(end.Y),
			func(shift, a, b int) point.Point { return point.New(a, b, shift) })
	case span.South:
		return c.slabClearOrOutOfBounds(int(start.Z)-1,
			int(start.X), int(end.X), int(start.Y), int(end.Y),
			func(shift, a, b int) point.Point { return point.New(a, b, shift) })
	case span.West:
		return c.slabClearOrOutOfBounds(int(start.X)-1,
			int(start.Y), int(end.Y), int(start.Z), int(end.Z),
			func(shift, a, b int) point.Point { return point.New(shift, a, b) })
	case span.East:
		return c.slabClearOrOutOfBounds(int(end.X)+1,
			int(start.Y), int(end.Y), int(start.Z), int(end.Z),
			func(shift, a, b int) point.Point { return point.New(shift, a, b) })
	default:
		return true
	}
}

// slabClearOrOutOfBounds reports whether the plane at the given shifted
// coordinate lies outside [0, point.Max] (treated as void, hence visible),
// or whether any cell in the [aMin,aMax] x [bMin,bMax] rectangle of that
// plane reads air.
func (c *Chunk) slabClearOrOutOfBounds(shift, aMin, aMax, bMin, bMax int, build func(shift, a, b int) point.Point) bool {
	if shift < 0 || shift > point.Max {
		return true
	}
	for a := aMin; a <= aMax; a++ {
		for b := bMin; b <= bMax; b++ {
			if c.GetBlock(build(shift, a, b)) == 0 {
				return true
			}
		}
	}
	return false
}

func faceCorners(s span.Span, f span.Face) [4]point.Point {
	start, end := s.Start(), s.End()
	sx, sy, sz := int(start.X), int(start.Y), int(start.Z)
	ex, ey, ez := int(end.X), int(end.Y), int(end.Z)

	switch f {
	case span.Up:
		return [4]point.Point{
			point.New(sx, ey, sz), point.New(sx, ey, ez),
			point.New(ex, ey, ez), point.New(ex, ey, sz),
		}
	case span.Down:
		return [4]point.Point{
			point.New(sx, sy, ez), point.New(sx, sy, sz),
			point.New(ex, sy, sz), point.New(ex, sy, ez),
		}
	case span.North:
		return [4]point.Point{
			point.New(ex, sy, ez), point.New(ex, ey, ez),
			point.New(sx, ey, ez), point.New(sx, sy, ez),
		}
	case span.South:
		return [4]point.Point{
			point.New(sx, sy, sz), point.New(sx, ey, sz),
			point.New(ex, ey, sz), point.New(ex, sy, sz),
		}
	case span.West:
		return [4]point.Point{
			point.New(sx, sy, sz), point.New(sx, sy, ez),
			point.New(sx, ey, ez), point.New(sx, ey, sz),
		}
	case span.East:
		return [4]point.Point{
			point.New(ex, sy, ez), point.New(ex, sy, sz),
			point.New(ex, ey, sz), point.New(ex, ey, ez),
		}
	default:
		return [4]point.Point{}
	}
}
