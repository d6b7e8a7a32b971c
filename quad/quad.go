package quad

import (
	"encoding/binary"

	"github.com/blainsmith/seahash"

	"github.com/brightforge/voxelchunk/point"
	"github.com/brightforge/voxelchunk/span"
)

// Face identifies which side of a cuboid a Quad came from. It is the same
// enum span.Face uses, re-exported so mesher code only needs one face type.
type Face = span.Face

// Quad describes one rectangular face of a span: the originating block id
// and the four corners of that face, in chunk-local coordinates. Winding
// is outward-facing (counter-clockwise as seen from outside the solid) and
// is consistent across every call in a run.
type Quad struct {
	ID      uint16
	Face    Face
	Corners [4]point.Point
}

// Key hashes ID, Face, and Corners into a 64-bit value external mesher code
// can use to deduplicate identical quads without a full struct comparison.
func (q Quad) Key() uint64 {
	var buf [2 + 1 + 4*3]byte
	binary.BigEndian.PutUint16(buf[0:2], q.ID)
	buf[2] = byte(q.Face)
	off := 3
	for _, c := range q.Corners {
		buf[off] = c.X
		buf[off+1] = c.Y
		buf[off+2] = c.Z
		off += 3
	}
	return seahash.Sum64(buf[:])
}
