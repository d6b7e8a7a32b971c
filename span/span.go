package span

import (
	"github.com/grailbio/base/log"

	"github.com/brightforge/voxelchunk/point"
)

// Bit layout of the packed word (bit 31 highest):
//
//	31-30 reserved/zero
//	29-26 start.x
//	25-22 start.y
//	21-18 start.z
//	17-14 end.x
//	13-10 end.y
//	9-6   end.z
//	5     up visible
//	4     down visible
//	3     north visible
//	2     south visible
//	1     west visible
//	0     east visible
const (
	startXShift = 26
	startYShift = 22
	startZShift = 18
	endXShift   = 14
	endYShift   = 10
	endZShift   = 6

	coordMask    = 0xF
	visibleMask  = 0x3F
	allVisible   = visibleMask
)

// Span is a block id paired with an inclusive axis-aligned cuboid and six
// per-face visibility bits, encoded per the bit layout above.
type Span struct {
	id     uint16
	packed uint32
}

// New constructs a Span covering [start, end] inclusive, with id and all
// six faces marked visible. It panics if start > end on any axis — an
// inverted span is a programmer error.
func New(id uint16, start, end point.Point) Span {
	if start.X > end.X || start.Y > end.Y || start.Z > end.Z {
		log.Panicf("span: inverted bounds start=%+v end=%+v", start, end)
	}
	return Span{
		id:     id,
		packed: packCoords(start, end) | allVisible,
	}
}

func packCoords(start, end point.Point) uint32 {
	return uint32(start.X&coordMask)<<startXShift |
		uint32(start.Y&coordMask)<<startYShift |
		uint32(start.Z&coordMask)<<startZShift |
		uint32(end.X&coordMask)<<endXShift |
		uint32(end.Y&coordMask)<<endYShift |
		uint32(end.Z&coordMask)<<endZShift
}

func extract(word uint32, shift uint) uint8 {
	return uint8((word >> shift) & coordMask)
}

// ID returns the span's block identifier.
func (s Span) ID() uint16 { return s.id }

// Start returns the inclusive minimum corner.
func (s Span) Start() point.Point {
	return point.Point{
		X: extract(s.packed, startXShift),
		Y: extract(s.packed, startYShift),
		Z: extract(s.packed, startZShift),
	}
}

// End returns the inclusive maximum corner.
func (s Span) End() point.Point {
	return point.Point{
		X: extract(s.packed, endXShift),
		Y: extract(s.packed, endYShift),
		Z: extract(s.packed, endZShift),
	}
}

// Visible reports whether face f is marked visible.
func (s Span) Visible(f Face) bool {
	return s.packed&(1<<uint(f)) != 0
}

// SetVisible sets or clears face f's visibility bit.
func (s *Span) SetVisible(f Face, v bool) {
	if v {
		s.packed |= 1 << uint(f)
	} else {
		s.packed &^= 1 << uint(f)
	}
}

// Encoded returns the raw (id, packed-word) pair, for callers that need a
// stable byte representation (e.g. chunk.Fingerprint/Checksum).
func (s Span) Encoded() (id uint16, packed uint32) { return s.id, s.packed }

// Contains reports whether p lies within the span's cuboid.
func (s Span) Contains(p point.Point) bool {
	start, end := s.Start(), s.End()
	return start.X <= p.X && p.X <= end.X &&
		start.Y <= p.Y && p.Y <= end.Y &&
		start.Z <= p.Z && p.Z <= end.Z
}

// Intersects reports whether s and o's cuboids overlap.
func (s Span) Intersects(o Span) bool {
	sStart, sEnd := s.Start(), s.End()
	oStart, oEnd := o.Start(), o.End()
	return sStart.X <= oEnd.X && oStart.X <= sEnd.X &&
		sStart.Y <= oEnd.Y && oStart.Y <= sEnd.Y &&
		sStart.Z <= oEnd.Z && oStart.Z <= sEnd.Z
}

// CanMerge reports whether s and o have the same id and are face-adjacent
// on exactly one axis with coincident extent on the other two, meaning
// their union is itself a single axis-aligned cuboid.
func (s Span) CanMerge(o Span) bool {
	if s.id != o.id {
		return false
	}
	sStart, sEnd := s.Start(), s.End()
	oStart, oEnd := o.Start(), o.End()

	adjacentX := sEnd.X+1 == oStart.X || oEnd.X+1 == sStart.X
	adjacentY := sEnd.Y+1 == oStart.Y || oEnd.Y+1 == sStart.Y
	adjacentZ := sEnd.Z+1 == oStart.Z || oEnd.Z+1 == sStart.Z

	sameYZ := sStart.Y == oStart.Y && sEnd.Y == oEnd.Y && sStart.Z == oStart.Z && sEnd.Z == oEnd.Z
	sameXZ := sStart.X == oStart.X && sEnd.X == oEnd.X && sStart.Z == oStart.Z && sEnd.Z == oEnd.Z
	sameXY := sStart.X == oStart.X && sEnd.X == oEnd.X && sStart.Y == oStart.Y && sEnd.Y == oEnd.Y

	if adjacentX && sameYZ {
		return true
	}
	if adjacentY && sameXZ {
		return true
	}
	if adjacentZ && sameXY {
		return true
	}
	return false
}

// Merge fuses o into s in place. Precondition: s.CanMerge(o). The result's
// bounds are the componentwise min/max of the two cuboids; s's visibility
// bits are left unchanged, since visibility is recomputed from current
// chunk contents rather than maintained incrementally through merge.
func (s *Span) Merge(o Span) {
	start := point.Min(s.Start(), o.Start())
	end := point.MaxOf(s.End(), o.End())
	visible := s.packed & visibleMask
	s.packed = packCoords(start, end) | visible
}

// Expand returns a new span with start decreased and end increased by 1 on
// each axis, clamped to [0, point.Max]. The chunk's write path does not
// call it; its merge pass tests CanMerge against every stored span.
func (s Span) Expand() Span {
	start, end := s.Start(), s.End()
	nStart := point.Point{X: clampDown(start.X), Y: clampDown(start.Y), Z: clampDown(start.Z)}
	nEnd := point.Point{X: clampUp(end.X), Y: clampUp(end.Y), Z: clampUp(end.Z)}
	e := New(s.id, nStart, nEnd)
	e.packed = (e.packed &^ visibleMask) | (s.packed & visibleMask)
	return e
}

func clampDown(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return v - 1
}

func clampUp(v uint8) uint8 {
	if v >= point.Max {
		return point.Max
	}
	return v + 1
}
