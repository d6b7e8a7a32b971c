package span

import "github.com/brightforge/voxelchunk/point"

// Split returns the minimal axis-aligned decomposition of s \ exclude into
// at most six cuboids: west, east, north, south, up, down, in that fixed
// order, omitting any side exclude does not open up. Each remainder
// inherits s's id and is born with all faces visible. Split must not be
// called unless exclude intersects s; the caller (chunk's write path)
// filters with Intersects first.
func (s Span) Split(exclude Span) []Span {
	a := s
	e := exclude
	aStart, aEnd := a.Start(), a.End()
	// Clip exclude to s so every remainder stays inside s.
	eStart, eEnd := point.MaxOf(e.Start(), aStart), point.Min(e.End(), aEnd)

	var out []Span

	// west
	if aStart.X < eStart.X {
		out = append(out, New(a.id, aStart, point.New(int(eStart.X)-1, int(aEnd.Y), int(aEnd.Z))))
	}
	// east
	if aEnd.X > eEnd.X {
		out = append(out, New(a.id, point.New(int(eEnd.X)+1, int(aStart.Y), int(aStart.Z)), aEnd))
	}
	// north
	if aEnd.Z > eEnd.Z {
		out = append(out, New(a.id,
			point.New(int(eStart.X), int(aStart.Y), int(eEnd.Z)+1),
			point.New(int(eEnd.X), int(aEnd.Y), int(aEnd.Z))))
	}
	// south
	if aStart.Z < eStart.Z {
		out = append(out, New(a.id,
			point.New(int(eStart.X), int(aStart.Y), int(aStart.Z)),
			point.New(int(eEnd.X), int(aEnd.Y), int(eStart.Z)-1)))
	}
	// up
	if aEnd.Y > eEnd.Y {
		out = append(out, New(a.id,
			point.New(int(eStart.X), int(eEnd.Y)+1, int(eStart.Z)),
			point.New(int(eEnd.X), int(aEnd.Y), int(eEnd.Z))))
	}
	// down
	if aStart.Y < eStart.Y {
		out = append(out, New(a.id,
			point.New(int(eStart.X), int(aStart.Y), int(eStart.Z)),
			point.New(int(eEnd.X), int(eStart.Y)-1, int(eEnd.Z))))
	}

	return out
}
