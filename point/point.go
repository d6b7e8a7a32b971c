package point

import (
	"github.com/grailbio/base/log"
)

// Max is the largest valid value for any axis.
const Max = 15

// Point is a coordinate in the chunk's 16x16x16 lattice. Each component
// must lie in [0, Max].
type Point struct {
	X, Y, Z uint8
}

// New constructs a Point, panicking if any component is outside [0, Max].
// Out-of-range coordinates are a programmer error, not a recoverable
// condition.
func New(x, y, z int) Point {
	checkAxis(x)
	checkAxis(y)
	checkAxis(z)
	return Point{X: uint8(x), Y: uint8(y), Z: uint8(z)}
}

func checkAxis(v int) {
	if v < 0 || v > Max {
		log.Panicf("point: coordinate %d out of range [0,%d]", v, Max)
	}
}

// Pack returns the 12-bit encoding (x<<8)|(y<<4)|z.
func (p Point) Pack() uint16 {
	return uint16(p.X)<<8 | uint16(p.Y)<<4 | uint16(p.Z)
}

// EQ reports whether p and o are componentwise equal.
func (p Point) EQ(o Point) bool {
	return p.X == o.X && p.Y == o.Y && p.Z == o.Z
}

// Compare orders points lexicographically on (X, Z, Y), the axis order
// Span.Compare also uses. It returns a negative number, zero, or a
// positive number as p is before, coincident with, or after o.
func (p Point) Compare(o Point) int {
	if p.X != o.X {
		return int(p.X) - int(o.X)
	}
	if p.Z != o.Z {
		return int(p.Z) - int(o.Z)
	}
	return int(p.Y) - int(o.Y)
}

// LT returns true iff p < o under Compare.
func (p Point) LT(o Point) bool { return p.Compare(o) < 0 }

// LE returns true iff p <= o under Compare.
func (p Point) LE(o Point) bool { return p.Compare(o) <= 0 }

// GT returns true iff p > o under Compare.
func (p Point) GT(o Point) bool { return p.Compare(o) > 0 }

// GE returns true iff p >= o under Compare.
func (p Point) GE(o Point) bool { return p.Compare(o) >= 0 }

// Min returns the componentwise minimum of p and o.
func Min(p, o Point) Point {
	return Point{X: minU8(p.X, o.X), Y: minU8(p.Y, o.Y), Z: minU8(p.Z, o.Z)}
}

// MaxOf returns the componentwise maximum of p and o.
func MaxOf(p, o Point) Point {
	return Point{X: maxU8(p.X, o.X), Y: maxU8(p.Y, o.Y), Z: maxU8(p.Z, o.Z)}
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
