package span

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightforge/voxelchunk/point"
)

func TestSplitCornerExcludeYieldsThree(t *testing.T) {
	// Excluding a single corner cell only opens up room on 3 of the 6
	// sides, since the other 3 sides already coincide with a's bounds.
	a := New(1, point.New(0, 0, 0), point.New(1, 1, 1))
	e := New(0, point.New(0, 0, 0), point.New(0, 0, 0))
	out := a.Split(e)
	require.Len(t, out, 3)
}

func TestSplitFullCoverageReturnsNothing(t *testing.T) {
	a := New(1, point.New(0, 0, 0), point.New(5, 5, 5))
	e := New(0, point.New(0, 0, 0), point.New(5, 5, 5))
	out := a.Split(e)
	require.Empty(t, out)
}

func TestSplitSingleInteriorPointYieldsSix(t *testing.T) {
	a := New(1, point.New(0, 0, 0), point.New(15, 15, 15))
	e := New(0, point.New(7, 7, 7), point.New(7, 7, 7))
	out := a.Split(e)
	require.Len(t, out, 6)

	want := map[[2]point.Point]bool{
		{point.New(0, 0, 0), point.New(6, 15, 15)}:   true, // west
		{point.New(8, 0, 0), point.New(15, 15, 15)}:  true, // east
		{point.New(7, 0, 8), point.New(7, 15, 15)}:   true, // north
		{point.New(7, 0, 0), point.New(7, 15, 6)}:    true, // south
		{point.New(7, 8, 7), point.New(7, 15, 7)}:    true, // up
		{point.New(7, 0, 7), point.New(7, 6, 7)}:     true, // down
	}
	got := map[[2]point.Point]bool{}
	for _, s := range out {
		got[[2]point.Point{s.Start(), s.End()}] = true
		require.Equal(t, uint16(1), s.ID())
	}
	require.Equal(t, want, got)
}

func TestSplitPartitionsVolume(t *testing.T) {
	a := New(1, point.New(0, 0, 0), point.New(3, 3, 3))
	e := New(0, point.New(1, 1, 1), point.New(2, 2, 2))
	out := a.Split(e)

	covered := map[point.Point]int{}
	for x := 0; x <= 3; x++ {
		for y := 0; y <= 3; y++ {
			for z := 0; z <= 3; z++ {
				covered[point.New(x, y, z)] = 0
			}
		}
	}
	for _, s := range out {
		for _, other := range out {
			if s == other {
				continue
			}
			require.False(t, s.Intersects(other), "remainders must not overlap")
		}
	}
	for _, s := range out {
		for x := int(s.Start().X); x <= int(s.End().X); x++ {
			for y := int(s.Start().Y); y <= int(s.End().Y); y++ {
				for z := int(s.Start().Z); z <= int(s.End().Z); z++ {
					covered[point.New(x, y, z)]++
				}
			}
		}
	}
	for p, n := range covered {
		if e.Contains(p) {
			require.Equal(t, 0, n, "excluded point %+v should not be covered", p)
		} else {
			require.Equal(t, 1, n, "point %+v should be covered exactly once", p)
		}
	}
}

func TestSplitSinglePlaneWriter(t *testing.T) {
	a := New(1, point.New(0, 0, 0), point.New(15, 15, 15))
	e := New(0, point.New(0, 0, 5), point.New(15, 15, 5))
	out := a.Split(e)
	// Only north/south remainders exist: writer already spans full x,y and
	// touches both y/x bounds, and only the z axis has room on both sides.
	require.Len(t, out, 2)
}
