// Package point implements the integer lattice coordinate used throughout
// voxelchunk: a triple (x, y, z), each component in [0,15].
package point
