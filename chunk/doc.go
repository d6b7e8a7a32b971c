// Package chunk implements the cuboid-span chunk: a fixed 16x16x16 voxel
// grid stored as an unordered collection of axis-aligned spans. It
// provides point and range read/write, bulk clear, clone, and
// visible-face quad generation.
package chunk
