// Package span implements the cuboid span: a block id paired with an
// inclusive axis-aligned cuboid and six per-face visibility bits, packed
// into a single 32-bit word plus a 16-bit id. It provides the
// containment, intersection, merge, and split algebra the chunk
// package's write path depends on.
package span
