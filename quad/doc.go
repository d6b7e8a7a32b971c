// Package quad defines the mesher-facing quad record: a block id and the
// four corners of one axis-aligned rectangular face, in a winding
// consistent across a single run.
package quad
