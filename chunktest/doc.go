// Package chunktest provides content-level comparison of chunks for use in
// tests, independent of how each chunk's contents happen to be decomposed
// into spans.
package chunktest
