package chunk

import (
	"encoding/binary"
	"sort"

	farm "github.com/dgryski/go-farm"
	"github.com/minio/highwayhash"

	"github.com/brightforge/voxelchunk/span"
)

// checksumKey is a fixed key for Checksum's highwayhash digest. It has no
// secrecy requirement here — Checksum is a regression-testing aid, not a
// MAC — it only needs to be stable across runs.
var checksumKey = [highwayhash.Size]byte{
	0x76, 0x6f, 0x78, 0x65, 0x6c, 0x63, 0x68, 0x75,
	0x6e, 0x6b, 0x2d, 0x63, 0x68, 0x65, 0x63, 0x6b,
	0x73, 0x75, 0x6d, 0x2d, 0x6b, 0x65, 0x79, 0x2d,
	0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37,
}

func encodeSpan(s span.Span) [6]byte {
	id, packed := s.Encoded()
	var b [6]byte
	binary.BigEndian.PutUint16(b[0:2], id)
	binary.BigEndian.PutUint32(b[2:6], packed)
	return b
}

// Fingerprint returns an order-independent structural hash of the chunk's
// span set: the farm hash of each span's encoded bytes, summed. Addition
// makes the aggregate commutative, so the result does not depend on the
// span slice's internal order — only on which spans exist. Two chunks with
// identical per-cell contents but a different span decomposition will not
// generally produce the same fingerprint; use chunktest.Diff for
// content-level equality.
func (c *Chunk) Fingerprint() uint64 {
	var sum uint64
	for _, s := range c.spans {
		b := encodeSpan(s)
		sum += farm.Hash64(b[:])
	}
	return sum
}

// Checksum returns an exact, order-dependent digest of the chunk's span
// set, suitable for golden-file style regression tests of the span
// decomposition itself: spans are sorted by span.Compare, their encoded
// bytes concatenated, and hashed with highwayhash under a fixed key.
func (c *Chunk) Checksum() [highwayhash.Size]byte {
	sorted := append([]span.Span(nil), c.spans...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) == span.Before
	})
	buf := make([]byte, 0, 6*len(sorted))
	for _, s := range sorted {
		b := encodeSpan(s)
		buf = append(buf, b[:]...)
	}
	return highwayhash.Sum(buf, checksumKey[:])
}
