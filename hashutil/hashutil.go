// Package hashutil derives fixed-width integer summaries from values that
// can serialize themselves into a byte sink. It is a thin consumer of the
// sha1 engine: the value writes its bytes, the digest is truncated.
//
// Truncating a cryptographic digest this way keeps determinism and input
// sensitivity but carries no collision-resistance guarantee. Use the
// results for hashing into tables, sharding, or fingerprint comparison,
// never for security decisions.
package hashutil

import (
	"encoding/binary"
	"io"

	"github.com/unkn0wn-root/sha1-go/sha1"
)

// Hashable is anything that can write its canonical byte representation
// into a sink. The byte order chosen by HashBytes defines the value's
// identity: values that serialize identically hash identically.
type Hashable interface {
	HashBytes(w io.Writer)
}

// Sum64 returns a 64-bit summary of v.
func Sum64(v Hashable) uint64 {
	d := sha1.New()
	v.HashBytes(d)
	return Fold64(d.Sum20())
}

// Sum32 returns a 32-bit summary of v.
func Sum32(v Hashable) uint32 {
	d := sha1.New()
	v.HashBytes(d)
	return Fold32(d.Sum20())
}

// Fold64 truncates a digest to its big-endian 8-byte prefix. Exposed so
// callers already holding a full digest apply the same derivation Sum64
// uses.
func Fold64(digest [sha1.Size]byte) uint64 {
	return binary.BigEndian.Uint64(digest[:8])
}

// Fold32 truncates a digest to its big-endian 4-byte prefix.
func Fold32(digest [sha1.Size]byte) uint32 {
	return binary.BigEndian.Uint32(digest[:4])
}
