// Package sha1 implements the SHA-1 hash algorithm as a streaming digest
// engine with no dependencies outside the standard library.
//
// The engine satisfies hash.Hash, so it composes with io.Copy and anything
// else that writes into an io.Writer. Finalization (Sum, Sum20, Hexdigest)
// runs on a snapshot of the internal state: the live engine is unaffected
// and further writes continue the logical stream, which makes intermediate
// "checkpoint" digests cheap.
//
// SHA-1 is cryptographically broken for adversarial collisions. This package
// exists for legacy compatibility (protocol checksums, content fingerprints,
// git-style object identifiers) and must not be used as a security boundary.
package sha1

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
)

const (
	// Size of a SHA-1 digest in bytes.
	Size = 20

	// BlockSize of SHA-1 in bytes.
	BlockSize = 64
)

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// Digest is the running state of an incremental SHA-1 computation.
// The zero value is not usable; create engines with New.
//
// Inputs beyond 2^61 bytes exceed what the 64-bit bit-length field of the
// padding can represent and are outside the supported range.
type Digest struct {
	h   [5]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

var _ hash.Hash = (*Digest)(nil)

// New returns a fresh engine in the standard initial state.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset returns the engine to its initial state, discarding all input.
func (d *Digest) Reset() {
	d.h[0] = init0
	d.h[1] = init1
	d.h[2] = init2
	d.h[3] = init3
	d.h[4] = init4
	d.nx = 0
	d.len = 0
}

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return BlockSize }

// Write absorbs p into the digest. Any call granularity is valid, including
// empty slices; splitting the input across writes never changes the final
// digest. The returned error is always nil.
func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockSize {
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	if len(p) >= BlockSize {
		nn := len(p) &^ (BlockSize - 1)
		block(d, p[:nn])
		p = p[nn:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

// Sum appends the digest of the bytes written so far to in. The engine
// itself is left untouched: padding happens on a copy, so the caller can
// keep writing and summing.
func (d *Digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

// Sum20 returns the digest of the bytes written so far as a fixed array,
// with the same snapshot semantics as Sum.
func (d *Digest) Sum20() [Size]byte {
	d0 := *d
	return d0.checkSum()
}

// Hexdigest returns the current digest as 40 lowercase hex characters.
func (d *Digest) Hexdigest() string {
	sum := d.Sum20()
	return hex.EncodeToString(sum[:])
}

// checkSum pads and flushes the receiver in place. Callers that need the
// engine afterwards must invoke it on a copy.
func (d *Digest) checkSum() [Size]byte {
	n := d.len

	// One 0x80 marker byte, zeros to 56 mod 64, then the message length
	// in bits as a big-endian 64-bit integer.
	var tmp [BlockSize]byte
	tmp[0] = 0x80
	if n%64 < 56 {
		d.Write(tmp[0 : 56-n%64])
	} else {
		d.Write(tmp[0 : 64+56-n%64])
	}
	binary.BigEndian.PutUint64(tmp[:], n<<3)
	d.Write(tmp[0:8])

	if d.nx != 0 {
		panic("sha1: internal buffer not drained after padding")
	}

	var out [Size]byte
	binary.BigEndian.PutUint32(out[0:], d.h[0])
	binary.BigEndian.PutUint32(out[4:], d.h[1])
	binary.BigEndian.PutUint32(out[8:], d.h[2])
	binary.BigEndian.PutUint32(out[12:], d.h[3])
	binary.BigEndian.PutUint32(out[16:], d.h[4])
	return out
}

// Sum returns the SHA-1 digest of data in one call.
func Sum(data []byte) [Size]byte {
	var d Digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}
