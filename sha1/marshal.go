package sha1

import (
	"encoding/binary"
	"errors"
)

// Binary state format: magic, five state words big-endian, the 64-byte
// buffer (trailing bytes zero), then the total length counter. A marshaled
// engine can be resumed later with UnmarshalBinary; the buffer fill count
// is recovered from the length counter.

const (
	stateMagic    = "sha1go\x01"
	marshaledSize = len(stateMagic) + 5*4 + BlockSize + 8
)

// MarshalBinary encodes the engine's state so a partially-fed computation
// can be persisted and resumed. The returned error is always nil.
func (d *Digest) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize)
	b = append(b, stateMagic...)
	for _, word := range d.h {
		b = binary.BigEndian.AppendUint32(b, word)
	}
	b = append(b, d.x[:d.nx]...)
	b = b[:marshaledSize-8]
	b = binary.BigEndian.AppendUint64(b, d.len)
	return b, nil
}

// UnmarshalBinary restores state produced by MarshalBinary, replacing the
// engine's current contents.
func (d *Digest) UnmarshalBinary(b []byte) error {
	if len(b) < len(stateMagic) || string(b[:len(stateMagic)]) != stateMagic {
		return errors.New("sha1: invalid state identifier")
	}
	if len(b) != marshaledSize {
		return errors.New("sha1: invalid state size")
	}
	b = b[len(stateMagic):]
	for i := range d.h {
		d.h[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	copy(d.x[:], b[:BlockSize])
	b = b[BlockSize:]
	d.len = binary.BigEndian.Uint64(b)
	d.nx = int(d.len % BlockSize)
	return nil
}
