package sha1

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexSum(data []byte) string {
	d := New()
	d.Write(data)
	return d.Hexdigest()
}

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "da39a3ee5e6b4b0d3255bfef95601890afd80709",
		},
		{
			name:     "abc",
			input:    "abc",
			expected: "a9993e364706816aba3e25717850c26c9cd0d89d",
		},
		{
			name:     "nist 448-bit",
			input:    "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			expected: "84983e441c3bd26ebaae4aa1f95129e5e54670f1",
		},
		{
			name:     "nist 896-bit",
			input:    "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			expected: "a49b2446a02c645bf419f995b67091253a04a259",
		},
		{
			name:     "quick brown fox",
			input:    "The quick brown fox jumps over the lazy dog",
			expected: "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12",
		},
		{
			name:     "quick brown cog",
			input:    "The quick brown fox jumps over the lazy cog",
			expected: "de9f2c7fd25e1b3afad3e85a0bd17d9b100db4b3",
		},
		{
			name:     "trailing newline",
			input:    "testing\n",
			expected: "9801739daae44ec5293d4e1f53d3f4d2d426d91c",
		},
		{
			name:     "57 x",
			input:    strings.Repeat("x", 57),
			expected: "025ecbd5d70f8fb3c5457cd96bab13fda305dc59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hexSum([]byte(tt.input)))
		})
	}
}

// Lengths around 55/56 and 63/64 take different padding paths: one final
// block when the length field still fits, two otherwise.
func TestPaddingBoundaries(t *testing.T) {
	tests := []struct {
		length   int
		expected string
	}{
		{55, "c1c8bbdc22796e28c0e15163d20899b65621d65a"},
		{56, "c2db330f6083854c99d4b5bfb6e8f29f201be699"},
		{57, "f08f24908d682555111be7ff6f004e78283d989a"},
		{63, "03f09f5b158a7a8cdad920bddc29b81c18a551f5"},
		{64, "0098ba824b5c16427bd7a1122a5a442a25ec644d"},
		{65, "11655326c708d70319be2610e8a57d9a5b959d3b"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("len %d", tt.length), func(t *testing.T) {
			input := bytes.Repeat([]byte("a"), tt.length)
			assert.Equal(t, tt.expected, hexSum(input))
		})
	}
}

func TestMillionA(t *testing.T) {
	d := New()
	chunk := bytes.Repeat([]byte("a"), 1000)
	for i := 0; i < 1000; i++ {
		d.Write(chunk)
	}
	assert.Equal(t, "34aa973cd4c4daa4f61eeb2bdbad27316534016f", d.Hexdigest())
}

func TestChunkingInvariance(t *testing.T) {
	msg := make([]byte, 130)
	for i := range msg {
		msg[i] = byte(i % 251)
	}
	want := hexSum(msg)

	t.Run("every split point", func(t *testing.T) {
		for cut := 0; cut <= len(msg); cut++ {
			d := New()
			d.Write(msg[:cut])
			d.Write(msg[cut:])
			require.Equal(t, want, d.Hexdigest(), "split at %d", cut)
		}
	})

	t.Run("byte at a time", func(t *testing.T) {
		d := New()
		for i := range msg {
			d.Write(msg[i : i+1])
		}
		assert.Equal(t, want, d.Hexdigest())
	})

	t.Run("empty writes interleaved", func(t *testing.T) {
		d := New()
		d.Write(nil)
		d.Write(msg[:64])
		d.Write([]byte{})
		d.Write(msg[64:])
		d.Write(nil)
		assert.Equal(t, want, d.Hexdigest())
	})

	t.Run("multiple updates", func(t *testing.T) {
		d := New()
		d.Write([]byte("The quick brown "))
		d.Write([]byte("fox jumps over "))
		d.Write([]byte("the lazy dog"))
		assert.Equal(t, "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12", d.Hexdigest())
	})
}

func TestSumIsSnapshot(t *testing.T) {
	d := New()
	d.Write([]byte("The quick brown fox "))

	mid := d.Hexdigest()
	assert.Equal(t, hexSum([]byte("The quick brown fox ")), mid)
	assert.Equal(t, mid, d.Hexdigest(), "repeated finalization must not disturb state")

	d.Write([]byte("jumps over the lazy dog"))
	assert.Equal(t, "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12", d.Hexdigest())
}

func TestReset(t *testing.T) {
	d := New()
	d.Write([]byte("garbage before reset"))
	d.Reset()
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", d.Hexdigest())

	d.Reset()
	d.Write([]byte("abc"))
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", d.Hexdigest())
}

func TestRepeatedReuse(t *testing.T) {
	d := New()
	s := []byte("The quick brown fox jumps over the lazy dog.")

	for i := 0; i < 3; i++ {
		d.Reset()
		for j := 0; j < 1000; j++ {
			d.Write(s)
		}
		assert.Equal(t, "7ca27655f67fceaa78ed2e645a81c7f1d6e249d2", d.Hexdigest())
	}
}

func TestOneShotSum(t *testing.T) {
	data := []byte("Hello World!")
	sum := Sum(data)

	d := New()
	d.Write(data)
	assert.Equal(t, d.Sum20(), sum)
	assert.Equal(t, "2ef7bde608ce5404e97d5f042f95f89f1c232871", d.Hexdigest())
}

func TestOutputShape(t *testing.T) {
	d := New()
	d.Write([]byte("shape"))

	assert.Len(t, d.Sum(nil), Size)
	assert.Regexp(t, "^[0-9a-f]{40}$", d.Hexdigest())
	assert.Equal(t, Size, d.Size())
	assert.Equal(t, BlockSize, d.BlockSize())

	prefix := []byte("prefix-")
	out := d.Sum(prefix)
	assert.Equal(t, len(prefix)+Size, len(out))
	assert.True(t, bytes.HasPrefix(out, prefix))
}

func TestEngineIndependence(t *testing.T) {
	a := New()
	b := New()

	a.Write([]byte("first engine"))
	b.Write([]byte("second engine"))

	assert.Equal(t, hexSum([]byte("first engine")), a.Hexdigest())
	assert.Equal(t, hexSum([]byte("second engine")), b.Hexdigest())
	assert.NotEqual(t, a.Hexdigest(), b.Hexdigest())
}

func TestMarshalResume(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")

	d := New()
	d.Write(msg[:17])

	state, err := d.MarshalBinary()
	require.NoError(t, err)

	resumed := New()
	require.NoError(t, resumed.UnmarshalBinary(state))

	d.Write(msg[17:])
	resumed.Write(msg[17:])

	assert.Equal(t, "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12", d.Hexdigest())
	assert.Equal(t, d.Hexdigest(), resumed.Hexdigest())
}

func TestUnmarshalRejectsBadState(t *testing.T) {
	d := New()
	d.Write([]byte("abc"))
	state, err := d.MarshalBinary()
	require.NoError(t, err)

	tests := []struct {
		name  string
		state []byte
	}{
		{"empty", nil},
		{"bad magic", append([]byte("md5go\x01x"), state[7:]...)},
		{"truncated", state[:len(state)-1]},
		{"oversized", append(state, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, New().UnmarshalBinary(tt.state))
		})
	}
}
