package catbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestWriterReader(t *testing.T) {
	w := NewWriter(0)
	w.Uint8(0xAB)
	w.Int8(-2)
	w.Uint16(0x0102)
	w.Int16(-300)
	w.Uint32(0x01020304)
	w.Uint64(0x0102030405060708)
	w.Fixed([]byte{1, 2}, 4)
	w.Bytes([]byte{9})
	assert.Equal(t, 1+1+2+2+4+8+4+1, w.Len())
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, w.Result()[6:10])

	r := NewReader(w.Result())
	assert := assert.New(t)
	assert.Equal(uint8(0xAB), r.Uint8())
	assert.Equal(int8(-2), r.Int8())
	assert.Equal(uint16(0x0102), r.Uint16())
	assert.Equal(int16(-300), r.Int16())
	assert.Equal(uint32(0x01020304), r.Uint32())
	assert.Equal(uint64(0x0102030405060708), r.Uint64())
	assert.Equal([]byte{1, 2, 0, 0}, r.Bytes(4))
	assert.Equal(1, r.Remaining())
	assert.Equal(uint8(9), r.Uint8())
	assert.NoError(r.Err())

	// Reading past the end is sticky.
	assert.Equal(uint32(0), r.Uint32())
	assert.Error(r.Err())
	assert.Equal(uint8(0), r.Uint8())
}

func TestPadding(t *testing.T) {
	for _, test := range []struct {
		Size, Padding int
	}{{0, 0}, {1, 7}, {7, 1}, {8, 0}, {13, 3}} {
		assert.Equal(t, test.Padding, PaddingSize(test.Size, 8), "size %v", test.Size)
	}
	w := NewWriter(0)
	w.Bytes([]byte{1, 2, 3})
	w.Pad(8)
	assert.Equal(t, 8, w.Len())
}

func TestHeaderRoundTrip(t *testing.T) {
	for _, embedded := range []bool{false, true} {
		h := Header{
			Signer:  make([]byte, PublicKeySize),
			Version: 1,
			Network: 152,
			Type:    0x4154,
		}
		if !embedded {
			h.Signature = make([]byte, SignatureSize)
			h.Signature[0] = 0xFF
			h.MaxFee = 100
			h.Deadline = 12345
		}
		h.Signer[31] = 7
		w := NewWriter(0)
		WriteHeader(w, h, embedded)
		data := w.Result()
		if embedded {
			require.Len(t, data, EmbeddedHeaderSize)
		} else {
			require.Len(t, data, HeaderSize)
		}
		PatchSize(data)
		got, err := PeekHeader(data, embedded)
		require.NoError(t, err)
		h.Size = uint32(len(data))
		assert.Equal(t, h, got)
	}
	_, err := PeekHeader([]byte{1, 2, 3}, false)
	assert.Error(t, err)
}

func TestMerkleRoot(t *testing.T) {
	assert.Equal(t, [HashSize]byte{}, MerkleRoot(nil))

	a := [HashSize]byte{1}
	b := [HashSize]byte{2}
	c := [HashSize]byte{3}
	assert.Equal(t, a, MerkleRoot([][HashSize]byte{a}))

	pair := func(x, y [HashSize]byte) (out [HashSize]byte) {
		h := sha3.New256()
		h.Write(x[:])
		h.Write(y[:])
		copy(out[:], h.Sum(nil))
		return
	}
	assert.Equal(t, pair(a, b), MerkleRoot([][HashSize]byte{a, b}))
	assert.Equal(t, pair(pair(a, b), pair(c, c)),
		MerkleRoot([][HashSize]byte{a, b, c}))
}
