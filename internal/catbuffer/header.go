// MIT License
//
// Copyright 2026 Bitxor Corp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
// IN THE SOFTWARE.

package catbuffer

import "fmt"

// Header sizes. The verifiable header is followed by the transaction body. The
// signed region starts at VerifiableDataOffset.
const (
	// size + reserved + signature + signer + reserved + version + network +
	// type + fee + deadline
	HeaderSize         = 4 + 4 + SignatureSize + PublicKeySize + 4 + 1 + 1 + 2 + 8 + 8
	// size + reserved + signer + reserved + version + network + type
	EmbeddedHeaderSize = 4 + 4 + PublicKeySize + 4 + 1 + 1 + 2

	VerifiableDataOffset = 4 + 4 + SignatureSize + PublicKeySize + 4
	SignatureOffset      = 4 + 4
	SignerOffset         = SignatureOffset + SignatureSize

	// Aggregates sign the header remainder and the transactions hash only.
	AggregateSignedDataSize = 1 + 1 + 2 + 8 + 8 + HashSize
)

// Header is the common prefix of every transaction. MaxFee, Deadline and
// Signature are absent from embedded transactions.
type Header struct {
	Size      uint32
	Signature []byte
	Signer    []byte
	Version   uint8
	Network   uint8
	Type      uint16
	MaxFee    uint64
	Deadline  uint64
}

// WriteHeader writes h, followed by nothing, to w. The size field is written
// as given; callers patch it with PatchSize once the body is known.
func WriteHeader(w *Writer, h Header, embedded bool) {
	w.Uint32(h.Size)
	w.Uint32(0)
	if !embedded {
		w.Fixed(h.Signature, SignatureSize)
	}
	w.Fixed(h.Signer, PublicKeySize)
	w.Uint32(0)
	w.Uint8(h.Version)
	w.Uint8(h.Network)
	w.Uint16(h.Type)
	if !embedded {
		w.Uint64(h.MaxFee)
		w.Uint64(h.Deadline)
	}
}

// ReadHeader reads a Header from r.
func ReadHeader(r *Reader, embedded bool) (Header, error) {
	var h Header
	h.Size = r.Uint32()
	r.Skip(4)
	if !embedded {
		h.Signature = r.Bytes(SignatureSize)
	}
	h.Signer = r.Bytes(PublicKeySize)
	r.Skip(4)
	h.Version = r.Uint8()
	h.Network = r.Uint8()
	h.Type = r.Uint16()
	if !embedded {
		h.MaxFee = r.Uint64()
		h.Deadline = r.Uint64()
	}
	if err := r.Err(); err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}
	return h, nil
}

// PeekHeader decodes only the header of payload.
func PeekHeader(payload []byte, embedded bool) (Header, error) {
	return ReadHeader(NewReader(payload), embedded)
}

// PatchSize overwrites the leading size field of an entity with its length.
func PatchSize(data []byte) {
	n := uint32(len(data))
	data[0], data[1], data[2], data[3] = byte(n), byte(n>>8), byte(n>>16),
		byte(n>>24)
}
