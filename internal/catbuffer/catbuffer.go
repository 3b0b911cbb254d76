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

// Package catbuffer implements the primitive little endian field codec used
// by the Bitxor binary transaction schema, along with the fixed layouts of the
// verifiable and embedded transaction headers.
//
// The package knows nothing about individual transaction types. Each type
// writes and reads its own fields, in schema order, through a Writer and a
// Reader.
package catbuffer

import (
	"encoding/binary"
	"fmt"
)

// Field sizes, in bytes, of the schema's fixed width types.
const (
	SignatureSize   = 64
	PublicKeySize   = 32
	HashSize        = 32
	AddressSize     = 25
	CosignatureSize = 8 + PublicKeySize + SignatureSize
)

// Writer accumulates little endian encoded fields.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with capacity for n bytes.
func NewWriter(n int) *Writer {
	return &Writer{buf: make([]byte, 0, n)}
}

func (w *Writer) Uint8(v uint8) { w.buf = append(w.buf, v) }

func (w *Writer) Int8(v int8) { w.buf = append(w.buf, byte(v)) }

func (w *Writer) Uint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) Int16(v int16) { w.Uint16(uint16(v)) }

func (w *Writer) Uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) Uint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// Bytes appends data verbatim.
func (w *Writer) Bytes(data []byte) { w.buf = append(w.buf, data...) }

// Fixed appends data zero padded or truncated to exactly n bytes.
func (w *Writer) Fixed(data []byte, n int) {
	start := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	copy(w.buf[start:], data)
}

// Pad appends zero bytes until the length is a multiple of alignment.
func (w *Writer) Pad(alignment int) {
	w.buf = append(w.buf, make([]byte, PaddingSize(len(w.buf), alignment))...)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Result returns the written bytes.
func (w *Writer) Result() []byte { return w.buf }

// PaddingSize returns the number of zero bytes needed to align size.
func PaddingSize(size, alignment int) int {
	if size%alignment == 0 {
		return 0
	}
	return alignment - size%alignment
}

// Reader decodes little endian fields. The first decoding failure is
// remembered and all later reads return zero values, so that callers may
// check Err once after reading a whole structure.
type Reader struct {
	data []byte
	pos  int
	err  error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.data) {
		r.err = fmt.Errorf("catbuffer: need %v bytes at offset %v, have %v",
			n, r.pos, len(r.data)-r.pos)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *Reader) Uint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) Int8() int8 { return int8(r.Uint8()) }

func (r *Reader) Uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) Int16() int16 { return int16(r.Uint16()) }

func (r *Reader) Uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) Uint64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// Bytes returns a copy of the next n bytes.
func (r *Reader) Bytes(n int) []byte {
	b := r.take(n)
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// Skip advances past n bytes.
func (r *Reader) Skip(n int) { r.take(n) }

// SkipPadding advances past the padding that aligns size.
func (r *Reader) SkipPadding(size, alignment int) {
	r.Skip(PaddingSize(size, alignment))
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Offset returns the number of bytes consumed.
func (r *Reader) Offset() int { return r.pos }

// Err returns the first decoding error, if any.
func (r *Reader) Err() error { return r.err }
