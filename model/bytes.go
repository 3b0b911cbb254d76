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

package model

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Bytes32 implements json.Marshaler and json.Unmarshaler to encode and decode
// strings with exactly 32 bytes of hex encoded data, such as public keys,
// transaction hashes and generation hashes.
type Bytes32 [32]byte

// NewBytes32 allocates a new Bytes32 object with the first 32 bytes of data
// contained in s32.
func NewBytes32(s32 []byte) *Bytes32 {
	b32 := new(Bytes32)
	copy(b32[:], s32)
	return b32
}

// NewBytes32FromHex parses exactly 32 bytes of hex encoded data.
func NewBytes32FromHex(s string) (Bytes32, error) {
	var b Bytes32
	err := b.Set(s)
	return b, err
}

// String returns the upper case hex encoded data of b.
func (b Bytes32) String() string {
	return strings.ToUpper(hex.EncodeToString(b[:]))
}

// Set decodes a string with exactly 32 bytes of hex encoded data into b.
func (b *Bytes32) Set(hexStr string) error {
	if len(hexStr) != hex.EncodedLen(len(b)) {
		return fmt.Errorf("invalid length")
	}
	if _, err := hex.Decode(b[:], []byte(hexStr)); err != nil {
		return err
	}
	return nil
}

// IsZero returns true if all bytes of b are zero.
func (b Bytes32) IsZero() bool {
	return b == Bytes32{}
}

// UnmarshalJSON unmarshals a string with exactly 32 bytes of hex encoded data.
func (b *Bytes32) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return fmt.Errorf("%T: %w", b, err)
	}
	if err := b.Set(hexStr); err != nil {
		return fmt.Errorf("%T: %w", b, err)
	}
	return nil
}

// MarshalJSON marshals b into hex encoded data.
func (b Bytes32) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// Bytes implements json.Marshaler and json.Unmarshaler to encode and decode
// strings with hex encoded data, such as signatures and metadata values.
type Bytes []byte

// NewBytesFromHex decodes hex encoded data.
func NewBytesFromHex(s string) (Bytes, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return Bytes(b), nil
}

// String returns the upper case hex encoded data of b.
func (b Bytes) String() string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// UnmarshalJSON unmarshals a string of hex encoded data.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return fmt.Errorf("%T: %w", b, err)
	}
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return fmt.Errorf("%T: %w", b, err)
	}
	*b = raw
	return nil
}

// MarshalJSON marshals b into hex encoded data.
func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}
