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
	"encoding/binary"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// TokenID identifies a token definition. Token ids never have the high bit
// set, which distinguishes them from namespace ids.
type TokenID UInt64

// TokenNonce is the random value from which a token id is derived.
type TokenNonce uint32

// NewTokenIDFromNonce derives the id of the token defined by owner with nonce.
func NewTokenIDFromNonce(nonce TokenNonce, owner Address) TokenID {
	h := sha3.New256()
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(nonce))
	h.Write(n[:])
	raw := owner.Bytes()
	h.Write(raw[:])
	digest := h.Sum(nil)
	return TokenID(binary.LittleEndian.Uint64(digest[:8]) &^ namespaceFlag)
}

// NewTokenIDFromHex parses 16 hex digits.
func NewTokenIDFromHex(hexStr string) (TokenID, error) {
	v, err := NewUInt64FromHex(hexStr)
	if err != nil {
		return 0, fmt.Errorf("token id: %w", err)
	}
	if uint64(v)&namespaceFlag != 0 {
		return 0, fmt.Errorf("token id %v: high bit set", hexStr)
	}
	return TokenID(v), nil
}

func (id TokenID) Hex() string { return UInt64(id).Hex() }

func (id TokenID) String() string { return id.Hex() }

// MarshalJSON encodes id as its hex form.
func (id TokenID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.Hex())
}

// UnmarshalJSON decodes the hex form.
func (id *TokenID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%T: %w", id, err)
	}
	v, err := NewTokenIDFromHex(str)
	if err != nil {
		return err
	}
	*id = v
	return nil
}
