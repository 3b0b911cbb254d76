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
	"encoding/hex"
	"fmt"
	"strings"
)

// aliasAddressFlag marks the first byte of an unresolved address that stands
// for a namespace.
const aliasAddressFlag = 0x01

// UnresolvedAddress is either an Address or a NamespaceID standing in for
// the address the namespace is linked to.
type UnresolvedAddress interface {
	// UnresolvedBytes returns the 25 byte binary form used by transactions.
	UnresolvedBytes(NetworkType) [AddressSize]byte
	// IsAlias returns true for a NamespaceID.
	IsAlias() bool
	String() string

	unresolvedAddress()
}

// UnresolvedTokenID is either a TokenID or a NamespaceID standing in for the
// token the namespace is linked to.
type UnresolvedTokenID interface {
	// Value returns the 64 bit id. Namespace ids have the high bit set.
	Value() UInt64
	Hex() string
	IsAlias() bool
	String() string

	unresolvedTokenID()
}

var (
	_ UnresolvedAddress = Address{}
	_ UnresolvedAddress = NamespaceID{}
	_ UnresolvedTokenID = TokenID(0)
	_ UnresolvedTokenID = NamespaceID{}
)

func (adr Address) UnresolvedBytes(NetworkType) [AddressSize]byte { return adr.raw }
func (Address) IsAlias() bool { return false }
func (Address) unresolvedAddress() {}

func (n NamespaceID) UnresolvedBytes(network NetworkType) [AddressSize]byte {
	var raw [AddressSize]byte
	raw[0] = byte(network) | aliasAddressFlag
	binary.LittleEndian.PutUint64(raw[1:], uint64(n.ID))
	return raw
}
func (NamespaceID) IsAlias() bool { return true }
func (NamespaceID) unresolvedAddress() {}
func (n NamespaceID) Value() UInt64 { return n.ID }
func (NamespaceID) unresolvedTokenID() {}

func (id TokenID) Value() UInt64 { return UInt64(id) }
func (TokenID) IsAlias() bool { return false }
func (TokenID) unresolvedTokenID() {}

// NewUnresolvedAddressFromBytes decodes the binary form of an unresolved
// address.
func NewUnresolvedAddressFromBytes(data []byte) (UnresolvedAddress, error) {
	if len(data) != AddressSize {
		return nil, fmt.Errorf("unresolved address: invalid length %v",
			len(data))
	}
	if data[0]&aliasAddressFlag != 0 {
		return NamespaceID{ID: UInt64(binary.LittleEndian.Uint64(data[1:9]))}, nil
	}
	return NewAddressFromBytes(data)
}

// NewUnresolvedAddressFromEncoded decodes the hex form of an unresolved
// address.
func NewUnresolvedAddressFromEncoded(encoded string) (UnresolvedAddress, error) {
	data, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("unresolved address %q: %w", encoded, err)
	}
	return NewUnresolvedAddressFromBytes(data)
}

// EncodeUnresolvedAddress returns the hex form of the binary encoding of adr.
func EncodeUnresolvedAddress(adr UnresolvedAddress, network NetworkType) string {
	raw := adr.UnresolvedBytes(network)
	return strings.ToUpper(hex.EncodeToString(raw[:]))
}

// NewUnresolvedTokenID classifies v by its high bit.
func NewUnresolvedTokenID(v UInt64) UnresolvedTokenID {
	if uint64(v)&namespaceFlag != 0 {
		return NamespaceID{ID: v}
	}
	return TokenID(v)
}

// NewUnresolvedTokenIDFromHex parses 16 hex digits and classifies the value
// by its high bit.
func NewUnresolvedTokenIDFromHex(hexStr string) (UnresolvedTokenID, error) {
	v, err := NewUInt64FromHex(hexStr)
	if err != nil {
		return nil, fmt.Errorf("unresolved token id: %w", err)
	}
	return NewUnresolvedTokenID(v), nil
}

// EqualUnresolvedAddress compares two unresolved addresses by kind and value.
func EqualUnresolvedAddress(a, b UnresolvedAddress) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.IsAlias() != b.IsAlias() {
		return false
	}
	return a.UnresolvedBytes(0) == b.UnresolvedBytes(0)
}

// EqualUnresolvedTokenID compares two unresolved token ids by value.
func EqualUnresolvedTokenID(a, b UnresolvedTokenID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Value() == b.Value()
}
