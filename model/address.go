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
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Notes: An address is the network type byte, the RIPEMD-160 digest of the
// SHA3-256 digest of the account public key, and a 4 byte checksum taken from
// the SHA3-256 digest of the first 21 bytes. The 25 byte address has three
// textual forms:
//
//	plain:   40 characters of RFC 4648 base32
//	encoded: 50 upper case hex characters
//	pretty:  the plain form split in dash separated groups of six

const (
	// AddressSize is the size of a decoded address.
	AddressSize = 25
	// PlainAddressSize is the length of the base32 address form.
	PlainAddressSize = 40

	addressChecksumSize = 4
	addressHashSize     = ripemd160.Size
)

var base32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Address is a network tagged account identifier.
type Address struct {
	raw [AddressSize]byte
}

// NewAddressFromPublicKey derives the address of publicKey on network.
func NewAddressFromPublicKey(publicKey []byte, network NetworkType) Address {
	keyHash := sha3.Sum256(publicKey)
	ripemd := ripemd160.New()
	ripemd.Write(keyHash[:])

	var adr Address
	adr.raw[0] = byte(network)
	copy(adr.raw[1:], ripemd.Sum(nil))
	checksum := addressChecksum(adr.raw[:1+addressHashSize])
	copy(adr.raw[1+addressHashSize:], checksum)
	return adr
}

func addressChecksum(decoded []byte) []byte {
	hash := sha3.Sum256(decoded)
	return hash[:addressChecksumSize]
}

// NewAddressFromRaw parses the plain base32 form. Dashes of the pretty form
// are ignored.
func NewAddressFromRaw(rawAddress string) (Address, error) {
	plain := strings.ToUpper(strings.ReplaceAll(rawAddress, "-", ""))
	if len(plain) != PlainAddressSize {
		return Address{}, fmt.Errorf("address %q: invalid length", rawAddress)
	}
	data, err := base32Encoding.DecodeString(plain)
	if err != nil {
		return Address{}, fmt.Errorf("address %q: %w", rawAddress, err)
	}
	return NewAddressFromBytes(data)
}

// NewAddressFromEncoded parses the hex encoded form.
func NewAddressFromEncoded(encoded string) (Address, error) {
	if len(encoded) != 2*AddressSize {
		return Address{}, fmt.Errorf("encoded address %q: invalid length",
			encoded)
	}
	data, err := hex.DecodeString(encoded)
	if err != nil {
		return Address{}, fmt.Errorf("encoded address %q: %w", encoded, err)
	}
	return NewAddressFromBytes(data)
}

// NewAddressFromBytes validates and copies the decoded form.
func NewAddressFromBytes(data []byte) (Address, error) {
	var adr Address
	if len(data) != AddressSize {
		return adr, fmt.Errorf("address: invalid length %v", len(data))
	}
	copy(adr.raw[:], data)
	checksum := addressChecksum(adr.raw[:1+addressHashSize])
	if !bytes.Equal(checksum, adr.raw[1+addressHashSize:]) {
		return Address{}, fmt.Errorf("address %v: invalid checksum", adr.Plain())
	}
	return adr, nil
}

// IsValidRawAddress returns true if rawAddress is a well formed plain address
// on network.
func IsValidRawAddress(rawAddress string, network NetworkType) bool {
	adr, err := NewAddressFromRaw(rawAddress)
	return err == nil && adr.NetworkType() == network
}

// IsValidEncodedAddress returns true if encoded is a well formed hex address
// on network.
func IsValidEncodedAddress(encoded string, network NetworkType) bool {
	adr, err := NewAddressFromEncoded(encoded)
	return err == nil && adr.NetworkType() == network
}

// NetworkType returns the network encoded in the first byte of adr.
func (adr Address) NetworkType() NetworkType {
	return NetworkType(adr.raw[0])
}

// Bytes returns the decoded address.
func (adr Address) Bytes() [AddressSize]byte {
	return adr.raw
}

// Plain returns the base32 form.
func (adr Address) Plain() string {
	return base32Encoding.EncodeToString(adr.raw[:])
}

// Encoded returns the upper case hex form.
func (adr Address) Encoded() string {
	return strings.ToUpper(hex.EncodeToString(adr.raw[:]))
}

// Pretty returns the plain form in dash separated groups of six.
func (adr Address) Pretty() string {
	plain := adr.Plain()
	var b strings.Builder
	for i := 0; i < len(plain); i += 6 {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + 6
		if end > len(plain) {
			end = len(plain)
		}
		b.WriteString(plain[i:end])
	}
	return b.String()
}

// IsZero returns true for the zero value, which is not a valid address.
func (adr Address) IsZero() bool {
	return adr.raw == [AddressSize]byte{}
}

func (adr Address) String() string {
	return adr.Plain()
}

func (adr Address) Equal(o Address) bool {
	return adr.raw == o.raw
}

// MarshalJSON encodes adr as its hex form, as the REST API does.
func (adr Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(adr.Encoded())
}

// UnmarshalJSON accepts either the hex or the plain form.
func (adr *Address) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%T: %w", adr, err)
	}
	var err error
	if len(str) == 2*AddressSize {
		*adr, err = NewAddressFromEncoded(str)
	} else {
		*adr, err = NewAddressFromRaw(str)
	}
	return err
}
