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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/ed25519"
)

// PublicAccount is an account public key and the address derived from it.
type PublicAccount struct {
	PublicKey Bytes32
	Address   Address
}

func NewPublicAccount(publicKey Bytes32, network NetworkType) PublicAccount {
	return PublicAccount{
		PublicKey: publicKey,
		Address:   NewAddressFromPublicKey(publicKey[:], network),
	}
}

// NewPublicAccountFromHex parses a hex encoded public key.
func NewPublicAccountFromHex(publicKey string, network NetworkType) (PublicAccount, error) {
	key, err := NewBytes32FromHex(publicKey)
	if err != nil {
		return PublicAccount{}, fmt.Errorf("public key %q: %w", publicKey, err)
	}
	return NewPublicAccount(key, network), nil
}

// Verify checks an ed25519 signature of data by the account.
func (p PublicAccount) Verify(data, signature []byte) bool {
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.PublicKey[:]), data, signature)
}

// Equal compares public keys and addresses.
func (p PublicAccount) Equal(o PublicAccount) bool {
	return p.PublicKey == o.PublicKey && p.Address.Equal(o.Address)
}

// Account holds a key pair able to sign transactions.
type Account struct {
	PublicAccount
	privateKey ed25519.PrivateKey
}

// NewAccountFromPrivateKey builds an account from a hex encoded 32 byte seed.
func NewAccountFromPrivateKey(privateKey string, network NetworkType) (*Account, error) {
	seed, err := hex.DecodeString(privateKey)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("private key: invalid length")
	}
	return newAccount(ed25519.NewKeyFromSeed(seed), network), nil
}

// GenerateAccount creates a new random account using crypto/rand.
func GenerateAccount(network NetworkType) (*Account, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return newAccount(priv, network), nil
}

func newAccount(priv ed25519.PrivateKey, network NetworkType) *Account {
	pub := priv.Public().(ed25519.PublicKey)
	return &Account{
		PublicAccount: NewPublicAccount(*NewBytes32(pub), network),
		privateKey:    priv,
	}
}

// PrivateKey returns the hex encoded seed.
func (a *Account) PrivateKey() string {
	return strings.ToUpper(hex.EncodeToString(a.privateKey.Seed()))
}

// NetworkType returns the network of the account address.
func (a *Account) NetworkType() NetworkType {
	return a.Address.NetworkType()
}

// Sign returns the ed25519 signature of data.
func (a *Account) Sign(data []byte) []byte {
	return ed25519.Sign(a.privateKey, data)
}
