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

import "fmt"

// AliasType tags what a namespace resolves to.
type AliasType uint8

const (
	AliasNone AliasType = iota
	AliasToken
	AliasAddress
)

func (t AliasType) String() string {
	switch t {
	case AliasNone:
		return "none"
	case AliasToken:
		return "token"
	case AliasAddress:
		return "address"
	}
	return fmt.Sprintf("AliasType(%d)", uint8(t))
}

// AliasAction links or unlinks an alias.
type AliasAction uint8

const (
	AliasUnlink AliasAction = 0
	AliasLink   AliasAction = 1
)

// Alias is what a namespace currently resolves to. Exactly one of Address and
// TokenID is set, according to Type, unless Type is AliasNone.
type Alias struct {
	Type    AliasType
	Address *Address
	TokenID *TokenID
}

// EmptyAlias returns an alias that resolves to nothing.
func EmptyAlias() Alias { return Alias{Type: AliasNone} }

func NewAddressAlias(adr Address) Alias {
	return Alias{Type: AliasAddress, Address: &adr}
}

func NewTokenAlias(id TokenID) Alias {
	return Alias{Type: AliasToken, TokenID: &id}
}

// Equal requires the same tag and the same payload.
func (a Alias) Equal(o Alias) bool {
	if a.Type != o.Type {
		return false
	}
	switch a.Type {
	case AliasAddress:
		return a.Address != nil && o.Address != nil && a.Address.Equal(*o.Address)
	case AliasToken:
		return a.TokenID != nil && o.TokenID != nil && *a.TokenID == *o.TokenID
	}
	return true
}
