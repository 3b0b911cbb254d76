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
	"fmt"
	"math/big"
)

// Token is an amount of a token, possibly referenced through a namespace.
type Token struct {
	ID     UnresolvedTokenID
	Amount UInt64
}

func NewToken(id UnresolvedTokenID, amount UInt64) Token {
	return Token{ID: id, Amount: amount}
}

// Equal compares the id values and amounts.
func (t Token) Equal(o Token) bool {
	return EqualUnresolvedTokenID(t.ID, o.ID) && t.Amount == o.Amount
}

// Currency describes a token used as a network currency. At least one of
// TokenID and NamespaceID is set.
type Currency struct {
	TokenID       *TokenID
	NamespaceID   *NamespaceID
	Divisibility  uint8
	Transferable  bool
	SupplyMutable bool
	Restrictable  bool
	Revokable     bool
}

// UnresolvedTokenID returns the token id when known and the namespace
// otherwise.
func (c Currency) UnresolvedTokenID() UnresolvedTokenID {
	if c.TokenID != nil {
		return *c.TokenID
	}
	if c.NamespaceID != nil {
		return *c.NamespaceID
	}
	return nil
}

// CreateAbsolute returns a token of amount atomic units.
func (c Currency) CreateAbsolute(amount UInt64) Token {
	return NewToken(c.UnresolvedTokenID(), amount)
}

// CreateRelative returns a token of amount whole units, scaled by the
// divisibility. Overflowing amounts fail.
func (c Currency) CreateRelative(amount uint64) (Token, error) {
	scaled := new(big.Int).SetUint64(amount)
	scaled.Mul(scaled, new(big.Int).Exp(big.NewInt(10),
		big.NewInt(int64(c.Divisibility)), nil))
	if !scaled.IsUint64() {
		return Token{}, fmt.Errorf("relative amount %v overflows with divisibility %v",
			amount, c.Divisibility)
	}
	return c.CreateAbsolute(UInt64(scaled.Uint64())), nil
}

// NetworkCurrencies lists the currency used for fees and transfers and the
// currency used for harvesting. On many networks they are the same.
type NetworkCurrencies struct {
	Currency Currency
	Harvest  Currency
}

func mustNamespace(name string) *NamespaceID {
	id, err := NewNamespaceID(name)
	if err != nil {
		panic(err)
	}
	return &id
}

// Default network currencies, referenced by namespace.
var (
	CurrencyBXR = Currency{
		NamespaceID:  mustNamespace("bitxor.bxr"),
		Divisibility: 6,
		Transferable: true,
	}
	CurrencyHarvest = Currency{
		NamespaceID:  mustNamespace("bitxor.harvest"),
		Divisibility: 3,
		Transferable: true,
	}
	DefaultNetworkCurrencies = NetworkCurrencies{
		Currency: CurrencyBXR,
		Harvest:  CurrencyHarvest,
	}
)
