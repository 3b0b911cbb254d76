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

import "strings"

// TokenFlags are the properties fixed when a token is defined.
type TokenFlags uint8

const (
	TokenSupplyMutable TokenFlags = 1 << iota
	TokenTransferable
	TokenRestrictable
	TokenRevokable

	TokenNoFlags TokenFlags = 0
)

func NewTokenFlags(supplyMutable, transferable, restrictable, revokable bool) TokenFlags {
	var f TokenFlags
	if supplyMutable {
		f |= TokenSupplyMutable
	}
	if transferable {
		f |= TokenTransferable
	}
	if restrictable {
		f |= TokenRestrictable
	}
	if revokable {
		f |= TokenRevokable
	}
	return f
}

func (f TokenFlags) SupplyMutable() bool { return f&TokenSupplyMutable != 0 }
func (f TokenFlags) Transferable() bool  { return f&TokenTransferable != 0 }
func (f TokenFlags) Restrictable() bool  { return f&TokenRestrictable != 0 }
func (f TokenFlags) Revokable() bool     { return f&TokenRevokable != 0 }

func (f TokenFlags) String() string {
	var names []string
	for _, n := range []struct {
		flag TokenFlags
		name string
	}{
		{TokenSupplyMutable, "supplymutable"},
		{TokenTransferable, "transferable"},
		{TokenRestrictable, "restrictable"},
		{TokenRevokable, "revokable"},
	} {
		if f&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// TokenSupplyChangeAction tells whether the supply grows or shrinks.
type TokenSupplyChangeAction uint8

const (
	TokenSupplyDecrease TokenSupplyChangeAction = 0
	TokenSupplyIncrease TokenSupplyChangeAction = 1
)

// TokenInfo is a snapshot of a token definition.
type TokenInfo struct {
	RecordID     string
	Version      uint16
	ID           TokenID
	Supply       UInt64
	StartHeight  UInt64
	OwnerAddress Address
	Revision     uint32
	Flags        TokenFlags
	Divisibility uint8
	// Duration of zero means the token never expires.
	Duration UInt64
}

// TokenAmountView is a token balance decorated with the token definition.
type TokenAmountView struct {
	TokenInfo TokenInfo
	Amount    UInt64
}

// RelativeAmount returns the amount in whole units.
func (v TokenAmountView) RelativeAmount() float64 {
	div := 1.0
	for i := uint8(0); i < v.TokenInfo.Divisibility; i++ {
		div *= 10
	}
	return float64(v.Amount) / div
}

// FullName returns the token id in hex.
func (v TokenAmountView) FullName() string { return v.TokenInfo.ID.Hex() }
