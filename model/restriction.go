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

// AccountRestrictionFlags select the kind and direction of an account
// restriction.
type AccountRestrictionFlags uint16

const (
	RestrictionAddress         AccountRestrictionFlags = 0x0001
	RestrictionTokenID         AccountRestrictionFlags = 0x0002
	RestrictionTransactionType AccountRestrictionFlags = 0x0004
	RestrictionOutgoing        AccountRestrictionFlags = 0x4000
	RestrictionBlock           AccountRestrictionFlags = 0x8000

	AllowIncomingAddresses = RestrictionAddress
	AllowOutgoingAddresses = RestrictionAddress | RestrictionOutgoing
	BlockIncomingAddresses = RestrictionAddress | RestrictionBlock
	BlockOutgoingAddresses = RestrictionAddress | RestrictionBlock | RestrictionOutgoing

	AllowTokens = RestrictionTokenID
	BlockTokens = RestrictionTokenID | RestrictionBlock

	AllowOutgoingTransactionTypes = RestrictionTransactionType | RestrictionOutgoing
	BlockOutgoingTransactionTypes = RestrictionTransactionType | RestrictionBlock | RestrictionOutgoing
)

// AccountRestriction is one restriction rule of an account. Only the value
// list matching the flags is set.
type AccountRestriction struct {
	Flags            AccountRestrictionFlags
	Addresses        []UnresolvedAddress
	TokenIDs         []UnresolvedTokenID
	TransactionTypes []uint16
}

// AccountRestrictions are all restriction rules of an account.
type AccountRestrictions struct {
	RecordID     string
	Version      uint16
	Address      Address
	Restrictions []AccountRestriction
}

// TokenRestrictionType is the comparison a global token restriction applies.
type TokenRestrictionType uint8

const (
	TokenRestrictionNone TokenRestrictionType = iota
	TokenRestrictionEQ
	TokenRestrictionNE
	TokenRestrictionLT
	TokenRestrictionLE
	TokenRestrictionGT
	TokenRestrictionGE
)

// TokenRestrictionEntryType tells address and global token restrictions
// apart.
type TokenRestrictionEntryType uint8

const (
	TokenRestrictionEntryAddress TokenRestrictionEntryType = 0
	TokenRestrictionEntryGlobal  TokenRestrictionEntryType = 1
)

// TokenRestriction is a *TokenAddressRestriction or a
// *TokenGlobalRestriction.
type TokenRestriction interface {
	EntryType() TokenRestrictionEntryType
	RestrictedTokenID() TokenID
}

// TokenAddressRestriction holds the restriction values assigned to an
// address for a token.
type TokenAddressRestriction struct {
	RecordID      string
	Version       uint16
	CompositeHash Bytes32
	TokenID       TokenID
	TargetAddress Address
	// Restrictions maps restriction keys to values.
	Restrictions map[UInt64]UInt64
}

func (*TokenAddressRestriction) EntryType() TokenRestrictionEntryType {
	return TokenRestrictionEntryAddress
}
func (r *TokenAddressRestriction) RestrictedTokenID() TokenID { return r.TokenID }

// TokenGlobalRestrictionItem is the rule stored under a restriction key.
type TokenGlobalRestrictionItem struct {
	ReferenceTokenID TokenID
	RestrictionValue UInt64
	RestrictionType  TokenRestrictionType
}

// TokenGlobalRestriction holds the rules that addresses must satisfy to
// transact a token.
type TokenGlobalRestriction struct {
	RecordID      string
	Version       uint16
	CompositeHash Bytes32
	TokenID       TokenID
	Restrictions  map[UInt64]TokenGlobalRestrictionItem
}

func (*TokenGlobalRestriction) EntryType() TokenRestrictionEntryType {
	return TokenRestrictionEntryGlobal
}
func (r *TokenGlobalRestriction) RestrictedTokenID() TokenID { return r.TokenID }
