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

// ReceiptSource locates the transaction that caused a receipt within its
// block. PrimaryID is the 1 based index of the transaction and SecondaryID
// the 1 based index of an inner transaction of an aggregate, or 0.
type ReceiptSource struct {
	PrimaryID   uint32
	SecondaryID uint32
}

// before returns true if s is not after o.
func (s ReceiptSource) before(o ReceiptSource) bool {
	return s.PrimaryID < o.PrimaryID ||
		(s.PrimaryID == o.PrimaryID && s.SecondaryID <= o.SecondaryID)
}

// TransactionStatement holds the receipts caused by one source.
type TransactionStatement struct {
	RecordID string
	Height   UInt64
	Source   ReceiptSource
	Receipts []Receipt
}

type AddressResolutionEntry struct {
	Source   ReceiptSource
	Resolved Address
}

// AddressResolutionStatement records what an aliased address resolved to
// within a block, as of each source that used it.
type AddressResolutionStatement struct {
	RecordID   string
	Height     UInt64
	Unresolved UnresolvedAddress
	Entries    []AddressResolutionEntry
}

type TokenResolutionEntry struct {
	Source   ReceiptSource
	Resolved TokenID
}

// TokenResolutionStatement records what an aliased token id resolved to
// within a block, as of each source that used it.
type TokenResolutionStatement struct {
	RecordID   string
	Height     UInt64
	Unresolved UnresolvedTokenID
	Entries    []TokenResolutionEntry
}

// Statement holds the receipts of a block needed to resolve aliases.
type Statement struct {
	TransactionStatements       []TransactionStatement
	AddressResolutionStatements []AddressResolutionStatement
	TokenResolutionStatements   []TokenResolutionStatement
}

// latestSource returns the index of the greatest source in sources that is
// not after at, or -1.
func latestSource(sources []ReceiptSource, at ReceiptSource) int {
	found := -1
	for i, s := range sources {
		if !s.before(at) {
			continue
		}
		if found < 0 || sources[found].before(s) {
			found = i
		}
	}
	return found
}

// ResolveAddress returns the address unresolved referred to at the given
// height and source. Addresses are returned as they are.
func (s Statement) ResolveAddress(unresolved UnresolvedAddress, height UInt64,
	primaryID, secondaryID uint32) (Address, error) {
	if !unresolved.IsAlias() {
		return unresolved.(Address), nil
	}
	for _, st := range s.AddressResolutionStatements {
		if st.Height != height ||
			!EqualUnresolvedAddress(st.Unresolved, unresolved) {
			continue
		}
		if len(st.Entries) == 1 {
			return st.Entries[0].Resolved, nil
		}
		sources := make([]ReceiptSource, len(st.Entries))
		for i, e := range st.Entries {
			sources[i] = e.Source
		}
		i := latestSource(sources, ReceiptSource{primaryID, secondaryID})
		if i < 0 {
			break
		}
		return st.Entries[i].Resolved, nil
	}
	return Address{}, fmt.Errorf(
		"no resolution found on block %v for address %v", height, unresolved)
}

// ResolveTokenID returns the token id unresolved referred to at the given
// height and source. Token ids are returned as they are.
func (s Statement) ResolveTokenID(unresolved UnresolvedTokenID, height UInt64,
	primaryID, secondaryID uint32) (TokenID, error) {
	if !unresolved.IsAlias() {
		return unresolved.(TokenID), nil
	}
	for _, st := range s.TokenResolutionStatements {
		if st.Height != height ||
			!EqualUnresolvedTokenID(st.Unresolved, unresolved) {
			continue
		}
		if len(st.Entries) == 1 {
			return st.Entries[0].Resolved, nil
		}
		sources := make([]ReceiptSource, len(st.Entries))
		for i, e := range st.Entries {
			sources[i] = e.Source
		}
		i := latestSource(sources, ReceiptSource{primaryID, secondaryID})
		if i < 0 {
			break
		}
		return st.Entries[i].Resolved, nil
	}
	return 0, fmt.Errorf(
		"no resolution found on block %v for token id %v", height, unresolved)
}
