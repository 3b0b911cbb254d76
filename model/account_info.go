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

// AccountType tells how an account takes part in harvesting.
type AccountType uint8

const (
	AccountUnlinked AccountType = iota
	AccountMain
	AccountRemote
	AccountRemoteUnlinked
)

// LinkAction links or unlinks a key.
type LinkAction uint8

const (
	Unlink LinkAction = 0
	Link   LinkAction = 1
)

// AccountLinkVotingKey is a voting key valid for a range of epochs.
type AccountLinkVotingKey struct {
	PublicKey  Bytes32
	StartEpoch uint32
	EndEpoch   uint32
}

// SupplementalPublicKeys are the keys linked to an account. Unlinked keys
// are nil.
type SupplementalPublicKeys struct {
	Linked *Bytes32
	Node   *Bytes32
	VRF    *Bytes32
	Voting []AccountLinkVotingKey
}

// ActivityBucket records harvesting activity of an account.
type ActivityBucket struct {
	StartHeight      UInt64
	TotalFeesPaid    UInt64
	BeneficiaryCount uint32
	RawScore         UInt64
}

// AccountInfo is a snapshot of an account state.
type AccountInfo struct {
	RecordID               string
	Version                uint16
	Address                Address
	AddressHeight          UInt64
	PublicKey              Bytes32
	PublicKeyHeight        UInt64
	AccountType            AccountType
	SupplementalPublicKeys SupplementalPublicKeys
	ActivityBuckets        []ActivityBucket
	Tokens                 []Token
	Importance             UInt64
	ImportanceHeight       UInt64
}

// PublicAccount returns the public key and address of the account. The
// public key is zero until the account announced a transaction.
func (a AccountInfo) PublicAccount() PublicAccount {
	return PublicAccount{PublicKey: a.PublicKey, Address: a.Address}
}

// AccountNames are the namespaces linked to an address.
type AccountNames struct {
	Address Address
	Names   []NamespaceName
}

// TokenNames are the namespaces linked to a token.
type TokenNames struct {
	TokenID TokenID
	Names   []NamespaceName
}
