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

package transaction

import "fmt"

// Type is the numeric tag of a transaction variant.
type Type uint16

const (
	TypeTransfer                    Type = 16724
	TypeNamespaceRegistration       Type = 16718
	TypeAddressAlias                Type = 16974
	TypeTokenAlias                  Type = 17230
	TypeTokenDefinition             Type = 16717
	TypeTokenSupplyChange           Type = 16973
	TypeTokenSupplyRevocation       Type = 17229
	TypeMultisigAccountModification Type = 16725
	TypeAggregateComplete           Type = 16705
	TypeAggregateBonded             Type = 16961
	TypeHashLock                    Type = 16712
	TypeSecretLock                  Type = 16722
	TypeSecretProof                 Type = 16978
	TypeAccountAddressRestriction   Type = 16720
	TypeAccountTokenRestriction     Type = 16976
	TypeAccountOperationRestriction Type = 17232
	TypeAccountKeyLink              Type = 16716
	TypeTokenAddressRestriction     Type = 16977
	TypeTokenGlobalRestriction      Type = 16721
	TypeAccountMetadata             Type = 16708
	TypeTokenMetadata               Type = 16964
	TypeNamespaceMetadata           Type = 17220
	TypeVrfKeyLink                  Type = 16963
	TypeVotingKeyLink               Type = 16707
	TypeNodeKeyLink                 Type = 16972
)

// Version is the schema version of every supported variant.
const Version = 1

type variant struct {
	name    string
	version uint8
	new     func() Body
}

// variants is the single registry of supported transaction types. Payload
// decoding, DTO decoding and DTO encoding all dispatch through it.
var variants = map[Type]variant{
	TypeTransfer: {"TRANSFER", Version,
		func() Body { return &Transfer{} }},
	TypeNamespaceRegistration: {"NAMESPACE_REGISTRATION", Version,
		func() Body { return &NamespaceRegistration{} }},
	TypeAddressAlias: {"ADDRESS_ALIAS", Version,
		func() Body { return &AddressAlias{} }},
	TypeTokenAlias: {"TOKEN_ALIAS", Version,
		func() Body { return &TokenAlias{} }},
	TypeTokenDefinition: {"TOKEN_DEFINITION", Version,
		func() Body { return &TokenDefinition{} }},
	TypeTokenSupplyChange: {"TOKEN_SUPPLY_CHANGE", Version,
		func() Body { return &TokenSupplyChange{} }},
	TypeTokenSupplyRevocation: {"TOKEN_SUPPLY_REVOCATION", Version,
		func() Body { return &TokenSupplyRevocation{} }},
	TypeMultisigAccountModification: {"MULTISIG_ACCOUNT_MODIFICATION", Version,
		func() Body { return &MultisigAccountModification{} }},
	TypeAggregateComplete: {"AGGREGATE_COMPLETE", Version,
		func() Body { return &Aggregate{} }},
	TypeAggregateBonded: {"AGGREGATE_BONDED", Version,
		func() Body { return &Aggregate{Bonded: true} }},
	TypeHashLock: {"HASH_LOCK", Version,
		func() Body { return &HashLock{} }},
	TypeSecretLock: {"SECRET_LOCK", Version,
		func() Body { return &SecretLock{} }},
	TypeSecretProof: {"SECRET_PROOF", Version,
		func() Body { return &SecretProof{} }},
	TypeAccountAddressRestriction: {"ACCOUNT_ADDRESS_RESTRICTION", Version,
		func() Body { return &AccountAddressRestriction{} }},
	TypeAccountTokenRestriction: {"ACCOUNT_TOKEN_RESTRICTION", Version,
		func() Body { return &AccountTokenRestriction{} }},
	TypeAccountOperationRestriction: {"ACCOUNT_OPERATION_RESTRICTION", Version,
		func() Body { return &AccountOperationRestriction{} }},
	TypeAccountKeyLink: {"ACCOUNT_KEY_LINK", Version,
		func() Body { return &AccountKeyLink{} }},
	TypeTokenAddressRestriction: {"TOKEN_ADDRESS_RESTRICTION", Version,
		func() Body { return &TokenAddressRestriction{} }},
	TypeTokenGlobalRestriction: {"TOKEN_GLOBAL_RESTRICTION", Version,
		func() Body { return &TokenGlobalRestriction{} }},
	TypeAccountMetadata: {"ACCOUNT_METADATA", Version,
		func() Body { return &AccountMetadata{} }},
	TypeTokenMetadata: {"TOKEN_METADATA", Version,
		func() Body { return &TokenMetadata{} }},
	TypeNamespaceMetadata: {"NAMESPACE_METADATA", Version,
		func() Body { return &NamespaceMetadata{} }},
	TypeVrfKeyLink: {"VRF_KEY_LINK", Version,
		func() Body { return &VrfKeyLink{} }},
	TypeVotingKeyLink: {"VOTING_KEY_LINK", Version,
		func() Body { return &VotingKeyLink{} }},
	TypeNodeKeyLink: {"NODE_KEY_LINK", Version,
		func() Body { return &NodeKeyLink{} }},
}

// Types returns every supported transaction type.
func Types() []Type {
	types := make([]Type, 0, len(variants))
	for t := range variants {
		types = append(types, t)
	}
	return types
}

// IsAggregate returns true for the complete and bonded aggregate types.
func (t Type) IsAggregate() bool {
	return t == TypeAggregateComplete || t == TypeAggregateBonded
}

func (t Type) String() string {
	if v, ok := variants[t]; ok {
		return v.name
	}
	return fmt.Sprintf("Type(%d)", uint16(t))
}

// newBody returns an empty body for t. The version is only checked when it
// is not zero.
func newBody(t Type, version uint8) (Body, error) {
	v, ok := variants[t]
	if !ok {
		return nil, fmt.Errorf("transaction type %v: not implemented", uint16(t))
	}
	if version != 0 && version != v.version {
		return nil, fmt.Errorf(
			"transaction type %v version %v: not implemented", t, version)
	}
	return v.new(), nil
}
