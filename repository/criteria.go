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

package repository

import (
	"net/url"
	"strconv"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
)

type AccountOrderBy string

const (
	AccountOrderByID      AccountOrderBy = "id"
	AccountOrderByBalance AccountOrderBy = "balance"
)

type AccountSearchCriteria struct {
	Pagination
	OrderBy AccountOrderBy
	// TokenID restricts the results to holders of the token.
	TokenID *model.TokenID
}

func (c AccountSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setString(q, "orderBy", string(c.OrderBy))
	if c.TokenID != nil {
		q.Set("tokenId", c.TokenID.Hex())
	}
	return q
}

type BlockOrderBy string

const (
	BlockOrderByID     BlockOrderBy = "id"
	BlockOrderByHeight BlockOrderBy = "height"
)

type BlockSearchCriteria struct {
	Pagination
	OrderBy            BlockOrderBy
	SignerPublicKey    *model.Bytes32
	BeneficiaryAddress *model.Address
}

func (c BlockSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setString(q, "orderBy", string(c.OrderBy))
	if c.SignerPublicKey != nil {
		q.Set("signerPublicKey", c.SignerPublicKey.String())
	}
	setAddress(q, "beneficiaryAddress", c.BeneficiaryAddress)
	return q
}

type NamespaceSearchCriteria struct {
	Pagination
	OwnerAddress     *model.Address
	RegistrationType *model.NamespaceRegistrationType
	Level0           *model.NamespaceID
	AliasType        *model.AliasType
}

func (c NamespaceSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setAddress(q, "ownerAddress", c.OwnerAddress)
	if c.RegistrationType != nil {
		q.Set("registrationType", strconv.Itoa(int(*c.RegistrationType)))
	}
	if c.Level0 != nil {
		q.Set("level0", c.Level0.Hex())
	}
	if c.AliasType != nil {
		q.Set("aliasType", strconv.Itoa(int(*c.AliasType)))
	}
	return q
}

type TokenSearchCriteria struct {
	Pagination
	OwnerAddress *model.Address
}

func (c TokenSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setAddress(q, "ownerAddress", c.OwnerAddress)
	return q
}

type MetadataSearchCriteria struct {
	Pagination
	SourceAddress     *model.Address
	TargetAddress     *model.Address
	ScopedMetadataKey *model.UInt64
	// TargetID is a TokenID or a NamespaceID.
	TargetID     model.UnresolvedTokenID
	MetadataType *model.MetadataType
}

func (c MetadataSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setAddress(q, "sourceAddress", c.SourceAddress)
	setAddress(q, "targetAddress", c.TargetAddress)
	if c.ScopedMetadataKey != nil {
		q.Set("scopedMetadataKey", c.ScopedMetadataKey.Hex())
	}
	if c.TargetID != nil {
		q.Set("targetId", c.TargetID.Hex())
	}
	if c.MetadataType != nil {
		q.Set("metadataType", strconv.Itoa(int(*c.MetadataType)))
	}
	return q
}

type RestrictionAccountSearchCriteria struct {
	Pagination
	Address *model.Address
}

func (c RestrictionAccountSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setAddress(q, "address", c.Address)
	return q
}

type RestrictionTokenSearchCriteria struct {
	Pagination
	TokenID       *model.TokenID
	EntryType     *model.TokenRestrictionEntryType
	TargetAddress *model.Address
}

func (c RestrictionTokenSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	if c.TokenID != nil {
		q.Set("tokenId", c.TokenID.Hex())
	}
	if c.EntryType != nil {
		q.Set("entryType", strconv.Itoa(int(*c.EntryType)))
	}
	setAddress(q, "targetAddress", c.TargetAddress)
	return q
}

type TransactionStatementSearchCriteria struct {
	Pagination
	Height           *model.UInt64
	FromHeight       *model.UInt64
	ToHeight         *model.UInt64
	ReceiptTypes     []model.ReceiptType
	RecipientAddress *model.Address
	SenderAddress    *model.Address
	TargetAddress    *model.Address
	ArtifactID       *model.UInt64
}

func (c TransactionStatementSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setUInt64(q, "height", c.Height)
	setUInt64(q, "fromHeight", c.FromHeight)
	setUInt64(q, "toHeight", c.ToHeight)
	for _, t := range c.ReceiptTypes {
		q.Add("receiptType", strconv.Itoa(int(t)))
	}
	setAddress(q, "recipientAddress", c.RecipientAddress)
	setAddress(q, "senderAddress", c.SenderAddress)
	setAddress(q, "targetAddress", c.TargetAddress)
	if c.ArtifactID != nil {
		q.Set("artifactId", c.ArtifactID.Hex())
	}
	return q
}

type ResolutionStatementSearchCriteria struct {
	Pagination
	Height *model.UInt64
}

func (c ResolutionStatementSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setUInt64(q, "height", c.Height)
	return q
}

type TransactionSearchCriteria struct {
	Pagination
	// Group is required.
	Group            model.TransactionGroup
	Address          *model.Address
	RecipientAddress *model.Address
	SignerPublicKey  *model.Bytes32
	Height           *model.UInt64
	FromHeight       *model.UInt64
	ToHeight         *model.UInt64
	Types            []transaction.Type
	// Embedded includes inner transactions of aggregates.
	Embedded           *bool
	TransferTokenID    *model.TokenID
	FromTransferAmount *model.UInt64
	ToTransferAmount   *model.UInt64
}

func (c TransactionSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setAddress(q, "address", c.Address)
	setAddress(q, "recipientAddress", c.RecipientAddress)
	if c.SignerPublicKey != nil {
		q.Set("signerPublicKey", c.SignerPublicKey.String())
	}
	setUInt64(q, "height", c.Height)
	setUInt64(q, "fromHeight", c.FromHeight)
	setUInt64(q, "toHeight", c.ToHeight)
	for _, t := range c.Types {
		q.Add("type", strconv.Itoa(int(t)))
	}
	if c.Embedded != nil {
		q.Set("embedded", strconv.FormatBool(*c.Embedded))
	}
	if c.TransferTokenID != nil {
		q.Set("transferTokenId", c.TransferTokenID.Hex())
	}
	setUInt64(q, "fromTransferAmount", c.FromTransferAmount)
	setUInt64(q, "toTransferAmount", c.ToTransferAmount)
	return q
}

type HashLockSearchCriteria struct {
	Pagination
	Address *model.Address
}

func (c HashLockSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setAddress(q, "address", c.Address)
	return q
}

type SecretLockSearchCriteria struct {
	Pagination
	Address *model.Address
	Secret  *model.Bytes32
}

func (c SecretLockSearchCriteria) values() url.Values {
	q := c.Pagination.values()
	setAddress(q, "address", c.Address)
	if c.Secret != nil {
		q.Set("secret", c.Secret.String())
	}
	return q
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setAddress(q url.Values, key string, adr *model.Address) {
	if adr != nil {
		q.Set(key, adr.Plain())
	}
}

func setUInt64(q url.Values, key string, v *model.UInt64) {
	if v != nil {
		q.Set(key, v.String())
	}
}
