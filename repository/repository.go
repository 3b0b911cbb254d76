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

// Package repository implements typed clients of the resource groups of the
// Bitxor REST gateway. Every repository is an interface with an *HTTP
// implementation backed by an api.Client; a Factory composes them.
package repository

import (
	"context"
	"errors"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
)

// ErrInvalidAnnounce is returned, before any request, when a signed
// transaction is announced through the wrong endpoint.
var ErrInvalidAnnounce = errors.New("invalid announce")

type AccountRepository interface {
	GetAccountInfo(ctx context.Context, adr model.Address) (model.AccountInfo, error)
	GetAccountsInfo(ctx context.Context, addresses []model.Address) ([]model.AccountInfo, error)
	Search(ctx context.Context, criteria AccountSearchCriteria) (Page[model.AccountInfo], error)
}

type BlockRepository interface {
	GetBlockByHeight(ctx context.Context, height model.UInt64) (model.BlockInfo, error)
	Search(ctx context.Context, criteria BlockSearchCriteria) (Page[model.BlockInfo], error)
	GetMerkleTransaction(ctx context.Context, height model.UInt64,
		hash model.Bytes32) (model.MerkleProofInfo, error)
}

type ChainRepository interface {
	GetChainInfo(ctx context.Context) (model.ChainInfo, error)
}

type NodeRepository interface {
	GetNodeInfo(ctx context.Context) (model.NodeInfo, error)
	GetNodeHealth(ctx context.Context) (model.NodeHealth, error)
	GetServerInfo(ctx context.Context) (model.ServerInfo, error)
}

type NetworkRepository interface {
	GetNetworkType(ctx context.Context) (model.NetworkType, error)
	GetNetworkProperties(ctx context.Context) (model.NetworkProperties, error)
	GetTransactionFees(ctx context.Context) (model.TransactionFees, error)
	GetRentalFees(ctx context.Context) (model.RentalFees, error)
}

type NamespaceRepository interface {
	GetNamespace(ctx context.Context, id model.NamespaceID) (model.NamespaceInfo, error)
	GetNamespacesNames(ctx context.Context, ids []model.NamespaceID) ([]model.NamespaceName, error)
	GetLinkedAddress(ctx context.Context, id model.NamespaceID) (model.Address, error)
	GetLinkedTokenID(ctx context.Context, id model.NamespaceID) (model.TokenID, error)
	GetAccountsNames(ctx context.Context, addresses []model.Address) ([]model.AccountNames, error)
	GetTokensNames(ctx context.Context, ids []model.TokenID) ([]model.TokenNames, error)
	Search(ctx context.Context, criteria NamespaceSearchCriteria) (Page[model.NamespaceInfo], error)
}

type TokenRepository interface {
	GetToken(ctx context.Context, id model.TokenID) (model.TokenInfo, error)
	GetTokens(ctx context.Context, ids []model.TokenID) ([]model.TokenInfo, error)
	Search(ctx context.Context, criteria TokenSearchCriteria) (Page[model.TokenInfo], error)
}

type MetadataRepository interface {
	GetMetadata(ctx context.Context, compositeHash model.Bytes32) (model.MetadataEntry, error)
	Search(ctx context.Context, criteria MetadataSearchCriteria) (Page[model.MetadataEntry], error)
}

type RestrictionAccountRepository interface {
	GetAccountRestrictions(ctx context.Context, adr model.Address) (model.AccountRestrictions, error)
	Search(ctx context.Context, criteria RestrictionAccountSearchCriteria) (Page[model.AccountRestrictions], error)
}

type RestrictionTokenRepository interface {
	GetTokenRestrictions(ctx context.Context, compositeHash model.Bytes32) (model.TokenRestriction, error)
	Search(ctx context.Context, criteria RestrictionTokenSearchCriteria) (Page[model.TokenRestriction], error)
}

type ReceiptRepository interface {
	SearchReceipts(ctx context.Context, criteria TransactionStatementSearchCriteria) (Page[model.TransactionStatement], error)
	SearchAddressResolutionStatements(ctx context.Context, criteria ResolutionStatementSearchCriteria) (Page[model.AddressResolutionStatement], error)
	SearchTokenResolutionStatements(ctx context.Context, criteria ResolutionStatementSearchCriteria) (Page[model.TokenResolutionStatement], error)
}

type TransactionRepository interface {
	GetTransaction(ctx context.Context, id string, group model.TransactionGroup) (*transaction.Transaction, error)
	GetTransactionsByIDs(ctx context.Context, ids []string, group model.TransactionGroup) ([]*transaction.Transaction, error)
	Search(ctx context.Context, criteria TransactionSearchCriteria) (Page[*transaction.Transaction], error)
	GetTransactionEffectiveFee(ctx context.Context, id string) (model.UInt64, error)
	Announce(ctx context.Context, signed transaction.SignedTransaction) (AnnounceResult, error)
	AnnounceAggregateBonded(ctx context.Context, signed transaction.SignedTransaction) (AnnounceResult, error)
	AnnounceAggregateBondedCosignature(ctx context.Context, cosignature transaction.CosignatureSignedTransaction) (AnnounceResult, error)
}

type TransactionStatusRepository interface {
	GetTransactionStatus(ctx context.Context, hash model.Bytes32) (model.TransactionStatus, error)
	GetTransactionStatuses(ctx context.Context, hashes []model.Bytes32) ([]model.TransactionStatus, error)
}

type MultisigRepository interface {
	GetMultisigAccountInfo(ctx context.Context, adr model.Address) (model.MultisigAccountInfo, error)
	GetMultisigAccountGraphInfo(ctx context.Context, adr model.Address) (model.MultisigAccountGraphInfo, error)
}

type HashLockRepository interface {
	GetHashLock(ctx context.Context, hash model.Bytes32) (model.HashLockInfo, error)
	Search(ctx context.Context, criteria HashLockSearchCriteria) (Page[model.HashLockInfo], error)
}

type SecretLockRepository interface {
	Search(ctx context.Context, criteria SecretLockSearchCriteria) (Page[model.SecretLockInfo], error)
}

// AnnounceResult is the acknowledgement of an announced payload. It does not
// mean the transaction is valid.
type AnnounceResult struct {
	Message string
}
