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
	"context"
	"fmt"

	"github.com/bitxorcorp/bitxor-sdk-go/api"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
)

// TransactionHTTP implements TransactionRepository.
type TransactionHTTP struct {
	*api.Client
}

var _ TransactionRepository = TransactionHTTP{}

func NewTransactionHTTP(c *api.Client) TransactionHTTP { return TransactionHTTP{c} }

func groupPath(group model.TransactionGroup) (string, error) {
	switch group {
	case model.TransactionConfirmed, model.TransactionUnconfirmed,
		model.TransactionPartial:
		return "/transactions/" + string(group), nil
	}
	return "", fmt.Errorf("transaction group %q: not searchable", group)
}

// GetTransaction returns the transaction with the given hash or record id.
func (r TransactionHTTP) GetTransaction(ctx context.Context, id string,
	group model.TransactionGroup) (*transaction.Transaction, error) {
	path, err := groupPath(group)
	if err != nil {
		return nil, err
	}
	var dto transaction.DTO
	if err := r.Get(ctx, path+"/"+id, nil, &dto); err != nil {
		return nil, err
	}
	return transaction.CreateFromDTO(dto)
}

func (r TransactionHTTP) GetTransactionsByIDs(ctx context.Context, ids []string,
	group model.TransactionGroup) ([]*transaction.Transaction, error) {
	path, err := groupPath(group)
	if err != nil {
		return nil, err
	}
	var res []transaction.DTO
	params := api.ParamsTransactionIDs{TransactionIDs: ids}
	if err := r.Post(ctx, path, params, &res); err != nil {
		return nil, err
	}
	return mapAll(res, transaction.CreateFromDTO)
}

func (r TransactionHTTP) Search(ctx context.Context,
	criteria TransactionSearchCriteria) (Page[*transaction.Transaction], error) {
	path, err := groupPath(criteria.Group)
	if err != nil {
		return Page[*transaction.Transaction]{}, err
	}
	return search(ctx, r.Client, path, criteria, transaction.CreateFromDTO)
}

// GetTransactionEffectiveFee returns the fee paid by a confirmed
// transaction: its size times the fee multiplier of its block.
func (r TransactionHTTP) GetTransactionEffectiveFee(ctx context.Context,
	id string) (model.UInt64, error) {
	tx, err := r.GetTransaction(ctx, id, model.TransactionConfirmed)
	if err != nil {
		return 0, err
	}
	if tx.Info == nil {
		return 0, transaction.ErrNoTransactionInfo
	}
	block, err := NewBlockHTTP(r.Client).GetBlockByHeight(ctx, tx.Info.Height)
	if err != nil {
		return 0, err
	}
	size, err := tx.Size()
	if err != nil {
		return 0, err
	}
	return model.UInt64(block.FeeMultiplier) * model.UInt64(size), nil
}

// Announce sends a signed transaction to the node. Aggregate bonded
// transactions must use AnnounceAggregateBonded.
func (r TransactionHTTP) Announce(ctx context.Context,
	signed transaction.SignedTransaction) (AnnounceResult, error) {
	if signed.Type == transaction.TypeAggregateBonded {
		return AnnounceResult{}, fmt.Errorf(
			"%w: use AnnounceAggregateBonded for %v", ErrInvalidAnnounce, signed.Type)
	}
	return r.announce(ctx, "/transactions", signed)
}

// AnnounceAggregateBonded sends a signed aggregate bonded transaction to the
// partial cache of the node. Its hash lock must be confirmed first.
func (r TransactionHTTP) AnnounceAggregateBonded(ctx context.Context,
	signed transaction.SignedTransaction) (AnnounceResult, error) {
	if signed.Type != transaction.TypeAggregateBonded {
		return AnnounceResult{}, fmt.Errorf(
			"%w: only aggregate bonded transactions can be announced as partial, got %v",
			ErrInvalidAnnounce, signed.Type)
	}
	return r.announce(ctx, "/transactions/partial", signed)
}

func (r TransactionHTTP) announce(ctx context.Context, path string,
	signed transaction.SignedTransaction) (AnnounceResult, error) {
	logger.Debugf("announce %v %v", signed.Type, signed.Hash)
	var res api.ResultAnnounce
	if err := r.Put(ctx, path, api.ParamsPayload{Payload: signed.Payload}, &res); err != nil {
		return AnnounceResult{}, err
	}
	return AnnounceResult(res), nil
}

func (r TransactionHTTP) AnnounceAggregateBondedCosignature(ctx context.Context,
	cosignature transaction.CosignatureSignedTransaction) (AnnounceResult, error) {
	params := api.ParamsCosignature{
		ParentHash:      cosignature.ParentHash,
		Signature:       cosignature.Signature,
		SignerPublicKey: cosignature.SignerPublicKey,
		Version:         model.UInt64(cosignature.Version),
	}
	var res api.ResultAnnounce
	if err := r.Put(ctx, "/transactions/cosignature", params, &res); err != nil {
		return AnnounceResult{}, err
	}
	return AnnounceResult(res), nil
}

// TransactionStatusHTTP implements TransactionStatusRepository.
type TransactionStatusHTTP struct {
	*api.Client
}

var _ TransactionStatusRepository = TransactionStatusHTTP{}

func NewTransactionStatusHTTP(c *api.Client) TransactionStatusHTTP {
	return TransactionStatusHTTP{c}
}

func (r TransactionStatusHTTP) GetTransactionStatus(ctx context.Context,
	hash model.Bytes32) (model.TransactionStatus, error) {
	var res api.ResultTransactionStatus
	if err := r.Get(ctx, "/transactionStatus/"+hash.String(), nil, &res); err != nil {
		return model.TransactionStatus{}, err
	}
	return transactionStatusFromDTO(res), nil
}

func (r TransactionStatusHTTP) GetTransactionStatuses(ctx context.Context,
	hashes []model.Bytes32) ([]model.TransactionStatus, error) {
	params := api.ParamsTransactionHashes{Hashes: make([]string, len(hashes))}
	for i, h := range hashes {
		params.Hashes[i] = h.String()
	}
	var res []api.ResultTransactionStatus
	if err := r.Post(ctx, "/transactionStatus", params, &res); err != nil {
		return nil, err
	}
	return mapAll(res, infallible(transactionStatusFromDTO))
}
