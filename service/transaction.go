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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitxorcorp/bitxor-sdk-go/listener"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/repository"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
	"golang.org/x/sync/errgroup"
)

// ErrListenerClosed is returned when the listener closes before the
// announced transaction is confirmed or rejected.
var ErrListenerClosed = errors.New("listener closed")

type TransactionService struct {
	transactions repository.TransactionRepository
	receipts     repository.ReceiptRepository
}

func NewTransactionService(transactions repository.TransactionRepository,
	receipts repository.ReceiptRepository) TransactionService {
	return TransactionService{transactions: transactions, receipts: receipts}
}

// Announce announces signed and waits until it is confirmed. A rejection by
// the node is returned as a model.TransactionStatusError. l must be open.
func (s TransactionService) Announce(ctx context.Context, l *listener.Listener,
	signed transaction.SignedTransaction) (*transaction.Transaction, error) {
	return s.announceAndWait(ctx, l, signed, l.Confirmed,
		s.transactions.Announce)
}

// AnnounceAggregateBonded announces the signed bonded aggregate and waits
// until it reaches the partial cache of the node.
func (s TransactionService) AnnounceAggregateBonded(ctx context.Context,
	l *listener.Listener,
	signed transaction.SignedTransaction) (*transaction.Transaction, error) {
	return s.announceAndWait(ctx, l, signed, l.AggregateBondedAdded,
		s.transactions.AnnounceAggregateBonded)
}

// AnnounceHashLockAggregateBonded announces the hash lock, waits for its
// confirmation and then announces the bonded aggregate it locks funds for.
func (s TransactionService) AnnounceHashLockAggregateBonded(ctx context.Context,
	l *listener.Listener, signedHashLock,
	signedAggregate transaction.SignedTransaction) (*transaction.Transaction, error) {
	if _, err := s.Announce(ctx, l, signedHashLock); err != nil {
		return nil, fmt.Errorf("hash lock: %w", err)
	}
	return s.AnnounceAggregateBonded(ctx, l, signedAggregate)
}

type subscribeFunc func(ctx context.Context, adr model.UnresolvedAddress,
	hash *model.Bytes32, multisig bool) (*listener.Subscription[*transaction.Transaction], error)

type announceFunc func(ctx context.Context,
	signed transaction.SignedTransaction) (repository.AnnounceResult, error)

func (s TransactionService) announceAndWait(ctx context.Context,
	l *listener.Listener, signed transaction.SignedTransaction,
	subscribe subscribeFunc, announce announceFunc) (*transaction.Transaction, error) {
	signer := signed.Signer.Address
	added, err := subscribe(ctx, signer, &signed.Hash, false)
	if err != nil {
		return nil, err
	}
	defer added.Unsubscribe()
	status, err := l.Status(ctx, signer, &signed.Hash)
	if err != nil {
		return nil, err
	}
	defer status.Unsubscribe()

	res, err := announce(ctx, signed)
	if err != nil {
		return nil, err
	}
	logger.Debugf("announced %v: %v", signed.Hash, res.Message)

	select {
	case tx, ok := <-added.C:
		if !ok {
			return nil, listenerErr(l)
		}
		return tx, nil
	case st, ok := <-status.C:
		if !ok {
			return nil, listenerErr(l)
		}
		return nil, st
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func listenerErr(l *listener.Listener) error {
	if err := l.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrListenerClosed, err)
	}
	return ErrListenerClosed
}

// ResolveAliases returns the confirmed transactions with the given hashes or
// ids with every namespace alias replaced by what it resolved to. The
// resolution statements are only loaded for blocks holding transactions
// that may use aliases.
func (s TransactionService) ResolveAliases(ctx context.Context,
	ids []string) ([]*transaction.Transaction, error) {
	txs, err := s.transactions.GetTransactionsByIDs(ctx, ids,
		model.TransactionConfirmed)
	if err != nil {
		return nil, err
	}

	statements := make(map[model.UInt64]*model.Statement)
	for _, tx := range txs {
		if !tx.ShouldResolve() {
			continue
		}
		if tx.Info == nil {
			return nil, transaction.ErrNoTransactionInfo
		}
		if _, ok := statements[tx.Info.Height]; !ok {
			statements[tx.Info.Height] = new(model.Statement)
		}
	}
	g, gctx := errgroup.WithContext(ctx)
	for height, st := range statements {
		height, st := height, st
		g.Go(func() (err error) {
			*st, err = s.statement(gctx, height)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resolved := make([]*transaction.Transaction, len(txs))
	for i, tx := range txs {
		if !tx.ShouldResolve() {
			resolved[i] = tx
			continue
		}
		if resolved[i], err = tx.ResolveAliases(*statements[tx.Info.Height]); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

// statement loads the resolution statements of the block at height.
func (s TransactionService) statement(ctx context.Context,
	height model.UInt64) (model.Statement, error) {
	criteria := repository.ResolutionStatementSearchCriteria{Height: &height}
	var st model.Statement
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		st.AddressResolutionStatements, err = repository.Collect(gctx,
			repository.SearchFunc[model.AddressResolutionStatement,
				repository.ResolutionStatementSearchCriteria](
				s.receipts.SearchAddressResolutionStatements), criteria)
		return
	})
	g.Go(func() (err error) {
		st.TokenResolutionStatements, err = repository.Collect(gctx,
			repository.SearchFunc[model.TokenResolutionStatement,
				repository.ResolutionStatementSearchCriteria](
				s.receipts.SearchTokenResolutionStatements), criteria)
		return
	})
	if err := g.Wait(); err != nil {
		return model.Statement{}, fmt.Errorf("statements of block %v: %w", height, err)
	}
	return st, nil
}
