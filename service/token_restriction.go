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
	"fmt"
	"math"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/repository"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
)

// NoAddressRestrictionValue is the previous value of an address that has no
// restriction value for a key.
const NoAddressRestrictionValue = model.UInt64(math.MaxUint64)

// TokenRestrictionTransactionService builds token restriction transactions
// carrying the current restriction values as their previous values.
type TokenRestrictionTransactionService struct {
	restrictions repository.RestrictionTokenRepository
	namespaces   repository.NamespaceRepository
}

func NewTokenRestrictionTransactionService(
	restrictions repository.RestrictionTokenRepository,
	namespaces repository.NamespaceRepository) TokenRestrictionTransactionService {
	return TokenRestrictionTransactionService{
		restrictions: restrictions,
		namespaces:   namespaces,
	}
}

// CreateTokenGlobalRestrictionTransaction returns an unsigned transaction
// setting the global restriction of tokenID for key. A nil
// referenceTokenID compares against tokenID itself.
func (s TokenRestrictionTransactionService) CreateTokenGlobalRestrictionTransaction(
	ctx context.Context, network model.NetworkType, deadline model.Deadline,
	tokenID model.UnresolvedTokenID, key, value model.UInt64,
	restrictionType model.TokenRestrictionType,
	referenceTokenID model.UnresolvedTokenID,
	maxFee model.UInt64) (*transaction.Transaction, error) {
	id, err := s.resolveTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	body := &transaction.TokenGlobalRestriction{
		TokenID:             tokenID,
		ReferenceTokenID:    referenceTokenID,
		RestrictionKey:      key,
		NewRestrictionValue: value,
		NewRestrictionType:  restrictionType,
	}
	global, err := s.globalRestriction(ctx, id)
	if err != nil {
		return nil, err
	}
	if global != nil {
		if item, ok := global.Restrictions[key]; ok {
			body.PreviousRestrictionValue = item.RestrictionValue
			body.PreviousRestrictionType = item.RestrictionType
		}
	}
	return transaction.New(network, deadline, maxFee, body), nil
}

// CreateTokenAddressRestrictionTransaction returns an unsigned transaction
// setting the restriction value of target for tokenID and key. The token
// must have a global restriction for key.
func (s TokenRestrictionTransactionService) CreateTokenAddressRestrictionTransaction(
	ctx context.Context, network model.NetworkType, deadline model.Deadline,
	tokenID model.UnresolvedTokenID, key model.UInt64,
	target model.UnresolvedAddress, value model.UInt64,
	maxFee model.UInt64) (*transaction.Transaction, error) {
	id, err := s.resolveTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	adr, err := s.resolveAddress(ctx, target)
	if err != nil {
		return nil, err
	}
	global, err := s.globalRestriction(ctx, id)
	if err != nil {
		return nil, err
	}
	if global == nil {
		return nil, fmt.Errorf("token %v: no global restriction", id)
	}
	if _, ok := global.Restrictions[key]; !ok {
		return nil, fmt.Errorf("token %v: no global restriction for key %v", id, key)
	}

	previous := NoAddressRestrictionValue
	entryType := model.TokenRestrictionEntryAddress
	page, err := s.restrictions.Search(ctx, repository.RestrictionTokenSearchCriteria{
		TokenID:       &id,
		EntryType:     &entryType,
		TargetAddress: &adr,
	})
	if err != nil {
		return nil, err
	}
	for _, r := range page.Data {
		if r, ok := r.(*model.TokenAddressRestriction); ok {
			if v, ok := r.Restrictions[key]; ok {
				previous = v
			}
			break
		}
	}

	return transaction.New(network, deadline, maxFee,
		&transaction.TokenAddressRestriction{
			TokenID:                  tokenID,
			RestrictionKey:           key,
			PreviousRestrictionValue: previous,
			NewRestrictionValue:      value,
			TargetAddress:            target,
		}), nil
}

// globalRestriction returns nil if id has no global restriction.
func (s TokenRestrictionTransactionService) globalRestriction(ctx context.Context,
	id model.TokenID) (*model.TokenGlobalRestriction, error) {
	entryType := model.TokenRestrictionEntryGlobal
	page, err := s.restrictions.Search(ctx, repository.RestrictionTokenSearchCriteria{
		TokenID:   &id,
		EntryType: &entryType,
	})
	if err != nil {
		return nil, err
	}
	for _, r := range page.Data {
		if r, ok := r.(*model.TokenGlobalRestriction); ok {
			return r, nil
		}
	}
	return nil, nil
}

func (s TokenRestrictionTransactionService) resolveTokenID(ctx context.Context,
	id model.UnresolvedTokenID) (model.TokenID, error) {
	switch id := id.(type) {
	case model.TokenID:
		return id, nil
	case model.NamespaceID:
		return s.namespaces.GetLinkedTokenID(ctx, id)
	}
	return 0, fmt.Errorf("token id %v: not supported", id)
}

func (s TokenRestrictionTransactionService) resolveAddress(ctx context.Context,
	adr model.UnresolvedAddress) (model.Address, error) {
	switch adr := adr.(type) {
	case model.Address:
		return adr, nil
	case model.NamespaceID:
		return s.namespaces.GetLinkedAddress(ctx, adr)
	}
	return model.Address{}, fmt.Errorf("address %v: not supported", adr)
}
