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
	"strings"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/repository"
	"golang.org/x/sync/errgroup"
)

type AccountService struct {
	accounts   repository.AccountRepository
	namespaces repository.NamespaceRepository
}

func NewAccountService(accounts repository.AccountRepository,
	namespaces repository.NamespaceRepository) AccountService {
	return AccountService{accounts: accounts, namespaces: namespaces}
}

// ResolvedToken is a balance with the names of its token. Names holds the
// alias itself when the balance is held through a namespace.
type ResolvedToken struct {
	model.Token
	Names []model.NamespaceName
}

type AccountInfoResolvedTokens struct {
	model.AccountInfo
	ResolvedTokens []ResolvedToken
}

// NamespaceInfoWithName is a namespace with its dotted full name.
type NamespaceInfoWithName struct {
	model.NamespaceInfo
	Name string
}

// AccountInfoWithResolvedTokens returns the accounts with the names of every
// token they hold.
func (s AccountService) AccountInfoWithResolvedTokens(ctx context.Context,
	addresses []model.Address) ([]AccountInfoResolvedTokens, error) {
	infos, err := s.accounts.GetAccountsInfo(ctx, addresses)
	if err != nil {
		return nil, err
	}

	var tokenIDs []model.TokenID
	var namespaceIDs []model.NamespaceID
	seen := make(map[model.UInt64]bool)
	for _, info := range infos {
		for _, t := range info.Tokens {
			if seen[t.ID.Value()] {
				continue
			}
			seen[t.ID.Value()] = true
			switch id := t.ID.(type) {
			case model.TokenID:
				tokenIDs = append(tokenIDs, id)
			case model.NamespaceID:
				namespaceIDs = append(namespaceIDs, id)
			}
		}
	}

	var tokenNames []model.TokenNames
	var namespaceNames []model.NamespaceName
	g, gctx := errgroup.WithContext(ctx)
	if len(tokenIDs) > 0 {
		g.Go(func() (err error) {
			tokenNames, err = s.namespaces.GetTokensNames(gctx, tokenIDs)
			return
		})
	}
	if len(namespaceIDs) > 0 {
		g.Go(func() (err error) {
			namespaceNames, err = s.namespaces.GetNamespacesNames(gctx, namespaceIDs)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[model.UInt64][]model.NamespaceName)
	for _, n := range tokenNames {
		names[model.UInt64(n.TokenID)] = n.Names
	}
	for _, n := range namespaceNames {
		names[n.NamespaceID.ID] = append(names[n.NamespaceID.ID], n)
	}

	resolved := make([]AccountInfoResolvedTokens, len(infos))
	for i, info := range infos {
		tokens := make([]ResolvedToken, len(info.Tokens))
		for j, t := range info.Tokens {
			tokens[j] = ResolvedToken{Token: t, Names: names[t.ID.Value()]}
		}
		resolved[i] = AccountInfoResolvedTokens{
			AccountInfo:    info,
			ResolvedTokens: tokens,
		}
	}
	return resolved, nil
}

// AccountNamespacesWithName returns every namespace owned by adr with its
// full name.
func (s AccountService) AccountNamespacesWithName(ctx context.Context,
	adr model.Address) ([]NamespaceInfoWithName, error) {
	owned, err := repository.Collect(ctx,
		repository.SearchFunc[model.NamespaceInfo, repository.NamespaceSearchCriteria](
			s.namespaces.Search),
		repository.NamespaceSearchCriteria{OwnerAddress: &adr})
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return nil, nil
	}

	var ids []model.NamespaceID
	seen := make(map[model.UInt64]bool)
	for _, ns := range owned {
		for _, level := range ns.Levels {
			if !seen[level.ID] {
				seen[level.ID] = true
				ids = append(ids, level)
			}
		}
	}
	names, err := s.namespaces.GetNamespacesNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[model.UInt64]string, len(names))
	for _, n := range names {
		byID[n.NamespaceID.ID] = n.Name
	}

	out := make([]NamespaceInfoWithName, len(owned))
	for i, ns := range owned {
		parts := make([]string, len(ns.Levels))
		for j, level := range ns.Levels {
			parts[j] = byID[level.ID]
		}
		out[i] = NamespaceInfoWithName{
			NamespaceInfo: ns,
			Name:          strings.Join(parts, "."),
		}
	}
	return out, nil
}
