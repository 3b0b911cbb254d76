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

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/repository"
	"golang.org/x/sync/errgroup"
)

type TokenService struct {
	accounts   repository.AccountRepository
	tokens     repository.TokenRepository
	namespaces repository.NamespaceRepository
}

func NewTokenService(accounts repository.AccountRepository,
	tokens repository.TokenRepository,
	namespaces repository.NamespaceRepository) TokenService {
	return TokenService{accounts: accounts, tokens: tokens, namespaces: namespaces}
}

// TokensAmountViewFromAddress returns the balances of adr with their token
// definitions.
func (s TokenService) TokensAmountViewFromAddress(ctx context.Context,
	adr model.Address) ([]model.TokenAmountView, error) {
	info, err := s.accounts.GetAccountInfo(ctx, adr)
	if err != nil {
		return nil, err
	}
	return s.TokensAmountView(ctx, info.Tokens)
}

// TokensAmountView decorates tokens with their definitions. Aliases are
// resolved to the token they are linked to. Tokens without a definition,
// such as expired ones, are left out.
func (s TokenService) TokensAmountView(ctx context.Context,
	tokens []model.Token) ([]model.TokenAmountView, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	ids := make([]model.TokenID, len(tokens))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tokens {
		switch id := t.ID.(type) {
		case model.TokenID:
			ids[i] = id
		case model.NamespaceID:
			i := i
			g.Go(func() (err error) {
				ids[i], err = s.namespaces.GetLinkedTokenID(gctx, id)
				return
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var distinct []model.TokenID
	seen := make(map[model.TokenID]bool)
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}
	infos, err := s.tokens.GetTokens(ctx, distinct)
	if err != nil {
		return nil, err
	}
	byID := make(map[model.TokenID]model.TokenInfo, len(infos))
	for _, info := range infos {
		byID[info.ID] = info
	}

	views := make([]model.TokenAmountView, 0, len(tokens))
	for i, t := range tokens {
		info, ok := byID[ids[i]]
		if !ok {
			logger.Debugf("token %v: no definition", ids[i])
			continue
		}
		views = append(views, model.TokenAmountView{TokenInfo: info, Amount: t.Amount})
	}
	return views, nil
}
