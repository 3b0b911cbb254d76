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
)

type CurrencyService struct {
	network    repository.NetworkRepository
	tokens     repository.TokenRepository
	namespaces repository.NamespaceRepository
}

func NewCurrencyService(network repository.NetworkRepository,
	tokens repository.TokenRepository,
	namespaces repository.NamespaceRepository) CurrencyService {
	return CurrencyService{network: network, tokens: tokens, namespaces: namespaces}
}

// GetNetworkCurrencies loads the currency and harvest currency of the
// network. Prefer repository.Factory.NetworkCurrencies, which caches them.
func (s CurrencyService) GetNetworkCurrencies(ctx context.Context) (model.NetworkCurrencies, error) {
	return repository.GetNetworkCurrencies(ctx, s.network, s.tokens, s.namespaces)
}

func (s CurrencyService) GetCurrenciesFromTokenIDs(ctx context.Context,
	ids []model.TokenID) ([]model.Currency, error) {
	return repository.GetCurrenciesFromTokenIDs(ctx, s.tokens, s.namespaces, ids)
}
