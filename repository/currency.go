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

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"golang.org/x/sync/errgroup"
)

// GetNetworkCurrencies builds the currency and harvest currencies from the
// token ids in the chain configuration of the node.
func GetNetworkCurrencies(ctx context.Context, network NetworkRepository,
	tokens TokenRepository, namespaces NamespaceRepository) (model.NetworkCurrencies, error) {
	props, err := network.GetNetworkProperties(ctx)
	if err != nil {
		return model.NetworkCurrencies{}, err
	}
	currencyID, err := model.ParseConfigTokenID(props.Chain.CurrencyTokenID)
	if err != nil {
		return model.NetworkCurrencies{}, fmt.Errorf("currencyTokenId: %w", err)
	}
	harvestID, err := model.ParseConfigTokenID(props.Chain.HarvestingTokenID)
	if err != nil {
		return model.NetworkCurrencies{}, fmt.Errorf("harvestingTokenId: %w", err)
	}
	ids := []model.TokenID{currencyID}
	if harvestID != currencyID {
		ids = append(ids, harvestID)
	}
	currencies, err := GetCurrenciesFromTokenIDs(ctx, tokens, namespaces, ids)
	if err != nil {
		return model.NetworkCurrencies{}, err
	}
	nc := model.NetworkCurrencies{Currency: currencies[0], Harvest: currencies[0]}
	if len(currencies) > 1 {
		nc.Harvest = currencies[1]
	}
	return nc, nil
}

// GetCurrenciesFromTokenIDs returns a currency for every id, in order. The
// first name linked to a token becomes the namespace of its currency.
func GetCurrenciesFromTokenIDs(ctx context.Context, tokens TokenRepository,
	namespaces NamespaceRepository, ids []model.TokenID) ([]model.Currency, error) {
	var infos []model.TokenInfo
	var names []model.TokenNames
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		infos, err = tokens.GetTokens(gctx, ids)
		return
	})
	g.Go(func() (err error) {
		names, err = namespaces.GetTokensNames(gctx, ids)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	currencies := make([]model.Currency, len(ids))
	for i, id := range ids {
		info, ok := findTokenInfo(infos, id)
		if !ok {
			return nil, fmt.Errorf("token %v: not found", id)
		}
		id := id
		c := model.Currency{
			TokenID:       &id,
			Divisibility:  info.Divisibility,
			Transferable:  info.Flags.Transferable(),
			SupplyMutable: info.Flags.SupplyMutable(),
			Restrictable:  info.Flags.Restrictable(),
			Revokable:     info.Flags.Revokable(),
		}
		for _, n := range names {
			if n.TokenID == id && len(n.Names) > 0 {
				ns := n.Names[0].NamespaceID
				c.NamespaceID = &ns
				break
			}
		}
		currencies[i] = c
	}
	return currencies, nil
}

func findTokenInfo(infos []model.TokenInfo, id model.TokenID) (model.TokenInfo, bool) {
	for _, info := range infos {
		if info.ID == id {
			return info, true
		}
	}
	return model.TokenInfo{}, false
}
