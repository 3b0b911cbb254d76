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
)

// NamespaceHTTP implements NamespaceRepository.
type NamespaceHTTP struct {
	*api.Client
}

var _ NamespaceRepository = NamespaceHTTP{}

func NewNamespaceHTTP(c *api.Client) NamespaceHTTP { return NamespaceHTTP{c} }

func (r NamespaceHTTP) GetNamespace(ctx context.Context,
	id model.NamespaceID) (model.NamespaceInfo, error) {
	var res api.ResultNamespaceInfo
	if err := r.Get(ctx, "/namespaces/"+id.Hex(), nil, &res); err != nil {
		return model.NamespaceInfo{}, err
	}
	return namespaceFromDTO(res)
}

func (r NamespaceHTTP) GetNamespacesNames(ctx context.Context,
	ids []model.NamespaceID) ([]model.NamespaceName, error) {
	params := api.ParamsNamespaceIDs{NamespaceIDs: make([]string, len(ids))}
	for i, id := range ids {
		params.NamespaceIDs[i] = id.Hex()
	}
	var res []api.NamespaceNameDTO
	if err := r.Post(ctx, "/namespaces/names", params, &res); err != nil {
		return nil, err
	}
	return mapAll(res, infallible(namespaceNameFromDTO))
}

// GetLinkedAddress returns the address id is an alias of. Namespaces without
// an address alias are an error.
func (r NamespaceHTTP) GetLinkedAddress(ctx context.Context,
	id model.NamespaceID) (model.Address, error) {
	info, err := r.GetNamespace(ctx, id)
	if err != nil {
		return model.Address{}, err
	}
	if info.Alias.Type != model.AliasAddress {
		return model.Address{}, fmt.Errorf(
			"namespace %v: no address alias (%v)", id, info.Alias.Type)
	}
	return *info.Alias.Address, nil
}

// GetLinkedTokenID returns the token id is an alias of. Namespaces without a
// token alias are an error.
func (r NamespaceHTTP) GetLinkedTokenID(ctx context.Context,
	id model.NamespaceID) (model.TokenID, error) {
	info, err := r.GetNamespace(ctx, id)
	if err != nil {
		return 0, err
	}
	if info.Alias.Type != model.AliasToken {
		return 0, fmt.Errorf(
			"namespace %v: no token alias (%v)", id, info.Alias.Type)
	}
	return *info.Alias.TokenID, nil
}

func (r NamespaceHTTP) GetAccountsNames(ctx context.Context,
	addresses []model.Address) ([]model.AccountNames, error) {
	params := api.ParamsAddresses{Addresses: plainAddresses(addresses)}
	var res api.ResultAccountsNames
	if err := r.Post(ctx, "/namespaces/account/names", params, &res); err != nil {
		return nil, err
	}
	names := make([]model.AccountNames, len(res.AccountNames))
	for i, n := range res.AccountNames {
		list, err := namesFromStrings(n.Names)
		if err != nil {
			return nil, fmt.Errorf("account %v: %w", n.Address, err)
		}
		names[i] = model.AccountNames{Address: n.Address, Names: list}
	}
	return names, nil
}

func (r NamespaceHTTP) GetTokensNames(ctx context.Context,
	ids []model.TokenID) ([]model.TokenNames, error) {
	var res api.ResultTokensNames
	if err := r.Post(ctx, "/namespaces/token/names",
		api.ParamsTokenIDs{TokenIDs: tokenIDsHex(ids)}, &res); err != nil {
		return nil, err
	}
	names := make([]model.TokenNames, len(res.TokenNames))
	for i, n := range res.TokenNames {
		list, err := namesFromStrings(n.Names)
		if err != nil {
			return nil, fmt.Errorf("token %v: %w", n.TokenID, err)
		}
		names[i] = model.TokenNames{TokenID: n.TokenID, Names: list}
	}
	return names, nil
}

func (r NamespaceHTTP) Search(ctx context.Context,
	criteria NamespaceSearchCriteria) (Page[model.NamespaceInfo], error) {
	return search(ctx, r.Client, "/namespaces", criteria, namespaceFromDTO)
}

func tokenIDsHex(ids []model.TokenID) []string {
	list := make([]string, len(ids))
	for i, id := range ids {
		list[i] = id.Hex()
	}
	return list
}
