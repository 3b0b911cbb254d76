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

	"github.com/bitxorcorp/bitxor-sdk-go/api"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
)

// AccountHTTP implements AccountRepository.
type AccountHTTP struct {
	*api.Client
}

var _ AccountRepository = AccountHTTP{}

func NewAccountHTTP(c *api.Client) AccountHTTP { return AccountHTTP{c} }

func (r AccountHTTP) GetAccountInfo(ctx context.Context,
	adr model.Address) (model.AccountInfo, error) {
	var res api.ResultAccountInfo
	if err := r.Get(ctx, "/accounts/"+adr.Plain(), nil, &res); err != nil {
		return model.AccountInfo{}, err
	}
	return accountInfoFromDTO(res)
}

func (r AccountHTTP) GetAccountsInfo(ctx context.Context,
	addresses []model.Address) ([]model.AccountInfo, error) {
	params := api.ParamsAddresses{Addresses: plainAddresses(addresses)}
	var res []api.ResultAccountInfo
	if err := r.Post(ctx, "/accounts", params, &res); err != nil {
		return nil, err
	}
	return mapAll(res, accountInfoFromDTO)
}

func (r AccountHTTP) Search(ctx context.Context,
	criteria AccountSearchCriteria) (Page[model.AccountInfo], error) {
	return search(ctx, r.Client, "/accounts", criteria, accountInfoFromDTO)
}

func plainAddresses(addresses []model.Address) []string {
	list := make([]string, len(addresses))
	for i, adr := range addresses {
		list[i] = adr.Plain()
	}
	return list
}
