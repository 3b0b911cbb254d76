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

// RestrictionAccountHTTP implements RestrictionAccountRepository.
type RestrictionAccountHTTP struct {
	*api.Client
}

var _ RestrictionAccountRepository = RestrictionAccountHTTP{}

func NewRestrictionAccountHTTP(c *api.Client) RestrictionAccountHTTP {
	return RestrictionAccountHTTP{c}
}

func (r RestrictionAccountHTTP) GetAccountRestrictions(ctx context.Context,
	adr model.Address) (model.AccountRestrictions, error) {
	var res api.ResultAccountRestrictions
	if err := r.Get(ctx, "/restrictions/account/"+adr.Plain(), nil, &res); err != nil {
		return model.AccountRestrictions{}, err
	}
	return accountRestrictionsFromDTO(res)
}

func (r RestrictionAccountHTTP) Search(ctx context.Context,
	criteria RestrictionAccountSearchCriteria) (Page[model.AccountRestrictions], error) {
	return search(ctx, r.Client, "/restrictions/account", criteria,
		accountRestrictionsFromDTO)
}

// RestrictionTokenHTTP implements RestrictionTokenRepository.
type RestrictionTokenHTTP struct {
	*api.Client
}

var _ RestrictionTokenRepository = RestrictionTokenHTTP{}

func NewRestrictionTokenHTTP(c *api.Client) RestrictionTokenHTTP {
	return RestrictionTokenHTTP{c}
}

func (r RestrictionTokenHTTP) GetTokenRestrictions(ctx context.Context,
	compositeHash model.Bytes32) (model.TokenRestriction, error) {
	var res api.ResultTokenRestriction
	path := "/restrictions/token/" + compositeHash.String()
	if err := r.Get(ctx, path, nil, &res); err != nil {
		return nil, err
	}
	return tokenRestrictionFromDTO(res)
}

func (r RestrictionTokenHTTP) Search(ctx context.Context,
	criteria RestrictionTokenSearchCriteria) (Page[model.TokenRestriction], error) {
	return search(ctx, r.Client, "/restrictions/token", criteria,
		tokenRestrictionFromDTO)
}
