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

// TokenHTTP implements TokenRepository.
type TokenHTTP struct {
	*api.Client
}

var _ TokenRepository = TokenHTTP{}

func NewTokenHTTP(c *api.Client) TokenHTTP { return TokenHTTP{c} }

func (r TokenHTTP) GetToken(ctx context.Context, id model.TokenID) (model.TokenInfo, error) {
	var res api.ResultTokenInfo
	if err := r.Get(ctx, "/tokens/"+id.Hex(), nil, &res); err != nil {
		return model.TokenInfo{}, err
	}
	return tokenInfoFromDTO(res), nil
}

func (r TokenHTTP) GetTokens(ctx context.Context,
	ids []model.TokenID) ([]model.TokenInfo, error) {
	var res []api.ResultTokenInfo
	if err := r.Post(ctx, "/tokens",
		api.ParamsTokenIDs{TokenIDs: tokenIDsHex(ids)}, &res); err != nil {
		return nil, err
	}
	return mapAll(res, infallible(tokenInfoFromDTO))
}

func (r TokenHTTP) Search(ctx context.Context,
	criteria TokenSearchCriteria) (Page[model.TokenInfo], error) {
	return search(ctx, r.Client, "/tokens", criteria, infallible(tokenInfoFromDTO))
}

// MetadataHTTP implements MetadataRepository.
type MetadataHTTP struct {
	*api.Client
}

var _ MetadataRepository = MetadataHTTP{}

func NewMetadataHTTP(c *api.Client) MetadataHTTP { return MetadataHTTP{c} }

func (r MetadataHTTP) GetMetadata(ctx context.Context,
	compositeHash model.Bytes32) (model.MetadataEntry, error) {
	var res api.ResultMetadataEntry
	if err := r.Get(ctx, "/metadata/"+compositeHash.String(), nil, &res); err != nil {
		return model.MetadataEntry{}, err
	}
	return metadataFromDTO(res)
}

func (r MetadataHTTP) Search(ctx context.Context,
	criteria MetadataSearchCriteria) (Page[model.MetadataEntry], error) {
	return search(ctx, r.Client, "/metadata", criteria, metadataFromDTO)
}
