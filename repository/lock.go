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

// HashLockHTTP implements HashLockRepository.
type HashLockHTTP struct {
	*api.Client
}

var _ HashLockRepository = HashLockHTTP{}

func NewHashLockHTTP(c *api.Client) HashLockHTTP { return HashLockHTTP{c} }

func (r HashLockHTTP) GetHashLock(ctx context.Context,
	hash model.Bytes32) (model.HashLockInfo, error) {
	var res api.ResultHashLockInfo
	if err := r.Get(ctx, "/lock/hash/"+hash.String(), nil, &res); err != nil {
		return model.HashLockInfo{}, err
	}
	return hashLockFromDTO(res), nil
}

func (r HashLockHTTP) Search(ctx context.Context,
	criteria HashLockSearchCriteria) (Page[model.HashLockInfo], error) {
	return search(ctx, r.Client, "/lock/hash", criteria, infallible(hashLockFromDTO))
}

// SecretLockHTTP implements SecretLockRepository.
type SecretLockHTTP struct {
	*api.Client
}

var _ SecretLockRepository = SecretLockHTTP{}

func NewSecretLockHTTP(c *api.Client) SecretLockHTTP { return SecretLockHTTP{c} }

func (r SecretLockHTTP) Search(ctx context.Context,
	criteria SecretLockSearchCriteria) (Page[model.SecretLockInfo], error) {
	return search(ctx, r.Client, "/lock/secret", criteria, infallible(secretLockFromDTO))
}
