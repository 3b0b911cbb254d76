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

// ReceiptHTTP implements ReceiptRepository.
type ReceiptHTTP struct {
	*api.Client
}

var _ ReceiptRepository = ReceiptHTTP{}

func NewReceiptHTTP(c *api.Client) ReceiptHTTP { return ReceiptHTTP{c} }

func (r ReceiptHTTP) SearchReceipts(ctx context.Context,
	criteria TransactionStatementSearchCriteria) (Page[model.TransactionStatement], error) {
	return search(ctx, r.Client, "/statements/transaction", criteria,
		transactionStatementFromDTO)
}

func (r ReceiptHTTP) SearchAddressResolutionStatements(ctx context.Context,
	criteria ResolutionStatementSearchCriteria) (Page[model.AddressResolutionStatement], error) {
	return search(ctx, r.Client, "/statements/resolutions/address", criteria,
		addressResolutionFromDTO)
}

func (r ReceiptHTTP) SearchTokenResolutionStatements(ctx context.Context,
	criteria ResolutionStatementSearchCriteria) (Page[model.TokenResolutionStatement], error) {
	return search(ctx, r.Client, "/statements/resolutions/token", criteria,
		tokenResolutionFromDTO)
}
