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

// MultisigHTTP implements MultisigRepository.
type MultisigHTTP struct {
	*api.Client
}

var _ MultisigRepository = MultisigHTTP{}

func NewMultisigHTTP(c *api.Client) MultisigHTTP { return MultisigHTTP{c} }

func (r MultisigHTTP) GetMultisigAccountInfo(ctx context.Context,
	adr model.Address) (model.MultisigAccountInfo, error) {
	var res api.ResultMultisigAccountInfo
	if err := r.Get(ctx, "/account/"+adr.Plain()+"/multisig", nil, &res); err != nil {
		return model.MultisigAccountInfo{}, err
	}
	return multisigFromDTO(res), nil
}

func (r MultisigHTTP) GetMultisigAccountGraphInfo(ctx context.Context,
	adr model.Address) (model.MultisigAccountGraphInfo, error) {
	var res api.ResultMultisigAccountGraph
	path := "/account/" + adr.Plain() + "/multisig/graph"
	if err := r.Get(ctx, path, nil, &res); err != nil {
		return model.MultisigAccountGraphInfo{}, err
	}
	return multisigGraphFromDTO(res), nil
}
