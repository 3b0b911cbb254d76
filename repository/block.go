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

// BlockHTTP implements BlockRepository.
type BlockHTTP struct {
	*api.Client
}

var _ BlockRepository = BlockHTTP{}

func NewBlockHTTP(c *api.Client) BlockHTTP { return BlockHTTP{c} }

func (r BlockHTTP) GetBlockByHeight(ctx context.Context,
	height model.UInt64) (model.BlockInfo, error) {
	var res api.ResultBlockInfo
	if err := r.Get(ctx, "/blocks/"+height.String(), nil, &res); err != nil {
		return model.BlockInfo{}, err
	}
	return blockInfoFromDTO(res), nil
}

func (r BlockHTTP) Search(ctx context.Context,
	criteria BlockSearchCriteria) (Page[model.BlockInfo], error) {
	return search(ctx, r.Client, "/blocks", criteria, infallible(blockInfoFromDTO))
}

func (r BlockHTTP) GetMerkleTransaction(ctx context.Context, height model.UInt64,
	hash model.Bytes32) (model.MerkleProofInfo, error) {
	var res api.ResultMerkleProof
	path := "/blocks/" + height.String() + "/transactions/" + hash.String() + "/merkle"
	if err := r.Get(ctx, path, nil, &res); err != nil {
		return model.MerkleProofInfo{}, err
	}
	proof := model.MerkleProofInfo{
		MerklePath: make([]model.MerklePathItem, len(res.MerklePath)),
	}
	for i, item := range res.MerklePath {
		proof.MerklePath[i] = model.MerklePathItem{
			Position: item.Position,
			Hash:     item.Hash,
		}
	}
	return proof, nil
}

// ChainHTTP implements ChainRepository.
type ChainHTTP struct {
	*api.Client
}

var _ ChainRepository = ChainHTTP{}

func NewChainHTTP(c *api.Client) ChainHTTP { return ChainHTTP{c} }

func (r ChainHTTP) GetChainInfo(ctx context.Context) (model.ChainInfo, error) {
	var res api.ResultChainInfo
	if err := r.Get(ctx, "/chain/info", nil, &res); err != nil {
		return model.ChainInfo{}, err
	}
	return model.ChainInfo{
		Height:               res.Height,
		ScoreHigh:            res.ScoreHigh,
		ScoreLow:             res.ScoreLow,
		LatestFinalizedBlock: model.FinalizedBlock(res.LatestFinalizedBlock),
	}, nil
}
