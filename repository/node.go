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

// NodeHTTP implements NodeRepository.
type NodeHTTP struct {
	*api.Client
}

var _ NodeRepository = NodeHTTP{}

func NewNodeHTTP(c *api.Client) NodeHTTP { return NodeHTTP{c} }

func (r NodeHTTP) GetNodeInfo(ctx context.Context) (model.NodeInfo, error) {
	var res api.ResultNodeInfo
	if err := r.Get(ctx, "/node/info", nil, &res); err != nil {
		return model.NodeInfo{}, err
	}
	return nodeInfoFromDTO(res), nil
}

func (r NodeHTTP) GetNodeHealth(ctx context.Context) (model.NodeHealth, error) {
	var res api.ResultNodeHealth
	if err := r.Get(ctx, "/node/health", nil, &res); err != nil {
		return model.NodeHealth{}, err
	}
	return model.NodeHealth{APINode: res.Status.APINode, DB: res.Status.DB}, nil
}

func (r NodeHTTP) GetServerInfo(ctx context.Context) (model.ServerInfo, error) {
	var res api.ResultServerInfo
	if err := r.Get(ctx, "/node/server", nil, &res); err != nil {
		return model.ServerInfo{}, err
	}
	return model.ServerInfo{
		RestVersion: res.ServerInfo.RestVersion,
		SDKVersion:  res.ServerInfo.SDKVersion,
	}, nil
}

// NetworkHTTP implements NetworkRepository.
type NetworkHTTP struct {
	*api.Client
}

var _ NetworkRepository = NetworkHTTP{}

func NewNetworkHTTP(c *api.Client) NetworkHTTP { return NetworkHTTP{c} }

// GetNetworkType returns the network identifier reported by the node.
func (r NetworkHTTP) GetNetworkType(ctx context.Context) (model.NetworkType, error) {
	info, err := NewNodeHTTP(r.Client).GetNodeInfo(ctx)
	if err != nil {
		return 0, err
	}
	return info.NetworkIdentifier, nil
}

func (r NetworkHTTP) GetNetworkProperties(ctx context.Context) (model.NetworkProperties, error) {
	var res api.ResultNetworkProperties
	if err := r.Get(ctx, "/network/properties", nil, &res); err != nil {
		return model.NetworkProperties{}, err
	}
	return networkPropertiesFromDTO(res), nil
}

func (r NetworkHTTP) GetTransactionFees(ctx context.Context) (model.TransactionFees, error) {
	var res api.ResultTransactionFees
	if err := r.Get(ctx, "/network/fees/transaction", nil, &res); err != nil {
		return model.TransactionFees{}, err
	}
	return model.TransactionFees(res), nil
}

func (r NetworkHTTP) GetRentalFees(ctx context.Context) (model.RentalFees, error) {
	var res api.ResultRentalFees
	if err := r.Get(ctx, "/network/fees/rental", nil, &res); err != nil {
		return model.RentalFees{}, err
	}
	return model.RentalFees(res), nil
}
