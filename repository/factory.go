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
	"net/http"
	"sync"

	"github.com/bitxorcorp/bitxor-sdk-go/api"
	"github.com/bitxorcorp/bitxor-sdk-go/config"
	"github.com/bitxorcorp/bitxor-sdk-go/listener"
	"github.com/bitxorcorp/bitxor-sdk-go/log"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/singleflight"
)

// FactoryConfig extends config.Config with options that can only be set
// programmatically.
type FactoryConfig struct {
	config.Config

	// HTTPClient replaces the client built from HTTPTimeout.
	HTTPClient *http.Client
	// WebsocketDialer is used by listeners.
	WebsocketDialer *websocket.Dialer
	// NetworkCurrencies skips the currency lookup.
	NetworkCurrencies *model.NetworkCurrencies
}

// memo computes a value once. Concurrent first calls share one computation
// and failures are not kept.
type memo[T any] struct {
	group singleflight.Group
	mu    sync.Mutex
	ok    bool
	value T
}

func (m *memo[T]) get(ctx context.Context,
	compute func(context.Context) (T, error)) (T, error) {
	m.mu.Lock()
	if m.ok {
		defer m.mu.Unlock()
		return m.value, nil
	}
	m.mu.Unlock()

	v, err, _ := m.group.Do("", func() (interface{}, error) {
		m.mu.Lock()
		if m.ok {
			defer m.mu.Unlock()
			return m.value, nil
		}
		m.mu.Unlock()
		value, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.value, m.ok = value, true
		m.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Factory creates the repositories and listeners of one node and caches the
// network constants they need. Values supplied in the configuration are
// returned as they are, without requests.
type Factory struct {
	cfg    FactoryConfig
	client *api.Client

	networkType     memo[model.NetworkType]
	nodeInfo        memo[model.NodeInfo]
	epochAdjustment memo[int64]
	currencies      memo[model.NetworkCurrencies]
}

func NewFactory(cfg FactoryConfig) *Factory {
	if cfg.URL == "" {
		cfg.URL = config.DefaultURL
	}
	if cfg.Debug {
		log.SetDebug(true)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.HTTPTimeout
		if timeout == 0 {
			timeout = config.DefaultHTTPTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	client := api.NewClient(cfg.URL, httpClient)
	client.DebugRequest = cfg.Debug
	return &Factory{cfg: cfg, client: client}
}

// Client returns the client shared by the repositories.
func (f *Factory) Client() *api.Client { return f.client }

func (f *Factory) NetworkType(ctx context.Context) (model.NetworkType, error) {
	if f.cfg.NetworkType != 0 {
		return f.cfg.NetworkType, nil
	}
	return f.networkType.get(ctx, f.CreateNetworkRepository().GetNetworkType)
}

func (f *Factory) getNodeInfo(ctx context.Context) (model.NodeInfo, error) {
	return f.nodeInfo.get(ctx, f.CreateNodeRepository().GetNodeInfo)
}

// GenerationHash returns the generation hash seed of the network, used to
// sign transactions.
func (f *Factory) GenerationHash(ctx context.Context) (model.Bytes32, error) {
	if f.cfg.GenerationHash != nil {
		return *f.cfg.GenerationHash, nil
	}
	info, err := f.getNodeInfo(ctx)
	if err != nil {
		return model.Bytes32{}, err
	}
	return info.NetworkGenerationHashSeed, nil
}

// NodePublicKey returns the key of the node used to link harvesting
// accounts.
func (f *Factory) NodePublicKey(ctx context.Context) (model.Bytes32, error) {
	if f.cfg.NodePublicKey != nil {
		return *f.cfg.NodePublicKey, nil
	}
	info, err := f.getNodeInfo(ctx)
	if err != nil {
		return model.Bytes32{}, err
	}
	if info.NodePublicKey == nil {
		return model.Bytes32{}, fmt.Errorf("node %v: no node public key", info.Host)
	}
	return *info.NodePublicKey, nil
}

// EpochAdjustment returns the number of seconds between the Unix epoch and
// the network epoch.
func (f *Factory) EpochAdjustment(ctx context.Context) (int64, error) {
	if f.cfg.EpochAdjustment != nil {
		return *f.cfg.EpochAdjustment, nil
	}
	return f.epochAdjustment.get(ctx, func(ctx context.Context) (int64, error) {
		props, err := f.CreateNetworkRepository().GetNetworkProperties(ctx)
		if err != nil {
			return 0, err
		}
		return model.ParseEpochAdjustment(props.Network.EpochAdjustment)
	})
}

func (f *Factory) NetworkCurrencies(ctx context.Context) (model.NetworkCurrencies, error) {
	if f.cfg.NetworkCurrencies != nil {
		return *f.cfg.NetworkCurrencies, nil
	}
	return f.currencies.get(ctx, func(ctx context.Context) (model.NetworkCurrencies, error) {
		return GetNetworkCurrencies(ctx, f.CreateNetworkRepository(),
			f.CreateTokenRepository(), f.CreateNamespaceRepository())
	})
}

func (f *Factory) CreateAccountRepository() AccountRepository {
	return NewAccountHTTP(f.client)
}

func (f *Factory) CreateBlockRepository() BlockRepository {
	return NewBlockHTTP(f.client)
}

func (f *Factory) CreateChainRepository() ChainRepository {
	return NewChainHTTP(f.client)
}

func (f *Factory) CreateNodeRepository() NodeRepository {
	return NewNodeHTTP(f.client)
}

func (f *Factory) CreateNetworkRepository() NetworkRepository {
	return NewNetworkHTTP(f.client)
}

func (f *Factory) CreateNamespaceRepository() NamespaceRepository {
	return NewNamespaceHTTP(f.client)
}

func (f *Factory) CreateTokenRepository() TokenRepository {
	return NewTokenHTTP(f.client)
}

func (f *Factory) CreateMetadataRepository() MetadataRepository {
	return NewMetadataHTTP(f.client)
}

func (f *Factory) CreateRestrictionAccountRepository() RestrictionAccountRepository {
	return NewRestrictionAccountHTTP(f.client)
}

func (f *Factory) CreateRestrictionTokenRepository() RestrictionTokenRepository {
	return NewRestrictionTokenHTTP(f.client)
}

func (f *Factory) CreateReceiptRepository() ReceiptRepository {
	return NewReceiptHTTP(f.client)
}

func (f *Factory) CreateTransactionRepository() TransactionRepository {
	return NewTransactionHTTP(f.client)
}

func (f *Factory) CreateTransactionStatusRepository() TransactionStatusRepository {
	return NewTransactionStatusHTTP(f.client)
}

func (f *Factory) CreateMultisigRepository() MultisigRepository {
	return NewMultisigHTTP(f.client)
}

func (f *Factory) CreateHashLockRepository() HashLockRepository {
	return NewHashLockHTTP(f.client)
}

func (f *Factory) CreateSecretLockRepository() SecretLockRepository {
	return NewSecretLockHTTP(f.client)
}

// CreateListener returns a closed listener for the websocket endpoint of
// the node.
func (f *Factory) CreateListener() *listener.Listener {
	return listener.New(listener.Config{
		URL:        f.cfg.WebsocketEndpoint(),
		Dialer:     f.cfg.WebsocketDialer,
		Multisig:   f.CreateMultisigRepository(),
		Namespaces: f.CreateNamespaceRepository(),
	})
}
