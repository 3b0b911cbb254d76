package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/bitxorcorp/bitxor-sdk-go/config"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nodeInfoJSON = fmt.Sprintf(`{"networkIdentifier": 152, "publicKey": "%v",
	"networkGenerationHashSeed": "%v", "nodePublicKey": "%v", "host": "node"}`,
		model.Bytes32{0x01}, model.Bytes32{0x02}, model.Bytes32{0x03})
	propertiesJSON = `{
	"network": {"identifier": "testnet", "epochAdjustment": "1616694977s"},
	"chain": {"currencyTokenId": "0x6BED'913F'A202'23F8", "harvestingTokenId": "0x6BED'913F'A202'23F8"}
}`
)

func newFactory(g *gateway, cfg config.Config) *Factory {
	cfg.URL = g.URL
	return NewFactory(FactoryConfig{Config: cfg})
}

func TestFactoryNodeInfo(t *testing.T) {
	g := newGateway(t, map[string]string{"GET /node/info": nodeInfoJSON})
	f := newFactory(g, config.Config{})
	ctx := context.Background()

	var wg sync.WaitGroup
	networks := make([]model.NetworkType, 10)
	for i := range networks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			networks[i], _ = f.NetworkType(ctx)
		}(i)
	}
	wg.Wait()
	for _, n := range networks {
		assert.Equal(t, model.TestNet, n)
	}
	assert.Equal(t, 1, g.Count("GET /node/info"))

	hash, err := f.GenerationHash(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Bytes32{0x02}, hash)
	key, err := f.NodePublicKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Bytes32{0x03}, key)
	// One request for the network type and one shared by the node info.
	assert.Equal(t, 2, g.Count("GET /node/info"))
}

func TestFactoryConfigured(t *testing.T) {
	g := newGateway(t, map[string]string{})
	hash, key := model.Bytes32{0x04}, model.Bytes32{0x05}
	epoch := int64(1616694977)
	f := NewFactory(FactoryConfig{
		Config: config.Config{
			URL:             g.URL,
			NetworkType:     model.MainNet,
			GenerationHash:  &hash,
			NodePublicKey:   &key,
			EpochAdjustment: &epoch,
		},
		NetworkCurrencies: &model.DefaultNetworkCurrencies,
	})
	ctx := context.Background()

	network, err := f.NetworkType(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.MainNet, network)
	gotHash, err := f.GenerationHash(ctx)
	require.NoError(t, err)
	assert.Equal(t, hash, gotHash)
	gotKey, err := f.NodePublicKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, key, gotKey)
	gotEpoch, err := f.EpochAdjustment(ctx)
	require.NoError(t, err)
	assert.Equal(t, epoch, gotEpoch)
	currencies, err := f.NetworkCurrencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultNetworkCurrencies, currencies)

	assert.Empty(t, g.Requests())
}

func TestFactoryRetry(t *testing.T) {
	g := newGateway(t, map[string]string{})
	f := newFactory(g, config.Config{})
	ctx := context.Background()

	_, err := f.EpochAdjustment(ctx)
	require.Error(t, err)

	g.Set("GET /network/properties", propertiesJSON)
	epoch, err := f.EpochAdjustment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1616694977), epoch)
	_, err = f.EpochAdjustment(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Count("GET /network/properties"))
}

func TestFactoryNetworkCurrencies(t *testing.T) {
	g := newGateway(t, map[string]string{
		"GET /network/properties": propertiesJSON,
		"POST /tokens": fmt.Sprintf(`[{"id": "1", "token": {
	"version": 1, "id": "6BED913FA20223F8", "supply": "8999999999000000",
	"startHeight": "1", "ownerAddress": %q, "revision": 1,
	"flags": 2, "divisibility": 6, "duration": "0"
}}]`, alice.Encoded()),
		"POST /namespaces/token/names": `{"tokenNames": [
	{"tokenId": "6BED913FA20223F8", "names": ["bitxor.bxr"]}
]}`,
	})
	f := newFactory(g, config.Config{})

	currencies, err := f.NetworkCurrencies(context.Background())
	require.NoError(t, err)
	c := currencies.Currency
	require.NotNil(t, c.TokenID)
	assert.Equal(t, currencyID, *c.TokenID)
	require.NotNil(t, c.NamespaceID)
	assert.True(t, bxr.Equal(*c.NamespaceID))
	assert.Equal(t, uint8(6), c.Divisibility)
	assert.True(t, c.Transferable)
	assert.False(t, c.SupplyMutable)
	assert.Equal(t, c, currencies.Harvest)
	assert.JSONEq(t, `{"tokenIds": ["6BED913FA20223F8"]}`, g.Body("POST /tokens"))
}

func TestFactoryListener(t *testing.T) {
	f := NewFactory(FactoryConfig{Config: config.Config{URL: "https://node:3001"}})
	l := f.CreateListener()
	assert.False(t, l.IsOpen())
	assert.Equal(t, "https://node:3001", f.Client().URL)
}
