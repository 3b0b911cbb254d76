package model_test

import (
	"encoding/json"
	"testing"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPublicKey      = "C2F93346E27CE6AD1A9F8F5E3066F8326593A406BDF357ACB041E2F9AB402EFE"
	testPlainAddress   = "TCTVW23D2MN5VE4AQ4TZIDZENGNOZXPRPSDRSFRF"
	testEncodedAddress = "98A75B6B63D31BDA93808727940F24699AECDDF17C87191625"
)

func testAddress(t *testing.T) model.Address {
	adr, err := model.NewAddressFromRaw(testPlainAddress)
	require.NoError(t, err)
	return adr
}

func TestNewAddressFromPublicKey(t *testing.T) {
	key, err := model.NewBytes32FromHex(testPublicKey)
	require.NoError(t, err)
	adr := model.NewAddressFromPublicKey(key[:], model.TestNet)
	assert := assert.New(t)
	assert.Equal(testPlainAddress, adr.Plain())
	assert.Equal(testEncodedAddress, adr.Encoded())
	assert.Equal("TCTVW2-3D2MN5-VE4AQ4-TZIDZE-NGNOZX-PRPSDR-SFRF", adr.Pretty())
	assert.Equal(model.TestNet, adr.NetworkType())
}

func TestAddressRoundTrip(t *testing.T) {
	adr := testAddress(t)

	fromRaw, err := model.NewAddressFromRaw(adr.Plain())
	require.NoError(t, err)
	assert.True(t, fromRaw.Equal(adr))

	fromPretty, err := model.NewAddressFromRaw(adr.Pretty())
	require.NoError(t, err)
	assert.True(t, fromPretty.Equal(adr))

	fromEncoded, err := model.NewAddressFromEncoded(adr.Encoded())
	require.NoError(t, err)
	assert.True(t, fromEncoded.Equal(adr))

	data, err := json.Marshal(adr)
	require.NoError(t, err)
	assert.Equal(t, `"`+testEncodedAddress+`"`, string(data))
	var fromJSON model.Address
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.True(t, fromJSON.Equal(adr))
}

func TestAddressInvalid(t *testing.T) {
	for _, test := range []struct {
		Name  string
		Plain string
	}{{
		Name:  "short",
		Plain: "TCTVW23D2MN5VE4AQ4TZIDZENGNOZXPRPSDRSFR",
	}, {
		Name:  "checksum",
		Plain: "TCTVW23D2MN5VE4AQ4TZIDZENGNOZXPRPSDRSFRA",
	}, {
		Name:  "alphabet",
		Plain: "TCTVW23D2MN5VE4AQ4TZIDZENGNOZXPRPSDRSFR1",
	}} {
		t.Run(test.Name, func(t *testing.T) {
			_, err := model.NewAddressFromRaw(test.Plain)
			assert.Error(t, err)
		})
	}
	assert.True(t, model.IsValidRawAddress(testPlainAddress, model.TestNet))
	assert.False(t, model.IsValidRawAddress(testPlainAddress, model.MainNet))
	assert.True(t, model.IsValidEncodedAddress(testEncodedAddress, model.TestNet))
	assert.False(t, model.IsValidEncodedAddress(testEncodedAddress[2:], model.TestNet))
}

func TestNetworkTypeFromName(t *testing.T) {
	for _, test := range []struct {
		Name    string
		Network model.NetworkType
	}{
		{Name: "mainnet", Network: model.MainNet},
		{Name: "testnet", Network: model.TestNet},
		{Name: "152", Network: model.TestNet},
		{Name: "96", Network: model.Mijin},
	} {
		t.Run(test.Name, func(t *testing.T) {
			n, err := model.NetworkTypeFromName(test.Name)
			require.NoError(t, err)
			assert.Equal(t, test.Network, n)
		})
	}
	_, err := model.NetworkTypeFromName("1")
	assert.Error(t, err)
}
