package model_test

import (
	"testing"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNamespaceID(t *testing.T) {
	root, err := model.NewNamespaceID("bitxor")
	require.NoError(t, err)
	assert.Equal(t, "EE905A59E4F6DB7D", root.Hex())

	child, err := model.NewNamespaceID("bitxor.bxr")
	require.NoError(t, err)
	assert.Equal(t, "D172EE8E1CD27257", child.Hex())
	assert.Equal(t, "bitxor.bxr", child.String())

	path, err := model.GenerateNamespacePath("bitxor.bxr")
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.True(t, path[0].Equal(root))
	assert.True(t, path[1].Equal(child))

	fromHex, err := model.NewNamespaceIDFromHex(child.Hex())
	require.NoError(t, err)
	assert.True(t, fromHex.Equal(child), "full name must not take part")

	for _, name := range []string{"a.b.c.d", "Bitxor", "bitxor..bxr", "-bxr"} {
		_, err := model.NewNamespaceID(name)
		assert.Errorf(t, err, "name: %q", name)
	}
}

func TestNewTokenIDFromNonce(t *testing.T) {
	owner := testAddress(t)
	id := model.NewTokenIDFromNonce(0x12345678, owner)
	assert.Equal(t, "1960B2456840D08B", id.Hex())

	_, err := model.NewTokenIDFromHex("D172EE8E1CD27257")
	assert.Error(t, err, "high bit set")
}

func TestUnresolvedTokenID(t *testing.T) {
	for _, test := range []struct {
		Hex   string
		Alias bool
	}{
		{Hex: "1960B2456840D08B", Alias: false},
		{Hex: "D172EE8E1CD27257", Alias: true},
	} {
		t.Run(test.Hex, func(t *testing.T) {
			id, err := model.NewUnresolvedTokenIDFromHex(test.Hex)
			require.NoError(t, err)
			assert.Equal(t, test.Alias, id.IsAlias())
			assert.Equal(t, test.Hex, id.Hex())
		})
	}
}

func TestUnresolvedAddress(t *testing.T) {
	adr := testAddress(t)
	unresolved, err := model.NewUnresolvedAddressFromEncoded(
		model.EncodeUnresolvedAddress(adr, model.TestNet))
	require.NoError(t, err)
	assert.False(t, unresolved.IsAlias())
	assert.True(t, model.EqualUnresolvedAddress(adr, unresolved))

	ns, err := model.NewNamespaceID("bitxor")
	require.NoError(t, err)
	encoded := model.EncodeUnresolvedAddress(ns, model.TestNet)
	assert.Equal(t, "997DDBF6E4595A90EE00000000000000000000000000000000", encoded)
	unresolved, err = model.NewUnresolvedAddressFromEncoded(encoded)
	require.NoError(t, err)
	assert.True(t, unresolved.IsAlias())
	assert.True(t, model.EqualUnresolvedAddress(ns, unresolved))
	assert.False(t, model.EqualUnresolvedAddress(adr, unresolved))
}

func TestAliasEqual(t *testing.T) {
	adr := testAddress(t)
	assert := assert.New(t)
	assert.True(model.EmptyAlias().Equal(model.EmptyAlias()))
	assert.True(model.NewAddressAlias(adr).Equal(model.NewAddressAlias(adr)))
	assert.True(model.NewTokenAlias(1).Equal(model.NewTokenAlias(1)))
	assert.False(model.NewTokenAlias(1).Equal(model.NewTokenAlias(2)))
	assert.False(model.NewTokenAlias(1).Equal(model.EmptyAlias()))
	assert.False(model.NewAddressAlias(adr).Equal(model.NewTokenAlias(1)))
}
