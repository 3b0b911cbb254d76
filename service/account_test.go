package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

func TestAccountInfoWithResolvedTokens(t *testing.T) {
	accounts := &fakeAccounts{infos: []model.AccountInfo{{
		Address: alice,
		Tokens: []model.Token{
			model.NewToken(currencyID, 10),
			model.NewToken(bxr, 5),
			model.NewToken(currencyID, 1),
		},
	}}}
	namespaces := &fakeNamespaces{
		tokenNames: []model.TokenNames{{
			TokenID: currencyID,
			Names:   []model.NamespaceName{{NamespaceID: bxr, Name: "bitxor.bxr"}},
		}},
		names: []model.NamespaceName{{NamespaceID: bxr, Name: "bxr", ParentID: &bitxor}},
	}
	s := NewAccountService(accounts, namespaces)

	infos, err := s.AccountInfoWithResolvedTokens(context.Background(),
		[]model.Address{alice})
	require.NoError(t, err)
	require.Len(t, infos, 1)
	tokens := infos[0].ResolvedTokens
	require.Len(t, tokens, 3)
	assert.Equal(t, "bitxor.bxr", tokens[0].Names[0].Name)
	assert.Equal(t, model.UInt64(10), tokens[0].Amount)
	assert.Equal(t, "bxr", tokens[1].Names[0].Name)
	assert.Equal(t, tokens[0].Names, tokens[2].Names)
	assert.Equal(t, []model.NamespaceID{bxr}, namespaces.requested)
}

func TestAccountNamespacesWithName(t *testing.T) {
	harvest, _ := model.NewNamespaceID("bitxor.harvest")
	namespaces := &fakeNamespaces{
		owned: []model.NamespaceInfo{
			{OwnerAddress: alice, Levels: []model.NamespaceID{bitxor}},
			{OwnerAddress: alice, Levels: []model.NamespaceID{bitxor, bxr}},
			{OwnerAddress: alice, Levels: []model.NamespaceID{bitxor, harvest}},
			{OwnerAddress: bob, Levels: []model.NamespaceID{bitxor}},
		},
		names: []model.NamespaceName{
			{NamespaceID: bitxor, Name: "bitxor"},
			{NamespaceID: bxr, Name: "bxr", ParentID: &bitxor},
			{NamespaceID: harvest, Name: "harvest", ParentID: &bitxor},
		},
	}
	s := NewAccountService(&fakeAccounts{}, namespaces)
	ctx := context.Background()

	owned, err := s.AccountNamespacesWithName(ctx, alice)
	require.NoError(t, err)
	require.Len(t, owned, 3)
	var names []string
	for _, ns := range owned {
		names = append(names, ns.Name)
	}
	assert.Equal(t, []string{"bitxor", "bitxor.bxr", "bitxor.harvest"}, names)
	assert.Len(t, namespaces.requested, 3)

	none, err := s.AccountNamespacesWithName(ctx, testAddress(9))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTokensAmountView(t *testing.T) {
	unknown := model.TokenID(0x1234)
	accounts := &fakeAccounts{infos: []model.AccountInfo{{
		Address: alice,
		Tokens: []model.Token{
			model.NewToken(currencyID, 1000000),
			model.NewToken(bxr, 500),
			model.NewToken(unknown, 7),
		},
	}}}
	tokens := &fakeTokens{infos: []model.TokenInfo{{ID: currencyID, Divisibility: 6}}}
	namespaces := &fakeNamespaces{
		linkedTokens: map[model.UInt64]model.TokenID{bxr.ID: currencyID},
	}
	s := NewTokenService(accounts, tokens, namespaces)
	ctx := context.Background()

	views, err := s.TokensAmountViewFromAddress(ctx, alice)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 1.0, views[0].RelativeAmount())
	assert.Equal(t, currencyID, views[1].TokenInfo.ID)
	assert.Equal(t, model.UInt64(500), views[1].Amount)
	assert.Equal(t, []model.TokenID{currencyID, unknown}, tokens.requested)

	_, err = s.TokensAmountViewFromAddress(ctx, bob)
	assert.ErrorIs(t, err, errNotFound)

	_, err = s.TokensAmountView(ctx, []model.Token{model.NewToken(bitxor, 1)})
	assert.ErrorIs(t, err, errNotFound)
}
