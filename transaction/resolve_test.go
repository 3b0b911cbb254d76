package transaction

import (
	"testing"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAliases(t *testing.T) {
	const height = model.UInt64(100)
	resolvedToken := model.TokenID(0x6BED913FA20223F8)
	st := model.Statement{
		AddressResolutionStatements: []model.AddressResolutionStatement{{
			Height:     height,
			Unresolved: testNamespace,
			Entries: []model.AddressResolutionEntry{
				{Source: model.ReceiptSource{PrimaryID: 1}, Resolved: testAccount.Address},
				{Source: model.ReceiptSource{PrimaryID: 3, SecondaryID: 2}, Resolved: cosignerAccount.Address},
			},
		}},
		TokenResolutionStatements: []model.TokenResolutionStatement{{
			Height:     height,
			Unresolved: testNamespace,
			Entries: []model.TokenResolutionEntry{
				{Source: model.ReceiptSource{PrimaryID: 1}, Resolved: resolvedToken},
			},
		}},
	}

	transfer := &Transfer{
		Recipient: testNamespace,
		Tokens:    []model.Token{model.NewToken(testNamespace, 1)},
		Message:   model.EmptyMessage(),
	}

	tx := New(network, deadline, maxFee, transfer)
	assert.True(t, tx.ShouldResolve())
	_, err := tx.ResolveAliases(st)
	assert.ErrorIs(t, err, ErrNoTransactionInfo)

	tx.Info = &Info{Height: height, Index: 0}
	resolved, err := tx.ResolveAliases(st)
	require.NoError(t, err)
	body := resolved.Body.(*Transfer)
	assert.True(t, model.EqualUnresolvedAddress(testAccount.Address, body.Recipient))
	assert.True(t, model.EqualUnresolvedTokenID(resolvedToken, body.Tokens[0].ID))
	assert.False(t, resolved.ShouldResolve())
	// The original is left untouched.
	assert.True(t, tx.ShouldResolve())

	// Inner transactions resolve with their 1 based index as secondary id.
	agg := New(network, deadline, maxFee, &Aggregate{
		InnerTransactions: []*Transaction{inner(transfer), inner(transfer)},
	})
	agg.Info = &Info{Height: height, Index: 2}
	assert.True(t, agg.ShouldResolve())
	resolved, err = agg.ResolveAliases(st)
	require.NoError(t, err)
	inners := resolved.Body.(*Aggregate).InnerTransactions
	require.Len(t, inners, 2)
	assert.True(t, model.EqualUnresolvedAddress(testAccount.Address,
		inners[0].Body.(*Transfer).Recipient))
	assert.True(t, model.EqualUnresolvedAddress(cosignerAccount.Address,
		inners[1].Body.(*Transfer).Recipient))

	// No statement for the height.
	tx.Info = &Info{Height: height + 1}
	_, err = tx.ResolveAliases(st)
	assert.Error(t, err)
}

func TestShouldResolve(t *testing.T) {
	for typ, body := range samples() {
		tx := New(network, deadline, maxFee, body)
		switch typ {
		case TypeAccountKeyLink, TypeNodeKeyLink, TypeVrfKeyLink,
			TypeVotingKeyLink, TypeAccountOperationRestriction,
			TypeTokenDefinition, TypeAggregateBonded:
			assert.Falsef(t, tx.ShouldResolve(), "%v", typ)
		}
	}
	plain := New(network, deadline, maxFee, &Transfer{
		Recipient: cosignerAccount.Address,
		Tokens:    []model.Token{model.NewToken(testTokenID, 1)},
	})
	assert.False(t, plain.ShouldResolve())
}
