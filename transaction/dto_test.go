package transaction_test

import (
	"encoding/json"
	"testing"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var extractRecipientTests = []struct {
	Name  string
	JSON  string
	Alias bool
	Error string
}{{
	Name: "encoded address",
	JSON: `"98A75B6B63D31BDA93808727940F24699AECDDF17C87191625"`,
}, {
	Name: "address object",
	JSON: `{"address":"TCTVW23D2MN5VE4AQ4TZIDZENGNOZXPRPSDRSFRF"}`,
}, {
	Name:  "namespace object",
	JSON:  `{"id":"D172EE8E1CD27257"}`,
	Alias: true,
}, {
	Name:  "encoded alias",
	JSON:  `"995772D21C8EEE72D1000000000000000000000000000000"`,
	Error: "unresolved address: invalid length 24",
}, {
	Name:  "number",
	JSON:  `5`,
	Error: "recipient 5: unrecognized shape",
}, {
	Name:  "empty object",
	JSON:  `{}`,
	Error: "recipient {}: unrecognized shape",
}}

func TestExtractRecipient(t *testing.T) {
	for _, test := range extractRecipientTests {
		t.Run(test.Name, func(t *testing.T) {
			assert := assert.New(t)
			adr, err := transaction.ExtractRecipient(json.RawMessage(test.JSON))
			if len(test.Error) > 0 {
				assert.EqualError(err, test.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(test.Alias, adr.IsAlias())
			if test.Alias {
				assert.Equal("D172EE8E1CD27257", adr.(model.NamespaceID).Hex())
				return
			}
			assert.Equal("TCTVW23D2MN5VE4AQ4TZIDZENGNOZXPRPSDRSFRF", adr.String())
		})
	}
}

func TestExtractTokens(t *testing.T) {
	tokens, err := transaction.ExtractTokens(nil)
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)

	tokens, err = transaction.ExtractTokens(json.RawMessage(
		`[{"id":"1960B2456840D08B","amount":"10"},{"id":"D172EE8E1CD27257","amount":"1"}]`))
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.False(t, tokens[0].ID.IsAlias())
	assert.True(t, tokens[1].ID.IsAlias())
	assert.Equal(t, model.UInt64(10), tokens[0].Amount)
}

const confirmedAggregateJSON = `{
  "id": "5F7F1B8E0000000000000001",
  "meta": {
    "height": "1000",
    "hash": "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
    "merkleComponentHash": "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB",
    "index": 3,
    "timestamp": "123456",
    "feeMultiplier": 10
  },
  "transaction": {
    "signature": "CCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCC",
    "signerPublicKey": "C2F93346E27CE6AD1A9F8F5E3066F8326593A406BDF357ACB041E2F9AB402EFE",
    "version": 1,
    "network": 152,
    "type": 16961,
    "maxFee": "50000",
    "deadline": "8888",
    "transactionsHash": "DDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDD",
    "cosignatures": [],
    "transactions": [{
      "id": "5F7F1B8E0000000000000002",
      "meta": {
        "height": "1000",
        "aggregateHash": "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
        "aggregateId": "5F7F1B8E0000000000000001",
        "index": 0
      },
      "transaction": {
        "signerPublicKey": "C2F93346E27CE6AD1A9F8F5E3066F8326593A406BDF357ACB041E2F9AB402EFE",
        "version": 1,
        "network": 152,
        "type": 16724,
        "recipientAddress": "995772D21C8EEE72D100000000000000000000000000000000",
        "tokens": [{"id": "1960B2456840D08B", "amount": "5"}],
        "message": "0068656C6C6F"
      }
    }]
  }
}`

func TestCreateFromJSON(t *testing.T) {
	tx, err := transaction.CreateFromJSON([]byte(confirmedAggregateJSON))
	require.NoError(t, err)
	assert := assert.New(t)

	assert.Equal(transaction.TypeAggregateBonded, tx.Type())
	assert.Equal(model.TestNet, tx.NetworkType)
	assert.Equal(model.Deadline(8888), tx.Deadline)
	assert.Equal(model.UInt64(50000), tx.MaxFee)
	require.NotNil(t, tx.Info)
	assert.True(tx.IsConfirmed())
	assert.False(tx.IsUnannounced())
	assert.Equal(uint32(3), tx.Info.Index)
	assert.Equal(model.UInt64(1000), tx.Info.Height)
	hash, err := tx.Hash()
	require.NoError(t, err)
	assert.Equal("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		hash.String())
	signer, ok := tx.SignerAddress()
	require.True(t, ok)
	assert.Equal("TCTVW23D2MN5VE4AQ4TZIDZENGNOZXPRPSDRSFRF", signer.Plain())

	agg := tx.Body.(*transaction.Aggregate)
	assert.True(agg.Bonded)
	assert.Empty(agg.Cosignatures)
	require.Len(t, agg.InnerTransactions, 1)
	inner := agg.InnerTransactions[0]
	assert.Equal(tx.Deadline, inner.Deadline)
	assert.Equal(tx.MaxFee, inner.MaxFee)
	assert.Equal(tx.Signature, inner.Signature)
	require.NotNil(t, inner.Info)
	assert.True(inner.Info.IsEmbedded())
	innerHash, err := inner.Hash()
	require.NoError(t, err)
	assert.Equal(hash, innerHash)

	transfer := inner.Body.(*transaction.Transfer)
	assert.True(transfer.Recipient.IsAlias())
	assert.Equal("hello", transfer.Message.String())
	require.Len(t, transfer.Tokens, 1)
	assert.Equal(model.UInt64(5), transfer.Tokens[0].Amount)

	// The JSON form of a decoded transaction decodes to the same
	// transaction.
	data, err := json.Marshal(tx)
	require.NoError(t, err)
	again, err := transaction.CreateFromJSON(data)
	require.NoError(t, err)
	payload, err := tx.Serialize()
	require.NoError(t, err)
	againPayload, err := again.Serialize()
	require.NoError(t, err)
	assert.Equal(payload, againPayload)
}
