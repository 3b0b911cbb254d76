package transaction

import (
	"bytes"
	"encoding/json"
	"sort"
	"testing"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	network  = model.TestNet
	deadline = model.Deadline(1234567)
	maxFee   = model.UInt64(20000)
)

var (
	testAccount, _ = model.NewAccountFromPrivateKey(
		"575DBB3062267EFF57C970A336EBBC8FBCFE12C5BD3ED7BC11EB0481D7704CED",
		network)
	cosignerAccount, _ = model.NewAccountFromPrivateKey(
		"26B64CB10F005E5988A36744CA19E20D835CCC7C105AAA5F3B212DA593180930",
		network)
	generationHash, _ = model.NewBytes32FromHex(
		"3D9507C8038633C0EB2658704A5E7BC983E4327A99AC14C032D67F6AECFAE4AE")

	testNamespace, _ = model.NewNamespaceID("bitxor.bxr")
	testTokenID      = model.TokenID(0x1960B2456840D08B)
)

func testSignature() model.Bytes {
	return model.Bytes(bytes.Repeat([]byte{0xAB}, 64))
}

func inner(body Body) *Transaction {
	return New(network, model.EmptyDeadline, 0, body).
		ToAggregate(testAccount.PublicAccount)
}

// samples holds one body of every supported transaction type.
func samples() map[Type]Body {
	adr := cosignerAccount.Address
	key := *model.NewBytes32(bytes.Repeat([]byte{7}, 32))
	return map[Type]Body{
		TypeTransfer: &Transfer{
			Recipient: adr,
			Tokens: []model.Token{
				model.NewToken(testTokenID, 100),
				model.NewToken(testNamespace, 5),
			},
			Message: model.NewPlainMessage("hello"),
		},
		TypeNamespaceRegistration: &NamespaceRegistration{
			RegistrationType: model.RootNamespace,
			Name:             "bitxor",
			ID:               model.NamespaceID{ID: model.GenerateNamespaceID(0, "bitxor")},
			Duration:         1000,
		},
		TypeAddressAlias: &AddressAlias{
			Action:      model.AliasLink,
			NamespaceID: testNamespace,
			Address:     adr,
		},
		TypeTokenAlias: &TokenAlias{
			Action:      model.AliasUnlink,
			NamespaceID: testNamespace,
			TokenID:     testTokenID,
		},
		TypeTokenDefinition: &TokenDefinition{
			Nonce:        0x12345678,
			ID:           model.NewTokenIDFromNonce(0x12345678, adr),
			Flags:        model.TokenTransferable | model.TokenRevokable,
			Divisibility: 6,
			Duration:     0,
		},
		TypeTokenSupplyChange: &TokenSupplyChange{
			TokenID: testTokenID,
			Action:  model.TokenSupplyIncrease,
			Delta:   1000000,
		},
		TypeTokenSupplyRevocation: &TokenSupplyRevocation{
			Source: testNamespace,
			Token:  model.NewToken(testTokenID, 3),
		},
		TypeMultisigAccountModification: &MultisigAccountModification{
			MinApprovalDelta: 2,
			MinRemovalDelta:  -1,
			AddressAdditions: []model.UnresolvedAddress{adr, testNamespace},
			AddressDeletions: []model.UnresolvedAddress{testAccount.Address},
		},
		TypeAggregateComplete: &Aggregate{
			InnerTransactions: []*Transaction{
				inner(&Transfer{Recipient: adr, Tokens: []model.Token{},
					Message: model.EmptyMessage()}),
				inner(&TokenSupplyChange{TokenID: testNamespace, Delta: 1}),
			},
			Cosignatures: []Cosignature{{
				Signer:    cosignerAccount.PublicAccount,
				Signature: testSignature(),
			}},
		},
		TypeAggregateBonded: &Aggregate{
			Bonded: true,
			InnerTransactions: []*Transaction{
				inner(&AccountKeyLink{KeyLink{LinkedPublicKey: key,
					Action: model.Link}}),
			},
		},
		TypeHashLock: &HashLock{
			Token:    model.NewToken(testNamespace, 10000000),
			Duration: 480,
			Hash:     key,
		},
		TypeSecretLock: &SecretLock{
			Recipient:     adr,
			Secret:        key,
			Token:         model.NewToken(testTokenID, 10),
			Duration:      100,
			HashAlgorithm: model.LockHashHash160,
		},
		TypeSecretProof: &SecretProof{
			Recipient:     testNamespace,
			Secret:        key,
			HashAlgorithm: model.LockHashSHA3_256,
			Proof:         []byte{1, 2, 3, 4},
		},
		TypeAccountAddressRestriction: &AccountAddressRestriction{
			Flags:     model.BlockOutgoingAddresses,
			Additions: []model.UnresolvedAddress{adr},
			Deletions: []model.UnresolvedAddress{testNamespace},
		},
		TypeAccountTokenRestriction: &AccountTokenRestriction{
			Flags:     model.AllowTokens,
			Additions: []model.UnresolvedTokenID{testTokenID, testNamespace},
			Deletions: []model.UnresolvedTokenID{},
		},
		TypeAccountOperationRestriction: &AccountOperationRestriction{
			Flags:     model.AllowOutgoingTransactionTypes,
			Additions: []Type{TypeTransfer},
			Deletions: []Type{TypeSecretLock, TypeHashLock},
		},
		TypeAccountKeyLink: &AccountKeyLink{KeyLink{LinkedPublicKey: key,
			Action: model.Link}},
		TypeNodeKeyLink: &NodeKeyLink{KeyLink{LinkedPublicKey: key,
			Action: model.Unlink}},
		TypeVrfKeyLink: &VrfKeyLink{KeyLink{LinkedPublicKey: key,
			Action: model.Link}},
		TypeVotingKeyLink: &VotingKeyLink{
			LinkedPublicKey: key,
			StartEpoch:      1,
			EndEpoch:        360,
			Action:          model.Link,
		},
		TypeTokenAddressRestriction: &TokenAddressRestriction{
			TokenID:                  testNamespace,
			RestrictionKey:           0xCAFE,
			PreviousRestrictionValue: 0xFFFFFFFFFFFFFFFF,
			NewRestrictionValue:      1,
			TargetAddress:            adr,
		},
		TypeTokenGlobalRestriction: &TokenGlobalRestriction{
			TokenID:                  testTokenID,
			ReferenceTokenID:         model.TokenID(0),
			RestrictionKey:           0xCAFE,
			PreviousRestrictionValue: 0,
			NewRestrictionValue:      1,
			PreviousRestrictionType:  model.TokenRestrictionNone,
			NewRestrictionType:       model.TokenRestrictionEQ,
		},
		TypeAccountMetadata: &AccountMetadata{
			TargetAddress:     adr,
			ScopedMetadataKey: 0xBEEF,
			ValueSizeDelta:    3,
			Value:             []byte("abc"),
		},
		TypeTokenMetadata: &TokenMetadata{
			TargetAddress:     adr,
			ScopedMetadataKey: 0xBEEF,
			TargetTokenID:     testTokenID,
			ValueSizeDelta:    -1,
			Value:             []byte("ab"),
		},
		TypeNamespaceMetadata: &NamespaceMetadata{
			TargetAddress:     testNamespace,
			ScopedMetadataKey: 0xBEEF,
			TargetNamespaceID: testNamespace,
			ValueSizeDelta:    0,
			Value:             []byte{},
		},
	}
}

func sortedTypes(types []Type) []Type {
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func TestDispatchCompleteness(t *testing.T) {
	var sampleTypes []Type
	for typ, body := range samples() {
		assert.Equalf(t, typ, body.Type(), "sample %v", typ)
		sampleTypes = append(sampleTypes, typ)
	}
	assert.Equal(t, sortedTypes(Types()), sortedTypes(sampleTypes))
	assert.Len(t, Types(), 25)

	// Every type decodes from both its payload and its DTO.
	for typ, body := range samples() {
		tx := New(network, deadline, maxFee, body)
		payload, err := tx.Serialize()
		require.NoError(t, err, typ)
		fromPayload, err := CreateFromPayloadBytes(payload, false)
		require.NoError(t, err, typ)
		assert.Equal(t, typ, fromPayload.Type())

		data, err := SerializeToJSON(tx)
		require.NoError(t, err, typ)
		fromDTO, err := CreateFromJSON(data)
		require.NoError(t, err, typ)
		assert.Equal(t, typ, fromDTO.Type())
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	for typ, body := range samples() {
		t.Run(typ.String(), func(t *testing.T) {
			tx := New(network, deadline, maxFee, body)
			payload, err := tx.Serialize()
			require.NoError(t, err)
			size, err := tx.Size()
			require.NoError(t, err)
			assert.Len(t, payload, size)

			decoded, err := CreateFromPayloadBytes(payload, false)
			require.NoError(t, err)
			assert.Equal(t, network, decoded.NetworkType)
			assert.Equal(t, deadline, decoded.Deadline)
			assert.Equal(t, maxFee, decoded.MaxFee)
			reencoded, err := decoded.Serialize()
			require.NoError(t, err)
			assert.Equal(t, payload, reencoded)

			hexPayload, err := tx.SerializeHex()
			require.NoError(t, err)
			fromHex, err := CreateFromPayload(hexPayload, false)
			require.NoError(t, err)
			assert.Equal(t, typ, fromHex.Type())

			if typ.IsAggregate() {
				return
			}
			embedded, err := inner(body).serialize(true)
			require.NoError(t, err)
			decoded, err = CreateFromPayloadBytes(embedded, true)
			require.NoError(t, err)
			require.NotNil(t, decoded.Signer)
			assert.True(t, testAccount.PublicAccount.Equal(*decoded.Signer))
			reencoded, err = decoded.serialize(true)
			require.NoError(t, err)
			assert.Equal(t, embedded, reencoded)
		})
	}
}

func TestDTORoundTrip(t *testing.T) {
	for typ, body := range samples() {
		t.Run(typ.String(), func(t *testing.T) {
			tx := New(network, deadline, maxFee, body)
			data, err := SerializeToJSON(tx)
			require.NoError(t, err)

			decoded, err := CreateFromJSON(data)
			require.NoError(t, err)
			assert.Nil(t, decoded.Info)
			assert.Equal(t, deadline, decoded.Deadline)
			assert.Equal(t, maxFee, decoded.MaxFee)
			redata, err := SerializeToJSON(decoded)
			require.NoError(t, err)
			assert.JSONEq(t, string(data), string(redata))

			payload, err := tx.Serialize()
			require.NoError(t, err)
			repayload, err := decoded.Serialize()
			require.NoError(t, err)
			assert.Equal(t, payload, repayload)

			if typ.IsAggregate() {
				return
			}
			dto, err := inner(body).toDTO(true)
			require.NoError(t, err)
			var fields map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(dto.Transaction, &fields))
			assert.NotContains(t, fields, "maxFee")
			assert.NotContains(t, fields, "deadline")
			assert.NotContains(t, fields, "signature")

			decoded, err = CreateFromDTO(dto)
			require.NoError(t, err)
			assert.Equal(t, model.EmptyDeadline, decoded.Deadline)
			redto, err := decoded.toDTO(true)
			require.NoError(t, err)
			assert.JSONEq(t, string(dto.Transaction), string(redto.Transaction))
		})
	}
}

func TestCreateFromDTOUnknownType(t *testing.T) {
	_, err := CreateFromJSON([]byte(
		`{"transaction":{"type":12345,"network":152,"version":1}}`))
	assert.EqualError(t, err, "transaction type 12345: not implemented")

	_, err = CreateFromJSON([]byte(`{"meta":{}}`))
	assert.Error(t, err)
}

func TestCreateFromPayloadUnknownVersion(t *testing.T) {
	tx := New(network, deadline, maxFee, samples()[TypeTransfer])
	tx.Version = 2
	payload, err := tx.Serialize()
	require.NoError(t, err)
	_, err = CreateFromPayloadBytes(payload, false)
	assert.EqualError(t, err, "transaction type TRANSFER version 2: not implemented")

	_, err = CreateFromPayloadBytes(payload[:100], false)
	assert.Error(t, err)
}

func TestTransferTokensSorted(t *testing.T) {
	tx := New(network, deadline, maxFee, &Transfer{
		Recipient: cosignerAccount.Address,
		Tokens: []model.Token{
			model.NewToken(testNamespace, 1),
			model.NewToken(testTokenID, 2),
		},
	})
	payload, err := tx.Serialize()
	require.NoError(t, err)
	decoded, err := CreateFromPayloadBytes(payload, false)
	require.NoError(t, err)
	tokens := decoded.Body.(*Transfer).Tokens
	require.Len(t, tokens, 2)
	assert.True(t, model.EqualUnresolvedTokenID(testTokenID, tokens[0].ID))
	assert.True(t, model.EqualUnresolvedTokenID(testNamespace, tokens[1].ID))
}
