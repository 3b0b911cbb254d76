package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/bitxorcorp/bitxor-sdk-go/api"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(seed byte) model.Address {
	return model.NewAddressFromPublicKey(bytes.Repeat([]byte{seed}, 32), model.TestNet)
}

var (
	alice = testAddress(1)
	bob   = testAddress(2)

	currencyID = model.TokenID(0x6BED913FA20223F8)
	bxr, _     = model.NewNamespaceID("bitxor.bxr")
)

func accountJSON(adr model.Address) string {
	return fmt.Sprintf(`{
	"id": "5F3A",
	"account": {
		"version": 1,
		"address": %q,
		"addressHeight": "1",
		"publicKey": "%v",
		"publicKeyHeight": "0",
		"accountType": 1,
		"supplementalPublicKeys": {
			"linked": {"publicKey": "%v"},
			"voting": {"publicKeys": [{"publicKey": "%v", "startEpoch": 1, "endEpoch": 360}]}
		},
		"activityBuckets": [{"startHeight": "1", "totalFeesPaid": "0", "beneficiaryCount": 0, "rawScore": "10"}],
		"tokens": [{"id": "6BED913FA20223F8", "amount": "1000"}, {"id": "85BBEA6CC462B244", "amount": "5"}],
		"importance": "10",
		"importanceHeight": "2"
	}
}`, adr.Encoded(), model.Bytes32{}, model.Bytes32{0x01}, model.Bytes32{0x02})
}

func TestAccountHTTP(t *testing.T) {
	g := newGateway(t, map[string]string{
		"GET /accounts/" + alice.Plain(): accountJSON(alice),
		"POST /accounts":                 "[" + accountJSON(alice) + "," + accountJSON(bob) + "]",
		"GET /accounts": `{"data": [` + accountJSON(alice) + `],
			"pagination": {"pageNumber": 2, "pageSize": 1}}`,
	})
	r := NewAccountHTTP(g.Client())
	ctx := context.Background()

	info, err := r.GetAccountInfo(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "5F3A", info.RecordID)
	assert.True(t, alice.Equal(info.Address))
	assert.Equal(t, model.AccountMain, info.AccountType)
	require.Len(t, info.Tokens, 2)
	assert.Equal(t, model.NewToken(currencyID, 1000), info.Tokens[0])
	assert.True(t, info.Tokens[1].ID.IsAlias())
	require.NotNil(t, info.SupplementalPublicKeys.Linked)
	assert.Equal(t, model.Bytes32{0x01}, *info.SupplementalPublicKeys.Linked)
	assert.Nil(t, info.SupplementalPublicKeys.Node)
	require.Len(t, info.SupplementalPublicKeys.Voting, 1)
	assert.Equal(t, uint32(360), info.SupplementalPublicKeys.Voting[0].EndEpoch)
	assert.Equal(t, model.UInt64(10), info.ActivityBuckets[0].RawScore)

	infos, err := r.GetAccountsInfo(ctx, []model.Address{alice, bob})
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.True(t, bob.Equal(infos[1].Address))
	assert.JSONEq(t, fmt.Sprintf(`{"addresses": [%q, %q]}`, alice.Plain(), bob.Plain()),
		g.Body("POST /accounts"))

	page, err := r.Search(ctx, AccountSearchCriteria{
		Pagination: Pagination{PageSize: 1, PageNumber: 2},
		TokenID:    &currencyID,
	})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 2, page.PageNumber)
	assert.False(t, page.IsLastPage)
	assert.Contains(t, g.Requests(),
		"GET /accounts?pageNumber=2&pageSize=1&tokenId=6BED913FA20223F8")
}

func namespaceJSON(alias string) string {
	return fmt.Sprintf(`{
	"id": "6F",
	"meta": {"active": true, "index": 0},
	"namespace": {
		"version": 1,
		"registrationType": 1,
		"depth": 2,
		"level0": "%v",
		"level1": "%v",
		"alias": %v,
		"parentId": "%v",
		"ownerAddress": %q,
		"startHeight": "1",
		"endHeight": "100"
	}
}`, model.NamespaceID{ID: 0x8000000000000001}.Hex(), bxr.Hex(), alias,
		model.NamespaceID{ID: 0x8000000000000001}.Hex(), alice.Encoded())
}

func TestNamespaceHTTP(t *testing.T) {
	token, _ := model.NewNamespaceID("token")
	none, _ := model.NewNamespaceID("none")
	g := newGateway(t, map[string]string{
		"GET /namespaces/" + bxr.Hex(): namespaceJSON(
			fmt.Sprintf(`{"type": 2, "address": %q}`, bob.Encoded())),
		"GET /namespaces/" + token.Hex(): namespaceJSON(
			`{"type": 1, "tokenId": "6BED913FA20223F8"}`),
		"GET /namespaces/" + none.Hex(): namespaceJSON(`{"type": 0}`),
		"POST /namespaces/account/names": fmt.Sprintf(
			`{"accountNames": [{"address": %q, "names": ["bitxor.bxr"]}]}`,
			alice.Encoded()),
		"POST /namespaces/names": fmt.Sprintf(
			`[{"id": %q, "name": "bxr", "parentId": "%v"}]`, bxr.Hex(),
			model.NamespaceID{ID: 0x8000000000000001}.Hex()),
	})
	r := NewNamespaceHTTP(g.Client())
	ctx := context.Background()

	info, err := r.GetNamespace(ctx, bxr)
	require.NoError(t, err)
	require.Len(t, info.Levels, 2)
	assert.True(t, bxr.Equal(info.ID()))
	assert.False(t, info.IsRoot())
	assert.True(t, info.HasAlias())

	adr, err := r.GetLinkedAddress(ctx, bxr)
	require.NoError(t, err)
	assert.True(t, bob.Equal(adr))
	_, err = r.GetLinkedTokenID(ctx, bxr)
	assert.Error(t, err)

	id, err := r.GetLinkedTokenID(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, currencyID, id)
	_, err = r.GetLinkedAddress(ctx, none)
	assert.Error(t, err)

	names, err := r.GetAccountsNames(ctx, []model.Address{alice})
	require.NoError(t, err)
	require.Len(t, names, 1)
	require.Len(t, names[0].Names, 1)
	assert.True(t, bxr.Equal(names[0].Names[0].NamespaceID))

	nsNames, err := r.GetNamespacesNames(ctx, []model.NamespaceID{bxr})
	require.NoError(t, err)
	require.Len(t, nsNames, 1)
	assert.Equal(t, "bxr", nsNames[0].Name)
	require.NotNil(t, nsNames[0].ParentID)
	assert.JSONEq(t, fmt.Sprintf(`{"namespaceIds": [%q]}`, bxr.Hex()),
		g.Body("POST /namespaces/names"))
}

func TestRestrictionHTTP(t *testing.T) {
	hash := model.Bytes32{0x0C}
	g := newGateway(t, map[string]string{
		"GET /restrictions/account/" + alice.Plain(): fmt.Sprintf(`{
	"id": "1",
	"accountRestrictions": {
		"version": 1,
		"address": %q,
		"restrictions": [
			{"restrictionFlags": 32769, "values": [%q, "%v"]},
			{"restrictionFlags": 2, "values": ["6BED913FA20223F8"]},
			{"restrictionFlags": 16388, "values": [16724]}
		]
	}
}`, alice.Encoded(), bob.Encoded(), model.EncodeUnresolvedAddress(bxr, model.TestNet)),
		"GET /restrictions/token": fmt.Sprintf(`{"data": [{
	"id": "2",
	"tokenRestrictionEntry": {
		"version": 1,
		"compositeHash": "%v",
		"entryType": 1,
		"tokenId": "6BED913FA20223F8",
		"restrictions": [{"key": "1", "restriction": {
			"referenceTokenId": "0000000000000000",
			"restrictionValue": "1",
			"restrictionType": 1
		}}]
	}
}, {
	"id": "3",
	"tokenRestrictionEntry": {
		"version": 1,
		"compositeHash": "%v",
		"entryType": 0,
		"tokenId": "6BED913FA20223F8",
		"targetAddress": %q,
		"restrictions": [{"key": "1", "value": "2"}]
	}
}], "pagination": {"pageNumber": 1, "pageSize": 10}}`, hash, hash, alice.Encoded()),
	})
	ctx := context.Background()

	restrictions, err := NewRestrictionAccountHTTP(g.Client()).
		GetAccountRestrictions(ctx, alice)
	require.NoError(t, err)
	require.Len(t, restrictions.Restrictions, 3)
	blocked := restrictions.Restrictions[0]
	assert.Equal(t, model.BlockIncomingAddresses, blocked.Flags)
	require.Len(t, blocked.Addresses, 2)
	assert.False(t, blocked.Addresses[0].IsAlias())
	assert.True(t, blocked.Addresses[1].IsAlias())
	assert.Equal(t, []model.UnresolvedTokenID{currencyID},
		restrictions.Restrictions[1].TokenIDs)
	assert.Equal(t, []uint16{16724}, restrictions.Restrictions[2].TransactionTypes)

	page, err := NewRestrictionTokenHTTP(g.Client()).Search(ctx,
		RestrictionTokenSearchCriteria{})
	require.NoError(t, err)
	assert.True(t, page.IsLastPage)
	require.Len(t, page.Data, 2)
	global, ok := page.Data[0].(*model.TokenGlobalRestriction)
	require.True(t, ok)
	assert.Equal(t, model.TokenRestrictionEQ, global.Restrictions[1].RestrictionType)
	address, ok := page.Data[1].(*model.TokenAddressRestriction)
	require.True(t, ok)
	assert.Equal(t, model.UInt64(2), address.Restrictions[1])
	assert.True(t, alice.Equal(address.TargetAddress))
}

func TestMetadataHTTP(t *testing.T) {
	hash := model.Bytes32{0x0D}
	g := newGateway(t, map[string]string{
		"GET /metadata/" + hash.String(): fmt.Sprintf(`{
	"id": "4",
	"metadataEntry": {
		"version": 1,
		"compositeHash": "%v",
		"sourceAddress": %q,
		"targetAddress": %q,
		"scopedMetadataKey": "00000000000000FF",
		"targetId": "6BED913FA20223F8",
		"metadataType": 1,
		"value": "68656C6C6F"
	}
}`, hash, alice.Encoded(), bob.Encoded()),
	})
	entry, err := NewMetadataHTTP(g.Client()).GetMetadata(context.Background(), hash)
	require.NoError(t, err)
	assert.Equal(t, model.UInt64(0xFF), entry.ScopedMetadataKey)
	assert.Equal(t, currencyID, entry.TargetID)
	assert.Equal(t, []byte("hello"), entry.Value)
}

func TestReceiptHTTP(t *testing.T) {
	g := newGateway(t, map[string]string{
		"GET /statements/resolutions/address": fmt.Sprintf(`{"data": [{
	"id": "5",
	"statement": {
		"height": "100",
		"unresolved": "%v",
		"resolutionEntries": [{"source": {"primaryId": 1, "secondaryId": 0}, "resolved": %q}]
	}
}], "pagination": {"pageNumber": 1, "pageSize": 10}}`,
			model.EncodeUnresolvedAddress(bxr, model.TestNet), alice.Encoded()),
		"GET /statements/resolutions/token": fmt.Sprintf(`{"data": [{
	"id": "6",
	"statement": {
		"height": "100",
		"unresolved": "%v",
		"resolutionEntries": [{"source": {"primaryId": 2, "secondaryId": 1}, "resolved": "6BED913FA20223F8"}]
	}
}], "pagination": {"pageNumber": 1, "pageSize": 10}}`, bxr.Hex()),
		"GET /statements/transaction": `{"data": [{
	"id": "7",
	"statement": {
		"height": "100",
		"source": {"primaryId": 0, "secondaryId": 0},
		"receipts": [
			{"version": 1, "type": 8515, "targetAddress": "` + alice.Encoded() + `", "tokenId": "6BED913FA20223F8", "amount": "10"},
			{"version": 1, "type": 16717, "artifactId": "6BED913FA20223F8"}
		]
	}
}], "pagination": {"pageNumber": 1, "pageSize": 10}}`,
	})
	r := NewReceiptHTTP(g.Client())
	ctx := context.Background()
	height := model.UInt64(100)

	addresses, err := r.SearchAddressResolutionStatements(ctx,
		ResolutionStatementSearchCriteria{Height: &height})
	require.NoError(t, err)
	require.Len(t, addresses.Data, 1)
	st := addresses.Data[0]
	assert.True(t, model.EqualUnresolvedAddress(bxr, st.Unresolved))
	assert.True(t, alice.Equal(st.Entries[0].Resolved))
	assert.Contains(t, g.Requests(), "GET /statements/resolutions/address?height=100")

	tokens, err := r.SearchTokenResolutionStatements(ctx,
		ResolutionStatementSearchCriteria{Height: &height})
	require.NoError(t, err)
	require.Len(t, tokens.Data, 1)
	assert.Equal(t, currencyID, tokens.Data[0].Entries[0].Resolved)
	assert.Equal(t, model.ReceiptSource{PrimaryID: 2, SecondaryID: 1},
		tokens.Data[0].Entries[0].Source)

	receipts, err := r.SearchReceipts(ctx, TransactionStatementSearchCriteria{})
	require.NoError(t, err)
	require.Len(t, receipts.Data[0].Receipts, 2)
	assert.Equal(t, model.ReceiptHarvestFee, receipts.Data[0].Receipts[0].Type)
	assert.Equal(t, model.UInt64(currencyID), receipts.Data[0].Receipts[1].ArtifactID)
}

func TestNetworkHTTP(t *testing.T) {
	g := newGateway(t, map[string]string{
		"GET /network/properties": `{
	"network": {"identifier": "testnet", "epochAdjustment": "1616694977s"},
	"chain": {"enableVerifiableState": "true", "currencyTokenId": "0x6BED'913F'A202'23F8"},
	"plugins": {"lockhash": {"maxHashLockDuration": "2d"}}
}`,
		"GET /network/fees/transaction": `{"averageFeeMultiplier": 10, "medianFeeMultiplier": 100,
			"highestFeeMultiplier": 1000, "lowestFeeMultiplier": 0, "minFeeMultiplier": 10}`,
		"GET /node/info": fmt.Sprintf(`{"networkIdentifier": 152, "publicKey": "%v",
			"networkGenerationHashSeed": "%v", "roles": 3, "port": 7900, "host": "node"}`,
			model.Bytes32{0x01}, model.Bytes32{0x02}),
	})
	r := NewNetworkHTTP(g.Client())
	ctx := context.Background()

	props, err := r.GetNetworkProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, "testnet", props.Network.Identifier)
	assert.True(t, props.Chain.EnableVerifiableState)
	assert.False(t, props.Chain.EnableVerifiableReceipts)
	assert.Equal(t, "2d", props.Plugins["lockhash"]["maxHashLockDuration"])

	fees, err := r.GetTransactionFees(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(100), fees.MedianFeeMultiplier)

	network, err := r.GetNetworkType(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.TestNet, network)
}

func TestErrorShape(t *testing.T) {
	g := newGateway(t, map[string]string{})
	_, err := NewChainHTTP(g.Client()).GetChainInfo(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))

	var shape struct {
		StatusCode    int    `json:"statusCode"`
		StatusMessage string `json:"statusMessage"`
		Body          string `json:"body"`
	}
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	require.NoError(t, json.Unmarshal([]byte(apiErr.Error()), &shape))
	assert.Equal(t, 404, shape.StatusCode)
	assert.Equal(t, "Not Found", shape.StatusMessage)
	assert.Contains(t, shape.Body, "ResourceNotFound")
}

func signedTransfer(t *testing.T) (*transaction.Transaction, transaction.SignedTransaction) {
	signer, err := model.NewAccountFromPrivateKey(
		"575DBB3062267EFF57C970A336EBBC8FBCFE12C5BD3ED7BC11EB0481D7704CED",
		model.TestNet)
	require.NoError(t, err)
	tx := transaction.NewTransfer(model.TestNet, 1, bob,
		[]model.Token{model.NewToken(currencyID, 10)}, model.EmptyMessage(), 0)
	signed, err := tx.Sign(signer, model.Bytes32{})
	require.NoError(t, err)
	tx, err = transaction.CreateFromPayload(signed.Payload, false)
	require.NoError(t, err)
	return tx, signed
}

func TestAnnounce(t *testing.T) {
	g := newGateway(t, map[string]string{
		"PUT /transactions":             `{"message": "packet 9 was pushed to the network via /transactions"}`,
		"PUT /transactions/partial":     `{"message": "packet 500 was pushed to the network via /transactions/partial"}`,
		"PUT /transactions/cosignature": `{"message": "packet 501 was pushed to the network via /transactions/cosignature"}`,
	})
	r := NewTransactionHTTP(g.Client())
	ctx := context.Background()
	_, signed := signedTransfer(t)
	bonded := signed
	bonded.Type = transaction.TypeAggregateBonded

	_, err := r.Announce(ctx, bonded)
	assert.ErrorIs(t, err, ErrInvalidAnnounce)
	_, err = r.AnnounceAggregateBonded(ctx, signed)
	assert.ErrorIs(t, err, ErrInvalidAnnounce)
	assert.Empty(t, g.Requests())

	res, err := r.Announce(ctx, signed)
	require.NoError(t, err)
	assert.Contains(t, res.Message, "/transactions")
	assert.JSONEq(t, fmt.Sprintf(`{"payload": %q}`, signed.Payload),
		g.Body("PUT /transactions"))

	_, err = r.AnnounceAggregateBonded(ctx, bonded)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Count("PUT /transactions/partial"))

	_, err = r.AnnounceAggregateBondedCosignature(ctx,
		transaction.CosignatureSignedTransaction{
			ParentHash: signed.Hash,
			Signature:  make(model.Bytes, 64),
		})
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(g.Body("PUT /transactions/cosignature")), &body))
	assert.Equal(t, signed.Hash.String(), body["parentHash"])
}

func TestTransactionHTTP(t *testing.T) {
	tx, signed := signedTransfer(t)
	tx.Info = &transaction.Info{ID: "8", Height: 10, Hash: &signed.Hash}
	data, err := json.Marshal(tx)
	require.NoError(t, err)
	size, err := tx.Size()
	require.NoError(t, err)

	g := newGateway(t, map[string]string{
		"GET /transactions/confirmed/" + signed.Hash.String(): string(data),
		"POST /transactions/confirmed":                        "[" + string(data) + "]",
		"GET /transactions/partial": `{"data": [], "pagination": {"pageNumber": 1, "pageSize": 10}}`,
		"GET /blocks/10": `{"id": "9", "meta": {"hash": "` + model.Bytes32{}.String() +
			`"}, "block": {"height": "10", "feeMultiplier": 100, "network": 152}}`,
	})
	r := NewTransactionHTTP(g.Client())
	ctx := context.Background()

	got, err := r.GetTransaction(ctx, signed.Hash.String(), model.TransactionConfirmed)
	require.NoError(t, err)
	require.NotNil(t, got.Info)
	assert.Equal(t, model.UInt64(10), got.Info.Height)
	assert.Equal(t, transaction.TypeTransfer, got.Type())

	list, err := r.GetTransactionsByIDs(ctx, []string{"8"}, model.TransactionConfirmed)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	page, err := r.Search(ctx, TransactionSearchCriteria{
		Group: model.TransactionPartial,
		Types: []transaction.Type{transaction.TypeAggregateBonded},
	})
	require.NoError(t, err)
	assert.True(t, page.IsLastPage)
	assert.Contains(t, g.Requests(), "GET /transactions/partial?type=16961")

	_, err = r.Search(ctx, TransactionSearchCriteria{})
	assert.Error(t, err)

	fee, err := r.GetTransactionEffectiveFee(ctx, signed.Hash.String())
	require.NoError(t, err)
	assert.Equal(t, model.UInt64(100*size), fee)
}
