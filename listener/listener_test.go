package listener

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUID = "Eu3L6sA5ZbrDfYzhcR4VqEjyXc2"

func testAddress(seed byte) model.Address {
	return model.NewAddressFromPublicKey(bytes.Repeat([]byte{seed}, 32), model.TestNet)
}

var (
	alice = testAddress(1)
	bob   = testAddress(2)
	carol = testAddress(3)
)

// gateway is a fake websocket endpoint. Every accepted connection is sent
// the uid, unless silent, and handed to the test.
type gateway struct {
	*httptest.Server
	conns  chan *websocket.Conn
	silent bool
}

func newGateway(t *testing.T, silent bool) *gateway {
	g := &gateway{conns: make(chan *websocket.Conn, 1), silent: silent}
	upgrader := websocket.Upgrader{}
	g.Server = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			if g.silent {
				conn.Close()
				return
			}
			conn.WriteJSON(map[string]string{"uid": testUID})
			g.conns <- conn
		}))
	t.Cleanup(g.Close)
	return g
}

func (g *gateway) URL() string {
	return "ws" + strings.TrimPrefix(g.Server.URL, "http") + "/ws"
}

func (g *gateway) accept(t *testing.T) *websocket.Conn {
	select {
	case conn := <-g.conns:
		t.Cleanup(func() { conn.Close() })
		return conn
	case <-time.After(5 * time.Second):
		require.FailNow(t, "no connection")
	}
	return nil
}

func readFrame(t *testing.T, conn *websocket.Conn) subscribeFrame {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var f subscribeFrame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func push(t *testing.T, conn *websocket.Conn, topic string, data interface{}) {
	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"topic": topic,
		"data":  data,
	}))
}

func receive[T any](t *testing.T, c <-chan T) T {
	select {
	case v, ok := <-c:
		require.True(t, ok, "subscription closed")
		return v
	case <-time.After(5 * time.Second):
		require.FailNow(t, "no notification")
	}
	var zero T
	return zero
}

func open(t *testing.T, cfg Config) (*Listener, *websocket.Conn) {
	g := newGateway(t, false)
	cfg.URL = g.URL()
	l := New(cfg)
	require.NoError(t, l.Open(context.Background()))
	t.Cleanup(func() { l.Close() })
	return l, g.accept(t)
}

// confirmedJSON returns a confirmed transfer to recipient, identified by the
// given deadline.
func confirmedJSON(t *testing.T, recipient model.Address,
	deadline model.Deadline) (json.RawMessage, model.Bytes32) {
	signer, err := model.NewAccountFromPrivateKey(
		"575DBB3062267EFF57C970A336EBBC8FBCFE12C5BD3ED7BC11EB0481D7704CED",
		model.TestNet)
	require.NoError(t, err)
	var generationHash model.Bytes32
	tx := transaction.NewTransfer(model.TestNet, deadline, recipient, nil,
		model.EmptyMessage(), 0)
	signed, err := tx.Sign(signer, generationHash)
	require.NoError(t, err)
	tx, err = transaction.CreateFromPayload(signed.Payload, false)
	require.NoError(t, err)
	hash := signed.Hash
	tx.Info = &transaction.Info{Height: 10, Hash: &hash}
	data, err := json.Marshal(tx)
	require.NoError(t, err)
	return data, hash
}

func TestConfirmedDispatch(t *testing.T) {
	l, conn := open(t, Config{})
	assert.Equal(t, testUID, l.UID())
	assert.Equal(t, Open, l.State())

	ctx := context.Background()
	confirmed, err := l.Confirmed(ctx, alice, nil, false)
	require.NoError(t, err)
	assert.Equal(t, subscribeFrame{UID: testUID,
		Subscribe: "confirmedAdded/" + alice.Plain()}, readFrame(t, conn))

	unconfirmed, err := l.UnconfirmedAdded(ctx, alice, nil, false)
	require.NoError(t, err)
	assert.Equal(t, "unconfirmedAdded/"+alice.Plain(), readFrame(t, conn).Subscribe)

	data, hash := confirmedJSON(t, alice, 1)
	push(t, conn, "confirmedAdded/"+alice.Plain(), data)
	// Repeated hashes are dropped.
	push(t, conn, "confirmedAdded/"+alice.Plain(), data)
	// Other addresses are not delivered.
	other, _ := confirmedJSON(t, bob, 2)
	push(t, conn, "confirmedAdded/"+bob.Plain(), other)
	pending, pendingHash := confirmedJSON(t, alice, 3)
	push(t, conn, "unconfirmedAdded/"+alice.Plain(), pending)

	tx := receive(t, confirmed.C)
	require.NotNil(t, tx.Info)
	assert.Equal(t, hash, *tx.Info.Hash)
	assert.Equal(t, transaction.TypeTransfer, tx.Type())

	tx = receive(t, unconfirmed.C)
	assert.Equal(t, pendingHash, *tx.Info.Hash)
	// Messages are dispatched in order, so everything before the
	// unconfirmed transaction was handled.
	assert.Len(t, confirmed.C, 0)
}

func TestHashFilter(t *testing.T) {
	l, conn := open(t, Config{})
	first, _ := confirmedJSON(t, alice, 1)
	second, hash := confirmedJSON(t, alice, 2)

	sub, err := l.Confirmed(context.Background(), alice, &hash, false)
	require.NoError(t, err)
	readFrame(t, conn)

	push(t, conn, "confirmedAdded/"+alice.Plain(), first)
	push(t, conn, "confirmedAdded/"+alice.Plain(), second)
	tx := receive(t, sub.C)
	assert.Equal(t, hash, *tx.Info.Hash)
}

func TestRemovedStatusAndCosignature(t *testing.T) {
	l, conn := open(t, Config{})
	ctx := context.Background()

	removed, err := l.UnconfirmedRemoved(ctx, alice, nil, false)
	require.NoError(t, err)
	readFrame(t, conn)
	status, err := l.Status(ctx, alice, nil)
	require.NoError(t, err)
	readFrame(t, conn)
	cosignature, err := l.Cosignature(ctx, alice, false)
	require.NoError(t, err)
	readFrame(t, conn)

	hash := model.Bytes32{0xAA}
	push(t, conn, "unconfirmedRemoved/"+alice.Plain(),
		map[string]interface{}{"meta": map[string]string{"hash": hash.String()}})
	push(t, conn, "status/"+alice.Plain(), map[string]string{
		"hash":     hash.String(),
		"code":     "Failure_Core_Insufficient_Balance",
		"deadline": "1234",
	})
	push(t, conn, "cosignature/"+alice.Plain(), map[string]string{
		"version":         "0",
		"signerPublicKey": model.Bytes32{0x01}.String(),
		"signature":       strings.Repeat("AB", 64),
		"parentHash":      hash.String(),
	})

	assert.Equal(t, hash, receive(t, removed.C))
	st := receive(t, status.C)
	assert.Equal(t, "Failure_Core_Insufficient_Balance", st.Code)
	assert.True(t, alice.Equal(st.Address))
	assert.Equal(t, model.Deadline(1234), st.Deadline)
	cosig := receive(t, cosignature.C)
	assert.Equal(t, hash, cosig.ParentHash)
	assert.Len(t, cosig.Signature, 64)
}

func TestNewBlock(t *testing.T) {
	l, conn := open(t, Config{})
	blocks, err := l.NewBlock()
	require.NoError(t, err)
	assert.Equal(t, "block", readFrame(t, conn).Subscribe)

	push(t, conn, "block", map[string]interface{}{
		"block": map[string]interface{}{
			"height":             "42",
			"network":            model.TestNet,
			"type":               model.NormalBlock,
			"signerPublicKey":    model.Bytes32{0x02}.String(),
			"beneficiaryAddress": alice.Encoded(),
			"feeMultiplier":      100,
		},
		"meta": map[string]string{"hash": model.Bytes32{0x03}.String()},
	})
	block := receive(t, blocks.C)
	assert.Equal(t, model.UInt64(42), block.Height)
	assert.Equal(t, uint32(100), block.FeeMultiplier)
	assert.Equal(t, model.Bytes32{0x03}, block.Hash)
	assert.True(t, alice.Equal(block.BeneficiaryAddress))
}

type multisigFetcher struct {
	graph model.MultisigAccountGraphInfo
	err   error
}

func (f multisigFetcher) GetMultisigAccountGraphInfo(context.Context,
	model.Address) (model.MultisigAccountGraphInfo, error) {
	return f.graph, f.err
}

func TestMultisigSubscribe(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Fetcher   multisigFetcher
		Addresses []model.Address
	}{{
		Name: "cosignatories",
		Fetcher: multisigFetcher{graph: model.MultisigAccountGraphInfo{
			Entries: map[int][]model.MultisigAccountInfo{
				0: {{
					AccountAddress:       alice,
					MinApproval:          1,
					MinRemoval:           1,
					CosignatoryAddresses: []model.Address{bob, carol},
				}},
				-1: {{AccountAddress: bob}, {AccountAddress: carol}},
			},
		}},
		Addresses: []model.Address{alice, bob, carol},
	}, {
		Name:      "fallback",
		Fetcher:   multisigFetcher{err: errors.New("not found")},
		Addresses: []model.Address{alice},
	}} {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			l, conn := open(t, Config{Multisig: test.Fetcher})
			sub, err := l.Confirmed(context.Background(), alice, nil, true)
			require.NoError(t, err)

			var want, got []string
			for _, adr := range test.Addresses {
				want = append(want, "confirmedAdded/"+adr.Plain())
				got = append(got, readFrame(t, conn).Subscribe)
			}
			assert.ElementsMatch(t, want, got)
			assert.Len(t, sub.Addresses, len(test.Addresses))
		})
	}
}

type namespaceFetcher map[model.UInt64]model.Address

func (f namespaceFetcher) GetLinkedAddress(_ context.Context,
	id model.NamespaceID) (model.Address, error) {
	adr, ok := f[id.ID]
	if !ok {
		return model.Address{}, errors.New("no alias")
	}
	return adr, nil
}

func TestNamespaceSubscribe(t *testing.T) {
	ns, err := model.NewNamespaceID("alice")
	require.NoError(t, err)
	l, conn := open(t, Config{Namespaces: namespaceFetcher{ns.ID: alice}})

	_, err = l.Confirmed(context.Background(), ns, nil, false)
	require.NoError(t, err)
	assert.Equal(t, "confirmedAdded/"+alice.Plain(), readFrame(t, conn).Subscribe)

	unknown, err := model.NewNamespaceID("bob")
	require.NoError(t, err)
	_, err = l.Confirmed(context.Background(), unknown, nil, false)
	assert.EqualError(t, err, "no alias")
}

func TestUnsubscribe(t *testing.T) {
	l, conn := open(t, Config{})
	ctx := context.Background()
	first, err := l.Confirmed(ctx, alice, nil, false)
	require.NoError(t, err)
	readFrame(t, conn)
	second, err := l.Confirmed(ctx, alice, nil, false)
	require.NoError(t, err)

	first.Unsubscribe()
	_, ok := <-first.C
	assert.False(t, ok)
	second.Unsubscribe()
	assert.Equal(t, subscribeFrame{UID: testUID,
		Unsubscribe: "confirmedAdded/" + alice.Plain()}, readFrame(t, conn))
}

func TestUnknownChannel(t *testing.T) {
	closed := make(chan error, 1)
	l, conn := open(t, Config{OnClose: func(err error) { closed <- err }})
	sub, err := l.NewBlock()
	require.NoError(t, err)
	readFrame(t, conn)

	push(t, conn, "bogus/"+alice.Plain(), map[string]string{})
	err = receive(t, closed)
	assert.EqualError(t, err, "unknown channel: bogus")
	assert.Equal(t, err, l.Err())
	assert.Equal(t, Closed, l.State())
	_, ok := <-sub.C
	assert.False(t, ok)
}

func TestClose(t *testing.T) {
	called := false
	l, conn := open(t, Config{OnClose: func(error) { called = true }})
	sub, err := l.FinalizedBlock()
	require.NoError(t, err)
	readFrame(t, conn)

	require.NoError(t, l.Close())
	_, ok := <-sub.C
	assert.False(t, ok)
	<-l.Done()
	assert.NoError(t, l.Err())
	assert.False(t, called)
	assert.Equal(t, Closed, l.State())

	_, err = l.NewBlock()
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestOpen(t *testing.T) {
	l := New(Config{URL: "ws://localhost:1/ws"})
	_, err := l.NewBlock()
	assert.ErrorIs(t, err, ErrNotOpen)

	g := newGateway(t, true)
	l = New(Config{URL: g.URL()})
	err = l.Open(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handshake")
	assert.Equal(t, Closed, l.State())
}

func TestOpenCanceledDuringHandshake(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			defer conn.Close()
			cancel()
			conn.WriteJSON(map[string]string{"uid": testUID})
			conn.ReadMessage()
		}))
	defer srv.Close()

	l := New(Config{URL: "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"})
	err := l.Open(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Closed, l.State())
}
