package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bitxorcorp/bitxor-sdk-go/listener"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signer, _ = model.NewAccountFromPrivateKey(
	"575DBB3062267EFF57C970A336EBBC8FBCFE12C5BD3ED7BC11EB0481D7704CED",
	model.TestNet)

// openListener returns a listener connected to a fake websocket endpoint and
// the server side of the connection.
func openListener(t *testing.T) (*listener.Listener, *websocket.Conn) {
	conns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			conn.WriteJSON(map[string]string{"uid": "service-test"})
			conns <- conn
		}))
	t.Cleanup(srv.Close)

	l := listener.New(listener.Config{
		URL: "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws",
	})
	require.NoError(t, l.Open(context.Background()))
	t.Cleanup(func() { l.Close() })
	select {
	case conn := <-conns:
		t.Cleanup(func() { conn.Close() })
		return l, conn
	case <-time.After(5 * time.Second):
		require.FailNow(t, "no connection")
	}
	return nil, nil
}

func push(t *testing.T, conn *websocket.Conn, topic string, data interface{}) {
	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"topic": topic,
		"data":  data,
	}))
}

// announced returns the notification data of signed, as pushed by the node.
func announced(t *testing.T, signed transaction.SignedTransaction) *transaction.Transaction {
	tx, err := transaction.CreateFromPayload(signed.Payload, false)
	require.NoError(t, err)
	hash := signed.Hash
	tx.Info = &transaction.Info{Height: 10, Hash: &hash}
	return tx
}

func sign(t *testing.T, tx *transaction.Transaction) transaction.SignedTransaction {
	signed, err := tx.Sign(signer, model.Bytes32{})
	require.NoError(t, err)
	return signed
}

func waitAnnounced(t *testing.T, txs *fakeTransactions) transaction.SignedTransaction {
	select {
	case signed := <-txs.announced:
		return signed
	case <-time.After(5 * time.Second):
		require.FailNow(t, "not announced")
	}
	return transaction.SignedTransaction{}
}

type result struct {
	tx  *transaction.Transaction
	err error
}

func wait(t *testing.T, results <-chan result) result {
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		require.FailNow(t, "no result")
	}
	return result{}
}

func TestAnnounce(t *testing.T) {
	transfer := sign(t, transaction.NewTransfer(model.TestNet, 1, bob, nil,
		model.EmptyMessage(), 0))
	topic := func(channel listener.Channel) string {
		return string(channel) + "/" + signer.PublicAccount.Address.Plain()
	}

	t.Run("confirmed", func(t *testing.T) {
		l, conn := openListener(t)
		txs := &fakeTransactions{announced: make(chan transaction.SignedTransaction, 1)}
		s := NewTransactionService(txs, nil)
		results := make(chan result, 1)
		go func() {
			tx, err := s.Announce(context.Background(), l, transfer)
			results <- result{tx, err}
		}()

		assert.Equal(t, transfer.Hash, waitAnnounced(t, txs).Hash)
		other := sign(t, transaction.NewTransfer(model.TestNet, 2, bob, nil,
			model.EmptyMessage(), 0))
		push(t, conn, topic(listener.ChannelConfirmedAdded), announced(t, other))
		push(t, conn, topic(listener.ChannelConfirmedAdded), announced(t, transfer))

		r := wait(t, results)
		require.NoError(t, r.err)
		hash, err := r.tx.Hash()
		require.NoError(t, err)
		assert.Equal(t, transfer.Hash, hash)
	})

	t.Run("rejected", func(t *testing.T) {
		l, conn := openListener(t)
		txs := &fakeTransactions{announced: make(chan transaction.SignedTransaction, 1)}
		s := NewTransactionService(txs, nil)
		results := make(chan result, 1)
		go func() {
			tx, err := s.Announce(context.Background(), l, transfer)
			results <- result{tx, err}
		}()

		waitAnnounced(t, txs)
		push(t, conn, topic(listener.ChannelStatus), map[string]interface{}{
			"hash":     transfer.Hash,
			"code":     "Failure_Core_Insufficient_Balance",
			"deadline": "1",
		})

		r := wait(t, results)
		var status model.TransactionStatusError
		require.True(t, errors.As(r.err, &status))
		assert.Equal(t, "Failure_Core_Insufficient_Balance", status.Code)
		assert.Nil(t, r.tx)
	})

	t.Run("closed", func(t *testing.T) {
		l, _ := openListener(t)
		txs := &fakeTransactions{announced: make(chan transaction.SignedTransaction, 1)}
		s := NewTransactionService(txs, nil)
		results := make(chan result, 1)
		go func() {
			tx, err := s.Announce(context.Background(), l, transfer)
			results <- result{tx, err}
		}()

		waitAnnounced(t, txs)
		require.NoError(t, l.Close())
		assert.ErrorIs(t, wait(t, results).err, ErrListenerClosed)
	})

	t.Run("not open", func(t *testing.T) {
		l := listener.New(listener.Config{URL: "ws://localhost:1/ws"})
		s := NewTransactionService(&fakeTransactions{}, nil)
		_, err := s.Announce(context.Background(), l, transfer)
		assert.ErrorIs(t, err, listener.ErrNotOpen)
	})
}

func TestAnnounceHashLockAggregateBonded(t *testing.T) {
	inner := transaction.NewTransfer(model.TestNet, 1, bob, nil,
		model.EmptyMessage(), 0).ToAggregate(signer.PublicAccount)
	aggregate := sign(t, transaction.NewAggregateBonded(model.TestNet, 1,
		[]*transaction.Transaction{inner}, nil, 0))
	lock, err := transaction.NewHashLock(model.TestNet, 1,
		model.NewToken(currencyID, 10000000), 480, aggregate, 0)
	require.NoError(t, err)
	hashLock := sign(t, lock)

	l, conn := openListener(t)
	txs := &fakeTransactions{announced: make(chan transaction.SignedTransaction, 1)}
	s := NewTransactionService(txs, nil)
	results := make(chan result, 1)
	go func() {
		tx, err := s.AnnounceHashLockAggregateBonded(context.Background(), l,
			hashLock, aggregate)
		results <- result{tx, err}
	}()

	plain := signer.PublicAccount.Address.Plain()
	assert.Equal(t, hashLock.Hash, waitAnnounced(t, txs).Hash)
	push(t, conn, "confirmedAdded/"+plain, announced(t, hashLock))
	assert.Equal(t, aggregate.Hash, waitAnnounced(t, txs).Hash)
	push(t, conn, "partialAdded/"+plain, announced(t, aggregate))

	r := wait(t, results)
	require.NoError(t, r.err)
	assert.Equal(t, transaction.TypeAggregateBonded, r.tx.Type())
}

func TestResolveAliases(t *testing.T) {
	hash := model.Bytes32{0x01}
	aliased := transaction.NewTransfer(model.TestNet, 1, bxr,
		[]model.Token{model.NewToken(bxr, 10)}, model.EmptyMessage(), 0)
	aliased.Info = &transaction.Info{Height: 10, Index: 0, Hash: &hash}
	plain := transaction.NewTransfer(model.TestNet, 1, bob, nil,
		model.EmptyMessage(), 0)
	plain.Info = &transaction.Info{Height: 20, Index: 3, Hash: &hash}

	txs := &fakeTransactions{txs: []*transaction.Transaction{aliased, plain}}
	receipts := &fakeReceipts{
		addresses: []model.AddressResolutionStatement{{
			Height:     10,
			Unresolved: bxr,
			Entries: []model.AddressResolutionEntry{{
				Source:   model.ReceiptSource{PrimaryID: 1},
				Resolved: alice,
			}},
		}},
		tokens: []model.TokenResolutionStatement{{
			Height:     10,
			Unresolved: bxr,
			Entries: []model.TokenResolutionEntry{{
				Source:   model.ReceiptSource{PrimaryID: 1},
				Resolved: currencyID,
			}},
		}},
	}
	s := NewTransactionService(txs, receipts)

	resolved, err := s.ResolveAliases(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	body, ok := resolved[0].Body.(*transaction.Transfer)
	require.True(t, ok)
	assert.Equal(t, alice, body.Recipient)
	assert.Equal(t, []model.Token{model.NewToken(currencyID, 10)}, body.Tokens)
	assert.False(t, resolved[0].ShouldResolve())
	assert.Same(t, plain, resolved[1])
	assert.Equal(t, []model.UInt64{10, 10}, receipts.heights)

	// The original is left untouched.
	assert.True(t, aliased.ShouldResolve())
}

func TestResolveAliasesMissingStatement(t *testing.T) {
	hash := model.Bytes32{0x01}
	aliased := transaction.NewTransfer(model.TestNet, 1, bxr, nil,
		model.EmptyMessage(), 0)
	aliased.Info = &transaction.Info{Height: 10, Hash: &hash}
	s := NewTransactionService(
		&fakeTransactions{txs: []*transaction.Transaction{aliased}},
		&fakeReceipts{})

	_, err := s.ResolveAliases(context.Background(), []string{"1"})
	assert.Error(t, err)
}

func TestResolveAliasesManyHeights(t *testing.T) {
	const n = 200
	hash := model.Bytes32{0x01}
	txs := make([]*transaction.Transaction, n)
	receipts := &fakeReceipts{}
	for i := range txs {
		height := model.UInt64(i + 1)
		txs[i] = transaction.NewTransfer(model.TestNet, 1, bxr, nil,
			model.EmptyMessage(), 0)
		txs[i].Info = &transaction.Info{Height: height, Hash: &hash}
		receipts.addresses = append(receipts.addresses,
			model.AddressResolutionStatement{
				Height:     height,
				Unresolved: bxr,
				Entries: []model.AddressResolutionEntry{{
					Source:   model.ReceiptSource{PrimaryID: 1},
					Resolved: alice,
				}},
			})
	}
	s := NewTransactionService(&fakeTransactions{txs: txs}, receipts)

	resolved, err := s.ResolveAliases(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, resolved, n)
	for _, tx := range resolved {
		body := tx.Body.(*transaction.Transfer)
		assert.Equal(t, alice, body.Recipient)
	}
	assert.Len(t, receipts.heights, 2*n)

	// A transaction without position fails before any statement is loaded.
	receipts.heights = nil
	unknown := transaction.NewTransfer(model.TestNet, 1, bxr, nil,
		model.EmptyMessage(), 0)
	s = NewTransactionService(&fakeTransactions{
		txs: append(txs[:10:10], unknown)}, receipts)
	_, err = s.ResolveAliases(context.Background(), nil)
	assert.ErrorIs(t, err, transaction.ErrNoTransactionInfo)
	assert.Empty(t, receipts.heights)
}
