// MIT License
//
// Copyright 2026 Bitxor Corp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
// IN THE SOFTWARE.

package listener

import (
	"context"
	"fmt"
	"sync"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
)

// subscriber is the untyped side of a Subscription, owned by the listener.
type subscriber struct {
	channel Channel
	// addresses holds the plain addresses to accept, nil accepts any.
	addresses map[string]bool
	hash      *model.Bytes32
	topics    []string

	// distinct drops an event about the same hash as the previous one.
	distinct bool
	last     *model.Bytes32

	mu       sync.Mutex
	closed   bool
	done     chan struct{}
	doneOnce sync.Once
	push     func(v interface{}, done <-chan struct{})
	closeC   func()
}

// match is only called by the read goroutine.
func (s *subscriber) match(ev event) bool {
	if ev.channel != s.channel {
		return false
	}
	if s.addresses != nil && !s.addresses[ev.param] {
		return false
	}
	if s.hash != nil && (ev.hash == nil || *ev.hash != *s.hash) {
		return false
	}
	if s.distinct && ev.hash != nil {
		if s.last != nil && *s.last == *ev.hash {
			return false
		}
		h := *ev.hash
		s.last = &h
	}
	return true
}

func (s *subscriber) deliver(v interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.push(v, s.done)
}

func (s *subscriber) close() {
	s.doneOnce.Do(func() { close(s.done) })
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		s.closeC()
	}
}

// Subscription delivers the notifications of one subscribe call on C. C is
// closed by Unsubscribe and when the connection ends. C is buffered, but
// every subscription shares the read goroutine of the listener: once C is
// full, no other subscription receives anything until C is drained or
// Unsubscribe is called.
type Subscription[T any] struct {
	C <-chan T
	// Addresses lists the plain addresses subscribed to, cosignatories
	// included.
	Addresses []string

	l   *Listener
	sub *subscriber
}

// Unsubscribe stops the subscription. Topics not used by other
// subscriptions are unsubscribed from the gateway.
func (s *Subscription[T]) Unsubscribe() {
	s.l.unregister(s.sub)
	s.sub.close()
}

func newSubscription[T any](l *Listener, sub *subscriber) *Subscription[T] {
	c := make(chan T, 16)
	sub.done = make(chan struct{})
	sub.push = func(v interface{}, done <-chan struct{}) {
		select {
		case c <- v.(T):
		case <-done:
		}
	}
	sub.closeC = func() { close(c) }
	s := &Subscription[T]{C: c, l: l, sub: sub}
	for adr := range sub.addresses {
		s.Addresses = append(s.Addresses, adr)
	}
	return s
}

func subscribe[T any](l *Listener, sub *subscriber) (*Subscription[T], error) {
	s := newSubscription[T](l, sub)
	if err := l.register(sub); err != nil {
		return nil, err
	}
	return s, nil
}

// addressSubscriber subscribes channel for adr, and for the cosignatories
// and multisig accounts of adr when multisig is set. A failed multisig
// lookup falls back to adr alone.
func (l *Listener) addressSubscriber(ctx context.Context, channel Channel,
	unresolved model.UnresolvedAddress, hash *model.Bytes32,
	multisig bool) (*subscriber, error) {
	if !l.IsOpen() {
		return nil, ErrNotOpen
	}
	adr, err := l.resolve(ctx, unresolved)
	if err != nil {
		return nil, err
	}
	addresses := []model.Address{adr}
	if multisig {
		addresses = l.withMultisig(ctx, adr)
	}
	sub := &subscriber{
		channel:   channel,
		addresses: make(map[string]bool, len(addresses)),
		hash:      hash,
	}
	for _, a := range addresses {
		plain := a.Plain()
		if sub.addresses[plain] {
			continue
		}
		sub.addresses[plain] = true
		sub.topics = append(sub.topics, topicOf(channel, &a))
	}
	return sub, nil
}

func (l *Listener) resolve(ctx context.Context,
	unresolved model.UnresolvedAddress) (model.Address, error) {
	switch adr := unresolved.(type) {
	case model.Address:
		return adr, nil
	case model.NamespaceID:
		if l.cfg.Namespaces == nil {
			return model.Address{}, fmt.Errorf(
				"namespace %v: no namespace repository", adr)
		}
		return l.cfg.Namespaces.GetLinkedAddress(ctx, adr)
	}
	return model.Address{}, fmt.Errorf("address %v: not supported", unresolved)
}

func (l *Listener) withMultisig(ctx context.Context, adr model.Address) []model.Address {
	addresses := []model.Address{adr}
	if l.cfg.Multisig == nil {
		logger.Warnf("multisig %v: no multisig repository, subscribing the address only", adr)
		return addresses
	}
	graph, err := l.cfg.Multisig.GetMultisigAccountGraphInfo(ctx, adr)
	if err != nil {
		logger.Warnf("multisig %v: %v, subscribing the address only", adr, err)
		return addresses
	}
	for _, entry := range graph.Entries[0] {
		addresses = append(addresses, entry.CosignatoryAddresses...)
		addresses = append(addresses, entry.MultisigAddresses...)
	}
	return addresses
}

// NewBlock notifies every harvested block.
func (l *Listener) NewBlock() (*Subscription[model.NewBlock], error) {
	return subscribe[model.NewBlock](l, &subscriber{
		channel: ChannelBlock,
		topics:  []string{topicOf(ChannelBlock, nil)},
	})
}

// FinalizedBlock notifies every finalized block.
func (l *Listener) FinalizedBlock() (*Subscription[model.FinalizedBlock], error) {
	return subscribe[model.FinalizedBlock](l, &subscriber{
		channel: ChannelFinalizedBlock,
		topics:  []string{topicOf(ChannelFinalizedBlock, nil)},
	})
}

func (l *Listener) transactions(ctx context.Context, channel Channel,
	adr model.UnresolvedAddress, hash *model.Bytes32,
	multisig bool) (*Subscription[*transaction.Transaction], error) {
	sub, err := l.addressSubscriber(ctx, channel, adr, hash, multisig)
	if err != nil {
		return nil, err
	}
	sub.distinct = true
	return subscribe[*transaction.Transaction](l, sub)
}

// Confirmed notifies transactions of adr as they are confirmed. A non nil
// hash only notifies that transaction.
func (l *Listener) Confirmed(ctx context.Context, adr model.UnresolvedAddress,
	hash *model.Bytes32, multisig bool) (*Subscription[*transaction.Transaction], error) {
	return l.transactions(ctx, ChannelConfirmedAdded, adr, hash, multisig)
}

// UnconfirmedAdded notifies transactions of adr as they enter the
// unconfirmed cache.
func (l *Listener) UnconfirmedAdded(ctx context.Context, adr model.UnresolvedAddress,
	hash *model.Bytes32, multisig bool) (*Subscription[*transaction.Transaction], error) {
	return l.transactions(ctx, ChannelUnconfirmedAdded, adr, hash, multisig)
}

// AggregateBondedAdded notifies bonded aggregates of adr waiting for
// cosignatures.
func (l *Listener) AggregateBondedAdded(ctx context.Context, adr model.UnresolvedAddress,
	hash *model.Bytes32, multisig bool) (*Subscription[*transaction.Transaction], error) {
	return l.transactions(ctx, ChannelPartialAdded, adr, hash, multisig)
}

func (l *Listener) removed(ctx context.Context, channel Channel,
	adr model.UnresolvedAddress, hash *model.Bytes32,
	multisig bool) (*Subscription[model.Bytes32], error) {
	sub, err := l.addressSubscriber(ctx, channel, adr, hash, multisig)
	if err != nil {
		return nil, err
	}
	return subscribe[model.Bytes32](l, sub)
}

// UnconfirmedRemoved notifies the hashes of transactions of adr leaving the
// unconfirmed cache.
func (l *Listener) UnconfirmedRemoved(ctx context.Context, adr model.UnresolvedAddress,
	hash *model.Bytes32, multisig bool) (*Subscription[model.Bytes32], error) {
	return l.removed(ctx, ChannelUnconfirmedRemoved, adr, hash, multisig)
}

// AggregateBondedRemoved notifies the hashes of bonded aggregates of adr
// leaving the partial cache.
func (l *Listener) AggregateBondedRemoved(ctx context.Context, adr model.UnresolvedAddress,
	hash *model.Bytes32, multisig bool) (*Subscription[model.Bytes32], error) {
	return l.removed(ctx, ChannelPartialRemoved, adr, hash, multisig)
}

// Status notifies the transactions of adr rejected by the node.
func (l *Listener) Status(ctx context.Context, adr model.UnresolvedAddress,
	hash *model.Bytes32) (*Subscription[model.TransactionStatusError], error) {
	sub, err := l.addressSubscriber(ctx, ChannelStatus, adr, hash, false)
	if err != nil {
		return nil, err
	}
	return subscribe[model.TransactionStatusError](l, sub)
}

// Cosignature notifies cosignatures added to bonded aggregates of adr.
func (l *Listener) Cosignature(ctx context.Context, adr model.UnresolvedAddress,
	multisig bool) (*Subscription[transaction.CosignatureSignedTransaction], error) {
	sub, err := l.addressSubscriber(ctx, ChannelCosignature, adr, nil, multisig)
	if err != nil {
		return nil, err
	}
	return subscribe[transaction.CosignatureSignedTransaction](l, sub)
}
