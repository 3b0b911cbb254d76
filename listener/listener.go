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

// Package listener receives push notifications from the websocket endpoint
// of a Bitxor REST gateway.
//
// A Listener holds one connection. Open waits for the session uid sent by
// the gateway, after which subscriptions register topics such as
// "confirmedAdded/<address>". Every message is dispatched, in arrival order,
// to the subscriptions whose channel, addresses and hash match. There is no
// reconnect: once the connection drops every subscription is closed and Err
// reports why.
package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bitxorcorp/bitxor-sdk-go/log"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/gorilla/websocket"
)

var logger = log.New("listener")

// ErrNotOpen is returned by subscriptions made before Open or after Close.
var ErrNotOpen = errors.New("listener is not open")

// State of the connection.
type State int32

const (
	Closed State = iota
	Connecting
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Connecting:
		return "connecting"
	case Open:
		return "open"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// MultisigGraphFetcher looks up the multisig graph of an address.
type MultisigGraphFetcher interface {
	GetMultisigAccountGraphInfo(ctx context.Context,
		adr model.Address) (model.MultisigAccountGraphInfo, error)
}

// LinkedAddressFetcher resolves namespace aliases of addresses.
type LinkedAddressFetcher interface {
	GetLinkedAddress(ctx context.Context, id model.NamespaceID) (model.Address, error)
}

type Config struct {
	// URL of the websocket endpoint, e.g. ws://localhost:3000/ws.
	URL string
	// Dialer defaults to websocket.DefaultDialer.
	Dialer *websocket.Dialer

	// Multisig is required by subscriptions that include cosignatories.
	Multisig MultisigGraphFetcher
	// Namespaces is required by subscriptions to namespace aliases.
	Namespaces LinkedAddressFetcher

	// OnClose is called when the gateway closes the connection or sends a
	// message that cannot be handled. The error is also reported by Err.
	OnClose func(error)
}

// Listener is safe for concurrent use.
type Listener struct {
	cfg Config

	mu          sync.Mutex
	state       State
	conn        *websocket.Conn
	uid         string
	intentional bool
	err         error
	subs        map[*subscriber]struct{}
	topics      map[string]int

	writeMu sync.Mutex
	done    chan struct{}
}

func New(cfg Config) *Listener {
	if cfg.Dialer == nil {
		cfg.Dialer = websocket.DefaultDialer
	}
	return &Listener{cfg: cfg}
}

// State returns the current state of the connection.
func (l *Listener) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Listener) IsOpen() bool { return l.State() == Open }

// UID returns the session id sent by the gateway, or "" before Open.
func (l *Listener) UID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.uid
}

// Err returns the reason the connection dropped, or nil.
func (l *Listener) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Done is closed when the connection of the current session ends.
func (l *Listener) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return l.done
}

type uidMessage struct {
	UID string `json:"uid"`
}

// Open connects and waits for the session uid. Opening an open listener is
// a no-op.
func (l *Listener) Open(ctx context.Context) error {
	l.mu.Lock()
	switch l.state {
	case Open:
		l.mu.Unlock()
		return nil
	case Connecting:
		l.mu.Unlock()
		return fmt.Errorf("listener is connecting")
	}
	l.state = Connecting
	l.mu.Unlock()

	conn, uid, err := l.handshake(ctx)
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = Closed
		return err
	}
	l.state = Open
	l.conn = conn
	l.uid = uid
	l.err = nil
	l.intentional = false
	l.subs = make(map[*subscriber]struct{})
	l.topics = make(map[string]int)
	l.done = make(chan struct{})
	logger.Debugf("open %v uid %v", l.cfg.URL, uid)
	go l.read(conn, l.done)
	return nil
}

func (l *Listener) handshake(ctx context.Context) (*websocket.Conn, string, error) {
	conn, _, err := l.cfg.Dialer.DialContext(ctx, l.cfg.URL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("dial %v: %w", l.cfg.URL, err)
	}
	// Unblock the read if ctx ends first.
	stop := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	var msg uidMessage
	err = conn.ReadJSON(&msg)
	close(stop)
	<-stopped
	// The watcher may have closed conn after the uid arrived.
	if ctx.Err() != nil {
		conn.Close()
		return nil, "", ctx.Err()
	}
	if err != nil {
		conn.Close()
		return nil, "", fmt.Errorf("handshake: %w", err)
	}
	if msg.UID == "" {
		conn.Close()
		return nil, "", fmt.Errorf("handshake: missing uid")
	}
	return conn, msg.UID, nil
}

// Close closes the connection and every subscription. Closing a closed
// listener is a no-op.
func (l *Listener) Close() error {
	l.mu.Lock()
	if l.state != Open {
		l.mu.Unlock()
		return nil
	}
	l.intentional = true
	l.state = Closed
	conn := l.conn
	subs := l.takeSubscribers()
	l.mu.Unlock()

	for _, s := range subs {
		s.close()
	}
	l.writeMu.Lock()
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	l.writeMu.Unlock()
	return conn.Close()
}

// takeSubscribers empties the subscriber set. l.mu must be held.
func (l *Listener) takeSubscribers() []*subscriber {
	subs := make([]*subscriber, 0, len(l.subs))
	for s := range l.subs {
		subs = append(subs, s)
	}
	l.subs = make(map[*subscriber]struct{})
	l.topics = make(map[string]int)
	return subs
}

type message struct {
	Topic string          `json:"topic"`
	Data  json.RawMessage `json:"data"`
}

func (l *Listener) read(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			l.terminate(conn, fmt.Errorf("connection closed: %w", err))
			return
		}
		var msg message
		if err := json.Unmarshal(data, &msg); err != nil {
			l.terminate(conn, fmt.Errorf("message %s: %w", data, err))
			return
		}
		if msg.Topic == "" {
			// Repeated uid messages carry no notification.
			continue
		}
		ev, err := parseEvent(msg)
		if err != nil {
			l.terminate(conn, err)
			return
		}
		l.dispatch(ev)
	}
}

// terminate ends the session unless it was closed on purpose.
func (l *Listener) terminate(conn *websocket.Conn, err error) {
	l.mu.Lock()
	if l.conn != conn || l.intentional {
		l.mu.Unlock()
		return
	}
	l.state = Closed
	l.err = err
	subs := l.takeSubscribers()
	onClose := l.cfg.OnClose
	l.mu.Unlock()

	conn.Close()
	for _, s := range subs {
		s.close()
	}
	if onClose != nil {
		onClose(err)
		return
	}
	logger.Errorf("%v: %v", l.cfg.URL, err)
}

func (l *Listener) dispatch(ev event) {
	l.mu.Lock()
	subs := make([]*subscriber, 0, len(l.subs))
	for s := range l.subs {
		subs = append(subs, s)
	}
	l.mu.Unlock()
	for _, s := range subs {
		if s.match(ev) {
			s.deliver(ev.value)
		}
	}
}

type subscribeFrame struct {
	UID         string `json:"uid"`
	Subscribe   string `json:"subscribe,omitempty"`
	Unsubscribe string `json:"unsubscribe,omitempty"`
}

func (l *Listener) send(frame subscribeFrame) error {
	l.mu.Lock()
	conn := l.conn
	if l.state != Open {
		l.mu.Unlock()
		return ErrNotOpen
	}
	frame.UID = l.uid
	l.mu.Unlock()

	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	return conn.WriteJSON(frame)
}

// register adds s and subscribes the topics no other subscriber uses yet.
func (l *Listener) register(s *subscriber) error {
	l.mu.Lock()
	if l.state != Open {
		l.mu.Unlock()
		return ErrNotOpen
	}
	l.subs[s] = struct{}{}
	var fresh []string
	for _, topic := range s.topics {
		if l.topics[topic] == 0 {
			fresh = append(fresh, topic)
		}
		l.topics[topic]++
	}
	l.mu.Unlock()

	for _, topic := range fresh {
		logger.Debugf("subscribe %v", topic)
		if err := l.send(subscribeFrame{Subscribe: topic}); err != nil {
			l.unregister(s)
			s.close()
			return fmt.Errorf("subscribe %v: %w", topic, err)
		}
	}
	return nil
}

// unregister removes s and unsubscribes the topics no subscriber uses
// anymore.
func (l *Listener) unregister(s *subscriber) {
	l.mu.Lock()
	if _, ok := l.subs[s]; !ok {
		l.mu.Unlock()
		return
	}
	delete(l.subs, s)
	var stale []string
	for _, topic := range s.topics {
		l.topics[topic]--
		if l.topics[topic] <= 0 {
			delete(l.topics, topic)
			stale = append(stale, topic)
		}
	}
	l.mu.Unlock()

	for _, topic := range stale {
		if err := l.send(subscribeFrame{Unsubscribe: topic}); err != nil {
			logger.Debugf("unsubscribe %v: %v", topic, err)
		}
	}
}

func topicOf(channel Channel, adr *model.Address) string {
	if adr == nil {
		return string(channel)
	}
	return string(channel) + "/" + adr.Plain()
}

func splitTopic(topic string) (Channel, string) {
	channel, param, _ := strings.Cut(topic, "/")
	return Channel(channel), param
}
