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

package transaction

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bitxorcorp/bitxor-sdk-go/internal/catbuffer"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
)

// Serialize returns the binary payload of t as a top level transaction.
func (t *Transaction) Serialize() ([]byte, error) { return t.serialize(false) }

// SerializeHex returns the upper case hex encoded payload of t.
func (t *Transaction) SerializeHex() (string, error) {
	payload, err := t.Serialize()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(payload)), nil
}

func (t *Transaction) serialize(embedded bool) ([]byte, error) {
	if t.Body == nil {
		return nil, fmt.Errorf("transaction: missing body")
	}
	h := catbuffer.Header{
		Signature: t.Signature,
		Version:   t.Version,
		Network:   uint8(t.NetworkType),
		Type:      uint16(t.Type()),
		MaxFee:    uint64(t.MaxFee),
		Deadline:  uint64(t.Deadline),
	}
	if t.Signer != nil {
		h.Signer = t.Signer.PublicKey[:]
	}
	w := catbuffer.NewWriter(catbuffer.HeaderSize + 128)
	catbuffer.WriteHeader(w, h, embedded)
	if err := t.Body.writePayload(w, t.NetworkType); err != nil {
		return nil, fmt.Errorf("%v: %w", t.Type(), err)
	}
	data := w.Result()
	catbuffer.PatchSize(data)
	return data, nil
}

// CreateFromPayload decodes a hex encoded payload. Embedded payloads are inner
// transactions of an aggregate, which lack the max fee, the deadline and the
// signature.
func CreateFromPayload(payload string, embedded bool) (*Transaction, error) {
	data, err := hex.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	return CreateFromPayloadBytes(data, embedded)
}

// CreateFromPayloadBytes decodes a binary payload.
func CreateFromPayloadBytes(data []byte, embedded bool) (*Transaction, error) {
	r := catbuffer.NewReader(data)
	t, err := readTransaction(r, embedded, nil)
	if err != nil {
		return nil, err
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%v: %v trailing bytes", t.Type(), r.Remaining())
	}
	return t, nil
}

// readTransaction decodes one transaction from r. Inner transactions inherit
// the max fee, the deadline and the signature of parent.
func readTransaction(r *catbuffer.Reader, embedded bool,
	parent *Transaction) (*Transaction, error) {
	start := r.Offset()
	h, err := catbuffer.ReadHeader(r, embedded)
	if err != nil {
		return nil, err
	}
	body, err := newBody(Type(h.Type), h.Version)
	if err != nil {
		return nil, err
	}
	if embedded && body.Type().IsAggregate() {
		return nil, fmt.Errorf("%v: cannot be embedded", body.Type())
	}

	t := &Transaction{
		NetworkType: model.NetworkType(h.Network),
		Version:     h.Version,
		Deadline:    model.Deadline(h.Deadline),
		MaxFee:      model.UInt64(h.MaxFee),
		Body:        body,
	}
	if !isZero(h.Signature) {
		t.Signature = h.Signature
	}
	if !isZero(h.Signer) {
		signer := model.NewPublicAccount(*model.NewBytes32(h.Signer),
			t.NetworkType)
		t.Signer = &signer
	}
	if parent != nil {
		t.Deadline = parent.Deadline
		t.MaxFee = parent.MaxFee
		t.Signature = parent.Signature
	}

	headerSize := r.Offset() - start
	if int(h.Size) < headerSize {
		return nil, fmt.Errorf("%v: invalid size %v", t.Type(), h.Size)
	}
	bodyData := r.Bytes(int(h.Size) - headerSize)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%v: %w", t.Type(), err)
	}
	br := catbuffer.NewReader(bodyData)
	if err := body.readPayload(br, t); err != nil {
		return nil, fmt.Errorf("%v: %w", t.Type(), err)
	}
	if err := br.Err(); err != nil {
		return nil, fmt.Errorf("%v: %w", t.Type(), err)
	}
	if br.Remaining() != 0 {
		return nil, fmt.Errorf("%v: %v unread body bytes", t.Type(),
			br.Remaining())
	}
	return t, nil
}

func isZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}
