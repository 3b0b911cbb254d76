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
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bitxorcorp/bitxor-sdk-go/internal/catbuffer"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
)

// Transfer sends tokens and an optional message to a recipient.
type Transfer struct {
	Recipient model.UnresolvedAddress
	Tokens    []model.Token
	Message   model.Message
}

// NewTransfer returns an unsigned transfer transaction.
func NewTransfer(network model.NetworkType, deadline model.Deadline,
	recipient model.UnresolvedAddress, tokens []model.Token,
	message model.Message, maxFee model.UInt64) *Transaction {
	return New(network, deadline, maxFee, &Transfer{
		Recipient: recipient,
		Tokens:    tokens,
		Message:   message,
	})
}

func (*Transfer) Type() Type { return TypeTransfer }

func (b *Transfer) writePayload(w *catbuffer.Writer, network model.NetworkType) error {
	if err := writeAddress(w, b.Recipient, network); err != nil {
		return err
	}
	message := b.Message.Bytes()
	if len(message) > 0xFFFF {
		return fmt.Errorf("message too long")
	}
	if len(b.Tokens) > 0xFF {
		return fmt.Errorf("too many tokens")
	}
	w.Uint16(uint16(len(message)))
	w.Uint8(uint8(len(b.Tokens)))
	w.Uint32(0)
	w.Uint8(0)

	tokens := append([]model.Token(nil), b.Tokens...)
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].ID != nil && tokens[j].ID != nil &&
			tokens[i].ID.Value() < tokens[j].ID.Value()
	})
	for _, token := range tokens {
		if err := writeToken(w, token); err != nil {
			return err
		}
	}
	w.Bytes(message)
	return nil
}

func (b *Transfer) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	var err error
	if b.Recipient, err = readAddress(r); err != nil {
		return err
	}
	messageSize := int(r.Uint16())
	tokensCount := int(r.Uint8())
	r.Skip(4 + 1)
	b.Tokens = make([]model.Token, tokensCount)
	for i := range b.Tokens {
		b.Tokens[i] = readToken(r)
	}
	b.Message = model.NewMessageFromBytes(r.Bytes(messageSize))
	return r.Err()
}

type transferDTO struct {
	RecipientAddress json.RawMessage `json:"recipientAddress"`
	Tokens           json.RawMessage `json:"tokens,omitempty"`
	Message          *model.Bytes    `json:"message,omitempty"`
}

func (b *Transfer) readDTO(data []byte, _ *Transaction) error {
	var dto transferDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	var err error
	if b.Recipient, err = ExtractRecipient(dto.RecipientAddress); err != nil {
		return err
	}
	if b.Tokens, err = ExtractTokens(dto.Tokens); err != nil {
		return err
	}
	b.Message = model.EmptyMessage()
	if dto.Message != nil {
		b.Message = model.NewMessageFromBytes(*dto.Message)
	}
	return nil
}

func (b *Transfer) dto(network model.NetworkType) (interface{}, error) {
	recipient, err := addressDTO(b.Recipient, network)
	if err != nil {
		return nil, err
	}
	tokens, err := tokensDTO(b.Tokens)
	if err != nil {
		return nil, err
	}
	out := struct {
		RecipientAddress string      `json:"recipientAddress"`
		Tokens           []tokenDTO  `json:"tokens"`
		Message          model.Bytes `json:"message,omitempty"`
	}{recipient, tokens, b.Message.Bytes()}
	return out, nil
}

func (b *Transfer) resolve(st model.Statement, pos position) (Body, error) {
	recipient, err := pos.resolveAddress(st, b.Recipient)
	if err != nil {
		return nil, err
	}
	tokens := make([]model.Token, len(b.Tokens))
	for i, token := range b.Tokens {
		if tokens[i], err = pos.resolveToken(st, token); err != nil {
			return nil, err
		}
	}
	return &Transfer{Recipient: recipient, Tokens: tokens, Message: b.Message}, nil
}

func (b *Transfer) shouldResolve() bool {
	if anyAddressAlias(b.Recipient) {
		return true
	}
	for _, token := range b.Tokens {
		if anyTokenAlias(token.ID) {
			return true
		}
	}
	return false
}
