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

	"github.com/bitxorcorp/bitxor-sdk-go/internal/catbuffer"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
)

// TokenDefinition defines a new token. The id is derived from the nonce and
// the signer address.
type TokenDefinition struct {
	Nonce        model.TokenNonce
	ID           model.TokenID
	Flags        model.TokenFlags
	Divisibility uint8
	// Duration of zero defines a token that never expires.
	Duration model.UInt64
}

// NewTokenDefinition returns an unsigned token definition owned by owner.
func NewTokenDefinition(network model.NetworkType, deadline model.Deadline,
	nonce model.TokenNonce, owner model.Address, flags model.TokenFlags,
	divisibility uint8, duration model.UInt64,
	maxFee model.UInt64) *Transaction {
	return New(network, deadline, maxFee, &TokenDefinition{
		Nonce:        nonce,
		ID:           model.NewTokenIDFromNonce(nonce, owner),
		Flags:        flags,
		Divisibility: divisibility,
		Duration:     duration,
	})
}

func (*TokenDefinition) Type() Type { return TypeTokenDefinition }

func (b *TokenDefinition) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	w.Uint64(uint64(b.ID))
	w.Uint64(uint64(b.Duration))
	w.Uint32(uint32(b.Nonce))
	w.Uint8(uint8(b.Flags))
	w.Uint8(b.Divisibility)
	return nil
}

func (b *TokenDefinition) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	b.ID = model.TokenID(r.Uint64())
	b.Duration = model.UInt64(r.Uint64())
	b.Nonce = model.TokenNonce(r.Uint32())
	b.Flags = model.TokenFlags(r.Uint8())
	b.Divisibility = r.Uint8()
	return r.Err()
}

type tokenDefinitionDTO struct {
	ID           model.TokenID    `json:"id"`
	Duration     model.UInt64     `json:"duration"`
	Nonce        model.TokenNonce `json:"nonce"`
	Flags        model.TokenFlags `json:"flags"`
	Divisibility uint8            `json:"divisibility"`
}

func (b *TokenDefinition) readDTO(data []byte, _ *Transaction) error {
	var dto tokenDefinitionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	*b = TokenDefinition{
		Nonce:        dto.Nonce,
		ID:           dto.ID,
		Flags:        dto.Flags,
		Divisibility: dto.Divisibility,
		Duration:     dto.Duration,
	}
	return nil
}

func (b *TokenDefinition) dto(model.NetworkType) (interface{}, error) {
	return tokenDefinitionDTO{b.ID, b.Duration, b.Nonce, b.Flags, b.Divisibility}, nil
}

func (b *TokenDefinition) resolve(model.Statement, position) (Body, error) { return b, nil }

func (*TokenDefinition) shouldResolve() bool { return false }

// TokenSupplyChange increases or decreases the supply of a token.
type TokenSupplyChange struct {
	TokenID model.UnresolvedTokenID
	Action  model.TokenSupplyChangeAction
	Delta   model.UInt64
}

func (*TokenSupplyChange) Type() Type { return TypeTokenSupplyChange }

func (b *TokenSupplyChange) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	if err := writeTokenID(w, b.TokenID); err != nil {
		return err
	}
	w.Uint64(uint64(b.Delta))
	w.Uint8(uint8(b.Action))
	return nil
}

func (b *TokenSupplyChange) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	b.TokenID = readTokenID(r)
	b.Delta = model.UInt64(r.Uint64())
	b.Action = model.TokenSupplyChangeAction(r.Uint8())
	return r.Err()
}

type tokenSupplyChangeDTO struct {
	TokenID string                        `json:"tokenId"`
	Delta   model.UInt64                  `json:"delta"`
	Action  model.TokenSupplyChangeAction `json:"action"`
}

func (b *TokenSupplyChange) readDTO(data []byte, _ *Transaction) error {
	var dto tokenSupplyChangeDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	id, err := extractTokenID(dto.TokenID)
	if err != nil {
		return err
	}
	*b = TokenSupplyChange{TokenID: id, Action: dto.Action, Delta: dto.Delta}
	return nil
}

func (b *TokenSupplyChange) dto(model.NetworkType) (interface{}, error) {
	id, err := tokenIDDTO(b.TokenID)
	if err != nil {
		return nil, err
	}
	return tokenSupplyChangeDTO{id, b.Delta, b.Action}, nil
}

func (b *TokenSupplyChange) resolve(st model.Statement, pos position) (Body, error) {
	id, err := pos.resolveTokenID(st, b.TokenID)
	if err != nil {
		return nil, err
	}
	return &TokenSupplyChange{TokenID: id, Action: b.Action, Delta: b.Delta}, nil
}

func (b *TokenSupplyChange) shouldResolve() bool { return anyTokenAlias(b.TokenID) }

// TokenSupplyRevocation takes revokable tokens back from an account.
type TokenSupplyRevocation struct {
	Source model.UnresolvedAddress
	Token  model.Token
}

func (*TokenSupplyRevocation) Type() Type { return TypeTokenSupplyRevocation }

func (b *TokenSupplyRevocation) writePayload(w *catbuffer.Writer, network model.NetworkType) error {
	if err := writeAddress(w, b.Source, network); err != nil {
		return err
	}
	return writeToken(w, b.Token)
}

func (b *TokenSupplyRevocation) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	var err error
	if b.Source, err = readAddress(r); err != nil {
		return err
	}
	b.Token = readToken(r)
	return r.Err()
}

type tokenSupplyRevocationDTO struct {
	SourceAddress json.RawMessage `json:"sourceAddress"`
	TokenID       string          `json:"tokenId"`
	Amount        model.UInt64    `json:"amount"`
}

func (b *TokenSupplyRevocation) readDTO(data []byte, _ *Transaction) error {
	var dto tokenSupplyRevocationDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	source, err := ExtractRecipient(dto.SourceAddress)
	if err != nil {
		return err
	}
	id, err := extractTokenID(dto.TokenID)
	if err != nil {
		return err
	}
	*b = TokenSupplyRevocation{Source: source, Token: model.NewToken(id, dto.Amount)}
	return nil
}

func (b *TokenSupplyRevocation) dto(network model.NetworkType) (interface{}, error) {
	source, err := addressDTO(b.Source, network)
	if err != nil {
		return nil, err
	}
	id, err := tokenIDDTO(b.Token.ID)
	if err != nil {
		return nil, err
	}
	return struct {
		SourceAddress string       `json:"sourceAddress"`
		TokenID       string       `json:"tokenId"`
		Amount        model.UInt64 `json:"amount"`
	}{source, id, b.Token.Amount}, nil
}

func (b *TokenSupplyRevocation) resolve(st model.Statement, pos position) (Body, error) {
	source, err := pos.resolveAddress(st, b.Source)
	if err != nil {
		return nil, err
	}
	token, err := pos.resolveToken(st, b.Token)
	if err != nil {
		return nil, err
	}
	return &TokenSupplyRevocation{Source: source, Token: token}, nil
}

func (b *TokenSupplyRevocation) shouldResolve() bool {
	return anyAddressAlias(b.Source) || anyTokenAlias(b.Token.ID)
}
