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

// TokenAddressRestriction sets the restriction value of an address for a
// token.
type TokenAddressRestriction struct {
	TokenID                  model.UnresolvedTokenID
	RestrictionKey           model.UInt64
	PreviousRestrictionValue model.UInt64
	NewRestrictionValue      model.UInt64
	TargetAddress            model.UnresolvedAddress
}

func (*TokenAddressRestriction) Type() Type { return TypeTokenAddressRestriction }

func (b *TokenAddressRestriction) writePayload(w *catbuffer.Writer, network model.NetworkType) error {
	if err := writeTokenID(w, b.TokenID); err != nil {
		return err
	}
	w.Uint64(uint64(b.RestrictionKey))
	w.Uint64(uint64(b.PreviousRestrictionValue))
	w.Uint64(uint64(b.NewRestrictionValue))
	return writeAddress(w, b.TargetAddress, network)
}

func (b *TokenAddressRestriction) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	b.TokenID = readTokenID(r)
	b.RestrictionKey = model.UInt64(r.Uint64())
	b.PreviousRestrictionValue = model.UInt64(r.Uint64())
	b.NewRestrictionValue = model.UInt64(r.Uint64())
	var err error
	b.TargetAddress, err = readAddress(r)
	return err
}

type tokenAddressRestrictionDTO struct {
	TokenID                  string          `json:"tokenId"`
	RestrictionKey           hexUInt64       `json:"restrictionKey"`
	PreviousRestrictionValue model.UInt64    `json:"previousRestrictionValue"`
	NewRestrictionValue      model.UInt64    `json:"newRestrictionValue"`
	TargetAddress            json.RawMessage `json:"targetAddress"`
}

func (b *TokenAddressRestriction) readDTO(data []byte, _ *Transaction) error {
	var dto tokenAddressRestrictionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	id, err := extractTokenID(dto.TokenID)
	if err != nil {
		return err
	}
	target, err := ExtractRecipient(dto.TargetAddress)
	if err != nil {
		return err
	}
	*b = TokenAddressRestriction{
		TokenID:                  id,
		RestrictionKey:           model.UInt64(dto.RestrictionKey),
		PreviousRestrictionValue: dto.PreviousRestrictionValue,
		NewRestrictionValue:      dto.NewRestrictionValue,
		TargetAddress:            target,
	}
	return nil
}

func (b *TokenAddressRestriction) dto(network model.NetworkType) (interface{}, error) {
	id, err := tokenIDDTO(b.TokenID)
	if err != nil {
		return nil, err
	}
	target, err := addressDTO(b.TargetAddress, network)
	if err != nil {
		return nil, err
	}
	return struct {
		TokenID                  string       `json:"tokenId"`
		RestrictionKey           hexUInt64    `json:"restrictionKey"`
		PreviousRestrictionValue model.UInt64 `json:"previousRestrictionValue"`
		NewRestrictionValue      model.UInt64 `json:"newRestrictionValue"`
		TargetAddress            string       `json:"targetAddress"`
	}{id, hexUInt64(b.RestrictionKey), b.PreviousRestrictionValue,
		b.NewRestrictionValue, target}, nil
}

func (b *TokenAddressRestriction) resolve(st model.Statement, pos position) (Body, error) {
	id, err := pos.resolveTokenID(st, b.TokenID)
	if err != nil {
		return nil, err
	}
	target, err := pos.resolveAddress(st, b.TargetAddress)
	if err != nil {
		return nil, err
	}
	c := *b
	c.TokenID, c.TargetAddress = id, target
	return &c, nil
}

func (b *TokenAddressRestriction) shouldResolve() bool {
	return anyTokenAlias(b.TokenID) || anyAddressAlias(b.TargetAddress)
}

// TokenGlobalRestriction sets the rule addresses must satisfy to transact a
// token. The rule may compare against the restriction values of a reference
// token; a zero ReferenceTokenID refers to the token itself.
type TokenGlobalRestriction struct {
	TokenID                  model.UnresolvedTokenID
	ReferenceTokenID         model.UnresolvedTokenID
	RestrictionKey           model.UInt64
	PreviousRestrictionValue model.UInt64
	NewRestrictionValue      model.UInt64
	PreviousRestrictionType  model.TokenRestrictionType
	NewRestrictionType       model.TokenRestrictionType
}

func (*TokenGlobalRestriction) Type() Type { return TypeTokenGlobalRestriction }

func (b *TokenGlobalRestriction) reference() model.UnresolvedTokenID {
	if b.ReferenceTokenID == nil {
		return model.TokenID(0)
	}
	return b.ReferenceTokenID
}

func (b *TokenGlobalRestriction) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	if err := writeTokenID(w, b.TokenID); err != nil {
		return err
	}
	if err := writeTokenID(w, b.reference()); err != nil {
		return err
	}
	w.Uint64(uint64(b.RestrictionKey))
	w.Uint64(uint64(b.PreviousRestrictionValue))
	w.Uint64(uint64(b.NewRestrictionValue))
	w.Uint8(uint8(b.PreviousRestrictionType))
	w.Uint8(uint8(b.NewRestrictionType))
	return nil
}

func (b *TokenGlobalRestriction) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	b.TokenID = readTokenID(r)
	b.ReferenceTokenID = readTokenID(r)
	b.RestrictionKey = model.UInt64(r.Uint64())
	b.PreviousRestrictionValue = model.UInt64(r.Uint64())
	b.NewRestrictionValue = model.UInt64(r.Uint64())
	b.PreviousRestrictionType = model.TokenRestrictionType(r.Uint8())
	b.NewRestrictionType = model.TokenRestrictionType(r.Uint8())
	return r.Err()
}

type tokenGlobalRestrictionDTO struct {
	TokenID                  string                     `json:"tokenId"`
	ReferenceTokenID         string                     `json:"referenceTokenId"`
	RestrictionKey           hexUInt64                  `json:"restrictionKey"`
	PreviousRestrictionValue model.UInt64               `json:"previousRestrictionValue"`
	NewRestrictionValue      model.UInt64               `json:"newRestrictionValue"`
	PreviousRestrictionType  model.TokenRestrictionType `json:"previousRestrictionType"`
	NewRestrictionType       model.TokenRestrictionType `json:"newRestrictionType"`
}

func (b *TokenGlobalRestriction) readDTO(data []byte, _ *Transaction) error {
	var dto tokenGlobalRestrictionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	id, err := extractTokenID(dto.TokenID)
	if err != nil {
		return err
	}
	var ref model.UnresolvedTokenID = model.TokenID(0)
	if dto.ReferenceTokenID != "" {
		if ref, err = extractTokenID(dto.ReferenceTokenID); err != nil {
			return err
		}
	}
	*b = TokenGlobalRestriction{
		TokenID:                  id,
		ReferenceTokenID:         ref,
		RestrictionKey:           model.UInt64(dto.RestrictionKey),
		PreviousRestrictionValue: dto.PreviousRestrictionValue,
		NewRestrictionValue:      dto.NewRestrictionValue,
		PreviousRestrictionType:  dto.PreviousRestrictionType,
		NewRestrictionType:       dto.NewRestrictionType,
	}
	return nil
}

func (b *TokenGlobalRestriction) dto(model.NetworkType) (interface{}, error) {
	id, err := tokenIDDTO(b.TokenID)
	if err != nil {
		return nil, err
	}
	return tokenGlobalRestrictionDTO{
		TokenID:                  id,
		ReferenceTokenID:         b.reference().Hex(),
		RestrictionKey:           hexUInt64(b.RestrictionKey),
		PreviousRestrictionValue: b.PreviousRestrictionValue,
		NewRestrictionValue:      b.NewRestrictionValue,
		PreviousRestrictionType:  b.PreviousRestrictionType,
		NewRestrictionType:       b.NewRestrictionType,
	}, nil
}

func (b *TokenGlobalRestriction) resolve(st model.Statement, pos position) (Body, error) {
	id, err := pos.resolveTokenID(st, b.TokenID)
	if err != nil {
		return nil, err
	}
	ref, err := pos.resolveTokenID(st, b.reference())
	if err != nil {
		return nil, err
	}
	c := *b
	c.TokenID, c.ReferenceTokenID = id, ref
	return &c, nil
}

func (b *TokenGlobalRestriction) shouldResolve() bool {
	return anyTokenAlias(b.TokenID, b.ReferenceTokenID)
}
