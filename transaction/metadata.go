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

	"github.com/bitxorcorp/bitxor-sdk-go/internal/catbuffer"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
)

func writeMetadataValue(w *catbuffer.Writer, delta int16, value []byte) error {
	if len(value) > 0xFFFF {
		return fmt.Errorf("metadata value too long")
	}
	w.Int16(delta)
	w.Uint16(uint16(len(value)))
	w.Bytes(value)
	return nil
}

func readMetadataValue(r *catbuffer.Reader) (int16, []byte) {
	delta := r.Int16()
	size := int(r.Uint16())
	return delta, r.Bytes(size)
}

type metadataDTO struct {
	TargetAddress     json.RawMessage    `json:"targetAddress"`
	ScopedMetadataKey hexUInt64          `json:"scopedMetadataKey"`
	TargetTokenID     string             `json:"targetTokenId,omitempty"`
	TargetNamespaceID *model.NamespaceID `json:"targetNamespaceId,omitempty"`
	ValueSizeDelta    int16              `json:"valueSizeDelta"`
	ValueSize         uint16             `json:"valueSize"`
	Value             model.Bytes        `json:"value"`
}

type metadataOutDTO struct {
	TargetAddress     string             `json:"targetAddress"`
	ScopedMetadataKey hexUInt64          `json:"scopedMetadataKey"`
	TargetTokenID     string             `json:"targetTokenId,omitempty"`
	TargetNamespaceID *model.NamespaceID `json:"targetNamespaceId,omitempty"`
	ValueSizeDelta    int16              `json:"valueSizeDelta"`
	ValueSize         uint16             `json:"valueSize"`
	Value             model.Bytes        `json:"value"`
}

func newMetadataOutDTO(target model.UnresolvedAddress, network model.NetworkType,
	key model.UInt64, delta int16, value []byte) (metadataOutDTO, error) {
	adr, err := addressDTO(target, network)
	if err != nil {
		return metadataOutDTO{}, err
	}
	return metadataOutDTO{
		TargetAddress:     adr,
		ScopedMetadataKey: hexUInt64(key),
		ValueSizeDelta:    delta,
		ValueSize:         uint16(len(value)),
		Value:             model.Bytes(value),
	}, nil
}

// AccountMetadata attaches a value to an account.
type AccountMetadata struct {
	TargetAddress     model.UnresolvedAddress
	ScopedMetadataKey model.UInt64
	ValueSizeDelta    int16
	Value             []byte
}

func (*AccountMetadata) Type() Type { return TypeAccountMetadata }

func (b *AccountMetadata) writePayload(w *catbuffer.Writer, network model.NetworkType) error {
	if err := writeAddress(w, b.TargetAddress, network); err != nil {
		return err
	}
	w.Uint64(uint64(b.ScopedMetadataKey))
	return writeMetadataValue(w, b.ValueSizeDelta, b.Value)
}

func (b *AccountMetadata) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	var err error
	if b.TargetAddress, err = readAddress(r); err != nil {
		return err
	}
	b.ScopedMetadataKey = model.UInt64(r.Uint64())
	b.ValueSizeDelta, b.Value = readMetadataValue(r)
	return r.Err()
}

func (b *AccountMetadata) readDTO(data []byte, _ *Transaction) error {
	var dto metadataDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	target, err := ExtractRecipient(dto.TargetAddress)
	if err != nil {
		return err
	}
	*b = AccountMetadata{
		TargetAddress:     target,
		ScopedMetadataKey: model.UInt64(dto.ScopedMetadataKey),
		ValueSizeDelta:    dto.ValueSizeDelta,
		Value:             dto.Value,
	}
	return nil
}

func (b *AccountMetadata) dto(network model.NetworkType) (interface{}, error) {
	return newMetadataOutDTO(b.TargetAddress, network,
		b.ScopedMetadataKey, b.ValueSizeDelta, b.Value)
}

func (b *AccountMetadata) resolve(st model.Statement, pos position) (Body, error) {
	target, err := pos.resolveAddress(st, b.TargetAddress)
	if err != nil {
		return nil, err
	}
	c := *b
	c.TargetAddress = target
	return &c, nil
}

func (b *AccountMetadata) shouldResolve() bool { return anyAddressAlias(b.TargetAddress) }

// TokenMetadata attaches a value to a token.
type TokenMetadata struct {
	TargetAddress     model.UnresolvedAddress
	ScopedMetadataKey model.UInt64
	TargetTokenID     model.UnresolvedTokenID
	ValueSizeDelta    int16
	Value             []byte
}

func (*TokenMetadata) Type() Type { return TypeTokenMetadata }

func (b *TokenMetadata) writePayload(w *catbuffer.Writer, network model.NetworkType) error {
	if err := writeAddress(w, b.TargetAddress, network); err != nil {
		return err
	}
	w.Uint64(uint64(b.ScopedMetadataKey))
	if err := writeTokenID(w, b.TargetTokenID); err != nil {
		return err
	}
	return writeMetadataValue(w, b.ValueSizeDelta, b.Value)
}

func (b *TokenMetadata) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	var err error
	if b.TargetAddress, err = readAddress(r); err != nil {
		return err
	}
	b.ScopedMetadataKey = model.UInt64(r.Uint64())
	b.TargetTokenID = readTokenID(r)
	b.ValueSizeDelta, b.Value = readMetadataValue(r)
	return r.Err()
}

func (b *TokenMetadata) readDTO(data []byte, _ *Transaction) error {
	var dto metadataDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	target, err := ExtractRecipient(dto.TargetAddress)
	if err != nil {
		return err
	}
	id, err := extractTokenID(dto.TargetTokenID)
	if err != nil {
		return err
	}
	*b = TokenMetadata{
		TargetAddress:     target,
		ScopedMetadataKey: model.UInt64(dto.ScopedMetadataKey),
		TargetTokenID:     id,
		ValueSizeDelta:    dto.ValueSizeDelta,
		Value:             dto.Value,
	}
	return nil
}

func (b *TokenMetadata) dto(network model.NetworkType) (interface{}, error) {
	dto, err := newMetadataOutDTO(b.TargetAddress, network,
		b.ScopedMetadataKey, b.ValueSizeDelta, b.Value)
	if err != nil {
		return nil, err
	}
	if dto.TargetTokenID, err = tokenIDDTO(b.TargetTokenID); err != nil {
		return nil, err
	}
	return dto, nil
}

func (b *TokenMetadata) resolve(st model.Statement, pos position) (Body, error) {
	target, err := pos.resolveAddress(st, b.TargetAddress)
	if err != nil {
		return nil, err
	}
	id, err := pos.resolveTokenID(st, b.TargetTokenID)
	if err != nil {
		return nil, err
	}
	c := *b
	c.TargetAddress, c.TargetTokenID = target, id
	return &c, nil
}

func (b *TokenMetadata) shouldResolve() bool {
	return anyAddressAlias(b.TargetAddress) || anyTokenAlias(b.TargetTokenID)
}

// NamespaceMetadata attaches a value to a namespace.
type NamespaceMetadata struct {
	TargetAddress     model.UnresolvedAddress
	ScopedMetadataKey model.UInt64
	TargetNamespaceID model.NamespaceID
	ValueSizeDelta    int16
	Value             []byte
}

func (*NamespaceMetadata) Type() Type { return TypeNamespaceMetadata }

func (b *NamespaceMetadata) writePayload(w *catbuffer.Writer, network model.NetworkType) error {
	if err := writeAddress(w, b.TargetAddress, network); err != nil {
		return err
	}
	w.Uint64(uint64(b.ScopedMetadataKey))
	w.Uint64(uint64(b.TargetNamespaceID.ID))
	return writeMetadataValue(w, b.ValueSizeDelta, b.Value)
}

func (b *NamespaceMetadata) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	var err error
	if b.TargetAddress, err = readAddress(r); err != nil {
		return err
	}
	b.ScopedMetadataKey = model.UInt64(r.Uint64())
	b.TargetNamespaceID = model.NamespaceID{ID: model.UInt64(r.Uint64())}
	b.ValueSizeDelta, b.Value = readMetadataValue(r)
	return r.Err()
}

func (b *NamespaceMetadata) readDTO(data []byte, _ *Transaction) error {
	var dto metadataDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	target, err := ExtractRecipient(dto.TargetAddress)
	if err != nil {
		return err
	}
	if dto.TargetNamespaceID == nil {
		return fmt.Errorf("missing targetNamespaceId")
	}
	*b = NamespaceMetadata{
		TargetAddress:     target,
		ScopedMetadataKey: model.UInt64(dto.ScopedMetadataKey),
		TargetNamespaceID: *dto.TargetNamespaceID,
		ValueSizeDelta:    dto.ValueSizeDelta,
		Value:             dto.Value,
	}
	return nil
}

func (b *NamespaceMetadata) dto(network model.NetworkType) (interface{}, error) {
	dto, err := newMetadataOutDTO(b.TargetAddress, network,
		b.ScopedMetadataKey, b.ValueSizeDelta, b.Value)
	if err != nil {
		return nil, err
	}
	id := b.TargetNamespaceID
	dto.TargetNamespaceID = &id
	return dto, nil
}

func (b *NamespaceMetadata) resolve(st model.Statement, pos position) (Body, error) {
	target, err := pos.resolveAddress(st, b.TargetAddress)
	if err != nil {
		return nil, err
	}
	c := *b
	c.TargetAddress = target
	return &c, nil
}

func (b *NamespaceMetadata) shouldResolve() bool { return anyAddressAlias(b.TargetAddress) }
