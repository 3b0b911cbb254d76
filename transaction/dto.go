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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
)

// DTO is the REST envelope of a transaction.
type DTO struct {
	ID          string          `json:"id,omitempty"`
	Meta        json.RawMessage `json:"meta,omitempty"`
	Transaction json.RawMessage `json:"transaction"`
}

type headerDTO struct {
	Signature       *model.Bytes      `json:"signature,omitempty"`
	SignerPublicKey *model.Bytes32    `json:"signerPublicKey,omitempty"`
	Version         uint8             `json:"version"`
	Network         model.NetworkType `json:"network"`
	Type            Type              `json:"type"`
	MaxFee          *model.UInt64     `json:"maxFee,omitempty"`
	Deadline        *model.Deadline   `json:"deadline,omitempty"`
}

type metaDTO struct {
	Height              model.UInt64   `json:"height"`
	Index               uint32         `json:"index"`
	Hash                *model.Bytes32 `json:"hash,omitempty"`
	MerkleComponentHash *model.Bytes32 `json:"merkleComponentHash,omitempty"`
	Timestamp           *model.UInt64  `json:"timestamp,omitempty"`
	FeeMultiplier       *uint32        `json:"feeMultiplier,omitempty"`
	AggregateHash       *model.Bytes32 `json:"aggregateHash,omitempty"`
	AggregateID         string         `json:"aggregateId,omitempty"`
}

type tokenDTO struct {
	ID     string       `json:"id"`
	Amount model.UInt64 `json:"amount"`
}

// CreateFromJSON decodes a transaction from its JSON envelope.
func CreateFromJSON(data []byte) (*Transaction, error) {
	var dto DTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("%T: %w", dto, err)
	}
	return CreateFromDTO(dto)
}

// CreateFromDTO maps a REST transaction DTO. Unknown transaction types fail.
func CreateFromDTO(dto DTO) (*Transaction, error) {
	return createFromDTO(dto, nil)
}

func createFromDTO(dto DTO, parent *Transaction) (*Transaction, error) {
	if len(dto.Transaction) == 0 {
		return nil, fmt.Errorf("transaction DTO: missing transaction")
	}
	var h headerDTO
	if err := json.Unmarshal(dto.Transaction, &h); err != nil {
		return nil, fmt.Errorf("transaction DTO: %w", err)
	}
	body, err := newBody(h.Type, 0)
	if err != nil {
		return nil, err
	}
	if parent != nil && body.Type().IsAggregate() {
		return nil, fmt.Errorf("%v: cannot be embedded", body.Type())
	}

	t := &Transaction{
		NetworkType: h.Network,
		Version:     h.Version,
		Deadline:    model.EmptyDeadline,
		Body:        body,
	}
	if h.Deadline != nil {
		t.Deadline = *h.Deadline
	}
	if h.MaxFee != nil {
		t.MaxFee = *h.MaxFee
	}
	if h.Signature != nil {
		t.Signature = *h.Signature
	}
	if h.SignerPublicKey != nil {
		signer := model.NewPublicAccount(*h.SignerPublicKey, t.NetworkType)
		t.Signer = &signer
	}
	if parent != nil {
		t.Deadline = parent.Deadline
		t.MaxFee = parent.MaxFee
		t.Signature = parent.Signature
	}
	if t.Info, err = infoFromDTO(dto); err != nil {
		return nil, err
	}
	if err := body.readDTO(dto.Transaction, t); err != nil {
		return nil, fmt.Errorf("%v: %w", body.Type(), err)
	}
	return t, nil
}

func infoFromDTO(dto DTO) (*Info, error) {
	if isNull(dto.Meta) {
		return nil, nil
	}
	var meta metaDTO
	if err := json.Unmarshal(dto.Meta, &meta); err != nil {
		return nil, fmt.Errorf("transaction meta: %w", err)
	}
	return &Info{
		ID:                  dto.ID,
		Height:              meta.Height,
		Index:               meta.Index,
		Hash:                meta.Hash,
		MerkleComponentHash: meta.MerkleComponentHash,
		Timestamp:           meta.Timestamp,
		FeeMultiplier:       meta.FeeMultiplier,
		AggregateHash:       meta.AggregateHash,
		AggregateID:         meta.AggregateID,
	}, nil
}

func isNull(data json.RawMessage) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

// ToDTO maps t to its REST DTO.
func (t *Transaction) ToDTO() (DTO, error) {
	return t.toDTO(false)
}

func (t *Transaction) toDTO(embedded bool) (DTO, error) {
	if t.Body == nil {
		return DTO{}, fmt.Errorf("transaction: missing body")
	}
	h := headerDTO{
		Version: t.Version,
		Network: t.NetworkType,
		Type:    t.Type(),
	}
	if t.Signer != nil {
		h.SignerPublicKey = &t.Signer.PublicKey
	}
	if !embedded {
		maxFee, deadline := t.MaxFee, t.Deadline
		h.MaxFee, h.Deadline = &maxFee, &deadline
		if t.Signature != nil {
			h.Signature = &t.Signature
		}
	}
	body, err := t.Body.dto(t.NetworkType)
	if err != nil {
		return DTO{}, fmt.Errorf("%v: %w", t.Type(), err)
	}
	data, err := mergeObjects(h, body)
	if err != nil {
		return DTO{}, err
	}

	dto := DTO{Transaction: data}
	if t.Info != nil {
		dto.ID = t.Info.ID
		meta := metaDTO{
			Height:              t.Info.Height,
			Index:               t.Info.Index,
			Hash:                t.Info.Hash,
			MerkleComponentHash: t.Info.MerkleComponentHash,
			Timestamp:           t.Info.Timestamp,
			FeeMultiplier:       t.Info.FeeMultiplier,
			AggregateHash:       t.Info.AggregateHash,
			AggregateID:         t.Info.AggregateID,
		}
		if dto.Meta, err = json.Marshal(meta); err != nil {
			return DTO{}, err
		}
	}
	return dto, nil
}

// SerializeToJSON returns the JSON envelope of t.
func SerializeToJSON(t *Transaction) ([]byte, error) {
	dto, err := t.ToDTO()
	if err != nil {
		return nil, err
	}
	return json.Marshal(dto)
}

// MarshalJSON implements json.Marshaler using the REST DTO.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	return SerializeToJSON(t)
}

// mergeObjects marshals every value in objs, which must encode to JSON
// objects, and merges their fields. Later values win.
func mergeObjects(objs ...interface{}) (json.RawMessage, error) {
	merged := make(map[string]json.RawMessage)
	for _, obj := range objs {
		data, err := json.Marshal(obj)
		if err != nil {
			return nil, err
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, err
		}
		for k, v := range fields {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// ExtractRecipient decodes an address field of a DTO. A string is the hex
// form of an unresolved address, an object with an "address" key is an
// address and an object with an "id" key is a namespace id. Any other shape
// fails.
func ExtractRecipient(data json.RawMessage) (model.UnresolvedAddress, error) {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		return model.NewUnresolvedAddressFromEncoded(str)
	}
	var obj struct {
		Address *model.Address `json:"address"`
		ID      *string        `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		switch {
		case obj.Address != nil:
			return *obj.Address, nil
		case obj.ID != nil:
			return model.NewNamespaceIDFromHex(*obj.ID)
		}
	}
	return nil, fmt.Errorf("recipient %s: unrecognized shape", data)
}

func extractRecipients(list []json.RawMessage) ([]model.UnresolvedAddress, error) {
	addresses := make([]model.UnresolvedAddress, len(list))
	for i, data := range list {
		adr, err := ExtractRecipient(data)
		if err != nil {
			return nil, err
		}
		addresses[i] = adr
	}
	return addresses, nil
}

// ExtractTokens decodes a token list of a DTO. Ids with the high bit set are
// namespace ids. A missing list yields an empty slice.
func ExtractTokens(data json.RawMessage) ([]model.Token, error) {
	if isNull(data) {
		return []model.Token{}, nil
	}
	var list []tokenDTO
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("tokens: %w", err)
	}
	tokens := make([]model.Token, len(list))
	for i, t := range list {
		id, err := model.NewUnresolvedTokenIDFromHex(t.ID)
		if err != nil {
			return nil, err
		}
		tokens[i] = model.NewToken(id, t.Amount)
	}
	return tokens, nil
}

func tokensDTO(tokens []model.Token) ([]tokenDTO, error) {
	list := make([]tokenDTO, len(tokens))
	for i, t := range tokens {
		if t.ID == nil {
			return nil, errMissingTokenID
		}
		list[i] = tokenDTO{ID: t.ID.Hex(), Amount: t.Amount}
	}
	return list, nil
}

func addressDTO(adr model.UnresolvedAddress,
	network model.NetworkType) (string, error) {
	if adr == nil {
		return "", errMissingAddress
	}
	return model.EncodeUnresolvedAddress(adr, network), nil
}

func addressesDTO(list []model.UnresolvedAddress,
	network model.NetworkType) ([]string, error) {
	out := make([]string, len(list))
	for i, adr := range list {
		s, err := addressDTO(adr, network)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func tokenIDDTO(id model.UnresolvedTokenID) (string, error) {
	if id == nil {
		return "", errMissingTokenID
	}
	return id.Hex(), nil
}

func extractTokenID(hexStr string) (model.UnresolvedTokenID, error) {
	return model.NewUnresolvedTokenIDFromHex(hexStr)
}

// hexUInt64 travels as 16 hex digits, as metadata and restriction keys do.
type hexUInt64 model.UInt64

func (v hexUInt64) MarshalJSON() ([]byte, error) {
	return json.Marshal(model.UInt64(v).Hex())
}

func (v *hexUInt64) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%T: %w", v, err)
	}
	n, err := model.NewUInt64FromHex(str)
	if err != nil {
		return err
	}
	*v = hexUInt64(n)
	return nil
}
