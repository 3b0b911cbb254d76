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

// HashLock locks funds as a deposit for announcing the bonded aggregate with
// the given hash.
type HashLock struct {
	Token    model.Token
	Duration model.UInt64
	Hash     model.Bytes32
}

// NewHashLock returns an unsigned hash lock for the signed bonded aggregate.
func NewHashLock(network model.NetworkType, deadline model.Deadline,
	token model.Token, duration model.UInt64, signed SignedTransaction,
	maxFee model.UInt64) (*Transaction, error) {
	if signed.Type != TypeAggregateBonded {
		return nil, fmt.Errorf("hash lock: signed transaction must be %v, not %v",
			TypeAggregateBonded, signed.Type)
	}
	return New(network, deadline, maxFee, &HashLock{
		Token:    token,
		Duration: duration,
		Hash:     signed.Hash,
	}), nil
}

func (*HashLock) Type() Type { return TypeHashLock }

func (b *HashLock) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	if err := writeToken(w, b.Token); err != nil {
		return err
	}
	w.Uint64(uint64(b.Duration))
	w.Bytes(b.Hash[:])
	return nil
}

func (b *HashLock) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	b.Token = readToken(r)
	b.Duration = model.UInt64(r.Uint64())
	b.Hash = *model.NewBytes32(r.Bytes(catbuffer.HashSize))
	return r.Err()
}

type hashLockDTO struct {
	TokenID  string        `json:"tokenId"`
	Amount   model.UInt64  `json:"amount"`
	Duration model.UInt64  `json:"duration"`
	Hash     model.Bytes32 `json:"hash"`
}

func (b *HashLock) readDTO(data []byte, _ *Transaction) error {
	var dto hashLockDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	id, err := extractTokenID(dto.TokenID)
	if err != nil {
		return err
	}
	*b = HashLock{Token: model.NewToken(id, dto.Amount),
		Duration: dto.Duration, Hash: dto.Hash}
	return nil
}

func (b *HashLock) dto(model.NetworkType) (interface{}, error) {
	id, err := tokenIDDTO(b.Token.ID)
	if err != nil {
		return nil, err
	}
	return hashLockDTO{id, b.Token.Amount, b.Duration, b.Hash}, nil
}

func (b *HashLock) resolve(st model.Statement, pos position) (Body, error) {
	token, err := pos.resolveToken(st, b.Token)
	if err != nil {
		return nil, err
	}
	return &HashLock{Token: token, Duration: b.Duration, Hash: b.Hash}, nil
}

func (b *HashLock) shouldResolve() bool { return anyTokenAlias(b.Token.ID) }

// SecretLock locks funds for a recipient until the proof of a secret is
// revealed.
type SecretLock struct {
	Recipient     model.UnresolvedAddress
	Secret        model.Bytes32
	Token         model.Token
	Duration      model.UInt64
	HashAlgorithm model.LockHashAlgorithm
}

func (*SecretLock) Type() Type { return TypeSecretLock }

func (b *SecretLock) writePayload(w *catbuffer.Writer, network model.NetworkType) error {
	if err := writeAddress(w, b.Recipient, network); err != nil {
		return err
	}
	w.Bytes(b.Secret[:])
	if err := writeToken(w, b.Token); err != nil {
		return err
	}
	w.Uint64(uint64(b.Duration))
	w.Uint8(uint8(b.HashAlgorithm))
	return nil
}

func (b *SecretLock) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	var err error
	if b.Recipient, err = readAddress(r); err != nil {
		return err
	}
	b.Secret = *model.NewBytes32(r.Bytes(catbuffer.HashSize))
	b.Token = readToken(r)
	b.Duration = model.UInt64(r.Uint64())
	b.HashAlgorithm = model.LockHashAlgorithm(r.Uint8())
	return r.Err()
}

type secretLockDTO struct {
	RecipientAddress json.RawMessage         `json:"recipientAddress"`
	Secret           model.Bytes32           `json:"secret"`
	TokenID          string                  `json:"tokenId"`
	Amount           model.UInt64            `json:"amount"`
	Duration         model.UInt64            `json:"duration"`
	HashAlgorithm    model.LockHashAlgorithm `json:"hashAlgorithm"`
}

func (b *SecretLock) readDTO(data []byte, _ *Transaction) error {
	var dto secretLockDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	recipient, err := ExtractRecipient(dto.RecipientAddress)
	if err != nil {
		return err
	}
	id, err := extractTokenID(dto.TokenID)
	if err != nil {
		return err
	}
	*b = SecretLock{
		Recipient:     recipient,
		Secret:        dto.Secret,
		Token:         model.NewToken(id, dto.Amount),
		Duration:      dto.Duration,
		HashAlgorithm: dto.HashAlgorithm,
	}
	return nil
}

func (b *SecretLock) dto(network model.NetworkType) (interface{}, error) {
	recipient, err := addressDTO(b.Recipient, network)
	if err != nil {
		return nil, err
	}
	id, err := tokenIDDTO(b.Token.ID)
	if err != nil {
		return nil, err
	}
	return struct {
		RecipientAddress string                  `json:"recipientAddress"`
		Secret           model.Bytes32           `json:"secret"`
		TokenID          string                  `json:"tokenId"`
		Amount           model.UInt64            `json:"amount"`
		Duration         model.UInt64            `json:"duration"`
		HashAlgorithm    model.LockHashAlgorithm `json:"hashAlgorithm"`
	}{recipient, b.Secret, id, b.Token.Amount, b.Duration, b.HashAlgorithm}, nil
}

func (b *SecretLock) resolve(st model.Statement, pos position) (Body, error) {
	recipient, err := pos.resolveAddress(st, b.Recipient)
	if err != nil {
		return nil, err
	}
	token, err := pos.resolveToken(st, b.Token)
	if err != nil {
		return nil, err
	}
	c := *b
	c.Recipient, c.Token = recipient, token
	return &c, nil
}

func (b *SecretLock) shouldResolve() bool {
	return anyAddressAlias(b.Recipient) || anyTokenAlias(b.Token.ID)
}

// SecretProof reveals the proof of a secret to release locked funds.
type SecretProof struct {
	Recipient     model.UnresolvedAddress
	Secret        model.Bytes32
	HashAlgorithm model.LockHashAlgorithm
	Proof         []byte
}

func (*SecretProof) Type() Type { return TypeSecretProof }

func (b *SecretProof) writePayload(w *catbuffer.Writer, network model.NetworkType) error {
	if len(b.Proof) > 0xFFFF {
		return fmt.Errorf("proof too long")
	}
	if err := writeAddress(w, b.Recipient, network); err != nil {
		return err
	}
	w.Bytes(b.Secret[:])
	w.Uint16(uint16(len(b.Proof)))
	w.Uint8(uint8(b.HashAlgorithm))
	w.Bytes(b.Proof)
	return nil
}

func (b *SecretProof) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	var err error
	if b.Recipient, err = readAddress(r); err != nil {
		return err
	}
	b.Secret = *model.NewBytes32(r.Bytes(catbuffer.HashSize))
	size := int(r.Uint16())
	b.HashAlgorithm = model.LockHashAlgorithm(r.Uint8())
	b.Proof = r.Bytes(size)
	return r.Err()
}

type secretProofDTO struct {
	RecipientAddress json.RawMessage         `json:"recipientAddress"`
	Secret           model.Bytes32           `json:"secret"`
	HashAlgorithm    model.LockHashAlgorithm `json:"hashAlgorithm"`
	Proof            model.Bytes             `json:"proof"`
}

func (b *SecretProof) readDTO(data []byte, _ *Transaction) error {
	var dto secretProofDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	recipient, err := ExtractRecipient(dto.RecipientAddress)
	if err != nil {
		return err
	}
	*b = SecretProof{
		Recipient:     recipient,
		Secret:        dto.Secret,
		HashAlgorithm: dto.HashAlgorithm,
		Proof:         dto.Proof,
	}
	return nil
}

func (b *SecretProof) dto(network model.NetworkType) (interface{}, error) {
	recipient, err := addressDTO(b.Recipient, network)
	if err != nil {
		return nil, err
	}
	return struct {
		RecipientAddress string                  `json:"recipientAddress"`
		Secret           model.Bytes32           `json:"secret"`
		HashAlgorithm    model.LockHashAlgorithm `json:"hashAlgorithm"`
		Proof            model.Bytes             `json:"proof"`
	}{recipient, b.Secret, b.HashAlgorithm, b.Proof}, nil
}

func (b *SecretProof) resolve(st model.Statement, pos position) (Body, error) {
	recipient, err := pos.resolveAddress(st, b.Recipient)
	if err != nil {
		return nil, err
	}
	c := *b
	c.Recipient = recipient
	return &c, nil
}

func (b *SecretProof) shouldResolve() bool { return anyAddressAlias(b.Recipient) }
