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
	"golang.org/x/crypto/sha3"
)

// Cosignature is the signature of an aggregate hash by a cosignatory.
type Cosignature struct {
	Version   uint64
	Signer    model.PublicAccount
	Signature model.Bytes
}

// Aggregate bundles inner transactions that are confirmed atomically. A
// bonded aggregate may be announced before it holds every cosignature.
type Aggregate struct {
	Bonded            bool
	InnerTransactions []*Transaction
	Cosignatures      []Cosignature
}

// NewAggregateComplete returns an unsigned complete aggregate. Every inner
// transaction needs a signer, see ToAggregate.
func NewAggregateComplete(network model.NetworkType, deadline model.Deadline,
	inner []*Transaction, cosignatures []Cosignature,
	maxFee model.UInt64) *Transaction {
	return New(network, deadline, maxFee, &Aggregate{
		InnerTransactions: inner,
		Cosignatures:      cosignatures,
	})
}

// NewAggregateBonded returns an unsigned bonded aggregate.
func NewAggregateBonded(network model.NetworkType, deadline model.Deadline,
	inner []*Transaction, cosignatures []Cosignature,
	maxFee model.UInt64) *Transaction {
	return New(network, deadline, maxFee, &Aggregate{
		Bonded:            true,
		InnerTransactions: inner,
		Cosignatures:      cosignatures,
	})
}

func (b *Aggregate) Type() Type {
	if b.Bonded {
		return TypeAggregateBonded
	}
	return TypeAggregateComplete
}

// innerPayloads serializes every inner transaction as embedded.
func (b *Aggregate) innerPayloads() ([][]byte, error) {
	payloads := make([][]byte, len(b.InnerTransactions))
	for i, inner := range b.InnerTransactions {
		if inner.Body != nil && inner.Type().IsAggregate() {
			return nil, fmt.Errorf("inner transaction %v: %v cannot be embedded",
				i, inner.Type())
		}
		payload, err := inner.serialize(true)
		if err != nil {
			return nil, fmt.Errorf("inner transaction %v: %w", i, err)
		}
		payloads[i] = payload
	}
	return payloads, nil
}

// TransactionsHash returns the merkle root of the hashes of the embedded
// inner transactions.
func (b *Aggregate) TransactionsHash() (model.Bytes32, error) {
	payloads, err := b.innerPayloads()
	if err != nil {
		return model.Bytes32{}, err
	}
	return transactionsHash(payloads), nil
}

func transactionsHash(payloads [][]byte) model.Bytes32 {
	hashes := make([][catbuffer.HashSize]byte, len(payloads))
	for i, payload := range payloads {
		hashes[i] = sha3.Sum256(payload)
	}
	return model.Bytes32(catbuffer.MerkleRoot(hashes))
}

func (b *Aggregate) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	payloads, err := b.innerPayloads()
	if err != nil {
		return err
	}
	hash := transactionsHash(payloads)
	inner := catbuffer.NewWriter(0)
	for _, payload := range payloads {
		inner.Bytes(payload)
		inner.Pad(8)
	}
	w.Bytes(hash[:])
	w.Uint32(uint32(inner.Len()))
	w.Uint32(0)
	w.Bytes(inner.Result())
	for _, cosig := range b.Cosignatures {
		w.Uint64(cosig.Version)
		w.Bytes(cosig.Signer.PublicKey[:])
		w.Fixed(cosig.Signature, catbuffer.SignatureSize)
	}
	return nil
}

func (b *Aggregate) readPayload(r *catbuffer.Reader, env *Transaction) error {
	r.Skip(catbuffer.HashSize)
	size := int(r.Uint32())
	r.Skip(4)
	data := r.Bytes(size)
	if err := r.Err(); err != nil {
		return err
	}
	inner := catbuffer.NewReader(data)
	b.InnerTransactions = nil
	for inner.Remaining() > 0 {
		start := inner.Offset()
		t, err := readTransaction(inner, true, env)
		if err != nil {
			return fmt.Errorf("inner transaction %v: %w",
				len(b.InnerTransactions), err)
		}
		inner.SkipPadding(inner.Offset()-start, 8)
		if err := inner.Err(); err != nil {
			return err
		}
		b.InnerTransactions = append(b.InnerTransactions, t)
	}
	if r.Remaining()%catbuffer.CosignatureSize != 0 {
		return fmt.Errorf("invalid cosignatures size %v", r.Remaining())
	}
	b.Cosignatures = make([]Cosignature, r.Remaining()/catbuffer.CosignatureSize)
	for i := range b.Cosignatures {
		version := r.Uint64()
		key := model.NewBytes32(r.Bytes(catbuffer.PublicKeySize))
		b.Cosignatures[i] = Cosignature{
			Version:   version,
			Signer:    model.NewPublicAccount(*key, env.NetworkType),
			Signature: r.Bytes(catbuffer.SignatureSize),
		}
	}
	return r.Err()
}

type cosignatureDTO struct {
	Version         model.UInt64  `json:"version"`
	SignerPublicKey model.Bytes32 `json:"signerPublicKey"`
	Signature       model.Bytes   `json:"signature"`
}

type aggregateDTO struct {
	TransactionsHash *model.Bytes32   `json:"transactionsHash,omitempty"`
	Transactions     []DTO            `json:"transactions"`
	Cosignatures     []cosignatureDTO `json:"cosignatures"`
}

func (b *Aggregate) readDTO(data []byte, env *Transaction) error {
	var dto aggregateDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	b.InnerTransactions = make([]*Transaction, len(dto.Transactions))
	for i, innerDTO := range dto.Transactions {
		t, err := createFromDTO(innerDTO, env)
		if err != nil {
			return fmt.Errorf("inner transaction %v: %w", i, err)
		}
		b.InnerTransactions[i] = t
	}
	b.Cosignatures = make([]Cosignature, len(dto.Cosignatures))
	for i, c := range dto.Cosignatures {
		b.Cosignatures[i] = Cosignature{
			Version:   uint64(c.Version),
			Signer:    model.NewPublicAccount(c.SignerPublicKey, env.NetworkType),
			Signature: c.Signature,
		}
	}
	return nil
}

func (b *Aggregate) dto(model.NetworkType) (interface{}, error) {
	payloads, err := b.innerPayloads()
	if err != nil {
		return nil, err
	}
	hash := transactionsHash(payloads)
	dto := aggregateDTO{
		TransactionsHash: &hash,
		Transactions:     make([]DTO, len(b.InnerTransactions)),
		Cosignatures:     make([]cosignatureDTO, len(b.Cosignatures)),
	}
	for i, inner := range b.InnerTransactions {
		if dto.Transactions[i], err = inner.toDTO(true); err != nil {
			return nil, fmt.Errorf("inner transaction %v: %w", i, err)
		}
	}
	for i, c := range b.Cosignatures {
		dto.Cosignatures[i] = cosignatureDTO{
			Version:         model.UInt64(c.Version),
			SignerPublicKey: c.Signer.PublicKey,
			Signature:       c.Signature,
		}
	}
	return dto, nil
}

// resolve resolves every inner transaction at the position of the
// aggregate, with 1 based inner indexes as secondary ids.
func (b *Aggregate) resolve(st model.Statement, pos position) (Body, error) {
	resolved := &Aggregate{
		Bonded:            b.Bonded,
		InnerTransactions: make([]*Transaction, len(b.InnerTransactions)),
		Cosignatures:      b.Cosignatures,
	}
	for i, inner := range b.InnerTransactions {
		body, err := inner.Body.resolve(st, pos.inner(i))
		if err != nil {
			return nil, fmt.Errorf("inner transaction %v: %w", i, err)
		}
		resolved.InnerTransactions[i] = inner.with(body)
	}
	return resolved, nil
}

func (b *Aggregate) shouldResolve() bool {
	for _, inner := range b.InnerTransactions {
		if inner.Body.shouldResolve() {
			return true
		}
	}
	return false
}
