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

// Package transaction implements the Bitxor transaction model and its
// mappings to the binary catbuffer payload and to the REST JSON DTOs.
//
// A Transaction is an envelope of fields shared by every variant and a Body
// holding the fields of one variant. Every operation that differs between
// variants is a method of Body, so each variant implements all of them.
package transaction

import (
	"errors"

	"github.com/bitxorcorp/bitxor-sdk-go/internal/catbuffer"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
)

// ErrNoTransactionInfo is returned when an operation needs the position of a
// transaction in the chain and the transaction has none.
var ErrNoTransactionInfo = errors.New("transaction has no position info")

// Body holds the variant specific fields of a transaction.
type Body interface {
	Type() Type

	writePayload(w *catbuffer.Writer, network model.NetworkType) error
	readPayload(r *catbuffer.Reader, env *Transaction) error

	readDTO(data []byte, env *Transaction) error
	dto(network model.NetworkType) (interface{}, error)

	// resolve returns a copy with aliases replaced by what they resolved to
	// at pos.
	resolve(st model.Statement, pos position) (Body, error)
	// shouldResolve returns true if any field may hold an alias.
	shouldResolve() bool
}

// Info is the position of a transaction in the chain, as reported by the
// REST gateway. Inner transactions of an aggregate carry the aggregate hash
// and id instead of their own hash.
type Info struct {
	ID                  string
	Height              model.UInt64
	Index               uint32
	Hash                *model.Bytes32
	MerkleComponentHash *model.Bytes32
	Timestamp           *model.UInt64
	FeeMultiplier       *uint32
	AggregateHash       *model.Bytes32
	AggregateID         string
}

// IsEmbedded returns true for inner transactions of an aggregate.
func (i *Info) IsEmbedded() bool {
	return i.AggregateHash != nil || i.AggregateID != ""
}

// IsConfirmed returns true once the transaction is part of a block.
func (i *Info) IsConfirmed() bool { return i.Height > 0 }

// Transaction is the envelope shared by every transaction variant.
type Transaction struct {
	NetworkType model.NetworkType
	Version     uint8
	Deadline    model.Deadline
	MaxFee      model.UInt64
	// Signature is nil until the transaction is signed.
	Signature model.Bytes
	// Signer is nil until the transaction is signed or embedded.
	Signer *model.PublicAccount
	// Info is nil for transactions that were not returned by the gateway.
	Info *Info

	Body Body
}

// New returns an unsigned transaction.
func New(network model.NetworkType, deadline model.Deadline,
	maxFee model.UInt64, body Body) *Transaction {
	return &Transaction{
		NetworkType: network,
		Version:     Version,
		Deadline:    deadline,
		MaxFee:      maxFee,
		Body:        body,
	}
}

// Type returns the type of the body.
func (t *Transaction) Type() Type { return t.Body.Type() }

// with returns a shallow copy of t holding body.
func (t *Transaction) with(body Body) *Transaction {
	c := *t
	c.Body = body
	return &c
}

// ToAggregate returns a copy of t to be embedded in an aggregate, signed by
// signer.
func (t *Transaction) ToAggregate(signer model.PublicAccount) *Transaction {
	c := *t
	c.Signer = &signer
	return &c
}

// Size returns the size of the serialized top level transaction.
func (t *Transaction) Size() (int, error) {
	payload, err := t.serialize(false)
	if err != nil {
		return 0, err
	}
	return len(payload), nil
}

// SetMaxFee returns a copy of t whose max fee pays feeMultiplier per byte.
// For aggregates the size accounts for requiredCosignatures, including the
// cosignatures it already holds.
func (t *Transaction) SetMaxFee(feeMultiplier uint32,
	requiredCosignatures int) (*Transaction, error) {
	size, err := t.Size()
	if err != nil {
		return nil, err
	}
	if agg, ok := t.Body.(*Aggregate); ok &&
		requiredCosignatures > len(agg.Cosignatures) {
		size += (requiredCosignatures - len(agg.Cosignatures)) *
			catbuffer.CosignatureSize
	}
	c := *t
	c.MaxFee = model.UInt64(size) * model.UInt64(feeMultiplier)
	return &c, nil
}

// IsUnannounced returns true if t was built locally.
func (t *Transaction) IsUnannounced() bool { return t.Info == nil }

// IsConfirmed returns true if the gateway reported t as part of a block.
func (t *Transaction) IsConfirmed() bool {
	return t.Info != nil && t.Info.IsConfirmed()
}

// Hash returns the hash reported by the gateway. Inner transactions report
// the hash of their aggregate.
func (t *Transaction) Hash() (model.Bytes32, error) {
	if t.Info == nil {
		return model.Bytes32{}, ErrNoTransactionInfo
	}
	if t.Info.Hash != nil {
		return *t.Info.Hash, nil
	}
	if t.Info.AggregateHash != nil {
		return *t.Info.AggregateHash, nil
	}
	return model.Bytes32{}, ErrNoTransactionInfo
}

// SignerAddress returns the address of the signer, if any.
func (t *Transaction) SignerAddress() (model.Address, bool) {
	if t.Signer == nil {
		return model.Address{}, false
	}
	return t.Signer.Address, true
}
