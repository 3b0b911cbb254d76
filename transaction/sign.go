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
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bitxorcorp/bitxor-sdk-go/internal/catbuffer"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"golang.org/x/crypto/sha3"
)

// SignedTransaction is a signed payload ready to be announced.
type SignedTransaction struct {
	Payload     string
	Hash        model.Bytes32
	Signer      model.PublicAccount
	Type        Type
	NetworkType model.NetworkType
}

// CosignatureSignedTransaction is a cosignature of an announced bonded
// aggregate.
type CosignatureSignedTransaction struct {
	ParentHash      model.Bytes32
	Signature       model.Bytes
	SignerPublicKey model.Bytes32
	Version         uint64
}

// DetachedCosignature is a cosignature collected off chain for an aggregate
// that has not been announced yet.
type DetachedCosignature = CosignatureSignedTransaction

// signedRegion returns the part of payload covered by the signature.
func signedRegion(payload []byte) ([]byte, error) {
	if len(payload) < catbuffer.HeaderSize {
		return nil, fmt.Errorf("payload too short: %v bytes", len(payload))
	}
	typ := Type(binary.LittleEndian.Uint16(
		payload[catbuffer.VerifiableDataOffset+2:]))
	if typ.IsAggregate() {
		end := catbuffer.VerifiableDataOffset + catbuffer.AggregateSignedDataSize
		if len(payload) < end {
			return nil, fmt.Errorf("aggregate payload too short: %v bytes",
				len(payload))
		}
		return payload[catbuffer.VerifiableDataOffset:end], nil
	}
	return payload[catbuffer.VerifiableDataOffset:], nil
}

// EntityHash returns the hash of a signed top level payload.
func EntityHash(payload []byte, generationHash model.Bytes32) (model.Bytes32, error) {
	region, err := signedRegion(payload)
	if err != nil {
		return model.Bytes32{}, err
	}
	h := sha3.New256()
	h.Write(payload[catbuffer.SignatureOffset : catbuffer.SignatureOffset+catbuffer.SignatureSize/2])
	h.Write(payload[catbuffer.SignerOffset : catbuffer.SignerOffset+catbuffer.PublicKeySize])
	h.Write(generationHash[:])
	h.Write(region)
	var hash model.Bytes32
	copy(hash[:], h.Sum(nil))
	return hash, nil
}

// Sign signs t with acc for the network identified by generationHash.
func (t *Transaction) Sign(acc *model.Account,
	generationHash model.Bytes32) (SignedTransaction, error) {
	c := *t
	c.Signer = &acc.PublicAccount
	c.Signature = nil
	payload, err := c.Serialize()
	if err != nil {
		return SignedTransaction{}, err
	}
	region, err := signedRegion(payload)
	if err != nil {
		return SignedTransaction{}, err
	}
	data := make([]byte, 0, len(generationHash)+len(region))
	data = append(data, generationHash[:]...)
	data = append(data, region...)
	signature := acc.Sign(data)
	copy(payload[catbuffer.SignatureOffset:], signature)

	hash, err := EntityHash(payload, generationHash)
	if err != nil {
		return SignedTransaction{}, err
	}
	return SignedTransaction{
		Payload:     strings.ToUpper(hex.EncodeToString(payload)),
		Hash:        hash,
		Signer:      acc.PublicAccount,
		Type:        t.Type(),
		NetworkType: t.NetworkType,
	}, nil
}

// SignWithCosignatories signs the aggregate t with initiator and appends the
// cosignatures of cosigners.
func (t *Transaction) SignWithCosignatories(initiator *model.Account,
	cosigners []*model.Account,
	generationHash model.Bytes32) (SignedTransaction, error) {
	if _, ok := t.Body.(*Aggregate); !ok {
		return SignedTransaction{}, fmt.Errorf("%v: not an aggregate", t.Type())
	}
	signed, err := t.Sign(initiator, generationHash)
	if err != nil {
		return SignedTransaction{}, err
	}
	cosignatures := make([]CosignatureSignedTransaction, len(cosigners))
	for i, cosigner := range cosigners {
		cosignatures[i] = CosignTransactionHash(cosigner, signed.Hash)
	}
	return AddCosignatures(signed, cosignatures)
}

// SignWithDetachedCosignatures signs the aggregate t with initiator and
// appends cosignatures collected for its hash. Every cosignature must be
// valid for the resulting hash.
func (t *Transaction) SignWithDetachedCosignatures(initiator *model.Account,
	cosignatures []DetachedCosignature,
	generationHash model.Bytes32) (SignedTransaction, error) {
	if _, ok := t.Body.(*Aggregate); !ok {
		return SignedTransaction{}, fmt.Errorf("%v: not an aggregate", t.Type())
	}
	signed, err := t.Sign(initiator, generationHash)
	if err != nil {
		return SignedTransaction{}, err
	}
	for _, c := range cosignatures {
		if c.ParentHash != signed.Hash {
			return SignedTransaction{}, fmt.Errorf(
				"cosignature %v: parent hash %v, expected %v",
				c.SignerPublicKey, c.ParentHash, signed.Hash)
		}
		if !c.Verify(t.NetworkType) {
			return SignedTransaction{}, fmt.Errorf(
				"cosignature %v: invalid signature", c.SignerPublicKey)
		}
	}
	return AddCosignatures(signed, cosignatures)
}

// AddCosignatures appends cosignatures to a signed aggregate payload.
func AddCosignatures(signed SignedTransaction,
	cosignatures []CosignatureSignedTransaction) (SignedTransaction, error) {
	payload, err := hex.DecodeString(signed.Payload)
	if err != nil {
		return SignedTransaction{}, fmt.Errorf("payload: %w", err)
	}
	w := catbuffer.NewWriter(len(payload) +
		len(cosignatures)*catbuffer.CosignatureSize)
	w.Bytes(payload)
	for _, c := range cosignatures {
		w.Uint64(c.Version)
		w.Bytes(c.SignerPublicKey[:])
		w.Fixed(c.Signature, catbuffer.SignatureSize)
	}
	payload = w.Result()
	catbuffer.PatchSize(payload)
	signed.Payload = strings.ToUpper(hex.EncodeToString(payload))
	return signed, nil
}

// CosignTransactionHash cosigns the aggregate with the given hash. It is used
// for cosignatures collected off chain.
func CosignTransactionHash(acc *model.Account,
	hash model.Bytes32) CosignatureSignedTransaction {
	return CosignatureSignedTransaction{
		ParentHash:      hash,
		Signature:       acc.Sign(hash[:]),
		SignerPublicKey: acc.PublicKey,
	}
}

// CosignAggregateBonded cosigns an announced bonded aggregate returned by the
// gateway.
func CosignAggregateBonded(acc *model.Account,
	t *Transaction) (CosignatureSignedTransaction, error) {
	if t.Type() != TypeAggregateBonded {
		return CosignatureSignedTransaction{},
			fmt.Errorf("%v: not %v", t.Type(), TypeAggregateBonded)
	}
	hash, err := t.Hash()
	if err != nil {
		return CosignatureSignedTransaction{}, err
	}
	return CosignTransactionHash(acc, hash), nil
}

// Verify checks the signature of c.
func (c CosignatureSignedTransaction) Verify(network model.NetworkType) bool {
	signer := model.NewPublicAccount(c.SignerPublicKey, network)
	return signer.Verify(c.ParentHash[:], c.Signature)
}
