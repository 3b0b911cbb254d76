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

// KeyLink holds the fields shared by the account, node and VRF key link
// transactions.
type KeyLink struct {
	LinkedPublicKey model.Bytes32
	Action          model.LinkAction
}

func (b *KeyLink) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	w.Bytes(b.LinkedPublicKey[:])
	w.Uint8(uint8(b.Action))
	return nil
}

func (b *KeyLink) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	b.LinkedPublicKey = *model.NewBytes32(r.Bytes(catbuffer.PublicKeySize))
	b.Action = model.LinkAction(r.Uint8())
	return r.Err()
}

type keyLinkDTO struct {
	LinkedPublicKey model.Bytes32    `json:"linkedPublicKey"`
	LinkAction      model.LinkAction `json:"linkAction"`
}

func (b *KeyLink) readDTO(data []byte, _ *Transaction) error {
	var dto keyLinkDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	b.LinkedPublicKey, b.Action = dto.LinkedPublicKey, dto.LinkAction
	return nil
}

func (b *KeyLink) dto(model.NetworkType) (interface{}, error) {
	return keyLinkDTO{b.LinkedPublicKey, b.Action}, nil
}

func (*KeyLink) shouldResolve() bool { return false }

// AccountKeyLink delegates the importance of an account to a remote account.
type AccountKeyLink struct{ KeyLink }

func (*AccountKeyLink) Type() Type { return TypeAccountKeyLink }

func (b *AccountKeyLink) resolve(model.Statement, position) (Body, error) { return b, nil }

// NodeKeyLink links an account to the node it delegates harvesting to.
type NodeKeyLink struct{ KeyLink }

func (*NodeKeyLink) Type() Type { return TypeNodeKeyLink }

func (b *NodeKeyLink) resolve(model.Statement, position) (Body, error) { return b, nil }

// VrfKeyLink links the VRF key used for harvesting.
type VrfKeyLink struct{ KeyLink }

func (*VrfKeyLink) Type() Type { return TypeVrfKeyLink }

func (b *VrfKeyLink) resolve(model.Statement, position) (Body, error) { return b, nil }

// VotingKeyLink links a finalization voting key for a range of epochs.
type VotingKeyLink struct {
	LinkedPublicKey model.Bytes32
	StartEpoch      uint32
	EndEpoch        uint32
	Action          model.LinkAction
}

func (*VotingKeyLink) Type() Type { return TypeVotingKeyLink }

func (b *VotingKeyLink) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	w.Bytes(b.LinkedPublicKey[:])
	w.Uint32(b.StartEpoch)
	w.Uint32(b.EndEpoch)
	w.Uint8(uint8(b.Action))
	return nil
}

func (b *VotingKeyLink) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	b.LinkedPublicKey = *model.NewBytes32(r.Bytes(catbuffer.PublicKeySize))
	b.StartEpoch = r.Uint32()
	b.EndEpoch = r.Uint32()
	b.Action = model.LinkAction(r.Uint8())
	return r.Err()
}

type votingKeyLinkDTO struct {
	LinkedPublicKey model.Bytes32    `json:"linkedPublicKey"`
	StartEpoch      uint32           `json:"startEpoch"`
	EndEpoch        uint32           `json:"endEpoch"`
	Action          model.LinkAction `json:"linkAction"`
}

func (b *VotingKeyLink) readDTO(data []byte, _ *Transaction) error {
	var dto votingKeyLinkDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	*b = VotingKeyLink(dto)
	return nil
}

func (b *VotingKeyLink) dto(model.NetworkType) (interface{}, error) {
	return votingKeyLinkDTO(*b), nil
}

func (b *VotingKeyLink) resolve(model.Statement, position) (Body, error) { return b, nil }

func (*VotingKeyLink) shouldResolve() bool { return false }
