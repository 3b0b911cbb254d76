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

package listener

import (
	"encoding/json"
	"fmt"

	"github.com/bitxorcorp/bitxor-sdk-go/api"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
)

// Channel is the first part of a topic.
type Channel string

const (
	ChannelBlock              Channel = "block"
	ChannelFinalizedBlock     Channel = "finalizedBlock"
	ChannelConfirmedAdded     Channel = "confirmedAdded"
	ChannelUnconfirmedAdded   Channel = "unconfirmedAdded"
	ChannelUnconfirmedRemoved Channel = "unconfirmedRemoved"
	ChannelPartialAdded       Channel = "partialAdded"
	ChannelPartialRemoved     Channel = "partialRemoved"
	ChannelStatus             Channel = "status"
	ChannelCosignature        Channel = "cosignature"
)

// event is a parsed message. Param is the part of the topic after the
// channel, the plain address for address scoped channels.
type event struct {
	channel Channel
	param   string
	// hash of the transaction the event is about, if any.
	hash  *model.Bytes32
	value interface{}
}

type blockMessage struct {
	Block api.BlockDTO `json:"block"`
	Meta  struct {
		Hash           model.Bytes32 `json:"hash"`
		GenerationHash model.Bytes32 `json:"generationHash"`
	} `json:"meta"`
}

type finalizedBlockMessage api.FinalizedBlockDTO

type removedMessage struct {
	Meta struct {
		Hash model.Bytes32 `json:"hash"`
	} `json:"meta"`
}

type statusMessage struct {
	Hash     model.Bytes32  `json:"hash"`
	Code     string         `json:"code"`
	Deadline model.Deadline `json:"deadline"`
}

type cosignatureMessage struct {
	Version         model.UInt64  `json:"version"`
	SignerPublicKey model.Bytes32 `json:"signerPublicKey"`
	Signature       model.Bytes   `json:"signature"`
	ParentHash      model.Bytes32 `json:"parentHash"`
}

func parseEvent(msg message) (event, error) {
	channel, param := splitTopic(msg.Topic)
	ev := event{channel: channel, param: param}
	switch channel {
	case ChannelBlock:
		var m blockMessage
		if err := json.Unmarshal(msg.Data, &m); err != nil {
			return ev, fmt.Errorf("%v: %w", channel, err)
		}
		ev.value = model.NewBlock{
			BlockHeader:    m.Block.Header(),
			Hash:           m.Meta.Hash,
			GenerationHash: m.Meta.GenerationHash,
		}
	case ChannelFinalizedBlock:
		var m finalizedBlockMessage
		if err := json.Unmarshal(msg.Data, &m); err != nil {
			return ev, fmt.Errorf("%v: %w", channel, err)
		}
		ev.value = model.FinalizedBlock(m)
	case ChannelConfirmedAdded, ChannelUnconfirmedAdded, ChannelPartialAdded:
		tx, err := transaction.CreateFromJSON(msg.Data)
		if err != nil {
			return ev, fmt.Errorf("%v: %w", channel, err)
		}
		if tx.Info != nil {
			ev.hash = tx.Info.Hash
		}
		ev.value = tx
	case ChannelUnconfirmedRemoved, ChannelPartialRemoved:
		var m removedMessage
		if err := json.Unmarshal(msg.Data, &m); err != nil {
			return ev, fmt.Errorf("%v: %w", channel, err)
		}
		ev.hash = &m.Meta.Hash
		ev.value = m.Meta.Hash
	case ChannelStatus:
		var m statusMessage
		if err := json.Unmarshal(msg.Data, &m); err != nil {
			return ev, fmt.Errorf("%v: %w", channel, err)
		}
		adr, err := model.NewAddressFromRaw(param)
		if err != nil {
			return ev, fmt.Errorf("%v: %w", channel, err)
		}
		ev.hash = &m.Hash
		ev.value = model.TransactionStatusError{
			Address:  adr,
			Hash:     m.Hash,
			Code:     m.Code,
			Deadline: m.Deadline,
		}
	case ChannelCosignature:
		var m cosignatureMessage
		if err := json.Unmarshal(msg.Data, &m); err != nil {
			return ev, fmt.Errorf("%v: %w", channel, err)
		}
		ev.hash = &m.ParentHash
		ev.value = transaction.CosignatureSignedTransaction{
			ParentHash:      m.ParentHash,
			Signature:       m.Signature,
			SignerPublicKey: m.SignerPublicKey,
			Version:         uint64(m.Version),
		}
	default:
		return ev, fmt.Errorf("unknown channel: %v", channel)
	}
	return ev, nil
}
