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

package model

import "fmt"

// MessageType is the leading byte of an encoded message.
type MessageType uint8

const (
	PlainMessage                          MessageType = 0x00
	EncryptedMessage                      MessageType = 0x01
	PersistentHarvestingDelegationMessage MessageType = 0xFE
	// RawMessage is used for payloads without a recognized leading type
	// byte. Its payload is kept verbatim.
	RawMessage MessageType = 0xFF
)

// Message is the optional note attached to a transfer.
type Message struct {
	Type    MessageType
	Payload []byte
}

// EmptyMessage encodes to zero bytes.
func EmptyMessage() Message { return Message{Type: PlainMessage} }

func NewPlainMessage(text string) Message {
	return Message{Type: PlainMessage, Payload: []byte(text)}
}

// NewMessageFromBytes decodes an encoded message. A lone plain type byte is
// kept as a raw message so that it encodes back to itself.
func NewMessageFromBytes(data []byte) Message {
	if len(data) == 0 {
		return EmptyMessage()
	}
	switch t := MessageType(data[0]); t {
	case PlainMessage:
		if len(data) == 1 {
			break
		}
		fallthrough
	case EncryptedMessage, PersistentHarvestingDelegationMessage:
		return Message{Type: t, Payload: append([]byte(nil), data[1:]...)}
	}
	return Message{Type: RawMessage, Payload: append([]byte(nil), data...)}
}

// IsEmpty returns true if m encodes to zero bytes.
func (m Message) IsEmpty() bool {
	return len(m.Payload) == 0 && m.Type != EncryptedMessage &&
		m.Type != PersistentHarvestingDelegationMessage
}

// Bytes returns the encoded message: the type byte followed by the payload.
func (m Message) Bytes() []byte {
	if m.Type == RawMessage {
		return append([]byte(nil), m.Payload...)
	}
	if m.IsEmpty() {
		return nil
	}
	return append([]byte{byte(m.Type)}, m.Payload...)
}

func (m Message) String() string {
	if m.Type == PlainMessage {
		return string(m.Payload)
	}
	return fmt.Sprintf("%v:%X", m.Type, m.Payload)
}

func (t MessageType) String() string {
	switch t {
	case PlainMessage:
		return "plain"
	case EncryptedMessage:
		return "encrypted"
	case PersistentHarvestingDelegationMessage:
		return "persistentharvestingdelegation"
	case RawMessage:
		return "raw"
	}
	return fmt.Sprintf("MessageType(%d)", uint8(t))
}
