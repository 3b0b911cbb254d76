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

// NamespaceRegistration registers a root namespace for Duration blocks or a
// child namespace under ParentID.
type NamespaceRegistration struct {
	RegistrationType model.NamespaceRegistrationType
	Name             string
	ID               model.NamespaceID
	Duration         model.UInt64
	ParentID         model.NamespaceID
}

// NewRootNamespaceRegistration returns an unsigned registration of the root
// namespace name.
func NewRootNamespaceRegistration(network model.NetworkType,
	deadline model.Deadline, name string, duration model.UInt64,
	maxFee model.UInt64) (*Transaction, error) {
	if !model.IsValidNamespaceName(name) {
		return nil, fmt.Errorf("namespace name %q: invalid", name)
	}
	id := model.NamespaceID{ID: model.GenerateNamespaceID(0, name), FullName: name}
	return New(network, deadline, maxFee, &NamespaceRegistration{
		RegistrationType: model.RootNamespace,
		Name:             name,
		ID:               id,
		Duration:         duration,
	}), nil
}

// NewSubNamespaceRegistration returns an unsigned registration of the child
// namespace name under parent.
func NewSubNamespaceRegistration(network model.NetworkType,
	deadline model.Deadline, name string, parent model.NamespaceID,
	maxFee model.UInt64) (*Transaction, error) {
	if !model.IsValidNamespaceName(name) {
		return nil, fmt.Errorf("namespace name %q: invalid", name)
	}
	id := model.NamespaceID{ID: model.GenerateNamespaceID(parent.ID, name)}
	if parent.FullName != "" {
		id.FullName = parent.FullName + "." + name
	}
	return New(network, deadline, maxFee, &NamespaceRegistration{
		RegistrationType: model.ChildNamespace,
		Name:             name,
		ID:               id,
		ParentID:         parent,
	}), nil
}

func (*NamespaceRegistration) Type() Type { return TypeNamespaceRegistration }

func (b *NamespaceRegistration) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	if len(b.Name) > 0xFF {
		return fmt.Errorf("namespace name too long")
	}
	if b.RegistrationType == model.RootNamespace {
		w.Uint64(uint64(b.Duration))
	} else {
		w.Uint64(uint64(b.ParentID.ID))
	}
	w.Uint64(uint64(b.ID.ID))
	w.Uint8(uint8(b.RegistrationType))
	w.Uint8(uint8(len(b.Name)))
	w.Bytes([]byte(b.Name))
	return nil
}

func (b *NamespaceRegistration) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	durationOrParent := model.UInt64(r.Uint64())
	b.ID = model.NamespaceID{ID: model.UInt64(r.Uint64())}
	b.RegistrationType = model.NamespaceRegistrationType(r.Uint8())
	b.Name = string(r.Bytes(int(r.Uint8())))
	if b.RegistrationType == model.RootNamespace {
		b.Duration = durationOrParent
	} else {
		b.ParentID = model.NamespaceID{ID: durationOrParent}
	}
	return r.Err()
}

type namespaceRegistrationDTO struct {
	RegistrationType model.NamespaceRegistrationType `json:"registrationType"`
	Name             model.Bytes                     `json:"name"`
	ID               model.NamespaceID               `json:"id"`
	Duration         *model.UInt64                   `json:"duration,omitempty"`
	ParentID         *model.NamespaceID              `json:"parentId,omitempty"`
}

func (b *NamespaceRegistration) readDTO(data []byte, _ *Transaction) error {
	var dto namespaceRegistrationDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	b.RegistrationType = dto.RegistrationType
	b.Name = string(dto.Name)
	b.ID = dto.ID
	if dto.Duration != nil {
		b.Duration = *dto.Duration
	}
	if dto.ParentID != nil {
		b.ParentID = *dto.ParentID
	}
	return nil
}

func (b *NamespaceRegistration) dto(model.NetworkType) (interface{}, error) {
	dto := namespaceRegistrationDTO{
		RegistrationType: b.RegistrationType,
		Name:             model.Bytes(b.Name),
		ID:               b.ID,
	}
	if b.RegistrationType == model.RootNamespace {
		duration := b.Duration
		dto.Duration = &duration
	} else {
		parent := b.ParentID
		dto.ParentID = &parent
	}
	return dto, nil
}

func (b *NamespaceRegistration) resolve(model.Statement, position) (Body, error) {
	return b, nil
}

func (*NamespaceRegistration) shouldResolve() bool { return false }

// AddressAlias links or unlinks a namespace and an address.
type AddressAlias struct {
	Action      model.AliasAction
	NamespaceID model.NamespaceID
	Address     model.Address
}

func (*AddressAlias) Type() Type { return TypeAddressAlias }

func (b *AddressAlias) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	w.Uint64(uint64(b.NamespaceID.ID))
	raw := b.Address.Bytes()
	w.Bytes(raw[:])
	w.Uint8(uint8(b.Action))
	return nil
}

func (b *AddressAlias) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	b.NamespaceID = model.NamespaceID{ID: model.UInt64(r.Uint64())}
	raw := r.Bytes(catbuffer.AddressSize)
	b.Action = model.AliasAction(r.Uint8())
	if err := r.Err(); err != nil {
		return err
	}
	var err error
	b.Address, err = model.NewAddressFromBytes(raw)
	return err
}

type addressAliasDTO struct {
	NamespaceID model.NamespaceID `json:"namespaceId"`
	Address     model.Address     `json:"address"`
	AliasAction model.AliasAction `json:"aliasAction"`
}

func (b *AddressAlias) readDTO(data []byte, _ *Transaction) error {
	var dto addressAliasDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	b.NamespaceID, b.Address, b.Action = dto.NamespaceID, dto.Address, dto.AliasAction
	return nil
}

func (b *AddressAlias) dto(model.NetworkType) (interface{}, error) {
	return addressAliasDTO{b.NamespaceID, b.Address, b.Action}, nil
}

func (b *AddressAlias) resolve(model.Statement, position) (Body, error) { return b, nil }

func (*AddressAlias) shouldResolve() bool { return false }

// TokenAlias links or unlinks a namespace and a token.
type TokenAlias struct {
	Action      model.AliasAction
	NamespaceID model.NamespaceID
	TokenID     model.TokenID
}

func (*TokenAlias) Type() Type { return TypeTokenAlias }

func (b *TokenAlias) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	w.Uint64(uint64(b.NamespaceID.ID))
	w.Uint64(uint64(b.TokenID))
	w.Uint8(uint8(b.Action))
	return nil
}

func (b *TokenAlias) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	b.NamespaceID = model.NamespaceID{ID: model.UInt64(r.Uint64())}
	b.TokenID = model.TokenID(r.Uint64())
	b.Action = model.AliasAction(r.Uint8())
	return r.Err()
}

type tokenAliasDTO struct {
	NamespaceID model.NamespaceID `json:"namespaceId"`
	TokenID     model.TokenID     `json:"tokenId"`
	AliasAction model.AliasAction `json:"aliasAction"`
}

func (b *TokenAlias) readDTO(data []byte, _ *Transaction) error {
	var dto tokenAliasDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	b.NamespaceID, b.TokenID, b.Action = dto.NamespaceID, dto.TokenID, dto.AliasAction
	return nil
}

func (b *TokenAlias) dto(model.NetworkType) (interface{}, error) {
	return tokenAliasDTO{b.NamespaceID, b.TokenID, b.Action}, nil
}

func (b *TokenAlias) resolve(model.Statement, position) (Body, error) { return b, nil }

func (*TokenAlias) shouldResolve() bool { return false }
