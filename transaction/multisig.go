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

// MultisigAccountModification changes the cosignatories and the approval
// and removal thresholds of a multisig account.
type MultisigAccountModification struct {
	MinApprovalDelta int8
	MinRemovalDelta  int8
	AddressAdditions []model.UnresolvedAddress
	AddressDeletions []model.UnresolvedAddress
}

func (*MultisigAccountModification) Type() Type { return TypeMultisigAccountModification }

func (b *MultisigAccountModification) writePayload(w *catbuffer.Writer, network model.NetworkType) error {
	if len(b.AddressAdditions) > 0xFF || len(b.AddressDeletions) > 0xFF {
		return fmt.Errorf("too many modifications")
	}
	w.Int8(b.MinRemovalDelta)
	w.Int8(b.MinApprovalDelta)
	w.Uint8(uint8(len(b.AddressAdditions)))
	w.Uint8(uint8(len(b.AddressDeletions)))
	w.Uint32(0)
	if err := writeAddresses(w, b.AddressAdditions, network); err != nil {
		return err
	}
	return writeAddresses(w, b.AddressDeletions, network)
}

func (b *MultisigAccountModification) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	b.MinRemovalDelta = r.Int8()
	b.MinApprovalDelta = r.Int8()
	additions := int(r.Uint8())
	deletions := int(r.Uint8())
	r.Skip(4)
	var err error
	if b.AddressAdditions, err = readAddresses(r, additions); err != nil {
		return err
	}
	b.AddressDeletions, err = readAddresses(r, deletions)
	return err
}

type multisigAccountModificationDTO struct {
	MinApprovalDelta int8              `json:"minApprovalDelta"`
	MinRemovalDelta  int8              `json:"minRemovalDelta"`
	AddressAdditions []json.RawMessage `json:"addressAdditions"`
	AddressDeletions []json.RawMessage `json:"addressDeletions"`
}

func (b *MultisigAccountModification) readDTO(data []byte, _ *Transaction) error {
	var dto multisigAccountModificationDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	b.MinApprovalDelta, b.MinRemovalDelta = dto.MinApprovalDelta, dto.MinRemovalDelta
	var err error
	if b.AddressAdditions, err = extractRecipients(dto.AddressAdditions); err != nil {
		return err
	}
	b.AddressDeletions, err = extractRecipients(dto.AddressDeletions)
	return err
}

func (b *MultisigAccountModification) dto(network model.NetworkType) (interface{}, error) {
	additions, err := addressesDTO(b.AddressAdditions, network)
	if err != nil {
		return nil, err
	}
	deletions, err := addressesDTO(b.AddressDeletions, network)
	if err != nil {
		return nil, err
	}
	return struct {
		MinApprovalDelta int8     `json:"minApprovalDelta"`
		MinRemovalDelta  int8     `json:"minRemovalDelta"`
		AddressAdditions []string `json:"addressAdditions"`
		AddressDeletions []string `json:"addressDeletions"`
	}{b.MinApprovalDelta, b.MinRemovalDelta, additions, deletions}, nil
}

func (b *MultisigAccountModification) resolve(st model.Statement, pos position) (Body, error) {
	additions, err := resolveAddresses(st, pos, b.AddressAdditions)
	if err != nil {
		return nil, err
	}
	deletions, err := resolveAddresses(st, pos, b.AddressDeletions)
	if err != nil {
		return nil, err
	}
	return &MultisigAccountModification{
		MinApprovalDelta: b.MinApprovalDelta,
		MinRemovalDelta:  b.MinRemovalDelta,
		AddressAdditions: additions,
		AddressDeletions: deletions,
	}, nil
}

func (b *MultisigAccountModification) shouldResolve() bool {
	return anyAddressAlias(b.AddressAdditions...) ||
		anyAddressAlias(b.AddressDeletions...)
}
