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

func writeRestrictionCounts(w *catbuffer.Writer,
	flags model.AccountRestrictionFlags, additions, deletions int) error {
	if additions > 0xFF || deletions > 0xFF {
		return fmt.Errorf("too many restriction modifications")
	}
	w.Uint16(uint16(flags))
	w.Uint8(uint8(additions))
	w.Uint8(uint8(deletions))
	w.Uint32(0)
	return nil
}

func readRestrictionCounts(r *catbuffer.Reader) (model.AccountRestrictionFlags, int, int) {
	flags := model.AccountRestrictionFlags(r.Uint16())
	additions := int(r.Uint8())
	deletions := int(r.Uint8())
	r.Skip(4)
	return flags, additions, deletions
}

// AccountAddressRestriction allows or blocks transactions to or from
// addresses.
type AccountAddressRestriction struct {
	Flags     model.AccountRestrictionFlags
	Additions []model.UnresolvedAddress
	Deletions []model.UnresolvedAddress
}

func (*AccountAddressRestriction) Type() Type { return TypeAccountAddressRestriction }

func (b *AccountAddressRestriction) writePayload(w *catbuffer.Writer, network model.NetworkType) error {
	if err := writeRestrictionCounts(w, b.Flags,
		len(b.Additions), len(b.Deletions)); err != nil {
		return err
	}
	if err := writeAddresses(w, b.Additions, network); err != nil {
		return err
	}
	return writeAddresses(w, b.Deletions, network)
}

func (b *AccountAddressRestriction) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	var additions, deletions int
	b.Flags, additions, deletions = readRestrictionCounts(r)
	var err error
	if b.Additions, err = readAddresses(r, additions); err != nil {
		return err
	}
	b.Deletions, err = readAddresses(r, deletions)
	return err
}

type accountAddressRestrictionDTO struct {
	RestrictionFlags     model.AccountRestrictionFlags `json:"restrictionFlags"`
	RestrictionAdditions []json.RawMessage             `json:"restrictionAdditions"`
	RestrictionDeletions []json.RawMessage             `json:"restrictionDeletions"`
}

func (b *AccountAddressRestriction) readDTO(data []byte, _ *Transaction) error {
	var dto accountAddressRestrictionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	b.Flags = dto.RestrictionFlags
	var err error
	if b.Additions, err = extractRecipients(dto.RestrictionAdditions); err != nil {
		return err
	}
	b.Deletions, err = extractRecipients(dto.RestrictionDeletions)
	return err
}

func (b *AccountAddressRestriction) dto(network model.NetworkType) (interface{}, error) {
	additions, err := addressesDTO(b.Additions, network)
	if err != nil {
		return nil, err
	}
	deletions, err := addressesDTO(b.Deletions, network)
	if err != nil {
		return nil, err
	}
	return struct {
		RestrictionFlags     model.AccountRestrictionFlags `json:"restrictionFlags"`
		RestrictionAdditions []string                      `json:"restrictionAdditions"`
		RestrictionDeletions []string                      `json:"restrictionDeletions"`
	}{b.Flags, additions, deletions}, nil
}

func (b *AccountAddressRestriction) resolve(st model.Statement, pos position) (Body, error) {
	additions, err := resolveAddresses(st, pos, b.Additions)
	if err != nil {
		return nil, err
	}
	deletions, err := resolveAddresses(st, pos, b.Deletions)
	if err != nil {
		return nil, err
	}
	return &AccountAddressRestriction{Flags: b.Flags,
		Additions: additions, Deletions: deletions}, nil
}

func (b *AccountAddressRestriction) shouldResolve() bool {
	return anyAddressAlias(b.Additions...) || anyAddressAlias(b.Deletions...)
}

// AccountTokenRestriction allows or blocks receiving tokens.
type AccountTokenRestriction struct {
	Flags     model.AccountRestrictionFlags
	Additions []model.UnresolvedTokenID
	Deletions []model.UnresolvedTokenID
}

func (*AccountTokenRestriction) Type() Type { return TypeAccountTokenRestriction }

func (b *AccountTokenRestriction) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	if err := writeRestrictionCounts(w, b.Flags,
		len(b.Additions), len(b.Deletions)); err != nil {
		return err
	}
	for _, list := range [][]model.UnresolvedTokenID{b.Additions, b.Deletions} {
		for _, id := range list {
			if err := writeTokenID(w, id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *AccountTokenRestriction) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	var additions, deletions int
	b.Flags, additions, deletions = readRestrictionCounts(r)
	b.Additions = make([]model.UnresolvedTokenID, additions)
	for i := range b.Additions {
		b.Additions[i] = readTokenID(r)
	}
	b.Deletions = make([]model.UnresolvedTokenID, deletions)
	for i := range b.Deletions {
		b.Deletions[i] = readTokenID(r)
	}
	return r.Err()
}

type accountTokenRestrictionDTO struct {
	RestrictionFlags     model.AccountRestrictionFlags `json:"restrictionFlags"`
	RestrictionAdditions []string                      `json:"restrictionAdditions"`
	RestrictionDeletions []string                      `json:"restrictionDeletions"`
}

func extractTokenIDs(list []string) ([]model.UnresolvedTokenID, error) {
	ids := make([]model.UnresolvedTokenID, len(list))
	for i, s := range list {
		id, err := extractTokenID(s)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func tokenIDsDTO(list []model.UnresolvedTokenID) ([]string, error) {
	out := make([]string, len(list))
	for i, id := range list {
		s, err := tokenIDDTO(id)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func (b *AccountTokenRestriction) readDTO(data []byte, _ *Transaction) error {
	var dto accountTokenRestrictionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	b.Flags = dto.RestrictionFlags
	var err error
	if b.Additions, err = extractTokenIDs(dto.RestrictionAdditions); err != nil {
		return err
	}
	b.Deletions, err = extractTokenIDs(dto.RestrictionDeletions)
	return err
}

func (b *AccountTokenRestriction) dto(model.NetworkType) (interface{}, error) {
	additions, err := tokenIDsDTO(b.Additions)
	if err != nil {
		return nil, err
	}
	deletions, err := tokenIDsDTO(b.Deletions)
	if err != nil {
		return nil, err
	}
	return accountTokenRestrictionDTO{b.Flags, additions, deletions}, nil
}

func (b *AccountTokenRestriction) resolve(st model.Statement, pos position) (Body, error) {
	additions, err := resolveTokenIDs(st, pos, b.Additions)
	if err != nil {
		return nil, err
	}
	deletions, err := resolveTokenIDs(st, pos, b.Deletions)
	if err != nil {
		return nil, err
	}
	return &AccountTokenRestriction{Flags: b.Flags,
		Additions: additions, Deletions: deletions}, nil
}

func (b *AccountTokenRestriction) shouldResolve() bool {
	return anyTokenAlias(b.Additions...) || anyTokenAlias(b.Deletions...)
}

// AccountOperationRestriction allows or blocks announcing transaction types.
type AccountOperationRestriction struct {
	Flags     model.AccountRestrictionFlags
	Additions []Type
	Deletions []Type
}

func (*AccountOperationRestriction) Type() Type { return TypeAccountOperationRestriction }

func (b *AccountOperationRestriction) writePayload(w *catbuffer.Writer, _ model.NetworkType) error {
	if err := writeRestrictionCounts(w, b.Flags,
		len(b.Additions), len(b.Deletions)); err != nil {
		return err
	}
	for _, t := range b.Additions {
		w.Uint16(uint16(t))
	}
	for _, t := range b.Deletions {
		w.Uint16(uint16(t))
	}
	return nil
}

func (b *AccountOperationRestriction) readPayload(r *catbuffer.Reader, _ *Transaction) error {
	var additions, deletions int
	b.Flags, additions, deletions = readRestrictionCounts(r)
	b.Additions = make([]Type, additions)
	for i := range b.Additions {
		b.Additions[i] = Type(r.Uint16())
	}
	b.Deletions = make([]Type, deletions)
	for i := range b.Deletions {
		b.Deletions[i] = Type(r.Uint16())
	}
	return r.Err()
}

type accountOperationRestrictionDTO struct {
	RestrictionFlags     model.AccountRestrictionFlags `json:"restrictionFlags"`
	RestrictionAdditions []Type                        `json:"restrictionAdditions"`
	RestrictionDeletions []Type                        `json:"restrictionDeletions"`
}

func (b *AccountOperationRestriction) readDTO(data []byte, _ *Transaction) error {
	var dto accountOperationRestrictionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	b.Flags = dto.RestrictionFlags
	b.Additions = append([]Type{}, dto.RestrictionAdditions...)
	b.Deletions = append([]Type{}, dto.RestrictionDeletions...)
	return nil
}

func (b *AccountOperationRestriction) dto(model.NetworkType) (interface{}, error) {
	return accountOperationRestrictionDTO{
		RestrictionFlags:     b.Flags,
		RestrictionAdditions: append([]Type{}, b.Additions...),
		RestrictionDeletions: append([]Type{}, b.Deletions...),
	}, nil
}

func (b *AccountOperationRestriction) resolve(model.Statement, position) (Body, error) {
	return b, nil
}

func (*AccountOperationRestriction) shouldResolve() bool { return false }
