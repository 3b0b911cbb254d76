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
	"errors"

	"github.com/bitxorcorp/bitxor-sdk-go/internal/catbuffer"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
)

var (
	errMissingAddress = errors.New("missing address")
	errMissingTokenID = errors.New("missing token id")
)

func writeAddress(w *catbuffer.Writer, adr model.UnresolvedAddress,
	network model.NetworkType) error {
	if adr == nil {
		return errMissingAddress
	}
	raw := adr.UnresolvedBytes(network)
	w.Bytes(raw[:])
	return nil
}

func readAddress(r *catbuffer.Reader) (model.UnresolvedAddress, error) {
	data := r.Bytes(catbuffer.AddressSize)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return model.NewUnresolvedAddressFromBytes(data)
}

func writeAddresses(w *catbuffer.Writer, list []model.UnresolvedAddress,
	network model.NetworkType) error {
	for _, adr := range list {
		if err := writeAddress(w, adr, network); err != nil {
			return err
		}
	}
	return nil
}

func readAddresses(r *catbuffer.Reader, n int) ([]model.UnresolvedAddress, error) {
	list := make([]model.UnresolvedAddress, n)
	for i := range list {
		adr, err := readAddress(r)
		if err != nil {
			return nil, err
		}
		list[i] = adr
	}
	return list, nil
}

func writeTokenID(w *catbuffer.Writer, id model.UnresolvedTokenID) error {
	if id == nil {
		return errMissingTokenID
	}
	w.Uint64(uint64(id.Value()))
	return nil
}

func readTokenID(r *catbuffer.Reader) model.UnresolvedTokenID {
	return model.NewUnresolvedTokenID(model.UInt64(r.Uint64()))
}

func writeToken(w *catbuffer.Writer, token model.Token) error {
	if err := writeTokenID(w, token.ID); err != nil {
		return err
	}
	w.Uint64(uint64(token.Amount))
	return nil
}

func readToken(r *catbuffer.Reader) model.Token {
	id := readTokenID(r)
	return model.NewToken(id, model.UInt64(r.Uint64()))
}

func resolveAddresses(st model.Statement, pos position,
	list []model.UnresolvedAddress) ([]model.UnresolvedAddress, error) {
	if list == nil {
		return nil, nil
	}
	resolved := make([]model.UnresolvedAddress, len(list))
	for i, adr := range list {
		r, err := pos.resolveAddress(st, adr)
		if err != nil {
			return nil, err
		}
		resolved[i] = r
	}
	return resolved, nil
}

func resolveTokenIDs(st model.Statement, pos position,
	list []model.UnresolvedTokenID) ([]model.UnresolvedTokenID, error) {
	if list == nil {
		return nil, nil
	}
	resolved := make([]model.UnresolvedTokenID, len(list))
	for i, id := range list {
		r, err := pos.resolveTokenID(st, id)
		if err != nil {
			return nil, err
		}
		resolved[i] = r
	}
	return resolved, nil
}

func anyAddressAlias(list ...model.UnresolvedAddress) bool {
	for _, adr := range list {
		if adr != nil && adr.IsAlias() {
			return true
		}
	}
	return false
}

func anyTokenAlias(list ...model.UnresolvedTokenID) bool {
	for _, id := range list {
		if id != nil && id.IsAlias() {
			return true
		}
	}
	return false
}
