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

import "github.com/bitxorcorp/bitxor-sdk-go/model"

// position locates a transaction within its block as receipt sources do.
type position struct {
	height      model.UInt64
	primaryID   uint32
	secondaryID uint32
}

// inner returns the position of the inner transaction at index of an
// aggregate at p.
func (p position) inner(index int) position {
	return position{height: p.height, primaryID: p.primaryID,
		secondaryID: uint32(index) + 1}
}

func (p position) resolveAddress(st model.Statement,
	adr model.UnresolvedAddress) (model.UnresolvedAddress, error) {
	if adr == nil || !adr.IsAlias() {
		return adr, nil
	}
	resolved, err := st.ResolveAddress(adr, p.height, p.primaryID, p.secondaryID)
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (p position) resolveTokenID(st model.Statement,
	id model.UnresolvedTokenID) (model.UnresolvedTokenID, error) {
	if id == nil || !id.IsAlias() {
		return id, nil
	}
	resolved, err := st.ResolveTokenID(id, p.height, p.primaryID, p.secondaryID)
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (p position) resolveToken(st model.Statement,
	token model.Token) (model.Token, error) {
	id, err := p.resolveTokenID(st, token.ID)
	if err != nil {
		return model.Token{}, err
	}
	return model.NewToken(id, token.Amount), nil
}

// ResolveAliases returns a copy of t with every namespace alias replaced by
// the address or token id it resolved to when t was confirmed. The statement
// must hold the resolution statements of the block at t.Info.Height.
func (t *Transaction) ResolveAliases(st model.Statement) (*Transaction, error) {
	if t.Info == nil {
		return nil, ErrNoTransactionInfo
	}
	pos := position{height: t.Info.Height, primaryID: t.Info.Index + 1}
	body, err := t.Body.resolve(st, pos)
	if err != nil {
		return nil, err
	}
	return t.with(body), nil
}

// ShouldResolve returns true if t holds fields that may be namespace
// aliases.
func (t *Transaction) ShouldResolve() bool {
	return t.Body.shouldResolve()
}
