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

import "sort"

// MultisigAccountInfo describes the cosignatories of an account and the
// multisig accounts it is a cosignatory of.
type MultisigAccountInfo struct {
	Version              uint16
	AccountAddress       Address
	MinApproval          uint32
	MinRemoval           uint32
	CosignatoryAddresses []Address
	MultisigAddresses    []Address
}

// IsMultisig returns true if the account requires cosignatures.
func (m MultisigAccountInfo) IsMultisig() bool {
	return m.MinApproval != 0 && m.MinRemoval != 0
}

// HasCosigner returns true if adr cosigns for the account.
func (m MultisigAccountInfo) HasCosigner(adr Address) bool {
	return containsAddress(m.CosignatoryAddresses, adr)
}

// IsCosignerOfMultisigAccount returns true if the account cosigns for adr.
func (m MultisigAccountInfo) IsCosignerOfMultisigAccount(adr Address) bool {
	return containsAddress(m.MultisigAddresses, adr)
}

func containsAddress(list []Address, adr Address) bool {
	for _, a := range list {
		if a.Equal(adr) {
			return true
		}
	}
	return false
}

// MultisigAccountGraphInfo maps graph levels to the multisig entries at that
// level. Level 0 is the queried account, negative levels are its
// cosignatories and positive levels the accounts it cosigns for.
type MultisigAccountGraphInfo struct {
	Entries map[int][]MultisigAccountInfo
}

// Levels returns the graph levels in ascending order.
func (g MultisigAccountGraphInfo) Levels() []int {
	levels := make([]int, 0, len(g.Entries))
	for l := range g.Entries {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}
