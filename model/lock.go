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

// LockStatus tells whether a lock was spent.
type LockStatus uint8

const (
	LockUnused LockStatus = 0
	LockUsed   LockStatus = 1
)

// LockHashAlgorithm is the hash used to verify secret proofs.
type LockHashAlgorithm uint8

const (
	LockHashSHA3_256 LockHashAlgorithm = 0
	LockHashHash160  LockHashAlgorithm = 1
	LockHashHash256  LockHashAlgorithm = 2
)

func (a LockHashAlgorithm) String() string {
	switch a {
	case LockHashSHA3_256:
		return "sha3_256"
	case LockHashHash160:
		return "hash_160"
	case LockHashHash256:
		return "hash_256"
	}
	return fmt.Sprintf("LockHashAlgorithm(%d)", uint8(a))
}

// HashLockInfo is a snapshot of funds locked for an aggregate bonded
// transaction.
type HashLockInfo struct {
	RecordID     string
	Version      uint16
	OwnerAddress Address
	TokenID      TokenID
	Amount       UInt64
	EndHeight    UInt64
	Status       LockStatus
	Hash         Bytes32
}

// SecretLockInfo is a snapshot of funds locked until a proof is revealed.
type SecretLockInfo struct {
	RecordID         string
	Version          uint16
	OwnerAddress     Address
	TokenID          TokenID
	Amount           UInt64
	EndHeight        UInt64
	Status           LockStatus
	HashAlgorithm    LockHashAlgorithm
	Secret           Bytes32
	RecipientAddress Address
	CompositeHash    Bytes32
}
