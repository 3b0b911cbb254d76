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

// ReceiptType identifies what a receipt records.
type ReceiptType uint16

const (
	ReceiptHarvestFee          ReceiptType = 0x2143
	ReceiptLockHashCreated     ReceiptType = 0x3148
	ReceiptLockHashCompleted   ReceiptType = 0x2248
	ReceiptLockHashExpired     ReceiptType = 0x2348
	ReceiptLockSecretCreated   ReceiptType = 0x3152
	ReceiptLockSecretCompleted ReceiptType = 0x2252
	ReceiptLockSecretExpired   ReceiptType = 0x2352
	ReceiptTokenRentalFee      ReceiptType = 0x124D
	ReceiptNamespaceRentalFee  ReceiptType = 0x134E
	ReceiptTokenExpired        ReceiptType = 0x414D
	ReceiptNamespaceExpired    ReceiptType = 0x414E
	ReceiptNamespaceDeleted    ReceiptType = 0x424E
	ReceiptInflation           ReceiptType = 0x5143
)

// ReceiptKind groups receipt types by the fields they carry.
type ReceiptKind uint8

const (
	BalanceChangeReceipt ReceiptKind = iota
	BalanceTransferReceipt
	ArtifactExpiryReceipt
	InflationReceipt
)

// Kind returns the shape of receipts of type t.
func (t ReceiptType) Kind() (ReceiptKind, error) {
	switch t {
	case ReceiptHarvestFee, ReceiptLockHashCreated, ReceiptLockHashCompleted,
		ReceiptLockHashExpired, ReceiptLockSecretCreated,
		ReceiptLockSecretCompleted, ReceiptLockSecretExpired:
		return BalanceChangeReceipt, nil
	case ReceiptTokenRentalFee, ReceiptNamespaceRentalFee:
		return BalanceTransferReceipt, nil
	case ReceiptTokenExpired, ReceiptNamespaceExpired, ReceiptNamespaceDeleted:
		return ArtifactExpiryReceipt, nil
	case ReceiptInflation:
		return InflationReceipt, nil
	}
	return 0, fmt.Errorf("receipt type %v: not implemented", uint16(t))
}

// Receipt records a side effect of a transaction or block. Which fields are
// set depends on the kind of Type.
type Receipt struct {
	Version uint16
	Type    ReceiptType

	// BalanceChangeReceipt
	TargetAddress Address
	// BalanceTransferReceipt
	SenderAddress    Address
	RecipientAddress Address
	// BalanceChange, BalanceTransfer and Inflation receipts.
	TokenID TokenID
	Amount  UInt64
	// ArtifactExpiryReceipt: a TokenID or a NamespaceID value.
	ArtifactID UInt64
}
