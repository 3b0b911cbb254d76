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

// TransactionGroup is the stage a transaction is in.
type TransactionGroup string

const (
	TransactionUnconfirmed TransactionGroup = "unconfirmed"
	TransactionConfirmed   TransactionGroup = "confirmed"
	TransactionPartial     TransactionGroup = "partial"
	TransactionFailed      TransactionGroup = "failed"
)

// TransactionStatus is the status of an announced transaction.
type TransactionStatus struct {
	Group    TransactionGroup
	Code     string
	Hash     Bytes32
	Deadline Deadline
	// Height is zero until the transaction is confirmed.
	Height UInt64
}

// TransactionStatusError is pushed by the listener when the node rejects a
// transaction announced by a subscribed address.
type TransactionStatusError struct {
	Address  Address
	Hash     Bytes32
	Code     string
	Deadline Deadline
}

func (e TransactionStatusError) Error() string {
	return e.Code + ": " + e.Hash.String()
}
