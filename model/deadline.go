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

import (
	"encoding/json"
	"time"
)

// Deadline is the number of milliseconds elapsed since the network epoch
// after which a transaction may no longer be included in a block.
type Deadline UInt64

// EmptyDeadline is used by embedded transactions, which carry no deadline of
// their own.
const EmptyDeadline Deadline = 0

// NewDeadline returns the deadline d from now on a network whose epoch starts
// epochAdjustment seconds after the Unix epoch.
func NewDeadline(epochAdjustment int64, d time.Duration) Deadline {
	ms := time.Now().Add(d).UnixMilli() - epochAdjustment*1000
	if ms < 0 {
		return EmptyDeadline
	}
	return Deadline(ms)
}

// Time converts d to wall clock time.
func (d Deadline) Time(epochAdjustment int64) time.Time {
	return time.UnixMilli(int64(d) + epochAdjustment*1000)
}

func (d Deadline) String() string { return UInt64(d).String() }

func (d Deadline) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Deadline) UnmarshalJSON(data []byte) error {
	return (*UInt64)(d).UnmarshalJSON(data)
}
