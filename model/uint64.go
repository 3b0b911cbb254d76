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
	"fmt"
	"strconv"
	"strings"
)

// UInt64 is an unsigned 64 bit value as exchanged with the REST API, where it
// travels as a decimal string (amounts, heights) or as 16 hex digits (ids).
//
// Some clients represent these values as a pair of 32 bit words. The word
// form is supported by NewUInt64FromWords and Words.
type UInt64 uint64

// NewUInt64FromWords joins the lower and higher 32 bit words of a value.
func NewUInt64FromWords(lower, higher uint32) UInt64 {
	return UInt64(uint64(higher)<<32 | uint64(lower))
}

// NewUInt64FromHex parses up to 16 hex digits.
func NewUInt64FromHex(hexStr string) (UInt64, error) {
	if len(hexStr) == 0 || len(hexStr) > 16 {
		return 0, fmt.Errorf("invalid hex length: %q", hexStr)
	}
	v, err := strconv.ParseUint(hexStr, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex: %q", hexStr)
	}
	return UInt64(v), nil
}

// NewUInt64FromNumericString parses a base 10 string.
func NewUInt64FromNumericString(numStr string) (UInt64, error) {
	v, err := strconv.ParseUint(numStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric string: %q", numStr)
	}
	return UInt64(v), nil
}

// Words returns the lower and higher 32 bit words of v.
func (v UInt64) Words() [2]uint32 {
	return [2]uint32{uint32(v), uint32(v >> 32)}
}

// Hex returns v as 16 upper case hex digits.
func (v UInt64) Hex() string {
	return fmt.Sprintf("%016X", uint64(v))
}

// String returns v in base 10.
func (v UInt64) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Compare returns -1, 0 or 1 as v is less than, equal to, or greater than o.
func (v UInt64) Compare(o UInt64) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	}
	return 0
}

// MarshalJSON encodes v as a decimal JSON string.
func (v UInt64) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts a decimal string, a JSON number or a [lower, higher]
// word array.
func (v *UInt64) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) == 0 {
		return fmt.Errorf("%T: empty", v)
	}
	switch s[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("%T: %w", v, err)
		}
		n, err := NewUInt64FromNumericString(str)
		if err != nil {
			return fmt.Errorf("%T: %w", v, err)
		}
		*v = n
	case '[':
		var words []uint32
		if err := json.Unmarshal(data, &words); err != nil {
			return fmt.Errorf("%T: %w", v, err)
		}
		if len(words) != 2 {
			return fmt.Errorf("%T: expected 2 words, got %v", v, len(words))
		}
		*v = NewUInt64FromWords(words[0], words[1])
	default:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%T: invalid number: %v", v, s)
		}
		*v = UInt64(n)
	}
	return nil
}
