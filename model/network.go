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
	"fmt"
	"strconv"
)

// NetworkType identifies a Bitxor network. It is the first byte of every
// address on that network.
type NetworkType uint8

const (
	MainNet     NetworkType = 104
	TestNet     NetworkType = 152
	Private     NetworkType = 120
	PrivateTest NetworkType = 168
	Mijin       NetworkType = 96
	MijinTest   NetworkType = 144
)

var networkNames = map[NetworkType]string{
	MainNet:     "mainnet",
	TestNet:     "testnet",
	Private:     "private",
	PrivateTest: "privatetest",
	Mijin:       "mijin",
	MijinTest:   "mijintest",
}

// NetworkTypeFromName parses the network identifier returned by the node,
// either by name or by numeric value.
func NetworkTypeFromName(name string) (NetworkType, error) {
	for n, s := range networkNames {
		if s == name {
			return n, nil
		}
	}
	if v, err := strconv.ParseUint(name, 10, 8); err == nil {
		if _, ok := networkNames[NetworkType(v)]; ok {
			return NetworkType(v), nil
		}
	}
	return 0, fmt.Errorf("unknown network type: %q", name)
}

// IsValid returns true if n is a known network type.
func (n NetworkType) IsValid() bool {
	_, ok := networkNames[n]
	return ok
}

func (n NetworkType) String() string {
	if s, ok := networkNames[n]; ok {
		return s
	}
	return fmt.Sprintf("custom: %d", uint8(n))
}
