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

// MetadataType tells what a metadata entry is attached to.
type MetadataType uint8

const (
	MetadataAccount   MetadataType = 0
	MetadataToken     MetadataType = 1
	MetadataNamespace MetadataType = 2
)

// MetadataEntry is a key value pair attached to an account, token or
// namespace by SourceAddress.
type MetadataEntry struct {
	RecordID          string
	Version           uint16
	CompositeHash     Bytes32
	SourceAddress     Address
	TargetAddress     Address
	ScopedMetadataKey UInt64
	MetadataType      MetadataType
	// TargetID is a TokenID or NamespaceID and nil for account metadata.
	TargetID UnresolvedTokenID
	Value    []byte
}
