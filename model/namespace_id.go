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
	"encoding/binary"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

const (
	namespaceFlag = uint64(1) << 63

	// MaxNamespaceDepth is the number of levels a namespace path may have.
	MaxNamespaceDepth    = 3
	maxNamespaceNameSize = 64
)

var namespaceNameRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// NamespaceID identifies a namespace. FullName is only carried for display
// and debugging and never takes part in comparisons.
type NamespaceID struct {
	ID       UInt64
	FullName string
}

// NewNamespaceID derives the id of the dotted namespace name, e.g. "bitxor.bxr".
func NewNamespaceID(fullName string) (NamespaceID, error) {
	path, err := GenerateNamespacePath(fullName)
	if err != nil {
		return NamespaceID{}, err
	}
	id := path[len(path)-1]
	id.FullName = fullName
	return id, nil
}

// NewNamespaceIDFromHex parses 16 hex digits.
func NewNamespaceIDFromHex(hexStr string) (NamespaceID, error) {
	v, err := NewUInt64FromHex(hexStr)
	if err != nil {
		return NamespaceID{}, fmt.Errorf("namespace id: %w", err)
	}
	return NamespaceID{ID: v}, nil
}

// GenerateNamespacePath returns the ids of every level of fullName, root first.
func GenerateNamespacePath(fullName string) ([]NamespaceID, error) {
	parts := strings.Split(fullName, ".")
	if len(parts) > MaxNamespaceDepth {
		return nil, fmt.Errorf("namespace %q: too many parts", fullName)
	}
	path := make([]NamespaceID, 0, len(parts))
	var parent NamespaceID
	for i, name := range parts {
		if !IsValidNamespaceName(name) {
			return nil, fmt.Errorf("namespace %q: invalid name %q",
				fullName, name)
		}
		parent = NamespaceID{ID: GenerateNamespaceID(parent.ID, name),
			FullName: strings.Join(parts[:i+1], ".")}
		path = append(path, parent)
	}
	return path, nil
}

// GenerateNamespaceID derives the id of name registered under parentID. Root
// namespaces use a zero parentID.
func GenerateNamespaceID(parentID UInt64, name string) UInt64 {
	h := sha3.New256()
	var parent [8]byte
	binary.LittleEndian.PutUint64(parent[:], uint64(parentID))
	h.Write(parent[:])
	h.Write([]byte(name))
	digest := h.Sum(nil)
	return UInt64(binary.LittleEndian.Uint64(digest[:8]) | namespaceFlag)
}

// IsValidNamespaceName reports whether name is a valid single namespace
// level.
func IsValidNamespaceName(name string) bool {
	return len(name) <= maxNamespaceNameSize && namespaceNameRegexp.MatchString(name)
}

func (n NamespaceID) Hex() string { return n.ID.Hex() }

// Equal compares ids only.
func (n NamespaceID) Equal(o NamespaceID) bool {
	return n.ID == o.ID
}

func (n NamespaceID) String() string {
	if n.FullName != "" {
		return n.FullName
	}
	return n.Hex()
}

// MarshalJSON encodes n as its hex form.
func (n NamespaceID) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Hex())
}

// UnmarshalJSON decodes the hex form.
func (n *NamespaceID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%T: %w", n, err)
	}
	id, err := NewNamespaceIDFromHex(str)
	if err != nil {
		return err
	}
	*n = id
	return nil
}
