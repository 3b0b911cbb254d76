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

// NamespaceRegistrationType tells root and child namespaces apart.
type NamespaceRegistrationType uint8

const (
	RootNamespace  NamespaceRegistrationType = 0
	ChildNamespace NamespaceRegistrationType = 1
)

// NamespaceInfo is a snapshot of a registered namespace.
type NamespaceInfo struct {
	RecordID         string
	Version          uint16
	Active           bool
	Index            uint32
	RegistrationType NamespaceRegistrationType
	Depth            uint8
	// Levels holds the ids of every level, root first.
	Levels       []NamespaceID
	ParentID     NamespaceID
	OwnerAddress Address
	StartHeight  UInt64
	EndHeight    UInt64
	Alias        Alias
}

// ID returns the id of the deepest level.
func (n NamespaceInfo) ID() NamespaceID {
	if len(n.Levels) == 0 {
		return NamespaceID{}
	}
	return n.Levels[len(n.Levels)-1]
}

func (n NamespaceInfo) IsRoot() bool { return n.RegistrationType == RootNamespace }

// HasAlias returns true if the namespace is linked to an address or token.
func (n NamespaceInfo) HasAlias() bool { return n.Alias.Type != AliasNone }

// NamespaceName is the name of a single namespace level.
type NamespaceName struct {
	NamespaceID NamespaceID
	Name        string
	// ParentID is nil for root namespaces.
	ParentID *NamespaceID
}
