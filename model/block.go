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

// BlockType tells nemesis, normal and importance blocks apart.
type BlockType uint16

const (
	NemesisBlock    BlockType = 0x8043
	NormalBlock     BlockType = 0x8143
	ImportanceBlock BlockType = 0x8243
)

// BlockHeader holds the fields shared by stored and freshly harvested blocks.
type BlockHeader struct {
	Size                  uint32
	Signature             Bytes
	Signer                PublicAccount
	Version               uint8
	NetworkType           NetworkType
	Type                  BlockType
	Height                UInt64
	Timestamp             UInt64
	Difficulty            UInt64
	FeeMultiplier         uint32
	PreviousBlockHash     Bytes32
	BlockTransactionsHash Bytes32
	BlockReceiptsHash     Bytes32
	StateHash             Bytes32
	ProofGamma            Bytes32
	ProofScalar           Bytes32
	ProofVerificationHash Bytes
	BeneficiaryAddress    Address
}

// BlockInfo is a stored block with its metadata.
type BlockInfo struct {
	RecordID string
	BlockHeader

	Hash                   Bytes32
	GenerationHash         Bytes32
	TotalFee               UInt64
	TotalTransactionsCount uint32
	TransactionsCount      uint32
	StatementsCount        uint32

	StateHashSubCacheMerkleRoots []Bytes32
}

// NewBlock is a block pushed by the listener as it is harvested.
type NewBlock struct {
	BlockHeader

	Hash           Bytes32
	GenerationHash Bytes32
}

// FinalizedBlock identifies the latest block finalized by voting.
type FinalizedBlock struct {
	FinalizationEpoch uint32
	FinalizationPoint uint32
	Height            UInt64
	Hash              Bytes32
}

// ChainInfo is the current state of the chain.
type ChainInfo struct {
	Height               UInt64
	ScoreHigh            UInt64
	ScoreLow             UInt64
	LatestFinalizedBlock FinalizedBlock
}

// MerklePathItem is one step of a merkle proof.
type MerklePathItem struct {
	// Position is "left" or "right".
	Position string
	Hash     Bytes32
}

// MerkleProofInfo proves that a transaction is part of a block.
type MerkleProofInfo struct {
	MerklePath []MerklePathItem
}
