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

package api

import (
	"encoding/json"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
)

// Pagination is the paging envelope of every search endpoint.
type Pagination struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// ResultPage is a page of records of a search endpoint.
type ResultPage[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type TokenDTO struct {
	ID     string       `json:"id"`
	Amount model.UInt64 `json:"amount"`
}

type ResultAccountInfo struct {
	ID      string     `json:"id"`
	Account AccountDTO `json:"account"`
}

type AccountDTO struct {
	Version                uint16                    `json:"version"`
	Address                model.Address             `json:"address"`
	AddressHeight          model.UInt64              `json:"addressHeight"`
	PublicKey              model.Bytes32             `json:"publicKey"`
	PublicKeyHeight        model.UInt64              `json:"publicKeyHeight"`
	AccountType            model.AccountType         `json:"accountType"`
	SupplementalPublicKeys SupplementalPublicKeysDTO `json:"supplementalPublicKeys"`
	ActivityBuckets        []ActivityBucketDTO       `json:"activityBuckets"`
	Tokens                 []TokenDTO                `json:"tokens"`
	Importance             model.UInt64              `json:"importance"`
	ImportanceHeight       model.UInt64              `json:"importanceHeight"`
}

type PublicKeyDTO struct {
	PublicKey model.Bytes32 `json:"publicKey"`
}

type VotingKeyDTO struct {
	PublicKey  model.Bytes32 `json:"publicKey"`
	StartEpoch uint32        `json:"startEpoch"`
	EndEpoch   uint32        `json:"endEpoch"`
}

type SupplementalPublicKeysDTO struct {
	Linked *PublicKeyDTO `json:"linked,omitempty"`
	Node   *PublicKeyDTO `json:"node,omitempty"`
	VRF    *PublicKeyDTO `json:"vrf,omitempty"`
	Voting *struct {
		PublicKeys []VotingKeyDTO `json:"publicKeys"`
	} `json:"voting,omitempty"`
}

type ActivityBucketDTO struct {
	StartHeight      model.UInt64 `json:"startHeight"`
	TotalFeesPaid    model.UInt64 `json:"totalFeesPaid"`
	BeneficiaryCount uint32       `json:"beneficiaryCount"`
	RawScore         model.UInt64 `json:"rawScore"`
}

// ParamsAddresses is the body of the batch account and name lookups.
type ParamsAddresses struct {
	Addresses []string `json:"addresses"`
}

type ParamsTokenIDs struct {
	TokenIDs []string `json:"tokenIds"`
}

type ParamsNamespaceIDs struct {
	NamespaceIDs []string `json:"namespaceIds"`
}

type ParamsTransactionIDs struct {
	TransactionIDs []string `json:"transactionIds"`
}

type ParamsTransactionHashes struct {
	Hashes []string `json:"hashes"`
}

// ParamsPayload is the body of the announce endpoints.
type ParamsPayload struct {
	Payload string `json:"payload"`
}

type ParamsCosignature struct {
	ParentHash      model.Bytes32 `json:"parentHash"`
	Signature       model.Bytes   `json:"signature"`
	SignerPublicKey model.Bytes32 `json:"signerPublicKey"`
	Version         model.UInt64  `json:"version"`
}

type ResultAnnounce struct {
	Message string `json:"message"`
}

type ResultMultisigAccountInfo struct {
	Multisig MultisigDTO `json:"multisig"`
}

type MultisigDTO struct {
	Version              uint16          `json:"version"`
	AccountAddress       model.Address   `json:"accountAddress"`
	MinApproval          uint32          `json:"minApproval"`
	MinRemoval           uint32          `json:"minRemoval"`
	CosignatoryAddresses []model.Address `json:"cosignatoryAddresses"`
	MultisigAddresses    []model.Address `json:"multisigAddresses"`
}

type ResultMultisigAccountGraph []struct {
	Level           int                         `json:"level"`
	MultisigEntries []ResultMultisigAccountInfo `json:"multisigEntries"`
}

type ResultNamespaceInfo struct {
	ID   string `json:"id"`
	Meta struct {
		Active bool   `json:"active"`
		Index  uint32 `json:"index"`
	} `json:"meta"`
	Namespace NamespaceDTO `json:"namespace"`
}

type NamespaceDTO struct {
	Version          uint16                          `json:"version"`
	RegistrationType model.NamespaceRegistrationType `json:"registrationType"`
	Depth            uint8                           `json:"depth"`
	Level0           *model.NamespaceID              `json:"level0,omitempty"`
	Level1           *model.NamespaceID              `json:"level1,omitempty"`
	Level2           *model.NamespaceID              `json:"level2,omitempty"`
	Alias            AliasDTO                        `json:"alias"`
	ParentID         model.NamespaceID               `json:"parentId"`
	OwnerAddress     model.Address                   `json:"ownerAddress"`
	StartHeight      model.UInt64                    `json:"startHeight"`
	EndHeight        model.UInt64                    `json:"endHeight"`
}

type AliasDTO struct {
	Type    model.AliasType `json:"type"`
	TokenID *model.TokenID  `json:"tokenId,omitempty"`
	Address *model.Address  `json:"address,omitempty"`
}

type NamespaceNameDTO struct {
	ID       model.NamespaceID  `json:"id"`
	Name     string             `json:"name"`
	ParentID *model.NamespaceID `json:"parentId,omitempty"`
}

type ResultAccountsNames struct {
	AccountNames []struct {
		Address model.Address `json:"address"`
		Names   []string      `json:"names"`
	} `json:"accountNames"`
}

type ResultTokensNames struct {
	TokenNames []struct {
		TokenID model.TokenID `json:"tokenId"`
		Names   []string      `json:"names"`
	} `json:"tokenNames"`
}

type ResultTokenInfo struct {
	ID    string       `json:"id"`
	Token TokenInfoDTO `json:"token"`
}

type TokenInfoDTO struct {
	Version      uint16           `json:"version"`
	ID           model.TokenID    `json:"id"`
	Supply       model.UInt64     `json:"supply"`
	StartHeight  model.UInt64     `json:"startHeight"`
	OwnerAddress model.Address    `json:"ownerAddress"`
	Revision     uint32           `json:"revision"`
	Flags        model.TokenFlags `json:"flags"`
	Divisibility uint8            `json:"divisibility"`
	Duration     model.UInt64     `json:"duration"`
}

type ResultMetadataEntry struct {
	ID            string           `json:"id"`
	MetadataEntry MetadataEntryDTO `json:"metadataEntry"`
}

type MetadataEntryDTO struct {
	Version           uint16             `json:"version"`
	CompositeHash     model.Bytes32      `json:"compositeHash"`
	SourceAddress     model.Address      `json:"sourceAddress"`
	TargetAddress     model.Address      `json:"targetAddress"`
	ScopedMetadataKey string             `json:"scopedMetadataKey"`
	TargetID          string             `json:"targetId,omitempty"`
	MetadataType      model.MetadataType `json:"metadataType"`
	Value             model.Bytes        `json:"value"`
}

type ResultHashLockInfo struct {
	ID   string      `json:"id"`
	Lock HashLockDTO `json:"lock"`
}

type HashLockDTO struct {
	Version      uint16           `json:"version"`
	OwnerAddress model.Address    `json:"ownerAddress"`
	TokenID      model.TokenID    `json:"tokenId"`
	Amount       model.UInt64     `json:"amount"`
	EndHeight    model.UInt64     `json:"endHeight"`
	Status       model.LockStatus `json:"status"`
	Hash         model.Bytes32    `json:"hash"`
}

type ResultSecretLockInfo struct {
	ID   string        `json:"id"`
	Lock SecretLockDTO `json:"lock"`
}

type SecretLockDTO struct {
	Version          uint16                  `json:"version"`
	OwnerAddress     model.Address           `json:"ownerAddress"`
	TokenID          model.TokenID           `json:"tokenId"`
	Amount           model.UInt64            `json:"amount"`
	EndHeight        model.UInt64            `json:"endHeight"`
	Status           model.LockStatus        `json:"status"`
	HashAlgorithm    model.LockHashAlgorithm `json:"hashAlgorithm"`
	Secret           model.Bytes32           `json:"secret"`
	RecipientAddress model.Address           `json:"recipientAddress"`
	CompositeHash    model.Bytes32           `json:"compositeHash"`
}

type ResultAccountRestrictions struct {
	ID                  string `json:"id"`
	AccountRestrictions struct {
		Version      uint16        `json:"version"`
		Address      model.Address `json:"address"`
		Restrictions []struct {
			RestrictionFlags model.AccountRestrictionFlags `json:"restrictionFlags"`
			Values           []json.RawMessage             `json:"values"`
		} `json:"restrictions"`
	} `json:"accountRestrictions"`
}

type ResultTokenRestriction struct {
	ID                    string `json:"id"`
	TokenRestrictionEntry struct {
		Version       uint16                          `json:"version"`
		CompositeHash model.Bytes32                   `json:"compositeHash"`
		EntryType     model.TokenRestrictionEntryType `json:"entryType"`
		TokenID       model.TokenID                   `json:"tokenId"`
		TargetAddress *model.Address                  `json:"targetAddress,omitempty"`
		Restrictions  []TokenRestrictionItemDTO       `json:"restrictions"`
	} `json:"tokenRestrictionEntry"`
}

// TokenRestrictionItemDTO is either an address restriction, with Value set,
// or a global restriction, with Restriction set.
type TokenRestrictionItemDTO struct {
	Key         model.UInt64  `json:"key"`
	Value       *model.UInt64 `json:"value,omitempty"`
	Restriction *struct {
		ReferenceTokenID model.TokenID              `json:"referenceTokenId"`
		RestrictionValue model.UInt64               `json:"restrictionValue"`
		RestrictionType  model.TokenRestrictionType `json:"restrictionType"`
	} `json:"restriction,omitempty"`
}

type ResultBlockInfo struct {
	ID    string       `json:"id"`
	Meta  BlockMetaDTO `json:"meta"`
	Block BlockDTO     `json:"block"`
}

type BlockMetaDTO struct {
	Hash                         model.Bytes32   `json:"hash"`
	GenerationHash               model.Bytes32   `json:"generationHash"`
	TotalFee                     model.UInt64    `json:"totalFee"`
	TotalTransactionsCount       uint32          `json:"totalTransactionsCount"`
	StateHashSubCacheMerkleRoots []model.Bytes32 `json:"stateHashSubCacheMerkleRoots"`
	TransactionsCount            uint32          `json:"transactionsCount"`
	StatementsCount              uint32          `json:"statementsCount"`
}

type BlockDTO struct {
	Size                  uint32            `json:"size"`
	Signature             model.Bytes       `json:"signature"`
	SignerPublicKey       model.Bytes32     `json:"signerPublicKey"`
	Version               uint8             `json:"version"`
	Network               model.NetworkType `json:"network"`
	Type                  model.BlockType   `json:"type"`
	Height                model.UInt64      `json:"height"`
	Timestamp             model.UInt64      `json:"timestamp"`
	Difficulty            model.UInt64      `json:"difficulty"`
	ProofGamma            model.Bytes32     `json:"proofGamma"`
	ProofVerificationHash model.Bytes       `json:"proofVerificationHash"`
	ProofScalar           model.Bytes32     `json:"proofScalar"`
	PreviousBlockHash     model.Bytes32     `json:"previousBlockHash"`
	TransactionsHash      model.Bytes32     `json:"transactionsHash"`
	ReceiptsHash          model.Bytes32     `json:"receiptsHash"`
	StateHash             model.Bytes32     `json:"stateHash"`
	BeneficiaryAddress    model.Address     `json:"beneficiaryAddress"`
	FeeMultiplier         uint32            `json:"feeMultiplier"`
}

type ResultMerkleProof struct {
	MerklePath []struct {
		Hash     model.Bytes32 `json:"hash"`
		Position string        `json:"position"`
	} `json:"merklePath"`
}

type FinalizedBlockDTO struct {
	FinalizationEpoch uint32        `json:"finalizationEpoch"`
	FinalizationPoint uint32        `json:"finalizationPoint"`
	Height            model.UInt64  `json:"height"`
	Hash              model.Bytes32 `json:"hash"`
}

type ResultChainInfo struct {
	Height               model.UInt64      `json:"height"`
	ScoreHigh            model.UInt64      `json:"scoreHigh"`
	ScoreLow             model.UInt64      `json:"scoreLow"`
	LatestFinalizedBlock FinalizedBlockDTO `json:"latestFinalizedBlock"`
}

type ResultNodeInfo struct {
	Version                   uint32            `json:"version"`
	PublicKey                 model.Bytes32     `json:"publicKey"`
	NetworkGenerationHashSeed model.Bytes32     `json:"networkGenerationHashSeed"`
	Roles                     model.RoleType    `json:"roles"`
	Port                      uint16            `json:"port"`
	NetworkIdentifier         model.NetworkType `json:"networkIdentifier"`
	Host                      string            `json:"host"`
	FriendlyName              string            `json:"friendlyName"`
	NodePublicKey             *model.Bytes32    `json:"nodePublicKey,omitempty"`
}

type ResultNodeHealth struct {
	Status struct {
		APINode model.NodeStatus `json:"apiNode"`
		DB      model.NodeStatus `json:"db"`
	} `json:"status"`
}

type ResultServerInfo struct {
	ServerInfo struct {
		RestVersion string `json:"restVersion"`
		SDKVersion  string `json:"sdkVersion"`
	} `json:"serverInfo"`
}

type ResultNetworkName struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ResultNetworkProperties struct {
	Network map[string]string            `json:"network"`
	Chain   map[string]string            `json:"chain"`
	Plugins map[string]map[string]string `json:"plugins"`
}

type ResultTransactionFees struct {
	AverageFeeMultiplier uint32 `json:"averageFeeMultiplier"`
	MedianFeeMultiplier  uint32 `json:"medianFeeMultiplier"`
	HighestFeeMultiplier uint32 `json:"highestFeeMultiplier"`
	LowestFeeMultiplier  uint32 `json:"lowestFeeMultiplier"`
	MinFeeMultiplier     uint32 `json:"minFeeMultiplier"`
}

type ResultRentalFees struct {
	EffectiveRootNamespaceRentalFeePerBlock model.UInt64 `json:"effectiveRootNamespaceRentalFeePerBlock"`
	EffectiveChildNamespaceRentalFee        model.UInt64 `json:"effectiveChildNamespaceRentalFee"`
	EffectiveTokenRentalFee                 model.UInt64 `json:"effectiveTokenRentalFee"`
}

type ResultTransactionStatus struct {
	Group    model.TransactionGroup `json:"group"`
	Code     string                 `json:"code"`
	Hash     model.Bytes32          `json:"hash"`
	Deadline model.Deadline         `json:"deadline"`
	Height   *model.UInt64          `json:"height,omitempty"`
}

type StatementMetaDTO struct {
	Timestamp *model.UInt64 `json:"timestamp,omitempty"`
}

type ReceiptSourceDTO struct {
	PrimaryID   uint32 `json:"primaryId"`
	SecondaryID uint32 `json:"secondaryId"`
}

type ReceiptDTO struct {
	Version          uint16            `json:"version"`
	Type             model.ReceiptType `json:"type"`
	TargetAddress    *model.Address    `json:"targetAddress,omitempty"`
	SenderAddress    *model.Address    `json:"senderAddress,omitempty"`
	RecipientAddress *model.Address    `json:"recipientAddress,omitempty"`
	TokenID          *model.TokenID    `json:"tokenId,omitempty"`
	Amount           *model.UInt64     `json:"amount,omitempty"`
	ArtifactID       string            `json:"artifactId,omitempty"`
}

type ResultTransactionStatement struct {
	ID        string `json:"id"`
	Statement struct {
		Height   model.UInt64     `json:"height"`
		Source   ReceiptSourceDTO `json:"source"`
		Receipts []ReceiptDTO     `json:"receipts"`
	} `json:"statement"`
}

// ResultResolutionStatement is an address or a token resolution statement.
// Unresolved and Resolved hold the hex form of the address or token id.
type ResultResolutionStatement struct {
	ID        string `json:"id"`
	Statement struct {
		Height            model.UInt64 `json:"height"`
		Unresolved        string       `json:"unresolved"`
		ResolutionEntries []struct {
			Source   ReceiptSourceDTO `json:"source"`
			Resolved string           `json:"resolved"`
		} `json:"resolutionEntries"`
	} `json:"statement"`
}

// Header maps the block fields shared by stored and pushed blocks.
func (b BlockDTO) Header() model.BlockHeader {
	return model.BlockHeader{
		Size:                  b.Size,
		Signature:             b.Signature,
		Signer:                model.NewPublicAccount(b.SignerPublicKey, b.Network),
		Version:               b.Version,
		NetworkType:           b.Network,
		Type:                  b.Type,
		Height:                b.Height,
		Timestamp:             b.Timestamp,
		Difficulty:            b.Difficulty,
		FeeMultiplier:         b.FeeMultiplier,
		PreviousBlockHash:     b.PreviousBlockHash,
		BlockTransactionsHash: b.TransactionsHash,
		BlockReceiptsHash:     b.ReceiptsHash,
		StateHash:             b.StateHash,
		ProofGamma:            b.ProofGamma,
		ProofScalar:           b.ProofScalar,
		ProofVerificationHash: b.ProofVerificationHash,
		BeneficiaryAddress:    b.BeneficiaryAddress,
	}
}
