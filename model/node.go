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
	"strings"
	"time"
)

// RoleType is a bit set of node roles.
type RoleType uint32

const (
	PeerNode   RoleType = 1
	APINode    RoleType = 2
	VotingNode RoleType = 4
	IPv4Node   RoleType = 64
	IPv6Node   RoleType = 128
)

// NodeInfo describes the node the client talks to.
type NodeInfo struct {
	PublicKey                 Bytes32
	NetworkGenerationHashSeed Bytes32
	Roles                     RoleType
	Port                      uint16
	NetworkIdentifier         NetworkType
	Version                   uint32
	FriendlyName              string
	Host                      string
	NodePublicKey             *Bytes32
}

// NodeStatus is "up" or "down".
type NodeStatus string

const (
	NodeUp   NodeStatus = "up"
	NodeDown NodeStatus = "down"
)

// NodeHealth reports the state of the REST gateway and its database.
type NodeHealth struct {
	APINode NodeStatus
	DB      NodeStatus
}

// ServerInfo describes the REST gateway software.
type ServerInfo struct {
	RestVersion string
	SDKVersion  string
}

// NetworkName is the network reported by the REST gateway.
type NetworkName struct {
	Name        string
	Description string
}

// NetworkConfiguration is the network section of the node configuration.
type NetworkConfiguration struct {
	Identifier             string
	NodeEqualityStrategy   string
	NemesisSignerPublicKey string
	GenerationHashSeed     string
	EpochAdjustment        string
}

// ChainConfiguration is the chain section of the node configuration. Values
// are kept in the textual form the node uses.
type ChainConfiguration struct {
	EnableVerifiableState       bool
	EnableVerifiableReceipts    bool
	CurrencyTokenID             string
	HarvestingTokenID           string
	BlockGenerationTargetTime   string
	BlockTimeSmoothingFactor    string
	ImportanceGrouping          string
	MaxRollbackBlocks           string
	MaxDifficultyBlocks         string
	DefaultDynamicFeeMultiplier string
	MaxTransactionLifetime      string
	MaxBlockFutureTime          string
	InitialCurrencyAtomicUnits  string
	MaxTokenAtomicUnits         string
	TotalChainImportance        string
	MinHarvesterBalance         string
	MaxHarvesterBalance         string
	MinVoterBalance             string
	MaxVotingKeysPerAccount     string
	MaxTransactionsPerBlock     string
}

// NetworkProperties is the configuration of the network.
type NetworkProperties struct {
	Network NetworkConfiguration
	Chain   ChainConfiguration
	// Plugins maps plugin names to their textual settings.
	Plugins map[string]map[string]string
}

// ParseEpochAdjustment parses the "<seconds>s" form of the epoch adjustment
// setting.
func ParseEpochAdjustment(setting string) (int64, error) {
	s := strings.TrimSpace(setting)
	if d, err := time.ParseDuration(s); err == nil {
		return int64(d / time.Second), nil
	}
	v, err := strconv.ParseInt(strings.TrimSuffix(s, "s"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("epoch adjustment %q: %w", setting, err)
	}
	return v, nil
}

// ParseConfigTokenID parses token ids in the "0x6BED'913F'A202'23F8" form
// used by the node configuration.
func ParseConfigTokenID(setting string) (TokenID, error) {
	s := strings.ReplaceAll(setting, "'", "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return NewTokenIDFromHex(s)
}

// TransactionFees are the fee multipliers observed on recent blocks.
type TransactionFees struct {
	AverageFeeMultiplier uint32
	MedianFeeMultiplier  uint32
	HighestFeeMultiplier uint32
	LowestFeeMultiplier  uint32
	MinFeeMultiplier     uint32
}

// RentalFees are the current namespace and token rental costs.
type RentalFees struct {
	EffectiveRootNamespaceRentalFeePerBlock UInt64
	EffectiveChildNamespaceRentalFee        UInt64
	EffectiveTokenRentalFee                 UInt64
}
