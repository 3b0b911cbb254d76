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

package repository

import (
	"encoding/json"
	"fmt"

	"github.com/bitxorcorp/bitxor-sdk-go/api"
	"github.com/bitxorcorp/bitxor-sdk-go/model"
)

func tokensFromDTO(list []api.TokenDTO) ([]model.Token, error) {
	tokens := make([]model.Token, len(list))
	for i, t := range list {
		id, err := model.NewUnresolvedTokenIDFromHex(t.ID)
		if err != nil {
			return nil, err
		}
		tokens[i] = model.NewToken(id, t.Amount)
	}
	return tokens, nil
}

func publicKeyFromDTO(dto *api.PublicKeyDTO) *model.Bytes32 {
	if dto == nil {
		return nil
	}
	key := dto.PublicKey
	return &key
}

func accountInfoFromDTO(dto api.ResultAccountInfo) (model.AccountInfo, error) {
	a := dto.Account
	tokens, err := tokensFromDTO(a.Tokens)
	if err != nil {
		return model.AccountInfo{}, fmt.Errorf("account %v: %w", a.Address, err)
	}
	keys := model.SupplementalPublicKeys{
		Linked: publicKeyFromDTO(a.SupplementalPublicKeys.Linked),
		Node:   publicKeyFromDTO(a.SupplementalPublicKeys.Node),
		VRF:    publicKeyFromDTO(a.SupplementalPublicKeys.VRF),
	}
	if voting := a.SupplementalPublicKeys.Voting; voting != nil {
		for _, k := range voting.PublicKeys {
			keys.Voting = append(keys.Voting, model.AccountLinkVotingKey{
				PublicKey:  k.PublicKey,
				StartEpoch: k.StartEpoch,
				EndEpoch:   k.EndEpoch,
			})
		}
	}
	buckets := make([]model.ActivityBucket, len(a.ActivityBuckets))
	for i, b := range a.ActivityBuckets {
		buckets[i] = model.ActivityBucket(b)
	}
	return model.AccountInfo{
		RecordID:               dto.ID,
		Version:                a.Version,
		Address:                a.Address,
		AddressHeight:          a.AddressHeight,
		PublicKey:              a.PublicKey,
		PublicKeyHeight:        a.PublicKeyHeight,
		AccountType:            a.AccountType,
		SupplementalPublicKeys: keys,
		ActivityBuckets:        buckets,
		Tokens:                 tokens,
		Importance:             a.Importance,
		ImportanceHeight:       a.ImportanceHeight,
	}, nil
}

func multisigFromDTO(dto api.ResultMultisigAccountInfo) model.MultisigAccountInfo {
	return model.MultisigAccountInfo(dto.Multisig)
}

func multisigGraphFromDTO(dto api.ResultMultisigAccountGraph) model.MultisigAccountGraphInfo {
	g := model.MultisigAccountGraphInfo{
		Entries: make(map[int][]model.MultisigAccountInfo, len(dto)),
	}
	for _, level := range dto {
		entries := make([]model.MultisigAccountInfo, len(level.MultisigEntries))
		for i, e := range level.MultisigEntries {
			entries[i] = multisigFromDTO(e)
		}
		g.Entries[level.Level] = entries
	}
	return g
}

func aliasFromDTO(dto api.AliasDTO) (model.Alias, error) {
	switch dto.Type {
	case model.AliasNone:
		return model.EmptyAlias(), nil
	case model.AliasToken:
		if dto.TokenID == nil {
			return model.Alias{}, fmt.Errorf("token alias: missing tokenId")
		}
		return model.NewTokenAlias(*dto.TokenID), nil
	case model.AliasAddress:
		if dto.Address == nil {
			return model.Alias{}, fmt.Errorf("address alias: missing address")
		}
		return model.NewAddressAlias(*dto.Address), nil
	}
	return model.Alias{}, fmt.Errorf("alias type %v: not implemented", uint8(dto.Type))
}

func namespaceFromDTO(dto api.ResultNamespaceInfo) (model.NamespaceInfo, error) {
	n := dto.Namespace
	alias, err := aliasFromDTO(n.Alias)
	if err != nil {
		return model.NamespaceInfo{}, err
	}
	var levels []model.NamespaceID
	for _, l := range []*model.NamespaceID{n.Level0, n.Level1, n.Level2} {
		if l == nil {
			break
		}
		levels = append(levels, *l)
	}
	return model.NamespaceInfo{
		RecordID:         dto.ID,
		Version:          n.Version,
		Active:           dto.Meta.Active,
		Index:            dto.Meta.Index,
		RegistrationType: n.RegistrationType,
		Depth:            n.Depth,
		Levels:           levels,
		ParentID:         n.ParentID,
		OwnerAddress:     n.OwnerAddress,
		StartHeight:      n.StartHeight,
		EndHeight:        n.EndHeight,
		Alias:            alias,
	}, nil
}

func namespaceNameFromDTO(dto api.NamespaceNameDTO) model.NamespaceName {
	name := model.NamespaceName{NamespaceID: dto.ID, Name: dto.Name}
	if dto.ParentID != nil && dto.ParentID.ID != 0 {
		parent := *dto.ParentID
		name.ParentID = &parent
	}
	return name
}

// namesFromStrings maps the full names returned by the name lookups.
func namesFromStrings(names []string) ([]model.NamespaceName, error) {
	out := make([]model.NamespaceName, len(names))
	for i, full := range names {
		id, err := model.NewNamespaceID(full)
		if err != nil {
			return nil, err
		}
		out[i] = model.NamespaceName{NamespaceID: id, Name: full}
	}
	return out, nil
}

func tokenInfoFromDTO(dto api.ResultTokenInfo) model.TokenInfo {
	t := dto.Token
	return model.TokenInfo{
		RecordID:     dto.ID,
		Version:      t.Version,
		ID:           t.ID,
		Supply:       t.Supply,
		StartHeight:  t.StartHeight,
		OwnerAddress: t.OwnerAddress,
		Revision:     t.Revision,
		Flags:        t.Flags,
		Divisibility: t.Divisibility,
		Duration:     t.Duration,
	}
}

func metadataFromDTO(dto api.ResultMetadataEntry) (model.MetadataEntry, error) {
	m := dto.MetadataEntry
	key, err := model.NewUInt64FromHex(m.ScopedMetadataKey)
	if err != nil {
		return model.MetadataEntry{}, fmt.Errorf("metadata %v: %w", dto.ID, err)
	}
	entry := model.MetadataEntry{
		RecordID:          dto.ID,
		Version:           m.Version,
		CompositeHash:     m.CompositeHash,
		SourceAddress:     m.SourceAddress,
		TargetAddress:     m.TargetAddress,
		ScopedMetadataKey: key,
		MetadataType:      m.MetadataType,
		Value:             m.Value,
	}
	switch m.MetadataType {
	case model.MetadataToken:
		id, err := model.NewTokenIDFromHex(m.TargetID)
		if err != nil {
			return model.MetadataEntry{}, fmt.Errorf("metadata %v: %w", dto.ID, err)
		}
		entry.TargetID = id
	case model.MetadataNamespace:
		id, err := model.NewNamespaceIDFromHex(m.TargetID)
		if err != nil {
			return model.MetadataEntry{}, fmt.Errorf("metadata %v: %w", dto.ID, err)
		}
		entry.TargetID = id
	}
	return entry, nil
}

func hashLockFromDTO(dto api.ResultHashLockInfo) model.HashLockInfo {
	l := dto.Lock
	return model.HashLockInfo{
		RecordID:     dto.ID,
		Version:      l.Version,
		OwnerAddress: l.OwnerAddress,
		TokenID:      l.TokenID,
		Amount:       l.Amount,
		EndHeight:    l.EndHeight,
		Status:       l.Status,
		Hash:         l.Hash,
	}
}

func secretLockFromDTO(dto api.ResultSecretLockInfo) model.SecretLockInfo {
	l := dto.Lock
	return model.SecretLockInfo{
		RecordID:         dto.ID,
		Version:          l.Version,
		OwnerAddress:     l.OwnerAddress,
		TokenID:          l.TokenID,
		Amount:           l.Amount,
		EndHeight:        l.EndHeight,
		Status:           l.Status,
		HashAlgorithm:    l.HashAlgorithm,
		Secret:           l.Secret,
		RecipientAddress: l.RecipientAddress,
		CompositeHash:    l.CompositeHash,
	}
}

func accountRestrictionsFromDTO(dto api.ResultAccountRestrictions) (model.AccountRestrictions, error) {
	r := dto.AccountRestrictions
	out := model.AccountRestrictions{
		RecordID:     dto.ID,
		Version:      r.Version,
		Address:      r.Address,
		Restrictions: make([]model.AccountRestriction, len(r.Restrictions)),
	}
	for i, restriction := range r.Restrictions {
		res := model.AccountRestriction{Flags: restriction.RestrictionFlags}
		for _, value := range restriction.Values {
			if err := appendRestrictionValue(&res, value); err != nil {
				return model.AccountRestrictions{}, fmt.Errorf(
					"account restrictions %v: %w", r.Address, err)
			}
		}
		out.Restrictions[i] = res
	}
	return out, nil
}

func appendRestrictionValue(res *model.AccountRestriction, value json.RawMessage) error {
	flags := res.Flags
	switch {
	case flags&model.RestrictionAddress != 0:
		var encoded string
		if err := json.Unmarshal(value, &encoded); err != nil {
			return err
		}
		adr, err := model.NewUnresolvedAddressFromEncoded(encoded)
		if err != nil {
			return err
		}
		res.Addresses = append(res.Addresses, adr)
	case flags&model.RestrictionTokenID != 0:
		var hexID string
		if err := json.Unmarshal(value, &hexID); err != nil {
			return err
		}
		id, err := model.NewUnresolvedTokenIDFromHex(hexID)
		if err != nil {
			return err
		}
		res.TokenIDs = append(res.TokenIDs, id)
	case flags&model.RestrictionTransactionType != 0:
		var t uint16
		if err := json.Unmarshal(value, &t); err != nil {
			return err
		}
		res.TransactionTypes = append(res.TransactionTypes, t)
	default:
		return fmt.Errorf("restriction flags %#x: not implemented", uint16(flags))
	}
	return nil
}

func tokenRestrictionFromDTO(dto api.ResultTokenRestriction) (model.TokenRestriction, error) {
	e := dto.TokenRestrictionEntry
	switch e.EntryType {
	case model.TokenRestrictionEntryAddress:
		r := &model.TokenAddressRestriction{
			RecordID:      dto.ID,
			Version:       e.Version,
			CompositeHash: e.CompositeHash,
			TokenID:       e.TokenID,
			Restrictions:  make(map[model.UInt64]model.UInt64, len(e.Restrictions)),
		}
		if e.TargetAddress != nil {
			r.TargetAddress = *e.TargetAddress
		}
		for _, item := range e.Restrictions {
			if item.Value == nil {
				return nil, fmt.Errorf("token restriction %v: missing value", dto.ID)
			}
			r.Restrictions[item.Key] = *item.Value
		}
		return r, nil
	case model.TokenRestrictionEntryGlobal:
		r := &model.TokenGlobalRestriction{
			RecordID:      dto.ID,
			Version:       e.Version,
			CompositeHash: e.CompositeHash,
			TokenID:       e.TokenID,
			Restrictions: make(map[model.UInt64]model.TokenGlobalRestrictionItem,
				len(e.Restrictions)),
		}
		for _, item := range e.Restrictions {
			if item.Restriction == nil {
				return nil, fmt.Errorf("token restriction %v: missing restriction", dto.ID)
			}
			r.Restrictions[item.Key] = model.TokenGlobalRestrictionItem(*item.Restriction)
		}
		return r, nil
	}
	return nil, fmt.Errorf("token restriction entry type %v: not implemented",
		uint8(e.EntryType))
}

func blockInfoFromDTO(dto api.ResultBlockInfo) model.BlockInfo {
	return model.BlockInfo{
		RecordID:               dto.ID,
		BlockHeader:            dto.Block.Header(),
		Hash:                   dto.Meta.Hash,
		GenerationHash:         dto.Meta.GenerationHash,
		TotalFee:               dto.Meta.TotalFee,
		TotalTransactionsCount: dto.Meta.TotalTransactionsCount,
		TransactionsCount:      dto.Meta.TransactionsCount,
		StatementsCount:        dto.Meta.StatementsCount,

		StateHashSubCacheMerkleRoots: dto.Meta.StateHashSubCacheMerkleRoots,
	}
}

func nodeInfoFromDTO(dto api.ResultNodeInfo) model.NodeInfo {
	return model.NodeInfo{
		PublicKey:                 dto.PublicKey,
		NetworkGenerationHashSeed: dto.NetworkGenerationHashSeed,
		Roles:                     dto.Roles,
		Port:                      dto.Port,
		NetworkIdentifier:         dto.NetworkIdentifier,
		Version:                   dto.Version,
		FriendlyName:              dto.FriendlyName,
		Host:                      dto.Host,
		NodePublicKey:             dto.NodePublicKey,
	}
}

func networkPropertiesFromDTO(dto api.ResultNetworkProperties) model.NetworkProperties {
	n, c := dto.Network, dto.Chain
	return model.NetworkProperties{
		Network: model.NetworkConfiguration{
			Identifier:             n["identifier"],
			NodeEqualityStrategy:   n["nodeEqualityStrategy"],
			NemesisSignerPublicKey: n["nemesisSignerPublicKey"],
			GenerationHashSeed:     n["generationHashSeed"],
			EpochAdjustment:        n["epochAdjustment"],
		},
		Chain: model.ChainConfiguration{
			EnableVerifiableState:       c["enableVerifiableState"] == "true",
			EnableVerifiableReceipts:    c["enableVerifiableReceipts"] == "true",
			CurrencyTokenID:             c["currencyTokenId"],
			HarvestingTokenID:           c["harvestingTokenId"],
			BlockGenerationTargetTime:   c["blockGenerationTargetTime"],
			BlockTimeSmoothingFactor:    c["blockTimeSmoothingFactor"],
			ImportanceGrouping:          c["importanceGrouping"],
			MaxRollbackBlocks:           c["maxRollbackBlocks"],
			MaxDifficultyBlocks:         c["maxDifficultyBlocks"],
			DefaultDynamicFeeMultiplier: c["defaultDynamicFeeMultiplier"],
			MaxTransactionLifetime:      c["maxTransactionLifetime"],
			MaxBlockFutureTime:          c["maxBlockFutureTime"],
			InitialCurrencyAtomicUnits:  c["initialCurrencyAtomicUnits"],
			MaxTokenAtomicUnits:         c["maxTokenAtomicUnits"],
			TotalChainImportance:        c["totalChainImportance"],
			MinHarvesterBalance:         c["minHarvesterBalance"],
			MaxHarvesterBalance:         c["maxHarvesterBalance"],
			MinVoterBalance:             c["minVoterBalance"],
			MaxVotingKeysPerAccount:     c["maxVotingKeysPerAccount"],
			MaxTransactionsPerBlock:     c["maxTransactionsPerBlock"],
		},
		Plugins: dto.Plugins,
	}
}

func transactionStatusFromDTO(dto api.ResultTransactionStatus) model.TransactionStatus {
	s := model.TransactionStatus{
		Group:    dto.Group,
		Code:     dto.Code,
		Hash:     dto.Hash,
		Deadline: dto.Deadline,
	}
	if dto.Height != nil {
		s.Height = *dto.Height
	}
	return s
}

func receiptSourceFromDTO(dto api.ReceiptSourceDTO) model.ReceiptSource {
	return model.ReceiptSource(dto)
}

func receiptFromDTO(dto api.ReceiptDTO) (model.Receipt, error) {
	if _, err := dto.Type.Kind(); err != nil {
		return model.Receipt{}, err
	}
	r := model.Receipt{Version: dto.Version, Type: dto.Type}
	if dto.TargetAddress != nil {
		r.TargetAddress = *dto.TargetAddress
	}
	if dto.SenderAddress != nil {
		r.SenderAddress = *dto.SenderAddress
	}
	if dto.RecipientAddress != nil {
		r.RecipientAddress = *dto.RecipientAddress
	}
	if dto.TokenID != nil {
		r.TokenID = *dto.TokenID
	}
	if dto.Amount != nil {
		r.Amount = *dto.Amount
	}
	if dto.ArtifactID != "" {
		id, err := model.NewUInt64FromHex(dto.ArtifactID)
		if err != nil {
			return model.Receipt{}, fmt.Errorf("receipt artifact id: %w", err)
		}
		r.ArtifactID = id
	}
	return r, nil
}

func transactionStatementFromDTO(dto api.ResultTransactionStatement) (model.TransactionStatement, error) {
	st := model.TransactionStatement{
		RecordID: dto.ID,
		Height:   dto.Statement.Height,
		Source:   receiptSourceFromDTO(dto.Statement.Source),
		Receipts: make([]model.Receipt, len(dto.Statement.Receipts)),
	}
	for i, r := range dto.Statement.Receipts {
		receipt, err := receiptFromDTO(r)
		if err != nil {
			return model.TransactionStatement{}, fmt.Errorf(
				"transaction statement %v: %w", dto.ID, err)
		}
		st.Receipts[i] = receipt
	}
	return st, nil
}

func addressResolutionFromDTO(dto api.ResultResolutionStatement) (model.AddressResolutionStatement, error) {
	unresolved, err := model.NewUnresolvedAddressFromEncoded(dto.Statement.Unresolved)
	if err != nil {
		return model.AddressResolutionStatement{}, err
	}
	st := model.AddressResolutionStatement{
		RecordID:   dto.ID,
		Height:     dto.Statement.Height,
		Unresolved: unresolved,
		Entries: make([]model.AddressResolutionEntry,
			len(dto.Statement.ResolutionEntries)),
	}
	for i, e := range dto.Statement.ResolutionEntries {
		adr, err := model.NewAddressFromEncoded(e.Resolved)
		if err != nil {
			return model.AddressResolutionStatement{}, err
		}
		st.Entries[i] = model.AddressResolutionEntry{
			Source:   receiptSourceFromDTO(e.Source),
			Resolved: adr,
		}
	}
	return st, nil
}

func tokenResolutionFromDTO(dto api.ResultResolutionStatement) (model.TokenResolutionStatement, error) {
	unresolved, err := model.NewUnresolvedTokenIDFromHex(dto.Statement.Unresolved)
	if err != nil {
		return model.TokenResolutionStatement{}, err
	}
	st := model.TokenResolutionStatement{
		RecordID:   dto.ID,
		Height:     dto.Statement.Height,
		Unresolved: unresolved,
		Entries: make([]model.TokenResolutionEntry,
			len(dto.Statement.ResolutionEntries)),
	}
	for i, e := range dto.Statement.ResolutionEntries {
		id, err := model.NewTokenIDFromHex(e.Resolved)
		if err != nil {
			return model.TokenResolutionStatement{}, err
		}
		st.Entries[i] = model.TokenResolutionEntry{
			Source:   receiptSourceFromDTO(e.Source),
			Resolved: id,
		}
	}
	return st, nil
}
