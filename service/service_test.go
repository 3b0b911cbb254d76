package service

import (
	"bytes"
	"context"
	"sync"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/bitxorcorp/bitxor-sdk-go/repository"
	"github.com/bitxorcorp/bitxor-sdk-go/transaction"
)

func testAddress(seed byte) model.Address {
	return model.NewAddressFromPublicKey(bytes.Repeat([]byte{seed}, 32), model.TestNet)
}

var (
	alice = testAddress(1)
	bob   = testAddress(2)

	currencyID = model.TokenID(0x6BED913FA20223F8)
	bitxor, _  = model.NewNamespaceID("bitxor")
	bxr, _     = model.NewNamespaceID("bitxor.bxr")
)

// The fakes embed the repository interfaces so that calling a method a test
// does not expect panics.

type fakeAccounts struct {
	repository.AccountRepository
	infos []model.AccountInfo
}

func (f *fakeAccounts) GetAccountInfo(_ context.Context,
	adr model.Address) (model.AccountInfo, error) {
	for _, info := range f.infos {
		if info.Address.Equal(adr) {
			return info, nil
		}
	}
	return model.AccountInfo{}, errNotFound
}

func (f *fakeAccounts) GetAccountsInfo(context.Context,
	[]model.Address) ([]model.AccountInfo, error) {
	return f.infos, nil
}

type fakeNamespaces struct {
	repository.NamespaceRepository
	tokenNames      []model.TokenNames
	names           []model.NamespaceName
	linkedTokens    map[model.UInt64]model.TokenID
	linkedAddresses map[model.UInt64]model.Address
	owned           []model.NamespaceInfo

	mu        sync.Mutex
	requested []model.NamespaceID
}

func (f *fakeNamespaces) GetTokensNames(context.Context,
	[]model.TokenID) ([]model.TokenNames, error) {
	return f.tokenNames, nil
}

func (f *fakeNamespaces) GetNamespacesNames(_ context.Context,
	ids []model.NamespaceID) ([]model.NamespaceName, error) {
	f.mu.Lock()
	f.requested = append(f.requested, ids...)
	f.mu.Unlock()
	return f.names, nil
}

func (f *fakeNamespaces) GetLinkedTokenID(_ context.Context,
	id model.NamespaceID) (model.TokenID, error) {
	if linked, ok := f.linkedTokens[id.ID]; ok {
		return linked, nil
	}
	return 0, errNotFound
}

func (f *fakeNamespaces) GetLinkedAddress(_ context.Context,
	id model.NamespaceID) (model.Address, error) {
	if linked, ok := f.linkedAddresses[id.ID]; ok {
		return linked, nil
	}
	return model.Address{}, errNotFound
}

func (f *fakeNamespaces) Search(_ context.Context,
	c repository.NamespaceSearchCriteria) (repository.Page[model.NamespaceInfo], error) {
	var data []model.NamespaceInfo
	for _, ns := range f.owned {
		if c.OwnerAddress == nil || ns.OwnerAddress.Equal(*c.OwnerAddress) {
			data = append(data, ns)
		}
	}
	return repository.NewPage(data, c.PageNumber, 10), nil
}

type fakeTokens struct {
	repository.TokenRepository
	infos []model.TokenInfo

	requested []model.TokenID
}

func (f *fakeTokens) GetTokens(_ context.Context,
	ids []model.TokenID) ([]model.TokenInfo, error) {
	f.requested = append(f.requested, ids...)
	var infos []model.TokenInfo
	for _, id := range ids {
		for _, info := range f.infos {
			if info.ID == id {
				infos = append(infos, info)
			}
		}
	}
	return infos, nil
}

type fakeRestrictions struct {
	repository.RestrictionTokenRepository
	entries []model.TokenRestriction
}

func (f *fakeRestrictions) Search(_ context.Context,
	c repository.RestrictionTokenSearchCriteria) (repository.Page[model.TokenRestriction], error) {
	var data []model.TokenRestriction
	for _, e := range f.entries {
		if c.TokenID != nil && e.RestrictedTokenID() != *c.TokenID {
			continue
		}
		if c.EntryType != nil && e.EntryType() != *c.EntryType {
			continue
		}
		if a, ok := e.(*model.TokenAddressRestriction); ok && c.TargetAddress != nil &&
			!a.TargetAddress.Equal(*c.TargetAddress) {
			continue
		}
		data = append(data, e)
	}
	return repository.NewPage(data, 1, 10), nil
}

type fakeTransactions struct {
	repository.TransactionRepository
	txs       []*transaction.Transaction
	announced chan transaction.SignedTransaction
}

func (f *fakeTransactions) GetTransactionsByIDs(context.Context, []string,
	model.TransactionGroup) ([]*transaction.Transaction, error) {
	return f.txs, nil
}

func (f *fakeTransactions) Announce(_ context.Context,
	signed transaction.SignedTransaction) (repository.AnnounceResult, error) {
	f.announced <- signed
	return repository.AnnounceResult{Message: "packet 9 was pushed to the network via /transactions"}, nil
}

func (f *fakeTransactions) AnnounceAggregateBonded(_ context.Context,
	signed transaction.SignedTransaction) (repository.AnnounceResult, error) {
	f.announced <- signed
	return repository.AnnounceResult{Message: "packet 500 was pushed to the network via /transactions/partial"}, nil
}

type fakeReceipts struct {
	repository.ReceiptRepository
	addresses []model.AddressResolutionStatement
	tokens    []model.TokenResolutionStatement

	mu      sync.Mutex
	heights []model.UInt64
}

func (f *fakeReceipts) record(h *model.UInt64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heights = append(f.heights, *h)
}

func (f *fakeReceipts) SearchAddressResolutionStatements(_ context.Context,
	c repository.ResolutionStatementSearchCriteria) (repository.Page[model.AddressResolutionStatement], error) {
	f.record(c.Height)
	var data []model.AddressResolutionStatement
	for _, st := range f.addresses {
		if st.Height == *c.Height {
			data = append(data, st)
		}
	}
	return repository.NewPage(data, c.PageNumber, 10), nil
}

func (f *fakeReceipts) SearchTokenResolutionStatements(_ context.Context,
	c repository.ResolutionStatementSearchCriteria) (repository.Page[model.TokenResolutionStatement], error) {
	f.record(c.Height)
	var data []model.TokenResolutionStatement
	for _, st := range f.tokens {
		if st.Height == *c.Height {
			data = append(data, st)
		}
	}
	return repository.NewPage(data, c.PageNumber, 10), nil
}
