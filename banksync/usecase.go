// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// The use-case layer depends on these narrow interfaces rather than on the
// concrete repositories, so view-models can be tested against mocks.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks -source=usecase.go

// BankReader is the reactive read surface of the bank repository.
type BankReader interface {
	Banks(ctx context.Context) <-chan []Bank
	Account(ctx context.Context, accountID string) <-chan *Account
	LastSyncTime(ctx context.Context) <-chan *int64
}

// BankSyncer is the mutation surface of the bank repository.
type BankSyncer interface {
	SyncData(ctx context.Context, forceRefresh bool) error
	ClearLastSyncTime(ctx context.Context) error
}

// ModeSettings is the settings repository surface.
type ModeSettings interface {
	AppMode(ctx context.Context) <-chan AppMode
	SetAppMode(ctx context.Context, mode AppMode) error
}

// ModeSwitcher rebinds the active data source.
type ModeSwitcher interface {
	Switch(mode AppMode)
}

// GetSortedBanksUseCase partitions banks into the Credit Agricole and other
// sections, sorts each section by bank name ascending, and sorts every bank's
// accounts by label ascending. The UI renders the sections in that order.
type GetSortedBanksUseCase struct {
	repo BankReader
}

func NewGetSortedBanksUseCase(repo BankReader) *GetSortedBanksUseCase {
	return &GetSortedBanksUseCase{repo: repo}
}

// Watch emits sorted bank sections for every emission of the underlying bank
// stream.
func (uc *GetSortedBanksUseCase) Watch(ctx context.Context) <-chan BankSections {
	out := make(chan BankSections, 1)
	go func() {
		defer close(out)
		for banks := range uc.repo.Banks(ctx) {
			select {
			case out <- SortBanks(banks):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// SortBanks builds the sorted sections from an unordered bank list. It is
// pure and deterministic.
func SortBanks(banks []Bank) BankSections {
	var sections BankSections
	for _, bank := range banks {
		switch b := bank.(type) {
		case CABank:
			b.BankAccounts = sortAccounts(b.BankAccounts)
			sections.CABanks = append(sections.CABanks, b)
		case OtherBank:
			b.BankAccounts = sortAccounts(b.BankAccounts)
			sections.OtherBanks = append(sections.OtherBanks, b)
		}
	}
	sort.Slice(sections.CABanks, func(i, j int) bool {
		return sections.CABanks[i].BankName < sections.CABanks[j].BankName
	})
	sort.Slice(sections.OtherBanks, func(i, j int) bool {
		return sections.OtherBanks[i].BankName < sections.OtherBanks[j].BankName
	})
	return sections
}

func sortAccounts(accounts []Account) []Account {
	sorted := make([]Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Label < sorted[j].Label
	})
	return sorted
}

// GetAccountDetailsUseCase exposes a single account with its operations.
type GetAccountDetailsUseCase struct {
	repo BankReader
}

func NewGetAccountDetailsUseCase(repo BankReader) *GetAccountDetailsUseCase {
	return &GetAccountDetailsUseCase{repo: repo}
}

// Watch emits the account, or nil while it is absent.
func (uc *GetAccountDetailsUseCase) Watch(ctx context.Context, accountID string) <-chan *Account {
	return uc.repo.Account(ctx, accountID)
}

// GetAccountOperationsUseCase exposes an account's operations sorted newest
// first, ties broken by title ascending (case-insensitive). The UI grouping
// logic depends on exactly this order.
type GetAccountOperationsUseCase struct {
	repo BankReader
}

func NewGetAccountOperationsUseCase(repo BankReader) *GetAccountOperationsUseCase {
	return &GetAccountOperationsUseCase{repo: repo}
}

// Watch emits the sorted operation list for every emission of the underlying
// account stream; a missing account emits an empty list.
func (uc *GetAccountOperationsUseCase) Watch(ctx context.Context, accountID string) <-chan []Operation {
	out := make(chan []Operation, 1)
	go func() {
		defer close(out)
		for account := range uc.repo.Account(ctx, accountID) {
			var ops []Operation
			if account != nil {
				ops = SortOperations(account.Operations)
			}
			select {
			case out <- ops:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// SortOperations orders operations by date descending, then title ascending
// ignoring case. Pure and deterministic.
func SortOperations(operations []Operation) []Operation {
	sorted := make([]Operation, len(operations))
	copy(sorted, operations)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})
	return sorted
}

// GetLastSyncTimeUseCase exposes the last successful sync timestamp.
type GetLastSyncTimeUseCase struct {
	repo BankReader
}

func NewGetLastSyncTimeUseCase(repo BankReader) *GetLastSyncTimeUseCase {
	return &GetLastSyncTimeUseCase{repo: repo}
}

// Watch emits the timestamp in epoch milliseconds, or nil if never synced.
func (uc *GetLastSyncTimeUseCase) Watch(ctx context.Context) <-chan *int64 {
	return uc.repo.LastSyncTime(ctx)
}

// GetAppModeUseCase exposes the persisted application mode.
type GetAppModeUseCase struct {
	settings ModeSettings
}

func NewGetAppModeUseCase(settings ModeSettings) *GetAppModeUseCase {
	return &GetAppModeUseCase{settings: settings}
}

// Watch emits the active mode and every subsequent change.
func (uc *GetAppModeUseCase) Watch(ctx context.Context) <-chan AppMode {
	return uc.settings.AppMode(ctx)
}

// SyncBanksUseCase triggers a cache refresh.
type SyncBanksUseCase struct {
	repo BankSyncer
}

func NewSyncBanksUseCase(repo BankSyncer) *SyncBanksUseCase {
	return &SyncBanksUseCase{repo: repo}
}

// Execute delegates to the repository's sync.
func (uc *SyncBanksUseCase) Execute(ctx context.Context, forceRefresh bool) error {
	return uc.repo.SyncData(ctx, forceRefresh)
}

// SetAppModeUseCase switches the application mode. The side effects are
// ordered: persist the mode, clear the sync timestamp, rebind the data
// source, then force a refresh. Rebinding must happen before the refresh or
// the forced sync would still fetch from the previous source. Clearing the
// timestamp before the forced sync looks redundant (the forced call bypasses
// the throttle anyway) but also re-arms the throttle for the next non-forced
// sync, so the order is kept as is.
type SetAppModeUseCase struct {
	settings ModeSettings
	repo     BankSyncer
	switcher ModeSwitcher
}

func NewSetAppModeUseCase(settings ModeSettings, repo BankSyncer, switcher ModeSwitcher) *SetAppModeUseCase {
	return &SetAppModeUseCase{settings: settings, repo: repo, switcher: switcher}
}

// Execute applies the mode change and resynchronizes from the new source.
func (uc *SetAppModeUseCase) Execute(ctx context.Context, mode AppMode) error {
	if err := uc.settings.SetAppMode(ctx, mode); err != nil {
		return fmt.Errorf("set app mode: %w", err)
	}
	if err := uc.repo.ClearLastSyncTime(ctx); err != nil {
		return fmt.Errorf("clear sync time: %w", err)
	}
	uc.switcher.Switch(mode)
	if err := uc.repo.SyncData(ctx, true); err != nil {
		return fmt.Errorf("resync after mode change: %w", err)
	}
	return nil
}
