// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MinSyncInterval is the throttle window: non-forced syncs within this
// interval of the last successful sync skip the data source entirely.
const MinSyncInterval = 5 * time.Minute

// Repository reconciles the active data source with the local cache and
// exposes reactive read models on top of the cache. It follows an
// offline-first strategy: reads always come from the cache, the data source
// is only consulted to refresh it.
//
// All five collaborators are injected through the constructor; the repository
// owns no global state.
type Repository struct {
	// MinInterval is the throttle window applied to non-forced syncs.
	// Defaults to MinSyncInterval.
	MinInterval time.Duration

	cache  *Cache
	prefs  PreferenceStore
	source func() DataSource
	logger *slog.Logger
	now    func() time.Time

	syncMu sync.Mutex // serializes SyncData per repository instance
}

// NewRepository creates a bank repository. source resolves the currently
// active data source on every sync, so a SourceSwitcher rebind takes effect
// on the next call. A nil logger falls back to slog.Default().
func NewRepository(cache *Cache, prefs PreferenceStore, source func() DataSource, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		MinInterval: MinSyncInterval,
		cache:       cache,
		prefs:       prefs,
		source:      source,
		logger:      logger,
		now:         time.Now,
	}
}

// Banks emits the domain view of every cached bank, immediately on subscribe
// and again after every cache change, until ctx is cancelled.
func (r *Repository) Banks(ctx context.Context) <-chan []Bank {
	out := make(chan []Bank, 1)
	go func() {
		defer close(out)
		for rows := range r.cache.WatchBanks(ctx) {
			banks := make([]Bank, 0, len(rows))
			for _, row := range rows {
				banks = append(banks, row.ToDomain())
			}
			select {
			case out <- banks:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Account emits the domain view of one account with its operations, or nil
// while the account is absent from the cache.
func (r *Repository) Account(ctx context.Context, accountID string) <-chan *Account {
	out := make(chan *Account, 1)
	go func() {
		defer close(out)
		for row := range r.cache.WatchAccount(ctx, accountID) {
			var account *Account
			if row != nil {
				a := row.ToDomain()
				account = &a
			}
			select {
			case out <- account:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// LastSyncTime emits the epoch-millisecond timestamp of the last successful
// sync, or nil when it is absent or unparsable. An unparsable stored value is
// treated as "never synced", never surfaced as an error.
func (r *Repository) LastSyncTime(ctx context.Context) <-chan *int64 {
	out := make(chan *int64, 1)
	go func() {
		defer close(out)
		for prefs := range r.prefs.Data(ctx) {
			var ts *int64
			if v, err := strconv.ParseInt(prefs[KeyLastSyncTime], 10, 64); err == nil {
				ts = &v
			}
			select {
			case out <- ts:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// SyncData refreshes the cache from the active data source.
//
// Unless forceRefresh is set, a sync within MinSyncInterval of the last
// successful one returns immediately without contacting the data source or
// touching the cache. Otherwise it fetches, maps the response to rows,
// replaces the whole cache in one transaction, and records the wall-clock
// sync time. Fetch and decode failures propagate untouched and leave the
// previously cached data fully intact; retry is the caller's concern.
//
// Concurrent calls on the same repository are serialized, so overlapping
// refresh triggers (pull-to-refresh plus app-resume) cost at most one fetch
// each rather than racing on the cache and the timestamp.
func (r *Repository) SyncData(ctx context.Context, forceRefresh bool) error {
	r.syncMu.Lock()
	defer r.syncMu.Unlock()

	syncID := uuid.New().String()
	logger := r.logger.With("sync_id", syncID, "force", forceRefresh)

	if !forceRefresh {
		prefs, err := r.prefs.Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("read sync state: %w", err)
		}
		if lastSync, err := strconv.ParseInt(prefs[KeyLastSyncTime], 10, 64); err == nil {
			elapsed := r.now().UnixMilli() - lastSync
			if elapsed < r.MinInterval.Milliseconds() {
				logger.Debug("sync throttled", "elapsed_ms", elapsed)
				return nil
			}
		}
	}

	started := r.now()
	banks, err := r.source().FetchBanks(ctx)
	if err != nil {
		return err
	}

	rows := MapToRows(banks)
	if err := r.cache.ReplaceAll(ctx, rows.Banks, rows.Accounts, rows.Operations); err != nil {
		return fmt.Errorf("replace cache: %w", err)
	}

	nowStr := strconv.FormatInt(r.now().UnixMilli(), 10)
	if err := r.prefs.Update(ctx, func(prefs map[string]string) {
		prefs[KeyLastSyncTime] = nowStr
	}); err != nil {
		return fmt.Errorf("record sync time: %w", err)
	}

	logger.Info("sync completed",
		"banks", len(rows.Banks),
		"accounts", len(rows.Accounts),
		"operations", len(rows.Operations),
		"duration", r.now().Sub(started))
	return nil
}

// ClearLastSyncTime removes the persisted sync timestamp so the next
// non-forced SyncData bypasses the throttle. Used on mode switches.
func (r *Repository) ClearLastSyncTime(ctx context.Context) error {
	if err := r.prefs.Update(ctx, func(prefs map[string]string) {
		delete(prefs, KeyLastSyncTime)
	}); err != nil {
		return fmt.Errorf("clear sync time: %w", err)
	}
	return nil
}
