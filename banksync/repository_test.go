// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
)

// countingSource counts fetches so throttle tests can assert exactly how
// often the data source was consulted.
type countingSource struct {
	calls int
	banks []BankDTO
	err   error
}

func (s *countingSource) FetchBanks(ctx context.Context) ([]BankDTO, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.banks, nil
}

// repoFixture wires a repository over in-memory collaborators with a
// controllable clock.
type repoFixture struct {
	repo   *Repository
	cache  *Cache
	prefs  *FilePrefs
	source *countingSource
	now    time.Time
}

func newRepoFixture(t *testing.T) *repoFixture {
	t.Helper()
	f := &repoFixture{
		cache:  newTestCache(t),
		prefs:  newTestPrefs(t),
		source: &countingSource{banks: []BankDTO{{Name: "CA", IsCA: 1}}},
		now:    time.UnixMilli(1_700_000_000_000),
	}
	f.repo = NewRepository(f.cache, f.prefs, func() DataSource { return f.source }, nil)
	f.repo.now = func() time.Time { return f.now }
	return f
}

func (f *repoFixture) lastSyncPref(t *testing.T) string {
	t.Helper()
	snapshot, err := f.prefs.Snapshot(context.Background())
	require.NoError(t, err)
	return snapshot[KeyLastSyncTime]
}

func TestSyncDataThrottlesWithinWindow(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.SyncData(ctx, false))
	require.Equal(t, 1, f.source.calls)
	stamped := f.lastSyncPref(t)
	require.NotEmpty(t, stamped)

	// one millisecond short of the window: no fetch, no state change
	f.now = f.now.Add(MinSyncInterval - time.Millisecond)
	require.NoError(t, f.repo.SyncData(ctx, false))
	require.Equal(t, 1, f.source.calls)
	require.Equal(t, stamped, f.lastSyncPref(t))

	// at the window boundary: exactly one more fetch
	f.now = f.now.Add(time.Millisecond)
	require.NoError(t, f.repo.SyncData(ctx, false))
	require.Equal(t, 2, f.source.calls)
}

func TestSyncDataForceBypassesThrottle(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.SyncData(ctx, false))
	require.NoError(t, f.repo.SyncData(ctx, true))
	require.NoError(t, f.repo.SyncData(ctx, true))
	require.Equal(t, 3, f.source.calls)
}

func TestClearLastSyncTimeDefeatsThrottle(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.SyncData(ctx, false))
	require.Equal(t, 1, f.source.calls)

	require.NoError(t, f.repo.ClearLastSyncTime(ctx))
	require.Empty(t, f.lastSyncPref(t))

	// still inside what would have been the throttle window
	require.NoError(t, f.repo.SyncData(ctx, false))
	require.Equal(t, 2, f.source.calls)
}

func TestSyncDataRecordsWallClockMillis(t *testing.T) {
	f := newRepoFixture(t)

	require.NoError(t, f.repo.SyncData(context.Background(), true))
	require.Equal(t, "1700000000000", f.lastSyncPref(t))
}

func TestSyncDataFetchFailureLeavesCacheIntact(t *testing.T) {
	f := newRepoFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.SyncData(ctx, true))
	stamped := f.lastSyncPref(t)

	f.source.err = &FetchError{URL: "http://example", Err: errors.New("connection refused")}
	err := f.repo.SyncData(ctx, true)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)

	// previous data still fully queryable, timestamp untouched
	banks, errQuery := f.cache.BanksWithAccounts(ctx)
	require.NoError(t, errQuery)
	require.Len(t, banks, 1)
	require.Equal(t, "CA", banks[0].Bank.Name)
	require.Equal(t, stamped, f.lastSyncPref(t))
}

func TestLastSyncTimeStream(t *testing.T) {
	f := newRepoFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := f.repo.LastSyncTime(ctx)

	select {
	case ts := <-stream:
		require.Nil(t, ts, "never synced reads as nil")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial emission")
	}

	require.NoError(t, f.repo.SyncData(ctx, true))

	select {
	case ts := <-stream:
		require.NotNil(t, ts)
		require.Equal(t, int64(1_700_000_000_000), *ts)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for post-sync emission")
	}
}

func TestLastSyncTimeUnparsableReadsAsNil(t *testing.T) {
	f := newRepoFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, f.prefs.Update(ctx, func(p map[string]string) {
		p[KeyLastSyncTime] = "not-a-number"
	}))

	select {
	case ts := <-f.repo.LastSyncTime(ctx):
		require.Nil(t, ts)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for emission")
	}
}

func TestSyncEndToEndFromMockSource(t *testing.T) {
	fsys := fstest.MapFS{
		"bank.json": {Data: []byte(`{
			"banks": [
				{ "name": "CA", "isCA": 1, "accounts": [
					{ "id": "acc1", "order": 0, "holder": "h", "role": 1,
					  "contract_number": "c", "label": "l", "product_code": "p",
					  "balance": 10.0,
					  "operations": [
						{ "id": "op1", "title": "t", "amount": "5,00",
						  "category": "cat", "date": "1700000000" } ] } ] } ] }`)},
	}

	cache := newTestCache(t)
	prefs := newTestPrefs(t)
	source := NewMockDataSourceFS(fsys, "bank.json")
	repo := NewRepository(cache, prefs, func() DataSource { return source }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, repo.SyncData(ctx, true))

	select {
	case banks := <-repo.Banks(ctx):
		require.Len(t, banks, 1)
		require.IsType(t, CABank{}, banks[0])
		require.Equal(t, "CA", banks[0].Name())

		accounts := banks[0].Accounts()
		require.Len(t, accounts, 1)
		require.Equal(t, "acc1", accounts[0].ID)
		require.Equal(t, 10.0, accounts[0].Balance)

		require.Len(t, accounts[0].Operations, 1)
		require.Equal(t, 5.0, accounts[0].Operations[0].Amount)
		require.Equal(t, int64(1700000000), accounts[0].Operations[0].Date)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for bank emission")
	}
}

func TestAccountStreamEmitsNilThenAccount(t *testing.T) {
	f := newRepoFixture(t)
	f.source.banks = []BankDTO{{
		Name: "CA", IsCA: 1,
		Accounts: []AccountDTO{{ID: "acc1", Label: "Compte"}},
	}}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := f.repo.Account(ctx, "acc1")

	select {
	case account := <-stream:
		require.Nil(t, account)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial emission")
	}

	require.NoError(t, f.repo.SyncData(ctx, true))

	select {
	case account := <-stream:
		require.NotNil(t, account)
		require.Equal(t, "acc1", account.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for post-sync emission")
	}
}
