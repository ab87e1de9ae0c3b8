// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/hatem-noureddine/BKSample/banksync"
)

// newExternalTestCache builds a cache over an in-memory SQLite database for
// tests living outside the banksync package.
func newExternalTestCache(t *testing.T) *banksync.Cache {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1) // a second pool conn would see a different :memory: db
	t.Cleanup(func() { _ = db.Close() })

	cache, err := banksync.NewCache(db, nil)
	require.NoError(t, err)
	return cache
}
