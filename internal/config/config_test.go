// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hatem-noureddine/BKSample/banksync"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BKSAMPLE_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "sqlite3", cfg.Database.Driver)
	require.Equal(t, filepath.Join(home, ".local", "share", "bksample", "bank.db"), cfg.Database.Path)
	require.Equal(t, filepath.Join(home, ".local", "share", "bksample", "prefs.json"), cfg.Prefs.Path)
	require.Equal(t, banksync.DefaultRemoteURL, cfg.Remote.URL)
	require.Equal(t, 30*time.Second, cfg.Remote.Timeout)
	require.Equal(t, banksync.MinSyncInterval, cfg.Sync.MinInterval)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[database]
driver = "sqlcipher"
path = "/data/bank.db"

[remote]
url = "https://example.test/banks.json"

[sync]
min_interval = "10m"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("BKSAMPLE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "sqlcipher", cfg.Database.Driver)
	require.Equal(t, "/data/bank.db", cfg.Database.Path)
	require.Equal(t, "https://example.test/banks.json", cfg.Remote.URL)
	require.Equal(t, 10*time.Minute, cfg.Sync.MinInterval)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BKSAMPLE_CONFIG", "")
	t.Setenv("BKSAMPLE_REMOTE_URL", "https://override.test/banks.json")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://override.test/banks.json", cfg.Remote.URL)
}
