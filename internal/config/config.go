// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hatem-noureddine/BKSample/banksync"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Prefs    PrefsConfig
	Remote   RemoteConfig
	Sync     SyncConfig
}

// DatabaseConfig holds local cache settings. Driver is the database/sql
// driver name; an encrypted SQLCipher-compatible build registers its driver
// under a different name and points this at it.
type DatabaseConfig struct {
	Driver string
	Path   string
}

// PrefsConfig holds preference store settings.
type PrefsConfig struct {
	Path string
}

// RemoteConfig holds remote endpoint settings.
type RemoteConfig struct {
	URL     string
	Timeout time.Duration
}

// SyncConfig holds sync policy settings.
type SyncConfig struct {
	MinInterval time.Duration `mapstructure:"min_interval"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// BKSAMPLE_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "bksample")
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.path", filepath.Join(dataDir, "bank.db"))
	v.SetDefault("prefs.path", filepath.Join(dataDir, "prefs.json"))
	v.SetDefault("remote.url", banksync.DefaultRemoteURL)
	v.SetDefault("remote.timeout", 30*time.Second)
	v.SetDefault("sync.min_interval", banksync.MinSyncInterval)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BKSAMPLE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bksample"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BKSAMPLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
