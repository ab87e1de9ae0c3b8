// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

// Command bksample is a small console front end for the banksync subsystem:
// it wires the data sources, cache and repositories the way the mobile shell
// does, runs one synchronization in the persisted mode, and prints the sorted
// bank sections.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hatem-noureddine/BKSample/banksync"
	"github.com/hatem-noureddine/BKSample/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cache, err := banksync.OpenCache(cfg.Database.Driver, cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer cache.Close()

	prefs := banksync.NewFilePrefs(cfg.Prefs.Path)
	settings := banksync.NewSettingsRepository(prefs)

	ctx := context.Background()
	mode, err := settings.CurrentAppMode(ctx)
	if err != nil {
		return err
	}

	remote := banksync.NewRemoteDataSource(cfg.Remote.URL, &http.Client{Timeout: cfg.Remote.Timeout})
	switcher := banksync.NewSourceSwitcher(remote, banksync.NewMockDataSource(), mode)
	repo := banksync.NewRepository(cache, prefs, func() banksync.DataSource { return switcher.Active() }, logger)
	repo.MinInterval = cfg.Sync.MinInterval

	if err := banksync.NewSyncBanksUseCase(repo).Execute(ctx, false); err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	sections := <-banksync.NewGetSortedBanksUseCase(repo).Watch(watchCtx)

	fmt.Printf("mode: %s\n\n", mode)
	printSection("Credit Agricole", caBanksAsBanks(sections.CABanks))
	printSection("Other banks", otherBanksAsBanks(sections.OtherBanks))

	lastSync := <-banksync.NewGetLastSyncTimeUseCase(repo).Watch(watchCtx)
	if lastSync != nil {
		fmt.Printf("last sync: %s\n", time.UnixMilli(*lastSync).Format(time.RFC3339))
	}
	return nil
}

func caBanksAsBanks(banks []banksync.CABank) []banksync.Bank {
	out := make([]banksync.Bank, len(banks))
	for i, b := range banks {
		out[i] = b
	}
	return out
}

func otherBanksAsBanks(banks []banksync.OtherBank) []banksync.Bank {
	out := make([]banksync.Bank, len(banks))
	for i, b := range banks {
		out[i] = b
	}
	return out
}

func printSection(title string, banks []banksync.Bank) {
	fmt.Printf("%s:\n", title)
	if len(banks) == 0 {
		fmt.Println("  (none)")
	}
	for _, bank := range banks {
		fmt.Printf("  %s\n", bank.Name())
		for _, account := range bank.Accounts() {
			fmt.Printf("    %-20s %10.2f  (%d operations)\n", account.Label, account.Balance, len(account.Operations))
		}
	}
	fmt.Println()
}
