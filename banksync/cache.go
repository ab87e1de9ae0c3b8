// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

// BankRow is a bank as stored in the local cache.
type BankRow struct {
	Name string
	IsCA bool
}

// AccountRow is an account as stored in the local cache. BankName is the
// foreign key to the owning bank.
type AccountRow struct {
	ID             string
	BankName       string
	Order          int
	Holder         string
	Role           int
	ContractNumber string
	Label          string
	ProductCode    string
	Balance        float64
}

// OperationRow is an operation as stored in the local cache. AccountID is the
// foreign key to the owning account.
type OperationRow struct {
	ID        string
	AccountID string
	Title     string
	Amount    float64
	Category  string
	Date      int64
}

// BankWithAccounts is the read model for one bank and everything under it.
type BankWithAccounts struct {
	Bank     BankRow
	Accounts []AccountWithOperations
}

// AccountWithOperations is the read model for one account and its operations.
type AccountWithOperations struct {
	Account    AccountRow
	Operations []OperationRow
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS banks (
	name   TEXT PRIMARY KEY,
	is_ca  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
	id               TEXT PRIMARY KEY,
	bank_name        TEXT NOT NULL REFERENCES banks(name) ON DELETE CASCADE,
	display_order    INTEGER NOT NULL,
	holder           TEXT NOT NULL,
	role             INTEGER NOT NULL,
	contract_number  TEXT NOT NULL,
	label            TEXT NOT NULL,
	product_code     TEXT NOT NULL,
	balance          REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS operations (
	id          TEXT PRIMARY KEY,
	account_id  TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
	title       TEXT NOT NULL,
	amount      REAL NOT NULL,
	category    TEXT NOT NULL,
	date        INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_accounts_bank_name ON accounts(bank_name);
CREATE INDEX IF NOT EXISTS idx_operations_account_id ON operations(account_id);
`

// Cache is the local relational store for banks, accounts and operations.
// All mutation goes through ReplaceAll; reads are plain queries plus
// channel-based watch streams that re-emit after every committed mutation.
type Cache struct {
	db       *sql.DB
	notifier *notifier
	logger   *slog.Logger
}

// OpenCache opens (or creates) the SQLite cache file and ensures the schema
// exists. The driver name is configurable so an encrypted SQLCipher-compatible
// driver registered under another name can be swapped in; the passphrase, if
// any, travels in the DSN and is the caller's concern.
func OpenCache(driver, path string, logger *slog.Logger) (*Cache, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	cache, err := NewCache(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return cache, nil
}

// NewCache wraps an already-open database handle and ensures the schema
// exists. Tests use this with an in-memory handle.
func NewCache(db *sql.DB, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		return nil, fmt.Errorf("create cache schema: %w", err)
	}
	return &Cache{db: db, notifier: newNotifier(), logger: logger}, nil
}

// Close closes the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// ReplaceAll swaps the entire cache content in a single transaction: delete
// operations, accounts, banks, then insert banks, accounts, operations, in
// that dependency order so foreign keys hold at every statement. Readers of
// the watch streams observe either the old state or the new state, never a
// mix. Inserts are INSERT OR REPLACE, so a duplicate id within the incoming
// data replaces rather than errors.
func (c *Cache) ReplaceAll(ctx context.Context, banks []BankRow, accounts []AccountRow, operations []OperationRow) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}
	if err := replaceAllInTx(ctx, tx, banks, accounts, operations); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace tx: %w", err)
	}
	c.notifier.broadcast()
	return nil
}

func replaceAllInTx(ctx context.Context, tx *sql.Tx, banks []BankRow, accounts []AccountRow, operations []OperationRow) error {
	for _, stmt := range []string{"DELETE FROM operations", "DELETE FROM accounts", "DELETE FROM banks"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear table: %w", err)
		}
	}
	for _, b := range banks {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO banks (name, is_ca) VALUES (?, ?)`,
			b.Name, b.IsCA)
		if err != nil {
			return fmt.Errorf("insert bank %s: %w", b.Name, err)
		}
	}
	for _, a := range accounts {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO accounts
			 (id, bank_name, display_order, holder, role, contract_number, label, product_code, balance)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.BankName, a.Order, a.Holder, a.Role, a.ContractNumber, a.Label, a.ProductCode, a.Balance)
		if err != nil {
			return fmt.Errorf("insert account %s: %w", a.ID, err)
		}
	}
	for _, o := range operations {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO operations
			 (id, account_id, title, amount, category, date)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			o.ID, o.AccountID, o.Title, o.Amount, o.Category, o.Date)
		if err != nil {
			return fmt.Errorf("insert operation %s: %w", o.ID, err)
		}
	}
	return nil
}

// BanksWithAccounts loads every bank with its accounts and their operations.
func (c *Cache) BanksWithAccounts(ctx context.Context) ([]BankWithAccounts, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT name, is_ca FROM banks`)
	if err != nil {
		return nil, fmt.Errorf("query banks: %w", err)
	}
	defer rows.Close()

	var banks []BankRow
	for rows.Next() {
		var b BankRow
		if err := rows.Scan(&b.Name, &b.IsCA); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		banks = append(banks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate banks: %w", err)
	}

	accountsByBank, err := c.accountsGroupedByBank(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]BankWithAccounts, 0, len(banks))
	for _, b := range banks {
		result = append(result, BankWithAccounts{Bank: b, Accounts: accountsByBank[b.Name]})
	}
	return result, nil
}

// AccountWithOperations loads a single account with its operations, or nil if
// the account does not exist.
func (c *Cache) AccountWithOperations(ctx context.Context, accountID string) (*AccountWithOperations, error) {
	var a AccountRow
	err := c.db.QueryRowContext(ctx,
		`SELECT id, bank_name, display_order, holder, role, contract_number, label, product_code, balance
		 FROM accounts WHERE id = ?`, accountID).
		Scan(&a.ID, &a.BankName, &a.Order, &a.Holder, &a.Role, &a.ContractNumber, &a.Label, &a.ProductCode, &a.Balance)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query account %s: %w", accountID, err)
	}

	ops, err := c.operationsForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &AccountWithOperations{Account: a, Operations: ops}, nil
}

func (c *Cache) accountsGroupedByBank(ctx context.Context) (map[string][]AccountWithOperations, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, bank_name, display_order, holder, role, contract_number, label, product_code, balance
		 FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []AccountRow
	for rows.Next() {
		var a AccountRow
		if err := rows.Scan(&a.ID, &a.BankName, &a.Order, &a.Holder, &a.Role, &a.ContractNumber, &a.Label, &a.ProductCode, &a.Balance); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	opsByAccount, err := c.operationsGroupedByAccount(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]AccountWithOperations)
	for _, a := range accounts {
		grouped[a.BankName] = append(grouped[a.BankName], AccountWithOperations{
			Account:    a,
			Operations: opsByAccount[a.ID],
		})
	}
	return grouped, nil
}

func (c *Cache) operationsGroupedByAccount(ctx context.Context) (map[string][]OperationRow, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, account_id, title, amount, category, date FROM operations`)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]OperationRow)
	for rows.Next() {
		var o OperationRow
		if err := rows.Scan(&o.ID, &o.AccountID, &o.Title, &o.Amount, &o.Category, &o.Date); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		grouped[o.AccountID] = append(grouped[o.AccountID], o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return grouped, nil
}

func (c *Cache) operationsForAccount(ctx context.Context, accountID string) ([]OperationRow, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, account_id, title, amount, category, date FROM operations WHERE account_id = ?`, accountID)
	if err != nil {
		return nil, fmt.Errorf("query operations for %s: %w", accountID, err)
	}
	defer rows.Close()

	var ops []OperationRow
	for rows.Next() {
		var o OperationRow
		if err := rows.Scan(&o.ID, &o.AccountID, &o.Title, &o.Amount, &o.Category, &o.Date); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		ops = append(ops, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return ops, nil
}

// WatchBanks emits the full bank read model immediately on subscribe and then
// again after every committed cache mutation, until ctx is cancelled. Read
// errors are logged and the previous emission stands.
func (c *Cache) WatchBanks(ctx context.Context) <-chan []BankWithAccounts {
	out := make(chan []BankWithAccounts, 1)
	id, signal := c.notifier.subscribe()
	go func() {
		defer close(out)
		defer c.notifier.unsubscribe(id)
		for {
			banks, err := c.BanksWithAccounts(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("bank watch query failed", "error", err)
			} else {
				select {
				case out <- banks:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-signal:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// WatchAccount is WatchBanks scoped to a single account; it emits nil when
// the account is absent.
func (c *Cache) WatchAccount(ctx context.Context, accountID string) <-chan *AccountWithOperations {
	out := make(chan *AccountWithOperations, 1)
	id, signal := c.notifier.subscribe()
	go func() {
		defer close(out)
		defer c.notifier.unsubscribe(id)
		for {
			account, err := c.AccountWithOperations(ctx, accountID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("account watch query failed", "account_id", accountID, "error", err)
			} else {
				select {
				case out <- account:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-signal:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
