// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import "strings"

// Bank is the domain representation of a bank and its accounts.
//
// It is a closed two-variant type: a bank is either a CABank (Credit Agricole)
// or an OtherBank, selected solely by the isCA flag carried on the wire and in
// the cache. The unexported marker method keeps the set of variants closed.
type Bank interface {
	// Name returns the bank name (identity key).
	Name() string
	// Accounts returns the accounts held at this bank.
	Accounts() []Account

	isBank()
}

// CABank is a Credit Agricole bank.
type CABank struct {
	BankName     string
	BankAccounts []Account
}

func (b CABank) Name() string        { return b.BankName }
func (b CABank) Accounts() []Account { return b.BankAccounts }
func (b CABank) isBank()             {}

// OtherBank is any bank that is not Credit Agricole.
type OtherBank struct {
	BankName     string
	BankAccounts []Account
}

func (b OtherBank) Name() string        { return b.BankName }
func (b OtherBank) Accounts() []Account { return b.BankAccounts }
func (b OtherBank) isBank()             {}

// Account is the domain representation of a bank account.
type Account struct {
	ID             string
	Order          int
	Holder         string
	Role           int
	ContractNumber string
	Label          string
	ProductCode    string
	Balance        float64
	Operations     []Operation
}

// Operation is a single banking operation (transaction). Amount is negative
// for debits and positive for credits. Date is epoch seconds.
type Operation struct {
	ID       string
	Title    string
	Amount   float64
	Category string
	Date     int64
}

// BankSections groups banks into the two display sections consumed by the UI
// layer: Credit Agricole banks first, then everything else.
type BankSections struct {
	CABanks    []CABank
	OtherBanks []OtherBank
}

// AppMode selects which data source serves FetchBanks.
type AppMode int

const (
	// ModeMock serves the bundled static dataset.
	ModeMock AppMode = iota
	// ModeRemote fetches from the remote endpoint.
	ModeRemote
)

// String returns the persisted enum name for the mode.
func (m AppMode) String() string {
	if m == ModeRemote {
		return "REMOTE"
	}
	return "MOCK"
}

// ParseAppMode maps a persisted mode name back to an AppMode. Unknown or empty
// values fall back to ModeMock rather than erroring, so a corrupted preference
// can never wedge the app.
func ParseAppMode(s string) AppMode {
	if strings.EqualFold(s, "REMOTE") {
		return ModeRemote
	}
	return ModeMock
}
