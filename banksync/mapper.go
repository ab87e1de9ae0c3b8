// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import (
	"strconv"
	"strings"
)

// MappedRows holds the three flat row sets produced from one wire response,
// ready for a transactional cache replace.
type MappedRows struct {
	Banks      []BankRow
	Accounts   []AccountRow
	Operations []OperationRow
}

// MapToRows flattens the nested wire shape (bank -> account -> operation)
// into three relational row sets with foreign-key linkage. It is pure and
// never fails: malformed operation amounts and dates are repaired to zero
// values instead of poisoning the whole sync.
func MapToRows(banks []BankDTO) MappedRows {
	var mapped MappedRows
	for _, bank := range banks {
		mapped.Banks = append(mapped.Banks, BankRow{
			Name: bank.Name,
			IsCA: bank.IsCA == 1,
		})
		for _, account := range bank.Accounts {
			mapped.Accounts = append(mapped.Accounts, AccountRow{
				ID:             account.ID,
				BankName:       bank.Name,
				Order:          account.Order,
				Holder:         account.Holder,
				Role:           account.Role,
				ContractNumber: account.ContractNumber,
				Label:          account.Label,
				ProductCode:    account.ProductCode,
				Balance:        account.Balance,
			})
			for _, op := range account.Operations {
				mapped.Operations = append(mapped.Operations, OperationRow{
					ID:        op.ID,
					AccountID: account.ID,
					Title:     op.Title,
					Amount:    parseAmount(op.Amount),
					Category:  op.Category,
					Date:      parseDate(op.Date),
				})
			}
		}
	}
	return mapped
}

// parseAmount normalizes a locale decimal ("10,50") and parses it. Unparsable
// amounts become 0.0.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0.0
	}
	return v
}

// parseDate parses an epoch-seconds string. Unparsable dates become 0.
func parseDate(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ToDomain maps one cached bank aggregate to its domain variant. The variant
// is selected solely by the stored credit agricole flag.
func (b BankWithAccounts) ToDomain() Bank {
	accounts := make([]Account, 0, len(b.Accounts))
	for _, a := range b.Accounts {
		accounts = append(accounts, a.ToDomain())
	}
	if b.Bank.IsCA {
		return CABank{BankName: b.Bank.Name, BankAccounts: accounts}
	}
	return OtherBank{BankName: b.Bank.Name, BankAccounts: accounts}
}

// ToDomain maps one cached account aggregate to the domain model.
func (a AccountWithOperations) ToDomain() Account {
	ops := make([]Operation, 0, len(a.Operations))
	for _, o := range a.Operations {
		ops = append(ops, Operation{
			ID:       o.ID,
			Title:    o.Title,
			Amount:   o.Amount,
			Category: o.Category,
			Date:     o.Date,
		})
	}
	return Account{
		ID:             a.Account.ID,
		Order:          a.Account.Order,
		Holder:         a.Account.Holder,
		Role:           a.Account.Role,
		ContractNumber: a.Account.ContractNumber,
		Label:          a.Account.Label,
		ProductCode:    a.Account.ProductCode,
		Balance:        a.Account.Balance,
		Operations:     ops,
	}
}
