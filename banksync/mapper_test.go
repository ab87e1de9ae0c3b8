// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapToRowsFlattensHierarchy(t *testing.T) {
	dtos := []BankDTO{
		{
			Name: "CA Centre", IsCA: 1,
			Accounts: []AccountDTO{
				{
					ID: "acc1", Order: 0, Holder: "Emilie", Role: 1,
					ContractNumber: "C-1", Label: "Compte joint", ProductCode: "P1", Balance: 843.15,
					Operations: []OperationDTO{
						{ID: "op1", Title: "EDF", Amount: "-60,44", Category: "Energie", Date: "1644697076"},
					},
				},
				{ID: "acc2", Order: 1, Holder: "Emilie", Role: 2, Balance: 10},
			},
		},
		{Name: "Banque Chalus", IsCA: 0},
	}

	mapped := MapToRows(dtos)

	require.Len(t, mapped.Banks, 2)
	require.Equal(t, BankRow{Name: "CA Centre", IsCA: true}, mapped.Banks[0])
	require.Equal(t, BankRow{Name: "Banque Chalus", IsCA: false}, mapped.Banks[1])

	require.Len(t, mapped.Accounts, 2)
	for _, a := range mapped.Accounts {
		require.Equal(t, "CA Centre", a.BankName)
	}

	require.Len(t, mapped.Operations, 1)
	op := mapped.Operations[0]
	require.Equal(t, "acc1", op.AccountID)
	require.Equal(t, -60.44, op.Amount)
	require.Equal(t, int64(1644697076), op.Date)
}

func TestMapToRowsRepairsMalformedValues(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		date       string
		wantAmount float64
		wantDate   int64
	}{
		{"comma decimal", "10,50", "1700000000", 10.50, 1700000000},
		{"dot decimal", "10.50", "1700000000", 10.50, 1700000000},
		{"garbage amount", "not-a-number", "1700000000", 0.0, 1700000000},
		{"garbage date", "10,50", "not-a-date", 10.50, 0},
		{"both garbage", "", "", 0.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapToRows([]BankDTO{{
				Name: "B",
				Accounts: []AccountDTO{{
					ID: "a",
					Operations: []OperationDTO{
						{ID: "o", Amount: tt.amount, Date: tt.date},
					},
				}},
			}})
			require.Len(t, mapped.Operations, 1)
			require.Equal(t, tt.wantAmount, mapped.Operations[0].Amount)
			require.Equal(t, tt.wantDate, mapped.Operations[0].Date)
		})
	}
}

func TestToDomainSelectsBankVariant(t *testing.T) {
	ca := BankWithAccounts{Bank: BankRow{Name: "CA", IsCA: true}}.ToDomain()
	require.IsType(t, CABank{}, ca)
	require.Equal(t, "CA", ca.Name())

	other := BankWithAccounts{Bank: BankRow{Name: "Autre", IsCA: false}}.ToDomain()
	require.IsType(t, OtherBank{}, other)
	require.Equal(t, "Autre", other.Name())
}

func TestToDomainCarriesAccountsAndOperations(t *testing.T) {
	row := BankWithAccounts{
		Bank: BankRow{Name: "CA", IsCA: true},
		Accounts: []AccountWithOperations{
			{
				Account: AccountRow{
					ID: "acc1", BankName: "CA", Order: 2, Holder: "Hugo", Role: 1,
					ContractNumber: "C-2", Label: "Livret", ProductCode: "P2", Balance: 12.5,
				},
				Operations: []OperationRow{
					{ID: "op1", AccountID: "acc1", Title: "Interets", Amount: 1.25, Category: "Epargne", Date: 1644005876},
				},
			},
		},
	}

	bank := row.ToDomain()
	accounts := bank.Accounts()
	require.Len(t, accounts, 1)
	require.Equal(t, "acc1", accounts[0].ID)
	require.Equal(t, "Livret", accounts[0].Label)
	require.Equal(t, 12.5, accounts[0].Balance)
	require.Len(t, accounts[0].Operations, 1)
	require.Equal(t, Operation{ID: "op1", Title: "Interets", Amount: 1.25, Category: "Epargne", Date: 1644005876}, accounts[0].Operations[0])
}

func TestParseAppModeFallsBackToMock(t *testing.T) {
	require.Equal(t, ModeRemote, ParseAppMode("REMOTE"))
	require.Equal(t, ModeMock, ParseAppMode("MOCK"))
	require.Equal(t, ModeMock, ParseAppMode(""))
	require.Equal(t, ModeMock, ParseAppMode("banana"))
}
