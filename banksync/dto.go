// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

// Wire-format DTOs shared by the remote endpoint and the bundled mock
// resource. Both carry the same JSON shape:
//
//	{ "banks": [ { "name": ..., "isCA": 0|1, "accounts": [ ... ] } ] }
//
// Unknown fields are ignored so the client stays forward-compatible with
// server-side additions.

// BankResponseDTO is the top-level response envelope.
type BankResponseDTO struct {
	Banks []BankDTO `json:"banks"`
}

// BankDTO is one bank record as it appears on the wire. IsCA is an integer
// flag (1 means Credit Agricole).
type BankDTO struct {
	Name     string       `json:"name"`
	IsCA     int          `json:"isCA"`
	Accounts []AccountDTO `json:"accounts"`
}

// AccountDTO is one account record as it appears on the wire.
type AccountDTO struct {
	ID             string         `json:"id"`
	Order          int            `json:"order"`
	Holder         string         `json:"holder"`
	Role           int            `json:"role"`
	ContractNumber string         `json:"contract_number"`
	Label          string         `json:"label"`
	ProductCode    string         `json:"product_code"`
	Balance        float64        `json:"balance"`
	Operations     []OperationDTO `json:"operations"`
}

// OperationDTO is one operation record as it appears on the wire. Amount and
// Date arrive as strings; the server emits locale decimals ("10,50") and
// epoch-second timestamps. Normalization happens in the mapper, not here.
type OperationDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Date     string `json:"date"`
}
