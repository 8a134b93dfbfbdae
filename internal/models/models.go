// Package models provides the normalized row structures produced by the
// statement parsers and consumed by validation, encryption and loading.
package models

import (
	"github.com/shopspring/decimal"
)

// BalanceRow is one end-of-day balance snapshot for a single account.
// Dates are ISO formatted (YYYY-MM-DD) so downstream systems never have
// to guess at the source format.
type BalanceRow struct {
	OrganisationID     string          `csv:"organisation_id"`
	DivisionID         string          `csv:"division_id"`
	BankID             string          `csv:"bank_id"`
	AccountNumber      string          `csv:"account_number"`
	BSB                string          `csv:"bsb"`
	FinancialInstitute string          `csv:"financial_institute"`
	BalanceDate        string          `csv:"balance_date"`
	Currency           string          `csv:"currency"`
	OpeningBalance     decimal.Decimal `csv:"opening_balance"`
	ClosingBalance     decimal.Decimal `csv:"closing_balance"`
	TotalCredits       decimal.Decimal `csv:"total_credits"`
	TotalDebits        decimal.Decimal `csv:"total_debits"`
}

// TransactionRow is one posted transaction in normalized form.
type TransactionRow struct {
	OrganisationID         string          `csv:"organisation_id"`
	DivisionID             string          `csv:"division_id"`
	BankID                 string          `csv:"bank_id"`
	AccountNumber          string          `csv:"account_number"`
	BSB                    string          `csv:"bsb"`
	FinancialInstitute     string          `csv:"financial_institute"`
	PostingDate            string          `csv:"posting_date"`
	ValueDate              string          `csv:"value_date"`
	Currency               string          `csv:"currency"`
	TransactionAmount      decimal.Decimal `csv:"transaction_amount"`
	TransactionType        string          `csv:"transaction_type"`
	SwiftTransactionCode   string          `csv:"swift_transaction_code"`
	BankReference          string          `csv:"bank_reference"`
	CustomerReference      string          `csv:"customer_reference"`
	TransactionDescription string          `csv:"transaction_description"`
	CounterpartyName       string          `csv:"counterparty_name"`
	CounterpartyAccount    string          `csv:"counterparty_account"`
}

// Identity carries the caller-supplied ownership fields stamped onto every
// normalized row.
type Identity struct {
	OrganisationID     string
	DivisionID         string
	BankID             string
	FinancialInstitute string
}

// Statement bundles everything extracted from one input file.
type Statement struct {
	Balances     []BalanceRow
	Transactions []TransactionRow
}

// Transaction type markers used across parsers.
const (
	TransactionTypeCredit = "C"
	TransactionTypeDebit  = "D"
)
