package baiparser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Hemanth4041/statement-loader/internal/bai2"
	"github.com/Hemanth4041/statement-loader/internal/models"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Counterparty names show up in free text as "FROM <name>" or "TO <name>".
var counterpartyPattern = regexp.MustCompile(`(?i)\b(?:FROM|TO)[:\s]+([A-Za-z][A-Za-z0-9 &.'-]{2,39})`)

// Transform walks a parsed BAI2 file and emits one balance row per account
// per group plus one transaction row per detail record.
func Transform(f *bai2.File, id models.Identity, m Mapping) (*models.Statement, error) {
	stmt := &models.Statement{}

	for _, group := range f.Groups {
		date, err := groupDate(f, group)
		if err != nil {
			return nil, err
		}

		for _, account := range group.Accounts {
			currency := account.Identifier.Currency
			if currency == "" {
				currency = group.Header.Currency
			}
			number, bsb := splitAccountNumber(
				account.Identifier.CustomerAccountNumber, group.Header.OriginatorID)

			balance := models.BalanceRow{
				OrganisationID:     id.OrganisationID,
				DivisionID:         id.DivisionID,
				BankID:             id.BankID,
				AccountNumber:      number,
				BSB:                bsb,
				FinancialInstitute: id.FinancialInstitute,
				BalanceDate:        date,
				Currency:           currency,
			}
			for _, summary := range account.Identifier.Summaries {
				if summary.TypeCode == nil || summary.Amount == nil {
					continue
				}
				column, ok := m.Balances[summary.TypeCode.Code]
				if !ok {
					continue
				}
				if err := models.SetField(&balance, column, summary.Amount.String()); err != nil {
					return nil, fmt.Errorf("mapping summary code %s: %w", summary.TypeCode.Code, err)
				}
			}
			stmt.Balances = append(stmt.Balances, balance)

			for _, txn := range account.Transactions {
				row, err := transformTransaction(txn, id, m, number, bsb, currency, date)
				if err != nil {
					return nil, err
				}
				stmt.Transactions = append(stmt.Transactions, row)
			}
		}
	}

	return stmt, nil
}

func transformTransaction(txn *bai2.Transaction, id models.Identity, m Mapping,
	number, bsb, currency, date string) (models.TransactionRow, error) {

	if txn.TypeCode == nil {
		return models.TransactionRow{}, fmt.Errorf("transaction without a type code on account %s", number)
	}

	amount := decimal.Zero
	if txn.Amount != nil {
		amount = *txn.Amount
	}

	txType := transactionType(txn.TypeCode.Polarity, amount)
	name, cpAccount := counterparty(txn.Text, txn.CustomerReference)

	return models.TransactionRow{
		OrganisationID:         id.OrganisationID,
		DivisionID:             id.DivisionID,
		BankID:                 id.BankID,
		AccountNumber:          number,
		BSB:                    bsb,
		FinancialInstitute:     id.FinancialInstitute,
		PostingDate:            date,
		ValueDate:              date,
		Currency:               currency,
		TransactionAmount:      amount.Abs(),
		TransactionType:        txType,
		SwiftTransactionCode:   swiftCode(m, txn.TypeCode),
		BankReference:          txn.BankReference,
		CustomerReference:      txn.CustomerReference,
		TransactionDescription: txn.Text,
		CounterpartyName:       name,
		CounterpartyAccount:    cpAccount,
	}, nil
}

func groupDate(f *bai2.File, group *bai2.Group) (string, error) {
	if group.Header.AsOfDate != nil {
		return group.Header.AsOfDate.Format("2006-01-02"), nil
	}
	if f.Header.CreationDate != nil {
		return f.Header.CreationDate.Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("group for %s carries no as-of date and the file has no creation date",
		group.Header.UltimateReceiverID)
}

// splitAccountNumber peels a leading 6-digit BSB off long all-numeric
// account identifiers. Banks that put the BSB in the group originator field
// instead are covered by the fallback.
func splitAccountNumber(accountNumber, originatorID string) (number, bsb string) {
	if len(accountNumber) >= 12 && digitsOnly.MatchString(accountNumber) {
		return accountNumber[6:], accountNumber[:6]
	}
	if len(originatorID) == 6 && digitsOnly.MatchString(originatorID) {
		return accountNumber, originatorID
	}
	return accountNumber, ""
}

func transactionType(polarity bai2.Polarity, amount decimal.Decimal) string {
	switch polarity {
	case bai2.PolarityCredit:
		return models.TransactionTypeCredit
	case bai2.PolarityDebit:
		return models.TransactionTypeDebit
	}
	if amount.IsNegative() {
		return models.TransactionTypeDebit
	}
	return models.TransactionTypeCredit
}

// swiftCode maps a type code to a SWIFT transaction code, first through the
// explicit mapping, then by keyword from the registry description.
func swiftCode(m Mapping, tc *bai2.TypeCode) string {
	if code, ok := m.Swift[tc.Code]; ok {
		return code
	}

	description := strings.ToLower(tc.Description)
	switch {
	case strings.Contains(description, "transfer"):
		return "NTRF"
	case strings.Contains(description, "check"), strings.Contains(description, "cheque"):
		return "NCHK"
	case strings.Contains(description, "fee"), strings.Contains(description, "charge"):
		return "NCHG"
	case strings.Contains(description, "interest"):
		return "NINT"
	case strings.Contains(description, "dividend"):
		return "NDIV"
	case strings.Contains(description, "deposit"):
		return "NDEP"
	default:
		return "NMSC"
	}
}

// counterparty pulls a counterparty name out of the narrative text and, when
// the customer reference looks like an account number, uses it as the
// counterparty account.
func counterparty(text, customerReference string) (name, account string) {
	if match := counterpartyPattern.FindStringSubmatch(text); match != nil {
		name = strings.TrimSpace(match[1])
	}
	if len(customerReference) >= 6 && digitsOnly.MatchString(customerReference) {
		account = customerReference
	}
	return name, account
}
