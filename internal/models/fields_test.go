package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMap(t *testing.T) {
	row := TransactionRow{
		OrganisationID:    "org-1",
		AccountNumber:     "12345678",
		Currency:          "AUD",
		TransactionAmount: decimal.NewFromInt(2500),
		TransactionType:   TransactionTypeCredit,
	}

	fields := FieldMap(row)
	assert.Equal(t, "org-1", fields["organisation_id"])
	assert.Equal(t, "12345678", fields["account_number"])
	assert.Equal(t, "2500", fields["transaction_amount"])
	assert.Equal(t, "C", fields["transaction_type"])
	assert.Equal(t, "", fields["counterparty_name"])

	// Pointers flatten the same way.
	assert.Equal(t, fields, FieldMap(&row))
}

func TestSetField(t *testing.T) {
	var row BalanceRow

	require.NoError(t, SetField(&row, "account_number", "98765432"))
	assert.Equal(t, "98765432", row.AccountNumber)

	require.NoError(t, SetField(&row, "closing_balance", "1234.56"))
	assert.True(t, row.ClosingBalance.Equal(decimal.RequireFromString("1234.56")))

	assert.Error(t, SetField(&row, "closing_balance", "not a number"))
	assert.Error(t, SetField(&row, "no_such_field", "x"))
	assert.Error(t, SetField(row, "account_number", "needs a pointer"))
}
