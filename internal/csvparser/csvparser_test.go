package csvparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemanth4041/statement-loader/internal/models"
)

const sampleCSV = `date,value_date,account_number,description,amount,currency,type,reference,counterparty
2021-07-06,2021-07-07,12345678,Salary payment,2500.00,AUD,CREDIT,REF-1,Acme Pty Ltd
2021-07-06,,12345678,ATM withdrawal,-200.00,AUD,,REF-2,
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0600))
	return path
}

func TestValidateFormat(t *testing.T) {
	valid, err := ValidateFormat(writeSample(t))
	require.NoError(t, err)
	assert.True(t, valid)

	other := filepath.Join(t.TempDir(), "other.csv")
	require.NoError(t, os.WriteFile(other, []byte("a,b,c\n1,2,3\n"), 0600))
	valid, err = ValidateFormat(other)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestParseToRows(t *testing.T) {
	id := models.Identity{OrganisationID: "org-1", BankID: "ANZ"}
	stmt, err := ParseToRows(writeSample(t), id)
	require.NoError(t, err)
	require.Len(t, stmt.Transactions, 2)

	credit := stmt.Transactions[0]
	assert.Equal(t, "org-1", credit.OrganisationID)
	assert.Equal(t, models.TransactionTypeCredit, credit.TransactionType)
	assert.True(t, credit.TransactionAmount.Equal(decimal.RequireFromString("2500.00")))
	assert.Equal(t, "2021-07-07", credit.ValueDate)
	assert.Equal(t, "Acme Pty Ltd", credit.CounterpartyName)

	// Missing type column falls back to the amount sign; missing value
	// date falls back to the posting date.
	debit := stmt.Transactions[1]
	assert.Equal(t, models.TransactionTypeDebit, debit.TransactionType)
	assert.True(t, debit.TransactionAmount.Equal(decimal.RequireFromString("200.00")))
	assert.Equal(t, "2021-07-06", debit.ValueDate)
}

func TestConvertToCSV(t *testing.T) {
	outDir := t.TempDir()
	id := models.Identity{OrganisationID: "org-1"}
	require.NoError(t, ConvertToCSV(writeSample(t), outDir, id))
	assert.FileExists(t, filepath.Join(outDir, "export_transactions.csv"))
}
