package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemanth4041/statement-loader/internal/models"
)

func TestWriteAndReadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")

	rows := []models.TransactionRow{
		{
			OrganisationID:         "org-1",
			AccountNumber:          "12345678",
			Currency:               "AUD",
			PostingDate:            "2021-07-06",
			TransactionAmount:      decimal.NewFromInt(2500),
			TransactionType:        models.TransactionTypeCredit,
			TransactionDescription: "Payment for services",
		},
		{
			OrganisationID:    "org-1",
			AccountNumber:     "12345678",
			Currency:          "AUD",
			PostingDate:       "2021-07-06",
			TransactionAmount: decimal.RequireFromString("19.99"),
			TransactionType:   models.TransactionTypeDebit,
		},
	}

	require.NoError(t, WriteRowsToCSV(rows, path))

	got, err := ReadCSVFile[models.TransactionRow](path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Payment for services", got[0].TransactionDescription)
	assert.True(t, got[1].TransactionAmount.Equal(decimal.RequireFromString("19.99")))
}

func TestWriteRowsToCSVNil(t *testing.T) {
	err := WriteRowsToCSV[models.BalanceRow](nil, filepath.Join(t.TempDir(), "x.csv"))
	assert.Error(t, err)
}

func TestReadCSVFileMissing(t *testing.T) {
	_, err := ReadCSVFile[models.TransactionRow]("/no/such/file.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
