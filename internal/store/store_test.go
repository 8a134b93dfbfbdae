package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemanth4041/statement-loader/internal/models"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "loader.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testStatement() *models.Statement {
	return &models.Statement{
		Balances: []models.BalanceRow{{
			OrganisationID: "org-1",
			AccountNumber:  "12345678",
			BalanceDate:    "2021-07-06",
			Currency:       "AUD",
			ClosingBalance: decimal.NewFromInt(90000),
		}},
		Transactions: []models.TransactionRow{
			{
				OrganisationID:    "org-1",
				AccountNumber:     "12345678",
				PostingDate:       "2021-07-06",
				Currency:          "AUD",
				TransactionAmount: decimal.NewFromInt(2500),
				TransactionType:   models.TransactionTypeCredit,
			},
			{
				OrganisationID:    "org-1",
				AccountNumber:     "12345678",
				PostingDate:       "2021-07-06",
				Currency:          "AUD",
				TransactionAmount: decimal.NewFromInt(1200),
				TransactionType:   models.TransactionTypeDebit,
			},
		},
	}
}

func TestLoadStatement(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	runID, err := s.LoadStatement(ctx, testStatement())
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	balances, err := s.CountRows(ctx, "balances", runID)
	require.NoError(t, err)
	assert.Equal(t, 1, balances)

	transactions, err := s.CountRows(ctx, "transactions", runID)
	require.NoError(t, err)
	assert.Equal(t, 2, transactions)

	// A second run gets its own identifier and rows.
	other, err := s.LoadStatement(ctx, testStatement())
	require.NoError(t, err)
	assert.NotEqual(t, runID, other)
}

func TestCountRowsRejectsUnknownTable(t *testing.T) {
	s := openTestStore(t)
	_, err := s.CountRows(context.Background(), "statement_status; DROP TABLE balances", "x")
	assert.Error(t, err)
}

func TestStatusLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Processing is log-only, so only terminal states land in the table.
	s.MarkProcessing("statement.bai")
	require.NoError(t, s.MarkSuccess(ctx, "statement.bai"))
	require.NoError(t, s.MarkFailed(ctx, "broken.bai", errors.New("missing group trailer")))

	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM statement_status").Scan(&count))
	assert.Equal(t, 2, count)

	var status, source, message string
	require.NoError(t, s.db.QueryRow(
		"SELECT status, source, error FROM statement_status WHERE filename = ?",
		"broken.bai").Scan(&status, &source, &message))
	assert.Equal(t, StatusFailed, status)
	assert.Equal(t, "external", source)
	assert.Contains(t, message, "missing group trailer")
}
