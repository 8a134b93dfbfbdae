package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/Hemanth4041/statement-loader/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS statement_status (
	id         TEXT PRIMARY KEY,
	filename   TEXT NOT NULL,
	status     TEXT NOT NULL,
	source     TEXT NOT NULL,
	error      TEXT,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS balances (
	id                  TEXT PRIMARY KEY,
	run_id              TEXT NOT NULL,
	organisation_id     TEXT NOT NULL,
	division_id         TEXT,
	bank_id             TEXT,
	account_number      TEXT NOT NULL,
	bsb                 TEXT,
	financial_institute TEXT,
	balance_date        TEXT NOT NULL,
	currency            TEXT NOT NULL,
	opening_balance     TEXT,
	closing_balance     TEXT,
	total_credits       TEXT,
	total_debits        TEXT,
	created_at          TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	id                      TEXT PRIMARY KEY,
	run_id                  TEXT NOT NULL,
	organisation_id         TEXT NOT NULL,
	division_id             TEXT,
	bank_id                 TEXT,
	account_number          TEXT NOT NULL,
	bsb                     TEXT,
	financial_institute     TEXT,
	posting_date            TEXT NOT NULL,
	value_date              TEXT,
	currency                TEXT NOT NULL,
	transaction_amount      TEXT NOT NULL,
	transaction_type        TEXT NOT NULL,
	swift_transaction_code  TEXT,
	bank_reference          TEXT,
	customer_reference      TEXT,
	transaction_description TEXT,
	counterparty_name       TEXT,
	counterparty_account    TEXT,
	created_at              TIMESTAMP NOT NULL
);
`

// SQLiteStore implements StatusTracker and Loader on a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database and ensures the schema.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MarkProcessing logs the transition without writing a row. Only terminal
// states are persisted, so a crash mid-run leaves no stale PROCESSING rows.
func (s *SQLiteStore) MarkProcessing(filename string) {
	log.WithFields(logrus.Fields{
		"file":   filename,
		"status": StatusProcessing,
	}).Info("Processing statement file")
}

// MarkSuccess records a terminal SUCCESS status for the file.
func (s *SQLiteStore) MarkSuccess(ctx context.Context, filename string) error {
	return s.insertStatus(ctx, filename, StatusSuccess, "")
}

// MarkFailed records a terminal FAILED status with the failure reason.
func (s *SQLiteStore) MarkFailed(ctx context.Context, filename string, reason error) error {
	message := ""
	if reason != nil {
		message = reason.Error()
	}
	return s.insertStatus(ctx, filename, StatusFailed, message)
}

func (s *SQLiteStore) insertStatus(ctx context.Context, filename, status, message string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO statement_status (id, filename, status, source, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), filename, status, statusSource, message, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("recording %s status for %s: %w", status, filename, err)
	}
	return nil
}

// LoadStatement inserts every row of the statement inside one transaction,
// all tagged with a fresh run id. A failed insert rolls the whole run back.
func (s *SQLiteStore) LoadStatement(ctx context.Context, stmt *models.Statement) (string, error) {
	runID := uuid.NewString()
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, row := range stmt.Balances {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO balances (id, run_id, organisation_id, division_id, bank_id,
				account_number, bsb, financial_institute, balance_date, currency,
				opening_balance, closing_balance, total_credits, total_debits, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), runID, row.OrganisationID, row.DivisionID, row.BankID,
			row.AccountNumber, row.BSB, row.FinancialInstitute, row.BalanceDate, row.Currency,
			row.OpeningBalance.String(), row.ClosingBalance.String(),
			row.TotalCredits.String(), row.TotalDebits.String(), now)
		if err != nil {
			return "", fmt.Errorf("inserting balance row: %w", err)
		}
	}

	for _, row := range stmt.Transactions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (id, run_id, organisation_id, division_id, bank_id,
				account_number, bsb, financial_institute, posting_date, value_date, currency,
				transaction_amount, transaction_type, swift_transaction_code, bank_reference,
				customer_reference, transaction_description, counterparty_name,
				counterparty_account, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), runID, row.OrganisationID, row.DivisionID, row.BankID,
			row.AccountNumber, row.BSB, row.FinancialInstitute, row.PostingDate, row.ValueDate,
			row.Currency, row.TransactionAmount.String(), row.TransactionType,
			row.SwiftTransactionCode, row.BankReference, row.CustomerReference,
			row.TransactionDescription, row.CounterpartyName, row.CounterpartyAccount, now)
		if err != nil {
			return "", fmt.Errorf("inserting transaction row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing load transaction: %w", err)
	}

	log.WithFields(logrus.Fields{
		"run_id":       runID,
		"balances":     len(stmt.Balances),
		"transactions": len(stmt.Transactions),
	}).Info("Loaded statement rows")
	return runID, nil
}

// CountRows returns the number of rows a load run wrote to a table.
// Used by the pipeline result and by tests.
func (s *SQLiteStore) CountRows(ctx context.Context, table, runID string) (int, error) {
	if table != "balances" && table != "transactions" {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var count int
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE run_id = ?", table), runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting rows in %s: %w", table, err)
	}
	return count, nil
}
