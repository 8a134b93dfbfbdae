// Package csvparser adapts generic CSV bank exports to the normalized row
// model via gocsv struct tags.
package csvparser

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Hemanth4041/statement-loader/internal/common"
	"github.com/Hemanth4041/statement-loader/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
	common.SetLogger(logger)
}

// CSVRow is the expected column layout of a generic bank CSV export.
type CSVRow struct {
	Date          string          `csv:"date"`
	ValueDate     string          `csv:"value_date"`
	AccountNumber string          `csv:"account_number"`
	Description   string          `csv:"description"`
	Amount        decimal.Decimal `csv:"amount"`
	Currency      string          `csv:"currency"`
	Type          string          `csv:"type"`
	Reference     string          `csv:"reference"`
	Counterparty  string          `csv:"counterparty"`
}

// ValidateFormat checks whether a file's header row carries the columns of
// the generic export layout.
func ValidateFormat(filePath string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	header := strings.ToLower(scanner.Text())
	return strings.Contains(header, "date") &&
		strings.Contains(header, "amount") &&
		strings.Contains(header, "currency"), nil
}

// ParseToRows reads a CSV export and maps each line to a normalized
// transaction row.
func ParseToRows(filePath string, id models.Identity) (*models.Statement, error) {
	rows, err := common.ReadCSVFile[CSVRow](filePath)
	if err != nil {
		return nil, err
	}

	stmt := &models.Statement{}
	for _, row := range rows {
		valueDate := row.ValueDate
		if valueDate == "" {
			valueDate = row.Date
		}

		stmt.Transactions = append(stmt.Transactions, models.TransactionRow{
			OrganisationID:         id.OrganisationID,
			DivisionID:             id.DivisionID,
			BankID:                 id.BankID,
			AccountNumber:          row.AccountNumber,
			FinancialInstitute:     id.FinancialInstitute,
			PostingDate:            row.Date,
			ValueDate:              valueDate,
			Currency:               row.Currency,
			TransactionAmount:      row.Amount.Abs(),
			TransactionType:        transactionType(row),
			CustomerReference:      row.Reference,
			TransactionDescription: row.Description,
			CounterpartyName:       row.Counterparty,
		})
	}

	log.WithFields(logrus.Fields{
		"file":         filePath,
		"transactions": len(stmt.Transactions),
	}).Info("Parsed CSV export")
	return stmt, nil
}

// transactionType reads the explicit type column when present and falls
// back to the amount's sign.
func transactionType(row CSVRow) string {
	switch strings.ToUpper(strings.TrimSpace(row.Type)) {
	case "CREDIT", "C", "CRDT":
		return models.TransactionTypeCredit
	case "DEBIT", "D", "DBIT":
		return models.TransactionTypeDebit
	}
	if row.Amount.IsNegative() {
		return models.TransactionTypeDebit
	}
	return models.TransactionTypeCredit
}

// ConvertToCSV parses a CSV export and writes <stem>_transactions.csv in
// the normalized layout into the output directory.
func ConvertToCSV(inputFile, outputDir string, id models.Identity) error {
	valid, err := ValidateFormat(inputFile)
	if err != nil {
		return fmt.Errorf("error validating file format: %w", err)
	}
	if !valid {
		return fmt.Errorf("invalid CSV export format: %s", inputFile)
	}

	stmt, err := ParseToRows(inputFile, id)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	return common.WriteRowsToCSV(stmt.Transactions, filepath.Join(outputDir, stem+"_transactions.csv"))
}
