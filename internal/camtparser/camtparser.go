// Package camtparser adapts CAMT.053 XML statements to the normalized row
// model. Extraction is XPath-based: parallel value slices indexed per entry,
// with missing optional elements reading as empty strings.
package camtparser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Hemanth4041/statement-loader/internal/common"
	"github.com/Hemanth4041/statement-loader/internal/fileutils"
	"github.com/Hemanth4041/statement-loader/internal/models"
	"github.com/Hemanth4041/statement-loader/internal/xmlutils"
)

var log = logrus.New()

var xpaths = xmlutils.DefaultCamt053XPaths()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
	xmlutils.SetLogger(logger)
}

// ValidateFormat checks whether a file is a CAMT.053 bank to customer
// statement by probing for the statement identifier element.
func ValidateFormat(filePath string) (bool, error) {
	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		return false, nil
	}

	ok, err := xmlutils.Exists(root, xpaths.Statement.ID)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// ParseToRows parses a CAMT.053 file into normalized transaction rows.
// CAMT.053 carries no balance summary in the subset handled here, so the
// statement's Balances slice stays empty.
func ParseToRows(filePath string, id models.Identity) (*models.Statement, error) {
	log.WithField("file", filePath).Info("Parsing CAMT.053 file")

	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		return nil, err
	}

	extract := func(xpath string) []string {
		if err != nil {
			return nil
		}
		var values []string
		values, err = xmlutils.ExtractFromXML(root, xpath)
		return values
	}

	iban := extract(xpaths.Statement.IBAN)
	stmtCurrency := extract(xpaths.Statement.Currency)
	amounts := extract(xpaths.Entry.Amount)
	currencies := extract(xpaths.Entry.Currency)
	cdIndicators := extract(xpaths.Entry.CreditDebitInd)
	bookingDates := extract(xpaths.Entry.BookingDate)
	valueDates := extract(xpaths.Entry.ValueDate)
	svcRefs := extract(xpaths.Entry.AccountSvcRef)
	entryInfos := extract(xpaths.Entry.AddEntryInfo)
	endToEndIDs := extract(xpaths.References.EndToEndID)
	remittance := extract(xpaths.Remittance.UnstructuredInfo)
	debtorNames := extract(xpaths.Party.DebtorName)
	debtorIBANs := extract(xpaths.Party.DebtorIBAN)
	creditorNames := extract(xpaths.Party.CreditorName)
	creditorIBANs := extract(xpaths.Party.CreditorIBAN)
	if err != nil {
		return nil, err
	}

	account := xmlutils.GetOrEmpty(iban, 0)
	accountCurrency := xmlutils.GetOrEmpty(stmtCurrency, 0)

	stmt := &models.Statement{}
	for i := range amounts {
		amount, err := decimal.NewFromString(strings.TrimSpace(amounts[i]))
		if err != nil {
			return nil, fmt.Errorf("entry %d: invalid amount %q: %w", i, amounts[i], err)
		}

		txType := models.TransactionTypeCredit
		name := xmlutils.GetOrEmpty(debtorNames, i)
		cpAccount := xmlutils.GetOrEmpty(debtorIBANs, i)
		if xmlutils.GetOrEmpty(cdIndicators, i) == "DBIT" {
			txType = models.TransactionTypeDebit
			name = xmlutils.GetOrEmpty(creditorNames, i)
			cpAccount = xmlutils.GetOrEmpty(creditorIBANs, i)
		}

		description := xmlutils.CleanText(xmlutils.GetOrEmpty(remittance, i))
		if description == "" {
			description = xmlutils.CleanText(xmlutils.GetOrEmpty(entryInfos, i))
		}

		currency := xmlutils.GetOrEmpty(currencies, i)
		if currency == "" {
			currency = accountCurrency
		}

		stmt.Transactions = append(stmt.Transactions, models.TransactionRow{
			OrganisationID:         id.OrganisationID,
			DivisionID:             id.DivisionID,
			BankID:                 id.BankID,
			AccountNumber:          account,
			FinancialInstitute:     id.FinancialInstitute,
			PostingDate:            xmlutils.GetOrEmpty(bookingDates, i),
			ValueDate:              xmlutils.GetOrEmpty(valueDates, i),
			Currency:               currency,
			TransactionAmount:      amount,
			TransactionType:        txType,
			BankReference:          xmlutils.GetOrEmpty(svcRefs, i),
			CustomerReference:      xmlutils.GetOrEmpty(endToEndIDs, i),
			TransactionDescription: description,
			CounterpartyName:       name,
			CounterpartyAccount:    cpAccount,
		})
	}

	log.WithFields(logrus.Fields{
		"file":         filePath,
		"transactions": len(stmt.Transactions),
	}).Info("Parsed CAMT.053 file")
	return stmt, nil
}

// ConvertToCSV parses a CAMT.053 file and writes <stem>_transactions.csv
// into the output directory.
func ConvertToCSV(inputFile, outputDir string, id models.Identity) error {
	valid, err := ValidateFormat(inputFile)
	if err != nil {
		return fmt.Errorf("error validating file format: %w", err)
	}
	if !valid {
		return fmt.Errorf("invalid CAMT.053 file format: %s", inputFile)
	}

	stmt, err := ParseToRows(inputFile, id)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	return common.WriteRowsToCSV(stmt.Transactions, filepath.Join(outputDir, stem+"_transactions.csv"))
}

// BatchConvert converts every .xml file in a directory. It returns the
// number of files converted.
func BatchConvert(inputDir, outputDir string, id models.Identity) (int, error) {
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, err
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".xml")
	if err != nil {
		return 0, err
	}

	converted := 0
	for _, file := range files {
		if err := ConvertToCSV(file, outputDir, id); err != nil {
			return converted, fmt.Errorf("converting %s: %w", file, err)
		}
		converted++
	}

	log.WithField("count", converted).Info("Batch conversion complete")
	return converted, nil
}
