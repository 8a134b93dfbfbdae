// Package validation applies a schema-driven rule set to normalized rows
// before they are loaded. Rule breaches are failures; suspicious but
// loadable data produces warnings.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Hemanth4041/statement-loader/internal/models"
	"github.com/Hemanth4041/statement-loader/internal/parsererror"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	numericPattern  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

var validTransactionTypes = map[string]bool{
	"C": true, "D": true, "CREDIT": true, "DEBIT": true, "CRDT": true, "DBIT": true,
}

// Balance integrity mismatches below this are rounding noise.
var balanceTolerance = decimal.NewFromFloat(0.01)

// Result collects everything found while validating one statement.
type Result struct {
	Failures []string
	Warnings []string
}

// OK reports whether the statement can be loaded.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}

// Err converts the result into a ValidationError, or nil when loadable.
func (r Result) Err(filePath string) error {
	if r.OK() {
		return nil
	}
	return &parsererror.ValidationError{
		FilePath: filePath,
		Reason:   strings.Join(r.Failures, "; "),
	}
}

// Validate checks every row of a statement against the schema.
func Validate(stmt *models.Statement, schema *Schema) Result {
	var result Result

	for i, row := range stmt.Balances {
		fields := models.FieldMap(row)
		validateRow(&result, fmt.Sprintf("balance row %d", i+1), fields, schema.Balances)
		checkBalanceIntegrity(&result, i+1, row)
	}
	for i, row := range stmt.Transactions {
		fields := models.FieldMap(row)
		prefix := fmt.Sprintf("transaction row %d", i+1)
		validateRow(&result, prefix, fields, schema.Transactions)
		if txType, ok := fields["transaction_type"]; ok && txType != "" {
			if !validTransactionTypes[strings.ToUpper(txType)] {
				result.Failures = append(result.Failures,
					fmt.Sprintf("%s: transaction_type %q is not recognized", prefix, txType))
			}
		}
	}

	log.WithFields(logrus.Fields{
		"failures": len(result.Failures),
		"warnings": len(result.Warnings),
	}).Debug("Validation complete")
	return result
}

func validateRow(result *Result, prefix string, fields map[string]string, rs RowSchema) {
	names := make([]string, 0, len(rs.Fields))
	for name := range rs.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rule := rs.Fields[name]
		value, present := fields[name]

		if value == "" {
			if rule.Required && !rule.Nullable {
				result.Failures = append(result.Failures,
					fmt.Sprintf("%s: %s is required", prefix, name))
			}
			continue
		}
		if !present {
			continue
		}

		if msg := checkType(name, value, rule.Type); msg != "" {
			result.Failures = append(result.Failures, fmt.Sprintf("%s: %s", prefix, msg))
		}
	}

	for _, group := range rs.AtLeastOneOf {
		found := false
		for _, name := range group {
			if fields[name] != "" {
				found = true
				break
			}
		}
		if !found {
			result.Failures = append(result.Failures,
				fmt.Sprintf("%s: at least one of %s must be set", prefix, strings.Join(group, ", ")))
		}
	}
}

func checkType(name, value, fieldType string) string {
	switch fieldType {
	case TypeNumeric:
		if !numericPattern.MatchString(value) {
			return fmt.Sprintf("%s %q is not numeric", name, value)
		}
	case TypeDate:
		if !datePattern.MatchString(value) {
			return fmt.Sprintf("%s %q is not an ISO date", name, value)
		}
	case TypeCurrency:
		if !currencyPattern.MatchString(value) {
			return fmt.Sprintf("%s %q is not an ISO currency code", name, value)
		}
	}
	return ""
}

// checkBalanceIntegrity warns when closing != opening + credits - debits.
// A warning rather than a failure: banks routinely report partial summary
// sets, so the arithmetic cannot be enforced.
func checkBalanceIntegrity(result *Result, index int, row models.BalanceRow) {
	if row.TotalCredits.IsZero() && row.TotalDebits.IsZero() {
		// Activity totals were not reported, nothing to reconcile against.
		return
	}

	expected := row.OpeningBalance.Add(row.TotalCredits).Sub(row.TotalDebits)
	if expected.Sub(row.ClosingBalance).Abs().GreaterThan(balanceTolerance) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("balance row %d: closing balance %s does not reconcile, expected %s",
				index, row.ClosingBalance, expected))
	}
}
