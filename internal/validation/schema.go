package validation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldRule describes the constraints for one row field.
type FieldRule struct {
	Required  bool   `yaml:"required"`
	Nullable  bool   `yaml:"nullable"`
	Type      string `yaml:"type"`
	Sensitive bool   `yaml:"sensitive"`
}

// RowSchema is the rule set for one row kind plus cross-field constraints.
type RowSchema struct {
	Fields       map[string]FieldRule `yaml:"fields"`
	AtLeastOneOf [][]string           `yaml:"at_least_one_of"`
}

// Schema is the full validation configuration: one RowSchema per row kind.
type Schema struct {
	Balances     RowSchema `yaml:"balances"`
	Transactions RowSchema `yaml:"transactions"`
}

// Field type names accepted in a schema.
const (
	TypeString   = "string"
	TypeNumeric  = "numeric"
	TypeDate     = "date"
	TypeCurrency = "currency"
)

// LoadSchema reads a YAML validation schema.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing schema file %s: %w", path, err)
	}

	for name, rs := range map[string]RowSchema{"balances": schema.Balances, "transactions": schema.Transactions} {
		for field, rule := range rs.Fields {
			switch rule.Type {
			case "", TypeString, TypeNumeric, TypeDate, TypeCurrency:
			default:
				return nil, fmt.Errorf("schema %s.%s: unknown type %q", name, field, rule.Type)
			}
		}
	}

	return &schema, nil
}

// SensitiveFields lists the fields flagged sensitive in a row schema. The
// encryptor uses this to decide what to protect before loading.
func (rs RowSchema) SensitiveFields() []string {
	var fields []string
	for name, rule := range rs.Fields {
		if rule.Sensitive {
			fields = append(fields, name)
		}
	}
	return fields
}

// DefaultSchema is the built-in rule set used when no schema file is
// configured. Account numbers and counterparty details are the sensitive
// fields.
func DefaultSchema() *Schema {
	return &Schema{
		Balances: RowSchema{
			Fields: map[string]FieldRule{
				"organisation_id": {Required: true},
				"account_number":  {Required: true, Sensitive: true},
				"balance_date":    {Required: true, Type: TypeDate},
				"currency":        {Required: true, Type: TypeCurrency},
				"opening_balance": {Nullable: true, Type: TypeNumeric},
				"closing_balance": {Nullable: true, Type: TypeNumeric},
				"total_credits":   {Nullable: true, Type: TypeNumeric},
				"total_debits":    {Nullable: true, Type: TypeNumeric},
			},
		},
		Transactions: RowSchema{
			Fields: map[string]FieldRule{
				"organisation_id":      {Required: true},
				"account_number":       {Required: true, Sensitive: true},
				"posting_date":         {Required: true, Type: TypeDate},
				"value_date":           {Nullable: true, Type: TypeDate},
				"currency":             {Required: true, Type: TypeCurrency},
				"transaction_amount":   {Required: true, Type: TypeNumeric},
				"transaction_type":     {Required: true},
				"counterparty_name":    {Nullable: true, Sensitive: true},
				"counterparty_account": {Nullable: true, Sensitive: true},
			},
			AtLeastOneOf: [][]string{
				{"bank_reference", "customer_reference", "transaction_description"},
			},
		},
	}
}
