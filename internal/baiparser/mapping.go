package baiparser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mapping drives the bank-specific parts of the transformation: which
// summary type codes feed which balance columns, and how transaction type
// codes translate to SWIFT transaction codes.
type Mapping struct {
	Balances map[string]string `yaml:"balances"`
	Swift    map[string]string `yaml:"swift"`
}

// MappingFile is the on-disk shape: shared defaults plus per-bank overrides.
type MappingFile struct {
	Default Mapping            `yaml:"default"`
	Banks   map[string]Mapping `yaml:"banks"`
}

// DefaultMapping covers the common status and activity type codes. Banks
// that use non-standard codes override these via the mapping file.
func DefaultMapping() Mapping {
	return Mapping{
		Balances: map[string]string{
			"010": "opening_balance",
			"015": "closing_balance",
			"100": "total_credits",
			"400": "total_debits",
		},
		Swift: map[string]string{
			"165": "NTRF",
			"195": "NTRF",
			"399": "NMSC",
			"475": "NCHK",
			"495": "NTRF",
			"699": "NMSC",
		},
	}
}

// LoadMappingFile reads a YAML mapping file. A missing or empty path
// yields an empty file, which resolves to the defaults.
func LoadMappingFile(path string) (MappingFile, error) {
	if path == "" {
		return MappingFile{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return MappingFile{}, fmt.Errorf("reading mapping file: %w", err)
	}

	var mf MappingFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return MappingFile{}, fmt.Errorf("parsing mapping file %s: %w", path, err)
	}
	return mf, nil
}

// ForBank resolves the mapping for one bank: built-in defaults, overlaid
// with the file's defaults, overlaid with the bank's own entries.
func (mf MappingFile) ForBank(bankID string) Mapping {
	m := DefaultMapping()
	overlay(&m, mf.Default)
	if bank, ok := mf.Banks[bankID]; ok {
		overlay(&m, bank)
	}
	return m
}

func overlay(dst *Mapping, src Mapping) {
	for code, column := range src.Balances {
		dst.Balances[code] = column
	}
	for code, swift := range src.Swift {
		dst.Swift[code] = swift
	}
}
