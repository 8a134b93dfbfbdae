// Package baiparser adapts BAI2 statement files to the normalized row model.
// It parses the fixed-field tree via internal/bai2 and flattens it into
// balance and transaction rows ready for validation and loading.
package baiparser

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Hemanth4041/statement-loader/internal/bai2"
	"github.com/Hemanth4041/statement-loader/internal/common"
	"github.com/Hemanth4041/statement-loader/internal/fileutils"
	"github.com/Hemanth4041/statement-loader/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
	bai2.SetLogger(logger)
}

// ParseFile parses a BAI2 statement file into its record tree.
func ParseFile(filePath string, opts bai2.ParseOptions) (*bai2.File, error) {
	log.WithField("file", filePath).Info("Parsing BAI2 file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening BAI2 file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return bai2.Parse(file, opts)
}

// ValidateFormat checks whether a file looks like a BAI2 statement by
// probing the first non-blank line for the file header record code.
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
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return strings.HasPrefix(line, "01,"), nil
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("error reading file: %w", err)
	}
	return false, nil
}

// ParseToRows parses a BAI2 file and transforms it into normalized rows.
func ParseToRows(filePath string, id models.Identity, m Mapping, opts bai2.ParseOptions) (*models.Statement, error) {
	f, err := ParseFile(filePath, opts)
	if err != nil {
		return nil, err
	}

	stmt, err := Transform(f, id, m)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"file":         filePath,
		"balances":     len(stmt.Balances),
		"transactions": len(stmt.Transactions),
	}).Info("Transformed BAI2 file")
	return stmt, nil
}

// ConvertToCSV parses a BAI2 file and writes <stem>_balances.csv and
// <stem>_transactions.csv into the output directory.
func ConvertToCSV(inputFile, outputDir string, id models.Identity, m Mapping, opts bai2.ParseOptions) error {
	valid, err := ValidateFormat(inputFile)
	if err != nil {
		return fmt.Errorf("error validating file format: %w", err)
	}
	if !valid {
		return fmt.Errorf("invalid BAI2 file format: %s", inputFile)
	}

	stmt, err := ParseToRows(inputFile, id, m, opts)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	if err := common.WriteRowsToCSV(stmt.Balances, filepath.Join(outputDir, stem+"_balances.csv")); err != nil {
		return err
	}
	if err := common.WriteRowsToCSV(stmt.Transactions, filepath.Join(outputDir, stem+"_transactions.csv")); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"input":  inputFile,
		"output": outputDir,
	}).Info("Successfully converted BAI2 file to CSV")
	return nil
}

// BatchConvert converts every .bai and .txt file in a directory.
// It returns the number of files converted.
func BatchConvert(inputDir, outputDir string, id models.Identity, m Mapping, opts bai2.ParseOptions) (int, error) {
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, err
	}

	var files []string
	for _, ext := range []string{".bai", ".txt"} {
		matched, err := fileutils.ListFilesWithExtension(inputDir, ext)
		if err != nil {
			return 0, err
		}
		files = append(files, matched...)
	}

	converted := 0
	for _, file := range files {
		if err := ConvertToCSV(file, outputDir, id, m, opts); err != nil {
			return converted, fmt.Errorf("converting %s: %w", file, err)
		}
		converted++
	}

	log.WithField("count", converted).Info("Batch conversion complete")
	return converted, nil
}
