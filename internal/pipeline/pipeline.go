// Package pipeline routes statement files through the full ingestion path:
// parse by format, validate, encrypt sensitive fields, load, then move the
// source file out of the pending directory and record its status.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Hemanth4041/statement-loader/internal/bai2"
	"github.com/Hemanth4041/statement-loader/internal/baiparser"
	"github.com/Hemanth4041/statement-loader/internal/camtparser"
	"github.com/Hemanth4041/statement-loader/internal/crypto"
	"github.com/Hemanth4041/statement-loader/internal/csvparser"
	"github.com/Hemanth4041/statement-loader/internal/fileutils"
	"github.com/Hemanth4041/statement-loader/internal/models"
	"github.com/Hemanth4041/statement-loader/internal/store"
	"github.com/Hemanth4041/statement-loader/internal/validation"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// File type labels reported in results.
const (
	FileTypeBAI  = "bai"
	FileTypeCAMT = "camt"
	FileTypeCSV  = "csv"
)

// Directories groups the pending/archive/error locations a run works over.
type Directories struct {
	Pending string
	Archive string
	Error   string
}

// Pipeline wires the parsers, validator, encryptor and store together.
// Encryptor may be nil, in which case rows load unencrypted.
type Pipeline struct {
	Identity     models.Identity
	Mapping      baiparser.Mapping
	ParseOptions bai2.ParseOptions
	Schema       *validation.Schema
	Encryptor    *crypto.FieldEncryptor
	Tracker      store.StatusTracker
	Loader       store.Loader
}

// Result describes what happened to one input file.
type Result struct {
	Filename     string
	FileType     string
	Status       string
	MovedTo      string
	RunID        string
	Balances     int
	Transactions int
	Warnings     []string
	Err          error
}

// fileType picks the parser family from the file extension.
func fileType(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bai", ".txt":
		return FileTypeBAI, nil
	case ".xml":
		return FileTypeCAMT, nil
	case ".csv":
		return FileTypeCSV, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Base(path))
	}
}

func (p *Pipeline) parse(path, kind string) (*models.Statement, error) {
	switch kind {
	case FileTypeBAI:
		return baiparser.ParseToRows(path, p.Identity, p.Mapping, p.ParseOptions)
	case FileTypeCAMT:
		return camtparser.ParseToRows(path, p.Identity)
	case FileTypeCSV:
		return csvparser.ParseToRows(path, p.Identity)
	default:
		return nil, fmt.Errorf("no parser for file type %q", kind)
	}
}

// ProcessFile runs one file end to end and moves it into the archive or
// error directory. The returned result always reflects the final state;
// Err is set when the file landed in the error directory.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, dirs Directories) Result {
	filename := filepath.Base(path)
	result := Result{Filename: filename}

	p.Tracker.MarkProcessing(filename)

	err := func() error {
		kind, err := fileType(path)
		if err != nil {
			return err
		}
		result.FileType = kind

		stmt, err := p.parse(path, kind)
		if err != nil {
			return fmt.Errorf("parsing: %w", err)
		}

		vr := validation.Validate(stmt, p.Schema)
		result.Warnings = vr.Warnings
		for _, warning := range vr.Warnings {
			log.WithField("file", filename).Warn(warning)
		}
		if err := vr.Err(path); err != nil {
			return err
		}

		if p.Encryptor != nil {
			err := p.Encryptor.EncryptStatement(stmt,
				p.Schema.Balances.SensitiveFields(),
				p.Schema.Transactions.SensitiveFields())
			if err != nil {
				return fmt.Errorf("encrypting: %w", err)
			}
		}

		runID, err := p.Loader.LoadStatement(ctx, stmt)
		if err != nil {
			return fmt.Errorf("loading: %w", err)
		}

		result.RunID = runID
		result.Balances = len(stmt.Balances)
		result.Transactions = len(stmt.Transactions)
		return nil
	}()

	if err != nil {
		result.Status = store.StatusFailed
		result.Err = err
		if moved, moveErr := fileutils.MoveFile(path, dirs.Error); moveErr == nil {
			result.MovedTo = moved
		} else {
			log.WithError(moveErr).WithField("file", filename).Error("Failed to move file to error directory")
		}
		if trackErr := p.Tracker.MarkFailed(ctx, filename, err); trackErr != nil {
			log.WithError(trackErr).WithField("file", filename).Error("Failed to record failure status")
		}
		return result
	}

	result.Status = store.StatusSuccess
	if moved, moveErr := fileutils.MoveFile(path, dirs.Archive); moveErr == nil {
		result.MovedTo = moved
	} else {
		log.WithError(moveErr).WithField("file", filename).Error("Failed to archive file")
	}
	if trackErr := p.Tracker.MarkSuccess(ctx, filename); trackErr != nil {
		log.WithError(trackErr).WithField("file", filename).Error("Failed to record success status")
	}

	log.WithFields(logrus.Fields{
		"file":         filename,
		"type":         result.FileType,
		"run_id":       result.RunID,
		"balances":     result.Balances,
		"transactions": result.Transactions,
	}).Info("Processed statement file")
	return result
}

// ProcessPending walks the pending directory and processes every file in
// it, continuing past per-file failures.
func (p *Pipeline) ProcessPending(ctx context.Context, dirs Directories) ([]Result, error) {
	entries, err := filepath.Glob(filepath.Join(dirs.Pending, "*"))
	if err != nil {
		return nil, fmt.Errorf("listing pending directory: %w", err)
	}

	var results []Result
	for _, path := range entries {
		if !fileutils.FileExists(path) {
			continue
		}
		results = append(results, p.ProcessFile(ctx, path, dirs))
	}

	log.WithField("count", len(results)).Info("Pending directory processed")
	return results, nil
}
