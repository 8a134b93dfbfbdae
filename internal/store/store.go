// Package store persists normalized rows and per-file processing status.
// The production implementation sits on SQLite; tests use the in-package
// mocks.
package store

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Hemanth4041/statement-loader/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Status values recorded per processed file.
const (
	StatusProcessing = "PROCESSING"
	StatusSuccess    = "SUCCESS"
	StatusFailed     = "FAILED"
)

// Source tag recorded with every status row. Statements always arrive from
// outside the system.
const statusSource = "external"

// StatusTracker records the lifecycle of one input file. Processing is a
// log-only event; only terminal states are persisted.
type StatusTracker interface {
	MarkProcessing(filename string)
	MarkSuccess(ctx context.Context, filename string) error
	MarkFailed(ctx context.Context, filename string, reason error) error
}

// Loader persists a statement's rows under a fresh load-run identifier.
type Loader interface {
	LoadStatement(ctx context.Context, stmt *models.Statement) (runID string, err error)
}
