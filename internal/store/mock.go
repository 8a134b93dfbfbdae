package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Hemanth4041/statement-loader/internal/models"
)

// MockStatusTracker records status transitions in memory for tests.
type MockStatusTracker struct {
	Processing []string
	Succeeded  []string
	Failed     map[string]error

	SuccessErr error
	FailedErr  error
}

// NewMockStatusTracker creates an empty mock tracker.
func NewMockStatusTracker() *MockStatusTracker {
	return &MockStatusTracker{Failed: make(map[string]error)}
}

func (m *MockStatusTracker) MarkProcessing(filename string) {
	m.Processing = append(m.Processing, filename)
}

func (m *MockStatusTracker) MarkSuccess(_ context.Context, filename string) error {
	if m.SuccessErr != nil {
		return m.SuccessErr
	}
	m.Succeeded = append(m.Succeeded, filename)
	return nil
}

func (m *MockStatusTracker) MarkFailed(_ context.Context, filename string, reason error) error {
	if m.FailedErr != nil {
		return m.FailedErr
	}
	m.Failed[filename] = reason
	return nil
}

// MockLoader captures loaded statements in memory for tests.
type MockLoader struct {
	Loaded  []*models.Statement
	LoadErr error
}

func (m *MockLoader) LoadStatement(_ context.Context, stmt *models.Statement) (string, error) {
	if m.LoadErr != nil {
		return "", m.LoadErr
	}
	m.Loaded = append(m.Loaded, stmt)
	return uuid.NewString(), nil
}
