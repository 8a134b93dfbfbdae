package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := &ParseError{Parser: "bai2", Field: "amount", Value: "abc", Err: cause}

	assert.Equal(t, "bai2: failed to parse amount='abc': invalid syntax", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestStructureError(t *testing.T) {
	err := &StructureError{Expected: "98", Actual: "99"}
	assert.Equal(t, "expected record code 98, got 99 instead", err.Error())

	err = &StructureError{Msg: "group without accounts not allowed"}
	assert.Equal(t, "group without accounts not allowed", err.Error())
}

func TestIntegrityError(t *testing.T) {
	err := &IntegrityError{
		Entity:   "account",
		Check:    "account control total",
		Expected: "100",
		Actual:   "90",
	}
	assert.Equal(t, "invalid account control total for account: expected 100, found 90", err.Error())
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("processing statement: %w",
		&UnsupportedFormatError{Msg: "only version 2 is supported"})

	var unsupported *UnsupportedFormatError
	assert.True(t, errors.As(wrapped, &unsupported))

	var integrity *IntegrityError
	assert.False(t, errors.As(wrapped, &integrity))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "in/statement.bai", Reason: "currency: not a valid ISO code"}
	assert.Equal(t, "validation failed for in/statement.bai: currency: not a valid ISO code", err.Error())
}
