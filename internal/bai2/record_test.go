package bai2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		code    RecordCode
		payload string
		wantErr bool
	}{
		{name: "file header", line: "01,SENDER,RECEIVER/", code: CodeFileHeader, payload: "SENDER,RECEIVER/"},
		{name: "bare code", line: "99", code: CodeFileTrailer, payload: ""},
		{name: "unknown code", line: "77,FIELD/", wantErr: true},
		{name: "too short", line: "9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := splitRow(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, row.Code)
			assert.Equal(t, tt.payload, row.Payload)
		})
	}
}

func TestBuildGenericRecord(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		fields []string
	}{
		{
			name:   "single terminated line",
			lines:  []string{"16,399,2500,,,,some text/"},
			fields: []string{"399", "2500", "", "", "", "some text"},
		},
		{
			name: "terminated continuation restores comma",
			lines: []string{
				"16,399,2500,,,REF/",
				"88,continued text/",
			},
			fields: []string{"399", "2500", "", "", "REF", "continued text"},
		},
		{
			name: "unterminated continuation restores space",
			lines: []string{
				"16,399,2500,,,,text that is",
				"88,continued on the next line/",
			},
			fields: []string{"399", "2500", "", "", "", "text that is continued on the next line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows []Row
			for _, line := range tt.lines {
				row, err := splitRow(line)
				require.NoError(t, err)
				rows = append(rows, row)
			}
			record := buildGenericRecord(rows)
			assert.Equal(t, tt.fields, record.Fields)
			assert.Len(t, record.Rows, len(tt.lines))
		})
	}
}

func TestBuildAccountIdentifierRecord(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		fields []string
	}{
		{
			name:   "summary with both optional fields",
			lines:  []string{"03,12345678,GBP,010,100000,5,0/"},
			fields: []string{"12345678", "GBP", "010", "100000", "5", "0"},
		},
		{
			name:   "summary with neither optional field",
			lines:  []string{"03,12345678,GBP,010,500,015,300/"},
			fields: []string{"12345678", "GBP", "010", "500", "", "", "015", "300", "", ""},
		},
		{
			name:   "summary with item count only",
			lines:  []string{"03,12345678,GBP,100,500,2,400,900,1/"},
			fields: []string{"12345678", "GBP", "100", "500", "2", "", "400", "900", "1", ""},
		},
		{
			name:   "trailing empty fields dropped before normalization",
			lines:  []string{"03,12345678,GBP,010,100000,,,015,90000,,/"},
			fields: []string{"12345678", "GBP", "010", "100000", "", "", "015", "90000", "", ""},
		},
		{
			name: "continuation concatenates without filler",
			lines: []string{
				"03,12345678,GBP,010,1000",
				"88,00,,,015,90000,,/",
			},
			fields: []string{"12345678", "GBP", "010", "100000", "", "", "015", "90000", "", ""},
		},
		{
			name:   "type code at the end",
			lines:  []string{"03,12345678,GBP,010/"},
			fields: []string{"12345678", "GBP", "010", "", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows []Row
			for _, line := range tt.lines {
				row, err := splitRow(line)
				require.NoError(t, err)
				rows = append(rows, row)
			}
			record := buildAccountIdentifierRecord(rows)
			assert.Equal(t, tt.fields, record.Fields)
		})
	}
}

func TestLooksLikeTypeCode(t *testing.T) {
	assert.True(t, looksLikeTypeCode("010"))
	assert.True(t, looksLikeTypeCode("399"))
	assert.False(t, looksLikeTypeCode("009"))
	assert.False(t, looksLikeTypeCode("39"))
	assert.False(t, looksLikeTypeCode("3999"))
	assert.False(t, looksLikeTypeCode("ABC"))
	assert.False(t, looksLikeTypeCode(""))
}

func TestRecordIterator(t *testing.T) {
	t.Run("folds continuation spans", func(t *testing.T) {
		it, err := newRecordIterator([]string{
			"01,SENDER,RECEIVER/",
			"16,399,100,,,REF/",
			"88,more text/",
			"99,100,1,4/",
		})
		require.NoError(t, err)

		assert.Equal(t, CodeFileHeader, it.cur.Code)
		require.True(t, it.advance())
		assert.Equal(t, CodeTransactionDetail, it.cur.Code)
		assert.Len(t, it.cur.Rows, 2)
		require.True(t, it.advance())
		assert.Equal(t, CodeFileTrailer, it.cur.Code)

		// Exhausted input leaves the current record in place.
		assert.False(t, it.advance())
		assert.Equal(t, CodeFileTrailer, it.cur.Code)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := newRecordIterator(nil)
		assert.Error(t, err)
	})

	t.Run("invalid code rejected up front", func(t *testing.T) {
		_, err := newRecordIterator([]string{"01,S,R/", "42,bogus/"})
		assert.Error(t, err)
	})
}
