package bai2

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoundTrip(t *testing.T) {
	lines := sampleLines()
	f, err := ParseLines(lines, DefaultParseOptions())
	require.NoError(t, err)

	assert.Equal(t, lines, Write(f, DefaultWriteOptions()))
}

func TestWriteStringRoundTrip(t *testing.T) {
	input := strings.Join(sampleLines(), "\n")
	f, err := ParseString(input, DefaultParseOptions())
	require.NoError(t, err)

	assert.Equal(t, input, WriteString(f, DefaultWriteOptions()))
}

func TestWriteRecomputesTotals(t *testing.T) {
	f, err := ParseLines(sampleLines(), DefaultParseOptions())
	require.NoError(t, err)

	// Tamper with every declared total; the writer recomputes them all.
	f.Groups[0].Accounts[0].Trailer.AccountControlTotal = decimal.Zero
	f.Groups[0].Trailer.GroupControlTotal = decimal.Zero
	f.Trailer.FileControlTotal = decimal.Zero
	f.Trailer.NumberOfRecords = nil

	lines := Write(f, DefaultWriteOptions())
	assert.Equal(t, "49,192500,3/", lines[4])
	assert.Equal(t, "98,192500,1,5/", lines[5])
	assert.Equal(t, "99,192500,1,7/", lines[6])
}

func TestWriteWrapsLongText(t *testing.T) {
	lines := []string{
		"01,SENDER,RECEIVER,210706,0800,1,80,10,2/",
		"02,RECEIVER,SENDER,1,210706,0800,GBP,2/",
		"03,12345678,GBP/",
		"16,399,2500,,,,Transaction narrative that is long enough to need wrapping across several continuation lines before it ends/",
		"49,2500,3/",
		"98,2500,1,5/",
		"99,2500,1,7/",
	}
	f, err := ParseLines(lines, ParseOptions{})
	require.NoError(t, err)
	text := f.Groups[0].Accounts[0].Transactions[0].Text

	opts := DefaultWriteOptions()
	opts.LineLength = 50
	out := Write(f, opts)

	var continuations int
	for _, line := range out {
		assert.LessOrEqual(t, len(line), 50)
		if strings.HasPrefix(line, "88,") {
			continuations++
		}
	}
	require.GreaterOrEqual(t, continuations, 2)

	// Folding the wrapped output reassembles the exact original text.
	reparsed, err := ParseLines(out, DefaultParseOptions())
	require.NoError(t, err)
	assert.Equal(t, text, reparsed.Groups[0].Accounts[0].Transactions[0].Text)
}

func TestWriteTextOnNewLine(t *testing.T) {
	f, err := ParseLines(sampleLines(), DefaultParseOptions())
	require.NoError(t, err)

	opts := DefaultWriteOptions()
	opts.TextOnNewLine = true
	out := Write(f, opts)

	assert.Equal(t, "16,399,2500,,,/", out[3])
	assert.Equal(t, "88,Payment for services/", out[4])

	reparsed, err := ParseLines(out, DefaultParseOptions())
	require.NoError(t, err)
	txn := reparsed.Groups[0].Accounts[0].Transactions[0]
	assert.Equal(t, "Payment for services", txn.Text)
}

func TestWriteWrapsAccountIdentifier(t *testing.T) {
	lines := []string{
		"01,SENDER,RECEIVER,210706,0800,1,80,10,2/",
		"02,RECEIVER,SENDER,1,210706,0800,GBP,2/",
		"03,12345678,GBP,010,100000,,,015,90000,,,045,85000,,,072,1200,,,074,300,,/",
		"49,276500,2/",
		"98,276500,1,4/",
		"99,276500,1,6/",
	}
	f, err := ParseLines(lines, DefaultParseOptions())
	require.NoError(t, err)
	require.Len(t, f.Groups[0].Accounts[0].Identifier.Summaries, 5)

	opts := DefaultWriteOptions()
	opts.LineLength = 40
	out := Write(f, opts)

	var split int
	for _, line := range out {
		assert.LessOrEqual(t, len(line), 40)
		if strings.HasPrefix(line, "88,") {
			split++
		}
	}
	require.NotZero(t, split)

	// Concatenation folding restores the summary items even when a value
	// was chunked mid-number.
	reparsed, err := ParseLines(out, DefaultParseOptions())
	require.NoError(t, err)
	assert.Equal(t,
		f.Groups[0].Accounts[0].Identifier.Summaries,
		reparsed.Groups[0].Accounts[0].Identifier.Summaries)
}

func TestWriteClockFormat(t *testing.T) {
	lines := []string{
		"01,SENDER,RECEIVER,210706,0830,1,80,10,2/",
		"02,RECEIVER,SENDER,1,210706,2400,GBP,2/",
		"03,12345678,GBP/",
		"49,0,2/",
		"98,0,1,4/",
		"99,0,1,6/",
	}
	f, err := ParseLines(lines, DefaultParseOptions())
	require.NoError(t, err)

	opts := DefaultWriteOptions()
	opts.ClockFormatForIntraDay = true
	out := Write(f, opts)

	// Intra-day times switch to clock format, end of day stays 2400.
	assert.Equal(t, "01,SENDER,RECEIVER,210706,08:30:00,1,80,10,2/", out[0])
	assert.Equal(t, "02,RECEIVER,SENDER,1,210706,2400,GBP,2/", out[1])
}
