package bai2

import (
	"strings"

	"github.com/Hemanth4041/statement-loader/internal/parsererror"
)

// RecordCode identifies the logical record type carried in the first two
// characters of each physical line.
type RecordCode string

const (
	CodeFileHeader        RecordCode = "01"
	CodeGroupHeader       RecordCode = "02"
	CodeAccountIdentifier RecordCode = "03"
	CodeTransactionDetail RecordCode = "16"
	CodeAccountTrailer    RecordCode = "49"
	CodeContinuation      RecordCode = "88"
	CodeGroupTrailer      RecordCode = "98"
	CodeFileTrailer       RecordCode = "99"
)

const (
	fieldSeparator   = ","
	recordTerminator = '/'
)

var validRecordCodes = map[RecordCode]bool{
	CodeFileHeader:        true,
	CodeGroupHeader:       true,
	CodeAccountIdentifier: true,
	CodeTransactionDetail: true,
	CodeAccountTrailer:    true,
	CodeContinuation:      true,
	CodeGroupTrailer:      true,
	CodeFileTrailer:       true,
}

// Row is one physical line split into its record code and field payload.
type Row struct {
	Code    RecordCode
	Payload string
}

// Record is one logical record after folding continuation rows: the record
// code, the flat field list, and the physical rows it was built from.
type Record struct {
	Code   RecordCode
	Fields []string
	Rows   []Row
}

// splitRow splits a raw line into its record code and payload. The payload
// starts after the two character code and its separator.
func splitRow(line string) (Row, error) {
	if len(line) < 2 {
		return Row{}, &parsererror.StructureError{Msg: "line too short to carry a record code: " + line}
	}
	code := RecordCode(line[:2])
	if !validRecordCodes[code] {
		return Row{}, &parsererror.StructureError{Msg: "unrecognized record code " + string(code)}
	}
	payload := ""
	if len(line) > 3 {
		payload = line[3:]
	}
	return Row{Code: code, Payload: payload}, nil
}

// buildGenericRecord folds a span of physical rows into one logical record.
// Each row contributes its payload with a single trailing terminator
// stripped; terminated rows are joined with the field separator, rows with
// no terminator are joined with a space. The combined string is then split
// into the flat field list.
func buildGenericRecord(rows []Row) *Record {
	var b strings.Builder
	for _, row := range rows {
		payload := row.Payload
		if payload == "" {
			continue
		}
		if payload[len(payload)-1] == recordTerminator {
			b.WriteString(payload[:len(payload)-1])
			b.WriteString(fieldSeparator)
		} else {
			b.WriteString(payload)
			b.WriteByte(' ')
		}
	}
	combined := b.String()
	if combined != "" {
		combined = combined[:len(combined)-1]
	}
	return &Record{
		Code:   rows[0].Code,
		Fields: strings.Split(combined, fieldSeparator),
		Rows:   rows,
	}
}

// buildAccountIdentifierRecord folds an account identifier record. Unlike
// generic records the payloads are concatenated with no filler, so a value
// chunked across continuation rows reassembles byte for byte. The summary
// span is then normalized to a fixed stride (see normalizeSummaryFields).
func buildAccountIdentifierRecord(rows []Row) *Record {
	var b strings.Builder
	for _, row := range rows {
		payload := row.Payload
		if payload == "" {
			continue
		}
		if payload[len(payload)-1] == recordTerminator {
			payload = payload[:len(payload)-1]
		}
		b.WriteString(payload)
	}

	fields := strings.Split(b.String(), fieldSeparator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	// Drop empty fields at the end only.
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) >= 2 {
		fields = normalizeSummaryFields(fields)
	}
	return &Record{Code: rows[0].Code, Fields: fields, Rows: rows}
}

// looksLikeTypeCode reports whether a field is plausibly a type code:
// exactly three digits with a numeric value of at least 10.
func looksLikeTypeCode(field string) bool {
	if len(field) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if field[i] < '0' || field[i] > '9' {
			return false
		}
	}
	// 000-009 never appear as type codes.
	return field[0] != '0' || field[1] != '0'
}

// normalizeSummaryFields rewrites the variable-width summary span of an
// account identifier record into fixed groups of four: type code, amount,
// item count, funds type. Item count and funds type are each independently
// omittable by some senders, so the boundary of each summary item is
// recovered by scanning up to four fields ahead for the next value that
// looks like a type code. When no candidate is found before the end of the
// input the remaining fields are consumed greedily: two when two or more
// remain, otherwise one.
//
// The recovery is best effort. A count or funds type value that happens to
// resemble a three digit type code can still shift the boundaries; this is
// a known limitation of the wire format, not something to correct here.
func normalizeSummaryFields(fields []string) []string {
	normalized := make([]string, 0, len(fields))
	normalized = append(normalized, fields[:2]...)
	rest := fields[2:]

	i := 0
	for i < len(rest) {
		typeCode := rest[i]
		i++

		if i >= len(rest) {
			// Type code at the end with no amount.
			normalized = append(normalized, typeCode, "", "", "")
			break
		}
		amount := rest[i]
		i++

		itemCount, fundsType := "", ""

		next := -1
		for j := i; j < i+4 && j < len(rest); j++ {
			if looksLikeTypeCode(rest[j]) {
				next = j
				break
			}
		}

		if next >= 0 {
			switch gap := next - i; {
			case gap >= 2:
				itemCount, fundsType = rest[i], rest[i+1]
				i += 2
			case gap == 1:
				itemCount = rest[i]
				i++
			}
		} else {
			switch remaining := len(rest) - i; {
			case remaining >= 2:
				itemCount, fundsType = rest[i], rest[i+1]
				i += 2
			case remaining == 1:
				itemCount = rest[i]
				i++
			}
		}

		normalized = append(normalized, typeCode, amount, itemCount, fundsType)
	}
	return normalized
}

func buildRecord(rows []Row) *Record {
	if rows[0].Code == CodeAccountIdentifier {
		return buildAccountIdentifierRecord(rows)
	}
	return buildGenericRecord(rows)
}

// recordIterator is a single forward pass over the input: physical rows in,
// logical records out, one position of lookahead. After the last record is
// consumed the current record stays in place so callers can still report
// what they found there.
type recordIterator struct {
	rows []Row
	pos  int
	cur  *Record
}

func newRecordIterator(lines []string) (*recordIterator, error) {
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		row, err := splitRow(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, &parsererror.StructureError{Msg: "no records in input"}
	}
	it := &recordIterator{rows: rows}
	it.advance()
	return it, nil
}

// advance folds the next span of physical rows into the current logical
// record. It returns false once the input is exhausted.
func (it *recordIterator) advance() bool {
	if it.pos >= len(it.rows) {
		return false
	}
	span := []Row{it.rows[it.pos]}
	it.pos++
	for it.pos < len(it.rows) && it.rows[it.pos].Code == CodeContinuation {
		span = append(span, it.rows[it.pos])
		it.pos++
	}
	it.cur = buildRecord(span)
	return true
}
