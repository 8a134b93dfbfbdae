package bai2

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hemanth4041/statement-loader/internal/parsererror"
)

// ParseOptions controls integrity validation during parsing.
type ParseOptions struct {
	// CheckIntegrity enables reconciliation of declared counts and control
	// totals against the parsed tree. Structural checks always run.
	CheckIntegrity bool

	// IgnoredSummaryCodes lists summary type codes excluded from account
	// control total reconciliation. Some banks report memo items that are
	// not part of the trailer total.
	IgnoredSummaryCodes []string
}

// DefaultParseOptions enables integrity checking with no ignored codes.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{CheckIntegrity: true}
}

// controlTotalTolerance absorbs float rounding some senders apply to
// control totals.
var controlTotalTolerance = decimal.NewFromFloat(0.01)

type parser struct {
	it      *recordIterator
	opts    ParseOptions
	ignored map[string]bool
}

func newParser(lines []string, opts ParseOptions) (*parser, error) {
	it, err := newRecordIterator(lines)
	if err != nil {
		return nil, err
	}
	ignored := make(map[string]bool, len(opts.IgnoredSummaryCodes))
	for _, code := range opts.IgnoredSummaryCodes {
		ignored[code] = true
	}
	return &parser{it: it, opts: opts, ignored: ignored}, nil
}

// expect fails unless the current record carries the given code.
func (p *parser) expect(code RecordCode) error {
	if p.it.cur.Code != code {
		return &parsererror.StructureError{
			Expected: string(code),
			Actual:   string(p.it.cur.Code),
		}
	}
	return nil
}

// fieldScanner walks a record's flat field list in declaration order. A
// missing or empty field yields the type's zero value; the first decode
// failure sticks and is reported once scanning is done.
type fieldScanner struct {
	record *Record
	pos    int
	err    error
}

func newFieldScanner(r *Record) *fieldScanner {
	return &fieldScanner{record: r}
}

// next returns the next raw field, or ok=false when the field is absent or
// empty.
func (s *fieldScanner) next() (string, bool) {
	if s.pos >= len(s.record.Fields) {
		return "", false
	}
	raw := s.record.Fields[s.pos]
	s.pos++
	return raw, raw != ""
}

func (s *fieldScanner) fail(field, value string, err error) {
	if s.err == nil {
		s.err = &parsererror.ParseError{Parser: "bai2", Field: field, Value: value, Err: err}
	}
}

func (s *fieldScanner) text(string) string {
	raw, _ := s.next()
	return raw
}

func (s *fieldScanner) intPtr(field string) *int {
	raw, ok := s.next()
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.fail(field, raw, err)
		return nil
	}
	return &n
}

// total decodes a control total, defaulting to zero when absent.
func (s *fieldScanner) total(field string) decimal.Decimal {
	raw, ok := s.next()
	if !ok {
		return decimal.Zero
	}
	d, err := parseAmount(raw)
	if err != nil {
		s.fail(field, raw, err)
		return decimal.Zero
	}
	return d
}

func (s *fieldScanner) amountPtr(field string) *decimal.Decimal {
	raw, ok := s.next()
	if !ok {
		return nil
	}
	d, err := parseAmount(raw)
	if err != nil {
		s.fail(field, raw, err)
		return nil
	}
	return &d
}

func (s *fieldScanner) datePtr(field string) *time.Time {
	raw, ok := s.next()
	if !ok {
		return nil
	}
	t, err := parseDate(raw)
	if err != nil {
		s.fail(field, raw, err)
		return nil
	}
	return &t
}

func (s *fieldScanner) timePtr(field string) *Time {
	raw, ok := s.next()
	if !ok {
		return nil
	}
	t, err := parseTime(raw)
	if err != nil {
		s.fail(field, raw, err)
		return nil
	}
	return &t
}

func (s *fieldScanner) typeCode(field string) *TypeCode {
	raw, ok := s.next()
	if !ok {
		return nil
	}
	tc, err := LookupTypeCode(raw)
	if err != nil {
		s.fail(field, raw, err)
		return nil
	}
	return tc
}

func (s *fieldScanner) fundsType(field string) FundsType {
	raw, ok := s.next()
	if !ok {
		return ""
	}
	ft, err := parseFundsType(raw)
	if err != nil {
		s.fail(field, raw, err)
		return ""
	}
	return ft
}

func (s *fieldScanner) groupStatus(field string) GroupStatus {
	raw, ok := s.next()
	if !ok {
		return ""
	}
	gs, err := parseGroupStatus(raw)
	if err != nil {
		s.fail(field, raw, err)
		return ""
	}
	return gs
}

func (s *fieldScanner) asOfDateModifier(field string) AsOfDateModifier {
	raw, ok := s.next()
	if !ok {
		return ""
	}
	m, err := parseAsOfDateModifier(raw)
	if err != nil {
		s.fail(field, raw, err)
		return ""
	}
	return m
}

// parseFile parses the complete four level tree: file header, groups, file
// trailer.
func (p *parser) parseFile() (*File, error) {
	header, err := p.parseFileHeader()
	if err != nil {
		return nil, err
	}

	var groups []*Group
	for p.it.cur.Code == CodeGroupHeader {
		g, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	trailer, err := p.parseFileTrailer()
	if err != nil {
		return nil, err
	}

	f := &File{Header: *header, Groups: groups, Trailer: *trailer}
	if err := p.validateFile(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *parser) parseFileHeader() (*FileHeader, error) {
	if err := p.expect(CodeFileHeader); err != nil {
		return nil, err
	}
	s := newFieldScanner(p.it.cur)
	h := &FileHeader{
		Rows:                 p.it.cur.Rows,
		SenderID:             s.text("sender_id"),
		ReceiverID:           s.text("receiver_id"),
		CreationDate:         s.datePtr("creation_date"),
		CreationTime:         s.timePtr("creation_time"),
		FileID:               s.text("file_id"),
		PhysicalRecordLength: s.intPtr("physical_record_length"),
		BlockSize:            s.intPtr("block_size"),
		VersionNumber:        s.intPtr("version_number"),
	}
	if s.err != nil {
		return nil, s.err
	}
	// An absent version is accepted; some senders omit the field entirely.
	if h.VersionNumber != nil && *h.VersionNumber != 2 {
		return nil, &parsererror.UnsupportedFormatError{
			Msg: "only version 2 is supported, found version " + strconv.Itoa(*h.VersionNumber),
		}
	}
	p.it.advance()
	return h, nil
}

// parseFileTrailer also corrects trailers from senders that put the record
// count in the group count position and leave the record count empty.
func (p *parser) parseFileTrailer() (*FileTrailer, error) {
	if err := p.expect(CodeFileTrailer); err != nil {
		return nil, err
	}
	s := newFieldScanner(p.it.cur)
	t := &FileTrailer{
		Rows:             p.it.cur.Rows,
		FileControlTotal: s.total("file_control_total"),
		NumberOfGroups:   s.intPtr("number_of_groups"),
		NumberOfRecords:  s.intPtr("number_of_records"),
	}
	if s.err != nil {
		return nil, s.err
	}
	if t.NumberOfGroups != nil && *t.NumberOfGroups != 0 && t.NumberOfRecords == nil {
		t.NumberOfRecords = t.NumberOfGroups
		t.NumberOfGroups = nil
	}
	p.it.advance()
	return t, nil
}

func (p *parser) parseGroup() (*Group, error) {
	header, err := p.parseGroupHeader()
	if err != nil {
		return nil, err
	}

	var accounts []*Account
	for p.it.cur.Code == CodeAccountIdentifier {
		a, err := p.parseAccount()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	trailer, err := p.parseGroupTrailer()
	if err != nil {
		return nil, err
	}

	g := &Group{Header: *header, Accounts: accounts, Trailer: *trailer}
	if err := p.validateGroup(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (p *parser) parseGroupHeader() (*GroupHeader, error) {
	if err := p.expect(CodeGroupHeader); err != nil {
		return nil, err
	}
	s := newFieldScanner(p.it.cur)
	h := &GroupHeader{
		Rows:               p.it.cur.Rows,
		UltimateReceiverID: s.text("ultimate_receiver_id"),
		OriginatorID:       s.text("originator_id"),
		Status:             s.groupStatus("group_status"),
		AsOfDate:           s.datePtr("as_of_date"),
		AsOfTime:           s.timePtr("as_of_time"),
		Currency:           s.text("currency"),
		AsOfDateModifier:   s.asOfDateModifier("as_of_date_modifier"),
	}
	if s.err != nil {
		return nil, s.err
	}
	p.it.advance()
	return h, nil
}

func (p *parser) parseGroupTrailer() (*GroupTrailer, error) {
	if err := p.expect(CodeGroupTrailer); err != nil {
		return nil, err
	}
	s := newFieldScanner(p.it.cur)
	t := &GroupTrailer{
		Rows:              p.it.cur.Rows,
		GroupControlTotal: s.total("group_control_total"),
		NumberOfAccounts:  s.intPtr("number_of_accounts"),
		NumberOfRecords:   s.intPtr("number_of_records"),
	}
	if s.err != nil {
		return nil, s.err
	}
	p.it.advance()
	return t, nil
}

func (p *parser) parseAccount() (*Account, error) {
	identifier, err := p.parseAccountIdentifier()
	if err != nil {
		return nil, err
	}

	var transactions []*Transaction
	for p.it.cur.Code == CodeTransactionDetail {
		t, err := p.parseTransactionDetail()
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	trailer, err := p.parseAccountTrailer()
	if err != nil {
		return nil, err
	}

	a := &Account{Identifier: *identifier, Transactions: transactions, Trailer: *trailer}
	if err := p.validateAccount(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (p *parser) parseAccountIdentifier() (*AccountIdentifier, error) {
	if err := p.expect(CodeAccountIdentifier); err != nil {
		return nil, err
	}
	fields := p.it.cur.Fields

	id := &AccountIdentifier{Rows: p.it.cur.Rows}
	if len(fields) > 0 {
		id.CustomerAccountNumber = fields[0]
	}
	if len(fields) > 1 {
		id.Currency = fields[1]
	}

	rest := fields[min(2, len(fields)):]
	for len(rest) > 0 {
		if len(rest) == 1 && rest[0] == "" {
			break
		}
		span := rest[:min(4, len(rest))]
		s := newFieldScanner(&Record{Fields: span})
		summary := Summary{
			TypeCode:  s.typeCode("type_code"),
			Amount:    s.amountPtr("amount"),
			ItemCount: s.intPtr("item_count"),
			FundsType: s.fundsType("funds_type"),
		}
		if s.err != nil {
			return nil, s.err
		}
		rest = rest[len(span):]

		av, remaining, err := parseAvailability(summary.FundsType, rest)
		if err != nil {
			return nil, err
		}
		summary.Availability = av
		rest = remaining

		id.Summaries = append(id.Summaries, summary)
	}
	p.it.advance()
	return id, nil
}

func (p *parser) parseAccountTrailer() (*AccountTrailer, error) {
	if err := p.expect(CodeAccountTrailer); err != nil {
		return nil, err
	}
	s := newFieldScanner(p.it.cur)
	t := &AccountTrailer{
		Rows:                p.it.cur.Rows,
		AccountControlTotal: s.total("account_control_total"),
		NumberOfRecords:     s.intPtr("number_of_records"),
	}
	if s.err != nil {
		return nil, s.err
	}
	p.it.advance()
	return t, nil
}

func (p *parser) parseTransactionDetail() (*Transaction, error) {
	if err := p.expect(CodeTransactionDetail); err != nil {
		return nil, err
	}
	fields := p.it.cur.Fields

	s := newFieldScanner(&Record{Fields: fields[:min(3, len(fields))]})
	t := &Transaction{
		Rows:      p.it.cur.Rows,
		TypeCode:  s.typeCode("type_code"),
		Amount:    s.amountPtr("amount"),
		FundsType: s.fundsType("funds_type"),
	}
	if s.err != nil {
		return nil, s.err
	}

	rest := fields[min(3, len(fields)):]
	av, rest, err := parseAvailability(t.FundsType, rest)
	if err != nil {
		return nil, err
	}
	t.Availability = av

	// The text field is free form and may itself contain separators, so
	// everything past the two reference fields is rejoined.
	switch {
	case len(rest) >= 2:
		t.BankReference = rest[0]
		t.CustomerReference = rest[1]
		t.Text = joinFields(rest[2:])
	case len(rest) == 1:
		t.BankReference = rest[0]
	}

	p.it.advance()
	return t, nil
}

func joinFields(fields []string) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += fieldSeparator
		}
		out += f
	}
	return out
}

func (p *parser) validateRecordCount(entity string, declared *int, counted int) error {
	if !p.opts.CheckIntegrity || declared == nil {
		return nil
	}
	if counted != *declared {
		return &parsererror.IntegrityError{
			Entity:   entity,
			Check:    "number of records",
			Expected: strconv.Itoa(*declared),
			Actual:   strconv.Itoa(counted),
		}
	}
	return nil
}

func (p *parser) validateControlTotal(entity, check string, declared, computed decimal.Decimal) error {
	if declared.Sub(computed).Abs().GreaterThan(controlTotalTolerance) {
		return &parsererror.IntegrityError{
			Entity:   entity,
			Check:    check,
			Expected: declared.String(),
			Actual:   computed.String(),
		}
	}
	return nil
}

func (p *parser) validateAccount(a *Account) error {
	if err := p.validateRecordCount("account", a.Trailer.NumberOfRecords, a.rowCount()); err != nil {
		return err
	}
	if !p.opts.CheckIntegrity {
		return nil
	}
	return p.validateControlTotal("account", "account control total",
		a.Trailer.AccountControlTotal, a.controlTotal(p.ignored))
}

func (p *parser) validateGroup(g *Group) error {
	if err := p.validateRecordCount("group", g.Trailer.NumberOfRecords, g.rowCount()); err != nil {
		return err
	}
	if len(g.Accounts) == 0 {
		return &parsererror.StructureError{Msg: "group without accounts not allowed"}
	}
	if !p.opts.CheckIntegrity {
		return nil
	}

	declared := "none"
	if g.Trailer.NumberOfAccounts != nil {
		declared = strconv.Itoa(*g.Trailer.NumberOfAccounts)
	}
	if g.Trailer.NumberOfAccounts == nil || *g.Trailer.NumberOfAccounts != len(g.Accounts) {
		return &parsererror.IntegrityError{
			Entity:   "group",
			Check:    "number of accounts",
			Expected: declared,
			Actual:   strconv.Itoa(len(g.Accounts)),
		}
	}

	total := decimal.Zero
	for _, a := range g.Accounts {
		total = total.Add(a.Trailer.AccountControlTotal)
	}
	return p.validateControlTotal("group", "group control total",
		g.Trailer.GroupControlTotal, total)
}

func (p *parser) validateFile(f *File) error {
	if err := p.validateRecordCount("file", f.Trailer.NumberOfRecords, f.rowCount()); err != nil {
		return err
	}
	if len(f.Groups) == 0 {
		return &parsererror.StructureError{Msg: "file without groups not allowed"}
	}
	if !p.opts.CheckIntegrity {
		return nil
	}

	if f.Trailer.NumberOfGroups != nil && *f.Trailer.NumberOfGroups != len(f.Groups) {
		return &parsererror.IntegrityError{
			Entity:   "file",
			Check:    "number of groups",
			Expected: strconv.Itoa(*f.Trailer.NumberOfGroups),
			Actual:   strconv.Itoa(len(f.Groups)),
		}
	}

	total := decimal.Zero
	for _, g := range f.Groups {
		total = total.Add(g.Trailer.GroupControlTotal)
	}
	return p.validateControlTotal("file", "file control total",
		f.Trailer.FileControlTotal, total)
}
