package bai2

import (
	"strconv"
	"strings"
	"time"
)

// WriteOptions controls serialization.
type WriteOptions struct {
	// LineLength is the maximum physical line length before a record is
	// wrapped onto continuation lines.
	LineLength int

	// TextOnNewLine starts the free form transaction text on a fresh
	// continuation line instead of packing it after the reference fields.
	TextOnNewLine bool

	// ClockFormatForIntraDay writes intra-day times as HH:MM:SS instead of
	// military HHMM. End of day still writes as 2400.
	ClockFormatForIntraDay bool

	// IgnoredSummaryCodes must match the set used at parse time so the
	// recomputed account control totals reconcile the same way.
	IgnoredSummaryCodes []string
}

// DefaultWriteOptions uses the conventional 80 column line length.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{LineLength: 80}
}

type writer struct {
	opts    WriteOptions
	ignored map[string]bool
}

func newWriter(opts WriteOptions) *writer {
	if opts.LineLength <= 0 {
		opts.LineLength = 80
	}
	ignored := make(map[string]bool, len(opts.IgnoredSummaryCodes))
	for _, code := range opts.IgnoredSummaryCodes {
		ignored[code] = true
	}
	return &writer{opts: opts, ignored: ignored}
}

func fmtInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return writeDate(*t)
}

func (w *writer) fmtTime(t *Time) string {
	if t == nil {
		return ""
	}
	return writeTime(*t, w.opts.ClockFormatForIntraDay)
}

// joinRecord emits a record as a single physical line.
func joinRecord(code RecordCode, fields []string) string {
	return string(code) + fieldSeparator + strings.Join(fields, fieldSeparator) + string(recordTerminator)
}

// lastBreak returns the index of the last field separator or space in s, or
// -1 when s contains neither.
func lastBreak(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ',' || s[i] == ' ' {
			return i
		}
	}
	return -1
}

// wrap splits a record's combined field string across continuation lines.
// Lines break at an existing separator whenever one fits: a break at a comma
// ends the line with the terminator so folding restores the comma, a break
// at a space leaves the line unterminated so folding restores the space.
// Only when a single value exceeds the line length is it split mid-value,
// which folds back with an extra separator.
func (w *writer) wrap(code RecordCode, s string) []string {
	var lines []string
	prefix := string(code)
	for {
		budget := w.opts.LineLength - len(prefix) - 2
		if budget < 1 {
			budget = 1
		}
		if len(s) <= budget {
			lines = append(lines, prefix+fieldSeparator+s+string(recordTerminator))
			return lines
		}
		b := lastBreak(s[:budget+1])
		switch {
		case b < 0:
			lines = append(lines, prefix+fieldSeparator+s[:budget]+string(recordTerminator))
			s = s[budget:]
		case s[b] == ',':
			lines = append(lines, prefix+fieldSeparator+s[:b]+string(recordTerminator))
			s = s[b+1:]
		default: // space
			lines = append(lines, prefix+fieldSeparator+s[:b])
			s = s[b+1:]
		}
		prefix = string(CodeContinuation)
	}
}

// wrapConcat splits an account identifier record, whose continuation folding
// concatenates payloads byte for byte, so chunks may break anywhere. Only
// the final line carries the terminator.
func (w *writer) wrapConcat(code RecordCode, s string) []string {
	var lines []string
	prefix := string(code)
	for {
		budget := w.opts.LineLength - len(prefix) - 2
		if budget < 1 {
			budget = 1
		}
		if len(s) <= budget {
			lines = append(lines, prefix+fieldSeparator+s+string(recordTerminator))
			return lines
		}
		lines = append(lines, prefix+fieldSeparator+s[:budget])
		s = s[budget:]
		prefix = string(CodeContinuation)
	}
}

// expandAvailability flattens a schedule back to its wire fields. A nil
// schedule contributes nothing.
func (w *writer) expandAvailability(av *Availability) []string {
	if av == nil {
		return nil
	}
	switch av.Kind {
	case AvailabilitySimple:
		return []string{
			strconv.FormatInt(av.Simple[0], 10),
			strconv.FormatInt(av.Simple[1], 10),
			strconv.FormatInt(av.Simple[2], 10),
		}
	case AvailabilityValueDated:
		return []string{fmtDate(av.ValueDate), w.fmtTime(av.ValueTime)}
	case AvailabilityDistributed:
		fields := []string{strconv.Itoa(len(av.Distributions))}
		for _, d := range av.Distributions {
			fields = append(fields, d.Day, strconv.FormatInt(d.Amount, 10))
		}
		return fields
	}
	return nil
}

func (w *writer) writeFileHeader(h *FileHeader) []string {
	return []string{joinRecord(CodeFileHeader, []string{
		h.SenderID,
		h.ReceiverID,
		fmtDate(h.CreationDate),
		w.fmtTime(h.CreationTime),
		h.FileID,
		fmtInt(h.PhysicalRecordLength),
		fmtInt(h.BlockSize),
		fmtInt(h.VersionNumber),
	})}
}

func (w *writer) writeFileTrailer(t *FileTrailer) []string {
	return []string{joinRecord(CodeFileTrailer, []string{
		t.FileControlTotal.String(),
		fmtInt(t.NumberOfGroups),
		fmtInt(t.NumberOfRecords),
	})}
}

func (w *writer) writeGroupHeader(h *GroupHeader) []string {
	return []string{joinRecord(CodeGroupHeader, []string{
		h.UltimateReceiverID,
		h.OriginatorID,
		string(h.Status),
		fmtDate(h.AsOfDate),
		w.fmtTime(h.AsOfTime),
		h.Currency,
		string(h.AsOfDateModifier),
	})}
}

func (w *writer) writeGroupTrailer(t *GroupTrailer) []string {
	return []string{joinRecord(CodeGroupTrailer, []string{
		t.GroupControlTotal.String(),
		fmtInt(t.NumberOfAccounts),
		fmtInt(t.NumberOfRecords),
	})}
}

func (w *writer) writeAccountIdentifier(id *AccountIdentifier) []string {
	fields := []string{id.CustomerAccountNumber, id.Currency}
	for _, s := range id.Summaries {
		code := ""
		if s.TypeCode != nil {
			code = s.TypeCode.Code
		}
		amount := ""
		if s.Amount != nil {
			amount = s.Amount.String()
		}
		fields = append(fields, code, amount, fmtInt(s.ItemCount), string(s.FundsType))
		fields = append(fields, w.expandAvailability(s.Availability)...)
	}
	return w.wrapConcat(CodeAccountIdentifier, strings.Join(fields, fieldSeparator))
}

func (w *writer) writeAccountTrailer(t *AccountTrailer) []string {
	return []string{joinRecord(CodeAccountTrailer, []string{
		t.AccountControlTotal.String(),
		fmtInt(t.NumberOfRecords),
	})}
}

func (w *writer) writeTransactionDetail(t *Transaction) []string {
	code := ""
	if t.TypeCode != nil {
		code = t.TypeCode.Code
	}
	amount := ""
	if t.Amount != nil {
		amount = t.Amount.String()
	}
	fields := []string{code, amount, string(t.FundsType)}
	fields = append(fields, w.expandAvailability(t.Availability)...)
	fields = append(fields, t.BankReference, t.CustomerReference)

	if w.opts.TextOnNewLine && t.Text != "" {
		// The head lines all end terminated, so folding rejoins the last
		// reference field and the text with the separator they lost here.
		lines := w.wrap(CodeTransactionDetail, strings.Join(fields, fieldSeparator))
		return append(lines, w.wrap(CodeContinuation, t.Text)...)
	}
	fields = append(fields, t.Text)
	return w.wrap(CodeTransactionDetail, strings.Join(fields, fieldSeparator))
}

func (w *writer) writeAccount(a *Account) []string {
	header := w.writeAccountIdentifier(&a.Identifier)
	var children []string
	for _, t := range a.Transactions {
		children = append(children, w.writeTransactionDetail(t)...)
	}

	a.updateTotals(w.ignored)
	n := len(header) + len(children) + 1
	a.Trailer.NumberOfRecords = &n

	return append(append(header, children...), w.writeAccountTrailer(&a.Trailer)...)
}

func (w *writer) writeGroup(g *Group) []string {
	header := w.writeGroupHeader(&g.Header)
	var children []string
	for _, a := range g.Accounts {
		children = append(children, w.writeAccount(a)...)
	}

	g.updateTotals()
	n := len(header) + len(children) + 1
	g.Trailer.NumberOfRecords = &n

	return append(append(header, children...), w.writeGroupTrailer(&g.Trailer)...)
}

// writeFile serializes the tree, finalizing totals and record counts bottom
// up as it goes. The file is mutated so the emitted trailers and the model
// agree afterwards.
func (w *writer) writeFile(f *File) []string {
	header := w.writeFileHeader(&f.Header)
	var children []string
	for _, g := range f.Groups {
		children = append(children, w.writeGroup(g)...)
	}

	f.updateTotals()
	n := len(header) + len(children) + 1
	f.Trailer.NumberOfRecords = &n

	return append(append(header, children...), w.writeFileTrailer(&f.Trailer)...)
}
