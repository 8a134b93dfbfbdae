package bai2

import (
	"time"

	"github.com/shopspring/decimal"
)

// File is the root of a parsed statement: one file header, any number of
// groups, one file trailer. Optional wire fields are pointers so that an
// absent field is distinguishable from a zero value.
type File struct {
	Header  FileHeader
	Groups  []*Group
	Trailer FileTrailer
}

type FileHeader struct {
	Rows []Row

	SenderID             string
	ReceiverID           string
	CreationDate         *time.Time
	CreationTime         *Time
	FileID               string
	PhysicalRecordLength *int
	BlockSize            *int
	VersionNumber        *int
}

type FileTrailer struct {
	Rows []Row

	FileControlTotal decimal.Decimal
	NumberOfGroups   *int
	NumberOfRecords  *int
}

// Group collects the accounts one originator reported for one as-of date.
type Group struct {
	Header   GroupHeader
	Accounts []*Account
	Trailer  GroupTrailer
}

type GroupHeader struct {
	Rows []Row

	UltimateReceiverID string
	OriginatorID       string
	Status             GroupStatus
	AsOfDate           *time.Time
	AsOfTime           *Time
	Currency           string
	AsOfDateModifier   AsOfDateModifier
}

type GroupTrailer struct {
	Rows []Row

	GroupControlTotal decimal.Decimal
	NumberOfAccounts  *int
	NumberOfRecords   *int
}

// Account is one account identifier record with its transaction details.
type Account struct {
	Identifier   AccountIdentifier
	Transactions []*Transaction
	Trailer      AccountTrailer
}

type AccountIdentifier struct {
	Rows []Row

	CustomerAccountNumber string
	Currency              string
	Summaries             []Summary
}

// Summary is one status or summary item of an account identifier record.
type Summary struct {
	TypeCode     *TypeCode
	Amount       *decimal.Decimal
	ItemCount    *int
	FundsType    FundsType
	Availability *Availability
}

type AccountTrailer struct {
	Rows []Row

	AccountControlTotal decimal.Decimal
	NumberOfRecords     *int
}

// Transaction is one detail record.
type Transaction struct {
	Rows []Row

	TypeCode          *TypeCode
	Amount            *decimal.Decimal
	FundsType         FundsType
	Availability      *Availability
	BankReference     string
	CustomerReference string
	Text              string
}

// controlTotal sums the transaction amounts and the summary item amounts,
// skipping summary codes in the ignored set.
func (a *Account) controlTotal(ignored map[string]bool) decimal.Decimal {
	total := decimal.Zero
	for _, t := range a.Transactions {
		if t.Amount != nil {
			total = total.Add(*t.Amount)
		}
	}
	for _, s := range a.Identifier.Summaries {
		if s.Amount == nil {
			continue
		}
		if s.TypeCode != nil && ignored[s.TypeCode.Code] {
			continue
		}
		total = total.Add(*s.Amount)
	}
	return total
}

// updateTotals recomputes the account control total from the transactions
// and summary items. The same ignored set is applied here and in the parse
// side validation so a validated file re-serializes with matching totals.
func (a *Account) updateTotals(ignored map[string]bool) {
	a.Trailer.AccountControlTotal = a.controlTotal(ignored)
}

// updateTotals recomputes the group control total and account count from the
// children. Child accounts must already be up to date.
func (g *Group) updateTotals() {
	total := decimal.Zero
	for _, a := range g.Accounts {
		total = total.Add(a.Trailer.AccountControlTotal)
	}
	g.Trailer.GroupControlTotal = total
	n := len(g.Accounts)
	g.Trailer.NumberOfAccounts = &n
}

// updateTotals recomputes the file control total and group count from the
// children. Child groups must already be up to date.
func (f *File) updateTotals() {
	total := decimal.Zero
	for _, g := range f.Groups {
		total = total.Add(g.Trailer.GroupControlTotal)
	}
	f.Trailer.FileControlTotal = total
	n := len(f.Groups)
	f.Trailer.NumberOfGroups = &n
}

// rowCount returns the number of physical rows the account spans, header and
// trailer included.
func (a *Account) rowCount() int {
	n := len(a.Identifier.Rows) + len(a.Trailer.Rows)
	for _, t := range a.Transactions {
		n += len(t.Rows)
	}
	return n
}

// rowCount returns the number of physical rows the group spans.
func (g *Group) rowCount() int {
	n := len(g.Header.Rows) + len(g.Trailer.Rows)
	for _, a := range g.Accounts {
		n += a.rowCount()
	}
	return n
}

// rowCount returns the number of physical rows the file spans.
func (f *File) rowCount() int {
	n := len(f.Header.Rows) + len(f.Trailer.Rows)
	for _, g := range f.Groups {
		n += g.rowCount()
	}
	return n
}
