package bai2

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hemanth4041/statement-loader/internal/parsererror"
)

// FundsType is the enumerated code that selects which availability schedule
// shape, if any, follows an amount.
type FundsType string

const (
	FundsTypeImmediate         FundsType = "0"
	FundsTypeOneDay            FundsType = "1"
	FundsTypeTwoOrMoreDays     FundsType = "2"
	FundsTypeDistributedSimple FundsType = "S"
	FundsTypeValueDated        FundsType = "V"
	FundsTypeDistributed       FundsType = "D"
	FundsTypeUnknown           FundsType = "Z"
)

var validFundsTypes = map[FundsType]bool{
	FundsTypeImmediate:         true,
	FundsTypeOneDay:            true,
	FundsTypeTwoOrMoreDays:     true,
	FundsTypeDistributedSimple: true,
	FundsTypeValueDated:        true,
	FundsTypeDistributed:       true,
	FundsTypeUnknown:           true,
}

// GroupStatus is the group header status field.
type GroupStatus string

const (
	GroupStatusUpdate     GroupStatus = "1"
	GroupStatusDeletion   GroupStatus = "2"
	GroupStatusCorrection GroupStatus = "3"
	GroupStatusTestOnly   GroupStatus = "4"
)

var validGroupStatuses = map[GroupStatus]bool{
	GroupStatusUpdate:     true,
	GroupStatusDeletion:   true,
	GroupStatusCorrection: true,
	GroupStatusTestOnly:   true,
}

// AsOfDateModifier qualifies the group header as-of date.
type AsOfDateModifier string

const (
	InterimPreviousDay AsOfDateModifier = "1"
	FinalPreviousDay   AsOfDateModifier = "2"
	InterimSameDay     AsOfDateModifier = "3"
	FinalSameDay       AsOfDateModifier = "4"
)

var validAsOfDateModifiers = map[AsOfDateModifier]bool{
	InterimPreviousDay: true,
	FinalPreviousDay:   true,
	InterimSameDay:     true,
	FinalSameDay:       true,
}

const (
	dateLayoutShort = "060102"
	dateLayoutLong  = "20060102"
)

// parseDate accepts YYMMDD or YYYYMMDD.
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{dateLayoutShort, dateLayoutLong} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYMMDD or YYYYMMDD", value)
}

// writeDate always emits the six digit form.
func writeDate(t time.Time) string {
	return t.Format(dateLayoutShort)
}

// Time is a statement time of day. EndOfDay marks the 2400/9999 sentinel,
// which always serializes back as 2400.
type Time struct {
	Hour     int
	Minute   int
	Second   int
	EndOfDay bool
}

// EndOfDayTime returns the maximum representable time of day.
func EndOfDayTime() Time {
	return Time{Hour: 23, Minute: 59, Second: 59, EndOfDay: true}
}

// parseTime accepts military HHMM (zero padded from shorter input) or clock
// HH:MM:SS. The sentinels 2400 and 9999 both map to end of day.
func parseTime(value string) (Time, error) {
	if value == "2400" || value == "9999" {
		return EndOfDayTime(), nil
	}

	if strings.Contains(value, ":") {
		parts := strings.Split(value, ":")
		if len(parts) != 3 {
			return Time{}, fmt.Errorf("invalid time %q, expected HHMM or HH:MM:SS", value)
		}
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		s, errS := strconv.Atoi(parts[2])
		if errH != nil || errM != nil || errS != nil || h > 23 || m > 59 || s > 59 || h < 0 || m < 0 || s < 0 {
			return Time{}, fmt.Errorf("invalid time %q, expected HHMM or HH:MM:SS", value)
		}
		return Time{Hour: h, Minute: m, Second: s}, nil
	}

	padded := value
	for len(padded) < 4 {
		padded = "0" + padded
	}
	if len(padded) != 4 {
		return Time{}, fmt.Errorf("invalid time %q, expected HHMM or HH:MM:SS", value)
	}
	h, errH := strconv.Atoi(padded[:2])
	m, errM := strconv.Atoi(padded[2:])
	if errH != nil || errM != nil || h > 23 || m > 59 || h < 0 || m < 0 {
		return Time{}, fmt.Errorf("invalid time %q, expected HHMM or HH:MM:SS", value)
	}
	return Time{Hour: h, Minute: m}, nil
}

// writeTime emits military HHMM, or HH:MM:SS for intra-day values when the
// clock flag is set. End of day always writes as 2400.
func writeTime(t Time, clockFormatForIntraDay bool) string {
	if t.EndOfDay {
		return "2400"
	}
	if clockFormatForIntraDay {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d%02d", t.Hour, t.Minute)
}

// parseAmount decodes a numeric amount, accepting the trailing minus
// convention used by some senders in addition to a leading sign.
func parseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	negative := strings.HasSuffix(value, "-")
	if negative {
		value = strings.TrimSuffix(value, "-")
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

func parseFundsType(value string) (FundsType, error) {
	ft := FundsType(value)
	if !validFundsTypes[ft] {
		return "", fmt.Errorf("invalid funds type %q", value)
	}
	return ft, nil
}

func parseGroupStatus(value string) (GroupStatus, error) {
	gs := GroupStatus(value)
	if !validGroupStatuses[gs] {
		return "", fmt.Errorf("invalid group status %q", value)
	}
	return gs, nil
}

func parseAsOfDateModifier(value string) (AsOfDateModifier, error) {
	m := AsOfDateModifier(value)
	if !validAsOfDateModifiers[m] {
		return "", fmt.Errorf("invalid as-of-date modifier %q", value)
	}
	return m, nil
}

// AvailabilityKind discriminates the three mutually exclusive shapes of a
// funds availability schedule.
type AvailabilityKind int

const (
	AvailabilityNone AvailabilityKind = iota
	AvailabilitySimple
	AvailabilityValueDated
	AvailabilityDistributed
)

// Distribution is one (day, amount) pair of a general distributed schedule.
type Distribution struct {
	Day    string
	Amount int64
}

// Availability is a funds availability schedule. Exactly one shape is
// populated, selected by Kind.
type Availability struct {
	Kind          AvailabilityKind
	Simple        [3]int64 // amounts available same day, next day, and beyond
	ValueDate     *time.Time
	ValueTime     *Time
	Distributions []Distribution
}

// parseAvailability consumes the availability span selected by the funds
// type from the front of rest and returns the schedule plus the remaining
// fields. Funds types without a schedule consume nothing.
func parseAvailability(ft FundsType, rest []string) (*Availability, []string, error) {
	switch ft {
	case FundsTypeDistributedSimple:
		av := &Availability{Kind: AvailabilitySimple}
		for day := 0; day < 3; day++ {
			if len(rest) == 0 {
				break
			}
			n, err := strconv.ParseInt(rest[0], 10, 64)
			if err != nil {
				return nil, rest, &parsererror.ParseError{Parser: "bai2", Field: "availability", Value: rest[0], Err: err}
			}
			av.Simple[day] = n
			rest = rest[1:]
		}
		return av, rest, nil

	case FundsTypeValueDated:
		av := &Availability{Kind: AvailabilityValueDated}
		var rawDate, rawTime string
		if len(rest) > 0 {
			rawDate = rest[0]
			rest = rest[1:]
		}
		if len(rest) > 0 {
			rawTime = rest[0]
			rest = rest[1:]
		}
		if rawDate != "" {
			d, err := parseDate(rawDate)
			if err != nil {
				return nil, rest, &parsererror.ParseError{Parser: "bai2", Field: "availability_date", Value: rawDate, Err: err}
			}
			av.ValueDate = &d
		}
		if rawTime != "" {
			t, err := parseTime(rawTime)
			if err != nil {
				return nil, rest, &parsererror.ParseError{Parser: "bai2", Field: "availability_time", Value: rawTime, Err: err}
			}
			av.ValueTime = &t
		}
		return av, rest, nil

	case FundsTypeDistributed:
		if len(rest) == 0 {
			return nil, rest, nil
		}
		count, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, rest, &parsererror.ParseError{Parser: "bai2", Field: "availability", Value: rest[0], Err: err}
		}
		rest = rest[1:]
		av := &Availability{Kind: AvailabilityDistributed}
		for i := 0; i < count; i++ {
			// Partial consumption is accepted when fewer pairs remain
			// than the count claims.
			if len(rest) < 2 {
				break
			}
			amount, err := strconv.ParseInt(rest[1], 10, 64)
			if err != nil {
				return nil, rest, &parsererror.ParseError{Parser: "bai2", Field: "availability", Value: rest[1], Err: err}
			}
			av.Distributions = append(av.Distributions, Distribution{Day: rest[0], Amount: amount})
			rest = rest[2:]
		}
		return av, rest, nil
	}
	return nil, rest, nil
}
