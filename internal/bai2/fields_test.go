package bai2

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "short form", input: "210706", want: time.Date(2021, 7, 6, 0, 0, 0, 0, time.UTC)},
		{name: "long form", input: "20210706", want: time.Date(2021, 7, 6, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "21-07-06", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Time
		wantErr bool
	}{
		{name: "military", input: "0800", want: Time{Hour: 8}},
		{name: "short input zero padded", input: "800", want: Time{Hour: 8}},
		{name: "end of day sentinel", input: "2400", want: EndOfDayTime()},
		{name: "9999 sentinel", input: "9999", want: EndOfDayTime()},
		{name: "clock format", input: "13:45:30", want: Time{Hour: 13, Minute: 45, Second: 30}},
		{name: "hour out of range", input: "2500", wantErr: true},
		{name: "minute out of range", input: "1270", wantErr: true},
		{name: "partial clock", input: "13:45", wantErr: true},
		{name: "not a number", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteTime(t *testing.T) {
	assert.Equal(t, "0800", writeTime(Time{Hour: 8}, false))
	assert.Equal(t, "08:00:00", writeTime(Time{Hour: 8}, true))
	assert.Equal(t, "13:45:30", writeTime(Time{Hour: 13, Minute: 45, Second: 30}, true))

	// End of day always serializes as the sentinel, whatever the format.
	assert.Equal(t, "2400", writeTime(EndOfDayTime(), false))
	assert.Equal(t, "2400", writeTime(EndOfDayTime(), true))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "12345", want: "12345"},
		{name: "leading minus", input: "-50", want: "-50"},
		{name: "trailing minus", input: "12345-", want: "-12345"},
		{name: "padded", input: "  100 ", want: "100"},
		{name: "decimal point", input: "123.45", want: "123.45"},
		{name: "not a number", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestParseAvailability(t *testing.T) {
	t.Run("simple consumes three days", func(t *testing.T) {
		av, rest, err := parseAvailability(FundsTypeDistributedSimple,
			[]string{"500", "300", "200", "REF"})
		require.NoError(t, err)
		require.NotNil(t, av)
		assert.Equal(t, AvailabilitySimple, av.Kind)
		assert.Equal(t, [3]int64{500, 300, 200}, av.Simple)
		assert.Equal(t, []string{"REF"}, rest)
	})

	t.Run("simple defaults missing days to zero", func(t *testing.T) {
		av, rest, err := parseAvailability(FundsTypeDistributedSimple, []string{"500"})
		require.NoError(t, err)
		assert.Equal(t, [3]int64{500, 0, 0}, av.Simple)
		assert.Empty(t, rest)
	})

	t.Run("simple rejects non numeric day", func(t *testing.T) {
		_, _, err := parseAvailability(FundsTypeDistributedSimple, []string{"abc"})
		assert.Error(t, err)
	})

	t.Run("value dated", func(t *testing.T) {
		av, rest, err := parseAvailability(FundsTypeValueDated,
			[]string{"210706", "0800", "REF"})
		require.NoError(t, err)
		assert.Equal(t, AvailabilityValueDated, av.Kind)
		require.NotNil(t, av.ValueDate)
		assert.Equal(t, time.Date(2021, 7, 6, 0, 0, 0, 0, time.UTC), *av.ValueDate)
		require.NotNil(t, av.ValueTime)
		assert.Equal(t, Time{Hour: 8}, *av.ValueTime)
		assert.Equal(t, []string{"REF"}, rest)
	})

	t.Run("value dated with empty date and time", func(t *testing.T) {
		av, rest, err := parseAvailability(FundsTypeValueDated, []string{"", ""})
		require.NoError(t, err)
		assert.Nil(t, av.ValueDate)
		assert.Nil(t, av.ValueTime)
		assert.Empty(t, rest)
	})

	t.Run("distributed", func(t *testing.T) {
		av, rest, err := parseAvailability(FundsTypeDistributed,
			[]string{"3", "0", "100", "1", "200", "2", "300", "REF"})
		require.NoError(t, err)
		assert.Equal(t, AvailabilityDistributed, av.Kind)
		assert.Equal(t, []Distribution{
			{Day: "0", Amount: 100},
			{Day: "1", Amount: 200},
			{Day: "2", Amount: 300},
		}, av.Distributions)
		assert.Equal(t, []string{"REF"}, rest)
	})

	t.Run("distributed stops when pairs run out", func(t *testing.T) {
		av, rest, err := parseAvailability(FundsTypeDistributed,
			[]string{"3", "0", "100"})
		require.NoError(t, err)
		assert.Len(t, av.Distributions, 1)
		assert.Empty(t, rest)
	})

	t.Run("no schedule for immediate funds", func(t *testing.T) {
		av, rest, err := parseAvailability(FundsTypeImmediate, []string{"REF", "CREF"})
		require.NoError(t, err)
		assert.Nil(t, av)
		assert.Equal(t, []string{"REF", "CREF"}, rest)
	})
}

func TestLookupTypeCode(t *testing.T) {
	tc, err := LookupTypeCode("399")
	require.NoError(t, err)
	assert.Equal(t, "399", tc.Code)
	assert.Equal(t, PolarityCredit, tc.Polarity)

	tc, err = LookupTypeCode("699")
	require.NoError(t, err)
	assert.Equal(t, PolarityDebit, tc.Polarity)

	tc, err = LookupTypeCode("010")
	require.NoError(t, err)
	assert.Equal(t, PolarityNone, tc.Polarity)

	_, err = LookupTypeCode("999")
	assert.Error(t, err)
}
