package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func TestParseFlexibleDate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{name: "short month", raw: "Jan 2020", want: monthStart(2020, time.January), ok: true},
		{name: "long month", raw: "January 2020", want: monthStart(2020, time.January), ok: true},
		{name: "numeric slash", raw: "01/2020", want: monthStart(2020, time.January), ok: true},
		{name: "single digit month", raw: "3/2021", want: monthStart(2021, time.March), ok: true},
		{name: "iso year month", raw: "2021-03", want: monthStart(2021, time.March), ok: true},
		{name: "bare year", raw: "2019", want: monthStart(2019, time.January), ok: true},
		{name: "abbreviation with period", raw: "Jan. 2020", want: monthStart(2020, time.January), ok: true},
		{name: "four letter september", raw: "Sept 2020", want: monthStart(2020, time.September), ok: true},
		{name: "present resolves to now", raw: "Present", want: now, ok: true},
		{name: "ongoing resolves to now", raw: "ongoing", want: now, ok: true},
		{name: "year embedded in prose", raw: "Summer 2018", want: monthStart(2018, time.January), ok: true},
		{name: "surrounding whitespace", raw: "  Jan 2020  ", want: monthStart(2020, time.January), ok: true},
		{name: "garbage", raw: "whenever", ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseFlexibleDate(tt.raw, now)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{name: "same month", a: monthStart(2020, time.March), b: monthStart(2020, time.March), want: 0},
		{name: "one month", a: monthStart(2020, time.March), b: monthStart(2020, time.April), want: 1},
		{name: "across year boundary", a: monthStart(2020, time.November), b: monthStart(2021, time.February), want: 3},
		{name: "multi year", a: monthStart(2018, time.June), b: monthStart(2021, time.June), want: 36},
		{
			name: "partial month does not count",
			a:    time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{name: "negative when reversed", a: monthStart(2021, time.March), b: monthStart(2020, time.March), want: -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthsBetween(tt.a, tt.b))
		})
	}
}

// The computed gap must not depend on which accepted format the dates were
// written in.
func TestGapIndependentOfDateFormat(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	variants := [][2]string{
		{"Jan 2020", "Sep 2021"},
		{"January 2020", "September 2021"},
		{"01/2020", "09/2021"},
		{"1/2020", "9/2021"},
		{"2020-01", "2021-09"},
	}

	var gaps []int
	for _, pair := range variants {
		start, ok := parseFlexibleDate(pair[0], now)
		require.True(t, ok, "parse %q", pair[0])
		end, ok := parseFlexibleDate(pair[1], now)
		require.True(t, ok, "parse %q", pair[1])
		gaps = append(gaps, monthsBetween(start, end))
	}

	for _, gap := range gaps {
		assert.Equal(t, gaps[0], gap, "gap differs across formats: %v", gaps)
	}
	assert.Equal(t, 20, gaps[0])
}
