package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name        string
		year, month int
		want        int
	}{
		{"leap february", 2024, 1, 29},
		{"common february", 2023, 1, 28},
		{"april", 2024, 3, 30},
		{"january", 2024, 0, 31},
		{"december", 2023, 11, 31},
		{"century is not leap", 1900, 1, 28},
		{"quad century is leap", 2000, 1, 29},
		{"2100 is not leap", 2100, 1, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestDaysInMonthMatchesTimePackage(t *testing.T) {
	for year := 1890; year <= 2110; year++ {
		for month := 0; month < 12; month++ {
			want := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
			require.Equal(t, want, DaysInMonth(year, month), "%d-%02d", year, month+1)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	assert.Equal(t, 1, FirstWeekday(2024, 0)) // Monday
	assert.Equal(t, 6, FirstWeekday(2024, 5)) // Saturday, June 1
	assert.Equal(t, 0, FirstWeekday(2023, 9)) // Sunday, Oct 1
	assert.Equal(t, 4, FirstWeekday(2026, 9)) // Thursday, Oct 1
}

func TestFormatKey(t *testing.T) {
	d := time.Date(2024, time.June, 15, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-06-15", FormatKey(d))
	assert.Equal(t, "0999-01-05", FormatKey(time.Date(999, time.January, 5, 0, 0, 0, 0, time.Local)))

	// Components are read in the value's own zone, never converted.
	east := time.FixedZone("east", 14*3600)
	assert.Equal(t, "2024-01-01", FormatKey(time.Date(2024, 1, 1, 0, 30, 0, 0, east)))
}

func TestKeyRoundTrip(t *testing.T) {
	seen := map[string]bool{}
	d := time.Date(2019, time.December, 25, 0, 0, 0, 0, time.Local)
	for i := 0; i < 3*366; i++ {
		day := d.AddDate(0, 0, i)
		key := FormatKey(day)
		require.False(t, seen[key], "collision on %s", key)
		seen[key] = true

		back, err := ParseKey(key, time.Local)
		require.NoError(t, err)
		require.Equal(t, key, FormatKey(back))
		require.Equal(t, day.YearDay(), back.YearDay())
	}
}

func TestParseKeyRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "2024-13-01", "2024-02-30", "24-1-1", "yesterday"} {
		_, err := ParseKey(in, time.Local)
		assert.Error(t, err, in)
	}
}
