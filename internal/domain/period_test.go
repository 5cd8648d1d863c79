package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, time.May, 15, 13, 45, 12, 0, time.UTC)

	cases := []struct {
		period Period
		want   time.Time
	}{
		{period: PeriodDay, want: time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)},
		{period: PeriodWeek, want: time.Date(2025, time.May, 8, 0, 0, 0, 0, time.UTC)},
		{period: PeriodMonth, want: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{period: PeriodYear, want: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		t.Run(string(c.period), func(t *testing.T) {
			assert.Equal(t, c.want, c.period.Start(now))
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"day", "week", "month", "year"} {
		p, err := ParsePeriod(valid)
		require.NoError(t, err)
		assert.Equal(t, Period(valid), p)
	}

	_, err := ParsePeriod("quarter")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}
