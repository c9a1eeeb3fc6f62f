package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriodMonthly(t *testing.T) {
	w, err := ResolvePeriod(PeriodMonthly, "2024-06")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), w.End)

	assert.True(t, w.Contains(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, time.May, 31, 23, 59, 59, 0, time.UTC)))
}

func TestResolvePeriodWeekly(t *testing.T) {
	// Week 1 starts Jan 1; week 23 starts 22*7 days later.
	w, err := ResolvePeriod(PeriodWeekly, "2024-W23")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), w.End)
}

func TestResolvePeriodInvalidAnchor(t *testing.T) {
	tests := []struct {
		name   string
		kind   PeriodKind
		anchor string
	}{
		{"empty", PeriodMonthly, ""},
		{"month out of range", PeriodMonthly, "2024-13"},
		{"month not padded", PeriodMonthly, "2024-6"},
		{"weekly shape for monthly", PeriodMonthly, "2024-W23"},
		{"week zero", PeriodWeekly, "2024-W00"},
		{"week out of range", PeriodWeekly, "2024-W54"},
		{"monthly shape for weekly", PeriodWeekly, "2024-06"},
		{"garbage", PeriodWeekly, "last-week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePeriod(tt.kind, tt.anchor)
			assert.ErrorIs(t, err, ErrInvalidPeriodAnchor)
		})
	}
}

func TestResolvePeriodUnknownKind(t *testing.T) {
	_, err := ResolvePeriod(PeriodKind("daily"), "2024-06")
	assert.ErrorIs(t, err, ErrInvalidPeriodAnchor)
}

func TestPreviousAnchor(t *testing.T) {
	tests := []struct {
		kind   PeriodKind
		anchor string
		want   string
	}{
		{PeriodMonthly, "2024-06", "2024-05"},
		{PeriodMonthly, "2024-01", "2023-12"},
		{PeriodWeekly, "2024-W23", "2024-W22"},
		{PeriodWeekly, "2024-W01", "2023-W52"},
	}

	for _, tt := range tests {
		t.Run(tt.anchor, func(t *testing.T) {
			got, err := PreviousAnchor(tt.kind, tt.anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeeksInPeriod(t *testing.T) {
	assert.Equal(t, 1, WeeksInPeriod(PeriodWeekly))
	assert.Equal(t, 4, WeeksInPeriod(PeriodMonthly))
}
