package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthStart(t *testing.T) {
	kampala := time.FixedZone("EAT", 3*60*60)

	// 22:30 UTC on Oct 31 is already Nov 1 in Kampala (UTC+3).
	ts := time.Date(2026, time.October, 31, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), MonthStart(ts, nil))
	assert.Equal(t, time.Date(2026, time.November, 1, 0, 0, 0, 0, kampala), MonthStart(ts, kampala))
}

func TestTrailingMonths(t *testing.T) {
	now := time.Date(2026, time.February, 15, 12, 0, 0, 0, time.UTC)

	months := TrailingMonths(now, 4, time.UTC)
	require.Len(t, months, 4)

	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = Label(m)
	}
	assert.Equal(t, []string{"2025-11", "2025-12", "2026-01", "2026-02"}, labels)

	from, to := Bounds(months)
	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestTrailingMonths_EndOfMonthDoesNotSkip(t *testing.T) {
	// AddDate on the 31st would normalise into the next month; month starts avoid that.
	now := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	months := TrailingMonths(now, 2, time.UTC)
	assert.Equal(t, "2026-02", Label(months[0]))
	assert.Equal(t, "2026-03", Label(months[1]))
}

func TestTrailingMonths_Empty(t *testing.T) {
	assert.Empty(t, TrailingMonths(time.Now(), 0, time.UTC))
	from, to := Bounds(nil)
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())
}
