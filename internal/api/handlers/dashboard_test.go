package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/go-taiga-tracker/internal/stats"
)

// An explicit ?week= for a day in the current week must land on the
// same week grid as the implicit time.Now() anchor, even when the
// server runs behind UTC.
func TestParseDayMatchesLocalNowGrid(t *testing.T) {
	orig := time.Local
	time.Local = time.FixedZone("UTC-4", -4*60*60)
	defer func() { time.Local = orig }()

	parsed, err := parseDay("2025-06-09") // Monday
	require.NoError(t, err)

	now := time.Date(2025, 6, 12, 10, 0, 0, 0, time.Local) // Thursday
	assert.Equal(t, stats.WeekOf(now).Start, stats.WeekOf(parsed).Start)
}

func TestParseDayToday(t *testing.T) {
	now := time.Now()
	parsed, err := parseDay(now.Format("2006-01-02"))
	require.NoError(t, err)
	assert.Equal(t, stats.WeekOf(now).Start, stats.WeekOf(parsed).Start)
}

func TestParseMonthMatchesLocalNowGrid(t *testing.T) {
	orig := time.Local
	time.Local = time.FixedZone("UTC-4", -4*60*60)
	defer func() { time.Local = orig }()

	parsed, err := parseMonth("2025-06")
	require.NoError(t, err)

	now := time.Date(2025, 6, 12, 10, 0, 0, 0, time.Local)
	assert.Equal(t, stats.MonthOf(now).Start, stats.MonthOf(parsed).Start)
}

func TestParseDayRejectsGarbage(t *testing.T) {
	_, err := parseDay("06/09/2025")
	assert.Error(t, err)
}
