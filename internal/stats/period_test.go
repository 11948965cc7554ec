package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOfStartsMonday(t *testing.T) {
	// 2025-06-12 is a Thursday; its week is Mon Jun 9 .. Mon Jun 16.
	w := WeekOf(time.Date(2025, 6, 12, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, date(2025, 6, 9), w.Start)
	assert.Equal(t, date(2025, 6, 16), w.End)

	// A Sunday belongs to the week that started the previous Monday.
	w = WeekOf(date(2025, 6, 15))
	assert.Equal(t, date(2025, 6, 9), w.Start)

	// A Monday starts its own week.
	w = WeekOf(date(2025, 6, 9))
	assert.Equal(t, date(2025, 6, 9), w.Start)
}

func TestPeriodHalfOpen(t *testing.T) {
	w := WeekOf(date(2025, 6, 9))
	assert.True(t, w.Contains(date(2025, 6, 9)))
	assert.True(t, w.Contains(time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(date(2025, 6, 16)))
	assert.False(t, w.Contains(date(2025, 6, 8)))
}

func TestMonthOfAndYearOf(t *testing.T) {
	m := MonthOf(date(2025, 6, 12))
	assert.Equal(t, date(2025, 6, 1), m.Start)
	assert.Equal(t, date(2025, 7, 1), m.End)

	y := YearOf(date(2025, 6, 12))
	assert.Equal(t, date(2025, 1, 1), y.Start)
	assert.Equal(t, date(2026, 1, 1), y.End)
}

func TestShiftRollsOverBoundaries(t *testing.T) {
	jan := MonthOf(date(2025, 1, 15))
	dec := jan.Shift(-1)
	assert.Equal(t, date(2024, 12, 1), dec.Start)

	back := dec.Shift(1)
	assert.Equal(t, jan.Start, back.Start)

	y := YearOf(date(2025, 3, 1)).Shift(-1)
	assert.Equal(t, date(2024, 1, 1), y.Start)

	w := WeekOf(date(2025, 12, 29)) // week spanning the new year
	next := w.Next()
	assert.Equal(t, date(2026, 1, 5), next.Start)
}

func TestShiftNextPrevRoundTrip(t *testing.T) {
	w := WeekOf(date(2025, 6, 12))
	assert.Equal(t, w.Start, w.Next().Prev().Start)
	assert.Equal(t, w.Start.AddDate(0, 0, 14), w.Shift(2).Start)
}

func TestRangeClampForcesToForward(t *testing.T) {
	r := Range{From: MonthOf(date(2025, 2, 1)), To: MonthOf(date(2025, 3, 1))}

	// Moving From past To drags To along with it.
	r2 := r.ShiftFrom(2) // From -> April
	assert.Equal(t, date(2025, 4, 1), r2.From.Start)
	assert.Equal(t, date(2025, 4, 1), r2.To.Start)

	// Moving To never touches From.
	r3 := r.ShiftTo(-5) // To would land before From
	assert.Equal(t, date(2025, 2, 1), r3.From.Start)
	assert.Equal(t, date(2025, 2, 1), r3.To.Start)

	// A well-ordered shift changes only the end it was asked to.
	r4 := r.ShiftTo(3)
	assert.Equal(t, date(2025, 2, 1), r4.From.Start)
	assert.Equal(t, date(2025, 6, 1), r4.To.Start)
}

func TestRangePeriods(t *testing.T) {
	r := Range{From: MonthOf(date(2025, 2, 1)), To: MonthOf(date(2025, 4, 1))}
	periods := r.Periods()
	require.Len(t, periods, 3)
	assert.Equal(t, date(2025, 2, 1), periods[0].Start)
	assert.Equal(t, date(2025, 4, 1), periods[2].Start)

	single := Range{From: MonthOf(date(2025, 2, 1)), To: MonthOf(date(2025, 2, 1))}
	require.Len(t, single.Periods(), 1)
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "09/06 - 15/06/2025", WeekOf(date(2025, 6, 12)).Label())
	assert.Equal(t, "Jun 2025", MonthOf(date(2025, 6, 12)).Label())
	assert.Equal(t, "2025", YearOf(date(2025, 6, 12)).Label())
}
