package stats

import (
	"fmt"
	"time"
)

// Grain is the size of an aggregation period.
type Grain int

const (
	Week Grain = iota
	Month
	Year
)

// Period is a half-open interval [Start, End) at week, month or year
// granularity. Weeks run Monday 00:00 to the next Monday 00:00;
// months and years are calendar-aligned. All boundaries are computed
// in the location of the input time.
type Period struct {
	Grain Grain
	Start time.Time
	End   time.Time
}

// WeekOf returns the ISO-style week (Monday start) containing t.
func WeekOf(t time.Time) Period {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	offset := int(day.Weekday()-time.Monday+7) % 7
	start := day.AddDate(0, 0, -offset)
	return Period{Grain: Week, Start: start, End: start.AddDate(0, 0, 7)}
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Period{Grain: Month, Start: start, End: start.AddDate(0, 1, 0)}
}

// YearOf returns the calendar year containing t.
func YearOf(t time.Time) Period {
	start := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	return Period{Grain: Year, Start: start, End: start.AddDate(1, 0, 0)}
}

// Shift moves the period n steps forward (negative n moves backward).
// AddDate handles month and year rollover, so shifting January by -1
// lands in December of the previous year.
func (p Period) Shift(n int) Period {
	switch p.Grain {
	case Week:
		return WeekOf(p.Start.AddDate(0, 0, 7*n))
	case Month:
		return MonthOf(p.Start.AddDate(0, n, 0))
	default:
		return YearOf(p.Start.AddDate(n, 0, 0))
	}
}

// Next returns the successor period.
func (p Period) Next() Period { return p.Shift(1) }

// Prev returns the predecessor period.
func (p Period) Prev() Period { return p.Shift(-1) }

// Contains reports whether t falls inside the half-open interval.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Label renders the canonical label shown in period pickers.
func (p Period) Label() string {
	switch p.Grain {
	case Week:
		last := p.End.AddDate(0, 0, -1)
		return fmt.Sprintf("%s - %s", p.Start.Format("02/01"), last.Format("02/01/2006"))
	case Month:
		return p.Start.Format("Jan 2006")
	default:
		return p.Start.Format("2006")
	}
}

// Range is an inclusive pair of periods driven by a from/to picker.
type Range struct {
	From Period
	To   Period
}

// Clamp forces To forward whenever the ends cross. From is never moved.
func (r Range) Clamp() Range {
	if r.From.Start.After(r.To.Start) {
		r.To = r.From
	}
	return r
}

// ShiftFrom moves the From end by n periods, clamping To so the range
// never inverts.
func (r Range) ShiftFrom(n int) Range {
	r.From = r.From.Shift(n)
	return r.Clamp()
}

// ShiftTo moves the To end by n periods. If that pushes To before From,
// To snaps back to From; From is untouched.
func (r Range) ShiftTo(n int) Range {
	r.To = r.To.Shift(n)
	return r.Clamp()
}

// Periods enumerates every period of the range in order, From through To.
func (r Range) Periods() []Period {
	r = r.Clamp()
	var out []Period
	for p := r.From; !p.Start.After(r.To.Start); p = p.Next() {
		out = append(out, p)
	}
	return out
}
