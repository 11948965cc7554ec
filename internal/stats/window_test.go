package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/minhvu/go-taiga-tracker/internal/model"
)

// The windowing rule deliberately mixes two semantics: DONE work is
// attributed by modification date, open work by a rolling
// current-and-future window. These tests pin both branches separately
// so a change to one cannot silently alter the other.

func tp(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestDoneMembershipFollowsModifiedDate(t *testing.T) {
	task := model.Task{
		ID:         1,
		Status:     model.StatusDone,
		CreatedAt:  date(2025, 1, 1),
		ModifiedAt: tp(2025, 6, 10),
		Assignee:   185,
	}
	nowWeek := WeekOf(date(2025, 6, 12))

	assert.True(t, IsActiveIn(task, WeekOf(date(2025, 6, 10)), nowWeek))
	assert.False(t, IsActiveIn(task, WeekOf(date(2025, 6, 3)), nowWeek))
	assert.False(t, IsActiveIn(task, WeekOf(date(2025, 6, 17)), nowWeek))

	// The creation date is irrelevant for DONE work.
	assert.False(t, IsActiveIn(task, WeekOf(date(2025, 1, 1)), nowWeek))
}

func TestDoneWithoutModifiedDateNeverActive(t *testing.T) {
	task := model.Task{ID: 2, Status: model.StatusDone, CreatedAt: date(2025, 6, 10), Assignee: 185}
	nowWeek := WeekOf(date(2025, 6, 12))

	for _, w := range []Period{nowWeek.Prev(), nowWeek, nowWeek.Next()} {
		assert.False(t, IsActiveIn(task, w, nowWeek))
	}
}

func TestOpenWorkRollsForwardOnly(t *testing.T) {
	nowWeek := WeekOf(date(2025, 6, 12))
	for _, status := range []model.Status{model.StatusMR, model.StatusInProgress, model.StatusIncoming} {
		task := model.Task{
			ID:         3,
			Status:     status,
			CreatedAt:  date(2024, 11, 3),
			ModifiedAt: tp(2024, 12, 1),
			Assignee:   185,
		}

		// Member of the current period and of every later one,
		// regardless of its own dates.
		assert.True(t, IsActiveIn(task, nowWeek, nowWeek), "%s in now", status)
		assert.True(t, IsActiveIn(task, nowWeek.Next(), nowWeek), "%s in future", status)
		assert.True(t, IsActiveIn(task, nowWeek.Shift(10), nowWeek), "%s far future", status)

		// Never a member of past periods, even the one holding its
		// modification date.
		assert.False(t, IsActiveIn(task, nowWeek.Prev(), nowWeek), "%s in past", status)
		assert.False(t, IsActiveIn(task, WeekOf(date(2024, 12, 1)), nowWeek), "%s in modified week", status)
	}
}

func TestPendingAndBlockedExcludedFromWindowing(t *testing.T) {
	nowWeek := WeekOf(date(2025, 6, 12))
	for _, status := range []model.Status{model.StatusPending, model.StatusBlocked, model.StatusUnknown} {
		task := model.Task{ID: 4, Status: status, CreatedAt: date(2025, 6, 10), ModifiedAt: tp(2025, 6, 10), Assignee: 185}
		assert.False(t, IsActiveIn(task, nowWeek, nowWeek), "%s must not window", status)
		assert.False(t, IsActiveIn(task, nowWeek.Next(), nowWeek), "%s must not window", status)
	}
}

func TestWindowWorksAtMonthGrainToo(t *testing.T) {
	nowMonth := MonthOf(date(2025, 6, 12))
	done := model.Task{ID: 5, Status: model.StatusDone, CreatedAt: date(2025, 1, 1), ModifiedAt: tp(2025, 5, 20), Assignee: 185}
	open := model.Task{ID: 6, Status: model.StatusInProgress, CreatedAt: date(2025, 1, 1), Assignee: 185}

	assert.True(t, IsActiveIn(done, MonthOf(date(2025, 5, 1)), nowMonth))
	assert.False(t, IsActiveIn(done, nowMonth, nowMonth))
	assert.True(t, IsActiveIn(open, nowMonth, nowMonth))
	assert.False(t, IsActiveIn(open, MonthOf(date(2025, 5, 1)), nowMonth))
}
