package stats

import "github.com/minhvu/go-taiga-tracker/internal/model"

// IsActiveIn decides whether a task counts toward a period's statistics.
//
// The rule is deliberately split by status and the two branches carry
// different semantics:
//
//   - DONE work is attributed to the period containing its last
//     modification. No modification date means it never counts.
//   - MR, IN_PROGRESS and INCOMING work ignores dates entirely. It is
//     outstanding as of "today", so it appears in the current period and
//     in every future period the user navigates to, never in the past.
//
// nowPeriod is the period containing the real current instant, passed in
// explicitly so the filter stays deterministic. When period equals
// nowPeriod both branches can admit work for the same user; that is
// correct, the current period always shows open work.
//
// PENDING and BLOCKED tasks are excluded here on purpose: they are
// tracked through the fixed pending-task id list (see Summarize), not
// through date logic.
func IsActiveIn(task model.Task, period, nowPeriod Period) bool {
	switch task.Status {
	case model.StatusDone:
		return task.ModifiedAt != nil && period.Contains(*task.ModifiedAt)
	case model.StatusMR, model.StatusInProgress, model.StatusIncoming:
		return !period.Start.Before(nowPeriod.Start)
	default:
		return false
	}
}
