package stats

import (
	"math"
	"sort"
	"time"

	"github.com/minhvu/go-taiga-tracker/internal/model"
)

// Summarize produces one UserSummary per roster user for the target
// period. Every id in usersOfInterest gets an entry, zero-filled when
// the user has no qualifying work; callers render zero-activity users,
// not missing rows.
//
// Done, MR and InProgress come from the window membership rule. Pending
// comes from the fixed pendingIDs task list regardless of dates, and is
// not part of Total. Input tasks are never mutated; summaries are fresh
// per call.
func Summarize(tasks []model.Task, period, nowPeriod Period, usersOfInterest, pendingIDs []int64) []model.UserSummary {
	pending := idSet(pendingIDs)

	byUser := make(map[int64]*model.UserSummary, len(usersOfInterest))
	out := make([]model.UserSummary, len(usersOfInterest))
	for i, id := range usersOfInterest {
		out[i] = model.UserSummary{UserID: id}
		byUser[id] = &out[i]
	}

	for _, t := range tasks {
		s, ok := byUser[t.Assignee]
		if !ok {
			continue
		}
		if pending[t.ID] {
			s.Pending++
		}
		if !IsActiveIn(t, period, nowPeriod) {
			continue
		}
		s.Total++
		s.EstimatedHours += t.EstimatedHours
		s.ActualHours += t.ActualHours
		switch t.Status {
		case model.StatusDone:
			s.Done++
		case model.StatusMR:
			s.MR++
		case model.StatusInProgress, model.StatusIncoming:
			s.InProgress++
		}
	}

	for i := range out {
		out[i].CompletionRate = completionRate(out[i].Done, out[i].Total)
	}
	return out
}

// TeamTotals tallies the whole snapshot for one period. Pending is
// counted per upstream task id so a fanned-out multi-assignee task is
// not counted once per assignee.
func TeamTotals(tasks []model.Task, period, nowPeriod Period, pendingIDs []int64) model.TeamTotals {
	pending := idSet(pendingIDs)
	seenPending := make(map[int64]bool)

	var tt model.TeamTotals
	for _, t := range tasks {
		if pending[t.ID] && !seenPending[t.ID] {
			seenPending[t.ID] = true
			tt.Pending++
		}
		if !IsActiveIn(t, period, nowPeriod) {
			continue
		}
		switch t.Status {
		case model.StatusDone:
			tt.Done++
		case model.StatusMR:
			tt.MR++
		case model.StatusInProgress, model.StatusIncoming:
			tt.InProgress++
		}
	}
	return tt
}

// SummarizeRange aggregates over every period in r at once, for the
// ranking board's from/to month picker. A task qualifies when it is
// active in at least one period of the (clamped) range, and is counted
// once no matter how many periods admit it.
func SummarizeRange(tasks []model.Task, r Range, nowPeriod Period, usersOfInterest, pendingIDs []int64) []model.UserSummary {
	periods := r.Periods()
	pending := idSet(pendingIDs)

	byUser := make(map[int64]*model.UserSummary, len(usersOfInterest))
	out := make([]model.UserSummary, len(usersOfInterest))
	for i, id := range usersOfInterest {
		out[i] = model.UserSummary{UserID: id}
		byUser[id] = &out[i]
	}

	for _, t := range tasks {
		s, ok := byUser[t.Assignee]
		if !ok {
			continue
		}
		if pending[t.ID] {
			s.Pending++
		}
		active := false
		for _, p := range periods {
			if IsActiveIn(t, p, nowPeriod) {
				active = true
				break
			}
		}
		if !active {
			continue
		}
		s.Total++
		s.EstimatedHours += t.EstimatedHours
		s.ActualHours += t.ActualHours
		switch t.Status {
		case model.StatusDone:
			s.Done++
		case model.StatusMR:
			s.MR++
		case model.StatusInProgress, model.StatusIncoming:
			s.InProgress++
		}
	}

	for i := range out {
		out[i].CompletionRate = completionRate(out[i].Done, out[i].Total)
	}
	return out
}

// Rank orders summaries for the leaderboard: completed tasks first,
// total assigned as tie-break. The sort is stable so users with equal
// counts keep their input order.
func Rank(summaries []model.UserSummary) []model.UserSummary {
	out := make([]model.UserSummary, len(summaries))
	copy(out, summaries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Done != out[j].Done {
			return out[i].Done > out[j].Done
		}
		return out[i].Total > out[j].Total
	})
	return out
}

// GroupByWeek walks the weeks covering [from, to] and rolls the task
// snapshot into one WeekData per week. now anchors the rolling window
// for open work.
func GroupByWeek(tasks []model.Task, from, to, now time.Time) []model.WeekData {
	nowWeek := WeekOf(now)
	last := WeekOf(to)

	var weeks []model.WeekData
	for w := WeekOf(from); !w.Start.After(last.Start); w = w.Next() {
		wd := model.WeekData{
			WeekStart: w.Start,
			WeekEnd:   w.End,
			Label:     w.Label(),
		}
		for _, t := range tasks {
			if !IsActiveIn(t, w, nowWeek) {
				continue
			}
			wd.Tasks = append(wd.Tasks, t)
			wd.TotalTasks++
			wd.TotalEstimatedHours += t.EstimatedHours
			wd.TotalActualHours += t.ActualHours
			switch t.Status {
			case model.StatusDone:
				wd.DoneCount++
			case model.StatusMR:
				wd.MRCount++
			case model.StatusInProgress, model.StatusIncoming:
				wd.InProgressCount++
			}
		}
		wd.CompletedTasks = wd.DoneCount
		wd.CompletionRate = completionRate(wd.DoneCount, wd.TotalTasks)
		weeks = append(weeks, wd)
	}
	return weeks
}

// YearlyOverview buckets the snapshot into the twelve months of a year
// by creation date, counting total and DONE per month.
func YearlyOverview(tasks []model.Task, year int) []model.MonthBucket {
	months := make([]model.MonthBucket, 12)
	for i := range months {
		months[i].Name = time.Month(i + 1).String()[:3]
	}
	for _, t := range tasks {
		if t.CreatedAt.Year() != year {
			continue
		}
		b := &months[int(t.CreatedAt.Month())-1]
		b.Total++
		if t.Status == model.StatusDone {
			b.Done++
		}
	}
	return months
}

// completionRate is done/total as a percentage rounded to one decimal.
// Zero total means zero rate, never NaN.
func completionRate(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(done)/float64(total)*1000) / 10
}

func idSet(ids []int64) map[int64]bool {
	m := make(map[int64]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
