package service

import (
	"context"
	"sort"
	"time"

	"github.com/minhvu/go-taiga-tracker/internal/model"
	"github.com/minhvu/go-taiga-tracker/internal/repository"
	"github.com/minhvu/go-taiga-tracker/internal/stats"
)

// DashboardService drives the aggregation core over the stored task
// snapshot. The reference instant is always passed in by the caller so
// every computation stays reproducible.
type DashboardService struct {
	Repo           *repository.PostgresRepo
	Roster         []int64
	PendingTaskIDs []int64
	WeeklyGoal     int
}

func NewDashboardService(repo *repository.PostgresRepo, roster, pendingTaskIDs []int64, weeklyGoal int) *DashboardService {
	return &DashboardService{
		Repo:           repo,
		Roster:         roster,
		PendingTaskIDs: pendingTaskIDs,
		WeeklyGoal:     weeklyGoal,
	}
}

// WeeklySnapshot builds the tracker view for the week containing ref.
// Users are ordered by total tasks, busiest first.
func (s *DashboardService) WeeklySnapshot(ctx context.Context, ref, now time.Time) (*model.WeeklyResponse, error) {
	tasks, err := s.Repo.GetTasks(ctx)
	if err != nil {
		return nil, err
	}

	week := stats.WeekOf(ref)
	nowWeek := stats.WeekOf(now)

	users := stats.Summarize(tasks, week, nowWeek, s.Roster, s.PendingTaskIDs)
	sort.SliceStable(users, func(i, j int) bool { return users[i].Total > users[j].Total })

	return &model.WeeklyResponse{
		WeekStart: week.Start,
		WeekEnd:   week.End,
		Label:     week.Label(),
		Goal:      s.WeeklyGoal,
		Totals:    stats.TeamTotals(tasks, week, nowWeek, s.PendingTaskIDs),
		Users:     users,
	}, nil
}

// WeekRange rolls the snapshot into one WeekData per week of [from, to].
func (s *DashboardService) WeekRange(ctx context.Context, from, to, now time.Time) ([]model.WeekData, error) {
	tasks, err := s.Repo.GetTasks(ctx)
	if err != nil {
		return nil, err
	}
	return stats.GroupByWeek(tasks, from, to, now), nil
}

// MonthlyRanking builds the leaderboard over the month range
// [from, to]. An inverted range is clamped, never rejected.
func (s *DashboardService) MonthlyRanking(ctx context.Context, from, to, now time.Time) (*model.RankingResponse, error) {
	tasks, err := s.Repo.GetTasks(ctx)
	if err != nil {
		return nil, err
	}

	r := stats.Range{From: stats.MonthOf(from), To: stats.MonthOf(to)}
	r = r.Clamp()

	users := stats.SummarizeRange(tasks, r, stats.MonthOf(now), s.Roster, s.PendingTaskIDs)
	return &model.RankingResponse{
		From:  r.From.Label(),
		To:    r.To.Label(),
		Users: stats.Rank(users),
	}, nil
}

// Yearly buckets the snapshot into the months of one year.
func (s *DashboardService) Yearly(ctx context.Context, year int) (*model.YearlyResponse, error) {
	tasks, err := s.Repo.GetTasks(ctx)
	if err != nil {
		return nil, err
	}

	months := stats.YearlyOverview(tasks, year)
	total := 0
	for _, m := range months {
		total += m.Total
	}
	return &model.YearlyResponse{Year: year, TotalTasks: total, Months: months}, nil
}

// TeamStats is the current-week snapshot used by the team page.
func (s *DashboardService) TeamStats(ctx context.Context, now time.Time) (*model.WeeklyResponse, error) {
	return s.WeeklySnapshot(ctx, now, now)
}
