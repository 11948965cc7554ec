package model

import "time"

// WeeklyResponse is the payload behind the weekly tracker view.
type WeeklyResponse struct {
	WeekStart time.Time     `json:"week_start"`
	WeekEnd   time.Time     `json:"week_end"`
	Label     string        `json:"label"`
	Goal      int           `json:"goal"`
	Totals    TeamTotals    `json:"totals"`
	Users     []UserSummary `json:"users"`
}

// RankingResponse is the monthly leaderboard payload.
type RankingResponse struct {
	From  string        `json:"from"`
	To    string        `json:"to"`
	Users []UserSummary `json:"users"`
}

// YearlyResponse is the yearly overview payload.
type YearlyResponse struct {
	Year       int           `json:"year"`
	TotalTasks int           `json:"total_tasks"`
	Months     []MonthBucket `json:"months"`
}
