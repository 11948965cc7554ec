package model

import "time"

// UserSummary holds one roster member's counts for a single period.
// Pending is tracked by the fixed pending-task id list, not by dates,
// so it is not part of Total.
type UserSummary struct {
	UserID         int64   `json:"user_id"`
	Done           int     `json:"done"`
	MR             int     `json:"mr"`
	InProgress     int     `json:"in_progress"`
	Pending        int     `json:"pending"`
	Total          int     `json:"total"`
	EstimatedHours float64 `json:"estimated_hours"`
	ActualHours    float64 `json:"actual_hours"`
	CompletionRate float64 `json:"completion_rate"`
}

// TeamTotals is the team-wide status breakdown for one period.
type TeamTotals struct {
	Done       int `json:"done"`
	MR         int `json:"mr"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
}

// WeekData is one row of the weekly tracker rollup.
type WeekData struct {
	WeekStart           time.Time `json:"week_start"`
	WeekEnd             time.Time `json:"week_end"`
	Label               string    `json:"label"`
	Tasks               []Task    `json:"tasks"`
	DoneCount           int       `json:"done_count"`
	MRCount             int       `json:"mr_count"`
	InProgressCount     int       `json:"in_progress_count"`
	CompletedTasks      int       `json:"completed_tasks"`
	TotalTasks          int       `json:"total_tasks"`
	TotalEstimatedHours float64   `json:"total_estimated_hours"`
	TotalActualHours    float64   `json:"total_actual_hours"`
	CompletionRate      float64   `json:"completion_rate"`
}

// MonthBucket is one column of the yearly overview chart.
type MonthBucket struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
	Done  int    `json:"done"`
}
