package model

import "time"

// Status is the closed set of task states the dashboard understands.
// Upstream Taiga status names are free text and get folded into this
// set by stats.MapStatus.
type Status string

const (
	StatusUnknown    Status = "UNKNOWN"
	StatusDone       Status = "DONE"
	StatusMR         Status = "MR"
	StatusInProgress Status = "IN_PROGRESS"
	StatusIncoming   Status = "INCOMING"
	StatusPending    Status = "PENDING"
	StatusBlocked    Status = "BLOCKED"
)

// Task is the normalized unit of work. After normalization every Task
// carries exactly one assignee; an upstream item with N allow-listed
// assignees becomes N Task records differing only in Assignee, so
// per-user aggregation is a plain group-by.
type Task struct {
	ID             int64      `json:"id"`
	Subject        string     `json:"subject"`
	Status         Status     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ModifiedAt     *time.Time `json:"modified_at,omitempty"`
	Assignee       int64      `json:"assignee"`
	ProjectID      int64      `json:"project_id,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	IsBlocked      bool       `json:"is_blocked,omitempty"`
	CommentCount   int        `json:"comment_count,omitempty"`
	EstimatedHours float64    `json:"estimated_hours,omitempty"`
	ActualHours    float64    `json:"actual_hours,omitempty"`
}
