package model

import "time"

// SyncRun records one full pull from Taiga.
type SyncRun struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	RawItems   int       `json:"raw_items"`
	Tasks      int       `json:"tasks"`
	Error      string    `json:"error,omitempty"`
}
