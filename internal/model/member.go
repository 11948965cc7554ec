package model

import "time"

// Member is a tracked team member, keyed by their Taiga user id.
// Display fields are refreshed from *_extra_info blocks during sync.
type Member struct {
	TaigaID   int64     `json:"taiga_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Photo     string    `json:"photo,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
