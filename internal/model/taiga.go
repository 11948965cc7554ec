package model

// TaigaStatusInfo mirrors Taiga's status_extra_info block.
type TaigaStatusInfo struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	IsClosed bool   `json:"is_closed"`
}

// TaigaUserInfo mirrors the *_extra_info user blocks Taiga attaches to
// tasks and user stories.
type TaigaUserInfo struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	FullNameDisplay string  `json:"full_name_display"`
	Photo           *string `json:"photo"`
	IsActive        bool    `json:"is_active"`
}

// TaigaProject mirrors a Taiga project list entry.
type TaigaProject struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	LogoSmallURL *string `json:"logo_small_url"`
}

// TaigaItem is a raw task or user story as returned by the Taiga v1 API.
// Both endpoints share the fields the dashboard cares about; dates stay
// strings here and are parsed during normalization so one malformed
// record never sinks a whole batch.
type TaigaItem struct {
	ID                  int64           `json:"id"`
	Subject             string          `json:"subject"`
	CreatedDate         string          `json:"created_date"`
	ModifiedDate        string          `json:"modified_date"`
	StatusExtraInfo     TaigaStatusInfo `json:"status_extra_info"`
	AssignedTo          *int64          `json:"assigned_to"`
	AssignedUsers       []int64         `json:"assigned_users"`
	AssignedUsersExtra  []TaigaUserInfo `json:"assigned_users_extra_info"`
	AssignedToExtraInfo *TaigaUserInfo  `json:"assigned_to_extra_info"`
	Project             int64           `json:"project"`
	RawTags             [][]interface{} `json:"tags"`
	IsBlocked           bool            `json:"is_blocked"`
	TotalComments       int             `json:"total_comments"`
	TotalPoints         *float64        `json:"total_points"`
}

// TagNames flattens Taiga's [name, color] tag pairs into plain names.
func (it *TaigaItem) TagNames() []string {
	var names []string
	for _, pair := range it.RawTags {
		if len(pair) > 0 {
			if name, ok := pair[0].(string); ok {
				names = append(names, name)
			}
		}
	}
	return names
}
