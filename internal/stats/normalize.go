package stats

import (
	"errors"
	"log"
	"time"

	"github.com/minhvu/go-taiga-tracker/internal/model"
)

// Normalize converts raw Taiga tasks and user stories into the uniform
// Task shape, one record per allow-listed assignee.
//
// For each item the assigned_users list is intersected with the roster:
// more than one hit fans the item out into one Task per user; otherwise
// assigned_to wins when it is on the roster; otherwise a single eligible
// assigned_users entry is used. Items with nobody on the roster are
// dropped, the dashboard only tracks a fixed team.
//
// Malformed items (missing id, unparseable created date) are skipped
// with a warning so one bad record from one project never blanks the
// whole board.
func Normalize(items []model.TaigaItem, allowed []int64) []model.Task {
	roster := make(map[int64]bool, len(allowed))
	for _, id := range allowed {
		roster[id] = true
	}

	var out []model.Task
	for i := range items {
		it := &items[i]
		if it.ID == 0 {
			log.Printf("stats: skipping item with missing id (subject=%q)", it.Subject)
			continue
		}

		created, err := parseTaigaDate(it.CreatedDate)
		if err != nil {
			log.Printf("stats: skipping item %d: bad created date %q: %v", it.ID, it.CreatedDate, err)
			continue
		}
		var modified *time.Time
		if m, err := parseTaigaDate(it.ModifiedDate); err == nil {
			modified = &m
		}

		base := model.Task{
			ID:           it.ID,
			Subject:      it.Subject,
			Status:       MapStatus(it.StatusExtraInfo.Name),
			CreatedAt:    created,
			ModifiedAt:   modified,
			ProjectID:    it.Project,
			Tags:         it.TagNames(),
			IsBlocked:    it.IsBlocked,
			CommentCount: it.TotalComments,
		}
		if it.TotalPoints != nil {
			base.EstimatedHours = *it.TotalPoints
			base.ActualHours = *it.TotalPoints
		}

		var eligible []int64
		for _, id := range it.AssignedUsers {
			if roster[id] {
				eligible = append(eligible, id)
			}
		}

		switch {
		case len(eligible) > 1:
			for _, id := range eligible {
				t := base
				t.Assignee = id
				out = append(out, t)
			}
		case it.AssignedTo != nil && roster[*it.AssignedTo]:
			t := base
			t.Assignee = *it.AssignedTo
			out = append(out, t)
		case len(eligible) == 1:
			t := base
			t.Assignee = eligible[0]
			out = append(out, t)
		}
	}
	return out
}

// parseTaigaDate accepts the ISO timestamps Taiga emits, with or
// without fractional seconds.
func parseTaigaDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errEmptyDate
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
	}
	return t, err
}

var errEmptyDate = errors.New("empty date")
