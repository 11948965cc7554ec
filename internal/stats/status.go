package stats

import (
	"log"
	"strings"

	"github.com/minhvu/go-taiga-tracker/internal/model"
)

// statusSynonyms folds the free-text status names our Taiga boards use
// into the closed model.Status set. Keys are lowercase; lookup is
// case-insensitive.
var statusSynonyms = map[string]model.Status{
	"done":           model.StatusDone,
	"closed":         model.StatusDone,
	"mr":             model.StatusMR,
	"ready for test": model.StatusMR,
	"testing":        model.StatusMR,
	"in progress":    model.StatusInProgress,
	"inprogress":     model.StatusInProgress,
	"in coming":      model.StatusIncoming,
	"incoming":       model.StatusIncoming,
	"new":            model.StatusIncoming,
	"ready":          model.StatusIncoming,
	"pending":        model.StatusPending,
	"blocked":        model.StatusBlocked,
}

// MapStatus resolves an upstream status name. Names outside the synonym
// table default to INCOMING: a status we have never seen is still work
// that has not started from the dashboard's point of view.
func MapStatus(name string) model.Status {
	if s, ok := statusSynonyms[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}
	if name != "" {
		log.Printf("stats: unmapped status %q, defaulting to INCOMING", name)
	}
	return model.StatusIncoming
}
