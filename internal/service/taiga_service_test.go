package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/go-taiga-tracker/internal/model"
)

type fakeSyncStore struct {
	tasks   []model.Task
	members []model.Member
	runs    []model.SyncRun
}

func (f *fakeSyncStore) ReplaceTasks(_ context.Context, tasks []model.Task) error {
	f.tasks = tasks
	return nil
}

func (f *fakeSyncStore) UpsertMember(_ context.Context, m *model.Member) error {
	f.members = append(f.members, *m)
	return nil
}

func (f *fakeSyncStore) InsertSyncRun(_ context.Context, run *model.SyncRun) error {
	f.runs = append(f.runs, *run)
	return nil
}

// newTaigaStub fakes the handful of Taiga endpoints SyncAll touches.
// projectsStatus lets a test break the pipeline at the project list.
func newTaigaStub(projectsStatus int) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"auth_token":"tok"}`))
	})
	mux.HandleFunc("/api/v1/projects", func(w http.ResponseWriter, r *http.Request) {
		if projectsStatus != http.StatusOK {
			http.Error(w, "boom", projectsStatus)
			return
		}
		w.Write([]byte(`[{"id":7,"name":"board","slug":"board"}]`))
	})
	mux.HandleFunc("/api/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"id": 101,
			"subject": "fix login",
			"created_date": "2025-06-02T08:00:00Z",
			"modified_date": "2025-06-10T08:00:00Z",
			"status_extra_info": {"name": "Done", "is_closed": true},
			"assigned_to": 185,
			"assigned_to_extra_info": {"id": 185, "username": "minh", "full_name_display": "Minh Vu", "is_active": true},
			"project": 7
		}]`))
	})
	mux.HandleFunc("/api/v1/userstories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	return httptest.NewServer(mux)
}

func TestSyncAllStoresSnapshotAndRun(t *testing.T) {
	srv := newTaigaStub(http.StatusOK)
	defer srv.Close()

	store := &fakeSyncStore{}
	svc := NewTaigaService(store, srv.URL, "u", "p", []int64{185})

	run, err := svc.SyncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, run.RawItems)
	assert.Equal(t, 1, run.Tasks)
	assert.Empty(t, run.Error)

	require.Len(t, store.tasks, 1)
	assert.Equal(t, model.StatusDone, store.tasks[0].Status)
	assert.Equal(t, int64(185), store.tasks[0].Assignee)
	require.Len(t, store.members, 1)
	assert.Equal(t, "minh", store.members[0].Username)
	require.Len(t, store.runs, 1)
	assert.Empty(t, store.runs[0].Error)
}

func TestSyncAllRecordsFailedRun(t *testing.T) {
	srv := newTaigaStub(http.StatusInternalServerError)
	defer srv.Close()

	store := &fakeSyncStore{}
	svc := NewTaigaService(store, srv.URL, "u", "p", []int64{185})

	_, err := svc.SyncAll(context.Background())
	require.Error(t, err)

	// The failure still lands in sync history, error and all.
	require.Len(t, store.runs, 1)
	assert.NotEmpty(t, store.runs[0].Error)
	assert.False(t, store.runs[0].FinishedAt.IsZero())
	assert.Empty(t, store.tasks)
}
