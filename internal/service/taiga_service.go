package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhvu/go-taiga-tracker/internal/model"
	"github.com/minhvu/go-taiga-tracker/internal/stats"
)

// SyncStore is the slice of the repository the sync pipeline writes
// through.
type SyncStore interface {
	ReplaceTasks(ctx context.Context, tasks []model.Task) error
	UpsertMember(ctx context.Context, m *model.Member) error
	InsertSyncRun(ctx context.Context, run *model.SyncRun) error
}

// TaigaService talks to the Taiga v1 API and keeps the local task
// snapshot in sync.
type TaigaService struct {
	Repo     SyncStore
	BaseURL  string
	Email    string
	Password string
	Roster   []int64
	Client   *http.Client

	token string
}

func NewTaigaService(repo SyncStore, baseURL, email, password string, roster []int64) *TaigaService {
	return &TaigaService{
		Repo:     repo,
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Email:    email,
		Password: password,
		Roster:   roster,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Login authenticates against Taiga and stores the bearer token for
// subsequent requests.
func (s *TaigaService) Login(ctx context.Context) error {
	payload, _ := json.Marshal(map[string]string{
		"type":     "normal",
		"username": s.Email,
		"password": s.Password,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/v1/auth", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 400 {
		return fmt.Errorf("taiga auth error %d: %s", res.StatusCode, string(body))
	}

	var out struct {
		AuthToken string `json:"auth_token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return err
	}
	if out.AuthToken == "" {
		return errors.New("taiga auth: empty token in response")
	}
	s.token = out.AuthToken
	return nil
}

func (s *TaigaService) doRequest(ctx context.Context, method, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-disable-pagination", "1")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	res, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("taiga api error %d: %s", res.StatusCode, string(body))
	}
	return body, nil
}

func (s *TaigaService) GetProjects(ctx context.Context) ([]model.TaigaProject, error) {
	b, err := s.doRequest(ctx, http.MethodGet, s.BaseURL+"/api/v1/projects")
	if err != nil {
		return nil, err
	}
	var projects []model.TaigaProject
	if err := json.Unmarshal(b, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// rosterParam renders the allow-list the way the userstories endpoint
// wants it: comma-separated ids.
func (s *TaigaService) rosterParam() string {
	parts := make([]string, 0, len(s.Roster))
	for _, id := range s.Roster {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

func (s *TaigaService) fetchItems(ctx context.Context, url string) ([]model.TaigaItem, error) {
	b, err := s.doRequest(ctx, http.MethodGet, url)
	if err != nil {
		return nil, err
	}
	var items []model.TaigaItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchAll pulls tasks and user stories from every visible project.
// One failing project logs a warning and the rest continue; a partial
// board beats a blank one.
func (s *TaigaService) FetchAll(ctx context.Context) ([]model.TaigaItem, error) {
	projects, err := s.GetProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	var all []model.TaigaItem
	for _, p := range projects {
		tasks, err := s.fetchItems(ctx,
			fmt.Sprintf("%s/api/v1/tasks?project=%d", s.BaseURL, p.ID))
		if err != nil {
			log.Printf("WARNING: could not fetch tasks for project %d (%s): %v", p.ID, p.Name, err)
		} else {
			all = append(all, tasks...)
		}

		stories, err := s.fetchItems(ctx,
			fmt.Sprintf("%s/api/v1/userstories?project=%d&assigned_users=%s&status__is_archived=false",
				s.BaseURL, p.ID, s.rosterParam()))
		if err != nil {
			log.Printf("WARNING: could not fetch user stories for project %d (%s): %v", p.ID, p.Name, err)
		} else {
			all = append(all, stories...)
		}
	}
	return all, nil
}

// SyncAll logs in, pulls every project, normalizes the records and
// replaces the snapshot. Member display info found along the way is
// upserted so the UI has names and photos for the roster. Failed runs
// are recorded too, with the error, so sync history shows the gaps.
func (s *TaigaService) SyncAll(ctx context.Context) (*model.SyncRun, error) {
	run := &model.SyncRun{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
	fail := func(err error) (*model.SyncRun, error) {
		run.Error = err.Error()
		run.FinishedAt = time.Now()
		if insErr := s.Repo.InsertSyncRun(ctx, run); insErr != nil {
			log.Printf("WARNING: failed to record sync run: %v", insErr)
		}
		return nil, err
	}

	if s.token == "" {
		if err := s.Login(ctx); err != nil {
			return fail(fmt.Errorf("taiga login: %w", err))
		}
	}

	log.Println("=== START TAIGA SYNC ===")
	items, err := s.FetchAll(ctx)
	if err != nil {
		return fail(err)
	}
	run.RawItems = len(items)
	log.Printf("fetched %d raw items", len(items))

	tasks := stats.Normalize(items, s.Roster)
	run.Tasks = len(tasks)
	log.Printf("normalized into %d task records", len(tasks))

	if err := s.Repo.ReplaceTasks(ctx, tasks); err != nil {
		return fail(fmt.Errorf("store tasks: %w", err))
	}

	s.upsertMembers(ctx, items)

	run.FinishedAt = time.Now()
	if err := s.Repo.InsertSyncRun(ctx, run); err != nil {
		log.Printf("WARNING: failed to record sync run: %v", err)
	}
	log.Printf("=== TAIGA SYNC COMPLETE: %d tasks in %s ===", run.Tasks, run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
	return run, nil
}

func (s *TaigaService) upsertMembers(ctx context.Context, items []model.TaigaItem) {
	roster := make(map[int64]bool, len(s.Roster))
	for _, id := range s.Roster {
		roster[id] = true
	}

	seen := make(map[int64]bool)
	upsert := func(u *model.TaigaUserInfo) {
		if u == nil || !roster[u.ID] || seen[u.ID] {
			return
		}
		seen[u.ID] = true
		m := &model.Member{
			TaigaID:  u.ID,
			Username: u.Username,
			FullName: u.FullNameDisplay,
			IsActive: u.IsActive,
		}
		if u.Photo != nil {
			m.Photo = *u.Photo
		}
		if err := s.Repo.UpsertMember(ctx, m); err != nil {
			log.Printf("WARNING: failed to upsert member %d: %v", u.ID, err)
		}
	}

	for i := range items {
		upsert(items[i].AssignedToExtraInfo)
		for j := range items[i].AssignedUsersExtra {
			upsert(&items[i].AssignedUsersExtra[j])
		}
	}
}
