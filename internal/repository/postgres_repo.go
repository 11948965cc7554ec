package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/minhvu/go-taiga-tracker/internal/model"
)

type DBConfig struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

type PostgresRepo struct {
	DB *sql.DB
}

func NewPostgresRepoFromConfig(cfg *DBConfig) (*PostgresRepo, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Pass, cfg.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return &PostgresRepo{DB: db}, nil
}

func (r *PostgresRepo) RunMigrations(ctx context.Context) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
		`CREATE TABLE IF NOT EXISTS admins (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            username VARCHAR(100) UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMP DEFAULT NOW()
        );`,
		`CREATE TABLE IF NOT EXISTS members (
            taiga_id BIGINT PRIMARY KEY,
            username TEXT,
            full_name TEXT,
            photo TEXT,
            is_active BOOLEAN DEFAULT TRUE,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
        );`,
		`CREATE TABLE IF NOT EXISTS tasks (
            id BIGINT NOT NULL,
            assignee BIGINT NOT NULL,
            subject TEXT,
            status TEXT,
            created_at TIMESTAMP WITH TIME ZONE,
            modified_at TIMESTAMP WITH TIME ZONE,
            project_id BIGINT,
            tags TEXT[],
            is_blocked BOOLEAN DEFAULT FALSE,
            comment_count INT DEFAULT 0,
            estimated_hours DOUBLE PRECISION DEFAULT 0,
            actual_hours DOUBLE PRECISION DEFAULT 0,
            PRIMARY KEY (id, assignee)
        );`,
		`CREATE TABLE IF NOT EXISTS sync_runs (
            id UUID PRIMARY KEY,
            started_at TIMESTAMP WITH TIME ZONE,
            finished_at TIMESTAMP WITH TIME ZONE,
            raw_items INT,
            tasks INT,
            error TEXT
        );`,
	}
	for _, q := range queries {
		if _, err := r.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepo) UpsertAdmin(ctx context.Context, username, passwordHash string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO admins (username, password_hash) VALUES ($1, $2)
         ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		username, passwordHash)
	return err
}

func (r *PostgresRepo) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at
         FROM admins WHERE username = $1 LIMIT 1`, username)

	var a model.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepo) UpsertMember(ctx context.Context, m *model.Member) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO members (taiga_id, username, full_name, photo, is_active, updated_at)
         VALUES ($1, $2, $3, $4, $5, now())
         ON CONFLICT (taiga_id) DO UPDATE SET
            username = EXCLUDED.username,
            full_name = EXCLUDED.full_name,
            photo = EXCLUDED.photo,
            is_active = EXCLUDED.is_active,
            updated_at = now()`,
		m.TaigaID, m.Username, m.FullName, m.Photo, m.IsActive)
	return err
}

func (r *PostgresRepo) GetMembers(ctx context.Context) ([]model.Member, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT taiga_id, username, full_name, COALESCE(photo, ''), is_active, created_at, updated_at
         FROM members ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.TaigaID, &m.Username, &m.FullName, &m.Photo, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// ReplaceTasks swaps the whole task snapshot inside one transaction.
// Tasks are fetched fresh every sync; there is no incremental merge.
func (r *PostgresRepo) ReplaceTasks(ctx context.Context, tasks []model.Task) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO tasks (id, assignee, subject, status, created_at, modified_at,
                            project_id, tags, is_blocked, comment_count, estimated_hours, actual_hours)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range tasks {
		var modified sql.NullTime
		if t.ModifiedAt != nil {
			modified = sql.NullTime{Time: *t.ModifiedAt, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			t.ID, t.Assignee, t.Subject, string(t.Status), t.CreatedAt, modified,
			t.ProjectID, pq.Array(t.Tags), t.IsBlocked, t.CommentCount,
			t.EstimatedHours, t.ActualHours); err != nil {
			return fmt.Errorf("insert task %d/%d: %w", t.ID, t.Assignee, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepo) GetTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, assignee, subject, status, created_at, modified_at,
                project_id, tags, is_blocked, comment_count, estimated_hours, actual_hours
         FROM tasks ORDER BY id, assignee`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var status string
		var modified sql.NullTime
		if err := rows.Scan(&t.ID, &t.Assignee, &t.Subject, &status, &t.CreatedAt, &modified,
			&t.ProjectID, pq.Array(&t.Tags), &t.IsBlocked, &t.CommentCount,
			&t.EstimatedHours, &t.ActualHours); err != nil {
			return nil, err
		}
		t.Status = model.Status(status)
		if modified.Valid {
			m := modified.Time
			t.ModifiedAt = &m
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *PostgresRepo) InsertSyncRun(ctx context.Context, run *model.SyncRun) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO sync_runs (id, started_at, finished_at, raw_items, tasks, error)
         VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))`,
		run.ID, run.StartedAt, run.FinishedAt, run.RawItems, run.Tasks, run.Error)
	return err
}
