package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vivo1806/Talent-Flow/pkg/model"
)

const jobColumns = `id, title, company, location, type, salary, description, requirements, posted_at, status, sort_order, archived, slug`

// JobRecord is a raw job row. The Has flags report whether the versioned
// fields are actually present, so the seeder can backfill jobs that are
// missing only some of them.
type JobRecord struct {
	Job         model.Job
	HasOrder    bool
	HasArchived bool
	HasSlug     bool
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJobRecord(row rowScanner) (JobRecord, error) {
	var (
		rec          JobRecord
		requirements sql.NullString
		postedAt     sql.NullString
		sortOrder    sql.NullInt64
		archived     sql.NullBool
		slug         sql.NullString
	)
	err := row.Scan(
		&rec.Job.ID, &rec.Job.Title, &rec.Job.Company, &rec.Job.Location,
		&rec.Job.Type, &rec.Job.Salary, &rec.Job.Description, &requirements,
		&postedAt, &rec.Job.Status, &sortOrder, &archived, &slug,
	)
	if err != nil {
		return JobRecord{}, err
	}

	if requirements.Valid && requirements.String != "" {
		if err := json.Unmarshal([]byte(requirements.String), &rec.Job.Requirements); err != nil {
			return JobRecord{}, fmt.Errorf("decode requirements: %w", err)
		}
	}
	if postedAt.Valid {
		t, err := parseTime(postedAt.String)
		if err != nil {
			return JobRecord{}, fmt.Errorf("parse posted_at: %w", err)
		}
		rec.Job.PostedAt = t
	}
	if sortOrder.Valid {
		rec.Job.Order = int(sortOrder.Int64)
		rec.HasOrder = true
	}
	if archived.Valid {
		rec.Job.Archived = archived.Bool
		rec.HasArchived = true
	}
	if slug.Valid && slug.String != "" {
		rec.Job.Slug = slug.String
		rec.HasSlug = true
	}
	return rec, nil
}

func (s *Store) CountJobs(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}

// ListJobs returns all jobs ordered by their display position.
func (s *Store) ListJobs(ctx context.Context) ([]model.Job, error) {
	return s.listJobs(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY sort_order ASC`)
}

// ListJobRecords returns all jobs in insertion order with per-field presence
// flags; used by the seeder's backfill pass.
func (s *Store) ListJobRecords(ctx context.Context) ([]JobRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	recs := make([]JobRecord, 0)
	for rows.Next() {
		rec, err := scanJobRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *Store) listJobs(ctx context.Context, query string, args ...interface{}) ([]model.Job, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		rec, err := scanJobRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, rec.Job)
	}
	return jobs, rows.Err()
}

func (s *Store) GetJob(ctx context.Context, id string) (model.Job, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	rec, err := scanJobRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Job{}, ErrNotFound
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("get job: %w", err)
	}
	return rec.Job, nil
}

// FindJobBySlug returns the job holding slug, or ErrNotFound.
func (s *Store) FindJobBySlug(ctx context.Context, slug string) (model.Job, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE slug = ?`, slug)
	rec, err := scanJobRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Job{}, ErrNotFound
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("find job by slug: %w", err)
	}
	return rec.Job, nil
}

// MaxJobOrder returns the highest display position, or -1 when no jobs exist.
func (s *Store) MaxJobOrder(ctx context.Context) (int, error) {
	var max sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(sort_order) FROM jobs`).Scan(&max); err != nil {
		return 0, fmt.Errorf("max job order: %w", err)
	}
	if !max.Valid {
		return -1, nil
	}
	return int(max.Int64), nil
}

func insertJob(ctx context.Context, ex interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
}, job model.Job) error {
	requirements, err := json.Marshal(job.Requirements)
	if err != nil {
		return fmt.Errorf("encode requirements: %w", err)
	}
	_, err = ex.ExecContext(ctx, `
INSERT INTO jobs (`+jobColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.Title, job.Company, job.Location, job.Type, job.Salary,
		job.Description, string(requirements), formatTime(job.PostedAt),
		job.Status, job.Order, job.Archived, job.Slug,
	)
	return err
}

func (s *Store) CreateJob(ctx context.Context, job model.Job) error {
	if err := insertJob(ctx, s.db, job); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// BulkInsertJobs inserts all jobs in one transaction.
func (s *Store) BulkInsertJobs(ctx context.Context, jobs []model.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for i, job := range jobs {
		if err := insertJob(ctx, tx, job); err != nil {
			return fmt.Errorf("bulk insert job %d: %w", i, err)
		}
	}

	committed = true
	return tx.Commit()
}

// UpdateJob applies a partial patch and returns the updated job.
func (s *Store) UpdateJob(ctx context.Context, id string, patch model.JobPatch) (model.Job, error) {
	sets := make([]string, 0, 11)
	args := make([]interface{}, 0, 12)

	add := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Company != nil {
		add("company", *patch.Company)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Salary != nil {
		add("salary", *patch.Salary)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Requirements != nil {
		b, err := json.Marshal(*patch.Requirements)
		if err != nil {
			return model.Job{}, fmt.Errorf("encode requirements: %w", err)
		}
		add("requirements", string(b))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Order != nil {
		add("sort_order", *patch.Order)
	}
	if patch.Archived != nil {
		add("archived", *patch.Archived)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}

	if len(sets) > 0 {
		res, err := s.db.ExecContext(ctx,
			`UPDATE jobs SET `+strings.Join(sets, ", ")+` WHERE id = ?`,
			append(args, id)...,
		)
		if err != nil {
			return model.Job{}, fmt.Errorf("update job: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return model.Job{}, ErrNotFound
		}
	}

	return s.GetJob(ctx, id)
}

// DeleteJob removes a job; deleting a missing id is a no-op.
func (s *Store) DeleteJob(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// ReorderJobs sets each listed job's display position to its index, all in
// one transaction so a failure leaves every position untouched.
func (s *Store) ReorderJobs(ctx context.Context, jobIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for i, id := range jobIDs {
		if _, err := tx.ExecContext(ctx, `UPDATE jobs SET sort_order = ? WHERE id = ?`, i, id); err != nil {
			return fmt.Errorf("reorder job %s: %w", id, err)
		}
	}

	committed = true
	return tx.Commit()
}
