package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vivo1806/Talent-Flow/pkg/model"
)

const assessmentColumns = `id, job_id, title, description, duration, passing_score, questions, created_at, updated_at`

func (s *Store) CountAssessments(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	return n, nil
}

func (s *Store) ListAssessments(ctx context.Context) ([]model.Assessment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+assessmentColumns+` FROM assessments ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	out := make([]model.Assessment, 0)
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetAssessment(ctx context.Context, id string) (model.Assessment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+assessmentColumns+` FROM assessments WHERE id = ?`, id)
	a, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Assessment{}, ErrNotFound
	}
	if err != nil {
		return model.Assessment{}, fmt.Errorf("get assessment: %w", err)
	}
	return a, nil
}

// GetAssessmentByJob returns the assessment linked to a job, or ErrNotFound.
func (s *Store) GetAssessmentByJob(ctx context.Context, jobID string) (model.Assessment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+assessmentColumns+` FROM assessments WHERE job_id = ?`, jobID)
	a, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Assessment{}, ErrNotFound
	}
	if err != nil {
		return model.Assessment{}, fmt.Errorf("get assessment by job: %w", err)
	}
	return a, nil
}

func (s *Store) CreateAssessment(ctx context.Context, a model.Assessment) error {
	if err := insertAssessment(ctx, s.db, a); err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// BulkInsertAssessments inserts all assessments in one transaction.
func (s *Store) BulkInsertAssessments(ctx context.Context, assessments []model.Assessment) error {
	if len(assessments) == 0 {
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

	for i, a := range assessments {
		if err := insertAssessment(ctx, tx, a); err != nil {
			return fmt.Errorf("bulk insert assessment %d: %w", i, err)
		}
	}

	committed = true
	return tx.Commit()
}

// UpdateAssessment merges a partial patch, refreshes updatedAt and returns
// the updated assessment.
func (s *Store) UpdateAssessment(ctx context.Context, id string, patch model.AssessmentPatch, now time.Time) (model.Assessment, error) {
	sets := []string{"updated_at = ?"}
	args := []interface{}{formatTime(now)}

	add := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Duration != nil {
		add("duration", *patch.Duration)
	}
	if patch.PassingScore != nil {
		add("passing_score", *patch.PassingScore)
	}
	if patch.Questions != nil {
		b, err := json.Marshal(*patch.Questions)
		if err != nil {
			return model.Assessment{}, fmt.Errorf("encode questions: %w", err)
		}
		add("questions", string(b))
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE assessments SET `+strings.Join(sets, ", ")+` WHERE id = ?`,
		append(args, id)...,
	)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("update assessment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Assessment{}, ErrNotFound
	}

	return s.GetAssessment(ctx, id)
}

// DeleteAssessment removes an assessment; deleting a missing id is a no-op.
func (s *Store) DeleteAssessment(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	return nil
}

func insertAssessment(ctx context.Context, ex interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
}, a model.Assessment) error {
	questions, err := json.Marshal(a.Questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	_, err = ex.ExecContext(ctx, `
INSERT INTO assessments (`+assessmentColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.JobID, a.Title, a.Description, a.Duration, a.PassingScore,
		string(questions), formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
	)
	return err
}

func scanAssessment(row rowScanner) (model.Assessment, error) {
	var (
		a         model.Assessment
		questions sql.NullString
		createdAt string
		updatedAt string
	)
	err := row.Scan(&a.ID, &a.JobID, &a.Title, &a.Description, &a.Duration,
		&a.PassingScore, &questions, &createdAt, &updatedAt)
	if err != nil {
		return model.Assessment{}, err
	}
	if questions.Valid && questions.String != "" {
		if err := json.Unmarshal([]byte(questions.String), &a.Questions); err != nil {
			return model.Assessment{}, fmt.Errorf("decode questions: %w", err)
		}
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Assessment{}, fmt.Errorf("parse created_at: %w", err)
	}
	if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Assessment{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return a, nil
}
