package store

import (
	"context"
	"fmt"

	"github.com/vivo1806/Talent-Flow/pkg/model"
)

const applicationColumns = `id, job_id, candidate_name, email, phone, resume, cover_letter, status, applied_at`

func (s *Store) CreateApplication(ctx context.Context, app model.Application) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO applications (`+applicationColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.ID, app.JobID, app.CandidateName, app.Email, app.Phone,
		app.Resume, app.CoverLetter, app.Status, formatTime(app.AppliedAt),
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// ListApplicationsByJob returns all applications submitted for a job.
func (s *Store) ListApplicationsByJob(ctx context.Context, jobID string) ([]model.Application, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = ? ORDER BY applied_at ASC`, jobID)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	apps := make([]model.Application, 0)
	for rows.Next() {
		var (
			app       model.Application
			appliedAt string
		)
		if err := rows.Scan(&app.ID, &app.JobID, &app.CandidateName, &app.Email,
			&app.Phone, &app.Resume, &app.CoverLetter, &app.Status, &appliedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		t, err := parseTime(appliedAt)
		if err != nil {
			return nil, fmt.Errorf("parse applied_at: %w", err)
		}
		app.AppliedAt = t
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
