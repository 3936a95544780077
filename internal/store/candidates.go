package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vivo1806/Talent-Flow/pkg/model"
)

// The candidates collection is part of the v1 schema but the live candidate
// set is served from memory by the simulated API; this table only persists
// snapshots of the fixture for tooling that wants a durable copy.

const candidateColumns = `id, name, email, phone, position, experience, skills, resume, status, applied_at, location, expected_salary`

func (s *Store) CountCandidates(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count candidates: %w", err)
	}
	return n, nil
}

func (s *Store) GetCandidate(ctx context.Context, id string) (model.Candidate, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = ?`, id)
	cand, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Candidate{}, ErrNotFound
	}
	if err != nil {
		return model.Candidate{}, fmt.Errorf("get candidate: %w", err)
	}
	return cand, nil
}

// ListCandidatesByStatus runs an indexed equality scan over the status field.
func (s *Store) ListCandidatesByStatus(ctx context.Context, status model.CandidateStatus) ([]model.Candidate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE status = ? ORDER BY applied_at ASC`, status)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	out := make([]model.Candidate, 0)
	for rows.Next() {
		cand, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, cand)
	}
	return out, rows.Err()
}

// BulkInsertCandidates inserts all candidates in one transaction.
func (s *Store) BulkInsertCandidates(ctx context.Context, candidates []model.Candidate) error {
	if len(candidates) == 0 {
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

	for i, cand := range candidates {
		skills, err := json.Marshal(cand.Skills)
		if err != nil {
			return fmt.Errorf("encode skills: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO candidates (`+candidateColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			cand.ID, cand.Name, cand.Email, cand.Phone, cand.Position,
			cand.Experience, string(skills), cand.Resume, cand.Status,
			formatTime(cand.AppliedAt), cand.Location, cand.ExpectedSalary,
		)
		if err != nil {
			return fmt.Errorf("bulk insert candidate %d: %w", i, err)
		}
	}

	committed = true
	return tx.Commit()
}

func scanCandidate(row rowScanner) (model.Candidate, error) {
	var (
		cand      model.Candidate
		skills    sql.NullString
		appliedAt string
	)
	err := row.Scan(&cand.ID, &cand.Name, &cand.Email, &cand.Phone,
		&cand.Position, &cand.Experience, &skills, &cand.Resume,
		&cand.Status, &appliedAt, &cand.Location, &cand.ExpectedSalary)
	if err != nil {
		return model.Candidate{}, err
	}
	if skills.Valid && skills.String != "" {
		if err := json.Unmarshal([]byte(skills.String), &cand.Skills); err != nil {
			return model.Candidate{}, fmt.Errorf("decode skills: %w", err)
		}
	}
	t, err := parseTime(appliedAt)
	if err != nil {
		return model.Candidate{}, fmt.Errorf("parse applied_at: %w", err)
	}
	cand.AppliedAt = t
	return cand, nil
}
