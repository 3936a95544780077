package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vivo1806/Talent-Flow/pkg"
)

// schemaVersion is the latest schema; the current version is tracked in
// SQLite's user_version pragma so each upgrade runs exactly once.
const schemaVersion = 3

// Migrate brings the database up to the latest schema version. Each step
// runs in its own transaction and is safe to re-run against data that
// already carries the fields it backfills.
func (s *Store) Migrate(ctx context.Context) error {
	for {
		var v int
		if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		if v >= schemaVersion {
			return nil
		}
		if err := s.migrateStep(ctx, v+1); err != nil {
			return fmt.Errorf("migrate to v%d: %w", v+1, err)
		}
	}
}

func (s *Store) migrateStep(ctx context.Context, target int) error {
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

	switch target {
	case 1:
		err = migrateV1(ctx, tx)
	case 2:
		err = migrateV2(ctx, tx)
	case 3:
		err = migrateV3(ctx, tx)
	default:
		err = fmt.Errorf("unknown schema version %d", target)
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", target)); err != nil {
		return err
	}

	committed = true
	return tx.Commit()
}

// migrateV1 creates the four collections with their minimal indexes.
func migrateV1(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	location TEXT,
	type TEXT,
	salary TEXT,
	description TEXT,
	requirements TEXT,
	posted_at TEXT,
	status TEXT
);
CREATE INDEX IF NOT EXISTS idx_jobs_title ON jobs(title);
CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs(company);
CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);
CREATE INDEX IF NOT EXISTS idx_jobs_posted_at ON jobs(posted_at);

CREATE TABLE IF NOT EXISTS applications (
	id TEXT PRIMARY KEY,
	job_id TEXT NOT NULL,
	candidate_name TEXT,
	email TEXT,
	phone TEXT,
	resume TEXT,
	cover_letter TEXT,
	status TEXT,
	applied_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id);
CREATE INDEX IF NOT EXISTS idx_applications_status ON applications(status);
CREATE INDEX IF NOT EXISTS idx_applications_applied_at ON applications(applied_at);

CREATE TABLE IF NOT EXISTS candidates (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT,
	phone TEXT,
	position TEXT,
	experience INTEGER,
	skills TEXT,
	resume TEXT,
	status TEXT,
	applied_at TEXT,
	location TEXT,
	expected_salary TEXT
);
CREATE INDEX IF NOT EXISTS idx_candidates_name ON candidates(name);
CREATE INDEX IF NOT EXISTS idx_candidates_email ON candidates(email);
CREATE INDEX IF NOT EXISTS idx_candidates_status ON candidates(status);
CREATE INDEX IF NOT EXISTS idx_candidates_applied_at ON candidates(applied_at);

CREATE TABLE IF NOT EXISTS assessments (
	id TEXT PRIMARY KEY,
	job_id TEXT NOT NULL,
	title TEXT,
	description TEXT,
	duration INTEGER,
	passing_score INTEGER,
	questions TEXT,
	created_at TEXT,
	updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_assessments_job_id ON assessments(job_id);
CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);
`)
	return err
}

// migrateV2 adds the order index to jobs and backfills every existing job
// with its insertion position.
func migrateV2(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `ALTER TABLE jobs ADD COLUMN sort_order INTEGER`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_jobs_sort_order ON jobs(sort_order)`); err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx, `SELECT id FROM jobs WHERE sort_order IS NULL ORDER BY rowid`)
	if err != nil {
		return err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, `UPDATE jobs SET sort_order = ? WHERE id = ?`, i, id); err != nil {
			return err
		}
	}
	return nil
}

// migrateV3 adds archived and slug to jobs and backfills archived=false plus
// a deterministic slug for any job lacking one.
func migrateV3(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `ALTER TABLE jobs ADD COLUMN archived INTEGER`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `ALTER TABLE jobs ADD COLUMN slug TEXT`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_jobs_archived ON jobs(archived)`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_jobs_slug ON jobs(slug)`); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE jobs SET archived = 0 WHERE archived IS NULL`); err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx, `SELECT id, title FROM jobs WHERE slug IS NULL OR slug = ''`)
	if err != nil {
		return err
	}
	type jobRef struct{ id, title string }
	var refs []jobRef
	for rows.Next() {
		var r jobRef
		if err := rows.Scan(&r.id, &r.title); err != nil {
			rows.Close()
			return err
		}
		refs = append(refs, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for _, r := range refs {
		if _, err := tx.ExecContext(ctx, `UPDATE jobs SET slug = ? WHERE id = ?`, pkg.JobSlug(r.title, r.id), r.id); err != nil {
			return err
		}
	}
	return nil
}
