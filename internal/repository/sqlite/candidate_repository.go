package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"records-backend/internal/domain"
	"records-backend/internal/repository"
)

const createCandidatesTable = `
CREATE TABLE IF NOT EXISTS candidates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL DEFAULT '',
	father_name TEXT NOT NULL DEFAULT '',
	village TEXT NOT NULL DEFAULT '',
	enroll_number TEXT NOT NULL UNIQUE,
	selected_in TEXT NOT NULL DEFAULT '',
	photo TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
`

type CandidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) repository.CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCandidatesTable); err != nil {
		return fmt.Errorf("create candidates table: %w", err)
	}
	return nil
}

func (r *CandidateRepository) Create(ctx context.Context, candidate *domain.Candidate) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO candidates (name, father_name, village, enroll_number, selected_in, photo, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		candidate.Name,
		candidate.FatherName,
		candidate.Village,
		candidate.EnrollNumber,
		candidate.SelectedIn,
		candidate.Photo,
		time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("candidate %q: %w", candidate.EnrollNumber, repository.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("insert candidate: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("candidate last insert id: %w", err)
	}
	candidate.ID = id
	return id, nil
}

func (r *CandidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, father_name, village, enroll_number, selected_in, photo
FROM candidates
ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.FatherName, &c.Village, &c.EnrollNumber, &c.SelectedIn, &c.Photo); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

func (r *CandidateRepository) DeleteByEnrollNumber(ctx context.Context, enrollNumber string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE enroll_number=?`, enrollNumber)
	if err != nil {
		return false, fmt.Errorf("delete candidate: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("candidate delete rows affected: %w", err)
	}
	return aff > 0, nil
}
