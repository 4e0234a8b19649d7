package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"records-backend/internal/domain"
	"records-backend/internal/repository"
)

const createAdminsTable = `
CREATE TABLE IF NOT EXISTS admins (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type AdminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAdminsTable); err != nil {
		return fmt.Errorf("create admins table: %w", err)
	}
	return nil
}

func (r *AdminRepository) CreateIfAbsent(ctx context.Context, admin *domain.Admin) error {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO admins (username, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(username) DO NOTHING`,
		admin.Username,
		admin.PasswordHash,
		now,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("admin %q: %w", admin.Username, repository.ErrAlreadyExists)
		}
		return fmt.Errorf("insert admin: %w", err)
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("admin rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("admin %q: %w", admin.Username, repository.ErrAlreadyExists)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("admin last insert id: %w", err)
	}
	admin.ID = id
	admin.CreatedAt = now
	admin.UpdatedAt = now
	return nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, password_hash, created_at, updated_at
FROM admins
WHERE username = ?`,
		username,
	)

	var admin domain.Admin
	if err := row.Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin %q: %w", username, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}
