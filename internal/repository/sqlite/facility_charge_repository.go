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

// the CHECK pins the table to a single row
const createFacilityChargeTable = `
CREATE TABLE IF NOT EXISTS facility_charge (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	charge REAL NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type FacilityChargeRepository struct {
	db *sql.DB
}

func NewFacilityChargeRepository(db *sql.DB) repository.FacilityChargeRepository {
	return &FacilityChargeRepository{db: db}
}

func (r *FacilityChargeRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createFacilityChargeTable); err != nil {
		return fmt.Errorf("create facility_charge table: %w", err)
	}
	return nil
}

func (r *FacilityChargeRepository) Get(ctx context.Context) (*domain.FacilityCharge, error) {
	var fc domain.FacilityCharge
	err := r.db.QueryRowContext(ctx, `SELECT charge, updated_at FROM facility_charge WHERE id = 1`).
		Scan(&fc.Charge, &fc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("facility charge: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan facility charge: %w", err)
	}
	return &fc, nil
}

func (r *FacilityChargeRepository) Upsert(ctx context.Context, charge float64) (*domain.FacilityCharge, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
INSERT INTO facility_charge (id, charge, updated_at)
VALUES (1, ?, ?)
ON CONFLICT(id) DO UPDATE SET charge=excluded.charge, updated_at=excluded.updated_at`,
		charge,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert facility charge: %w", err)
	}
	return &domain.FacilityCharge{Charge: charge, UpdatedAt: now}, nil
}
