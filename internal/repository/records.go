package repository

import (
	"context"

	"records-backend/internal/domain"
)

// StudentRepository exposes persistence operations for students.
type StudentRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, student *domain.Student) (int64, error)
	List(ctx context.Context) ([]domain.Student, error)
	DeleteByEnrollNumber(ctx context.Context, enrollNumber string) (bool, error)
}

// CandidateRepository exposes persistence operations for candidates.
type CandidateRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, candidate *domain.Candidate) (int64, error)
	List(ctx context.Context) ([]domain.Candidate, error)
	DeleteByEnrollNumber(ctx context.Context, enrollNumber string) (bool, error)
}

// FacilityChargeRepository keeps the single facility charge row.
type FacilityChargeRepository interface {
	Init(ctx context.Context) error
	Get(ctx context.Context) (*domain.FacilityCharge, error)
	Upsert(ctx context.Context, charge float64) (*domain.FacilityCharge, error)
}
