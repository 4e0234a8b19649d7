package repository

import (
	"context"

	"records-backend/internal/domain"
)

// AdminRepository stores the admin principal.
type AdminRepository interface {
	Init(ctx context.Context) error
	// CreateIfAbsent inserts the admin unless the username is taken, in which
	// case it returns ErrAlreadyExists and leaves the stored row untouched.
	CreateIfAbsent(ctx context.Context, admin *domain.Admin) error
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Count(ctx context.Context) (int, error)
}
