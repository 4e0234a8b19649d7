package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"records-backend/internal/domain"
	"records-backend/internal/repository"
	"records-backend/internal/repository/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "nested", "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAdminRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewAdminRepository(openDB(t))
	require.NoError(t, repo.Init(ctx))
	require.NoError(t, repo.Init(ctx), "init is idempotent")

	_, err := repo.GetByUsername(ctx, "admin")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	first := &domain.Admin{Username: "admin", PasswordHash: "hash-1"}
	require.NoError(t, repo.CreateIfAbsent(ctx, first))
	assert.NotZero(t, first.ID)

	second := &domain.Admin{Username: "admin", PasswordHash: "hash-2"}
	err = repo.CreateIfAbsent(ctx, second)
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	stored, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "hash-1", stored.PasswordHash, "existing row must not be replaced")
	assert.False(t, stored.CreatedAt.IsZero())

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStudentRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewStudentRepository(openDB(t))
	require.NoError(t, repo.Init(ctx))

	students, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)
	assert.NotNil(t, students)

	s := &domain.Student{
		Name:               "Ravi",
		FatherName:         "Mohan",
		EnrollNumber:       "E123",
		AadharNumber:       "1234-5678-9012",
		MobileNumber:       "9999999999",
		SubscriptionCharge: 500.5,
		StartDate:          "2024-01-15",
		Photo:              "photos/e123.jpg",
	}
	id, err := repo.Create(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, id, s.ID)

	_, err = repo.Create(ctx, &domain.Student{EnrollNumber: "E123"})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	_, err = repo.Create(ctx, &domain.Student{EnrollNumber: "E124", Name: "Sita"})
	require.NoError(t, err)

	students, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, *s, students[0])
	assert.Equal(t, "E124", students[1].EnrollNumber)

	deleted, err := repo.DeleteByEnrollNumber(ctx, "E123")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByEnrollNumber(ctx, "E123")
	require.NoError(t, err)
	assert.False(t, deleted)

	students, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "E124", students[0].EnrollNumber)
}

func TestCandidateRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewCandidateRepository(openDB(t))
	require.NoError(t, repo.Init(ctx))

	c := &domain.Candidate{
		Name:         "Asha",
		FatherName:   "Ram",
		Village:      "Rampur",
		EnrollNumber: "C1",
		SelectedIn:   "State Police",
		Photo:        "photos/c1.jpg",
	}
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Candidate{EnrollNumber: "C1"})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	candidates, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, *c, candidates[0])

	deleted, err := repo.DeleteByEnrollNumber(ctx, "C1")
	require.NoError(t, err)
	assert.True(t, deleted)

	candidates, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFacilityChargeRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewFacilityChargeRepository(openDB(t))
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	fc, err := repo.Upsert(ctx, 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, fc.Charge)

	_, err = repo.Upsert(ctx, 300.75)
	require.NoError(t, err)

	fc, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300.75, fc.Charge)
	assert.False(t, fc.UpdatedAt.IsZero())
}
