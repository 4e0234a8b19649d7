package service_test

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"records-backend/internal/repository"
	"records-backend/internal/repository/sqlite"
)

type repos struct {
	admins     repository.AdminRepository
	students   repository.StudentRepository
	candidates repository.CandidateRepository
	charges    repository.FacilityChargeRepository
}

func newRepos(t *testing.T) repos {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r := repos{
		admins:     sqlite.NewAdminRepository(db),
		students:   sqlite.NewStudentRepository(db),
		candidates: sqlite.NewCandidateRepository(db),
		charges:    sqlite.NewFacilityChargeRepository(db),
	}
	require.NoError(t, r.admins.Init(ctx))
	require.NoError(t, r.students.Init(ctx))
	require.NoError(t, r.candidates.Init(ctx))
	require.NoError(t, r.charges.Init(ctx))
	return r
}

func mustParseID(t *testing.T, s string) int64 {
	t.Helper()
	id, err := strconv.ParseInt(s, 10, 64)
	require.NoError(t, err)
	return id
}
