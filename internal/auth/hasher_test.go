package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"records-backend/internal/auth"
)

func TestHasher_HashAndVerify(t *testing.T) {
	hasher := auth.NewHasher(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{name: "default admin password", password: "admin123"},
		{name: "unicode", password: "pässwörd-✓"},
		{name: "long", password: "a-rather-long-password-with-many-characters-0123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, hasher.Verify(tt.password, hash))
			assert.False(t, hasher.Verify(tt.password+"x", hash))
		})
	}
}

func TestHasher_SaltsEachHash(t *testing.T) {
	hasher := auth.NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("admin123")
	require.NoError(t, err)
	second, err := hasher.Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("admin123", first))
	assert.True(t, hasher.Verify("admin123", second))
}

func TestHasher_VerifyMalformedHash(t *testing.T) {
	hasher := auth.NewHasher(bcrypt.MinCost)

	assert.False(t, hasher.Verify("admin123", ""))
	assert.False(t, hasher.Verify("admin123", "invalidhash"))
	assert.False(t, hasher.Verify("admin123", "$2a$10$short"))
}

func TestHasher_EmptyPassword(t *testing.T) {
	hasher := auth.NewHasher(bcrypt.MinCost)

	_, err := hasher.Hash("")
	assert.ErrorIs(t, err, auth.ErrEmptyPassword)
}

func TestNewHasher_OutOfRangeCostFallsBackToDefault(t *testing.T) {
	hasher := auth.NewHasher(bcrypt.MaxCost + 1)

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
