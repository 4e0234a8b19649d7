package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"records-backend/internal/auth"
)

const testSecret = "test-signing-secret"

func newIssuer(t *testing.T, opts ...auth.TokenOption) *auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer(testSecret, time.Hour, opts...)
	require.NoError(t, err)
	return issuer
}

func TestNewTokenIssuer_RequiresSecret(t *testing.T) {
	_, err := auth.NewTokenIssuer("", time.Hour)
	assert.Error(t, err)
}

func TestTokenIssuer_IssueThenVerify(t *testing.T) {
	issuer := newIssuer(t)

	token, err := issuer.Issue("42")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)
}

func TestTokenIssuer_ExpiresAfterTTL(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	past := newIssuer(t, auth.WithClock(func() time.Time { return issued }))

	token, err := past.Issue("1")
	require.NoError(t, err)

	_, err = newIssuer(t).Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenIssuer_ValidUntilExpiry(t *testing.T) {
	now := time.Now()
	clock := now
	issuer := newIssuer(t, auth.WithClock(func() time.Time { return clock }))

	token, err := issuer.Issue("1")
	require.NoError(t, err)

	clock = now.Add(59 * time.Minute)
	_, err = issuer.Verify(token)
	assert.NoError(t, err)

	clock = now.Add(61 * time.Minute)
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestNewTokenIssuer_ZeroTTLUsesDefault(t *testing.T) {
	now := time.Now()
	clock := now
	issuer, err := auth.NewTokenIssuer(testSecret, 0, auth.WithClock(func() time.Time { return clock }))
	require.NoError(t, err)

	token, err := issuer.Issue("1")
	require.NoError(t, err)

	clock = now.Add(auth.DefaultTokenTTL - time.Minute)
	_, err = issuer.Verify(token)
	assert.NoError(t, err)

	clock = now.Add(auth.DefaultTokenTTL + time.Minute)
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenIssuer_RejectsTamperedToken(t *testing.T) {
	issuer := newIssuer(t)
	token, err := issuer.Issue("1")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	tamper := func(segment string) string {
		b := []byte(segment)
		i := len(b) / 2
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		return string(b)
	}

	cases := map[string]string{
		"header":    strings.Join([]string{tamper(parts[0]), parts[1], parts[2]}, "."),
		"payload":   strings.Join([]string{parts[0], tamper(parts[1]), parts[2]}, "."),
		"signature": strings.Join([]string{parts[0], parts[1], tamper(parts[2])}, "."),
	}
	for name, tampered := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Verify(tampered)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestTokenIssuer_RejectsForeignSecret(t *testing.T) {
	other, err := auth.NewTokenIssuer("another-secret", time.Hour)
	require.NoError(t, err)
	token, err := other.Issue("1")
	require.NoError(t, err)

	_, err = newIssuer(t).Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenIssuer_RejectsMalformedAndUnsignedTokens(t *testing.T) {
	issuer := newIssuer(t)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "1",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "two segments", token: "abc.def"},
		{name: "alg none", token: unsigned},
		{name: "missing expiry", token: noExpiry},
		{name: "missing subject", token: noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Verify(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestTokenIssuer_IssueRequiresSubject(t *testing.T) {
	_, err := newIssuer(t).Issue("")
	assert.Error(t, err)
}
