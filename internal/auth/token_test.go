package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-accounts/internal/models"
)

func testUser() *models.User {
	return &models.User{ID: "7f1c", Email: "a@b.com", Type: models.UserTypeOwner}
}

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("super-secret", 24*time.Hour)

	tok, err := m.Issue(testUser())
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "7f1c", claims.ID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, models.UserTypeOwner, claims.Type)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestVerify_Expired(t *testing.T) {
	m := NewTokenManager("secret", 24*time.Hour)
	issued := time.Now().Add(-25 * time.Hour)
	m.now = func() time.Time { return issued }

	tok, err := m.Issue(testUser())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := NewTokenManager("right", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenManager("wrong", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingClaims(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	tok, err := m.Issue(&models.User{ID: "", Email: "a@b.com"})
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	claims := Claims{
		ID:    "1",
		Email: "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	_, err := NewTokenManager("k", time.Hour).Verify("not.a.jwt")
	assert.Error(t, err)
}
