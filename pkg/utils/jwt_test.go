package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTokenRoundTrip(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tm := NewTokenManager("test-secret", 30*24*time.Hour).WithClock(func() time.Time { return issued })
	id := uuid.New()

	token, err := tm.CreateToken(id, "a@x.com", "seller")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "seller", claims.UserType)
	assert.Equal(t, issued, claims.IssuedAt.Time.UTC())
	assert.Equal(t, 30*24*time.Hour, claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issued
	tm := NewTokenManager("test-secret", time.Hour).WithClock(func() time.Time { return now })

	token, err := tm.CreateToken(uuid.New(), "a@x.com", "buyer")
	require.NoError(t, err)

	now = issued.Add(2 * time.Hour)
	_, err = tm.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).CreateToken(uuid.New(), "a@x.com", "buyer")
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("one", time.Hour).ValidateToken("not-a-token")
	assert.Error(t, err)
}
