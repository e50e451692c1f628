package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	token, err := GenerateJWT(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseJWTRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 42,
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = ParseJWT(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	token, err := GenerateJWT(42)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "some-other-secret")
	_, err = ParseJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	for _, tok := range []string{"", "not.a.jwt", "aaaa"} {
		_, err := ParseJWT(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestParseJWTRejectsMissingUserClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := noUser.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = ParseJWT(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
