package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-auth-service")
	auth := NewAuthService(newTestDB(t))

	user, token, err := auth.Register("alice@example.com", "password123", "Alice Smith")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)

	loggedIn, token, err := auth.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterLowercasesEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-auth-service")
	auth := NewAuthService(newTestDB(t))

	user, _, err := auth.Register("Alice@Example.COM", "password123", "Alice Smith")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	// login works regardless of the casing presented
	_, _, err = auth.Login("ALICE@example.com", "password123")
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-auth-service")
	auth := NewAuthService(newTestDB(t))

	_, _, err := auth.Register("A@x.com", "password123", "First User")
	require.NoError(t, err)

	_, _, err = auth.Register("a@x.com", "password456", "Second User")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-auth-service")
	auth := NewAuthService(newTestDB(t))

	cases := []struct {
		name                      string
		email, password, fullName string
	}{
		{"bad email", "not-an-email", "password123", "A B"},
		{"email with spaces", "a b@x.com", "password123", "A B"},
		{"short password", "a@x.com", "12345", "A B"},
		{"empty full name", "a@x.com", "password123", "  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := auth.Register(tc.email, tc.password, tc.fullName)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestLoginFailures(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-auth-service")
	auth := NewAuthService(newTestDB(t))

	_, _, err := auth.Register("alice@example.com", "password123", "Alice Smith")
	require.NoError(t, err)

	_, _, err = auth.Login("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown account reads the same as a wrong password
	_, _, err = auth.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
