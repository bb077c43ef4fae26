package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser(" alice ", "  Alice@Example.COM ", "correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.IsActive, "new users wait for verification")
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "bob", "bob@example.com", "twelve chars", nil},
		{"empty username", "", "bob@example.com", "twelve chars", ErrEmptyUsername},
		{"empty email", "bob", "", "twelve chars", ErrEmptyEmail},
		{"malformed email", "bob", "bob-at-example", "twelve chars", ErrInvalidEmail},
		{"short password", "bob", "bob@example.com", "short", ErrPasswordTooShort},
		{"long password", "bob", "bob@example.com", strings.Repeat("p", MaxPasswordLength+1), ErrPasswordTooLong},
		{"no password at all", "bob", "bob@example.com", "", ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tt.username, tt.email, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserValidateWithHashOnly(t *testing.T) {
	t.Parallel()

	stored := &User{ID: uuid.New(), Username: "c", Email: "c@example.com", HashedPassword: "$2a$10$hash"}
	assert.NoError(t, stored.Validate())
}
