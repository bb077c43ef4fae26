package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *domain.User {
	return &domain.User{
		ID:             uuid.New(),
		Username:       "dana",
		Email:          "dana@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
}

func TestUserStoreCreate(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresUserStore(db, nil)
	user := testUser()
	now := time.Now().UTC()

	mock.ExpectQuery(q("INSERT INTO users")).
		WithArgs(user.ID, "dana", "dana@example.com", user.HashedPassword, false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectQuery(q("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"})

	require.NoError(t, s.Create(context.Background(), user))
	assert.False(t, user.CreatedAt.IsZero())

	err := s.Create(context.Background(), testUser())
	assert.ErrorIs(t, err, store.ErrEmailExists)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUserStoreGetByEmail(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresUserStore(db, nil)
	user := testUser()
	now := time.Now().UTC()
	columns := []string{"id", "username", "email", "hashed_password", "is_active", "created_at", "updated_at"}

	mock.ExpectQuery(q("FROM users WHERE email = $1")).
		WithArgs("dana@example.com").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(user.ID.String(), user.Username, user.Email, user.HashedPassword, true, now, now))
	mock.ExpectQuery(q("FROM users WHERE email = $1")).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := s.GetByEmail(context.Background(), "  DANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.True(t, got.IsActive)

	_, err = s.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStoreActivate(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresUserStore(db, nil)

	mock.ExpectExec(q("UPDATE users SET is_active = TRUE")).
		WithArgs("dana@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("UPDATE users SET is_active = TRUE")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Activate(context.Background(), "Dana@Example.com"))
	assert.ErrorIs(t, s.Activate(context.Background(), "nobody@example.com"), store.ErrUserNotFound)
}
