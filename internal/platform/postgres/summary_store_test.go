package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryStoreGetForUpdate(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresUserSummaryStore(db, nil)
	userID := uuid.New()
	now := time.Now().UTC()

	columns := make([]string, 17)
	for i := range columns {
		columns[i] = "c"
	}
	mock.ExpectQuery(q("FROM user_summaries WHERE user_id = $1 FOR UPDATE")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			1, 2, 3, 4, 5, 6, 7,
			1, 1, 1, 1, 1, 1, 1,
			3, nil, now,
		))

	summary, err := s.GetForUpdate(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, [domain.LevelCount]int{1, 2, 3, 4, 5, 6, 7}, summary.Answers)
	assert.Equal(t, 3, summary.ConsecutiveLoginDays)
	assert.Nil(t, summary.LastLoginAt)
}

func TestSummaryStoreUpdate(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresUserSummaryStore(db, nil)
	summary := domain.NewUserSummary(uuid.New())
	require.NoError(t, summary.RecordAnswer(3, true))

	mock.ExpectQuery(q("UPDATE user_summaries")).
		WithArgs(0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, sqlmock.AnyArg(), summary.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	require.NoError(t, s.Update(context.Background(), summary))
}
