package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsStoreGet(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresUserSettingsStore(db, nil)
	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(q("FROM user_settings WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"l1", "l2", "l3", "l4", "l5", "l6", "l7", "updated_at"}).
			AddRow(10, 20, 30, 40, 50, 60, 70, now))
	mock.ExpectQuery(q("FROM user_settings WHERE user_id = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"l1"}))

	settings, err := s.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, [domain.LevelCount]int64{10, 20, 30, 40, 50, 60, 70}, settings.Intervals)
	assert.Equal(t, int64(70), settings.IntervalFor(9))

	_, err = s.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrSettingsNotFound)
}

func TestSettingsStoreUpdateWritesAllLevels(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	s := NewPostgresUserSettingsStore(db, nil)
	settings := domain.NewUserSettings(uuid.New())
	settings.Intervals[6] = 999

	d := domain.DefaultIntervals
	mock.ExpectQuery(q("UPDATE user_settings SET interval_level_1 = $1")).
		WithArgs(d[0], d[1], d[2], d[3], d[4], d[5], int64(999), settings.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	require.NoError(t, s.Update(context.Background(), settings))
}
