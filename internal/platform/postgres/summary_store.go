package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// PostgresUserSummaryStore implements store.UserSummaryStore.
type PostgresUserSummaryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserSummaryStore creates a summary store on db.
func NewPostgresUserSummaryStore(db store.DBTX, logger *slog.Logger) *PostgresUserSummaryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresUserSummaryStore{
		db:     db,
		logger: defaultLogger(logger, "summary_store"),
	}
}

var _ store.UserSummaryStore = (*PostgresUserSummaryStore)(nil)

const summarySelect = `
	SELECT answers_level_1, answers_level_2, answers_level_3, answers_level_4,
		answers_level_5, answers_level_6, answers_level_7,
		correct_level_1, correct_level_2, correct_level_3, correct_level_4,
		correct_level_5, correct_level_6, correct_level_7,
		consecutive_login_days, last_login_at, updated_at
	FROM user_summaries
	WHERE user_id = $1`

// WithTx implements store.UserSummaryStore.WithTx
func (s *PostgresUserSummaryStore) WithTx(tx *sql.Tx) store.UserSummaryStore {
	return &PostgresUserSummaryStore{db: tx, logger: s.logger}
}

// Create implements store.UserSummaryStore.Create. Counters start at the
// column defaults.
func (s *PostgresUserSummaryStore) Create(ctx context.Context, summary *domain.UserSummary) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO user_summaries (user_id)
		VALUES ($1)
		RETURNING updated_at
	`, summary.UserID).Scan(&summary.UpdatedAt)
	if err != nil {
		log.Error("failed to create user summary",
			slog.String("error", err.Error()),
			slog.String("user_id", summary.UserID.String()))
		return MapError(err)
	}
	return nil
}

// Get implements store.UserSummaryStore.Get
func (s *PostgresUserSummaryStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error) {
	return s.get(ctx, summarySelect, userID)
}

// GetForUpdate implements store.UserSummaryStore.GetForUpdate
func (s *PostgresUserSummaryStore) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error) {
	return s.get(ctx, summarySelect+` FOR UPDATE`, userID)
}

func (s *PostgresUserSummaryStore) get(ctx context.Context, query string, userID uuid.UUID) (*domain.UserSummary, error) {
	summary := domain.UserSummary{UserID: userID}
	a, c := &summary.Answers, &summary.CorrectAnswers
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&a[0], &a[1], &a[2], &a[3], &a[4], &a[5], &a[6],
		&c[0], &c[1], &c[2], &c[3], &c[4], &c[5], &c[6],
		&summary.ConsecutiveLoginDays,
		&summary.LastLoginAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, mapEntityError(err, store.ErrSummaryNotFound)
	}
	return &summary, nil
}

// Update implements store.UserSummaryStore.Update
func (s *PostgresUserSummaryStore) Update(ctx context.Context, summary *domain.UserSummary) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	args := make([]any, 0, 2*domain.LevelCount+3)
	for _, v := range summary.Answers {
		args = append(args, v)
	}
	for _, v := range summary.CorrectAnswers {
		args = append(args, v)
	}
	args = append(args, summary.ConsecutiveLoginDays, summary.LastLoginAt, summary.UserID)

	err := s.db.QueryRowContext(ctx, `
		UPDATE user_summaries
		SET answers_level_1 = $1, answers_level_2 = $2, answers_level_3 = $3,
			answers_level_4 = $4, answers_level_5 = $5, answers_level_6 = $6,
			answers_level_7 = $7,
			correct_level_1 = $8, correct_level_2 = $9, correct_level_3 = $10,
			correct_level_4 = $11, correct_level_5 = $12, correct_level_6 = $13,
			correct_level_7 = $14,
			consecutive_login_days = $15, last_login_at = $16, updated_at = now()
		WHERE user_id = $17
		RETURNING updated_at
	`, args...).Scan(&summary.UpdatedAt)
	if err != nil {
		mapped := mapEntityError(err, store.ErrSummaryNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to update user summary",
				slog.String("error", err.Error()),
				slog.String("user_id", summary.UserID.String()))
		}
		return mapped
	}
	return nil
}
