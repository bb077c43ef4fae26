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

// PostgresUserSettingsStore implements store.UserSettingsStore with one
// column per level.
type PostgresUserSettingsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserSettingsStore creates a settings store on db.
func NewPostgresUserSettingsStore(db store.DBTX, logger *slog.Logger) *PostgresUserSettingsStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresUserSettingsStore{
		db:     db,
		logger: defaultLogger(logger, "settings_store"),
	}
}

var _ store.UserSettingsStore = (*PostgresUserSettingsStore)(nil)

// WithTx implements store.UserSettingsStore.WithTx
func (s *PostgresUserSettingsStore) WithTx(tx *sql.Tx) store.UserSettingsStore {
	return &PostgresUserSettingsStore{db: tx, logger: s.logger}
}

func intervalArgs(settings *domain.UserSettings) []any {
	args := make([]any, 0, domain.LevelCount)
	for _, v := range settings.Intervals {
		args = append(args, v)
	}
	return args
}

// Create implements store.UserSettingsStore.Create
func (s *PostgresUserSettingsStore) Create(ctx context.Context, settings *domain.UserSettings) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	args := append([]any{settings.UserID}, intervalArgs(settings)...)
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO user_settings (
			user_id,
			interval_level_1, interval_level_2, interval_level_3, interval_level_4,
			interval_level_5, interval_level_6, interval_level_7
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING updated_at
	`, args...).Scan(&settings.UpdatedAt)
	if err != nil {
		log.Error("failed to create user settings",
			slog.String("error", err.Error()),
			slog.String("user_id", settings.UserID.String()))
		return MapError(err)
	}
	return nil
}

// Get implements store.UserSettingsStore.Get
func (s *PostgresUserSettingsStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	settings := domain.UserSettings{UserID: userID}
	iv := &settings.Intervals
	err := s.db.QueryRowContext(ctx, `
		SELECT interval_level_1, interval_level_2, interval_level_3, interval_level_4,
			interval_level_5, interval_level_6, interval_level_7, updated_at
		FROM user_settings
		WHERE user_id = $1
	`, userID).Scan(&iv[0], &iv[1], &iv[2], &iv[3], &iv[4], &iv[5], &iv[6], &settings.UpdatedAt)
	if err != nil {
		return nil, mapEntityError(err, store.ErrSettingsNotFound)
	}
	return &settings, nil
}

// Update implements store.UserSettingsStore.Update. All seven intervals are
// written by one statement.
func (s *PostgresUserSettingsStore) Update(ctx context.Context, settings *domain.UserSettings) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	args := append(intervalArgs(settings), settings.UserID)
	err := s.db.QueryRowContext(ctx, `
		UPDATE user_settings
		SET interval_level_1 = $1, interval_level_2 = $2, interval_level_3 = $3,
			interval_level_4 = $4, interval_level_5 = $5, interval_level_6 = $6,
			interval_level_7 = $7, updated_at = now()
		WHERE user_id = $8
		RETURNING updated_at
	`, args...).Scan(&settings.UpdatedAt)
	if err != nil {
		mapped := mapEntityError(err, store.ErrSettingsNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to update user settings",
				slog.String("error", err.Error()),
				slog.String("user_id", settings.UserID.String()))
		}
		return mapped
	}

	log.Info("user settings updated", slog.String("user_id", settings.UserID.String()))
	return nil
}
