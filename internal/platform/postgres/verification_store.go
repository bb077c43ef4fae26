package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// PostgresVerificationStore implements store.VerificationStore.
type PostgresVerificationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVerificationStore creates a verification store on db.
func NewPostgresVerificationStore(db store.DBTX, logger *slog.Logger) *PostgresVerificationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresVerificationStore{
		db:     db,
		logger: defaultLogger(logger, "verification_store"),
	}
}

var _ store.VerificationStore = (*PostgresVerificationStore)(nil)

// WithTx implements store.VerificationStore.WithTx
func (s *PostgresVerificationStore) WithTx(tx *sql.Tx) store.VerificationStore {
	return &PostgresVerificationStore{db: tx, logger: s.logger}
}

// Upsert implements store.VerificationStore.Upsert
func (s *PostgresVerificationStore) Upsert(ctx context.Context, v *domain.Verification) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO verifications (email, code)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE
		SET code = EXCLUDED.code, created_at = now()
		RETURNING created_at
	`, v.Email, v.Code).Scan(&v.CreatedAt)
	if err != nil {
		// never log the code itself
		log.Error("failed to store verification code", slog.String("error", err.Error()))
		return MapError(err)
	}
	return nil
}

// Get implements store.VerificationStore.Get
func (s *PostgresVerificationStore) Get(ctx context.Context, email string) (*domain.Verification, error) {
	var v domain.Verification
	err := s.db.QueryRowContext(ctx, `
		SELECT email, code, created_at
		FROM verifications
		WHERE email = $1
	`, domain.NormalizeEmail(email)).Scan(&v.Email, &v.Code, &v.CreatedAt)
	if err != nil {
		return nil, mapEntityError(err, store.ErrVerificationNotFound)
	}
	return &v, nil
}

// Delete implements store.VerificationStore.Delete
func (s *PostgresVerificationStore) Delete(ctx context.Context, email string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM verifications WHERE email = $1`, domain.NormalizeEmail(email))
	if err != nil {
		log.Error("failed to delete verification", slog.String("error", err.Error()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrVerificationNotFound)
}
