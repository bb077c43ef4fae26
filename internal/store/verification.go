package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/oblivion-api/internal/domain"
)

// VerificationStore persists pending email verification codes, at most one per email.
type VerificationStore interface {
	// Upsert stores v, replacing any code already pending for the email.
	Upsert(ctx context.Context, v *domain.Verification) error

	// Get returns ErrVerificationNotFound if no code is pending for email.
	Get(ctx context.Context, email string) (*domain.Verification, error)

	// Delete returns ErrVerificationNotFound if no code is pending for email.
	Delete(ctx context.Context, email string) error

	WithTx(tx *sql.Tx) VerificationStore
}
