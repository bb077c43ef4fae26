package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
)

// UserSummaryStore persists per-user answer counters and the login streak.
type UserSummaryStore interface {
	// Create inserts the summary row for a new user.
	Create(ctx context.Context, summary *domain.UserSummary) error

	// Get returns ErrSummaryNotFound when the user has no summary row.
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error)

	// Update writes counters and login fields.
	Update(ctx context.Context, summary *domain.UserSummary) error

	WithTx(tx *sql.Tx) UserSummaryStore
}
