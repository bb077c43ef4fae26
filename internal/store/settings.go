package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
)

// UserSettingsStore persists each user's interval table.
type UserSettingsStore interface {
	// Create inserts the settings row for a new user.
	Create(ctx context.Context, settings *domain.UserSettings) error

	// Get returns ErrSettingsNotFound when the user has no settings row.
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)

	// Update writes all seven intervals in one statement.
	Update(ctx context.Context, settings *domain.UserSettings) error

	WithTx(tx *sql.Tx) UserSettingsStore
}
