package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
)

// UserStore persists accounts. Emails are stored normalized (trimmed, lower
// case) and are unique; lookups expect the same normalization.
//
// Lookups and Activate/Delete return ErrUserNotFound for unknown users.
type UserStore interface {
	// Create inserts user with its HashedPassword already set.
	// A taken email yields ErrEmailExists.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Activate flips is_active once the email has been verified.
	Activate(ctx context.Context, email string) error

	// Delete removes the user; decks, cards, settings and summary cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) UserStore
}
