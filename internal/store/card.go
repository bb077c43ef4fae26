package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card and fills in its timestamps.
	// Returns ErrInvalidEntity when the deck or user does not exist.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// GetForUpdate is GetByID with a row lock held until the surrounding
	// transaction ends. It must be called on a store bound with WithTx.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ListByDeck returns the cards of a deck ordered by creation time.
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)

	// ListDue returns the cards of a deck whose next answer date lies strictly
	// before now, earliest first. Cards without a date are never due.
	ListDue(ctx context.Context, deckID uuid.UUID, now time.Time) ([]*domain.Card, error)

	// UpdateContent writes sentence, meaning, image path and etymology.
	UpdateContent(ctx context.Context, card *domain.Card) error

	// UpdateSchedule writes level, retention state and both answer dates.
	UpdateSchedule(ctx context.Context, card *domain.Card) error

	// Delete returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) CardStore
}
