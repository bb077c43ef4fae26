package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
)

// DeckStore defines the interface for deck data persistence.
type DeckStore interface {
	// Create saves a new deck and fills in its timestamps.
	Create(ctx context.Context, deck *domain.Deck) error

	// GetByID returns ErrDeckNotFound if the deck does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)

	// ListByUser returns the user's decks ordered by creation time.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)

	// ListWithCardCounts is ListByUser plus the number of cards in each deck.
	ListWithCardCounts(ctx context.Context, userID uuid.UUID) ([]*domain.DeckWithCardCount, error)

	// UpdateName renames a deck. Returns ErrDeckNotFound if it does not exist.
	UpdateName(ctx context.Context, deck *domain.Deck) error

	// Delete removes a deck and, through ON DELETE CASCADE, its cards.
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) DeckStore
}
