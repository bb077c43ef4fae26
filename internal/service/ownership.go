package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// ownedDeck loads a deck and applies the ownership gate.
func ownedDeck(ctx context.Context, decks store.DeckStore, userID, deckID uuid.UUID) (*domain.Deck, error) {
	deck, err := decks.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if err := domain.AssertOwnsOrForbidden(deck, userID); err != nil {
		return nil, err
	}
	return deck, nil
}

// ownedCard loads a card and applies the ownership gate.
func ownedCard(ctx context.Context, cards store.CardStore, userID, cardID uuid.UUID) (*domain.Card, error) {
	card, err := cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if err := domain.AssertOwnsOrForbidden(card, userID); err != nil {
		return nil, err
	}
	return card, nil
}

func requireDep(name string, isNil bool) error {
	if isNil {
		return domain.NewValidationError(name, "cannot be nil", domain.ErrValidation)
	}
	return nil
}

// logLookupFailure logs missing records at debug, ownership violations at
// warn and everything else at error.
func logLookupFailure(log *slog.Logger, op, idKey string, userID, id uuid.UUID, err error) {
	attrs := []any{
		slog.String("operation", op),
		slog.String("user_id", userID.String()),
		slog.String(idKey, id.String()),
		slog.String("error", err.Error()),
	}
	switch {
	case store.IsNotFoundError(err):
		log.Debug("record not found", attrs...)
	case errors.Is(err, domain.ErrForbidden):
		log.Warn("access to record of another user denied", attrs...)
	default:
		log.Error("failed to load record", attrs...)
	}
}
