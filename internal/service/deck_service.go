package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// DeckService provides deck-related operations. Every operation on an
// existing deck is restricted to its owner.
type DeckService interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Deck, error)
	Get(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)
	ListWithCardCounts(ctx context.Context, userID uuid.UUID) ([]*domain.DeckWithCardCount, error)
	Rename(ctx context.Context, userID, deckID uuid.UUID, name string) (*domain.Deck, error)
	// Delete removes the deck together with its cards.
	Delete(ctx context.Context, userID, deckID uuid.UUID) error
}

type deckServiceImpl struct {
	decks  store.DeckStore
	logger *slog.Logger
}

// NewDeckService creates a DeckService.
// It returns an error if the store is nil.
func NewDeckService(decks store.DeckStore, logger *slog.Logger) (DeckService, error) {
	if err := requireDep("deckStore", decks == nil); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &deckServiceImpl{
		decks:  decks,
		logger: logger.With(slog.String("component", "deck_service")),
	}, nil
}

func deckError(op string, err error) error {
	return NewServiceError("deck", op, err)
}

func (s *deckServiceImpl) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := domain.NewDeck(userID, name)
	if err != nil {
		return nil, deckError("create", err)
	}
	if err := s.decks.Create(ctx, deck); err != nil {
		log.Error("failed to create deck",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, deckError("create", err)
	}

	log.Debug("deck created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deck.ID.String()))
	return deck, nil
}

func (s *deckServiceImpl) Get(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	deck, err := ownedDeck(ctx, s.decks, userID, deckID)
	if err != nil {
		s.logDenied(ctx, "get", userID, deckID, err)
		return nil, deckError("get", err)
	}
	return deck, nil
}

func (s *deckServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	decks, err := s.decks.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list decks",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, deckError("list", err)
	}
	return decks, nil
}

func (s *deckServiceImpl) ListWithCardCounts(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.DeckWithCardCount, error) {
	decks, err := s.decks.ListWithCardCounts(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list decks with card counts",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, deckError("list_with_card_counts", err)
	}
	return decks, nil
}

func (s *deckServiceImpl) Rename(
	ctx context.Context,
	userID, deckID uuid.UUID,
	name string,
) (*domain.Deck, error) {
	deck, err := ownedDeck(ctx, s.decks, userID, deckID)
	if err != nil {
		s.logDenied(ctx, "rename", userID, deckID, err)
		return nil, deckError("rename", err)
	}
	if err := deck.Rename(name); err != nil {
		return nil, deckError("rename", err)
	}
	if err := s.decks.UpdateName(ctx, deck); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to rename deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, deckError("rename", err)
	}
	return deck, nil
}

func (s *deckServiceImpl) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	if _, err := ownedDeck(ctx, s.decks, userID, deckID); err != nil {
		s.logDenied(ctx, "delete", userID, deckID, err)
		return deckError("delete", err)
	}
	if err := s.decks.Delete(ctx, deckID); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return deckError("delete", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("deck deleted",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deckID.String()))
	return nil
}

// logDenied logs a failed lookup or ownership check at a level matching its cause.
func (s *deckServiceImpl) logDenied(ctx context.Context, op string, userID, deckID uuid.UUID, err error) {
	logLookupFailure(logger.FromContextOrDefault(ctx, s.logger), op, "deck_id", userID, deckID, err)
}
