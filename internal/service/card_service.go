package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/domain/srs"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// CardService provides card-related operations
type CardService interface {
	// Create adds a card to an owned deck and schedules its first review one
	// level-1 interval from now.
	Create(ctx context.Context, userID, deckID uuid.UUID, content domain.CardContent) (*domain.Card, error)

	// Get retrieves a card owned by userID.
	Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)

	// ListByDeck returns every card of an owned deck.
	ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]*domain.Card, error)

	// DueCards returns the cards of an owned deck whose next answer date has
	// passed, earliest first. Retained cards are included; clients filter them
	// by retention_state.
	DueCards(ctx context.Context, userID, deckID uuid.UUID) ([]*domain.Card, error)

	// Update replaces sentence, meaning, image path and etymology.
	Update(ctx context.Context, userID, cardID uuid.UUID, content domain.CardContent) (*domain.Card, error)

	Delete(ctx context.Context, userID, cardID uuid.UUID) error
}

// cardServiceImpl implements the CardService interface
type cardServiceImpl struct {
	cards     store.CardStore
	decks     store.DeckStore
	settings  store.UserSettingsStore
	scheduler srs.Service
	logger    *slog.Logger
}

// NewCardService creates a new CardService
// It returns an error if any of the required dependencies are nil.
func NewCardService(
	cards store.CardStore,
	decks store.DeckStore,
	settings store.UserSettingsStore,
	scheduler srs.Service,
	logger *slog.Logger,
) (CardService, error) {
	for _, dep := range []struct {
		name  string
		isNil bool
	}{
		{"cardStore", cards == nil},
		{"deckStore", decks == nil},
		{"settingsStore", settings == nil},
		{"scheduler", scheduler == nil},
	} {
		if err := requireDep(dep.name, dep.isNil); err != nil {
			return nil, err
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &cardServiceImpl{
		cards:     cards,
		decks:     decks,
		settings:  settings,
		scheduler: scheduler,
		logger:    logger.With(slog.String("component", "card_service")),
	}, nil
}

func cardError(op string, err error) error {
	return NewServiceError("card", op, err)
}

func (s *cardServiceImpl) Create(
	ctx context.Context,
	userID, deckID uuid.UUID,
	content domain.CardContent,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := ownedDeck(ctx, s.decks, userID, deckID); err != nil {
		logLookupFailure(log, "create", "deck_id", userID, deckID, err)
		return nil, cardError("create", err)
	}

	card, err := domain.NewCard(userID, deckID, content)
	if err != nil {
		return nil, cardError("create", err)
	}

	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load interval table for new card",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, cardError("create", err)
	}
	if err := s.scheduler.ScheduleNew(card, settings); err != nil {
		return nil, cardError("create", err)
	}

	if err := s.cards.Create(ctx, card); err != nil {
		log.Error("failed to save card",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, cardError("create", err)
	}

	log.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", deckID.String()),
		slog.Time("next_answer_date", *card.NextAnswerDate))
	return card, nil
}

func (s *cardServiceImpl) Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	card, err := ownedCard(ctx, s.cards, userID, cardID)
	if err != nil {
		logLookupFailure(logger.FromContextOrDefault(ctx, s.logger), "get", "card_id", userID, cardID, err)
		return nil, cardError("get", err)
	}
	return card, nil
}

func (s *cardServiceImpl) ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := ownedDeck(ctx, s.decks, userID, deckID); err != nil {
		logLookupFailure(log, "list", "deck_id", userID, deckID, err)
		return nil, cardError("list", err)
	}
	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		log.Error("failed to list cards",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, cardError("list", err)
	}
	return cards, nil
}

func (s *cardServiceImpl) DueCards(ctx context.Context, userID, deckID uuid.UUID) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := ownedDeck(ctx, s.decks, userID, deckID); err != nil {
		logLookupFailure(log, "due", "deck_id", userID, deckID, err)
		return nil, cardError("due", err)
	}

	now := s.scheduler.Now()
	cards, err := s.cards.ListDue(ctx, deckID, now)
	if err != nil {
		log.Error("failed to list due cards",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, cardError("due", err)
	}

	log.Debug("listed due cards",
		slog.String("deck_id", deckID.String()),
		slog.Int("count", len(cards)),
		slog.Time("now", now))
	return cards, nil
}

func (s *cardServiceImpl) Update(
	ctx context.Context,
	userID, cardID uuid.UUID,
	content domain.CardContent,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := ownedCard(ctx, s.cards, userID, cardID)
	if err != nil {
		logLookupFailure(log, "update", "card_id", userID, cardID, err)
		return nil, cardError("update", err)
	}

	card.SetContent(content)
	if err := card.Validate(); err != nil {
		return nil, cardError("update", err)
	}
	if err := s.cards.UpdateContent(ctx, card); err != nil {
		log.Error("failed to update card content",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return nil, cardError("update", err)
	}
	return card, nil
}

func (s *cardServiceImpl) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := ownedCard(ctx, s.cards, userID, cardID); err != nil {
		logLookupFailure(log, "delete", "card_id", userID, cardID, err)
		return cardError("delete", err)
	}
	if err := s.cards.Delete(ctx, cardID); err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return cardError("delete", err)
	}
	log.Info("card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()))
	return nil
}
