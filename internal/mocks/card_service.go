package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
)

// MockCardService implements service.CardService for testing
type MockCardService struct {
	CreateFn     func(ctx context.Context, userID, deckID uuid.UUID, content domain.CardContent) (*domain.Card, error)
	GetFn        func(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	ListByDeckFn func(ctx context.Context, userID, deckID uuid.UUID) ([]*domain.Card, error)
	DueCardsFn   func(ctx context.Context, userID, deckID uuid.UUID) ([]*domain.Card, error)
	UpdateFn     func(ctx context.Context, userID, cardID uuid.UUID, content domain.CardContent) (*domain.Card, error)
	DeleteFn     func(ctx context.Context, userID, cardID uuid.UUID) error

	Card  *domain.Card
	Cards []*domain.Card
	Err   error
}

// Create implements service.CardService
func (m *MockCardService) Create(
	ctx context.Context,
	userID, deckID uuid.UUID,
	content domain.CardContent,
) (*domain.Card, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID, deckID, content)
	}
	return m.Card, m.Err
}

// Get implements service.CardService
func (m *MockCardService) Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID, cardID)
	}
	return m.Card, m.Err
}

// ListByDeck implements service.CardService
func (m *MockCardService) ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]*domain.Card, error) {
	if m.ListByDeckFn != nil {
		return m.ListByDeckFn(ctx, userID, deckID)
	}
	return m.Cards, m.Err
}

// DueCards implements service.CardService
func (m *MockCardService) DueCards(ctx context.Context, userID, deckID uuid.UUID) ([]*domain.Card, error) {
	if m.DueCardsFn != nil {
		return m.DueCardsFn(ctx, userID, deckID)
	}
	return m.Cards, m.Err
}

// Update implements service.CardService
func (m *MockCardService) Update(
	ctx context.Context,
	userID, cardID uuid.UUID,
	content domain.CardContent,
) (*domain.Card, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, cardID, content)
	}
	return m.Card, m.Err
}

// Delete implements service.CardService
func (m *MockCardService) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, cardID)
	}
	return m.Err
}
