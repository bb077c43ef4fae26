package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
)

// MockDeckService implements service.DeckService for testing
type MockDeckService struct {
	CreateFn             func(ctx context.Context, userID uuid.UUID, name string) (*domain.Deck, error)
	GetFn                func(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	ListFn               func(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)
	ListWithCardCountsFn func(ctx context.Context, userID uuid.UUID) ([]*domain.DeckWithCardCount, error)
	RenameFn             func(ctx context.Context, userID, deckID uuid.UUID, name string) (*domain.Deck, error)
	DeleteFn             func(ctx context.Context, userID, deckID uuid.UUID) error

	Deck   *domain.Deck
	Decks  []*domain.Deck
	Counts []*domain.DeckWithCardCount
	Err    error
}

// Create implements service.DeckService
func (m *MockDeckService) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Deck, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID, name)
	}
	return m.Deck, m.Err
}

// Get implements service.DeckService
func (m *MockDeckService) Get(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID, deckID)
	}
	return m.Deck, m.Err
}

// List implements service.DeckService
func (m *MockDeckService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID)
	}
	return m.Decks, m.Err
}

// ListWithCardCounts implements service.DeckService
func (m *MockDeckService) ListWithCardCounts(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.DeckWithCardCount, error) {
	if m.ListWithCardCountsFn != nil {
		return m.ListWithCardCountsFn(ctx, userID)
	}
	return m.Counts, m.Err
}

// Rename implements service.DeckService
func (m *MockDeckService) Rename(ctx context.Context, userID, deckID uuid.UUID, name string) (*domain.Deck, error) {
	if m.RenameFn != nil {
		return m.RenameFn(ctx, userID, deckID, name)
	}
	return m.Deck, m.Err
}

// Delete implements service.DeckService
func (m *MockDeckService) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, deckID)
	}
	return m.Err
}
