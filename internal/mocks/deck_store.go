package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/store"
)

var _ store.DeckStore = (*MockDeckStore)(nil)

// MockDeckStore implements store.DeckStore for testing.
type MockDeckStore struct {
	CreateFn             func(ctx context.Context, deck *domain.Deck) error
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	ListByUserFn         func(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)
	ListWithCardCountsFn func(ctx context.Context, userID uuid.UUID) ([]*domain.DeckWithCardCount, error)
	UpdateNameFn         func(ctx context.Context, deck *domain.Deck) error
	DeleteFn             func(ctx context.Context, id uuid.UUID) error

	Deck   *domain.Deck
	Decks  []*domain.Deck
	Counts []*domain.DeckWithCardCount
	Err    error
}

// Create implements store.DeckStore.
func (m *MockDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, deck)
	}
	return m.Err
}

// GetByID implements store.DeckStore. Without a Deck it reports ErrDeckNotFound.
func (m *MockDeckStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Deck == nil {
		return nil, store.ErrDeckNotFound
	}
	return m.Deck, nil
}

// ListByUser implements store.DeckStore.
func (m *MockDeckStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return m.Decks, m.Err
}

// ListWithCardCounts implements store.DeckStore.
func (m *MockDeckStore) ListWithCardCounts(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.DeckWithCardCount, error) {
	if m.ListWithCardCountsFn != nil {
		return m.ListWithCardCountsFn(ctx, userID)
	}
	return m.Counts, m.Err
}

// UpdateName implements store.DeckStore.
func (m *MockDeckStore) UpdateName(ctx context.Context, deck *domain.Deck) error {
	if m.UpdateNameFn != nil {
		return m.UpdateNameFn(ctx, deck)
	}
	return m.Err
}

// Delete implements store.DeckStore.
func (m *MockDeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// WithTx returns the mock itself.
func (m *MockDeckStore) WithTx(*sql.Tx) store.DeckStore {
	return m
}
