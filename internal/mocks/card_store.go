package mocks

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/store"
)

var _ store.CardStore = (*MockCardStore)(nil)

// MockCardStore implements store.CardStore for testing.
// Unset function fields return Cards (for lists), Card (for lookups) and Err.
type MockCardStore struct {
	CreateFn         func(ctx context.Context, card *domain.Card) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	GetForUpdateFn   func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListByDeckFn     func(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)
	ListDueFn        func(ctx context.Context, deckID uuid.UUID, now time.Time) ([]*domain.Card, error)
	UpdateContentFn  func(ctx context.Context, card *domain.Card) error
	UpdateScheduleFn func(ctx context.Context, card *domain.Card) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error

	Card  *domain.Card
	Cards []*domain.Card
	Err   error

	mu              sync.Mutex
	ScheduleUpdates []domain.Card
	WithTxCalls     int
}

// Create implements store.CardStore.
func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}
	return m.Err
}

// GetByID implements store.CardStore.
func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.lookup()
}

// GetForUpdate implements store.CardStore.
func (m *MockCardStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, id)
	}
	return m.lookup()
}

func (m *MockCardStore) lookup() (*domain.Card, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Card == nil {
		return nil, store.ErrCardNotFound
	}
	return m.Card, nil
}

// ListByDeck implements store.CardStore.
func (m *MockCardStore) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error) {
	if m.ListByDeckFn != nil {
		return m.ListByDeckFn(ctx, deckID)
	}
	return m.Cards, m.Err
}

// ListDue implements store.CardStore.
func (m *MockCardStore) ListDue(ctx context.Context, deckID uuid.UUID, now time.Time) ([]*domain.Card, error) {
	if m.ListDueFn != nil {
		return m.ListDueFn(ctx, deckID, now)
	}
	return m.Cards, m.Err
}

// UpdateContent implements store.CardStore.
func (m *MockCardStore) UpdateContent(ctx context.Context, card *domain.Card) error {
	if m.UpdateContentFn != nil {
		return m.UpdateContentFn(ctx, card)
	}
	return m.Err
}

// UpdateSchedule implements store.CardStore and records a copy of card.
func (m *MockCardStore) UpdateSchedule(ctx context.Context, card *domain.Card) error {
	m.mu.Lock()
	m.ScheduleUpdates = append(m.ScheduleUpdates, *card)
	m.mu.Unlock()
	if m.UpdateScheduleFn != nil {
		return m.UpdateScheduleFn(ctx, card)
	}
	return m.Err
}

// Delete implements store.CardStore.
func (m *MockCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// WithTx returns the mock itself.
func (m *MockCardStore) WithTx(*sql.Tx) store.CardStore {
	m.mu.Lock()
	m.WithTxCalls++
	m.mu.Unlock()
	return m
}
