package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/store"
)

var _ store.UserSummaryStore = (*MockUserSummaryStore)(nil)

// MockUserSummaryStore implements store.UserSummaryStore for testing.
// Get and GetForUpdate return Summary, or ErrSummaryNotFound when it is nil.
type MockUserSummaryStore struct {
	CreateFn       func(ctx context.Context, summary *domain.UserSummary) error
	GetFn          func(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error)
	GetForUpdateFn func(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error)
	UpdateFn       func(ctx context.Context, summary *domain.UserSummary) error

	Summary *domain.UserSummary
	Err     error

	Created []*domain.UserSummary
	// Updated holds a copy of every summary passed to Update.
	Updated       []domain.UserSummary
	LockedReads   int
	UnlockedReads int
}

// Create implements store.UserSummaryStore.
func (m *MockUserSummaryStore) Create(ctx context.Context, summary *domain.UserSummary) error {
	m.Created = append(m.Created, summary)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, summary)
	}
	return m.Err
}

// Get implements store.UserSummaryStore.
func (m *MockUserSummaryStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error) {
	m.UnlockedReads++
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}
	return m.lookup()
}

// GetForUpdate implements store.UserSummaryStore.
func (m *MockUserSummaryStore) GetForUpdate(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.UserSummary, error) {
	m.LockedReads++
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, userID)
	}
	return m.lookup()
}

func (m *MockUserSummaryStore) lookup() (*domain.UserSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Summary == nil {
		return nil, store.ErrSummaryNotFound
	}
	return m.Summary, nil
}

// Update implements store.UserSummaryStore.
func (m *MockUserSummaryStore) Update(ctx context.Context, summary *domain.UserSummary) error {
	m.Updated = append(m.Updated, *summary)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, summary)
	}
	return m.Err
}

// WithTx returns the mock itself.
func (m *MockUserSummaryStore) WithTx(*sql.Tx) store.UserSummaryStore {
	return m
}
