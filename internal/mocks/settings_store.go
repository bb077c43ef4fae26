package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/store"
)

var _ store.UserSettingsStore = (*MockUserSettingsStore)(nil)

// MockUserSettingsStore implements store.UserSettingsStore for testing.
// Get returns Settings, or ErrSettingsNotFound when it is nil.
type MockUserSettingsStore struct {
	CreateFn func(ctx context.Context, settings *domain.UserSettings) error
	GetFn    func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpdateFn func(ctx context.Context, settings *domain.UserSettings) error

	Settings *domain.UserSettings
	Err      error

	Created []*domain.UserSettings
	Updated []*domain.UserSettings
}

// Create implements store.UserSettingsStore.
func (m *MockUserSettingsStore) Create(ctx context.Context, settings *domain.UserSettings) error {
	m.Created = append(m.Created, settings)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, settings)
	}
	return m.Err
}

// Get implements store.UserSettingsStore.
func (m *MockUserSettingsStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Settings == nil {
		return nil, store.ErrSettingsNotFound
	}
	return m.Settings, nil
}

// Update implements store.UserSettingsStore.
func (m *MockUserSettingsStore) Update(ctx context.Context, settings *domain.UserSettings) error {
	m.Updated = append(m.Updated, settings)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, settings)
	}
	return m.Err
}

// WithTx returns the mock itself.
func (m *MockUserSettingsStore) WithTx(*sql.Tx) store.UserSettingsStore {
	return m
}
