package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/store"
)

var _ store.VerificationStore = (*MockVerificationStore)(nil)

// MockVerificationStore implements store.VerificationStore for testing.
// Without function fields it keeps pending codes in memory keyed by email.
type MockVerificationStore struct {
	UpsertFn func(ctx context.Context, v *domain.Verification) error
	GetFn    func(ctx context.Context, email string) (*domain.Verification, error)
	DeleteFn func(ctx context.Context, email string) error

	mu      sync.Mutex
	Pending map[string]*domain.Verification
}

// NewMockVerificationStore creates a mock holding the given verifications.
func NewMockVerificationStore(pending ...*domain.Verification) *MockVerificationStore {
	m := &MockVerificationStore{Pending: make(map[string]*domain.Verification)}
	for _, v := range pending {
		m.Pending[v.Email] = v
	}
	return m
}

// Upsert implements store.VerificationStore.
func (m *MockVerificationStore) Upsert(ctx context.Context, v *domain.Verification) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, v)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Pending == nil {
		m.Pending = make(map[string]*domain.Verification)
	}
	m.Pending[v.Email] = v
	return nil
}

// Get implements store.VerificationStore.
func (m *MockVerificationStore) Get(ctx context.Context, email string) (*domain.Verification, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Pending[email]
	if !ok {
		return nil, store.ErrVerificationNotFound
	}
	return v, nil
}

// Delete implements store.VerificationStore.
func (m *MockVerificationStore) Delete(ctx context.Context, email string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Pending[email]; !ok {
		return store.ErrVerificationNotFound
	}
	delete(m.Pending, email)
	return nil
}

// WithTx returns the mock itself.
func (m *MockVerificationStore) WithTx(*sql.Tx) store.VerificationStore {
	return m
}
