package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
	"github.com/phrazzld/oblivion-api/internal/store"
	"github.com/stretchr/testify/mock"
)

var _ store.UserStore = (*TestifyMockUserStore)(nil)

// TestifyMockUserStore is a testify/mock UserStore for tests that assert
// which lookups happen and how often, e.g. that login reads a user exactly once.
type TestifyMockUserStore struct {
	mock.Mock
}

func userResult(args mock.Arguments) (*domain.User, error) {
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *TestifyMockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return userResult(m.Called(ctx, id))
}

func (m *TestifyMockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return userResult(m.Called(ctx, email))
}

func (m *TestifyMockUserStore) Activate(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *TestifyMockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// WithTx returns m so expectations also cover calls made inside a transaction.
func (m *TestifyMockUserStore) WithTx(*sql.Tx) store.UserStore {
	return m
}
