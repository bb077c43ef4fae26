package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/oblivion-api/internal/domain"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	GetProfileFn     func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetSettingsFn    func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpdateSettingsFn func(
		ctx context.Context,
		userID uuid.UUID,
		specs [domain.LevelCount]domain.IntervalSpec,
	) (*domain.UserSettings, error)
	GetSummaryFn func(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error)

	User     *domain.User
	Settings *domain.UserSettings
	Summary  *domain.UserSummary
	Err      error
}

// GetProfile implements service.UserService
func (m *MockUserService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetProfileFn != nil {
		return m.GetProfileFn(ctx, userID)
	}
	return m.User, m.Err
}

// GetSettings implements service.UserService
func (m *MockUserService) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if m.GetSettingsFn != nil {
		return m.GetSettingsFn(ctx, userID)
	}
	return m.Settings, m.Err
}

// UpdateSettings implements service.UserService
func (m *MockUserService) UpdateSettings(
	ctx context.Context,
	userID uuid.UUID,
	specs [domain.LevelCount]domain.IntervalSpec,
) (*domain.UserSettings, error) {
	if m.UpdateSettingsFn != nil {
		return m.UpdateSettingsFn(ctx, userID, specs)
	}
	return m.Settings, m.Err
}

// GetSummary implements service.UserService
func (m *MockUserService) GetSummary(ctx context.Context, userID uuid.UUID) (*domain.UserSummary, error) {
	if m.GetSummaryFn != nil {
		return m.GetSummaryFn(ctx, userID)
	}
	return m.Summary, m.Err
}
